package monitoring

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MetricsCollector defines the interface for collecting and reporting metrics
type MetricsCollector interface {
	IncrementCounter(name string, tags map[string]string)
	RecordTiming(name string, duration time.Duration, tags map[string]string)

	// Flush any buffered metrics
	Flush() error
}

// NoOpMetricsCollector is a no-op implementation of MetricsCollector
type NoOpMetricsCollector struct{}

func (n *NoOpMetricsCollector) IncrementCounter(name string, tags map[string]string) {}
func (n *NoOpMetricsCollector) RecordTiming(name string, duration time.Duration, tags map[string]string) {
}
func (n *NoOpMetricsCollector) Flush() error { return nil }

// InMemoryMetricsCollector is an in-memory implementation for testing
type InMemoryMetricsCollector struct {
	mu       sync.RWMutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// NewInMemoryMetricsCollector creates a new in-memory metrics collector
func NewInMemoryMetricsCollector() *InMemoryMetricsCollector {
	return &InMemoryMetricsCollector{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

func (m *InMemoryMetricsCollector) IncrementCounter(name string, tags map[string]string) {
	key := keyWithTags(name, tags)
	m.mu.Lock()
	m.counters[key]++
	m.mu.Unlock()
}

func (m *InMemoryMetricsCollector) RecordTiming(name string, duration time.Duration, tags map[string]string) {
	key := keyWithTags(name, tags)
	m.mu.Lock()
	m.timings[key] = append(m.timings[key], duration)
	m.mu.Unlock()
}

func (m *InMemoryMetricsCollector) Flush() error {
	return nil
}

// GetCounter returns the value of a counter
func (m *InMemoryMetricsCollector) GetCounter(name string, tags map[string]string) int64 {
	key := keyWithTags(name, tags)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[key]
}

// GetTimings returns all recorded timings
func (m *InMemoryMetricsCollector) GetTimings(name string, tags map[string]string) []time.Duration {
	key := keyWithTags(name, tags)
	m.mu.RLock()
	timings := make([]time.Duration, len(m.timings[key]))
	copy(timings, m.timings[key])
	m.mu.RUnlock()
	return timings
}

// Reset clears all metrics
func (m *InMemoryMetricsCollector) Reset() {
	m.mu.Lock()
	m.counters = make(map[string]int64)
	m.timings = make(map[string][]time.Duration)
	m.mu.Unlock()
}

// keyWithTags builds "name,k1=v1,k2=v2" with tags sorted by key.
func keyWithTags(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	for _, k := range sortedKeys(tags) {
		b.WriteString(",")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(tags[k])
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
