package monitoring

import (
	"fmt"
	"log/slog"
	"time"
)

// Operation names reported to hooks.
const (
	OperationFill      = "Fill"
	OperationSerialize = "ToArray"
)

// Reasons passed to OnFieldSkipped.
const (
	SkipNilValue     = "nil value"
	SkipExcluded     = "excluded"
	SkipUnknownField = "unknown field"
)

// ObservabilityHook receives notifications about entity operations.
type ObservabilityHook interface {
	// Called before an operation starts
	OnProcessStart(operation string, metadata map[string]any)

	// Called after an operation completes (success or failure)
	OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any)

	// Called when errors occur
	OnError(operation string, err error, metadata map[string]any)

	// Called when fill leaves an input key unassigned
	OnFieldSkipped(operation, entityType, field, reason string)
}

// NoOpObservabilityHook is a no-op implementation of ObservabilityHook
type NoOpObservabilityHook struct{}

func (n *NoOpObservabilityHook) OnProcessStart(operation string, metadata map[string]any) {}
func (n *NoOpObservabilityHook) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
}
func (n *NoOpObservabilityHook) OnError(operation string, err error, metadata map[string]any) {}
func (n *NoOpObservabilityHook) OnFieldSkipped(operation, entityType, field, reason string)   {}

// Logger is the structured logging surface used by LoggingObservabilityHook.
// *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

var _ Logger = (*slog.Logger)(nil)

// LoggingObservabilityHook logs all operations
type LoggingObservabilityHook struct {
	logger Logger
}

// NewLoggingObservabilityHook creates a new logging observability hook.
// A nil logger falls back to slog.Default().
func NewLoggingObservabilityHook(logger Logger) *LoggingObservabilityHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObservabilityHook{
		logger: logger,
	}
}

func (l *LoggingObservabilityHook) OnProcessStart(operation string, metadata map[string]any) {
	l.logger.Debug("operation started", append([]any{"operation", operation}, flatten(metadata)...)...)
}

func (l *LoggingObservabilityHook) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	args := append([]any{"operation", operation, "duration", duration}, flatten(metadata)...)
	if err != nil {
		l.logger.Error("operation failed", append(args, "error", err)...)
		return
	}
	l.logger.Debug("operation completed", args...)
}

func (l *LoggingObservabilityHook) OnError(operation string, err error, metadata map[string]any) {
	l.logger.Error("operation error", append([]any{"operation", operation, "error", err}, flatten(metadata)...)...)
}

func (l *LoggingObservabilityHook) OnFieldSkipped(operation, entityType, field, reason string) {
	l.logger.Debug("field skipped",
		"operation", operation,
		"entity_type", entityType,
		"field", field,
		"reason", reason,
	)
}

// flatten turns metadata into slog key/value pairs.
func flatten(metadata map[string]any) []any {
	args := make([]any, 0, len(metadata)*2)
	for _, key := range sortedKeys(metadata) {
		args = append(args, key, metadata[key])
	}
	return args
}

// MetricsObservabilityHook collects metrics for operations
type MetricsObservabilityHook struct {
	collector MetricsCollector
}

// NewMetricsObservabilityHook creates a new metrics observability hook
func NewMetricsObservabilityHook(collector MetricsCollector) *MetricsObservabilityHook {
	if collector == nil {
		collector = &NoOpMetricsCollector{}
	}
	return &MetricsObservabilityHook{
		collector: collector,
	}
}

func (m *MetricsObservabilityHook) OnProcessStart(operation string, metadata map[string]any) {
	m.collector.IncrementCounter("entx.process.started", operationTags(operation, metadata))
}

func (m *MetricsObservabilityHook) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	tags := operationTags(operation, metadata)
	if err != nil {
		tags["status"] = "error"
		m.collector.IncrementCounter("entx.process.failed", tags)
	} else {
		tags["status"] = "success"
		m.collector.IncrementCounter("entx.process.succeeded", tags)
	}

	m.collector.RecordTiming("entx.process.duration", duration, tags)
}

func (m *MetricsObservabilityHook) OnError(operation string, err error, metadata map[string]any) {
	tags := map[string]string{
		"operation": operation,
		"error":     fmt.Sprintf("%T", err),
	}
	m.collector.IncrementCounter("entx.errors", tags)
}

func (m *MetricsObservabilityHook) OnFieldSkipped(operation, entityType, field, reason string) {
	m.collector.IncrementCounter("entx.fields.skipped", map[string]string{
		"operation":   operation,
		"entity_type": entityType,
		"reason":      reason,
	})
}

func operationTags(operation string, metadata map[string]any) map[string]string {
	tags := map[string]string{"operation": operation}
	if entityType, ok := metadata["entity_type"].(string); ok {
		tags["entity_type"] = entityType
	}
	return tags
}

// CompositeObservabilityHook combines multiple hooks
type CompositeObservabilityHook struct {
	hooks []ObservabilityHook
}

// NewCompositeObservabilityHook creates a new composite hook
func NewCompositeObservabilityHook(hooks ...ObservabilityHook) *CompositeObservabilityHook {
	return &CompositeObservabilityHook{
		hooks: hooks,
	}
}

func (c *CompositeObservabilityHook) OnProcessStart(operation string, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnProcessStart(operation, metadata)
	}
}

func (c *CompositeObservabilityHook) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnProcessComplete(operation, duration, err, metadata)
	}
}

func (c *CompositeObservabilityHook) OnError(operation string, err error, metadata map[string]any) {
	for _, hook := range c.hooks {
		hook.OnError(operation, err, metadata)
	}
}

func (c *CompositeObservabilityHook) OnFieldSkipped(operation, entityType, field, reason string) {
	for _, hook := range c.hooks {
		hook.OnFieldSkipped(operation, entityType, field, reason)
	}
}
