package entx

import (
	"fmt"

	"github.com/hengadev/entx/internal/monitoring"
)

// Mapper fills and serializes entities under one Config and reports to one
// ObservabilityHook. A Mapper holds no per-entity state and can be shared.
type Mapper struct {
	config Config
	hook   ObservabilityHook
}

var defaultMapper = &Mapper{
	config: DefaultConfig(),
	hook:   &monitoring.NoOpObservabilityHook{},
}

// NewMapper builds a Mapper with DefaultConfig and no-op observability, then
// applies opts in order.
//
//	mapper, err := entx.NewMapper(
//	    entx.WithConfig(entx.Config{IDSuffix: "Id"}),
//	    entx.WithLogger(slog.Default()),
//	)
func NewMapper(opts ...MapperOption) (*Mapper, error) {
	m := &Mapper{
		config: DefaultConfig(),
		hook:   &monitoring.NoOpObservabilityHook{},
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("apply mapper option: %w", err)
		}
	}

	return m, nil
}

// DefaultMapper returns the Mapper used by the package-level functions.
func DefaultMapper() *Mapper {
	return defaultMapper
}

// Config returns a copy of the mapper's configuration.
func (m *Mapper) Config() Config {
	return m.config
}

func (m *Mapper) addHook(hook ObservabilityHook) {
	if _, noop := m.hook.(*monitoring.NoOpObservabilityHook); noop || m.hook == nil {
		m.hook = hook
		return
	}
	m.hook = monitoring.NewCompositeObservabilityHook(m.hook, hook)
}
