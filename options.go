package entx

import (
	"fmt"

	"github.com/hengadev/entx/internal/monitoring"
)

// MapperOption configures a Mapper.
type MapperOption func(m *Mapper) error

// WithConfig sets the naming conventions. The config is validated first.
func WithConfig(cfg Config) MapperOption {
	return func(m *Mapper) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate Config: %w", err)
		}
		m.config = cfg
		return nil
	}
}

// WithObservabilityHook replaces the hook notified of every operation.
func WithObservabilityHook(hook ObservabilityHook) MapperOption {
	return func(m *Mapper) error {
		if hook == nil {
			return fmt.Errorf("%w: observability hook cannot be nil", ErrInvalidConfiguration)
		}
		m.hook = hook
		return nil
	}
}

// WithLogger logs operations and skipped fields to logger. A *slog.Logger works.
func WithLogger(logger Logger) MapperOption {
	return func(m *Mapper) error {
		m.addHook(monitoring.NewLoggingObservabilityHook(logger))
		return nil
	}
}

// WithMetricsCollector records operation counters and timings in collector.
func WithMetricsCollector(collector MetricsCollector) MapperOption {
	return func(m *Mapper) error {
		m.addHook(monitoring.NewMetricsObservabilityHook(collector))
		return nil
	}
}
