package entx

import "github.com/hengadev/entx/internal/monitoring"

type (
	// ObservabilityHook is notified before and after Fill and ToArray, on errors,
	// and whenever Fill leaves an input key unassigned.
	ObservabilityHook = monitoring.ObservabilityHook

	// Logger is satisfied by *slog.Logger.
	Logger = monitoring.Logger

	MetricsCollector         = monitoring.MetricsCollector
	InMemoryMetricsCollector = monitoring.InMemoryMetricsCollector
	NoOpObservabilityHook    = monitoring.NoOpObservabilityHook
)

// NewInMemoryMetricsCollector returns a collector that keeps everything in memory.
func NewInMemoryMetricsCollector() *InMemoryMetricsCollector {
	return monitoring.NewInMemoryMetricsCollector()
}

// NewLoggingObservabilityHook returns a hook writing structured logs to logger.
func NewLoggingObservabilityHook(logger Logger) ObservabilityHook {
	return monitoring.NewLoggingObservabilityHook(logger)
}

// NewMetricsObservabilityHook returns a hook recording counters and timings.
func NewMetricsObservabilityHook(collector MetricsCollector) ObservabilityHook {
	return monitoring.NewMetricsObservabilityHook(collector)
}

// NewCompositeObservabilityHook fans notifications out to every hook.
func NewCompositeObservabilityHook(hooks ...ObservabilityHook) ObservabilityHook {
	return monitoring.NewCompositeObservabilityHook(hooks...)
}
