package entx

// This file provides helpers for tests and examples that want to observe what a
// Mapper does.

// NewTestMapper returns a Mapper recording metrics in memory, together with the
// collector. Extra options are applied after the collector is wired.
//
//	mapper, metrics := entx.NewTestMapper()
//	_ = mapper.Fill(user, payload)
//	skipped := metrics.GetCounter("entx.fields.skipped", tags)
func NewTestMapper(opts ...MapperOption) (*Mapper, *InMemoryMetricsCollector) {
	collector := NewInMemoryMetricsCollector()

	mapper, err := NewMapper(append([]MapperOption{WithMetricsCollector(collector)}, opts...)...)
	if err != nil {
		panic("entx: failed to create test mapper: " + err.Error())
	}

	return mapper, collector
}
