package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordValuation(_ []ValuationSnapshot) error { return nil }
func (n *NoopRecorder) RecordSimulation(_ *SimulationRun) error     { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
