package recorder

import "time"

// ValuationSnapshot records one asset's valuation at a point in time.
type ValuationSnapshot struct {
	Ticker     string
	Sector     string
	AssetClass string
	Quantity   int64
	LastPrice  float64
	Value      float64
}

// SimulationRun records the parameters and horizon quantiles of one Monte
// Carlo run.
type SimulationRun struct {
	RunID       string
	Restriction string
	Simulations int
	Months      int
	Seeded      bool
	Mu          float64
	Sigma       float64
	LastNAV     float64
	HorizonQ05  float64
	HorizonQ50  float64
	HorizonQ95  float64
	Elapsed     time.Duration
}

// Recorder persists an append-only audit trail of valuations and simulation
// runs for later analysis. It is never read back to restore portfolio state.
type Recorder interface {
	RecordValuation(snaps []ValuationSnapshot) error
	RecordSimulation(run *SimulationRun) error
	Close() error
}
