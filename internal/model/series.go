package model

import "time"

// PricePoint is one close price at a date. Series are chronological slices.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// SimulationResult holds one Monte Carlo run: the month-end resampled
// historical NAV series, the simulated forward price paths (Months rows,
// one column per simulation), and the forward month-end date index.
// Produced fresh per request and never mutated afterwards.
type SimulationResult struct {
	History      []PricePoint
	Paths        [][]float64
	ForwardDates []time.Time
	Mu           float64
	Sigma        float64
	LastNAV      float64
}

// Months returns the simulated horizon length.
func (r *SimulationResult) Months() int { return len(r.Paths) }

// Simulations returns the number of simulated paths.
func (r *SimulationResult) Simulations() int {
	if len(r.Paths) == 0 {
		return 0
	}
	return len(r.Paths[0])
}
