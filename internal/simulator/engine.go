// Package simulator generates Monte Carlo forward price paths from a
// historical NAV series under a geometric Brownian motion model: log-price
// increments are i.i.d. normal with drift and volatility estimated from the
// historical log-return sample. No jumps, no mean reversion, no cross-asset
// correlation beyond what the aggregated NAV series already carries.
package simulator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"PortfolioTracker/internal/calculator"
	"PortfolioTracker/internal/model"
)

var (
	// ErrInsufficientHistory is returned when fewer than 2 chronologically
	// increasing observations are available to estimate return statistics.
	ErrInsufficientHistory = errors.New("not enough history to estimate returns")

	// ErrInvalidParameter is returned for out-of-range simulation counts or
	// horizons, before any computation or allocation happens.
	ErrInvalidParameter = errors.New("invalid simulation parameter")
)

const (
	// MaxSimulations bounds the path matrix to keep memory sane.
	MaxSimulations = 100000
	// MaxMonths caps the horizon at 100 years.
	MaxMonths = 1200
)

// Params configures one simulation run. A nil Seed keeps the production
// behavior of fresh randomness on every call; tests set it for
// reproducibility.
type Params struct {
	Simulations int
	Months      int
	Seed        *int64
}

// Validate re-checks the bounds even when the caller already has, since the
// engine is also usable as a library.
func (p Params) Validate() error {
	if p.Simulations < 1 || p.Simulations > MaxSimulations {
		return fmt.Errorf("%w: simulations must be within [1, %d], got %d",
			ErrInvalidParameter, MaxSimulations, p.Simulations)
	}
	if p.Months < 1 || p.Months > MaxMonths {
		return fmt.Errorf("%w: months must be within [1, %d], got %d",
			ErrInvalidParameter, MaxMonths, p.Months)
	}
	return nil
}

// Run simulates forward price paths from the NAV series. The engine is
// stateless: each call is independent, never mutates its inputs, and either
// returns a fully formed result or an error with no partial output.
func Run(nav []model.PricePoint, p Params) (*model.SimulationResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkChronology(nav); err != nil {
		return nil, err
	}

	returns := calculator.LogReturns(nav)
	if len(returns) == 0 {
		return nil, fmt.Errorf("%w: no finite log returns", ErrInsufficientHistory)
	}

	mu, err := calculator.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientHistory, err)
	}
	sigma, err := calculator.StdDev(returns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientHistory, err)
	}

	last := nav[len(nav)-1]
	rng := newRand(p.Seed)

	// One normal shock per (month, simulation) cell, cumulative-summed down
	// the month axis and exponentiated into a strictly positive price level.
	paths := make([][]float64, p.Months)
	cumlog := make([]float64, p.Simulations)
	for m := 0; m < p.Months; m++ {
		row := make([]float64, p.Simulations)
		for s := 0; s < p.Simulations; s++ {
			cumlog[s] += mu + sigma*rng.NormFloat64()
			row[s] = last.Price * math.Exp(cumlog[s])
		}
		paths[m] = row
	}

	return &model.SimulationResult{
		History:      calculator.ResampleMonthEnd(nav),
		Paths:        paths,
		ForwardDates: calculator.MonthEndBusinessDays(last.Date, p.Months),
		Mu:           mu,
		Sigma:        sigma,
		LastNAV:      last.Price,
	}, nil
}

func checkChronology(nav []model.PricePoint) error {
	if len(nav) < 2 {
		return fmt.Errorf("%w: need at least 2 observations, got %d",
			ErrInsufficientHistory, len(nav))
	}
	for i := 1; i < len(nav); i++ {
		if !nav[i].Date.After(nav[i-1].Date) {
			return fmt.Errorf("%w: observations must be strictly increasing in date",
				ErrInsufficientHistory)
		}
	}
	return nil
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
