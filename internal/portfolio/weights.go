package portfolio

import (
	"fmt"

	"PortfolioTracker/internal/model"
)

// Weighting is the result of a weights query: the relative weight of each
// considered asset, the aggregate value of the considered set, and the
// value of the whole portfolio regardless of filter.
type Weighting struct {
	Weights       map[string]float64
	Tickers       []string // considered tickers, insertion order
	FilteredValue float64
	TotalValue    float64
}

// Weights computes per-asset relative weights over the considered set
// selected by the restriction. Last prices are injected per ticker; a
// missing price counts as a missing asset and fails the query.
//
// The weights always sum to 1 over the considered set. If the restriction
// selects no assets, or the selected assets have zero aggregate value,
// ErrEmptyFilterResult is returned and no partial result is produced.
func (p *Portfolio) Weights(r *model.Restriction, lastPrices map[string]float64) (*Weighting, error) {
	var total, filtered float64
	considered := make([]string, 0, len(p.order))

	for _, ticker := range p.order {
		a := p.assets[ticker]
		price, ok := lastPrices[ticker]
		if !ok {
			return nil, fmt.Errorf("no last price supplied for %s", ticker)
		}
		value := a.CurrentValue(price)
		total += value
		if r.Matches(a) {
			filtered += value
			considered = append(considered, ticker)
		}
	}

	if len(considered) == 0 || filtered == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyFilterResult, r)
	}

	weights := make(map[string]float64, len(considered))
	for _, ticker := range considered {
		weights[ticker] = p.assets[ticker].CurrentValue(lastPrices[ticker]) / filtered
	}

	return &Weighting{
		Weights:       weights,
		Tickers:       considered,
		FilteredValue: filtered,
		TotalValue:    total,
	}, nil
}
