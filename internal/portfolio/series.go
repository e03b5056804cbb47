package portfolio

import (
	"fmt"
	"sort"
	"time"

	"PortfolioTracker/internal/model"
)

// WeightedPriceSeries builds a synthetic NAV series for the considered set:
// NAV(t) = sum over tickers of weight * close(t). Only dates where every
// considered ticker has an observation are kept (inner join, no forward
// fill). The weights are the portfolio's weights at call time, so the model
// is a continuously rebalanced what-if of the current mix applied across
// history, not a backtest of actual trade timing.
func (p *Portfolio) WeightedPriceSeries(
	r *model.Restriction,
	lastPrices map[string]float64,
	history map[string][]model.PricePoint,
) ([]model.PricePoint, error) {
	weighting, err := p.Weights(r, lastPrices)
	if err != nil {
		return nil, err
	}

	// Index each considered ticker's series by day.
	byDay := make(map[string]map[int64]float64, len(weighting.Tickers))
	for _, ticker := range weighting.Tickers {
		series, ok := history[ticker]
		if !ok {
			return nil, fmt.Errorf("no price history supplied for %s", ticker)
		}
		idx := make(map[int64]float64, len(series))
		for _, pt := range series {
			idx[dayKey(pt.Date)] = pt.Price
		}
		byDay[ticker] = idx
	}

	// Candidate dates come from the first considered ticker; keep only the
	// ones present for all of them.
	first := weighting.Tickers[0]
	candidates := history[first]
	nav := make([]model.PricePoint, 0, len(candidates))

	for _, pt := range candidates {
		key := dayKey(pt.Date)
		sum := 0.0
		complete := true
		for _, ticker := range weighting.Tickers {
			price, ok := byDay[ticker][key]
			if !ok {
				complete = false
				break
			}
			sum += weighting.Weights[ticker] * price
		}
		if complete {
			nav = append(nav, model.PricePoint{Date: pt.Date, Price: sum})
		}
	}

	sort.Slice(nav, func(i, j int) bool { return nav[i].Date.Before(nav[j].Date) })
	return nav, nil
}

func dayKey(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}
