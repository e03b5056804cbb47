package calculator

import (
	"errors"
	"math"
	"sort"

	"PortfolioTracker/internal/model"
)

// LogReturns computes per-period log returns ln(p_t / p_{t-1}) over
// consecutive observations. Non-finite results (from zero or negative
// prices) are dropped.
func LogReturns(series []model.PricePoint) []float64 {
	if len(series) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		r := math.Log(series[i].Price / series[i-1].Price)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		returns = append(returns, r)
	}
	return returns
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values))), nil
}

// Quantile returns the q-th quantile (0 <= q <= 1) of values using linear
// interpolation between closest ranks. The input slice is not modified.
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	if q < 0 || q > 1 {
		return 0, errors.New("quantile must be within [0, 1]")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}
