package collector

import (
	"time"

	"PortfolioTracker/internal/model"
)

// Fetcher defines the interface for fetching market data. A zero end time
// means "through the most recent available observation".
type Fetcher interface {
	FetchDailyCloses(symbol string, start, end time.Time) ([]model.PricePoint, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
