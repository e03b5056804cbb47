package collector

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"PortfolioTracker/internal/model"
)

// ErrUnknownTicker is returned when the data source does not recognize a
// symbol. Tickers must be resolved through the collector before they are
// used in any calculation.
var ErrUnknownTicker = errors.New("ticker not recognized by data source")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Prices  map[string]float64
	History map[string][]model.PricePoint
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(symbol string, start, end time.Time) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	series, ok := m.History[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, symbol)
	}
	out := make([]model.PricePoint, 0, len(series))
	for _, p := range series {
		if p.Date.Before(start) {
			continue
		}
		if !end.IsZero() && p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MockFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTicker, symbol)
	}
	return price, nil
}

// Collector fronts a Fetcher with ticker resolution and a last-price cache.
// All network I/O happens here, before any core calculation runs; the cache
// refreshes only through explicit Refresh calls (daily data, constant
// updating not required).
type Collector struct {
	Fetcher Fetcher

	mu    sync.Mutex
	cache map[string]float64
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, cache: make(map[string]float64)}
}

// Resolve checks that the data source knows the ticker and returns its last
// price, caching it. Unknown tickers fail with ErrUnknownTicker so they are
// rejected before entering the portfolio.
func (c *Collector) Resolve(ticker string) (float64, error) {
	price, err := c.Fetcher.FetchCurrentPrice(ticker)
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", ticker, err)
	}
	c.mu.Lock()
	c.cache[ticker] = price
	c.mu.Unlock()
	return price, nil
}

// LastPrices returns the last known price for each ticker, fetching any
// that are not cached yet.
func (c *Collector) LastPrices(tickers []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		c.mu.Lock()
		price, ok := c.cache[ticker]
		c.mu.Unlock()
		if !ok {
			var err error
			price, err = c.Resolve(ticker)
			if err != nil {
				return nil, err
			}
		}
		prices[ticker] = price
	}
	return prices, nil
}

// History fetches daily close series for all tickers over the date range.
func (c *Collector) History(tickers []string, start, end time.Time) (map[string][]model.PricePoint, error) {
	out := make(map[string][]model.PricePoint, len(tickers))
	for _, ticker := range tickers {
		series, err := c.Fetcher.FetchDailyCloses(ticker, start, end)
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", ticker, err)
		}
		out[ticker] = series
	}
	return out, nil
}

// Refresh re-fetches the last price of every cached ticker. Failed tickers
// keep their previous cached value.
func (c *Collector) Refresh() {
	c.mu.Lock()
	tickers := make([]string, 0, len(c.cache))
	for t := range c.cache {
		tickers = append(tickers, t)
	}
	c.mu.Unlock()

	for _, ticker := range tickers {
		price, err := c.Fetcher.FetchCurrentPrice(ticker)
		if err != nil {
			log.Printf("[WARN] refresh %s: %v", ticker, err)
			continue
		}
		c.mu.Lock()
		c.cache[ticker] = price
		c.mu.Unlock()
	}
}
