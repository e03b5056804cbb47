package portfolio

import (
	"errors"
	"fmt"

	"PortfolioTracker/internal/model"
)

var (
	// ErrAssetNotFound is returned when an operation names a ticker the
	// portfolio does not hold. Recoverable; the portfolio is unchanged.
	ErrAssetNotFound = errors.New("asset not found in portfolio")

	// ErrDuplicateAsset is returned by Add when the ticker already exists.
	// Callers wanting a repeat purchase should use RecordTransaction on the
	// existing asset instead.
	ErrDuplicateAsset = errors.New("asset already in portfolio")

	// ErrEmptyFilterResult is returned when a restriction selects no assets
	// or the selected assets have zero aggregate value.
	ErrEmptyFilterResult = errors.New("restriction matches no portfolio value")
)

// Portfolio owns the ticker to asset mapping. Insertion order is preserved
// for deterministic display; it has no effect on calculations. The zero
// value is not usable, call New.
type Portfolio struct {
	assets map[string]*model.Asset
	order  []string
}

// New creates an empty portfolio.
func New() *Portfolio {
	return &Portfolio{assets: make(map[string]*model.Asset)}
}

// Add inserts a new asset. Fails with ErrDuplicateAsset if the ticker is
// already present.
func (p *Portfolio) Add(a *model.Asset) error {
	if _, ok := p.assets[a.Ticker]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.Ticker)
	}
	p.assets[a.Ticker] = a
	p.order = append(p.order, a.Ticker)
	return nil
}

// Upsert inserts or replaces the asset at its ticker unconditionally.
func (p *Portfolio) Upsert(a *model.Asset) {
	if _, ok := p.assets[a.Ticker]; !ok {
		p.order = append(p.order, a.Ticker)
	}
	p.assets[a.Ticker] = a
}

// Remove deletes the asset at ticker. Fails with ErrAssetNotFound if the
// ticker is absent, leaving the portfolio unchanged.
func (p *Portfolio) Remove(ticker string) error {
	if _, ok := p.assets[ticker]; !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, ticker)
	}
	delete(p.assets, ticker)
	for i, t := range p.order {
		if t == ticker {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Has reports whether the ticker is held.
func (p *Portfolio) Has(ticker string) bool {
	_, ok := p.assets[ticker]
	return ok
}

// Get returns the asset at ticker, or ErrAssetNotFound.
func (p *Portfolio) Get(ticker string) (*model.Asset, error) {
	a, ok := p.assets[ticker]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, ticker)
	}
	return a, nil
}

// Tickers returns the held tickers in insertion order.
func (p *Portfolio) Tickers() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of held assets.
func (p *Portfolio) Len() int { return len(p.assets) }
