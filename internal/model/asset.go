package model

import "github.com/shopspring/decimal"

// Lot is a single recorded purchase or sale: quantity at a unit price.
// Quantity is signed; a negative quantity models a sale.
type Lot struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// TransactionValue returns quantity * unit price for this lot.
func (l Lot) TransactionValue() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Asset is one holding identified by its ticker, with an append-only
// sequence of lots in purchase order. It never fetches prices itself;
// valuation takes the last market price as an argument.
type Asset struct {
	Ticker      string
	DisplayName string
	Sector      string
	AssetClass  string
	Lots        []Lot
}

// NewAsset creates an asset with its first lot.
func NewAsset(ticker, displayName, sector, assetClass string, quantity int64, unitPrice decimal.Decimal) *Asset {
	a := &Asset{
		Ticker:      ticker,
		DisplayName: displayName,
		Sector:      sector,
		AssetClass:  assetClass,
	}
	a.RecordTransaction(quantity, unitPrice)
	return a
}

// RecordTransaction appends a lot. Zero and negative quantities are legal;
// no validation happens here.
func (a *Asset) RecordTransaction(quantity int64, unitPrice decimal.Decimal) {
	a.Lots = append(a.Lots, Lot{Quantity: quantity, UnitPrice: unitPrice})
}

// TotalQuantity sums the signed quantities of all lots.
func (a *Asset) TotalQuantity() int64 {
	var total int64
	for _, l := range a.Lots {
		total += l.Quantity
	}
	return total
}

// TransactionValues returns one value per lot, in lot order.
// The result always has the same length as Lots.
func (a *Asset) TransactionValues() []decimal.Decimal {
	values := make([]decimal.Decimal, len(a.Lots))
	for i, l := range a.Lots {
		values[i] = l.TransactionValue()
	}
	return values
}

// CostBasis sums the transaction values of all lots.
func (a *Asset) CostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, l := range a.Lots {
		total = total.Add(l.TransactionValue())
	}
	return total
}

// CurrentValue returns the market value at the given last price.
func (a *Asset) CurrentValue(lastPrice float64) float64 {
	return float64(a.TotalQuantity()) * lastPrice
}

// GainLoss returns the lot-weighted gain at the given last price:
// sum over lots of quantity*lastPrice - transaction value. No cost-basis
// method selection (not FIFO); all lots are marked at the same price.
func (a *Asset) GainLoss(lastPrice float64) float64 {
	var total float64
	for _, l := range a.Lots {
		total += float64(l.Quantity)*lastPrice - l.TransactionValue().InexactFloat64()
	}
	return total
}
