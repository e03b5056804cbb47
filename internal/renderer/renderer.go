// Package renderer turns core results into plain-text tables. It holds no
// calculation logic of its own.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"PortfolioTracker/internal/calculator"
	"PortfolioTracker/internal/model"
	"PortfolioTracker/internal/portfolio"
)

// Summary renders the holdings table: one row per asset in insertion order.
func Summary(p *portfolio.Portfolio, lastPrices map[string]float64) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-8s %-28s %-22s %-16s %10s %14s %14s %14s\n",
		"Ticker", "Name", "Sector", "Asset Class", "Quantity", "Cost Basis", "Value", "Gain/Loss"))
	b.WriteString(strings.Repeat("-", 132))
	b.WriteString("\n")

	for _, ticker := range p.Tickers() {
		a, err := p.Get(ticker)
		if err != nil {
			continue
		}
		price := lastPrices[ticker]
		b.WriteString(fmt.Sprintf("%-8s %-28s %-22s %-16s %10d %14s %14s %14s\n",
			a.Ticker,
			truncate(a.DisplayName, 28),
			a.Sector,
			a.AssetClass,
			a.TotalQuantity(),
			money(a.CostBasis().InexactFloat64()),
			money(a.CurrentValue(price)),
			money(a.GainLoss(price)),
		))
	}
	return b.String()
}

// WeightsTable renders a weighting result, including the considered set's
// share of the whole portfolio when a restriction is active.
func WeightsTable(w *portfolio.Weighting, r *model.Restriction) string {
	var b strings.Builder

	if r == nil {
		b.WriteString("Portfolio weights (total):\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Weights for %s\n", r))
		b.WriteString(fmt.Sprintf("Share of total portfolio: %.3f (%s of %s)\n\n",
			w.FilteredValue/w.TotalValue, money(w.FilteredValue), money(w.TotalValue)))
	}

	b.WriteString(fmt.Sprintf("%-8s %10s\n", "Ticker", "Weight"))
	b.WriteString(strings.Repeat("-", 19))
	b.WriteString("\n")
	for _, ticker := range w.Tickers {
		b.WriteString(fmt.Sprintf("%-8s %10.3f\n", ticker, w.Weights[ticker]))
	}
	return b.String()
}

// SimulationReport renders the run parameters and the quantile fan of the
// simulated paths at yearly steps plus the final horizon.
func SimulationReport(res *model.SimulationResult, restriction string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Monte Carlo simulation (%s)\n", restriction))
	b.WriteString(fmt.Sprintf("Paths: %s   Horizon: %d months\n",
		humanize.Comma(int64(res.Simulations())), res.Months()))
	b.WriteString(fmt.Sprintf("Drift mu=%.6f   Volatility sigma=%.6f (per period)\n", res.Mu, res.Sigma))
	b.WriteString(fmt.Sprintf("Starting NAV: %s\n\n", money(res.LastNAV)))

	b.WriteString(fmt.Sprintf("%-12s %12s %12s %12s %12s %12s\n",
		"Date", "q05", "q25", "q50", "q75", "q95"))
	b.WriteString(strings.Repeat("-", 77))
	b.WriteString("\n")

	for m := 0; m < res.Months(); m++ {
		if (m+1)%12 != 0 && m != res.Months()-1 {
			continue
		}
		row := res.Paths[m]
		q05, _ := calculator.Quantile(row, 0.05)
		q25, _ := calculator.Quantile(row, 0.25)
		q50, _ := calculator.Quantile(row, 0.50)
		q75, _ := calculator.Quantile(row, 0.75)
		q95, _ := calculator.Quantile(row, 0.95)
		b.WriteString(fmt.Sprintf("%-12s %12s %12s %12s %12s %12s\n",
			res.ForwardDates[m].Format("2006-01-02"),
			money(q05), money(q25), money(q50), money(q75), money(q95)))
	}
	return b.String()
}

func money(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
