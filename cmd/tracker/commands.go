package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"time"

	"PortfolioTracker/internal/calculator"
	"PortfolioTracker/internal/collector"
	"PortfolioTracker/internal/config"
	"PortfolioTracker/internal/model"
	"PortfolioTracker/internal/portfolio"
	"PortfolioTracker/internal/recorder"
	"PortfolioTracker/internal/renderer"
	"PortfolioTracker/internal/simulator"
)

// App wires the interactive command loop to the core. It owns the single
// Portfolio instance for the process lifetime.
type App struct {
	Portfolio *portfolio.Portfolio
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Config    *config.Config
	In        *bufio.Reader
}

func (a *App) handleCommand(command string) error {
	switch command {
	case "ADD":
		return a.addAsset()
	case "DELETE":
		return a.deleteAsset()
	case "SHOW":
		return a.showTable()
	case "SIMULATE":
		return a.simulate()
	case "REFRESH":
		a.Collector.Refresh()
		fmt.Println("Price cache refreshed.")
		return nil
	default:
		fmt.Println("Unrecognized command")
		return nil
	}
}

func (a *App) addAsset() error {
	// The ticker must resolve against the data source before anything is
	// recorded.
	var ticker string
	for {
		t, err := a.prompt("Ticker: ")
		if err != nil {
			return err
		}
		if _, err := a.Collector.Resolve(t); err != nil {
			if errors.Is(err, collector.ErrUnknownTicker) {
				fmt.Printf("%s is not known to the data source\n", t)
				continue
			}
			return err
		}
		ticker = t
		break
	}

	quantity, err := a.promptInt("Quantity: ")
	if err != nil {
		return err
	}
	price, err := a.promptDecimal("Purchase price: ")
	if err != nil {
		return err
	}

	// Repeat tickers are routed to the existing ledger rather than a fresh add.
	if a.Portfolio.Has(ticker) {
		asset, err := a.Portfolio.Get(ticker)
		if err != nil {
			return err
		}
		asset.RecordTransaction(quantity, price)
		fmt.Printf("Recorded %d of %s on the existing position.\n", quantity, ticker)
		return nil
	}

	assetClass, err := a.promptChoice("Asset class: ", model.AssetClasses, model.ValidAssetClass)
	if err != nil {
		return err
	}
	sector, err := a.promptChoice("Sector: ", model.Sectors, model.ValidSector)
	if err != nil {
		return err
	}
	name, err := a.prompt("Display name (optional): ")
	if err != nil {
		return err
	}
	if name == "" {
		name = ticker
	}

	asset := model.NewAsset(ticker, name, sector, assetClass, quantity, price)
	if err := a.Portfolio.Add(asset); err != nil {
		return err
	}
	fmt.Printf("Successfully added %d of %s to the portfolio.\n", quantity, ticker)
	return nil
}

func (a *App) deleteAsset() error {
	ticker, err := a.prompt("Ticker to delete: ")
	if err != nil {
		return err
	}
	if err := a.Portfolio.Remove(ticker); err != nil {
		if errors.Is(err, portfolio.ErrAssetNotFound) {
			fmt.Println("Ticker not in portfolio, so no deletion.")
			return nil
		}
		return err
	}
	fmt.Println("Ticker deleted.")
	return nil
}

func (a *App) showTable() error {
	kind, err := a.prompt("Table (Summary or Weights): ")
	if err != nil {
		return err
	}
	switch kind {
	case "Summary", "summary", "SUMMARY":
		return a.showSummary()
	case "Weights", "weights", "WEIGHTS":
		return a.showWeights()
	default:
		fmt.Println("Invalid table type, choose one of the available options.")
		return nil
	}
}

func (a *App) showSummary() error {
	prices, err := a.Collector.LastPrices(a.Portfolio.Tickers())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(renderer.Summary(a.Portfolio, prices))

	snaps := make([]recorder.ValuationSnapshot, 0, a.Portfolio.Len())
	for _, ticker := range a.Portfolio.Tickers() {
		asset, err := a.Portfolio.Get(ticker)
		if err != nil {
			continue
		}
		snaps = append(snaps, recorder.ValuationSnapshot{
			Ticker:     asset.Ticker,
			Sector:     asset.Sector,
			AssetClass: asset.AssetClass,
			Quantity:   asset.TotalQuantity(),
			LastPrice:  prices[ticker],
			Value:      asset.CurrentValue(prices[ticker]),
		})
	}
	if err := a.Recorder.RecordValuation(snaps); err != nil {
		log.Printf("[WARN] record valuation: %v", err)
	}
	return nil
}

func (a *App) showWeights() error {
	restriction, err := a.promptRestriction()
	if err != nil {
		return err
	}
	prices, err := a.Collector.LastPrices(a.Portfolio.Tickers())
	if err != nil {
		return err
	}
	weighting, err := a.Portfolio.Weights(restriction, prices)
	if err != nil {
		if errors.Is(err, portfolio.ErrEmptyFilterResult) {
			fmt.Println("No portfolio value matches that filter.")
			return nil
		}
		return err
	}
	fmt.Println()
	fmt.Print(renderer.WeightsTable(weighting, restriction))
	return nil
}

func (a *App) simulate() error {
	restriction, err := a.promptRestriction()
	if err != nil {
		return err
	}
	start, err := a.promptDate("Start date for history (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := a.promptOptionalDate("End date for history (YYYY-MM-DD or None): ")
	if err != nil {
		return err
	}
	sims, err := a.promptSimulations()
	if err != nil {
		return err
	}
	months, err := a.promptHorizonMonths()
	if err != nil {
		return err
	}

	prices, err := a.Collector.LastPrices(a.Portfolio.Tickers())
	if err != nil {
		return err
	}
	weighting, err := a.Portfolio.Weights(restriction, prices)
	if err != nil {
		if errors.Is(err, portfolio.ErrEmptyFilterResult) {
			fmt.Println("No portfolio value matches that filter.")
			return nil
		}
		return err
	}
	history, err := a.Collector.History(weighting.Tickers, start, end)
	if err != nil {
		return err
	}
	nav, err := a.Portfolio.WeightedPriceSeries(restriction, prices, history)
	if err != nil {
		return err
	}

	began := time.Now()
	result, err := simulator.Run(nav, simulator.Params{Simulations: sims, Months: months})
	if err != nil {
		if errors.Is(err, simulator.ErrInsufficientHistory) {
			fmt.Println("Not enough history in that date range to simulate.")
			return nil
		}
		return err
	}

	fmt.Println()
	fmt.Print(renderer.SimulationReport(result, restriction.String()))

	a.recordSimulation(restriction, result, began)
	return nil
}

func (a *App) recordSimulation(r *model.Restriction, result *model.SimulationResult, began time.Time) {
	horizon := result.Paths[result.Months()-1]
	q05, _ := calculator.Quantile(horizon, 0.05)
	q50, _ := calculator.Quantile(horizon, 0.50)
	q95, _ := calculator.Quantile(horizon, 0.95)

	err := a.Recorder.RecordSimulation(&recorder.SimulationRun{
		Restriction: r.String(),
		Simulations: result.Simulations(),
		Months:      result.Months(),
		Seeded:      false,
		Mu:          result.Mu,
		Sigma:       result.Sigma,
		LastNAV:     result.LastNAV,
		HorizonQ05:  q05,
		HorizonQ50:  q50,
		HorizonQ95:  q95,
		Elapsed:     time.Since(began),
	})
	if err != nil {
		log.Printf("[WARN] record simulation: %v", err)
	}
}
