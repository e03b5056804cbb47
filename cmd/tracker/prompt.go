package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"PortfolioTracker/internal/model"
	"PortfolioTracker/internal/simulator"
)

const dateLayout = "2006-01-02"

func (a *App) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := a.In.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptInt(label string) (int64, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Printf("%q is not numeric, please provide a numeric value.\n", line)
			continue
		}
		return n, nil
	}
}

func (a *App) promptDecimal(label string) (decimal.Decimal, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Printf("%q is not numeric, please provide a numeric value.\n", line)
			continue
		}
		return d, nil
	}
}

func (a *App) promptChoice(label string, choices []string, valid func(string) bool) (string, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		fmt.Printf("Invalid choice, pick one of: %s\n", strings.Join(choices, ", "))
	}
}

func (a *App) promptDate(label string) (time.Time, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(dateLayout, line)
		if err != nil {
			fmt.Println("Invalid date entered, please use the format YYYY-MM-DD.")
			continue
		}
		return t, nil
	}
}

// promptOptionalDate accepts "None" or an empty line as "through most
// recent", returned as the zero time.
func (a *App) promptOptionalDate(label string) (time.Time, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		if line == "" || strings.EqualFold(line, "none") {
			return time.Time{}, nil
		}
		t, err := time.Parse(dateLayout, line)
		if err != nil {
			fmt.Println("Invalid date entered, please use the format YYYY-MM-DD.")
			continue
		}
		return t, nil
	}
}

// promptRestriction builds the optional (asset class, sector) filter.
// "All" on both dimensions yields a nil restriction.
func (a *App) promptRestriction() (*model.Restriction, error) {
	classChoices := append([]string{"All"}, model.AssetClasses...)
	sectorChoices := append([]string{"All"}, model.Sectors...)

	class, err := a.promptChoice("By asset class (All or a specific class): ", classChoices,
		func(s string) bool { return s == "All" || model.ValidAssetClass(s) })
	if err != nil {
		return nil, err
	}
	sector, err := a.promptChoice("By sector (All or a specific sector): ", sectorChoices,
		func(s string) bool { return s == "All" || model.ValidSector(s) })
	if err != nil {
		return nil, err
	}

	if class == "All" && sector == "All" {
		return nil, nil
	}
	r := &model.Restriction{}
	if class != "All" {
		r.AssetClass = &class
	}
	if sector != "All" {
		r.Sector = &sector
	}
	return r, nil
}

func (a *App) promptSimulations() (int, error) {
	for {
		n, err := a.promptInt(fmt.Sprintf("Number of simulations (default %d): ",
			a.Config.Simulation.DefaultSimulations))
		if err != nil {
			return 0, err
		}
		if n < 1 || n > simulator.MaxSimulations {
			fmt.Printf("Allowed range is 1 to %d.\n", simulator.MaxSimulations)
			continue
		}
		return int(n), nil
	}
}

// promptHorizonMonths reads the horizon in years and converts it to whole
// months: years*12 must be a positive integer no greater than 100 years.
func (a *App) promptHorizonMonths() (int, error) {
	for {
		line, err := a.prompt("Number of years (min 1/12, max 100): ")
		if err != nil {
			return 0, err
		}
		years, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println("Provide a number.")
			continue
		}
		months := years * 12
		if months != float64(int(months)) || int(months) < 1 {
			fmt.Println("Unable to process, make sure the input times 12 is a positive integer.")
			continue
		}
		if years > 100 {
			fmt.Println("Input exceeded 100 years.")
			continue
		}
		return int(months), nil
	}
}
