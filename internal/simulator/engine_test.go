package simulator

import (
	"errors"
	"math"
	"testing"
	"time"

	"PortfolioTracker/internal/model"
)

func navSeries(prices ...float64) []model.PricePoint {
	out := make([]model.PricePoint, len(prices))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		out[i] = model.PricePoint{Date: base.AddDate(0, 0, i), Price: p}
	}
	return out
}

func seed(v int64) *int64 { return &v }

func TestRun_InsufficientHistory(t *testing.T) {
	p := Params{Simulations: 10, Months: 6}

	for _, nav := range [][]model.PricePoint{nil, navSeries(100)} {
		_, err := Run(nav, p)
		if !errors.Is(err, ErrInsufficientHistory) {
			t.Errorf("nav len %d: expected ErrInsufficientHistory, got %v", len(nav), err)
		}
	}
}

func TestRun_NonChronologicalHistory(t *testing.T) {
	nav := navSeries(100, 110)
	nav[1].Date = nav[0].Date // duplicate date

	_, err := Run(nav, Params{Simulations: 10, Months: 6})
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory for non-increasing dates, got %v", err)
	}
}

func TestParamsValidate_Bounds(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"valid small", Params{Simulations: 1, Months: 1}, true},
		{"valid large", Params{Simulations: MaxSimulations, Months: MaxMonths}, true},
		{"zero sims", Params{Simulations: 0, Months: 12}, false},
		{"too many sims", Params{Simulations: MaxSimulations + 1, Months: 12}, false},
		{"zero months", Params{Simulations: 100, Months: 0}, false},
		{"negative months", Params{Simulations: 100, Months: -3}, false},
		{"too many months", Params{Simulations: 100, Months: MaxMonths + 1}, false},
	}
	for _, tt := range tests {
		err := tt.p.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tt.name, err)
		}
	}
}

func TestRun_ShapeAndPositivity(t *testing.T) {
	nav := navSeries(100, 102, 99, 104, 103, 108, 110, 107, 111, 115)
	p := Params{Simulations: 50, Months: 18, Seed: seed(1)}

	result, err := Run(nav, p)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Months() != 18 || result.Simulations() != 50 {
		t.Fatalf("expected shape (18, 50), got (%d, %d)", result.Months(), result.Simulations())
	}
	if len(result.ForwardDates) != 18 {
		t.Fatalf("expected 18 forward dates, got %d", len(result.ForwardDates))
	}
	for m, row := range result.Paths {
		if len(row) != 50 {
			t.Fatalf("month %d: row length %d", m, len(row))
		}
		for s, v := range row {
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("path (%d, %d) = %v, want strictly positive finite", m, s, v)
			}
		}
	}
	for i := 1; i < len(result.ForwardDates); i++ {
		if !result.ForwardDates[i].After(result.ForwardDates[i-1]) {
			t.Errorf("forward dates not increasing at %d", i)
		}
	}
	if result.LastNAV != 115 {
		t.Errorf("expected last NAV 115, got %.2f", result.LastNAV)
	}
}

func TestRun_SeededReproducibility(t *testing.T) {
	nav := navSeries(100, 101, 103, 102, 105, 107)
	p := Params{Simulations: 20, Months: 12, Seed: seed(42)}

	first, err := Run(nav, p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(nav, p)
	if err != nil {
		t.Fatal(err)
	}
	for m := range first.Paths {
		for s := range first.Paths[m] {
			if first.Paths[m][s] != second.Paths[m][s] {
				t.Fatalf("seeded runs diverge at (%d, %d)", m, s)
			}
		}
	}

	other, err := Run(nav, Params{Simulations: 20, Months: 12, Seed: seed(43)})
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for m := range first.Paths {
		for s := range first.Paths[m] {
			if first.Paths[m][s] != other.Paths[m][s] {
				same = false
			}
		}
	}
	if same {
		t.Error("different seeds produced identical matrices")
	}
}

func TestRun_EstimatesMatchInput(t *testing.T) {
	// A constant-growth series has sigma 0 and mu = the constant log step,
	// so every path is deterministic regardless of seed.
	nav := navSeries(100, 110, 121, 133.1)
	p := Params{Simulations: 3, Months: 2}

	result, err := Run(nav, p)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(result.Mu-math.Log(1.1)) > 1e-9 {
		t.Errorf("mu %.9f, want ln(1.1)", result.Mu)
	}
	if result.Sigma > 1e-9 {
		t.Errorf("sigma %.12f, want 0", result.Sigma)
	}
	wantMonth1 := 133.1 * 1.1
	wantMonth2 := 133.1 * 1.1 * 1.1
	for s := 0; s < 3; s++ {
		if math.Abs(result.Paths[0][s]-wantMonth1) > 1e-6 {
			t.Errorf("path (0, %d) = %.6f, want %.6f", s, result.Paths[0][s], wantMonth1)
		}
		if math.Abs(result.Paths[1][s]-wantMonth2) > 1e-6 {
			t.Errorf("path (1, %d) = %.6f, want %.6f", s, result.Paths[1][s], wantMonth2)
		}
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	nav := navSeries(100, 105, 103, 108)
	copyNav := make([]model.PricePoint, len(nav))
	copy(copyNav, nav)

	if _, err := Run(nav, Params{Simulations: 5, Months: 3, Seed: seed(7)}); err != nil {
		t.Fatal(err)
	}
	for i := range nav {
		if nav[i] != copyNav[i] {
			t.Fatalf("input series mutated at %d", i)
		}
	}
}
