package portfolio

import (
	"math"
	"testing"
	"time"

	"PortfolioTracker/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func series(prices map[int]float64) []model.PricePoint {
	out := make([]model.PricePoint, 0, len(prices))
	for d := 1; d <= 31; d++ {
		if p, ok := prices[d]; ok {
			out = append(out, model.PricePoint{Date: day(d), Price: p})
		}
	}
	return out
}

func TestWeightedPriceSeries_InnerJoin(t *testing.T) {
	p := New()
	// Equal values, so weights are 0.5 / 0.5.
	if err := p.Add(newAsset("AAA", "Energy", "Equities", 10, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(newAsset("BBB", "Utilities", "Equities", 10, 10)); err != nil {
		t.Fatal(err)
	}
	prices := map[string]float64{"AAA": 100, "BBB": 100}

	history := map[string][]model.PricePoint{
		"AAA": series(map[int]float64{1: 100, 4: 110, 5: 105, 8: 120}),
		"BBB": series(map[int]float64{1: 200, 5: 190, 8: 180, 11: 170}),
	}

	nav, err := p.WeightedPriceSeries(nil, prices, history)
	if err != nil {
		t.Fatalf("weighted series: %v", err)
	}

	// Only days 1, 5 and 8 exist for both tickers; days 4 and 11 are dropped.
	if len(nav) != 3 {
		t.Fatalf("expected 3 joined dates, got %d", len(nav))
	}
	want := []struct {
		d     int
		price float64
	}{
		{1, 0.5*100 + 0.5*200},
		{5, 0.5*105 + 0.5*190},
		{8, 0.5*120 + 0.5*180},
	}
	for i, w := range want {
		if !nav[i].Date.Equal(day(w.d)) {
			t.Errorf("point %d: date %s, want %s", i, nav[i].Date, day(w.d))
		}
		if math.Abs(nav[i].Price-w.price) > 1e-9 {
			t.Errorf("point %d: NAV %.4f, want %.4f", i, nav[i].Price, w.price)
		}
	}
}

func TestWeightedPriceSeries_RestrictionSelectsSubset(t *testing.T) {
	p := New()
	if err := p.Add(newAsset("AAA", "Energy", "Equities", 1, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.Add(newAsset("BBB", "Utilities", "Equities", 1, 10)); err != nil {
		t.Fatal(err)
	}
	prices := map[string]float64{"AAA": 100, "BBB": 300}

	history := map[string][]model.PricePoint{
		"AAA": series(map[int]float64{1: 100, 2: 101}),
		// BBB's history is absent; it must not be needed under the filter.
	}

	nav, err := p.WeightedPriceSeries(&model.Restriction{Sector: strptr("Energy")}, prices, history)
	if err != nil {
		t.Fatalf("weighted series: %v", err)
	}
	if len(nav) != 2 {
		t.Fatalf("expected 2 points, got %d", len(nav))
	}
	// Single considered asset has weight 1, so the NAV equals its price.
	if math.Abs(nav[0].Price-100) > 1e-9 || math.Abs(nav[1].Price-101) > 1e-9 {
		t.Errorf("unexpected NAV values: %v", nav)
	}
}

func TestWeightedPriceSeries_MissingHistoryFails(t *testing.T) {
	p := New()
	if err := p.Add(newAsset("AAA", "Energy", "Equities", 1, 10)); err != nil {
		t.Fatal(err)
	}
	prices := map[string]float64{"AAA": 100}

	if _, err := p.WeightedPriceSeries(nil, prices, map[string][]model.PricePoint{}); err == nil {
		t.Fatal("expected error for missing history")
	}
}
