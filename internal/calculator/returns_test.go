package calculator

import (
	"math"
	"testing"
	"time"

	"PortfolioTracker/internal/model"
)

func pts(prices ...float64) []model.PricePoint {
	out := make([]model.PricePoint, len(prices))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range prices {
		out[i] = model.PricePoint{Date: base.AddDate(0, 0, i), Price: p}
	}
	return out
}

func TestLogReturns(t *testing.T) {
	returns := LogReturns(pts(100, 110, 99))
	if len(returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(returns))
	}
	if math.Abs(returns[0]-math.Log(1.1)) > 1e-12 {
		t.Errorf("first return %.12f, want ln(1.1)", returns[0])
	}
	if math.Abs(returns[1]-math.Log(0.9)) > 1e-12 {
		t.Errorf("second return %.12f, want ln(0.9)", returns[1])
	}
}

func TestLogReturns_DropsNonFinite(t *testing.T) {
	// A zero price produces -Inf then NaN; both must be dropped.
	returns := LogReturns(pts(100, 0, 50, 55))
	if len(returns) != 1 {
		t.Fatalf("expected 1 finite return, got %d (%v)", len(returns), returns)
	}
	if math.Abs(returns[0]-math.Log(1.1)) > 1e-12 {
		t.Errorf("surviving return %.12f, want ln(1.1)", returns[0])
	}
}

func TestLogReturns_TooShort(t *testing.T) {
	if got := LogReturns(pts(100)); got != nil {
		t.Errorf("expected nil for a 1-point series, got %v", got)
	}
	if got := LogReturns(nil); got != nil {
		t.Errorf("expected nil for an empty series, got %v", got)
	}
}

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-2.5) > 1e-12 {
		t.Errorf("mean %.12f, want 2.5", got)
	}
	if _, err := Mean(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestStdDev_Population(t *testing.T) {
	// Population std dev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	got, err := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-2.0) > 1e-12 {
		t.Errorf("std dev %.12f, want 2 (population)", got)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.875, 45},
		{1, 50},
	}
	for _, tt := range tests {
		got, err := Quantile(values, tt.q)
		if err != nil {
			t.Fatalf("quantile(%.3f): %v", tt.q, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("quantile(%.3f) = %.4f, want %.4f", tt.q, got, tt.want)
		}
	}
	if _, err := Quantile(values, 1.5); err == nil {
		t.Error("expected error for q outside [0, 1]")
	}
	if _, err := Quantile(nil, 0.5); err == nil {
		t.Error("expected error for empty input")
	}
}
