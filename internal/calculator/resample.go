package calculator

import (
	"time"

	"PortfolioTracker/internal/model"
)

// ResampleMonthEnd reduces a chronological series to the last observation of
// each calendar month, stamped at the calendar month end.
func ResampleMonthEnd(series []model.PricePoint) []model.PricePoint {
	if len(series) == 0 {
		return nil
	}
	out := make([]model.PricePoint, 0, len(series)/20+1)
	for i, p := range series {
		last := i == len(series)-1
		if !last {
			next := series[i+1].Date
			if next.Year() == p.Date.Year() && next.Month() == p.Date.Month() {
				continue
			}
		}
		out = append(out, model.PricePoint{
			Date:  monthEnd(p.Date),
			Price: p.Price,
		})
	}
	return out
}

// MonthEndBusinessDays returns `count` month-end business-day timestamps
// following `start`. The month-end falling on or after `start` itself is
// skipped, so the index begins with the period after the last observation.
// Weekends roll back to the preceding Friday; holidays are not modeled.
func MonthEndBusinessDays(start time.Time, count int) []time.Time {
	dates := make([]time.Time, 0, count)
	year, month := start.Year(), start.Month()
	skipped := false
	for len(dates) < count {
		d := monthEndBusinessDay(year, month)
		if !d.Before(start) {
			if skipped {
				dates = append(dates, d)
			} else {
				skipped = true
			}
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return dates
}

func monthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

func monthEndBusinessDay(year int, month time.Month) time.Time {
	d := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDate(0, 0, -1)
	case time.Sunday:
		d = d.AddDate(0, 0, -2)
	}
	return d
}
