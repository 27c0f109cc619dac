package srs

import (
	"time"

	"wordrep/internal/domain"
)

// ForecastDay is the projected review load for one calendar day.
type ForecastDay struct {
	Day time.Time
	Due int
}

// Forecast partitions scheduled words into per-day due counts over the
// given horizon. Day boundaries are inclusive below, exclusive above;
// words already overdue count toward the first day. Unscheduled words
// are skipped.
func Forecast(words []domain.WordRecord, now time.Time, days int) []ForecastDay {
	if days <= 0 {
		return nil
	}

	out := make([]ForecastDay, days)
	start := domain.DayOf(now)
	for i := range out {
		out[i].Day = start.AddDate(0, 0, i)
	}
	end := start.AddDate(0, 0, days)

	for _, w := range words {
		if w.NextReview == nil {
			continue
		}
		due := *w.NextReview
		if !due.Before(end) {
			continue
		}
		idx := domain.DaysBetween(start, due)
		if idx < 0 {
			idx = 0 // overdue rolls into today
		}
		out[idx].Due++
	}
	return out
}
