// Package schedule derives display-ready views from a scraped schedule: the
// set of dates it covers, whether it has gone stale, and the per-date,
// title-sorted listing the UI renders.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/ritz"
)

// Showings pairs a movie title with its showtimes on one date. Returned in
// slices sorted by title so rendering order is stable.
type Showings struct {
	Title string
	Times []time.Time
}

// AvailableDates collects the distinct calendar days (local midnights)
// present anywhere in the schedule, sorted ascending.
func AvailableDates(s ritz.Schedule) []time.Time {
	// Keyed by unix seconds: time.Time is not a reliable map key once
	// values have been through a JSON round trip.
	seen := make(map[int64]bool)

	var dates []time.Time
	for _, times := range s {
		for _, t := range times {
			day := ritz.Midnight(t)
			if !seen[day.Unix()] {
				seen[day.Unix()] = true
				dates = append(dates, day)
			}
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// IsStale reports whether the earliest available date has already passed,
// meaning the cached first day is strictly before now's calendar day. A hint
// that a refresh is worthwhile, not an error.
func IsStale(dates []time.Time, now time.Time) bool {
	if len(dates) == 0 {
		return false
	}
	return dates[0].Before(ritz.Midnight(now))
}

// FilterByDate keeps only the showtimes falling on the given calendar day,
// dropping titles with nothing showing that day. The result is sorted by
// title, case-insensitively.
func FilterByDate(s ritz.Schedule, date time.Time) []Showings {
	day := ritz.Midnight(date)

	var result []Showings
	for title, times := range s {
		var kept []time.Time
		for _, t := range times {
			if ritz.Midnight(t).Equal(day) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			continue
		}
		sort.Slice(kept, func(i, j int) bool { return kept[i].Before(kept[j]) })
		result = append(result, Showings{Title: title, Times: kept})
	}

	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Title) < strings.ToLower(result[j].Title)
	})
	return result
}
