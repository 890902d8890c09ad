package ritz

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveDayLabel maps a day label from the listings site ("today",
// "tomorrow" or a weekday name) to midnight of the calendar day it refers
// to. A weekday label resolves to its next occurrence at or after today, so
// the current weekday resolves to today itself. Unrecognised labels fall back
// to today rather than failing; the site only ever publishes the labels
// above, so anything else means our scrape of the day selector drifted.
func ResolveDayLabel(label string, today time.Time) time.Time {
	day := Midnight(today)

	switch lower := strings.ToLower(label); lower {
	case "today":
		return day
	case "tomorrow":
		return day.AddDate(0, 0, 1)
	default:
		target, ok := weekdayNames[lower]
		if !ok {
			return day
		}
		offset := (int(target) - int(day.Weekday()) + 7) % 7
		return day.AddDate(0, 0, offset)
	}
}

// ParseClockOffset parses a 12-hour clock string as it appears on the
// listings page ("7:30 pm", case-insensitive) into minutes since midnight.
func ParseClockOffset(text string) (int, error) {
	t, err := time.Parse("3:04 pm", strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return 0, fmt.Errorf("could not parse showtime %q: %w", text, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AbsoluteShowtime combines a day at local midnight with a minutes-from-
// midnight offset into the absolute time one screening begins.
func AbsoluteShowtime(date time.Time, minutesFromMidnight int) time.Time {
	return date.Add(time.Duration(minutesFromMidnight) * time.Minute)
}

// FallbackDayLabels is the label sequence used when endpoint discovery
// fails: today, tomorrow, then the following five weekday names in calendar
// order.
func FallbackDayLabels(today time.Time) []string {
	labels := []string{"today", "tomorrow"}
	day := Midnight(today)
	for offset := 2; offset < 7; offset++ {
		name := strings.ToLower(day.AddDate(0, 0, offset).Weekday().String())
		labels = append(labels, name)
	}
	return labels
}
