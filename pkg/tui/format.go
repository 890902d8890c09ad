package tui

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// humanizeSince renders how long ago the schedule was refreshed, in the
// coarsest unit that reads naturally.
func humanizeSince(updated time.Time, now time.Time) string {
	if updated.IsZero() {
		return "Never"
	}

	elapsed := now.Sub(updated)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours()/24))
	}
}

// displayLabel turns a raw day label ("friday") into its display form.
func displayLabel(label string) string {
	return titleCaser.String(strings.ToLower(label))
}

// formatClock renders a showtime the same way the listings page does.
func formatClock(t time.Time) string {
	return strings.ToLower(t.Format("3:04 pm"))
}
