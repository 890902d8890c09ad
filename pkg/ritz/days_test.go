package ritz

import (
	"strings"
	"testing"
	"time"
)

func TestResolveDayLabelKeywords(t *testing.T) {
	today := time.Date(2026, 3, 4, 15, 30, 0, 0, time.Local) // a Wednesday afternoon

	resolved := ResolveDayLabel("today", today)
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
	if !resolved.Equal(want) {
		t.Errorf("expected 'today' to resolve to %v, got %v", want, resolved)
	}

	resolved = ResolveDayLabel("tomorrow", today)
	want = time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)
	if !resolved.Equal(want) {
		t.Errorf("expected 'tomorrow' to resolve to %v, got %v", want, resolved)
	}
}

func TestResolveDayLabelWeekdays(t *testing.T) {
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local) // Wednesday

	tests := []struct {
		label string
		want  time.Time
	}{
		{"wednesday", today},                // same weekday resolves to today, not next week
		{"thursday", today.AddDate(0, 0, 1)},
		{"saturday", today.AddDate(0, 0, 3)},
		{"sunday", today.AddDate(0, 0, 4)},
		{"monday", today.AddDate(0, 0, 5)}, // wraps into next week
		{"tuesday", today.AddDate(0, 0, 6)},
		{"Friday", today.AddDate(0, 0, 2)}, // labels are case-insensitive
	}

	for _, tc := range tests {
		got := ResolveDayLabel(tc.label, today)
		if !got.Equal(tc.want) {
			t.Errorf("ResolveDayLabel(%q) = %v, expected %v", tc.label, got, tc.want)
		}
	}
}

func TestResolveDayLabelProperties(t *testing.T) {
	// For any weekday label the result bears that weekday name and is never
	// more than 6 days out, regardless of the starting day.
	labels := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		today := start.AddDate(0, 0, dayOffset)
		for _, label := range labels {
			resolved := ResolveDayLabel(label, today)

			if got := strings.ToLower(resolved.Weekday().String()); got != label {
				t.Errorf("ResolveDayLabel(%q, %v) fell on %s", label, today, got)
			}
			if resolved.Before(today) {
				t.Errorf("ResolveDayLabel(%q, %v) resolved to the past: %v", label, today, resolved)
			}
			if resolved.After(today.AddDate(0, 0, 6)) {
				t.Errorf("ResolveDayLabel(%q, %v) resolved more than 6 days out: %v", label, today, resolved)
			}
		}
	}
}

func TestResolveDayLabelUnknownFallsBackToToday(t *testing.T) {
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)

	if got := ResolveDayLabel("someday", today); !got.Equal(today) {
		t.Errorf("expected unknown label to fall back to today, got %v", got)
	}
}

func TestParseClockOffset(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"7:30 pm", 1170},
		{"12:00 am", 0},
		{"12:15 pm", 735},
		{"2:00 pm", 840},
		{"9:05 AM", 545}, // marker case is not significant
		{" 7:15 pm ", 1155},
	}

	for _, tc := range tests {
		got, err := ParseClockOffset(tc.text)
		if err != nil {
			t.Errorf("ParseClockOffset(%q) returned error: %v", tc.text, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockOffset(%q) = %d, expected %d", tc.text, got, tc.want)
		}
	}
}

func TestParseClockOffsetMalformed(t *testing.T) {
	for _, text := range []string{"", "25:00 pm", "7.30 pm", "soon", "7:30"} {
		if _, err := ParseClockOffset(text); err == nil {
			t.Errorf("expected ParseClockOffset(%q) to fail, but it succeeded", text)
		}
	}
}

func TestAbsoluteShowtime(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)

	got := AbsoluteShowtime(date, 1170)
	want := time.Date(2026, 3, 4, 19, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("AbsoluteShowtime = %v, expected %v", got, want)
	}
}

func TestFallbackDayLabels(t *testing.T) {
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local) // Wednesday

	got := FallbackDayLabels(today)
	want := []string{"today", "tomorrow", "friday", "saturday", "sunday", "monday", "tuesday"}

	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}
