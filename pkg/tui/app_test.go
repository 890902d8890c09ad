package tui

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/config"
	"github.com/KodaEd/cinema-tui/pkg/ritz"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "cinema-tui-tui-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	// Keep cache reads/writes inside the test sandbox.
	t.Setenv("XDG_CACHE_HOME", tempDir)

	return New(&config.AppConfig{})
}

func TestPollFetchEmptyIsNoOp(t *testing.T) {
	m := newTestModel(t)

	ch := make(chan ritz.FetchMessage, 1)
	m.fetchCh = ch
	m.loading = true

	// Nothing queued: the poll must not block and must change nothing.
	m.pollFetch()

	if !m.loading || m.fetchCh == nil {
		t.Errorf("empty poll altered state: loading=%v fetchCh=%v", m.loading, m.fetchCh)
	}
}

func TestPollFetchProgressThenComplete(t *testing.T) {
	m := newTestModel(t)

	showtime := time.Date(2026, 3, 4, 19, 15, 0, 0, time.Local)
	ch := make(chan ritz.FetchMessage, 2)
	ch <- ritz.FetchProgress{Label: "today"}
	ch <- ritz.FetchComplete{Schedule: ritz.Schedule{"Dune: Part Two": {showtime}}}

	m.fetchCh = ch
	m.loading = true
	m.selectedDate = 3
	m.selectedMovie = 5

	m.pollFetch()
	if len(m.loadingMsgs) != 1 || m.loadingMsgs[0] != "Getting movie times for Today" {
		t.Errorf("unexpected loading messages after progress: %v", m.loadingMsgs)
	}

	m.pollFetch()
	if m.loading {
		t.Errorf("expected loading gate to clear after completion")
	}
	if m.fetchCh != nil {
		t.Errorf("expected channel to be discarded after terminal message")
	}
	if len(m.schedule) != 1 {
		t.Fatalf("expected schedule to be replaced, got %v", m.schedule)
	}
	if len(m.availableDates) != 1 || !m.availableDates[0].Equal(ritz.Midnight(showtime)) {
		t.Errorf("available dates not recomputed: %v", m.availableDates)
	}
	if m.selectedDate != 0 || m.selectedMovie != 0 {
		t.Errorf("selection indices not reset: date=%d movie=%d", m.selectedDate, m.selectedMovie)
	}
	if m.lastUpdated.IsZero() {
		t.Errorf("expected lastUpdated to be stamped")
	}
}

func TestPollFetchErrorKeepsPreviousSchedule(t *testing.T) {
	m := newTestModel(t)

	previous := ritz.Schedule{"Past Lives": {time.Date(2026, 3, 4, 18, 30, 0, 0, time.Local)}}
	m.schedule = previous

	ch := make(chan ritz.FetchMessage, 1)
	ch <- ritz.FetchError{Label: "tomorrow", Err: errors.New("connection refused")}

	m.fetchCh = ch
	m.loading = true

	m.pollFetch()

	if m.loading {
		t.Errorf("expected loading gate to clear after an error, so fetching is re-enabled")
	}
	if m.fetchCh != nil {
		t.Errorf("expected channel to be discarded after the error")
	}
	if m.fetchErr == "" {
		t.Errorf("expected the error to be surfaced for display")
	}
	if len(m.schedule) != 1 {
		t.Errorf("expected previous schedule to survive a failed run, got %v", m.schedule)
	}
}

func TestNewAppliesConfiguredAccentColor(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "cinema-tui-accent-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	t.Setenv("XDG_CACHE_HOME", tempDir)

	New(&config.AppConfig{AccentColor: "99"})
	if got := accentStyle.GetForeground(); got != lipgloss.Color("99") {
		t.Errorf("expected accent color 99 after New, got %v", got)
	}

	// No saved color keeps the default.
	New(&config.AppConfig{})
	if got := accentStyle.GetForeground(); got != lipgloss.Color("205") {
		t.Errorf("expected default accent color 205, got %v", got)
	}
}

func TestSearchBackspaceHandlesMultiByteRunes(t *testing.T) {
	m := newTestModel(t)
	m.searching = true
	m.search = "amélie"

	m.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	m.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	m.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})

	if m.search != "amé" {
		t.Errorf("expected search term %q after three backspaces, got %q", "amé", m.search)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.search != "am" {
		t.Errorf("expected the accented rune to be removed whole, got %q", m.search)
	}
}

func TestStartFetchGatesOnInFlightRun(t *testing.T) {
	m := newTestModel(t)

	ch := make(chan ritz.FetchMessage)
	m.fetchCh = ch
	m.loading = true

	m.startFetch()

	// The in-flight channel must not be replaced.
	if m.fetchCh != (<-chan ritz.FetchMessage)(ch) {
		t.Errorf("expected startFetch to be a no-op while a run is in flight")
	}
}
