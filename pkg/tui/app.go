package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KodaEd/cinema-tui/pkg/cache"
	"github.com/KodaEd/cinema-tui/pkg/config"
	"github.com/KodaEd/cinema-tui/pkg/omdb"
	"github.com/KodaEd/cinema-tui/pkg/ritz"
	"github.com/KodaEd/cinema-tui/pkg/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMain screen = iota
	screenDetail
)

// pollInterval drives the UI tick that polls the background channels; every
// poll is non-blocking, so the interval only bounds message latency.
const pollInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the foreground state of the application. The schedule it holds is
// owned exclusively by the UI goroutine: background workers build their own
// copy and hand it over once through their channel.
type Model struct {
	client *ritz.Client
	omdb   *omdb.Client

	schedule       ritz.Schedule
	availableDates []time.Time
	lastUpdated    time.Time

	screen    screen
	searching bool
	search    string

	// Showtime acquisition. fetchCh is nil whenever no run is in flight;
	// that nil doubles as the "may start a new run" gate.
	fetchCh     <-chan ritz.FetchMessage
	loading     bool
	loadingMsgs []string
	fetchErr    string

	// Movie detail lookup and poster download, same one-shot channel shape.
	detailCh      <-chan omdb.DetailMessage
	detail        *omdb.Movie
	detailErr     string
	loadingDetail bool

	posterCh      <-chan omdb.PosterMessage
	poster        []byte
	loadingPoster bool

	selectedMovie int
	selectedDate  int

	width  int
	height int
}

// New builds the initial model, warming the schedule from the disk cache.
// No network access happens until the user asks for a refresh.
func New(cfg *config.AppConfig) *Model {
	applyAccent(cfg.AccentColor)

	m := &Model{
		client:   ritz.NewClient(),
		omdb:     omdb.NewClient(cfg.ResolveAPIKey()),
		schedule: make(ritz.Schedule),
	}

	if snapshot, ok := cache.Load(); ok {
		m.schedule = snapshot.Schedule
		m.lastUpdated = snapshot.LastUpdated
		m.availableDates = schedule.AvailableDates(m.schedule)
	}

	return m
}

// Run launches the Bubble Tea program.
func Run(cfg *config.AppConfig) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.pollFetch()
		m.pollDetail()
		m.pollPoster()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// pollFetch drains at most one acquisition message per tick. An empty poll
// is a no-op; after the terminal message the channel is discarded.
func (m *Model) pollFetch() {
	if m.fetchCh == nil {
		return
	}

	select {
	case msg, ok := <-m.fetchCh:
		if !ok {
			m.fetchCh = nil
			return
		}
		switch msg := msg.(type) {
		case ritz.FetchProgress:
			m.loadingMsgs = append(m.loadingMsgs, "Getting movie times for "+displayLabel(msg.Label))
		case ritz.FetchComplete:
			m.schedule = msg.Schedule
			m.lastUpdated = time.Now()
			m.availableDates = schedule.AvailableDates(m.schedule)
			cache.Save(cache.Snapshot{Schedule: m.schedule, LastUpdated: m.lastUpdated})
			m.selectedDate = 0
			m.selectedMovie = 0
			m.loading = false
			m.loadingMsgs = nil
			m.fetchErr = ""
			m.fetchCh = nil
		case ritz.FetchError:
			// Previous schedule and cache stay untouched; fetching is
			// immediately re-enabled.
			m.fetchErr = msg.Error()
			m.loading = false
			m.loadingMsgs = nil
			m.fetchCh = nil
		}
	default:
	}
}

func (m *Model) pollDetail() {
	if m.detailCh == nil {
		return
	}

	select {
	case msg, ok := <-m.detailCh:
		if !ok {
			m.detailCh = nil
			return
		}
		switch msg := msg.(type) {
		case omdb.DetailComplete:
			m.detail = msg.Movie
			m.loadingDetail = false
			m.detailCh = nil
			if msg.Movie.Poster != "" && msg.Movie.Poster != "N/A" {
				m.loadingPoster = true
				m.posterCh = m.omdb.DownloadPosterAsync(msg.Movie.Poster)
			}
		case omdb.DetailError:
			m.detailErr = msg.Err.Error()
			m.loadingDetail = false
			m.detailCh = nil
		}
	default:
	}
}

func (m *Model) pollPoster() {
	if m.posterCh == nil {
		return
	}

	select {
	case msg, ok := <-m.posterCh:
		if !ok {
			m.posterCh = nil
			return
		}
		switch msg := msg.(type) {
		case omdb.PosterComplete:
			m.poster = msg.Data
			m.loadingPoster = false
			m.posterCh = nil
		case omdb.PosterError:
			// The poster is decoration; fail silently.
			m.loadingPoster = false
			m.posterCh = nil
		}
	default:
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search = ""
			m.selectedMovie = 0
		case tea.KeyEnter:
			m.searching = false
		case tea.KeyBackspace:
			if m.search != "" {
				_, size := utf8.DecodeLastRuneInString(m.search)
				m.search = m.search[:len(m.search)-size]
				m.selectedMovie = 0
			}
		case tea.KeyRunes, tea.KeySpace:
			m.search += string(msg.Runes)
			m.selectedMovie = 0
		}
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b":
			m.screen = screenMain
			m.detail = nil
			m.detailErr = ""
			m.detailCh = nil
			m.poster = nil
			m.posterCh = nil
			m.loadingPoster = false
		}
		return m, nil

	default:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/":
			m.searching = true
		case "g":
			m.startFetch()
		case "enter":
			m.openDetail()
		case "down", "j":
			m.moveMovie(1)
		case "up", "k":
			m.moveMovie(-1)
		case "right", "l":
			m.moveDate(1)
		case "left", "h":
			m.moveDate(-1)
		}
		return m, nil
	}
}

// startFetch kicks off an acquisition run unless one is already in flight.
// There is no way to cancel a run; exiting the process abandons it.
func (m *Model) startFetch() {
	if m.loading {
		return
	}
	m.loading = true
	m.loadingMsgs = nil
	m.fetchErr = ""
	m.fetchCh = m.client.FetchAllShowtimes()
}

func (m *Model) openDetail() {
	name := m.selectedMovieTitle()
	if name == "" {
		return
	}

	m.screen = screenDetail
	m.detail = nil
	m.detailErr = ""
	m.poster = nil
	m.loadingDetail = true
	m.detailCh = m.omdb.FetchMovieAsync(name)
}

func (m *Model) moveMovie(delta int) {
	count := len(m.filteredMovies())
	if count == 0 {
		return
	}
	m.selectedMovie = (m.selectedMovie + delta + count) % count
}

func (m *Model) moveDate(delta int) {
	count := len(m.availableDates)
	if count == 0 {
		return
	}
	m.selectedDate = (m.selectedDate + delta + count) % count
	m.selectedMovie = 0
}

func (m *Model) selectedDateValue() (time.Time, bool) {
	if m.selectedDate >= len(m.availableDates) {
		return time.Time{}, false
	}
	return m.availableDates[m.selectedDate], true
}

// filteredMovies is the list the main screen renders: the selected date's
// showings, narrowed by the search term when one is active.
func (m *Model) filteredMovies() []schedule.Showings {
	date, ok := m.selectedDateValue()
	if !ok {
		return nil
	}

	showings := schedule.FilterByDate(m.schedule, date)
	if m.search == "" {
		return showings
	}

	term := strings.ToLower(m.search)
	var filtered []schedule.Showings
	for _, s := range showings {
		if strings.Contains(strings.ToLower(s.Title), term) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (m *Model) selectedMovieTitle() string {
	movies := m.filteredMovies()
	if m.selectedMovie >= len(movies) {
		return ""
	}
	return movies[m.selectedMovie].Title
}
