package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/schedule"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.mainView()
}

func (m *Model) mainView() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.loadingView())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	title := accentStyle.Bold(true).Render("Ritz Cinemas")
	updated := dimStyle.Render("Updated: " + humanizeSince(m.lastUpdated, time.Now()))

	line := headerStyle.Render(title + "  " + updated)

	if schedule.IsStale(m.availableDates, time.Now()) {
		line += warnStyle.Render("  schedule out of date, press g to refresh")
	}
	if m.fetchErr != "" {
		line += "\n" + errorStyle.Render("Error: "+m.fetchErr)
	}

	return line + "\n" + m.dateStripView()
}

func (m *Model) dateStripView() string {
	if len(m.availableDates) == 0 {
		return dimStyle.Render(" no showtimes loaded, press g to fetch ")
	}

	var tabs []string
	for i, date := range m.availableDates {
		label := date.Format("Mon 2 Jan")
		if i == m.selectedDate {
			tabs = append(tabs, selectedStyle.Render(" "+label+" "))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, "")
}

func (m *Model) listView() string {
	movies := m.filteredMovies()

	var b strings.Builder
	if m.searching || m.search != "" {
		b.WriteString(accentStyle.Render("/" + m.search))
		if m.searching {
			b.WriteString(accentStyle.Render("_"))
		}
		b.WriteString("\n")
	}

	if len(movies) == 0 {
		b.WriteString(dimStyle.Render("  nothing showing\n"))
		return b.String()
	}

	for i, movie := range movies {
		var times []string
		for _, t := range movie.Times {
			times = append(times, formatClock(t))
		}
		line := fmt.Sprintf("%s  %s", movie.Title, dimStyle.Render(strings.Join(times, ", ")))

		if i == m.selectedMovie {
			b.WriteString(selectedStyle.Render("> " + movie.Title))
			b.WriteString("  " + dimStyle.Render(strings.Join(times, ", ")))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) loadingView() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Fetching showtimes…"))
	b.WriteString("\n")
	for _, msg := range m.loadingMsgs {
		b.WriteString(dimStyle.Render("  " + msg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) footerView() string {
	keys := []string{
		"j/k movie", "h/l date", "g refresh", "/ search", "enter details", "q quit",
	}
	for i, k := range keys {
		parts := strings.SplitN(k, " ", 2)
		keys[i] = helpKeyStyle.Render(parts[0]) + " " + dimStyle.Render(parts[1])
	}
	return strings.Join(keys, dimStyle.Render("  ·  "))
}

func (m *Model) detailView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(accentStyle.Bold(true).Render("Movie details")))
	b.WriteString("\n\n")

	switch {
	case m.loadingDetail:
		b.WriteString(dimStyle.Render("Looking up movie…\n"))
	case m.detailErr != "":
		b.WriteString(errorStyle.Render("Error: " + m.detailErr))
		b.WriteString("\n")
	case m.detail != nil:
		d := m.detail
		b.WriteString(accentStyle.Bold(true).Render(fmt.Sprintf("%s (%s)", d.Title, d.Year)))
		b.WriteString("\n\n")

		rows := []struct{ label, value string }{
			{"Rated", d.Rated},
			{"Runtime", d.Runtime},
			{"Genre", d.Genre},
			{"Director", d.Director},
			{"Actors", d.Actors},
			{"IMDb", d.IMDBRating},
			{"Metascore", d.Metascore},
			{"Awards", d.Awards},
			{"Box office", d.BoxOffice},
		}
		for _, row := range rows {
			if row.value == "" || row.value == "N/A" {
				continue
			}
			b.WriteString(fmt.Sprintf("%s %s\n", dimStyle.Render(row.label+":"), row.value))
		}

		if d.Plot != "" && d.Plot != "N/A" {
			b.WriteString("\n" + d.Plot + "\n")
		}

		for _, rating := range d.Ratings {
			b.WriteString(dimStyle.Render(fmt.Sprintf("%s: %s\n", rating.Source, rating.Value)))
		}

		switch {
		case m.loadingPoster:
			b.WriteString("\n" + dimStyle.Render("Downloading poster…\n"))
		case len(m.poster) > 0:
			b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("Poster downloaded (%d KB)\n", len(m.poster)/1024)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpKeyStyle.Render("esc/b") + " " + dimStyle.Render("back") +
		dimStyle.Render("  ·  ") + helpKeyStyle.Render("q") + " " + dimStyle.Render("quit"))
	return b.String()
}
