package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/ritz"
	"github.com/KodaEd/cinema-tui/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showtimesCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "Print showtimes for a single day",
	Long:  `Fetch and display the Ritz Cinemas listings for one day without opening the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("day")
		label = strings.ToLower(strings.TrimSpace(label))

		client := ritz.NewClient()
		date := ritz.ResolveDayLabel(label, time.Now())

		var day ritz.Schedule
		var err error
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching showtimes for %s...", label)).
			Action(func() {
				day, err = client.FetchDay(label, date)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not fetch showtimes: %w", err)
		}

		printDay(day, date)
		return nil
	},
}

func printDay(day ritz.Schedule, date time.Time) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0)
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Ritz Cinemas: %s", date.Format("Monday 2 January"))))

	showings := schedule.FilterByDate(day, date)
	if len(showings) == 0 {
		fmt.Println("No sessions found for this day.")
		return
	}

	for _, s := range showings {
		var times []string
		for _, t := range s.Times {
			times = append(times, strings.ToLower(t.Format("3:04 pm")))
		}
		fmt.Printf("%s\n  %s\n", s.Title, timeStyle.Render(strings.Join(times, ", ")))
	}
}

func init() {
	rootCmd.AddCommand(showtimesCmd)

	showtimesCmd.Flags().StringP("day", "d", "today", "Day to fetch (today, tomorrow or a weekday name)")
}
