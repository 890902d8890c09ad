package cmd

import (
	"fmt"
	"os"

	"github.com/KodaEd/cinema-tui/pkg/exporter"
	"github.com/KodaEd/cinema-tui/pkg/ritz"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full week's showtimes to an ICS file",
	Long:  `Fetch every published day of showtimes and export them as calendar events without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		client := ritz.NewClient()

		var sched ritz.Schedule
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching showtimes for the week (exporting to %s)...", output)).
			Action(func() {
				for msg := range client.FetchAllShowtimes() {
					switch m := msg.(type) {
					case ritz.FetchComplete:
						sched = m.Schedule
					case ritz.FetchError:
						fetchErr = m
					}
				}
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch showtimes: %w", fetchErr)
		}

		if len(sched) == 0 {
			return fmt.Errorf("no showtimes found")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(sched, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d movies to %s\n", len(sched), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "showtimes.ics", "Output file path")
}
