package cmd

import (
	"fmt"
	"os"

	"github.com/KodaEd/cinema-tui/pkg/config"
	"github.com/KodaEd/cinema-tui/pkg/tui"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cinema-tui",
	Short: "A TUI for Ritz Cinemas showtimes",
	Long: `cinema-tui scrapes the Ritz Cinemas now-showing pages into a local
schedule you can browse by date, with OMDb movie details and calendar export.
Run with no arguments to open the interactive interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return tui.Run(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
