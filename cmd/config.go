package cmd

import (
	"github.com/KodaEd/cinema-tui/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long:  `Interactively set the OMDb API key and the interface accent color.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
