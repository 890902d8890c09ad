package tui

import (
	"fmt"

	"github.com/KodaEd/cinema-tui/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI launches the interactive experience for managing settings
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Settings").
					Options(
						huh.NewOption("Set OMDb API Key", "apikey"),
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "apikey":
			err = runSetAPIKeyTUI(cfg)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.cinema-tui.json) ---"))
			if cfg.OMDbAPIKey == "" {
				fmt.Println("OMDb API Key: Not set")
			} else {
				fmt.Println("OMDb API Key: set")
			}
			fmt.Printf("Accent Color: %s\n\n", cfg.AccentColor)
		}

		if err != nil {
			return err
		}
	}
}

func runSetAPIKeyTUI(cfg *config.AppConfig) error {
	key := cfg.OMDbAPIKey

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OMDb API Key").
				Description("Used for movie detail lookups; free keys at omdbapi.com. The OMDB_API_KEY environment variable overrides this.").
				EchoMode(huh.EchoModePassword).
				Value(&key),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OMDbAPIKey = key
	return config.Save(cfg)
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	color := cfg.AccentColor
	if color == "" {
		color = "205"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent Color").
				Options(
					huh.NewOption("Ritz Pink (205)", "205"),
					huh.NewOption("Purple (99)", "99"),
					huh.NewOption("Gold (178)", "178"),
					huh.NewOption("Teal (37)", "37"),
					huh.NewOption("Red (196)", "196"),
				).
				Value(&color),
		),
	).WithTheme(GetCustomTheme(color))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	return config.Save(cfg)
}
