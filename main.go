package main

import (
	"github.com/KodaEd/cinema-tui/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env can provide OMDB_API_KEY; missing files are fine.
	_ = godotenv.Load()

	cmd.Execute()
}
