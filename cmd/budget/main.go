package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cleared-dev/budget/internal/commands"
)

func main() {
	// Optional: BUDGET_* overrides may live in a local .env file.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
