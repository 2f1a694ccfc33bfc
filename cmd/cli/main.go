package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jobdeck/jobdeck/cmd/cli/commands"
)

func main() {
	// .env is optional for the CLI; flags and environment win.
	_ = godotenv.Load()

	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
