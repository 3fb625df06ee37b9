package main

import (
	"os"

	"github.com/mutasi-dev/mutasi/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
