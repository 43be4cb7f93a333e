package main

import (
	"os"

	"squash/cmd/squash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
