package main

import (
	"os"

	"github.com/joefazee/travel-explorer/cmd/explorer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
