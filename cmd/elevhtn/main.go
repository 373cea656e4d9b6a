package main

import (
	"os"

	"elevhtn/cmd/elevhtn/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
