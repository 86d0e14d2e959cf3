package main

import (
	"os"

	"github.com/eriklarko/booleval/src/commands"
	"github.com/eriklarko/booleval/src/tui"
)

func main() {
	runner := commands.NewRunner(os.Stdout, os.Stderr, tui.New())
	os.Exit(runner.Run(os.Args))
}
