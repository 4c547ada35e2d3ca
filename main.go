package main

import (
	"os"

	"github.com/griduniverse/griduniverse-go/benchmarks/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
