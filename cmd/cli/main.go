// Package main is the entry point for the pharmacy-cost CLI.
package main

import (
	"os"

	"pharmacy-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
