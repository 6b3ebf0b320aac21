// Package main is the entry point for the pricingos CLI.
package main

import (
	"os"

	"github.com/fati-2700/pricingos/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
