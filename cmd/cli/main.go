// Package main is the entry point for the agency-quote CLI.
package main

import (
	"os"

	"agency-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
