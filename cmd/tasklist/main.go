// Package main provides the CLI for the tasklist console.
package main

import (
	"os"

	"github.com/leapstack-labs/tasklist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
