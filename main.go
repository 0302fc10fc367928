// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for envalidator.
//
// Usage:
//
//	go run . [flags]
//	./envalidator [flags]
//
// This launches the envalidator CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/envalidator/internal/cli"
)

// main is the entrypoint for the envalidator CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("envalidator error: %v", err)
		os.Exit(1)
	}
}
