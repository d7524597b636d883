// Chromalint - WCAG colour contrast analyser
//
// Chromalint checks an extracted web-page colour palette for WCAG
// contrast compliance, including under simulated colour-vision
// deficiencies.
//
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/chromalint/chromalint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
