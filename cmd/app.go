// Package cmd implements the CLI application to analyze a portfolio export.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fundlens/fundlens"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&consolidateCmd{}, "reports")
	c.Register(&healthCmd{}, "reports")

	c.Register(&benchmarksCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")

	c.Register(&assistCmd{}, "assistant")
}

// loadHoldings reads a portfolio export (CSV, XLSX or JSON) and returns the
// canonical holdings. A file that yields no usable holdings is an error here,
// even though the normalizer itself never fails.
func loadHoldings(filename string) ([]fundlens.Holding, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read export file %q: %w", filename, err)
	}
	grid, err := fundlens.DecodeGrid(data, filename)
	if err != nil {
		return nil, fmt.Errorf("could not decode export file %q: %w", filename, err)
	}
	holdings := fundlens.Normalize(grid)
	if len(holdings) == 0 {
		return nil, fmt.Errorf("no data found in %q (no usable header row)", filename)
	}
	// The header row never yields a holding, hence the -1.
	if dropped := len(grid) - 1 - len(holdings); dropped > 0 {
		log.Printf("warning, %d rows of %q yielded no holding (preamble, empty, or missing a scheme name)", dropped, filename)
	}
	return holdings, nil
}
