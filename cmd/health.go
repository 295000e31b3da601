package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fundlens/fundlens"
	"github.com/fundlens/fundlens/renderer"
	"github.com/google/subcommands"
)

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	file     string
	simulate bool
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display the portfolio health score" }
func (*healthCmd) Usage() string {
	return `mfl health -f <file> [-simulate]

  Prints the health score, its label and the cleanup simulation figures.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio export file (CSV, XLSX or JSON).")
	f.BoolVar(&c.simulate, "simulate", false, "Score as if all clutter holdings were sold.")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <file> is required")
		return subcommands.ExitUsageError
	}

	holdings, err := loadHoldings(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := fundlens.Analyze(holdings, c.simulate)
	printMarkdown(renderer.HealthMarkdown(renderer.NewAnalysis(res, c.simulate)))
	return subcommands.ExitSuccess
}
