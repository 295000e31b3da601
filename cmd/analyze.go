package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fundlens/fundlens"
	"github.com/fundlens/fundlens/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	file     string
	simulate bool
	asJSON   bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio export end to end" }
func (*analyzeCmd) Usage() string {
	return `mfl analyze -f <file> [-simulate] [-json]

  Decodes the export, normalizes the holdings and prints the full analysis
  report: totals, allocation, benchmark comparison, consolidation plan,
  holdings needing attention and the health score.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio export file (CSV, XLSX or JSON).")
	f.BoolVar(&c.simulate, "simulate", false, "Analyze as if all clutter holdings were sold.")
	f.BoolVar(&c.asJSON, "json", false, "Print the report as JSON instead of markdown.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	view := renderer.NewAnalysis(res, c.simulate)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AnalysisMarkdown(view))
	return subcommands.ExitSuccess
}
