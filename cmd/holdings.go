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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	file string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the canonical holdings table" }
func (*holdingsCmd) Usage() string {
	return `mfl holdings -f <file>

  Decodes and normalizes the export, then prints the canonical holdings with
  their derived per-unit values and absolute returns.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio export file (CSV, XLSX or JSON).")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <file> is required")
		return subcommands.ExitUsageError
	}

	holdings, err := loadHoldings(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := fundlens.Analyze(holdings, false)
	printMarkdown(renderer.HoldingsMarkdown(renderer.NewHoldings(res.Holdings)))
	return subcommands.ExitSuccess
}
