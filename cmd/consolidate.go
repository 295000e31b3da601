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

// consolidateCmd holds the flags for the 'consolidate' subcommand.
type consolidateCmd struct {
	file string
}

func (*consolidateCmd) Name() string     { return "consolidate" }
func (*consolidateCmd) Synopsis() string { return "display the consolidation plan" }
func (*consolidateCmd) Usage() string {
	return `mfl consolidate -f <file>

  Prints, for every sub-category holding more than two schemes, the scheme to
  keep and the value that could be moved into it.
`
}

func (c *consolidateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio export file (CSV, XLSX or JSON).")
}

func (c *consolidateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ConsolidationMarkdown(renderer.NewAnalysis(res, false)))
	return subcommands.ExitSuccess
}
