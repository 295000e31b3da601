package cmd

import (
	"context"
	"flag"

	"github.com/fundlens/fundlens/renderer"
	"github.com/google/subcommands"
)

type benchmarksCmd struct{}

func (*benchmarksCmd) Name() string     { return "benchmarks" }
func (*benchmarksCmd) Synopsis() string { return "display the fixed benchmark table" }
func (*benchmarksCmd) Usage() string {
	return `mfl benchmarks

  Prints the fixed sub-category to benchmark mapping used by 'analyze'.
`
}

func (*benchmarksCmd) SetFlags(f *flag.FlagSet) {}

func (c *benchmarksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.BenchmarkTableMarkdown(renderer.NewBenchmarkTable()))
	return subcommands.ExitSuccess
}
