package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundlens/fundlens/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, installed with COMP_INSTALL=1 mfl.
	exportFile := predict.Files("*")
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze": {Flags: map[string]complete.Predictor{
				"f":        exportFile,
				"simulate": predict.Nothing,
				"json":     predict.Nothing,
			}},
			"holdings":    {Flags: map[string]complete.Predictor{"f": exportFile}},
			"consolidate": {Flags: map[string]complete.Predictor{"f": exportFile}},
			"health": {Flags: map[string]complete.Predictor{
				"f":        exportFile,
				"simulate": predict.Nothing,
			}},
			"benchmarks": {},
			"assist":     {Flags: map[string]complete.Predictor{"f": exportFile}},
			"topic":      {Args: predict.Set{"readme", "ingestion", "benchmarks", "consolidation", "scoring", "*"}},
		},
	}
	completion.Complete("mfl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
