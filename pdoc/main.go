package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pdoc"
	"github.com/etnz/pdoc/cmd"
	"github.com/etnz/pdoc/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; exits here when invoked by the shell.
	completion().Complete("pdoc")

	pdoc.PrintTitle("pdoc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	latexFlags := map[string]complete.Predictor{"show-source": predict.Nothing}

	topics, _ := docs.List()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"me":           {},
			"client":       {},
			"list-clients": {},
			"project":      {},
			"invoice":      {Flags: latexFlags},
			"receipt":      {Flags: latexFlags},
			"topic":        {Args: predict.Set(topics)},
		},
	}
}
