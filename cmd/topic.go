package cmd

import (
	"context"
	"flag"

	"github.com/etnz/pdoc"
	"github.com/etnz/pdoc/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `pdoc topic [<topic>...]

  Shows documentation for the given topics, "*" for all of them, or
  the index when no topic is given.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	content, err := docs.Topics(names...)
	if err != nil {
		return fail(err)
	}
	pdoc.PrintMarkdown(content)
	return subcommands.ExitSuccess
}
