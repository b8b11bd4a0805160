package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// meCmd holds the flags for the 'me' subcommand.
type meCmd struct{}

func (*meCmd) Name() string     { return "me" }
func (*meCmd) Synopsis() string { return "create or edit your own profile" }
func (*meCmd) Usage() string {
	return `pdoc me

  Opens your profile for editing, or runs the interactive profile
  creation if none exists yet. The profile appears on every generated
  document.
`
}

func (c *meCmd) SetFlags(f *flag.FlagSet) {}

func (c *meCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	me, err := store.EditMe()
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Saved profile for %s\n", me.Name)
	return subcommands.ExitSuccess
}
