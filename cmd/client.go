package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pdoc"
	"github.com/google/subcommands"
)

// clientCmd holds the flags for the 'client' subcommand.
type clientCmd struct{}

func (*clientCmd) Name() string     { return "client" }
func (*clientCmd) Synopsis() string { return "create a client, or show it if it already exists" }
func (*clientCmd) Usage() string {
	return `pdoc client

  Asks for a client name with completion over the existing clients,
  then creates the client interactively if it is new.
`
}

func (c *clientCmd) SetFlags(f *flag.FlagSet) {}

func (c *clientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	name, err := pdoc.PromptClientName(store)
	if err != nil {
		return fail(err)
	}
	client, err := store.GetOrCreateClient(name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Saved client %q\n", client.Name)
	return subcommands.ExitSuccess
}
