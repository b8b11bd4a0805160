package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// listClientsCmd holds the flags for the 'list-clients' subcommand.
type listClientsCmd struct{}

func (*listClientsCmd) Name() string     { return "list-clients" }
func (*listClientsCmd) Synopsis() string { return "print the name of every client" }
func (*listClientsCmd) Usage() string {
	return `pdoc list-clients

  Prints the name of every saved client, one per line, sorted.
`
}

func (c *listClientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *listClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	names, err := store.ListClients()
	if err != nil {
		return fail(err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
