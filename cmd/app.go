// Package cmd implements the CLI application to manage clients,
// projects, invoices and receipts.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/pdoc"
	"github.com/google/subcommands"
)

// Commands lists every subcommand in registration order. A main
// package registers them on a Commander and executes the selected one.
var Commands = []subcommands.Command{
	&meCmd{},
	&clientCmd{},
	&listClientsCmd{},
	&projectCmd{},
	&invoiceCmd{},
	&receiptCmd{},
	&topicCmd{},
}

// openStore resolves the configuration and returns the store over the
// configured data root.
func openStore() (*pdoc.Store, pdoc.Config, error) {
	cfg, err := pdoc.LoadConfig()
	if err != nil {
		return nil, pdoc.Config{}, err
	}
	store, err := pdoc.OpenStore(cfg)
	if err != nil {
		return nil, pdoc.Config{}, err
	}
	return store, cfg, nil
}

// fail prints the error chain to stderr and returns the failure exit
// status. Commands do not log anywhere else.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
