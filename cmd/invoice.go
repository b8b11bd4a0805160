package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pdoc"
	"github.com/google/subcommands"
)

// invoiceCmd holds the flags for the 'invoice' subcommand.
type invoiceCmd struct {
	showSource bool
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "create an invoice and generate its PDF" }
func (*invoiceCmd) Usage() string {
	return `pdoc invoice [-show-source]

  Creates an invoice interactively, saves it, compiles its PDF and
  writes its ledger transaction. New projects and clients are created
  along the way as needed.
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.showSource, "show-source", false, "print the generated LaTeX source before compiling")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
	if err != nil {
		return fail(err)
	}
	// The profile must exist before any document can be rendered.
	if _, err := store.GetOrCreateMe(); err != nil {
		return fail(err)
	}

	invoice, err := pdoc.CreateInvoice(store)
	if err != nil {
		return fail(err)
	}
	if err := store.SaveInvoice(invoice); err != nil {
		return fail(err)
	}

	full, err := invoice.Collect(store)
	if err != nil {
		return fail(err)
	}
	pdfPath, err := full.SavePDF(store, c.showSource)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", pdfPath)

	ledgerPath, err := full.SaveLedger(store, cfg.Receivable())
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", ledgerPath)
	return subcommands.ExitSuccess
}
