package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pdoc"
	"github.com/google/subcommands"
)

// receiptCmd holds the flags for the 'receipt' subcommand.
type receiptCmd struct {
	showSource bool
}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "record the payment of an invoice and generate its PDF" }
func (*receiptCmd) Usage() string {
	return `pdoc receipt [-show-source]

  Picks an unpaid invoice, records its payment and compiles the
  receipt PDF. Fails immediately when every invoice has been paid.
`
}

func (c *receiptCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.showSource, "show-source", false, "print the generated LaTeX source before compiling")
}

func (c *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	me, err := store.GetOrCreateMe()
	if err != nil {
		return fail(err)
	}

	receipt, err := pdoc.CreateReceipt(store, me)
	if err != nil {
		return fail(err)
	}
	if err := store.SaveReceipt(receipt); err != nil {
		return fail(err)
	}

	full, err := receipt.Collect(store)
	if err != nil {
		return fail(err)
	}
	pdfPath, err := full.SavePDF(store, c.showSource)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", pdfPath)
	return subcommands.ExitSuccess
}
