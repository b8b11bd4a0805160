package pdoc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"

	"github.com/etnz/pdoc/date"
)

// ErrAllInvoicesPaid is returned by CreateReceipt when every invoice
// already has a matching receipt.
var ErrAllInvoicesPaid = errors.New("all invoices have been paid")

// Receipt records the payment of exactly one invoice; the invoice
// number doubles as the receipt's own key.
type Receipt struct {
	InvoiceNum    uint32    `yaml:"invoice_num"`
	Date          date.Date `yaml:"date"`
	PaymentMethod string    `yaml:"payment_method"`
}

// unpaidInvoiceNumbers returns the invoice numbers with no matching
// receipt, highest first.
func unpaidInvoiceNumbers(invoices, receipts []uint32) []uint32 {
	paid := make(map[uint32]bool, len(receipts))
	for _, n := range receipts {
		paid[n] = true
	}
	var unpaid []uint32
	for _, n := range invoices {
		if !paid[n] {
			unpaid = append(unpaid, n)
		}
	}
	slices.SortFunc(unpaid, func(a, b uint32) int { return int(b) - int(a) })
	return unpaid
}

// CreateReceipt runs the interactive receipt creation workflow. It
// fails before showing any prompt when there is no unpaid invoice.
func CreateReceipt(s *Store, me Me) (Receipt, error) {
	invoices, err := s.ListInvoices()
	if err != nil {
		return Receipt{}, err
	}
	receipts, err := s.ListReceipts()
	if err != nil {
		return Receipt{}, err
	}
	unpaid := unpaidInvoiceNumbers(invoices, receipts)
	if len(unpaid) == 0 {
		return Receipt{}, ErrAllInvoicesPaid
	}

	var options []huh.Option[uint32]
	for _, n := range unpaid {
		inv, err := s.LoadInvoice(n)
		if err != nil {
			// Silently skip invoices that cannot be read.
			continue
		}
		label := fmt.Sprintf("#%d on %s (due %s) for %s", inv.Number, inv.Date, inv.DueDate, inv.ProjectRef)
		options = append(options, huh.NewOption(label, n))
	}
	invoiceNum, err := askSelect("Invoice number:", options)
	if err != nil {
		return Receipt{}, fmt.Errorf("reading invoice number for receipt from user input: %w", err)
	}

	PrintHeader(fmt.Sprintf("Create receipt %d", invoiceNum))

	paidOn, err := askDate("Receipt date:", date.Today())
	if err != nil {
		return Receipt{}, fmt.Errorf("reading receipt date from user input: %w", err)
	}

	var methods []huh.Option[string]
	for _, p := range me.Payment {
		methods = append(methods, huh.NewOption(p.Name, p.Name))
	}
	method, err := askSelect("Payment method:", methods)
	if err != nil {
		return Receipt{}, fmt.Errorf("reading payment method from user input: %w", err)
	}

	receipt := Receipt{InvoiceNum: invoiceNum, Date: paidOn, PaymentMethod: method}
	receipt, err = reviewYAML(receipt)
	if err != nil {
		return Receipt{}, fmt.Errorf("editing receipt yaml: %w", err)
	}
	return receipt, nil
}

// FullReceipt is the ephemeral aggregate assembled for rendering. It
// is never persisted.
type FullReceipt struct {
	Me      Me
	Receipt Receipt
	Invoice Invoice
	Project Project
	Client  Client
}

// Collect dereferences the receipt's invoice and follows the same
// project, client, and profile chain as an invoice.
func (r Receipt) Collect(s *Store) (FullReceipt, error) {
	me, err := s.LoadMe()
	if err != nil {
		return FullReceipt{}, err
	}
	invoice, err := s.LoadInvoice(r.InvoiceNum)
	if err != nil {
		return FullReceipt{}, err
	}
	project, err := s.LoadProject(invoice.ProjectRef)
	if err != nil {
		return FullReceipt{}, err
	}
	client, err := s.LoadClient(project.ClientRef)
	if err != nil {
		return FullReceipt{}, err
	}
	return FullReceipt{Me: me, Receipt: r, Invoice: invoice, Project: project, Client: client}, nil
}
