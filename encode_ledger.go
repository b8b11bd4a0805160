package pdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerPosting is one leg of a ledger transaction. Amounts are exact
// decimals; a debit is positive and a credit negative.
type LedgerPosting struct {
	Account string
	Amount  decimal.Decimal
}

// LedgerTransaction is a flat, balanced accounting record suitable for
// appending to a plain-text ledger journal.
type LedgerTransaction struct {
	Date      string
	Narration string
	Postings  []LedgerPosting
}

// Balanced reports whether the postings sum to zero.
func (t LedgerTransaction) Balanced() bool {
	sum := decimal.Zero
	for _, p := range t.Postings {
		sum = sum.Add(p.Amount)
	}
	return sum.IsZero()
}

// ledgerAmount renders an exact decimal as a signed dollar amount.
func ledgerAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Encode writes the transaction in plain-text journal form.
func (t LedgerTransaction) Encode(w io.Writer) error {
	if !t.Balanced() {
		return fmt.Errorf("ledger transaction %q does not balance", t.Narration)
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", t.Date, t.Narration); err != nil {
		return err
	}
	for _, p := range t.Postings {
		if _, err := fmt.Fprintf(w, "    %-40s %12s\n", p.Account, ledgerAmount(p.Amount)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// IncomeAccount derives the income account credited for a client:
// the client's name with every non-alphanumeric character stripped.
func IncomeAccount(clientName string) string {
	var b strings.Builder
	for _, r := range clientName {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "Income:" + b.String()
}

// LedgerTransaction builds the balanced record for an invoice: debit
// the receivable account, credit the client's income account, dated on
// the invoice date.
func (f FullInvoice) LedgerTransaction(receivableAccount string) LedgerTransaction {
	total := f.Invoice.Total()
	return LedgerTransaction{
		Date:      f.Invoice.Date.String(),
		Narration: fmt.Sprintf("Invoice %d: %s", f.Invoice.Number, f.Project.Name),
		Postings: []LedgerPosting{
			{Account: receivableAccount, Amount: total},
			{Account: IncomeAccount(f.Client.Name.String()), Amount: total.Neg()},
		},
	}
}

// LedgerFilename names the exported ledger file for this invoice.
func (f FullInvoice) LedgerFilename() string {
	return fmt.Sprintf("Invoice_%d.ledger", f.Invoice.Number)
}

// SaveLedger writes the invoice's ledger transaction under the data
// root and returns the written path.
func (f FullInvoice) SaveLedger(s *Store, receivableAccount string) (string, error) {
	dir, err := s.LedgerDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, f.LedgerFilename())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating ledger file: %w", err)
	}
	defer file.Close()

	if err := f.LedgerTransaction(receivableAccount).Encode(file); err != nil {
		return "", fmt.Errorf("writing ledger transaction: %w", err)
	}
	return path, nil
}
