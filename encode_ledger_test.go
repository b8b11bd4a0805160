package pdoc

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/etnz/pdoc/date"
)

func TestIncomeAccount(t *testing.T) {
	tests := []struct {
		client string
		want   string
	}{
		{"Acme Co.", "Income:AcmeCo"},
		{"Beta LLC", "Income:BetaLLC"},
		{"O'Brien & Sons, Inc.", "Income:OBrienSonsInc"},
		{"42nd Street Media", "Income:42ndStreetMedia"},
	}
	for _, tt := range tests {
		if got := IncomeAccount(tt.client); got != tt.want {
			t.Errorf("IncomeAccount(%q) = %q, want %q", tt.client, got, tt.want)
		}
	}
}

func TestBalanced(t *testing.T) {
	tx := LedgerTransaction{
		Postings: []LedgerPosting{
			{Account: "a", Amount: decimal.NewFromFloat(29.50)},
			{Account: "b", Amount: decimal.NewFromFloat(-29.50)},
		},
	}
	if !tx.Balanced() {
		t.Error("transaction with opposite postings reported unbalanced")
	}
	tx.Postings[1].Amount = decimal.NewFromFloat(-29.49)
	if tx.Balanced() {
		t.Error("transaction with unequal postings reported balanced")
	}
}

func TestEncodeRejectsUnbalanced(t *testing.T) {
	tx := LedgerTransaction{
		Date:      "2023-02-17",
		Narration: "Invoice 1: Website",
		Postings:  []LedgerPosting{{Account: "a", Amount: decimal.NewFromInt(1)}},
	}
	if err := tx.Encode(&strings.Builder{}); err == nil {
		t.Error("Encode accepted an unbalanced transaction")
	}
}

func fullInvoiceFixture() FullInvoice {
	return FullInvoice{
		Me: Me{Name: "Jane Doe"},
		Invoice: Invoice{
			Number:     1,
			ProjectRef: "Website",
			Date:       date.MustParse("2023-02-17"),
			DueDate:    date.MustParse("2023-02-24"),
			Items: []LineItem{
				{Description: "Design", Quantity: 1, UnitPrice: 10.30},
				{Description: "Consulting", Quantity: 2, UnitPrice: 9.60},
			},
		},
		Project: Project{Name: "Website", Description: "Redesign", ClientRef: "Acme Co."},
		Client:  testClient("Acme Co."),
	}
}

func TestInvoiceLedgerTransaction(t *testing.T) {
	tx := fullInvoiceFixture().LedgerTransaction(DefaultReceivableAccount)

	if tx.Date != "2023-02-17" {
		t.Errorf("Date = %q, want %q", tx.Date, "2023-02-17")
	}
	if tx.Narration != "Invoice 1: Website" {
		t.Errorf("Narration = %q, want %q", tx.Narration, "Invoice 1: Website")
	}
	if !tx.Balanced() {
		t.Error("invoice transaction does not balance")
	}
	if len(tx.Postings) != 2 {
		t.Fatalf("got %d postings, want 2", len(tx.Postings))
	}
	debit, credit := tx.Postings[0], tx.Postings[1]
	if debit.Account != "Assets:AccountsReceivable" {
		t.Errorf("debit account = %q, want %q", debit.Account, "Assets:AccountsReceivable")
	}
	if got := debit.Amount.StringFixed(2); got != "29.50" {
		t.Errorf("debit amount = %s, want 29.50", got)
	}
	if credit.Account != "Income:AcmeCo" {
		t.Errorf("credit account = %q, want %q", credit.Account, "Income:AcmeCo")
	}
	if got := credit.Amount.StringFixed(2); got != "-29.50" {
		t.Errorf("credit amount = %s, want -29.50", got)
	}
}

func TestEncodeJournalForm(t *testing.T) {
	var b strings.Builder
	if err := fullInvoiceFixture().LedgerTransaction(DefaultReceivableAccount).Encode(&b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := b.String()

	lines := strings.Split(got, "\n")
	if len(lines) != 5 || lines[3] != "" || lines[4] != "" {
		t.Fatalf("Encode output = %q, want header, two postings and a blank line", got)
	}
	if lines[0] != "2023-02-17 Invoice 1: Website" {
		t.Errorf("header = %q, want %q", lines[0], "2023-02-17 Invoice 1: Website")
	}
	for i, want := range [][]string{
		{"Assets:AccountsReceivable", "$29.50"},
		{"Income:AcmeCo", "-$29.50"},
	} {
		line := lines[i+1]
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("posting %d is not indented: %q", i, line)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != want[0] || fields[1] != want[1] {
			t.Errorf("posting %d = %q, want account %q amount %q", i, line, want[0], want[1])
		}
	}
}

func TestLedgerFilename(t *testing.T) {
	if got := fullInvoiceFixture().LedgerFilename(); got != "Invoice_1.ledger" {
		t.Errorf("LedgerFilename = %q, want %q", got, "Invoice_1.ledger")
	}
}
