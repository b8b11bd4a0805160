package pdoc

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/etnz/pdoc/date"
)

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		existing []uint32
		want     uint32
	}{
		{nil, 1},
		{[]uint32{1}, 2},
		{[]uint32{5, 7, 2}, 8},
		{[]uint32{3, 1}, 4},
	}
	for _, tt := range tests {
		if got := NextInvoiceNumber(tt.existing); got != tt.want {
			t.Errorf("NextInvoiceNumber(%v) = %d, want %d", tt.existing, got, tt.want)
		}
	}
}

func TestLineItemAmount(t *testing.T) {
	it := LineItem{Description: "Consulting", Quantity: 2, UnitPrice: 9.60}
	if got := it.Amount().String(); got != "19.20" {
		t.Errorf("Amount = %s, want 19.20", got)
	}
}

func TestInvoiceTotal(t *testing.T) {
	inv := Invoice{
		Number: 1,
		Items: []LineItem{
			{Description: "Design", Quantity: 1, UnitPrice: 10.30},
			{Description: "Consulting", Quantity: 2, UnitPrice: 9.60},
		},
	}
	if got := inv.Total().StringFixed(2); got != "29.50" {
		t.Errorf("Total = %s, want 29.50", got)
	}
}

func TestInvoiceTotalEmpty(t *testing.T) {
	if got := (Invoice{}).Total(); !got.IsZero() {
		t.Errorf("Total of empty invoice = %s, want 0", got)
	}
}

func TestCollectMissingProject(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.SaveMe(Me{Name: "Jane Doe"}); err != nil {
		t.Fatal(err)
	}
	inv := Invoice{Number: 1, ProjectRef: "ghost", Date: date.MustParse("2023-02-17")}
	if _, err := inv.Collect(s); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Collect with missing project = %v, want fs.ErrNotExist in the chain", err)
	}
}

func TestCollectFollowsReferences(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.SaveMe(Me{Name: "Jane Doe"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveClient(testClient("Acme Co.")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveProject(Project{Name: "Website", Description: "Redesign", ClientRef: "Acme Co."}); err != nil {
		t.Fatal(err)
	}
	inv := Invoice{Number: 1, ProjectRef: "Website", Date: date.MustParse("2023-02-17")}

	full, err := inv.Collect(s)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if full.Me.Name != "Jane Doe" {
		t.Errorf("Me.Name = %q, want %q", full.Me.Name, "Jane Doe")
	}
	if full.Project.Name != "Website" {
		t.Errorf("Project.Name = %q, want %q", full.Project.Name, "Website")
	}
	if full.Client.Name != "Acme Co." {
		t.Errorf("Client.Name = %q, want %q", full.Client.Name, "Acme Co.")
	}
}
