package pdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/etnz/pdoc/date"
)

// LineItem is one billed line on an invoice. It has no identity of its
// own.
type LineItem struct {
	Description string   `yaml:"description"`
	Quantity    float32  `yaml:"quantity"`
	UnitPrice   PriceUSD `yaml:"unit_price"`
}

// Amount returns quantity times unit price.
func (it LineItem) Amount() PriceUSD {
	return PriceUSD(float64(it.Quantity) * float64(it.UnitPrice))
}

// Invoice is a bill for work on one project. The due date is computed
// once at creation time and then frozen.
type Invoice struct {
	Number     uint32     `yaml:"number"`
	ProjectRef Id         `yaml:"project_ref"`
	Date       date.Date  `yaml:"date"`
	DueDate    date.Date  `yaml:"due_date"`
	Items      []LineItem `yaml:"items"`
}

// NextInvoiceNumber allocates the next invoice number: one past the
// highest existing number, or 1 when none exist.
func NextInvoiceNumber(existing []uint32) uint32 {
	var max uint32
	for _, n := range existing {
		if n > max {
			max = n
		}
	}
	return max + 1
}

// promptLineItems runs the repeatable line-item loop, terminated by an
// empty description.
func promptLineItems() ([]LineItem, error) {
	var items []LineItem
	for {
		description, err := askOptionalText("Line item description (empty to finish):", "Consulting")
		if err != nil {
			return nil, fmt.Errorf("reading line item description from user input: %w", err)
		}
		if description == "" {
			return items, nil
		}

		var quantityStr string
		err = runField(huh.NewInput().
			Title("Quantity:").
			Placeholder("1").
			Validate(func(s string) error {
				q, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
				if err != nil {
					return fmt.Errorf("invalid quantity %q", s)
				}
				if q < 0 {
					return fmt.Errorf("quantity must not be negative")
				}
				return nil
			}).
			Value(&quantityStr))
		if err != nil {
			return nil, fmt.Errorf("reading line item quantity from user input: %w", err)
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(quantityStr), 32)
		if err != nil {
			return nil, fmt.Errorf("parsing line item quantity: %w", err)
		}

		var priceStr string
		err = runField(huh.NewInput().
			Title("Unit price (USD):").
			Placeholder("100.00").
			Validate(func(s string) error {
				_, err := ParsePrice(strings.TrimSpace(s))
				return err
			}).
			Value(&priceStr))
		if err != nil {
			return nil, fmt.Errorf("reading line item unit price from user input: %w", err)
		}
		price, err := ParsePrice(strings.TrimSpace(priceStr))
		if err != nil {
			return nil, fmt.Errorf("parsing line item unit price: %w", err)
		}

		items = append(items, LineItem{
			Description: description,
			Quantity:    float32(quantity),
			UnitPrice:   price,
		})
	}
}

// CreateInvoice runs the interactive invoice creation workflow,
// including the nested get-or-create of its project.
func CreateInvoice(s *Store) (Invoice, error) {
	existing, err := s.ListInvoices()
	if err != nil {
		return Invoice{}, err
	}
	number, err := askUint("Invoice number:", NextInvoiceNumber(existing))
	if err != nil {
		return Invoice{}, fmt.Errorf("reading invoice number from user input: %w", err)
	}

	projectName, err := PromptProjectName(s)
	if err != nil {
		return Invoice{}, err
	}
	project, err := s.GetOrCreateProject(projectName)
	if err != nil {
		return Invoice{}, fmt.Errorf("getting or creating project: %w", err)
	}

	PrintHeader(fmt.Sprintf("Create invoice %d", number))

	issued, err := askDate("Invoice date:", date.Today())
	if err != nil {
		return Invoice{}, fmt.Errorf("reading invoice date from user input: %w", err)
	}
	daysToPay, err := askUint("Days to pay:", 7)
	if err != nil {
		return Invoice{}, fmt.Errorf("reading days to pay from user input: %w", err)
	}

	items, err := promptLineItems()
	if err != nil {
		return Invoice{}, err
	}

	invoice := Invoice{
		Number:     number,
		ProjectRef: project.Name,
		Date:       issued,
		DueDate:    issued.Add(int(daysToPay)),
		Items:      items,
	}
	invoice, err = reviewYAML(invoice)
	if err != nil {
		return Invoice{}, fmt.Errorf("editing invoice yaml: %w", err)
	}
	return invoice, nil
}

// Total returns the invoice total: the sum of quantity times unit
// price over all line items, rounded to two decimal places before
// conversion to an exact decimal.
func (inv Invoice) Total() decimal.Decimal {
	var sum float64
	for _, it := range inv.Items {
		sum += float64(it.Quantity) * float64(it.UnitPrice)
	}
	return decimal.NewFromFloat(sum).Round(2)
}

// FullInvoice is the ephemeral aggregate assembled for rendering. It
// is never persisted.
type FullInvoice struct {
	Me      Me
	Invoice Invoice
	Project Project
	Client  Client
}

// Collect dereferences the invoice's project, the project's client,
// and the operator profile into a renderable aggregate.
func (inv Invoice) Collect(s *Store) (FullInvoice, error) {
	me, err := s.LoadMe()
	if err != nil {
		return FullInvoice{}, err
	}
	project, err := s.LoadProject(inv.ProjectRef)
	if err != nil {
		return FullInvoice{}, err
	}
	client, err := s.LoadClient(project.ClientRef)
	if err != nil {
		return FullInvoice{}, err
	}
	return FullInvoice{Me: me, Invoice: inv, Project: project, Client: client}, nil
}
