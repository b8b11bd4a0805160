package pdoc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// PriceUSD is a non-negative monetary amount in US dollars. The stored
// value keeps whatever precision was parsed; the canonical textual
// form is fixed to two decimal places.
type PriceUSD float64

// ParsePrice parses a decimal numeral into a PriceUSD. It rejects
// non-numeric input and negative amounts.
func ParsePrice(s string) (PriceUSD, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("price %q is negative", s)
	}
	return PriceUSD(f), nil
}

// String renders the price with exactly two decimal digits.
func (p PriceUSD) String() string { return strconv.FormatFloat(float64(p), 'f', 2, 64) }

// Display renders the price as US currency for documents, e.g. "$1,234.50".
func (p PriceUSD) Display() string {
	return money.NewFromFloat(float64(p), money.USD).Display()
}
