package berrytally

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Grams is a weight expressed in whole grams. Records always store grams:
// integer arithmetic keeps the conservation checks on the log exact.
type Grams int64

// Kg returns the weight in kilograms as an exact decimal.
func (g Grams) Kg() Kilograms { return Kilograms{decimal.NewFromInt(int64(g)).Shift(-3)} }

func (g Grams) String() string { return fmt.Sprintf("%dg", int64(g)) }

// Kilograms is a weight in kilograms used by the derived views. It is backed
// by an exact decimal so that repeated projections of the same log always
// produce the same digits.
type Kilograms struct {
	value decimal.Decimal
}

// KgOf builds a Kilograms value from a decimal.
func KgOf(value decimal.Decimal) Kilograms { return Kilograms{value} }

func (k Kilograms) Add(o Kilograms) Kilograms { return Kilograms{k.value.Add(o.value)} }
func (k Kilograms) Sub(o Kilograms) Kilograms { return Kilograms{k.value.Sub(o.value)} }
func (k Kilograms) IsZero() bool              { return k.value.IsZero() }
func (k Kilograms) Equal(o Kilograms) bool    { return k.value.Equal(o.value) }
func (k Kilograms) Decimal() decimal.Decimal  { return k.value }

// String renders with two decimals, the resolution used everywhere kilograms
// are displayed.
func (k Kilograms) String() string { return k.value.StringFixed(2) }

// ParseKg parses a kilogram amount typed by the user. A decimal comma is
// accepted. The returned weight is rounded to the nearest gram.
func ParseKg(s string) (Grams, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("empty weight")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return Grams(d.Shift(3).Round(0).IntPart()), nil
}

func intDecimal(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// ParseGrams parses a whole gram amount.
func ParseGrams(s string) (Grams, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid grams %q: %w", s, err)
	}
	return Grams(n), nil
}
