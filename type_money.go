package berrytally

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PYG is an amount of Paraguayan guaraníes. The guaraní has no minor unit, so
// integer arithmetic is exact.
type PYG int64

// PriceStep is the rounding step applied to every unit price: prices are
// always quoted in multiples of 5,000 PYG.
const PriceStep PYG = 5000

// RoundToStep rounds the amount to the nearest multiple of step.
func (p PYG) RoundToStep(step PYG) PYG {
	if step <= 0 {
		return p
	}
	return PYG(math.Round(float64(p)/float64(step))) * step
}

// String renders the amount with the PYG currency formatting, e.g. "₲80,000".
func (p PYG) String() string { return money.New(int64(p), money.PYG).Display() }

// Short renders a compact form for dense tables: 80000 -> "80k",
// 1200000 -> "1.2m". Below ten thousand the plain digits are kept.
func (p PYG) Short() string {
	abs := int64(p)
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1000000:
		m := float64(p) / 1000000
		if abs < 10000000 {
			return strconv.FormatFloat(math.Round(m*10)/10, 'f', -1, 64) + "m"
		}
		return strconv.FormatFloat(math.Round(m), 'f', 0, 64) + "m"
	case abs >= 10000:
		return strconv.FormatInt(int64(math.Round(float64(p)/1000)), 10) + "k"
	default:
		return strconv.FormatInt(int64(p), 10)
	}
}

// MulKg multiplies a per-kilogram price by a weight and rounds to the nearest
// guaraní.
func (p PYG) MulKg(kg Kilograms) PYG {
	return PYG(decimal.NewFromInt(int64(p)).Mul(kg.Decimal()).Round(0).IntPart())
}

// ParsePYG parses free-form guaraní input into an amount rounded to the price
// step. Accepted forms: plain digits with optional thousands separators
// ("80 000", "80.000"), and "k"/"m" shorthand with an optional decimal part
// ("82.3k", "1,5m").
//
// Parsing never fails: anything unintelligible yields 0. Data entry in the
// field must not be interrupted by strict validation; a zero price is visible
// immediately in every valuation.
func ParsePYG(input string) PYG {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0
	}
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "k"):
		mult = 1000
	case strings.HasSuffix(s, "m"):
		mult = 1000000
	}
	if mult > 1 {
		s = s[:len(s)-1]
		// Keep one decimal separator for the shorthand, drop everything else.
		s = keepRunes(s, "0123456789.,")
		s = strings.ReplaceAll(s, ",", ".")
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return PYG(math.Round(val * float64(mult))).RoundToStep(PriceStep)
	}
	// Plain input: separators are thousands separators, drop non-digits.
	s = keepRunes(s, "0123456789")
	if s == "" {
		return 0
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return PYG(val).RoundToStep(PriceStep)
}

func keepRunes(s, allowed string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var _ fmt.Stringer = PYG(0)
