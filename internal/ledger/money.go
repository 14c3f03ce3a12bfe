package ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for display when no currency is configured.
const DefaultCurrency = money.USD

// Amount limits. An accepted amount is below 10^MaxAmountDigits and has at
// most MaxAmountScale decimal places.
const (
	MaxAmountDigits = 12
	MaxAmountScale  = 10
)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses user-entered amount text. Surrounding whitespace is
// ignored. Anything that is not a decimal number greater than zero and within
// the amount limits is ErrInvalidAmount.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, trimmed)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, trimmed)
	}

	// Limits are checked on coefficient and exponent so that a huge exponent
	// never reaches decimal arithmetic.
	exp := int64(d.Exponent())
	if exp < -MaxAmountScale {
		return decimal.Zero, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, trimmed, MaxAmountScale)
	}
	if int64(len(d.Coefficient().String()))+exp > MaxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %s exceeds %d integer digits", ErrInvalidAmount, trimmed, MaxAmountDigits)
	}
	return d, nil
}

// FormatAmount renders d in the currency's layout, e.g. "$1,234.50". Rounding
// is half away from zero on the exact decimal value. Unknown or empty codes
// fall back to DefaultCurrency.
func FormatAmount(d decimal.Decimal, currency string) string {
	c := money.GetCurrency(strings.ToUpper(currency))
	if c == nil {
		c = money.GetCurrency(DefaultCurrency)
	}

	digits := d.Abs().StringFixed(int32(c.Fraction))
	intPart, frac, _ := strings.Cut(digits, ".")

	number := groupThousands(intPart, c.Thousand)
	if frac != "" {
		number += c.Decimal + frac
	}

	out := strings.Replace(c.Template, "1", number, 1)
	out = strings.Replace(out, "$", c.Grapheme, 1)
	if d.IsNegative() && strings.Trim(intPart+frac, "0") != "" {
		out = "-" + out
	}
	return out
}

// groupThousands inserts sep between groups of three digits.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders p with one decimal, rounded half away from zero.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// KnownCurrency reports whether code is an ISO 4217 code go-money can format.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// CurrencySymbol returns the display symbol for code, or code itself when
// go-money does not know it.
func CurrencySymbol(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c.Grapheme
	}
	return code
}
