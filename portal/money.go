package portal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount the way the portal tables do: Colombian
// pesos with no fraction digits ("$ 1.234.567"). Empty input renders "-",
// non-numeric input is passed through untouched.
func FormatMoney(value string) string {
	if value == "" {
		return "-"
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return value
	}

	rounded := amount.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("$ ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatMoneyPtr treats nil like the empty string.
func FormatMoneyPtr(value *string) string {
	if value == nil {
		return "-"
	}
	return FormatMoney(*value)
}
