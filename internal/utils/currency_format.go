package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is the operator's working currency.
const DefaultCurrencyCode = "BIF"

// FormatCurrency renders an amount in the fr-FR style used across the
// back office: space thousand separators, comma decimal separator,
// two decimals, followed by the currency code.
// Example: 1234567.5 -> "1 234 567,50 BIF".
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	fixed := amount.Round(2).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	b.WriteRune(',')
	b.WriteString(decPart)
	if currencyCode != "" {
		b.WriteRune(' ')
		b.WriteString(currencyCode)
	}
	return b.String()
}
