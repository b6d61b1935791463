package forteparser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount keeps only digits, dots and minus signs and parses the rest as a
// decimal. Malformed input yields zero so one bad cell cannot abort a statement.
func ParseAmount(text string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
