// Package forteparser turns ForteBank card statement tables into transactions.
package forteparser

import (
	"regexp"
	"strings"

	"fjacquet/budged/internal/models"
)

// DatePattern matches a DD.MM.YYYY date cell. Ranges are not checked.
var DatePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// AmountPattern matches an amount cell such as "-30,000.00 KZT".
var AmountPattern = regexp.MustCompile(`^-?[\d,.]+\s+KZT$`)

// IsDataRow reports whether a raw row is a transaction row rather than a
// header, banner or separator.
func IsDataRow(row models.RawRow) bool {
	if len(row) < 4 {
		return false
	}
	date, amount := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
	if date == "" || amount == "" {
		return false
	}
	return DatePattern.MatchString(date) && AmountPattern.MatchString(amount)
}
