// Package dateutils handles the DD.MM.YYYY dates printed on statements.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutStatement is the layout of statement dates.
const DateLayoutStatement = "02.01.2006"

// ParseDate parses a statement date.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutStatement, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// SplitDate splits a DD.MM.YYYY date into day, month and year strings.
// Malformed dates yield whatever fields are present.
func SplitDate(dateStr string) (day, month, year string) {
	parts := strings.SplitN(dateStr, ".", 3)
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2]
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], "", ""
	}
}

// CompareDates orders two statement dates chronologically and returns -1, 0
// or 1. When either date is malformed the fields from SplitDate are compared
// as strings, year first.
func CompareDates(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA == nil && errB == nil {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}

	ad, am, ay := SplitDate(a)
	bd, bm, by := SplitDate(b)
	for _, pair := range [][2]string{{ay, by}, {am, bm}, {ad, bd}} {
		if c := strings.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}
