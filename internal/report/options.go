// Package report renders transactions and aggregations as text, JSON and markdown.
package report

import "strings"

// SortKey selects the order of report rows.
type SortKey string

const (
	SortByAmount SortKey = "amount"
	SortByName   SortKey = "name"
	SortByDate   SortKey = "date"
)

// Style selects the text layout.
type Style string

const (
	StylePlain Style = "plain"
	StyleBoxed Style = "boxed"
)

// Kind selects which report is rendered.
type Kind string

const (
	KindRaw        Kind = "raw"
	KindByCategory Kind = "byCategory"
	KindByGroup    Kind = "byGroup"
)

// ParseSortKey accepts amount (or sum), name and date. Anything else is amount.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName
	case "date":
		return SortByDate
	default:
		return SortByAmount
	}
}

// ParseStyle accepts plain (or simple) and boxed (or ascii). Anything else is boxed.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "simple":
		return StylePlain
	default:
		return StyleBoxed
	}
}

// ParseReportKind accepts raw, byCategory (or mcc, category) and byGroup
// (or group). Anything else is byGroup.
func ParseReportKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return KindRaw
	case "bycategory", "mcc", "category":
		return KindByCategory
	default:
		return KindByGroup
	}
}
