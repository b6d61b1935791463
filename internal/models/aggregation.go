package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AggregationKey identifies one bucket of an aggregation.
// Category holds a category name or a group name depending on the aggregation.
type AggregationKey struct {
	Kind     string
	Category string
}

// Less orders keys by kind, then category.
func (k AggregationKey) Less(o AggregationKey) bool {
	if k.Kind != o.Kind {
		return k.Kind < o.Kind
	}
	return k.Category < o.Category
}

// AggregationTable maps a key to its running total.
type AggregationTable map[AggregationKey]decimal.Decimal

// Add accumulates amount into key.
func (t AggregationTable) Add(key AggregationKey, amount decimal.Decimal) {
	t[key] = t[key].Add(amount)
}

// Sum returns the total of all entries.
func (t AggregationTable) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t {
		sum = sum.Add(v)
	}
	return sum
}

// AggregationEntry is a single key/total pair, used when an ordered view is needed.
type AggregationEntry struct {
	Key   AggregationKey
	Total decimal.Decimal
}

// Entries returns the table as a slice ordered by key.
func (t AggregationTable) Entries() []AggregationEntry {
	entries := make([]AggregationEntry, 0, len(t))
	for k, v := range t {
		entries = append(entries, AggregationEntry{Key: k, Total: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.Less(entries[j].Key)
	})
	return entries
}

// Totals summarises a statement.
type Totals struct {
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	BonusesTotal  decimal.Decimal `json:"bonuses_total"`
	NetPurchases  decimal.Decimal `json:"net_purchases"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	IncomeTotal   decimal.Decimal `json:"income_total"`
}
