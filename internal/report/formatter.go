package report

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/budged/internal/aggregator"
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/currencyutils"
	"fjacquet/budged/internal/dateutils"
	"fjacquet/budged/internal/models"

	"github.com/shopspring/decimal"
)

// Titles of the aggregated reports.
const (
	TitleByCategory = "Grouped by Description and MCC Name"
	TitleByGroup    = "Grouped by Description and MCC Group"
	TitleRaw        = "Raw Transactions"
)

const currencySuffix = " " + models.Currency

// Render builds and formats the report of the given kind.
func Render(kind Kind, transactions []models.Transaction, tables *categories.Tables, sortKey SortKey, style Style) string {
	switch kind {
	case KindRaw:
		return FormatRawReport(transactions, sortKey, style)
	case KindByCategory:
		return FormatAggregated(aggregator.AggregateByCategory(transactions, tables), TitleByCategory, sortKey, style)
	default:
		return FormatAggregated(aggregator.AggregateByGroup(transactions, tables), TitleByGroup, sortKey, style)
	}
}

// FormatAggregated renders an aggregation table. "Saved with bonuses" entries
// are not shown as rows; they feed the bonus summary line instead. Net
// purchases are reported as purchases plus bonuses. Date sorting does not
// apply to aggregates and falls back to amount.
func FormatAggregated(table models.AggregationTable, title string, sortKey SortKey, style Style) string {
	if sortKey != SortByName {
		sortKey = SortByAmount
	}

	entries := table.Entries()
	if sortKey == SortByAmount {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Total.LessThan(entries[j].Total)
		})
	}

	purchase := decimal.Zero
	bonuses := decimal.Zero
	var display []models.AggregationEntry
	for _, e := range entries {
		if e.Key.Kind == models.KindSavedWithBonuses {
			bonuses = bonuses.Add(e.Total)
			continue
		}
		if e.Key.Kind == models.KindPurchase {
			purchase = purchase.Add(e.Total)
		}
		display = append(display, e)
	}
	net := purchase.Add(bonuses)
	fullTitle := fmt.Sprintf("%s (sorted by %s)", title, sortKey)

	if style == StylePlain {
		lines := []string{fmt.Sprintf("--- %s ---", fullTitle)}
		for _, e := range display {
			lines = append(lines, fmt.Sprintf("  (%s, %s): %s", e.Key.Kind, e.Key.Category, currencyutils.FormatAmount(e.Total, models.Currency)))
		}
		lines = append(lines,
			"  "+strings.Repeat("-", 40),
			summaryLine("Total purchases", purchase),
			summaryLine("Saved with bonuses", bonuses),
			summaryLine("Net purchases", net),
		)
		return strings.Join(lines, "\n")
	}

	rows := make([][]string, 0, len(display)+4)
	for _, e := range display {
		rows = append(rows, []string{e.Key.Kind, e.Key.Category, currencyutils.FormatGrouped(e.Total)})
	}
	rows = append(rows,
		[]string{"", "", ""},
		[]string{"Total purchases", "", currencyutils.FormatGrouped(purchase)},
		[]string{"Saved with bonuses", "", currencyutils.FormatGrouped(bonuses)},
		[]string{"Net purchases", "", currencyutils.FormatGrouped(net)},
	)
	return FormatASCIITable([]string{"Description", "Category", "Sum (KZT)"}, rows, fullTitle)
}

// FormatRawReport renders every transaction followed by purchase, bonus, net
// and grand totals. Net purchases are purchases minus bonuses here.
func FormatRawReport(transactions []models.Transaction, sortKey SortKey, style Style) string {
	sorted := SortTransactions(transactions, sortKey)
	totals := aggregator.ComputeTotals(sorted)
	fullTitle := fmt.Sprintf("%s (sorted by %s)", TitleRaw, sortKey)

	if style == StylePlain {
		lines := []string{fmt.Sprintf("--- %s ---", fullTitle)}
		for _, tx := range sorted {
			label := tx.Label()
			suffix := label
			if tx.Details.HasMCC() {
				suffix = fmt.Sprintf("%s [%s]", label, tx.Details.MCC)
			} else if label == "" {
				suffix = "-"
			}
			lines = append(lines, fmt.Sprintf("  %s  %-12s  %12s%s  %s",
				tx.Date, tx.DisplayKind(), currencyutils.FormatFixed(tx.Amount), currencySuffix, suffix))
		}
		lines = append(lines,
			"  "+strings.Repeat("-", 50),
			summaryLine("Total purchases", totals.PurchaseTotal),
			summaryLine("Saved with bonuses", totals.BonusesTotal),
			summaryLine("Net purchases", totals.NetPurchases),
			summaryLine("Grand total", totals.GrandTotal),
		)
		return strings.Join(lines, "\n")
	}

	rows := make([][]string, 0, len(sorted)+5)
	for _, tx := range sorted {
		rows = append(rows, []string{tx.Date, tx.DisplayKind(), tx.Label(), tx.Details.MCC, currencyutils.FormatGrouped(tx.Amount)})
	}
	rows = append(rows,
		[]string{"", "", "", "", ""},
		[]string{"", "Total purchases", "", "", currencyutils.FormatGrouped(totals.PurchaseTotal)},
		[]string{"", "Saved with bonuses", "", "", currencyutils.FormatGrouped(totals.BonusesTotal)},
		[]string{"", "Net purchases", "", "", currencyutils.FormatGrouped(totals.NetPurchases)},
		[]string{"", "Grand total", "", "", currencyutils.FormatGrouped(totals.GrandTotal)},
	)
	return FormatASCIITable([]string{"Date", "Type", "Description", "MCC", "Sum (KZT)"}, rows, fullTitle)
}

// SortTransactions returns a stably sorted copy. Dates sort chronologically.
func SortTransactions(transactions []models.Transaction, sortKey SortKey) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	var less func(a, b models.Transaction) bool
	switch sortKey {
	case SortByDate:
		less = func(a, b models.Transaction) bool {
			return dateutils.CompareDates(a.Date, b.Date) < 0
		}
	case SortByName:
		less = func(a, b models.Transaction) bool {
			if a.Kind != b.Kind {
				return a.Kind < b.Kind
			}
			return a.Details.Raw < b.Details.Raw
		}
	default:
		less = func(a, b models.Transaction) bool {
			return a.Amount.LessThan(b.Amount)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func summaryLine(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("  %-24s%s", label+":", currencyutils.FormatAmount(amount, models.Currency))
}
