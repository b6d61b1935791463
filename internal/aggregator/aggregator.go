// Package aggregator folds transactions into per-category totals.
package aggregator

import (
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/models"

	"github.com/shopspring/decimal"
)

func tablesOrDefault(tables *categories.Tables) *categories.Tables {
	if tables == nil {
		return categories.Default()
	}
	return tables
}

// AggregateByCategory sums amounts per (kind, category name).
//
// A "Purchase with bonuses" amount is posted twice: once to ("Purchase", cat)
// so it counts as spend, and once to ("Saved with bonuses", cat) so the bonus
// part can be reported on its own.
func AggregateByCategory(transactions []models.Transaction, tables *categories.Tables) models.AggregationTable {
	tables = tablesOrDefault(tables)
	table := models.AggregationTable{}

	for _, tx := range transactions {
		category := tables.ResolveCategoryName(tx.Details.MCC)
		if tx.IsBonusPurchase() {
			table.Add(models.AggregationKey{Kind: models.KindPurchase, Category: category}, tx.Amount)
			table.Add(models.AggregationKey{Kind: models.KindSavedWithBonuses, Category: category}, tx.Amount)
			continue
		}
		table.Add(models.AggregationKey{Kind: tx.Kind, Category: category}, tx.Amount)
	}
	return table
}

// AggregateByGroup re-keys the category aggregation by group, summing
// categories that fall into the same group.
func AggregateByGroup(transactions []models.Transaction, tables *categories.Tables) models.AggregationTable {
	tables = tablesOrDefault(tables)
	byGroup := models.AggregationTable{}

	for key, total := range AggregateByCategory(transactions, tables) {
		byGroup.Add(models.AggregationKey{Kind: key.Kind, Category: tables.ResolveGroup(key.Category)}, total)
	}
	return byGroup
}

// ComputeTotals summarises a statement. Bonus purchases count toward both the
// purchase and the bonus totals; NetPurchases is purchases minus bonuses.
func ComputeTotals(transactions []models.Transaction) models.Totals {
	purchase := decimal.Zero
	bonuses := decimal.Zero
	grand := decimal.Zero
	income := decimal.Zero

	for _, tx := range transactions {
		grand = grand.Add(tx.Amount)
		if tx.IsIncome() {
			income = income.Add(tx.Amount)
		}

		switch tx.Kind {
		case models.KindPurchaseWithBonus:
			bonuses = bonuses.Add(tx.Amount)
			purchase = purchase.Add(tx.Amount)
		case models.KindPurchase:
			purchase = purchase.Add(tx.Amount)
		}
	}

	return models.Totals{
		PurchaseTotal: purchase,
		BonusesTotal:  bonuses,
		NetPurchases:  purchase.Sub(bonuses),
		GrandTotal:    grand,
		IncomeTotal:   income,
	}
}

// CategorySpending sums a table across kinds per category, leaving out the
// "Saved with bonuses" entries.
func CategorySpending(table models.AggregationTable) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for key, total := range table {
		if key.Kind == models.KindSavedWithBonuses {
			continue
		}
		out[key.Category] = out[key.Category].Add(total)
	}
	return out
}
