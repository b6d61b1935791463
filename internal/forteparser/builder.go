package forteparser

import (
	"strings"

	"fjacquet/budged/internal/models"
)

// BuildTransaction composes the field parsers into a transaction. The date is
// stored verbatim after trimming.
func BuildTransaction(date, amountText, kindText, detailsText string) models.Transaction {
	return models.Transaction{
		Date:    strings.TrimSpace(date),
		Amount:  ParseAmount(amountText),
		Kind:    strings.TrimSpace(kindText),
		Details: ParseDetails(CleanDetails(detailsText)),
	}
}

// BuildRow builds a transaction from the first four cells of a row.
func BuildRow(row models.RawRow) models.Transaction {
	return BuildTransaction(row.Cell(0), row.Cell(1), row.Cell(2), row.Cell(3))
}

// BuildAll builds the data rows in order. Rows rejected by IsDataRow are dropped.
func BuildAll(rows []models.RawRow) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if !IsDataRow(row) {
			continue
		}
		transactions = append(transactions, BuildRow(row))
	}
	return transactions
}
