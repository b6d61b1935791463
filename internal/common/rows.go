// Package common provides the export formats shared by the CLI commands.
package common

import (
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/currencyutils"
	"fjacquet/budged/internal/models"
)

// TransactionRow is the flat, export-friendly view of a transaction.
type TransactionRow struct {
	Date            string `csv:"Date"`
	Amount          string `csv:"Amount"`
	Kind            string `csv:"Kind"`
	Merchant        string `csv:"Merchant"`
	MCC             string `csv:"MCC"`
	Category        string `csv:"Category"`
	Group           string `csv:"Group"`
	Bank            string `csv:"Bank"`
	PaymentMethod   string `csv:"PaymentMethod"`
	ReceiverAccount string `csv:"ReceiverAccount"`
	Details         string `csv:"Details"`
}

// Headers lists the export columns in order.
var Headers = []string{
	"Date", "Amount", "Kind", "Merchant", "MCC", "Category", "Group",
	"Bank", "PaymentMethod", "ReceiverAccount", "Details",
}

// ToRows flattens transactions, resolving category and group through tables.
func ToRows(transactions []models.Transaction, tables *categories.Tables) []TransactionRow {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		category := tables.ResolveCategoryName(tx.Details.MCC)
		rows = append(rows, TransactionRow{
			Date:            tx.Date,
			Amount:          currencyutils.FormatFixed(tx.Amount),
			Kind:            tx.Kind,
			Merchant:        tx.Details.Merchant,
			MCC:             tx.Details.MCC,
			Category:        category,
			Group:           tables.ResolveGroup(category),
			Bank:            tx.Details.Bank,
			PaymentMethod:   tx.Details.PaymentMethod,
			ReceiverAccount: tx.Details.ReceiverAccount,
			Details:         tx.Details.Raw,
		})
	}
	return rows
}

func (r TransactionRow) values() []string {
	return []string{
		r.Date, r.Amount, r.Kind, r.Merchant, r.MCC, r.Category, r.Group,
		r.Bank, r.PaymentMethod, r.ReceiverAccount, r.Details,
	}
}
