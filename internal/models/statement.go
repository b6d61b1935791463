package models

import (
	"github.com/google/uuid"
)

// Table is one extracted table: rows of cells.
type Table []RawRow

// Page holds the tables found on one PDF page.
type Page struct {
	Number int
	Tables []Table
}

// Statement is the result of parsing one statement file.
type Statement struct {
	ID           uuid.UUID     `json:"statement_id"`
	File         string        `json:"file"`
	Transactions []Transaction `json:"transactions"`
	SkippedRows  int           `json:"skipped_rows"`
}

// NewStatement creates a statement with a fresh run id.
func NewStatement(file string) Statement {
	return Statement{
		ID:           uuid.New(),
		File:         file,
		Transactions: []Transaction{},
	}
}

// Count returns the number of transactions.
func (s Statement) Count() int {
	return len(s.Transactions)
}
