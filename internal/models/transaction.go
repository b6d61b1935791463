// Package models defines the records that flow through the statement pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction kinds the pipeline treats specially. Every other kind is opaque.
const (
	KindPurchase           = "Purchase"
	KindPurchaseWithBonus  = "Purchase with bonuses"
	KindSavedWithBonuses   = "Saved with bonuses"
	KindTransfer           = "Transfer"
	KindAccountReplenished = "Account replenishment"
)

// Currency is the only currency a ForteBank card statement carries.
const Currency = "KZT"

// RawRow is a row of cell strings as returned by table extraction.
// Absent cells are represented by the empty string.
type RawRow []string

// Cell returns the i-th cell or "" when the row is too short.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Transaction is the canonical record built from one statement row.
type Transaction struct {
	Date    string          `json:"date" yaml:"date"`
	Amount  decimal.Decimal `json:"amount" yaml:"amount"`
	Kind    string          `json:"kind" yaml:"kind"`
	Details Details         `json:"details" yaml:"details"`
}

// IsBonusPurchase reports whether the purchase was (partly) paid with bonuses.
func (t Transaction) IsBonusPurchase() bool {
	return t.Kind == KindPurchaseWithBonus
}

// IsPurchase reports whether the transaction is a purchase of either variant.
func (t Transaction) IsPurchase() bool {
	return t.Kind == KindPurchase || t.Kind == KindPurchaseWithBonus
}

// IsIncome reports whether the amount is an inflow.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// DisplayKind folds the bonus purchase label down to a plain purchase.
func (t Transaction) DisplayKind() string {
	if t.IsBonusPurchase() {
		return KindPurchase
	}
	return t.Kind
}

// Label returns "card *NNNN" for transfers, otherwise the merchant (possibly empty).
func (t Transaction) Label() string {
	if t.Details.IsTransfer() {
		runes := []rune(t.Details.ReceiverAccount)
		if len(runes) > 4 {
			runes = runes[len(runes)-4:]
		}
		return "card *" + string(runes)
	}
	return t.Details.Merchant
}
