// Package currencyutils formats statement amounts for reports and exports.
package currencyutils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// groupedFormatter prints cents with a comma thousands separator and no
// currency symbol.
var groupedFormatter = money.NewFormatter(2, ".", ",", "", "1")

// FormatGrouped renders an amount rounded to two decimals with thousands
// separators, e.g. -30,000.00.
func FormatGrouped(amount decimal.Decimal) string {
	return groupedFormatter.Format(amount.Round(2).Shift(2).IntPart())
}

// FormatFixed renders an amount with two decimals and no separators.
func FormatFixed(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatAmount renders an amount with two decimals followed by the currency
// code, e.g. "-4500.50 KZT". An empty currency omits the suffix.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatFixed(amount)
	}
	return FormatFixed(amount) + " " + currency
}
