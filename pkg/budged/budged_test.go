package budged_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budged/pkg/budged"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layoutText = `ForteBank card statement
Date          Sum               Description              Details
02.03.2026    -4,500.50 KZT     Purchase                 MAGNUM CASH&CARRY, JSC Halyk
                                                         Bank, MCC: 5411, APPLE PAY
04.03.2026    -1,500.00 KZT     Purchase with bonuses    CINEMA PARK, MCC: 7832
` + "\f" + `05.03.2026    100,000.00 KZT    Account replenishment     Salary
06.03.2026    -30,000.00 KZT    Transfer                 Receiver: 440043******8791
` + "\f"

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newBudged(t *testing.T, opts budged.Options) (*budged.Budged, string) {
	t.Helper()
	if opts.Extractor == nil {
		opts.Extractor = budged.NewStaticExtractor(budged.PagesFromLayoutText(layoutText))
	}
	opts.Logger = quietLogger()
	b, err := budged.New(opts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "march.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0600))
	return b, path
}

func TestBudged_ParseFileFromLayoutText(t *testing.T) {
	b, path := newBudged(t, budged.Options{})

	stmt, err := b.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, stmt.Count())
	assert.Equal(t, "march.pdf", stmt.File)

	purchase := stmt.Transactions[0]
	assert.Equal(t, "02.03.2026", purchase.Date)
	assert.Equal(t, "-4500.5", purchase.Amount.String())
	assert.Equal(t, "5411", purchase.Details.MCC)
	assert.Equal(t, "Halyk Bank", purchase.Details.Bank)
	assert.Equal(t, "APPLE PAY", purchase.Details.PaymentMethod)
	assert.Equal(t, "Grocery Stores, Supermarkets", b.CategoryName(purchase.Details.MCC))
	assert.Equal(t, "Food & Dining", b.CategoryGroup("Grocery Stores, Supermarkets"))

	totals := b.Totals(stmt.Transactions)
	assert.Equal(t, "-6000.5", totals.PurchaseTotal.String())
	assert.Equal(t, "-1500", totals.BonusesTotal.String())
	assert.Equal(t, "-4500.5", totals.NetPurchases.String())
	assert.Equal(t, "100000", totals.IncomeTotal.String())
}

func TestBudged_Report(t *testing.T) {
	b, path := newBudged(t, budged.Options{})
	stmt, err := b.ParseFile(path)
	require.NoError(t, err)

	out := b.Report(stmt.Transactions, "mcc", "name", "simple")
	assert.Contains(t, out, "--- Grouped by Description and MCC Name (sorted by name) ---")

	fallback := b.Report(stmt.Transactions, "bogus", "bogus", "bogus")
	assert.Contains(t, fallback, "Grouped by Description and MCC Group (sorted by amount)")
}

func TestBudged_JSONDocuments(t *testing.T) {
	b, path := newBudged(t, budged.Options{})
	stmt, err := b.ParseFile(path)
	require.NoError(t, err)

	data, err := b.TransactionsJSON(stmt)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, float64(4), doc["transaction_count"])
	assert.Contains(t, string(data), "MAGNUM CASH&CARRY")

	data, err = b.SummaryJSON(stmt, "mcc")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "mcc", doc["group_by"])

	data, err = b.SummaryJSON(stmt, "anything")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "group", doc["group_by"])
}

func TestBudged_ParseAll(t *testing.T) {
	b, path := newBudged(t, budged.Options{Concurrency: 2})

	results, err := b.ParseAll(context.Background(), []string{path, filepath.Join(t.TempDir(), "missing.pdf")})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestBudged_ParseRows(t *testing.T) {
	b, _ := newBudged(t, budged.Options{})
	txns := b.ParseRows([]budged.RawRow{
		{"Date", "Sum", "Description", "Details"},
		{"07.03.2026", "-900.00 KZT", "Purchase", "PHARMACY, MCC: 5912"},
	})
	require.Len(t, txns, 1)
	assert.Equal(t, "5912", txns[0].Details.MCC)
}

func TestBudged_Convert(t *testing.T) {
	b, path := newBudged(t, budged.Options{})
	out := filepath.Join(t.TempDir(), "march.csv")

	require.NoError(t, b.Convert(path, out))
	assert.FileExists(t, out)
}

func TestBudged_CategoriesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
mcc_codes:
  "5411": Groceries
`), 0600))

	b, _ := newBudged(t, budged.Options{CategoriesFile: file})
	assert.Equal(t, "Groceries", b.CategoryName("5411"))

	_, err := budged.New(budged.Options{CategoriesFile: filepath.Join(t.TempDir(), "missing.yaml"), Logger: quietLogger()})
	assert.Error(t, err)
}
