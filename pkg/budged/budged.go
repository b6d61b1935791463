// Package budged is the public API for parsing ForteBank card statements and
// reporting spending by merchant category.
//
// A host program creates a Budged with New and then parses statements:
//
//	b, err := budged.New(budged.Options{})
//	if err != nil {
//		return err
//	}
//	stmt, err := b.ParseFile("statements/march.pdf")
//	if err != nil {
//		return err
//	}
//	fmt.Println(b.Report(stmt.Transactions, "group", "sum", "ascii"))
package budged

import (
	"context"

	"fjacquet/budged/internal/aggregator"
	"fjacquet/budged/internal/batch"
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/forteparser"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/pdfparser"
	"fjacquet/budged/internal/report"
	"fjacquet/budged/internal/store"

	"github.com/sirupsen/logrus"
)

type (
	// Statement is one parsed statement file.
	Statement = models.Statement
	// Transaction is one statement row.
	Transaction = models.Transaction
	// Details holds the fields recovered from a row's details text.
	Details = models.Details
	// Totals summarises a list of transactions.
	Totals = models.Totals
	// Page is one PDF page of extracted tables.
	Page = models.Page
	// Table is a list of raw rows.
	Table = models.Table
	// RawRow is one extracted table row.
	RawRow = models.RawRow
	// TableExtractor turns a PDF file into pages of raw rows.
	TableExtractor = pdfparser.TableExtractor
	// Result is the outcome of parsing one file with ParseAll.
	Result = batch.Result
)

// Options configures New. The zero value uses pdftotext, the built-in
// category tables and the standard logrus logger.
type Options struct {
	Logger         *logrus.Logger
	Extractor      TableExtractor
	CategoriesFile string
	Concurrency    int
}

// Budged parses statements and renders reports.
type Budged struct {
	adapter   *forteparser.Adapter
	tables    *categories.Tables
	generator *report.Generator
	runner    *batch.Runner
}

// New creates a Budged. A CategoriesFile is merged over the built-in tables;
// a missing or inconsistent file is an error.
func New(opts Options) (*Budged, error) {
	logger := logging.NewLogrusAdapterFromLogger(opts.Logger)

	tables := categories.Default()
	if opts.CategoriesFile != "" {
		var err error
		tables, err = store.NewCategoryStore(opts.CategoriesFile, logger).LoadTables(tables)
		if err != nil {
			return nil, err
		}
	}

	adapter := forteparser.NewAdapter(logger, opts.Extractor, tables)
	return &Budged{
		adapter:   adapter,
		tables:    tables,
		generator: report.NewGenerator(logger),
		runner:    batch.NewRunner(adapter.Parser(), opts.Concurrency, logger),
	}, nil
}

// ParseFile parses the statement at path.
func (b *Budged) ParseFile(path string) (Statement, error) {
	return b.adapter.Parser().ParseFile(path)
}

// ParseAll parses several statements concurrently; results keep input order.
func (b *Budged) ParseAll(ctx context.Context, paths []string) ([]Result, error) {
	return b.runner.ParseAll(ctx, paths)
}

// ParseRows builds transactions from already extracted rows, skipping the
// rows that are not transactions.
func (b *Budged) ParseRows(rows []RawRow) []Transaction {
	return forteparser.BuildAll(rows)
}

// Convert writes the statement to a .csv or .xlsx file.
func (b *Budged) Convert(inputFile, outputFile string) error {
	return b.adapter.Convert(inputFile, outputFile)
}

// Report renders a raw, mcc or group report sorted by sum, name or date in
// simple or ascii layout. Unknown option values fall back to group, sum and ascii.
func (b *Budged) Report(transactions []Transaction, kind, sortBy, format string) string {
	return report.Render(report.ParseReportKind(kind), transactions, b.tables,
		report.ParseSortKey(sortBy), report.ParseStyle(format))
}

// Totals computes purchase, bonus, net, grand and income totals.
func (b *Budged) Totals(transactions []Transaction) Totals {
	return aggregator.ComputeTotals(transactions)
}

// CategoryName returns the category of an MCC code.
func (b *Budged) CategoryName(code string) string {
	return b.tables.ResolveCategoryName(code)
}

// CategoryGroup returns the group of a category name.
func (b *Budged) CategoryGroup(name string) string {
	return b.tables.ResolveGroup(name)
}

// TransactionsJSON renders stmt as the JSON document of the parse command.
func (b *Budged) TransactionsJSON(stmt Statement) ([]byte, error) {
	return b.generator.EncodeJSON(b.generator.TransactionsDocument(stmt, b.tables))
}

// SummaryJSON renders the spending summary of stmt grouped by "group" or "mcc".
func (b *Budged) SummaryJSON(stmt Statement, groupBy string) ([]byte, error) {
	table := aggregator.AggregateByGroup(stmt.Transactions, b.tables)
	if groupBy == "mcc" {
		table = aggregator.AggregateByCategory(stmt.Transactions, b.tables)
	} else {
		groupBy = "group"
	}
	return b.generator.EncodeJSON(b.generator.SummaryDocument(stmt, table, groupBy))
}

// PagesFromLayoutText rebuilds pages from `pdftotext -layout` output, for
// callers that run the text extraction themselves.
func PagesFromLayoutText(text string) []Page {
	return pdfparser.PagesFromLayoutText(text)
}

// NewStaticExtractor returns an extractor that serves fixed pages, useful
// when the pages come from PagesFromLayoutText or from tests.
func NewStaticExtractor(pages []Page) TableExtractor {
	return pdfparser.NewMockExtractor(pages, nil)
}
