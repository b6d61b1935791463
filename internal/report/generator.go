package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/budged/internal/aggregator"
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/currencyutils"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const markdownDetailsLimit = 80

// Generator builds the JSON, YAML and markdown documents of the CLI.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logging.OrDefault(logger).WithField("component", "ReportGenerator")}
}

// TransactionView is the JSON form of one transaction. Absent fields are null.
type TransactionView struct {
	Date            string      `json:"date"`
	AmountKZT       json.Number `json:"amount_kzt"`
	Description     string      `json:"description"`
	Merchant        *string     `json:"merchant"`
	MCCCode         *string     `json:"mcc_code"`
	MCCName         *string     `json:"mcc_name"`
	Bank            *string     `json:"bank"`
	PaymentMethod   *string     `json:"payment_method"`
	ReceiverAccount *string     `json:"receiver_account"`
	RawDetails      string      `json:"raw_details"`
}

// TotalsView is the JSON form of models.Totals.
type TotalsView struct {
	PurchaseTotal json.Number `json:"purchase_total"`
	BonusesTotal  json.Number `json:"bonuses_total"`
	NetPurchases  json.Number `json:"net_purchases"`
	GrandTotal    json.Number `json:"grand_total"`
	IncomeTotal   json.Number `json:"income_total"`
}

// TransactionsDocument is the output of the parse command.
type TransactionsDocument struct {
	File             string            `json:"file"`
	StatementID      string            `json:"statement_id"`
	TransactionCount int               `json:"transaction_count"`
	Transactions     []TransactionView `json:"transactions"`
	Totals           TotalsView        `json:"totals"`
}

// CategoryTotal is one category (or group) of a summary.
type CategoryTotal struct {
	Category string      `json:"category"`
	Total    json.Number `json:"total"`
}

// SummaryDocument is the output of the summary command.
type SummaryDocument struct {
	File        string          `json:"file"`
	StatementID string          `json:"statement_id"`
	GroupBy     string          `json:"group_by"`
	Categories  []CategoryTotal `json:"categories"`
	Totals      TotalsView      `json:"totals"`
}

// StatementFile is one entry of a StatementList.
type StatementFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// StatementList is the output of the list command.
type StatementList struct {
	Directory string          `json:"directory"`
	Files     []StatementFile `json:"files"`
	Count     int             `json:"count"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(currencyutils.FormatFixed(d))
}

func totalsView(t models.Totals) TotalsView {
	return TotalsView{
		PurchaseTotal: number(t.PurchaseTotal),
		BonusesTotal:  number(t.BonusesTotal),
		NetPurchases:  number(t.NetPurchases),
		GrandTotal:    number(t.GrandTotal),
		IncomeTotal:   number(t.IncomeTotal),
	}
}

// TransactionsDocument lists every transaction of stmt with its totals.
// mcc_name is only set for codes present in tables.
func (g *Generator) TransactionsDocument(stmt models.Statement, tables *categories.Tables) TransactionsDocument {
	if tables == nil {
		tables = categories.Default()
	}
	views := make([]TransactionView, 0, len(stmt.Transactions))
	for _, tx := range stmt.Transactions {
		var mccName *string
		if name, ok := tables.Lookup(tx.Details.MCC); ok {
			mccName = &name
		}
		views = append(views, TransactionView{
			Date:            tx.Date,
			AmountKZT:       number(tx.Amount),
			Description:     tx.Kind,
			Merchant:        models.OptionalString(tx.Details.Merchant),
			MCCCode:         models.OptionalString(tx.Details.MCC),
			MCCName:         mccName,
			Bank:            models.OptionalString(tx.Details.Bank),
			PaymentMethod:   models.OptionalString(tx.Details.PaymentMethod),
			ReceiverAccount: models.OptionalString(tx.Details.ReceiverAccount),
			RawDetails:      tx.Details.Raw,
		})
	}

	g.logger.Debug("Built transactions document",
		logging.Field{Key: logging.FieldStatementID, Value: stmt.ID.String()},
		logging.Field{Key: logging.FieldCount, Value: len(views)})

	return TransactionsDocument{
		File:             stmt.File,
		StatementID:      stmt.ID.String(),
		TransactionCount: len(views),
		Transactions:     views,
		Totals:           totalsView(aggregator.ComputeTotals(stmt.Transactions)),
	}
}

// SummaryDocument sums table per category across kinds, without the
// "Saved with bonuses" entries, sorted by ascending total.
func (g *Generator) SummaryDocument(stmt models.Statement, table models.AggregationTable, groupBy string) SummaryDocument {
	spending := aggregator.CategorySpending(table)
	names := make([]string, 0, len(spending))
	for name := range spending {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := spending[names[i]], spending[names[j]]
		if !a.Equal(b) {
			return a.LessThan(b)
		}
		return names[i] < names[j]
	})

	cats := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		cats = append(cats, CategoryTotal{Category: name, Total: number(spending[name])})
	}

	return SummaryDocument{
		File:        stmt.File,
		StatementID: stmt.ID.String(),
		GroupBy:     groupBy,
		Categories:  cats,
		Totals:      totalsView(aggregator.ComputeTotals(stmt.Transactions)),
	}
}

// StatementList describes the statement files found in dir.
func (g *Generator) StatementList(dir string, files []string) StatementList {
	list := StatementList{Directory: dir, Files: make([]StatementFile, 0, len(files))}
	for _, f := range files {
		list.Files = append(list.Files, StatementFile{Name: filepath.Base(f), Path: f})
	}
	list.Count = len(list.Files)
	return list
}

// EncodeJSON renders v as indented JSON without HTML escaping.
func (g *Generator) EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON document")
		return nil, fmt.Errorf("failed to marshal JSON document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarkdownTable renders classified raw rows as a markdown table suitable for
// pasting into a chat. Pipes are escaped and long details are truncated.
func (g *Generator) MarkdownTable(file string, rows []models.RawRow) string {
	header := "# ForteBank statement: " + file
	if len(rows) == 0 {
		return header + "\n\nNo transactions found in PDF."
	}

	escape := func(s string) string {
		s = strings.ReplaceAll(s, "|", `\|`)
		return strings.ReplaceAll(s, "\n", " ")
	}

	lines := []string{
		header,
		fmt.Sprintf("Transactions: %d", len(rows)),
		"",
		"| Date | Sum | Description | Details |",
		"|------|-----|--------------|----------|",
	}
	for _, row := range rows {
		details := strings.TrimSpace(escape(row.Cell(3)))
		if r := []rune(details); len(r) > markdownDetailsLimit {
			details = string(r[:markdownDetailsLimit-3]) + "..."
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |", row.Cell(0), row.Cell(1), escape(row.Cell(2)), details))
	}
	return strings.Join(lines, "\n")
}

// CategoriesDocument renders the category tables as yaml (or yml), json or
// a boxed table of codes in ascending order (table or ascii).
func (g *Generator) CategoriesDocument(tables *categories.Tables, format string) ([]byte, error) {
	doc := tables.Document()
	switch strings.ToLower(format) {
	case "table", "ascii":
		return []byte(codesTable(tables)), nil
	case "yaml", "yml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML document: %w", err)
		}
		return out, nil
	case "json":
		return g.EncodeJSON(doc)
	default:
		return nil, fmt.Errorf("unsupported categories format: %s", format)
	}
}

func codesTable(tables *categories.Tables) string {
	codes := tables.SortedCodes()
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		name := tables.ResolveCategoryName(code)
		rows = append(rows, []string{code, name, tables.ResolveGroup(name)})
	}
	return FormatASCIITable([]string{"MCC", "Category", "Group"}, rows, "MCC codes")
}
