// Package summary handles the categorized spending summary command
package summary

import (
	"fmt"
	"strings"

	"fjacquet/budged/cmd/root"
	"fjacquet/budged/internal/aggregator"
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/report"

	"github.com/spf13/cobra"
)

const (
	groupByGroup = "group"
	groupByMCC   = "mcc"
)

var (
	inputFile string
	groupBy   string
	sortBy    string
	output    string
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending of a statement by category",
	Long: `Summarize the spending of one ForteBank statement per category group
(Food & Dining, Transport, ...) or per individual MCC category.

The default JSON output lists categories in ascending order of their total,
so the largest spending comes first, followed by the statement totals.`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement PDF to summarize")
	Cmd.Flags().StringVar(&groupBy, "group-by", groupByGroup, "Grouping: group or mcc")
	Cmd.Flags().StringVar(&sortBy, "sort", "sum", "Sort order for text output: sum or name")
	Cmd.Flags().StringVar(&output, "output", "json", "Output format: json, ascii or simple")
	_ = Cmd.MarkFlagRequired("input")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if inputFile == "" {
		return fmt.Errorf("an input statement must be specified with --input")
	}

	stmt, err := c.GetParser().ParseFile(inputFile)
	if err != nil {
		return err
	}

	mode := strings.ToLower(strings.TrimSpace(groupBy))
	if mode != groupByMCC {
		mode = groupByGroup
	}
	table, title := aggregate(stmt.Transactions, c.GetTables(), mode)

	out := cmd.OutOrStdout()
	switch strings.ToLower(output) {
	case "ascii", "simple":
		fmt.Fprintln(out, report.FormatAggregated(table, title, report.ParseSortKey(sortBy), report.ParseStyle(output)))
		return nil
	default:
		gen := c.GetGenerator()
		data, err := gen.EncodeJSON(gen.SummaryDocument(stmt, table, mode))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
}

func aggregate(txns []models.Transaction, tables *categories.Tables, mode string) (models.AggregationTable, string) {
	if mode == groupByMCC {
		return aggregator.AggregateByCategory(txns, tables), report.TitleByCategory
	}
	return aggregator.AggregateByGroup(txns, tables), report.TitleByGroup
}
