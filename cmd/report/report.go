// Package report handles the spending report command
package report

import (
	"fmt"
	"path/filepath"

	"fjacquet/budged/cmd/common"
	"fjacquet/budged/cmd/root"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/report"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	inputDir   string
	reportKind string
	sortBy     string
	format     string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print spending reports for ForteBank statements",
	Long: `Print a spending report for one statement or for every PDF statement in a directory.

Reports:
  raw    every transaction with its date, kind, amount and merchant
  mcc    totals per transaction kind and MCC category
  group  totals per transaction kind and category group

Example:
  budged report -d statements/ --report mcc --sort name --format simple`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement PDF to report on")
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "Directory of statement PDFs (default: statements.directory)")
	Cmd.Flags().StringVar(&reportKind, "report", "group", "Report type: raw, mcc or group")
	Cmd.Flags().StringVar(&sortBy, "sort", "sum", "Sort order: sum, name or date (date applies to raw only)")
	Cmd.Flags().StringVar(&format, "format", "ascii", "Output format: simple or ascii")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	cfg := c.GetConfig()
	logger := c.GetLogger()

	kind := report.ParseReportKind(common.FlagOrDefault(cmd, "report", reportKind, cfg.Report.Kind))
	sortKey := report.ParseSortKey(common.FlagOrDefault(cmd, "sort", sortBy, cfg.Report.Sort))
	style := report.ParseStyle(common.FlagOrDefault(cmd, "format", format, cfg.Report.Style))

	files, err := common.ResolveInputs(inputFile, inputDir, cfg.Statements.Directory)
	if err != nil {
		return err
	}
	logger.Debug("Report command called",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: "report", Value: string(kind)})

	results, err := c.GetRunner().ParseAll(common.Context(cmd), files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		fmt.Fprintf(out, "=== %s ===\n", filepath.Base(res.File))
		if res.Err != nil {
			failed++
			fmt.Fprintf(out, "Error: %v\n\n", res.Err)
			continue
		}
		fmt.Fprintf(out, "Parsed %d transactions\n\n", res.Statement.Count())
		fmt.Fprintln(out, report.Render(kind, res.Statement.Transactions, c.GetTables(), sortKey, style))
		fmt.Fprintln(out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d statements could not be parsed", failed, len(results))
	}
	return nil
}
