// Package convert handles statement export commands
package convert

import (
	"fjacquet/budged/cmd/common"
	"fjacquet/budged/cmd/root"
	"fjacquet/budged/internal/logging"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	validate   bool
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a statement to CSV or XLSX",
	Long: `Convert the transactions of a ForteBank PDF statement to CSV or to an Excel
workbook. The format follows the output file extension (.csv or .xlsx).

Example:
  budged convert -i statements/march.pdf -o march.xlsx`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement PDF to convert")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.csv or .xlsx)")
	Cmd.Flags().BoolVarP(&validate, "validate", "v", false, "Validate the PDF signature before conversion")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	logger := c.GetLogger()
	logger.Info("Convert command called",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})

	return common.ProcessFile(c.GetAdapter(), inputFile, outputFile, validate, logger)
}
