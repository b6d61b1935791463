// Package parse handles the statement parsing command
package parse

import (
	"fmt"
	"path/filepath"

	"fjacquet/budged/cmd/root"

	"github.com/spf13/cobra"
)

var (
	inputFile string
	markdown  bool
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Print the transactions of a statement",
	Long: `Parse one ForteBank statement and print its transactions as JSON, including
merchant, MCC, bank, payment method and receiver account when present, followed
by the statement totals.

With --markdown the classified rows are printed as a markdown table instead,
suitable for pasting into a chat.`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Statement PDF to parse")
	Cmd.Flags().BoolVar(&markdown, "markdown", false, "Print a markdown table of the raw rows")
	_ = Cmd.MarkFlagRequired("input")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if inputFile == "" {
		return fmt.Errorf("an input statement must be specified with --input")
	}

	gen := c.GetGenerator()
	out := cmd.OutOrStdout()

	if markdown {
		rows, err := c.GetParser().ExtractRawRows(inputFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, gen.MarkdownTable(filepath.Base(inputFile), rows))
		return nil
	}

	stmt, err := c.GetParser().ParseFile(inputFile)
	if err != nil {
		return err
	}
	data, err := gen.EncodeJSON(gen.TransactionsDocument(stmt, c.GetTables()))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
