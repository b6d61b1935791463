// Package list handles the statement listing command
package list

import (
	"fmt"
	"path/filepath"

	"fjacquet/budged/cmd/root"
	"fjacquet/budged/internal/batch"

	"github.com/spf13/cobra"
)

var inputDir string

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List the PDF statements of a directory",
	Long:  `List the PDF statements found in a directory as JSON (default: statements.directory).`,
	RunE:  listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "Directory of statement PDFs")
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	dir := inputDir
	if dir == "" {
		dir = c.GetConfig().Statements.Directory
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	files, err := batch.ListStatements(dir)
	if err != nil {
		return err
	}

	gen := c.GetGenerator()
	data, err := gen.EncodeJSON(gen.StatementList(dir, files))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
