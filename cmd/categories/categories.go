// Package categories handles the category table command
package categories

import (
	"fmt"
	"strings"

	"fjacquet/budged/cmd/root"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the MCC codes and category groups",
	Long: `Print the merchant category codes and the category groups used for
classification, including overrides from the categories file.

The YAML output can be saved as categories.yaml and edited to add codes or
move categories between groups.`,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml, json or table")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	data, err := c.GetGenerator().CategoriesDocument(c.GetTables(), output)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
	return nil
}
