package main

import (
	"fmt"
	"os"

	"fjacquet/budged/cmd/categories"
	"fjacquet/budged/cmd/convert"
	"fjacquet/budged/cmd/list"
	"fjacquet/budged/cmd/parse"
	"fjacquet/budged/cmd/report"
	"fjacquet/budged/cmd/root"
	"fjacquet/budged/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(list.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
