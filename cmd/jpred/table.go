package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	definition *string
	nonTerm    *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the LL(1) parsing table of a grammar",
		Example: `  jpred table
  jpred table --non-terminal ElseOpt`,
		Args: cobra.NoArgs,
		RunE: runTable,
	}
	tableFlags.definition = cmd.Flags().StringP("definition", "d", "", "grammar definition file path (default the Java grammar)")
	tableFlags.nonTerm = cmd.Flags().StringP("non-terminal", "n", "", "print only the row of this non-terminal")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	a, err := generate(*tableFlags.definition)
	if err != nil {
		return err
	}
	rep, err := a.Report()
	if err != nil {
		return err
	}

	data := pterm.TableData{
		{"non-terminal", "terminal", "production"},
	}
	for _, cell := range rep.Table {
		if *tableFlags.nonTerm != "" && cell.NonTerminal != *tableFlags.nonTerm {
			continue
		}
		data = append(data, []string{cell.NonTerminal, cell.Terminal, cell.Production})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if len(rep.Conflicts) > 0 {
		pterm.Warning.Println(fmt.Sprintf("%v conflicts; run `jpred grammar` for details", len(rep.Conflicts)))
	}

	return nil
}
