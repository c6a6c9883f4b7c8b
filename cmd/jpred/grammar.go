package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/spec"
	"github.com/spf13/cobra"
)

var grammarFlags = struct {
	definition *string
	json       *bool
	notation   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print FIRST and FOLLOW sets and the conflicts of a grammar",
		Example: `  jpred grammar
  jpred grammar --definition grammar.json --json
  jpred grammar --notation > java.grammar`,
		Args: cobra.NoArgs,
		RunE: runGrammar,
	}
	grammarFlags.definition = cmd.Flags().StringP("definition", "d", "", "grammar definition file path (default the Java grammar)")
	grammarFlags.json = cmd.Flags().Bool("json", false, "print the report in JSON format")
	grammarFlags.notation = cmd.Flags().Bool("notation", false, "print the definition itself in the grammar notation")
	rootCmd.AddCommand(cmd)
}

type grammarReport struct {
	*grammar.Report
	Fingerprint string `json:"fingerprint"`
}

func runGrammar(cmd *cobra.Command, args []string) error {
	if *grammarFlags.notation {
		def, _, err := readDefinition(*grammarFlags.definition)
		if err != nil {
			return err
		}
		return spec.Write(os.Stdout, def)
	}

	a, err := generate(*grammarFlags.definition)
	if err != nil {
		return err
	}
	rep, err := a.Report()
	if err != nil {
		return err
	}
	fp, err := a.Fingerprint()
	if err != nil {
		return err
	}
	report := &grammarReport{
		Report:      rep,
		Fingerprint: fp,
	}

	if *grammarFlags.json {
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}

	return writeGrammarReport(os.Stdout, report)
}

const grammarReportTemplate = `# {{ .Name }}

fingerprint: {{ .Fingerprint }}

# FIRST
{{ range .First }}
{{ printSet . }}
{{- end }}

# FOLLOW
{{ range .Follow }}
{{ printSet . }}
{{- end }}

# Conflicts

{{ printConflictSummary .Conflicts }}
{{- range .Conflicts }}
{{ printConflict . }}
{{- end }}
`

func writeGrammarReport(w io.Writer, report *grammarReport) error {
	fns := template.FuncMap{
		"printSet": func(set *grammar.SetReport) string {
			return fmt.Sprintf("%v: {%v}", set.NonTerminal, strings.Join(set.Symbols, ", "))
		},
		"printConflictSummary": func(cs []*grammar.ConflictReport) string {
			switch len(cs) {
			case 0:
				return "no conflicts"
			case 1:
				return "1 conflict"
			}
			return fmt.Sprintf("%v conflicts", len(cs))
		},
		"printConflict": func(c *grammar.ConflictReport) string {
			return fmt.Sprintf("(%v, %v): %v was kept, %v was rejected", c.NonTerminal, c.Terminal, c.Existing, c.Rejected)
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(grammarReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, report)
}
