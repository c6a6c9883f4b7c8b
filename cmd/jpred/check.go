package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nihei9/jpred/frontend"
	"github.com/nihei9/jpred/semantic"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	source *string
	json   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Tokenize, parse and analyze a Java source and print its declarations",
		Example: `  jpred check --source A.java --json`,
		Args:    cobra.NoArgs,
		RunE:    runCheck,
	}
	checkFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	checkFlags.json = cmd.Flags().Bool("json", false, "print the result in JSON format")
	rootCmd.AddCommand(cmd)
}

type checkResult struct {
	Status         frontend.Status       `json:"status"`
	LexicalErrors  []string              `json:"lexical_errors"`
	SyntaxErrors   []string              `json:"syntax_errors"`
	SemanticErrors []string              `json:"semantic_errors"`
	Symbols        *semantic.SymbolTable `json:"symbols"`
}

func newCheckResult(res *frontend.Result) *checkResult {
	r := &checkResult{
		Status:         res.Status,
		LexicalErrors:  []string{},
		SyntaxErrors:   []string{},
		SemanticErrors: []string{},
		Symbols:        res.Symbols,
	}
	for _, e := range res.LexicalErrors {
		r.LexicalErrors = append(r.LexicalErrors, e.Error())
	}
	for _, e := range res.SyntaxErrors {
		r.SyntaxErrors = append(r.SyntaxErrors, e.Error())
	}
	for _, e := range res.SemanticErrors {
		r.SemanticErrors = append(r.SemanticErrors, e.Error())
	}
	return r
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := readSource(*checkFlags.source)
	if err != nil {
		return err
	}

	f, err := frontend.New(frontend.LexerBackend(*rootFlags.lexer))
	if err != nil {
		return err
	}
	res, err := f.Analyze(src)
	if err != nil {
		return err
	}

	if *checkFlags.json {
		b, err := json.MarshalIndent(newCheckResult(res), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(b))
	} else {
		printSymbols(res.Symbols)
		printDiagnostics(res)
	}

	if res.Status != frontend.StatusOK {
		return fmt.Errorf("status: %v", res.Status)
	}
	return nil
}

func printDiagnostics(res *frontend.Result) {
	for _, e := range res.LexicalErrors {
		pterm.Error.Println(e.Error())
	}
	for _, e := range res.SyntaxErrors {
		pterm.Error.Println(e.Error())
	}
	for _, e := range res.SemanticErrors {
		pterm.Error.Println(e.Error())
	}
	pterm.Info.Println(fmt.Sprintf("status: %v", res.Status))
}

// printSymbols prints one row per declaration, classes in declaration order.
func printSymbols(symTab *semantic.SymbolTable) {
	data := pterm.TableData{
		{"class", "kind", "name", "type"},
	}
	for _, className := range symTab.ClassNames() {
		cls, _ := symTab.Class(className)
		data = append(data, []string{cls.Name, "class", cls.Name, ""})
		for _, name := range cls.FieldNames() {
			data = append(data, []string{cls.Name, "field", name, cls.Fields[name]})
		}
		for _, name := range cls.MethodNames() {
			m := cls.Methods[name]
			data = append(data, []string{cls.Name, "method", name, methodSignature(m)})
			for _, p := range m.Params {
				data = append(data, []string{cls.Name, "param", fmt.Sprintf("%v.%v", name, p.Name), p.Type})
			}
			for _, local := range m.LocalNames() {
				data = append(data, []string{cls.Name, "local", fmt.Sprintf("%v.%v", name, local), m.Locals[local]})
			}
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func methodSignature(m *semantic.MethodInfo) string {
	sig := "("
	for i, p := range m.Params {
		if i > 0 {
			sig += ", "
		}
		sig += p.Type
	}
	return sig + ") " + m.ReturnType
}
