package main

import (
	"fmt"
	"os"

	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/frontend"
	"github.com/nihei9/jpred/lang"
	"github.com/nihei9/jpred/lexer"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	tokens *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a Java source and print its parse tree",
		Example: `  cat A.java | jpred parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.tokens = cmd.Flags().Bool("tokens", false, "print the tokens instead of the tree")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(*parseFlags.source)
	if err != nil {
		return err
	}

	lex, err := lexer.New(*rootFlags.lexer, lang.JavaVocabulary())
	if err != nil {
		return err
	}
	toks, lexErrs, err := lex.Tokenize(src)
	if err != nil {
		return err
	}
	for _, e := range lexErrs {
		pterm.Error.Println(e.Error())
	}
	if *parseFlags.tokens {
		for _, tok := range toks {
			fmt.Fprintln(os.Stdout, tok)
		}
		return nil
	}

	a, err := frontend.GenerateJava()
	if err != nil {
		return err
	}
	p, err := driver.NewParser(a, toks)
	if err != nil {
		return err
	}
	err = p.Parse()
	if err != nil {
		return err
	}

	driver.PrintTree(os.Stdout, p.Tree())
	for _, synErr := range p.SyntaxErrors() {
		pterm.Error.Println(synErr.Error())
	}
	if len(lexErrs) > 0 || len(p.SyntaxErrors()) > 0 {
		return fmt.Errorf("%v lexical errors, %v syntax errors", len(lexErrs), len(p.SyntaxErrors()))
	}

	return nil
}
