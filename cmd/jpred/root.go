package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/lang"
	"github.com/nihei9/jpred/lexer"
	"github.com/nihei9/jpred/spec"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var traceKeys = []string{
	"jpred.grammar",
	"jpred.lexer",
	"jpred.driver",
	"jpred.semantic",
	"jpred.frontend",
	"jpred.spec",
}

var rootFlags = struct {
	trace *string
	lexer *string
}{}

var rootCmd = &cobra.Command{
	Use:   "jpred",
	Short: "Analyze an LL(1) grammar and parse Java sources with it",
	Long: `jpred provides the following features:
- Computes FIRST and FOLLOW sets, the LL(1) parsing table and its conflicts.
- Parses a subset of Java with a predictive parser that recovers from errors.
- Collects classes, fields, methods and locals and reports duplicates.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setUp,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.lexer = rootCmd.PersistentFlags().String("lexer", lexer.BackendMaleeni, fmt.Sprintf("lexer backend [%v|%v]", lexer.BackendMaleeni, lexer.BackendLexmachine))
}

func setUp(cmd *cobra.Command, args []string) error {
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}

	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	return nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err)
		return err
	}
	return nil
}

// readDefinition reads a grammar definition from `path`. An empty path selects the Java
// grammar. A .json file holds a Definition as is; any other file is read as the notation.
func readDefinition(path string) (*grammar.Definition, string, error) {
	if path == "" {
		return lang.JavaDefinition(), "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot open the grammar definition %s: %w", path, err)
	}
	defer f.Close()

	var def *grammar.Definition
	if filepath.Ext(path) == ".json" {
		def, err = grammar.ReadDefinition(f)
	} else {
		def, err = spec.Parse(f, path)
	}
	if err != nil {
		return nil, "", err
	}
	return def, path, nil
}

func generate(path string) (*grammar.Analysis, error) {
	def, srcName, err := readDefinition(path)
	if err != nil {
		return nil, err
	}
	b := grammar.GrammarBuilder{
		Definition: def,
		SourceName: srcName,
	}
	gram, err := b.Build()
	if err != nil {
		return nil, err
	}
	return grammar.Generate(gram)
}

// readSource reads a whole source from `path`, or from stdin when the path is empty.
func readSource(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("cannot open the source file %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(src), nil
}
