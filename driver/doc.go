/*
Package driver runs the predictive parser over a token stream. The parser
reads its decisions from a grammar.Analysis, builds a parse tree whose nodes
are tagged as interior nodes, terminal leaves or epsilon leaves, and recovers
from malformed input instead of stopping at the first error.

An Analysis is read-only, so any number of parsers may share one:

	p, err := driver.NewParser(analysis, toks)
	if err != nil {
		// handle the error
	}
	err = p.Parse()
	if err != nil {
		// handle the error
	}
	driver.PrintTree(os.Stdout, p.Tree())
	for _, synErr := range p.SyntaxErrors() {
		fmt.Println(synErr)
	}
*/
package driver

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'jpred.driver'.
func tracer() tracing.Trace {
	return tracing.Select("jpred.driver")
}
