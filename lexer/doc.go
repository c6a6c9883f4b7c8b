/*
Package lexer turns source text into the token stream the predictive parser
consumes. Two interchangeable backends are provided: one compiles the
vocabulary with maleeni, the other with lexmachine. Both discard white space
and comments, report illegal characters on a side channel and terminate the
stream with a token of category "$".

	lex, err := lexer.New(lexer.BackendMaleeni, lang.JavaVocabulary())
	if err != nil {
		// handle the error
	}
	toks, lexErrs, err := lex.Tokenize(src)
*/
package lexer

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'jpred.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("jpred.lexer")
}
