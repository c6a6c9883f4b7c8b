package driver

import (
	"strings"
	"testing"

	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/lexer"
)

func genAnalysis(t *testing.T, def *grammar.Definition) *grammar.Analysis {
	t.Helper()

	b := grammar.GrammarBuilder{
		Definition: def,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	a, err := grammar.Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// genTokens makes a single-line token list. An element is either a category whose text
// is the category itself, or `category:text`.
func genTokens(elems ...string) []*lexer.Token {
	var toks []*lexer.Token
	col := 1
	for _, e := range elems {
		kind, text := e, e
		if i := strings.Index(e, ":"); i > 0 {
			kind, text = e[:i], e[i+1:]
		}
		toks = append(toks, &lexer.Token{
			Kind: kind,
			Text: text,
			Row:  1,
			Col:  col,
		})
		col += len(text) + 1
	}
	return append(toks, &lexer.Token{
		Kind: lexer.CategoryEOF,
		Text: lexer.CategoryEOF,
		Row:  1,
		Col:  col,
	})
}

func exprDefinition() *grammar.Definition {
	return &grammar.Definition{
		Name:      "expr",
		Start:     "Expr",
		Terminals: []string{"id", "+", "*", "(", ")"},
		Rules: []*grammar.Rule{
			{LHS: "Expr", Alternatives: [][]string{{"Term", "ExprRest"}}},
			{LHS: "ExprRest", Alternatives: [][]string{{"+", "Term", "ExprRest"}, {grammar.Epsilon}}},
			{LHS: "Term", Alternatives: [][]string{{"Factor", "TermRest"}}},
			{LHS: "TermRest", Alternatives: [][]string{{"*", "Factor", "TermRest"}, {grammar.Epsilon}}},
			{LHS: "Factor", Alternatives: [][]string{{"(", "Expr", ")"}, {"id"}}},
		},
	}
}

func parenDefinition() *grammar.Definition {
	return &grammar.Definition{
		Name:      "paren",
		Start:     "S",
		Terminals: []string{"id", "(", ")"},
		Rules: []*grammar.Rule{
			{LHS: "S", Alternatives: [][]string{{"(", "E", ")"}}},
			{LHS: "E", Alternatives: [][]string{{"id"}}},
		},
	}
}
