package grammar

import (
	"testing"

	"github.com/nihei9/jpred/grammar/symbol"
)

type testSymbolGenerator func(text string) symbol.Symbol

func newTestSymbolGenerator(t *testing.T, symTab *symbol.SymbolTableReader) testSymbolGenerator {
	return func(text string) symbol.Symbol {
		t.Helper()

		sym, ok := symTab.ToSymbol(text)
		if !ok {
			t.Fatalf("symbol was not found: %v", text)
		}
		return sym
	}
}

type testProductionGenerator func(lhs string, rhs ...string) *production

func newTestProductionGenerator(t *testing.T, genSym testSymbolGenerator) testProductionGenerator {
	return func(lhs string, rhs ...string) *production {
		t.Helper()

		rhsSym := []symbol.Symbol{}
		for _, text := range rhs {
			rhsSym = append(rhsSym, genSym(text))
		}
		prod, err := newProduction(genSym(lhs), rhsSym)
		if err != nil {
			t.Fatalf("failed to create a production: %v", err)
		}

		return prod
	}
}

// exprDefinition is the left-recursion-free expression grammar found in most textbooks.
func exprDefinition() *Definition {
	return &Definition{
		Name:      "expr",
		Start:     "Expr",
		Terminals: []string{"id", "+", "*", "(", ")"},
		Rules: []*Rule{
			{LHS: "Expr", Alternatives: [][]string{{"Term", "ExprRest"}}},
			{LHS: "ExprRest", Alternatives: [][]string{{"+", "Term", "ExprRest"}, {Epsilon}}},
			{LHS: "Term", Alternatives: [][]string{{"Factor", "TermRest"}}},
			{LHS: "TermRest", Alternatives: [][]string{{"*", "Factor", "TermRest"}, {Epsilon}}},
			{LHS: "Factor", Alternatives: [][]string{{"(", "Expr", ")"}, {"id"}}},
		},
	}
}

// ifDefinition has the dangling-else ambiguity.
func ifDefinition() *Definition {
	return &Definition{
		Name:      "if",
		Start:     "Stmt",
		Terminals: []string{"if", "cond", "else", "other"},
		Rules: []*Rule{
			{LHS: "Stmt", Alternatives: [][]string{{"if", "cond", "Stmt", "ElseOpt"}, {"other"}}},
			{LHS: "ElseOpt", Alternatives: [][]string{{Epsilon}, {"else", "Stmt"}}},
		},
	}
}

func buildGrammar(t *testing.T, def *Definition) *Grammar {
	t.Helper()

	b := GrammarBuilder{
		Definition: def,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return gram
}
