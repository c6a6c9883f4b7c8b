package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type cell struct {
	nonTerminal string
	terminal    string
	rhs         []string
}

func TestGenLLParsingTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jpred.grammar")
	defer teardown()

	tests := []struct {
		caption   string
		def       *Definition
		cells     []cell
		empty     []cell
		conflicts int
	}{
		{
			caption: "an LL(1) grammar has no conflicts",
			def:     exprDefinition(),
			cells: []cell{
				{nonTerminal: "Expr", terminal: "id", rhs: []string{"Term", "ExprRest"}},
				{nonTerminal: "Expr", terminal: "(", rhs: []string{"Term", "ExprRest"}},
				{nonTerminal: "ExprRest", terminal: "+", rhs: []string{"+", "Term", "ExprRest"}},
				{nonTerminal: "ExprRest", terminal: ")", rhs: []string{}},
				{nonTerminal: "ExprRest", terminal: "$", rhs: []string{}},
				{nonTerminal: "Term", terminal: "id", rhs: []string{"Factor", "TermRest"}},
				{nonTerminal: "Term", terminal: "(", rhs: []string{"Factor", "TermRest"}},
				{nonTerminal: "TermRest", terminal: "+", rhs: []string{}},
				{nonTerminal: "TermRest", terminal: "*", rhs: []string{"*", "Factor", "TermRest"}},
				{nonTerminal: "TermRest", terminal: ")", rhs: []string{}},
				{nonTerminal: "TermRest", terminal: "$", rhs: []string{}},
				{nonTerminal: "Factor", terminal: "id", rhs: []string{"id"}},
				{nonTerminal: "Factor", terminal: "(", rhs: []string{"(", "Expr", ")"}},
			},
			empty: []cell{
				{nonTerminal: "Expr", terminal: "+"},
				{nonTerminal: "Expr", terminal: "$"},
				{nonTerminal: "ExprRest", terminal: "id"},
				{nonTerminal: "Factor", terminal: ")"},
			},
			conflicts: 0,
		},
		{
			caption: "the production written first wins a conflict",
			def:     ifDefinition(),
			cells: []cell{
				{nonTerminal: "Stmt", terminal: "if", rhs: []string{"if", "cond", "Stmt", "ElseOpt"}},
				{nonTerminal: "Stmt", terminal: "other", rhs: []string{"other"}},
				{nonTerminal: "ElseOpt", terminal: "else", rhs: []string{}},
				{nonTerminal: "ElseOpt", terminal: "$", rhs: []string{}},
			},
			conflicts: 1,
		},
		{
			caption: "a resolution overrides the automatic choice",
			def: func() *Definition {
				def := ifDefinition()
				def.Resolutions = []*Resolution{
					{NonTerminal: "ElseOpt", Terminal: "else", Alternative: []string{"else", "Stmt"}},
				}
				return def
			}(),
			cells: []cell{
				{nonTerminal: "ElseOpt", terminal: "else", rhs: []string{"else", "Stmt"}},
				{nonTerminal: "ElseOpt", terminal: "$", rhs: []string{}},
			},
			conflicts: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := buildGrammar(t, tt.def)
			a, err := Generate(gram)
			if err != nil {
				t.Fatal(err)
			}

			genSym := newTestSymbolGenerator(t, gram.symbolTable)
			genProd := newTestProductionGenerator(t, genSym)

			for _, c := range tt.cells {
				prod, ok := a.Lookup(genSym(c.nonTerminal), genSym(c.terminal))
				if !ok {
					t.Fatalf("a cell is empty; non-terminal: %v, terminal: %v", c.nonTerminal, c.terminal)
				}
				expected := genProd(c.nonTerminal, c.rhs...)
				actual, ok := gram.productionSet.findByNum(productionNum(prod.Num))
				if !ok {
					t.Fatalf("a production was not found: %v", prod.Num)
				}
				if !actual.equals(expected) {
					t.Fatalf("unexpected production; non-terminal: %v, terminal: %v, want: %v, got: %v", c.nonTerminal, c.terminal, c.rhs, a.ProductionText(prod))
				}
			}
			for _, c := range tt.empty {
				if prod, ok := a.Lookup(genSym(c.nonTerminal), genSym(c.terminal)); ok {
					t.Fatalf("a cell must be empty; non-terminal: %v, terminal: %v, got: %v", c.nonTerminal, c.terminal, a.ProductionText(prod))
				}
			}
			if len(a.Conflicts()) != tt.conflicts {
				t.Fatalf("unexpected conflict count; want: %v, got: %v", tt.conflicts, len(a.Conflicts()))
			}
		})
	}
}

func TestConflictRecordsBothProductions(t *testing.T) {
	gram := buildGrammar(t, ifDefinition())
	a, err := Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	genSym := newTestSymbolGenerator(t, gram.symbolTable)

	cs := a.Conflicts()
	if len(cs) != 1 {
		t.Fatalf("unexpected conflict count; want: 1, got: %v", len(cs))
	}
	c := cs[0]
	if c.NonTerminal != genSym("ElseOpt") || c.Terminal != genSym("else") {
		t.Fatalf("unexpected conflict cell; got: %v, %v", a.Text(c.NonTerminal), a.Text(c.Terminal))
	}
	if !c.Existing.IsEmpty() {
		t.Fatalf("the existing production must be the empty one; got: %v", a.ProductionText(c.Existing))
	}
	if got := a.ProductionText(c.Rejected); got != "ElseOpt → else Stmt" {
		t.Fatalf("unexpected rejected production; got: %v", got)
	}
}

func TestLookupRejectsInvalidSymbols(t *testing.T) {
	gram := buildGrammar(t, exprDefinition())
	a, err := Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	genSym := newTestSymbolGenerator(t, gram.symbolTable)

	if _, ok := a.Lookup(genSym("id"), genSym("id")); ok {
		t.Fatal("a terminal row must not have entries")
	}
	if _, ok := a.Lookup(genSym("Expr"), genSym("Term")); ok {
		t.Fatal("a non-terminal column must not have entries")
	}
}
