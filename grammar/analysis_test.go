package grammar

import (
	"reflect"
	"testing"

	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGenerateIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jpred.grammar")
	defer teardown()

	for _, def := range []*Definition{exprDefinition(), ifDefinition()} {
		t.Run(def.Name, func(t *testing.T) {
			a1, err := Generate(buildGrammar(t, def))
			if err != nil {
				t.Fatal(err)
			}
			a2, err := Generate(buildGrammar(t, def))
			if err != nil {
				t.Fatal(err)
			}

			r1, err := a1.Report()
			if err != nil {
				t.Fatal(err)
			}
			r2, err := a2.Report()
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(r1, r2) {
				t.Fatalf("reports are different\n1st: %+v\n2nd: %+v", r1, r2)
			}

			f1, err := a1.Fingerprint()
			if err != nil {
				t.Fatal(err)
			}
			f2, err := a2.Fingerprint()
			if err != nil {
				t.Fatal(err)
			}
			if f1 == "" || f1 != f2 {
				t.Fatalf("fingerprints are different; 1st: %v, 2nd: %v", f1, f2)
			}
		})
	}
}

func TestFingerprintDiffersBetweenGrammars(t *testing.T) {
	a1, err := Generate(buildGrammar(t, exprDefinition()))
	if err != nil {
		t.Fatal(err)
	}
	a2, err := Generate(buildGrammar(t, ifDefinition()))
	if err != nil {
		t.Fatal(err)
	}
	f1, _ := a1.Fingerprint()
	f2, _ := a2.Fingerprint()
	if f1 == f2 {
		t.Fatalf("different grammars must have different fingerprints; got: %v", f1)
	}
}

func TestLLTableIsTotal(t *testing.T) {
	gram := buildGrammar(t, exprDefinition())
	a, err := Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Conflicts()) != 0 {
		t.Fatalf("an LL(1) grammar must not have conflicts; got: %v", len(a.Conflicts()))
	}

	for _, nt := range gram.SymbolTable().NonTerminalSymbols() {
		fst, nullable, err := a.First(nt)
		if err != nil {
			t.Fatal(err)
		}
		expected := fst
		if nullable {
			flw, err := a.Follow(nt)
			if err != nil {
				t.Fatal(err)
			}
			expected = append(expected, flw...)
		}
		for _, term := range expected {
			if _, ok := a.Lookup(nt, term); !ok {
				t.Errorf("a cell implied by FIRST/FOLLOW is empty; non-terminal: %v, terminal: %v", a.Text(nt), a.Text(term))
			}
		}
	}
}

func TestAnalysisReport(t *testing.T) {
	gram := buildGrammar(t, exprDefinition())
	a, err := Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := a.Report()
	if err != nil {
		t.Fatal(err)
	}

	if rep.Name != "expr" {
		t.Fatalf("unexpected name; got: %v", rep.Name)
	}
	expectedFirst := []*SetReport{
		{NonTerminal: "Expr", Symbols: []string{"id", "("}},
		{NonTerminal: "ExprRest", Symbols: []string{"+", Epsilon}},
		{NonTerminal: "Term", Symbols: []string{"id", "("}},
		{NonTerminal: "TermRest", Symbols: []string{"*", Epsilon}},
		{NonTerminal: "Factor", Symbols: []string{"id", "("}},
	}
	if !reflect.DeepEqual(rep.First, expectedFirst) {
		t.Fatalf("unexpected FIRST")
	}
	expectedFollow := []*SetReport{
		{NonTerminal: "Expr", Symbols: []string{symbol.NameEOF, ")"}},
		{NonTerminal: "ExprRest", Symbols: []string{symbol.NameEOF, ")"}},
		{NonTerminal: "Term", Symbols: []string{symbol.NameEOF, "+", ")"}},
		{NonTerminal: "TermRest", Symbols: []string{symbol.NameEOF, "+", ")"}},
		{NonTerminal: "Factor", Symbols: []string{symbol.NameEOF, "+", "*", ")"}},
	}
	if !reflect.DeepEqual(rep.Follow, expectedFollow) {
		t.Fatalf("unexpected FOLLOW")
	}
	if len(rep.Table) != 13 {
		t.Fatalf("unexpected cell count; want: 13, got: %v", len(rep.Table))
	}
	if c := rep.Table[0]; c.NonTerminal != "Expr" || c.Terminal != "id" || c.Production != "Expr → Term ExprRest" {
		t.Fatalf("unexpected first cell: %+v", c)
	}
	if len(rep.Conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", rep.Conflicts)
	}
}

func TestFollows(t *testing.T) {
	gram := buildGrammar(t, ifDefinition())
	a, err := Generate(gram)
	if err != nil {
		t.Fatal(err)
	}
	genSym := newTestSymbolGenerator(t, gram.symbolTable)

	if !a.Follows(genSym("ElseOpt"), symbol.SymbolEOF) {
		t.Fatal("the end-marker must follow ElseOpt")
	}
	if !a.Follows(genSym("Stmt"), genSym("else")) {
		t.Fatal("else must follow Stmt")
	}
	if a.Follows(genSym("Stmt"), genSym("if")) {
		t.Fatal("if must not follow Stmt")
	}
}
