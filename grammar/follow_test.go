package grammar

import (
	"testing"

	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type follow struct {
	nonTerminal string
	symbols     []string
	eof         bool
}

func TestFollowSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jpred.grammar")
	defer teardown()

	tests := []struct {
		caption string
		def     *Definition
		follow  []follow
	}{
		{
			caption: "FOLLOW of the expression grammar",
			def:     exprDefinition(),
			follow: []follow{
				{nonTerminal: "Expr", symbols: []string{")"}, eof: true},
				{nonTerminal: "ExprRest", symbols: []string{")"}, eof: true},
				{nonTerminal: "Term", symbols: []string{"+", ")"}, eof: true},
				{nonTerminal: "TermRest", symbols: []string{"+", ")"}, eof: true},
				{nonTerminal: "Factor", symbols: []string{"+", "*", ")"}, eof: true},
			},
		},
		{
			caption: "FOLLOW propagates through nullable suffixes",
			def: &Definition{
				Name:      "test",
				Start:     "S",
				Terminals: []string{"a", "b", "c"},
				Rules: []*Rule{
					{LHS: "S", Alternatives: [][]string{{"A", "B", "c"}, {"B", "a"}}},
					{LHS: "A", Alternatives: [][]string{{"a"}, {}}},
					{LHS: "B", Alternatives: [][]string{{"b"}, {Epsilon}}},
				},
			},
			follow: []follow{
				{nonTerminal: "S", symbols: []string{}, eof: true},
				{nonTerminal: "A", symbols: []string{"b", "c"}},
				{nonTerminal: "B", symbols: []string{"a", "c"}},
			},
		},
		{
			caption: "the end-marker reaches a non-terminal at the end of the start rule",
			def:     ifDefinition(),
			follow: []follow{
				{nonTerminal: "Stmt", symbols: []string{"else"}, eof: true},
				{nonTerminal: "ElseOpt", symbols: []string{"else"}, eof: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := buildGrammar(t, tt.def)
			fst, err := genFirstSet(gram.productionSet)
			if err != nil {
				t.Fatal(err)
			}
			flw, err := genFollowSet(gram.productionSet, fst, gram.startSymbol)
			if err != nil {
				t.Fatal(err)
			}

			genSym := newTestSymbolGenerator(t, gram.symbolTable)

			for _, ttFollow := range tt.follow {
				sym := genSym(ttFollow.nonTerminal)
				actualFollow, err := flw.find(sym)
				if err != nil {
					t.Fatalf("failed to get a FOLLOW entry; non-terminal: %v, error: %v", ttFollow.nonTerminal, err)
				}

				expectedFollow, err := genExpectedFollowEntry(ttFollow.symbols, ttFollow.eof, genSym)
				if err != nil {
					t.Fatal(err)
				}

				testFollow(t, actualFollow, expectedFollow)
			}
		})
	}
}

func TestFollowEntrySorted(t *testing.T) {
	gram := buildGrammar(t, exprDefinition())
	fst, err := genFirstSet(gram.productionSet)
	if err != nil {
		t.Fatal(err)
	}
	flw, err := genFollowSet(gram.productionSet, fst, gram.startSymbol)
	if err != nil {
		t.Fatal(err)
	}
	genSym := newTestSymbolGenerator(t, gram.symbolTable)

	e, err := flw.find(genSym("Factor"))
	if err != nil {
		t.Fatal(err)
	}
	want := []symbol.Symbol{symbol.SymbolEOF, genSym("+"), genSym("*"), genSym(")")}
	got := e.sorted()
	if len(got) != len(want) {
		t.Fatalf("unexpected members; want: %v, got: %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order; want: %v, got: %v", want, got)
		}
	}
}

func genExpectedFollowEntry(symbols []string, eof bool, genSym testSymbolGenerator) (*followEntry, error) {
	entry := newFollowEntry()
	if eof {
		entry.addEOF()
	}
	for _, sym := range symbols {
		entry.add(genSym(sym))
	}

	return entry, nil
}

func testFollow(t *testing.T, actual, expected *followEntry) {
	t.Helper()

	if actual.eof != expected.eof {
		t.Errorf("eof is mismatched; want: %v, got: %v", expected.eof, actual.eof)
	}

	if len(actual.symbols) != len(expected.symbols) {
		t.Fatalf("unexpected symbol count of a FOLLOW entry; want: %v, got: %v", expected.symbols, actual.symbols)
	}

	for eSym := range expected.symbols {
		if _, ok := actual.symbols[eSym]; !ok {
			t.Fatalf("invalid FOLLOW entry; want: %v, got: %v", expected.symbols, actual.symbols)
		}
	}
}
