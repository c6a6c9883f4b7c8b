package lexer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testVocabulary() *Vocabulary {
	return &Vocabulary{
		Keywords: []string{"class", "int", "String", "if", "else", "return", "true"},
		Symbols:  []string{"==", "=", "<=", "<", "&&", "+", "++", "{", "}", "(", ")", ";", ".", ","},
	}
}

type tok struct {
	kind string
	text string
	row  int
	col  int
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jpred.lexer")
	defer teardown()

	tests := []struct {
		caption string
		src     string
		tokens  []tok
		errs    []*LexicalError
	}{
		{
			caption: "keywords, identifiers and symbols",
			src:     "class A { int x; }",
			tokens: []tok{
				{kind: "class", text: "class", row: 1, col: 1},
				{kind: CategoryID, text: "A", row: 1, col: 7},
				{kind: "{", text: "{", row: 1, col: 9},
				{kind: "int", text: "int", row: 1, col: 11},
				{kind: CategoryID, text: "x", row: 1, col: 15},
				{kind: ";", text: ";", row: 1, col: 16},
				{kind: "}", text: "}", row: 1, col: 18},
				{kind: CategoryEOF, text: CategoryEOF, row: 1, col: 19},
			},
		},
		{
			caption: "the longest match wins and keywords win ties",
			src:     "integer int == = <= ++ + Strings",
			tokens: []tok{
				{kind: CategoryID, text: "integer", row: 1, col: 1},
				{kind: "int", text: "int", row: 1, col: 9},
				{kind: "==", text: "==", row: 1, col: 13},
				{kind: "=", text: "=", row: 1, col: 16},
				{kind: "<=", text: "<=", row: 1, col: 18},
				{kind: "++", text: "++", row: 1, col: 21},
				{kind: "+", text: "+", row: 1, col: 24},
				{kind: CategoryID, text: "Strings", row: 1, col: 26},
				{kind: CategoryEOF, text: CategoryEOF, row: 1, col: 33},
			},
		},
		{
			caption: "literals",
			src:     `12 3.14 "a\"b" 'c' '\n' true`,
			tokens: []tok{
				{kind: CategoryNumber, text: "12", row: 1, col: 1},
				{kind: CategoryNumber, text: "3.14", row: 1, col: 4},
				{kind: CategoryString, text: `"a\"b"`, row: 1, col: 9},
				{kind: CategoryChar, text: `'c'`, row: 1, col: 16},
				{kind: CategoryChar, text: `'\n'`, row: 1, col: 20},
				{kind: "true", text: "true", row: 1, col: 25},
				{kind: CategoryEOF, text: CategoryEOF, row: 1, col: 29},
			},
		},
		{
			caption: "white spaces and comments are discarded",
			src:     "x // line comment\n  /* block\n comment */ y\n",
			tokens: []tok{
				{kind: CategoryID, text: "x", row: 1, col: 1},
				{kind: CategoryID, text: "y", row: 3, col: 13},
				{kind: CategoryEOF, text: CategoryEOF, row: 4, col: 1},
			},
		},
		{
			caption: "illegal characters are reported on the side",
			src:     "x @ y#",
			tokens: []tok{
				{kind: CategoryID, text: "x", row: 1, col: 1},
				{kind: CategoryID, text: "y", row: 1, col: 5},
				{kind: CategoryEOF, text: CategoryEOF, row: 1, col: 7},
			},
			errs: []*LexicalError{
				{Text: "@", Row: 1, Col: 3},
				{Text: "#", Row: 1, Col: 6},
			},
		},
		{
			caption: "an empty source yields only the end-marker",
			src:     "",
			tokens: []tok{
				{kind: CategoryEOF, text: CategoryEOF, row: 1, col: 1},
			},
		},
	}
	for _, backend := range []string{BackendMaleeni, BackendLexmachine} {
		lex, err := New(backend, testVocabulary())
		if err != nil {
			t.Fatalf("%v: %v", backend, err)
		}
		for _, tt := range tests {
			t.Run(backend+": "+tt.caption, func(t *testing.T) {
				toks, errs, err := lex.Tokenize(tt.src)
				if err != nil {
					t.Fatal(err)
				}
				if len(toks) != len(tt.tokens) {
					t.Fatalf("unexpected token count; want: %v, got: %v (%v)", len(tt.tokens), len(toks), toks)
				}
				for i, e := range tt.tokens {
					testToken(t, toks[i], e)
				}
				if len(errs) != len(tt.errs) {
					t.Fatalf("unexpected error count; want: %v, got: %v (%v)", len(tt.errs), len(errs), errs)
				}
				for i, e := range tt.errs {
					if *errs[i] != *e {
						t.Fatalf("unexpected error; want: %v, got: %v", e, errs[i])
					}
				}
			})
		}
	}
}

func testToken(t *testing.T, actual *Token, expected tok) {
	t.Helper()

	if actual.Kind != expected.kind || actual.Text != expected.text || actual.Row != expected.row || actual.Col != expected.col {
		t.Fatalf("unexpected token; want: %v:%v: %v %q, got: %v", expected.row, expected.col, expected.kind, expected.text, actual)
	}
}

func TestNew(t *testing.T) {
	_, err := New("unknown", testVocabulary())
	if err == nil {
		t.Fatal("an unknown backend must be rejected")
	}
	_, err = New(BackendMaleeni, nil)
	if err == nil {
		t.Fatal("a vocabulary is required")
	}
	_, err = New(BackendMaleeni, &Vocabulary{Keywords: []string{"if", "if"}})
	if err == nil {
		t.Fatal("duplicate categories must be rejected")
	}
	_, err = New(BackendLexmachine, &Vocabulary{Symbols: []string{"id"}})
	if err == nil {
		t.Fatal("a symbol must not collide with a literal category")
	}

	lex, err := New("", testVocabulary())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := lex.(*maleeniLexer); !ok {
		t.Fatalf("maleeni must be the default backend; got: %T", lex)
	}
}

func TestCategories(t *testing.T) {
	voc := &Vocabulary{
		Keywords: []string{"if"},
		Symbols:  []string{";"},
	}
	want := []string{"if", ";", CategoryID, CategoryNumber, CategoryString, CategoryChar}
	got := voc.Categories()
	if len(got) != len(want) {
		t.Fatalf("unexpected categories; want: %v, got: %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected categories; want: %v, got: %v", want, got)
		}
	}
}
