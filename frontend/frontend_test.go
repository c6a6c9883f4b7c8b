package frontend

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/nihei9/jpred/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFrontend_Analyze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jpred.frontend")
	defer teardown()

	tests := []struct {
		caption        string
		src            string
		status         Status
		lexicalErrors  int
		syntaxErrors   int
		semanticErrors int
	}{
		{
			caption: "a well-formed program",
			src:     `class A { int x; int m(int y) { return y; } }`,
			status:  StatusOK,
		},
		{
			caption:        "an illegal character does not stop the later stages",
			src:            `class A { int x; int x; # }`,
			status:         StatusLexerError,
			lexicalErrors:  1,
			semanticErrors: 1,
		},
		{
			caption:      "a syntax error",
			src:          `class A { int x int y; }`,
			status:       StatusParserError,
			syntaxErrors: 1,
		},
		{
			caption:        "a duplicate declaration",
			src:            `class A { void m() { int a; char a; } }`,
			status:         StatusSemanticError,
			semanticErrors: 1,
		},
	}
	for _, backend := range []string{lexer.BackendMaleeni, lexer.BackendLexmachine} {
		f, err := New(LexerBackend(backend))
		if err != nil {
			t.Fatal(err)
		}
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%v: %v", backend, tt.caption), func(t *testing.T) {
				res, err := f.Analyze(tt.src)
				if err != nil {
					t.Fatal(err)
				}
				if res.Status != tt.status {
					t.Errorf("unexpected status; want: %v, got: %v", tt.status, res.Status)
				}
				if len(res.LexicalErrors) != tt.lexicalErrors {
					t.Errorf("unexpected lexical errors; want: %v, got: %v", tt.lexicalErrors, res.LexicalErrors)
				}
				if len(res.SyntaxErrors) != tt.syntaxErrors {
					t.Errorf("unexpected syntax errors; want: %v, got: %v", tt.syntaxErrors, res.SyntaxErrors)
				}
				if len(res.SemanticErrors) != tt.semanticErrors {
					t.Errorf("unexpected semantic errors; want: %v, got: %v", tt.semanticErrors, res.SemanticErrors)
				}
				if res.Tree == nil || res.Tree.Root == nil {
					t.Fatal("a tree must always be returned")
				}
				if _, ok := res.Symbols.Class("A"); !ok {
					t.Errorf("class A must be recorded")
				}
			})
		}
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(LexerBackend("unknown"))
	if err == nil {
		t.Fatal("an unknown backend must be rejected")
	}
}

type skipCounter struct {
	skipped []string
}

func (c *skipCounter) Open(nonTerm symbol.Symbol) {}
func (c *skipCounter) Close(nonTerm symbol.Symbol) {}
func (c *skipCounter) Match(term symbol.Symbol, tok *lexer.Token) {}
func (c *skipCounter) Epsilon() {}
func (c *skipCounter) Miss(term symbol.Symbol, cause *lexer.Token) {}
func (c *skipCounter) Skip(tok *lexer.Token) { c.skipped = append(c.skipped, tok.Text) }

func TestFrontend_SemanticActions(t *testing.T) {
	var counters []*skipCounter
	f, err := New(SemanticActions(func() driver.SemanticActionSet {
		c := &skipCounter{}
		counters = append(counters, c)
		return c
	}))
	if err != nil {
		t.Fatal(err)
	}

	for _, src := range []string{`class A { }`, `class A { } }`} {
		_, err := f.Analyze(src)
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(counters) != 2 {
		t.Fatalf("each run needs its own action set; want: 2, got: %v", len(counters))
	}
	if len(counters[0].skipped) != 0 {
		t.Errorf("unexpected skips: %v", counters[0].skipped)
	}
	if strings.Join(counters[1].skipped, " ") != "}" {
		t.Errorf("unexpected skips; want: [}], got: %v", counters[1].skipped)
	}
}

func TestFrontend_ConcurrentAnalyze(t *testing.T) {
	f, err := New()
	if err != nil {
		t.Fatal(err)
	}

	srcs := []string{
		`class A { int x; int m(int y) { return y; } }`,
		`class B { int x; String x; }`,
		`class C { void m( { } }`,
		`class D { void m() { if (a) if (b) c(); else d(); } }`,
	}
	want := make([]*Result, len(srcs))
	for i, src := range srcs {
		want[i], err = f.Analyze(src)
		if err != nil {
			t.Fatal(err)
		}
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(srcs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, src := range srcs {
				res, err := f.Analyze(src)
				if err != nil {
					errs <- err
					return
				}
				if res.Status != want[i].Status || len(res.SyntaxErrors) != len(want[i].SyntaxErrors) || len(res.SemanticErrors) != len(want[i].SemanticErrors) {
					errs <- fmt.Errorf("a concurrent run diverged on source #%v", i)
					return
				}
				if treeText(res.Tree) != treeText(want[i].Tree) {
					errs <- fmt.Errorf("a concurrent run built a different tree for source #%v", i)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func treeText(tree *driver.Tree) string {
	var b strings.Builder
	driver.PrintTree(&b, tree)
	return b.String()
}
