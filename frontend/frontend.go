package frontend

import (
	"fmt"

	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/lang"
	"github.com/nihei9/jpred/lexer"
	"github.com/nihei9/jpred/semantic"
)

// Status names the first stage that reported an error.
type Status string

const (
	StatusOK            Status = "ok"
	StatusLexerError    Status = "lexer_error"
	StatusParserError   Status = "parser_error"
	StatusSemanticError Status = "semantic_error"
)

type Result struct {
	Status         Status
	Tokens         []*lexer.Token
	LexicalErrors  []*lexer.LexicalError
	Tree           *driver.Tree
	SyntaxErrors   []*driver.SyntaxError
	Symbols        *semantic.SymbolTable
	SemanticErrors []*semantic.SemanticError
}

type config struct {
	backend string
	actions []func() driver.SemanticActionSet
}

type Option func(c *config) error

// LexerBackend selects the lexer backend. See lexer.New for the names.
func LexerBackend(name string) Option {
	return func(c *config) error {
		c.backend = name
		return nil
	}
}

// SemanticActions adds action sets observing every parse. An action set holds the state
// of one parse, so `newAct` is called once per Analyze call.
func SemanticActions(newAct func() driver.SemanticActionSet) Option {
	return func(c *config) error {
		if newAct == nil {
			return fmt.Errorf("semantic action constructor must be non-nil")
		}
		c.actions = append(c.actions, newAct)
		return nil
	}
}

// Frontend holds what every run shares: the grammar analysis and the lexer. Neither
// changes after New returns, so Analyze may be called from any number of goroutines.
type Frontend struct {
	analysis *grammar.Analysis
	lexer    lexer.Lexer
	actions  []func() driver.SemanticActionSet
}

func New(opts ...Option) (*Frontend, error) {
	c := &config{}
	for _, opt := range opts {
		err := opt(c)
		if err != nil {
			return nil, err
		}
	}

	a, err := GenerateJava()
	if err != nil {
		return nil, err
	}

	lex, err := lexer.New(c.backend, lang.JavaVocabulary())
	if err != nil {
		return nil, err
	}

	return &Frontend{
		analysis: a,
		lexer:    lex,
		actions:  c.actions,
	}, nil
}

// GenerateJava builds and analyzes the grammar of the Java subset.
func GenerateJava() (*grammar.Analysis, error) {
	b := grammar.GrammarBuilder{
		Definition: lang.JavaDefinition(),
	}
	gram, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("the Java grammar is malformed: %w", err)
	}
	return grammar.Generate(gram)
}

func (f *Frontend) Analysis() *grammar.Analysis {
	return f.analysis
}

// Analyze runs the pipeline over `src`. The returned error reports a failure of the
// pipeline itself; errors in the source are in the result.
func (f *Frontend) Analyze(src string) (*Result, error) {
	toks, lexErrs, err := f.lexer.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize the source: %w", err)
	}

	var opts []driver.ParserOption
	for _, newAct := range f.actions {
		opts = append(opts, driver.SemanticAction(newAct()))
	}
	p, err := driver.NewParser(f.analysis, toks, opts...)
	if err != nil {
		return nil, err
	}
	err = p.Parse()
	if err != nil {
		return nil, err
	}

	tree := p.Tree()
	symTab, semErrs := semantic.Analyze(tree)

	res := &Result{
		Tokens:         toks,
		LexicalErrors:  lexErrs,
		Tree:           tree,
		SyntaxErrors:   p.SyntaxErrors(),
		Symbols:        symTab,
		SemanticErrors: semErrs,
	}
	switch {
	case len(res.LexicalErrors) > 0:
		res.Status = StatusLexerError
	case len(res.SyntaxErrors) > 0:
		res.Status = StatusParserError
	case len(res.SemanticErrors) > 0:
		res.Status = StatusSemanticError
	default:
		res.Status = StatusOK
	}

	tracer().Debugf("analyzed %v tokens: %v (%v lexical, %v syntax, %v semantic errors)",
		len(toks), res.Status, len(lexErrs), len(res.SyntaxErrors), len(semErrs))

	return res, nil
}
