package driver

import (
	"fmt"

	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/nihei9/jpred/lexer"
)

// SyntaxError is either a token no table cell accepts or a terminal the input lacks.
// NonTerminal names the non-terminal being derived when the error occurred.
type SyntaxError struct {
	Row               int
	Col               int
	Message           string
	Token             *lexer.Token
	NonTerminal       string
	ExpectedTerminals []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v:%v: %v", e.Row, e.Col, e.Message)
}

type ParserOption func(p *Parser) error

// SemanticAction registers an action set notified of every parsing decision in addition
// to the one building the tree.
func SemanticAction(act SemanticActionSet) ParserOption {
	return func(p *Parser) error {
		if act == nil {
			return fmt.Errorf("semantic action set must be non-nil")
		}
		p.actions = append(p.actions, act)
		return nil
	}
}

// frame is the obligation to derive nonTerm. rhs is empty until a production is chosen.
type frame struct {
	nonTerm  symbol.Symbol
	rhs      []symbol.Symbol
	pos      int
	expanded bool
}

// Parser is a table-driven LL(1) parser. A parser consumes one token list; create a new
// parser for each input.
type Parser struct {
	analysis *grammar.Analysis
	toks     *tokenStream
	tree     *treeBuilder
	actions  []SemanticActionSet
	stack    []*frame
	synErrs  []*SyntaxError
	parsed   bool
}

func NewParser(a *grammar.Analysis, toks []*lexer.Token, opts ...ParserOption) (*Parser, error) {
	if a == nil {
		return nil, fmt.Errorf("an analysis is required")
	}

	tree := newTreeBuilder()
	p := &Parser{
		analysis: a,
		toks:     newTokenStream(toks, a.SymbolTable()),
		tree:     tree,
		actions:  []SemanticActionSet{tree},
	}

	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse derives the start symbol from the token list. Syntax errors do not stop the
// parser; they are collected and available through SyntaxErrors. Parse always leaves a
// tree, possibly with missing subtrees where the parser recovered.
func (p *Parser) Parse() error {
	if p.parsed {
		return fmt.Errorf("the parser has already consumed its input")
	}
	p.parsed = true

	p.open(p.analysis.StartSymbol())
	for len(p.stack) > 0 {
		f := p.stack[len(p.stack)-1]
		if !f.expanded && !p.expand(f) {
			p.close()
			continue
		}
		if f.pos >= len(f.rhs) {
			p.close()
			continue
		}

		sym := f.rhs[f.pos]
		f.pos++
		if sym.IsNonTerminal() {
			p.open(sym)
			continue
		}
		p.matchTerminal(f, sym)
	}

	// Tokens left after the start symbol has been derived cannot belong to the input.
	if p.toks.currentSymbol() != symbol.SymbolEOF {
		p.reportTrailing()
		for p.toks.currentSymbol() != symbol.SymbolEOF {
			p.skip()
		}
	}

	tracer().Debugf("parsed %v tokens with %v syntax errors", len(p.toks.toks), len(p.synErrs))

	return nil
}

func (p *Parser) Tree() *Tree {
	return NewTree(p.tree.root, p.analysis.SymbolTable())
}

func (p *Parser) SyntaxErrors() []*SyntaxError {
	return p.synErrs
}

// expand chooses a production for the frame on the top. It returns false when the frame
// has nothing more to derive: either the production is empty or no production applies.
func (p *Parser) expand(f *frame) bool {
	prod, ok := p.analysis.Lookup(f.nonTerm, p.toks.currentSymbol())
	if !ok {
		p.reportUnexpected(f.nonTerm)
		p.synchronize(f.nonTerm)
		return false
	}
	if prod.IsEmpty() {
		for _, act := range p.actions {
			act.Epsilon()
		}
		return false
	}
	f.rhs = prod.RHS
	f.expanded = true
	return true
}

// synchronize discards tokens until one can follow `nonTerm` or the input ends. The
// current token is checked before anything is discarded.
func (p *Parser) synchronize(nonTerm symbol.Symbol) {
	for {
		sym := p.toks.currentSymbol()
		if sym == symbol.SymbolEOF || p.analysis.Follows(nonTerm, sym) {
			return
		}
		p.skip()
	}
}

// matchTerminal matches `term` against the current token. On a mismatch the current token
// is discarded and the match is retried once; when that fails too, or the input has
// already ended, a placeholder takes the terminal's position.
func (p *Parser) matchTerminal(f *frame, term symbol.Symbol) {
	if p.toks.currentSymbol() == term {
		p.match(term)
		return
	}

	p.reportMissing(f.nonTerm, term)
	if p.toks.currentSymbol() == symbol.SymbolEOF {
		p.miss(term)
		return
	}

	p.skip()
	if p.toks.currentSymbol() == term {
		p.match(term)
		return
	}
	p.miss(term)
}

func (p *Parser) open(nonTerm symbol.Symbol) {
	p.stack = append(p.stack, &frame{
		nonTerm: nonTerm,
	})
	for _, act := range p.actions {
		act.Open(nonTerm)
	}
}

func (p *Parser) close() {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	for _, act := range p.actions {
		act.Close(f.nonTerm)
	}
}

func (p *Parser) match(term symbol.Symbol) {
	tok := p.toks.current()
	for _, act := range p.actions {
		act.Match(term, tok)
	}
	p.toks.advance()
}

func (p *Parser) miss(term symbol.Symbol) {
	tok := p.toks.current()
	for _, act := range p.actions {
		act.Miss(term, tok)
	}
}

func (p *Parser) skip() {
	tok := p.toks.current()
	tracer().Debugf("skip %v", tok)
	for _, act := range p.actions {
		act.Skip(tok)
	}
	p.toks.advance()
}

func (p *Parser) reportUnexpected(nonTerm symbol.Symbol) {
	tok := p.toks.current()
	name := p.analysis.Text(nonTerm)
	synErr := &SyntaxError{
		Row:               tok.Row,
		Col:               tok.Col,
		Message:           fmt.Sprintf("unexpected token '%v' while expecting %v", tok.Kind, name),
		Token:             tok,
		NonTerminal:       name,
		ExpectedTerminals: p.expectedTerminals(nonTerm),
	}
	tracer().Debugf("%v", synErr)
	p.synErrs = append(p.synErrs, synErr)
}

func (p *Parser) reportTrailing() {
	tok := p.toks.current()
	name := p.analysis.Text(p.analysis.StartSymbol())
	synErr := &SyntaxError{
		Row:               tok.Row,
		Col:               tok.Col,
		Message:           fmt.Sprintf("unexpected token '%v' after the end of %v", tok.Kind, name),
		Token:             tok,
		NonTerminal:       name,
		ExpectedTerminals: []string{symbol.NameEOF},
	}
	tracer().Debugf("%v", synErr)
	p.synErrs = append(p.synErrs, synErr)
}

func (p *Parser) reportMissing(nonTerm symbol.Symbol, term symbol.Symbol) {
	tok := p.toks.current()
	text := p.analysis.Text(term)
	synErr := &SyntaxError{
		Row:               tok.Row,
		Col:               tok.Col,
		Message:           fmt.Sprintf("missing '%v' before '%v'", text, tok.Text),
		Token:             tok,
		NonTerminal:       p.analysis.Text(nonTerm),
		ExpectedTerminals: []string{text},
	}
	tracer().Debugf("%v", synErr)
	p.synErrs = append(p.synErrs, synErr)
}

// expectedTerminals lists the terminals having a table cell in the row of `nonTerm`.
func (p *Parser) expectedTerminals(nonTerm symbol.Symbol) []string {
	var terms []string
	for _, term := range p.analysis.SymbolTable().TerminalSymbols() {
		if _, ok := p.analysis.Lookup(nonTerm, term); ok {
			terms = append(terms, p.analysis.Text(term))
		}
	}
	return terms
}
