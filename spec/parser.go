package spec

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	verr "github.com/nihei9/jpred/error"
	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/lexer"
)

const (
	tokenKindColon     = ":"
	tokenKindOr        = "|"
	tokenKindSemicolon = ";"
	tokenKindDirective = "#"
	tokenKindEpsilon   = grammar.Epsilon
)

const (
	directiveName      = "name"
	directiveStart     = "start"
	directiveTerminals = "terminals"
	directiveResolve   = "resolve"
)

var vocabulary = &lexer.Vocabulary{
	Symbols: []string{
		tokenKindColon,
		tokenKindOr,
		tokenKindSemicolon,
		tokenKindDirective,
		tokenKindEpsilon,
	},
}

var (
	specLexOnce sync.Once
	specLex     lexer.Lexer
	specLexErr  error
)

func specLexer() (lexer.Lexer, error) {
	specLexOnce.Do(func() {
		specLex, specLexErr = lexer.New(lexer.BackendMaleeni, vocabulary)
	})
	return specLex, specLexErr
}

// Parse reads a grammar definition written in the notation. A malformed source yields a
// *error.SpecError carrying the position of the offending token. The definition itself
// is not validated; GrammarBuilder does that.
func Parse(src io.Reader, srcName string) (*grammar.Definition, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	lex, err := specLexer()
	if err != nil {
		return nil, err
	}
	toks, lexErrs, err := lex.Tokenize(string(b))
	if err != nil {
		return nil, err
	}
	if len(lexErrs) > 0 {
		return nil, &verr.SpecError{
			Cause:      synErrInvalidToken,
			Detail:     lexErrs[0].Text,
			SourceName: srcName,
			Row:        lexErrs[0].Row,
			Col:        lexErrs[0].Col,
		}
	}

	p := &parser{
		toks:       toks,
		srcName:    srcName,
		directives: map[string]struct{}{},
		terms:      map[string]struct{}{},
	}
	def, err := p.parse()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("grammar %v read: %v rules, %v terminals", def.Name, len(def.Rules), len(def.Terminals))
	return def, nil
}

type parser struct {
	toks       []*lexer.Token
	pos        int
	lastTok    *lexer.Token
	srcName    string
	def        *grammar.Definition
	directives map[string]struct{}
	terms      map[string]struct{}
}

func (p *parser) parse() (def *grammar.Definition, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			specErr, ok := err.(*verr.SpecError)
			if !ok {
				panic(err)
			}
			retErr = specErr
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *grammar.Definition {
	p.def = &grammar.Definition{}
	for !p.consume(lexer.CategoryEOF) {
		if p.consume(tokenKindDirective) {
			p.parseDirective()
			continue
		}
		p.def.Rules = append(p.def.Rules, p.parseProduction())
	}
	if len(p.def.Rules) == 0 {
		p.raiseSyntaxError(synErrNoProduction)
	}
	if p.def.Start == "" {
		p.def.Start = p.def.Rules[0].LHS
	}
	return p.def
}

func (p *parser) parseProduction() *grammar.Rule {
	if !p.consume(lexer.CategoryID) {
		p.raiseSyntaxError(synErrNoProductionName)
	}
	lhs := p.lastTok.Text
	if !p.consume(tokenKindColon) {
		p.raiseSyntaxError(synErrNoColon)
	}
	alts := [][]string{p.parseAlternative()}
	for p.consume(tokenKindOr) {
		alts = append(alts, p.parseAlternative())
	}
	if !p.consume(tokenKindSemicolon) {
		p.raiseSyntaxError(synErrNoSemicolon)
	}
	return &grammar.Rule{
		LHS:          lhs,
		Alternatives: alts,
	}
}

func (p *parser) parseAlternative() []string {
	elems := []string{}
	for {
		elem, ok := p.parseElement()
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	return elems
}

func (p *parser) parseElement() (string, bool) {
	switch {
	case p.consume(lexer.CategoryID):
		return p.lastTok.Text, true
	case p.consume(tokenKindEpsilon):
		return grammar.Epsilon, true
	}
	return p.parseTerminal()
}

// parseTerminal consumes a quoted terminal and registers it.
func (p *parser) parseTerminal() (string, bool) {
	if !p.consume(lexer.CategoryString) && !p.consume(lexer.CategoryChar) {
		return "", false
	}
	tok := p.lastTok
	text, err := strconv.Unquote(tok.Text)
	if err != nil {
		p.raiseSyntaxErrorAt(tok, synErrInvalidEscSeq, tok.Text)
	}
	if text == "" {
		p.raiseSyntaxErrorAt(tok, synErrEmptyTerminal, "")
	}
	p.addTerminal(text)
	return text, true
}

func (p *parser) addTerminal(text string) {
	if _, ok := p.terms[text]; ok {
		return
	}
	p.terms[text] = struct{}{}
	p.def.Terminals = append(p.def.Terminals, text)
}

func (p *parser) parseDirective() {
	if !p.consume(lexer.CategoryID) {
		p.raiseSyntaxError(synErrNoDirectiveName)
	}
	nameTok := p.lastTok

	switch nameTok.Text {
	case directiveName, directiveStart:
		if _, ok := p.directives[nameTok.Text]; ok {
			p.raiseSyntaxErrorAt(nameTok, synErrDuplicateDirective, nameTok.Text)
		}
		p.directives[nameTok.Text] = struct{}{}
		if !p.consume(lexer.CategoryID) {
			p.raiseSyntaxErrorAt(nameTok, synErrDirectiveNoParam, nameTok.Text)
		}
		param := p.lastTok.Text
		if nameTok.Text == directiveName {
			p.def.Name = param
		} else {
			p.def.Start = param
		}
		if p.peek().Kind != tokenKindSemicolon {
			p.raiseSyntaxError(synErrDirectiveTooMany)
		}
	case directiveTerminals:
		for {
			if p.consume(lexer.CategoryID) {
				p.addTerminal(p.lastTok.Text)
				continue
			}
			if _, ok := p.parseTerminal(); !ok {
				break
			}
		}
	case directiveResolve:
		p.def.Resolutions = append(p.def.Resolutions, p.parseResolution(nameTok))
	default:
		p.raiseSyntaxErrorAt(nameTok, synErrUnknownDirective, nameTok.Text)
	}

	if !p.consume(tokenKindSemicolon) {
		p.raiseSyntaxError(synErrNoSemicolon)
	}
}

func (p *parser) parseResolution(nameTok *lexer.Token) *grammar.Resolution {
	if !p.consume(lexer.CategoryID) {
		p.raiseSyntaxErrorAt(nameTok, synErrDirectiveNoParam, nameTok.Text)
	}
	nonTerm := p.lastTok.Text

	var term string
	if p.consume(lexer.CategoryID) {
		term = p.lastTok.Text
	} else {
		t, ok := p.parseTerminal()
		if !ok {
			p.raiseSyntaxError(synErrResolveNoTerminal)
		}
		term = t
	}

	if !p.consume(tokenKindColon) {
		p.raiseSyntaxError(synErrNoColon)
	}
	return &grammar.Resolution{
		NonTerminal: nonTerm,
		Terminal:    term,
		Alternative: p.parseAlternative(),
	}
}

func (p *parser) peek() *lexer.Token {
	return p.toks[p.pos]
}

// consume advances past the next token when its kind is `expected`. The end-marker is
// never advanced past, so it can be consumed any number of times.
func (p *parser) consume(expected string) bool {
	tok := p.peek()
	if tok.Kind != expected {
		return false
	}
	p.lastTok = tok
	if !tok.EOF() {
		p.pos++
	}
	return true
}

// raiseSyntaxError reports `synErr` at the next token.
func (p *parser) raiseSyntaxError(synErr *SyntaxError) {
	tok := p.peek()
	p.raiseSyntaxErrorAt(tok, synErr, fmt.Sprintf("found '%v'", tok.Text))
}

func (p *parser) raiseSyntaxErrorAt(tok *lexer.Token, synErr *SyntaxError, detail string) {
	panic(&verr.SpecError{
		Cause:      synErr,
		Detail:     detail,
		SourceName: p.srcName,
		Row:        tok.Row,
		Col:        tok.Col,
	})
}
