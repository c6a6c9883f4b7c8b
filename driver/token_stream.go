package driver

import (
	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/nihei9/jpred/lexer"
)

// tokenStream is a cursor over a finished token list. It never moves past the
// end-marker, which is appended when the list does not end with one.
type tokenStream struct {
	toks []*lexer.Token
	syms []symbol.Symbol
	pos  int
}

func newTokenStream(toks []*lexer.Token, symTab *symbol.SymbolTableReader) *tokenStream {
	if len(toks) == 0 || !toks[len(toks)-1].EOF() {
		eof := &lexer.Token{
			Kind: lexer.CategoryEOF,
			Text: lexer.CategoryEOF,
		}
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			eof.Row = last.Row
			eof.Col = last.Col + len(last.Text)
		}
		toks = append(append([]*lexer.Token{}, toks...), eof)
	}

	// A category the grammar does not know maps to the nil symbol, which no table cell
	// and no terminal accepts.
	syms := make([]symbol.Symbol, len(toks))
	for i, tok := range toks {
		if tok.EOF() {
			syms[i] = symbol.SymbolEOF
			continue
		}
		sym, ok := symTab.ToSymbol(tok.Kind)
		if !ok || !sym.IsTerminal() {
			syms[i] = symbol.SymbolNil
			continue
		}
		syms[i] = sym
	}

	return &tokenStream{
		toks: toks,
		syms: syms,
	}
}

func (s *tokenStream) current() *lexer.Token {
	return s.toks[s.pos]
}

func (s *tokenStream) currentSymbol() symbol.Symbol {
	return s.syms[s.pos]
}

func (s *tokenStream) eof() bool {
	return s.pos == len(s.toks)-1
}

func (s *tokenStream) advance() {
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
}
