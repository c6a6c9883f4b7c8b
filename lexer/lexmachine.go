package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type lexmachineLexer struct {
	lexer *lexmachine.Lexer
	cats  []string
}

func newLexmachineLexer(voc *Vocabulary) (*lexmachineLexer, error) {
	l := &lexmachineLexer{
		lexer: lexmachine.NewLexer(),
	}

	// lexmachine prefers the pattern added first when two patterns match the same
	// length, so keywords must precede identifiers.
	for _, kw := range voc.Keywords {
		l.lexer.Add([]byte(kw), l.makeToken(kw))
	}
	for _, sym := range voc.Symbols {
		r := "\\" + strings.Join(strings.Split(sym, ""), "\\")
		l.lexer.Add([]byte(r), l.makeToken(sym))
	}
	l.lexer.Add([]byte(`[A-Za-z_][0-9A-Za-z_]*`), l.makeToken(CategoryID))
	l.lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), l.makeToken(CategoryNumber))
	l.lexer.Add([]byte(`"(\\[^\n]|[^"\\\n])*"`), l.makeToken(CategoryString))
	l.lexer.Add([]byte(`'(\\[^\n]|[^'\\\n])'`), l.makeToken(CategoryChar))
	l.lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	l.lexer.Add([]byte(`//[^\n]*`), skip)
	l.lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), skip)

	if err := l.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, fmt.Errorf("cannot compile the lexical specification: %w", err)
	}
	tracer().Debugf("lexmachine: %v token types compiled", len(l.cats))

	return l, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken registers `cat` and returns an action producing tokens of that category.
// The token type is an index into cats.
func (l *lexmachineLexer) makeToken(cat string) lexmachine.Action {
	id := len(l.cats)
	l.cats = append(l.cats, cat)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func (l *lexmachineLexer) Tokenize(src string) ([]*Token, []*LexicalError, error) {
	s, err := l.lexer.Scanner([]byte(src))
	if err != nil {
		return nil, nil, err
	}

	var toks []*Token
	var errs []*LexicalError
	for tok, err, eos := s.Next(); !eos; tok, err, eos = s.Next() {
		if err != nil {
			ui, ok := err.(*machines.UnconsumedInput)
			if !ok {
				return nil, nil, err
			}
			// Only the first character is reported; scanning resumes right after it.
			r, size := utf8.DecodeRune(ui.Text[ui.StartTC:])
			e := &LexicalError{
				Text: string(r),
				Row:  ui.StartLine,
				Col:  ui.StartColumn,
			}
			tracer().Debugf("%v", e)
			errs = append(errs, e)
			s.TC = ui.StartTC + size
			continue
		}

		t := tok.(*lexmachine.Token)
		toks = append(toks, &Token{
			Kind: l.cats[t.Type],
			Text: string(t.Lexeme),
			Row:  t.StartLine,
			Col:  t.StartColumn,
		})
	}
	toks = append(toks, eofToken(src))

	return toks, errs, nil
}
