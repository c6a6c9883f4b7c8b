package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token categories that do not spell their own text.
const (
	CategoryID     = "id"
	CategoryNumber = "number"
	CategoryString = "string_literal"
	CategoryChar   = "char_literal"
	CategoryEOF    = "$"
)

const (
	BackendMaleeni    = "maleeni"
	BackendLexmachine = "lexmachine"
)

// Token is an immutable lexeme. Kind is the category the grammar refers to: the keyword
// or operator itself, or one of the Category* constants. Row and Col are 1-based.
type Token struct {
	Kind string
	Text string
	Row  int
	Col  int
}

func (t *Token) String() string {
	return fmt.Sprintf("%v:%v: %v %q", t.Row, t.Col, t.Kind, t.Text)
}

func (t *Token) EOF() bool {
	return t.Kind == CategoryEOF
}

// LexicalError reports a character no token can start with.
type LexicalError struct {
	Text string
	Row  int
	Col  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%v:%v: illegal character %q", e.Row, e.Col, e.Text)
}

// Vocabulary lists the fixed categories of a language. Keywords are reserved words that
// would otherwise be identifiers; Symbols are operators and punctuation.
type Vocabulary struct {
	Keywords []string
	Symbols  []string
}

// Categories returns every category a lexer built from the vocabulary can produce, the
// end-marker excepted.
func (v *Vocabulary) Categories() []string {
	cats := make([]string, 0, len(v.Keywords)+len(v.Symbols)+4)
	cats = append(cats, v.Keywords...)
	cats = append(cats, v.Symbols...)
	cats = append(cats, CategoryID, CategoryNumber, CategoryString, CategoryChar)
	return cats
}

func (v *Vocabulary) validate() error {
	if len(v.Keywords) == 0 && len(v.Symbols) == 0 {
		return fmt.Errorf("a vocabulary needs at least one keyword or symbol")
	}
	seen := map[string]struct{}{}
	for _, cat := range v.Categories() {
		if cat == "" {
			return fmt.Errorf("a category must not be empty")
		}
		if _, ok := seen[cat]; ok {
			return fmt.Errorf("duplicate category: %v", cat)
		}
		seen[cat] = struct{}{}
	}
	return nil
}

// Lexer tokenizes a whole source at once. A Lexer holds no per-source state, so one value
// serves concurrent callers.
type Lexer interface {
	Tokenize(src string) ([]*Token, []*LexicalError, error)
}

// New builds a lexer for `voc` using the named backend. An empty backend name selects
// maleeni.
func New(backend string, voc *Vocabulary) (Lexer, error) {
	if voc == nil {
		return nil, fmt.Errorf("a vocabulary is required")
	}
	if err := voc.validate(); err != nil {
		return nil, err
	}

	switch backend {
	case "", BackendMaleeni:
		return newMaleeniLexer(voc)
	case BackendLexmachine:
		return newLexmachineLexer(voc)
	}
	return nil, fmt.Errorf("unknown lexer backend: %v (available: %v, %v)", backend, BackendMaleeni, BackendLexmachine)
}

// illegalRunes splits an unmatched span into one error per character. The span never
// contains a line break because white space always matches.
func illegalRunes(text string, row, col int) []*LexicalError {
	var errs []*LexicalError
	for _, r := range text {
		errs = append(errs, &LexicalError{
			Text: string(r),
			Row:  row,
			Col:  col,
		})
		col++
	}
	return errs
}

// eofToken places the end-marker right after the last character of `src`.
func eofToken(src string) *Token {
	row := strings.Count(src, "\n") + 1
	last := src
	if i := strings.LastIndexByte(src, '\n'); i >= 0 {
		last = src[i+1:]
	}
	return &Token{
		Kind: CategoryEOF,
		Text: CategoryEOF,
		Row:  row,
		Col:  utf8.RuneCountInString(last) + 1,
	}
}
