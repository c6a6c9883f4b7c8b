package lexer

import (
	"fmt"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

const (
	kindWhiteSpace   = "white_space"
	kindLineComment  = "line_comment"
	kindBlockComment = "block_comment"
	kindID           = "identifier"
	kindNumber       = "number"
	kindString       = "string_literal"
	kindChar         = "char_literal"
)

// Patterns shared by the literal categories. Keywords and symbols are escaped and
// matched literally.
const (
	patWhiteSpace   = `[\u{0009}\u{000A}\u{000D}\u{0020}]+`
	patLineComment  = `//[^\u{000A}]*`
	patBlockComment = `/\*([^*]|\*+[^*/])*\*+/`
	patID           = `[A-Za-z_][0-9A-Za-z_]*`
	patNumber       = `[0-9]+(\.[0-9]+)?`
	patString       = `"(\\[^\u{000A}]|[^"\\\u{000A}])*"`
	patChar         = `'(\\[^\u{000A}]|[^'\\\u{000A}])'`
)

type maleeniLexer struct {
	clspec   *mlspec.CompiledLexSpec
	kind2Cat map[string]string
	skip     map[string]struct{}
}

func newMaleeniLexer(voc *Vocabulary) (*maleeniLexer, error) {
	kind2Cat := map[string]string{}
	var entries []*mlspec.LexEntry

	// maleeni prefers the entry defined first when two patterns match the same length,
	// so keywords must precede identifiers.
	for i, kw := range voc.Keywords {
		kind := fmt.Sprintf("kw_%v", i+1)
		kind2Cat[kind] = kw
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kind),
			Pattern: mlspec.LexPattern(mlspec.EscapePattern(kw)),
		})
	}
	for i, sym := range voc.Symbols {
		kind := fmt.Sprintf("sym_%v", i+1)
		kind2Cat[kind] = sym
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kind),
			Pattern: mlspec.LexPattern(mlspec.EscapePattern(sym)),
		})
	}
	for _, e := range []struct {
		kind string
		pat  string
		cat  string
	}{
		{kind: kindID, pat: patID, cat: CategoryID},
		{kind: kindNumber, pat: patNumber, cat: CategoryNumber},
		{kind: kindString, pat: patString, cat: CategoryString},
		{kind: kindChar, pat: patChar, cat: CategoryChar},
		{kind: kindWhiteSpace, pat: patWhiteSpace},
		{kind: kindLineComment, pat: patLineComment},
		{kind: kindBlockComment, pat: patBlockComment},
	} {
		if e.cat != "" {
			kind2Cat[e.kind] = e.cat
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(e.kind),
			Pattern: mlspec.LexPattern(e.pat),
		})
	}

	lspec := &mlspec.LexSpec{
		Name:    "jpred",
		Entries: entries,
	}
	clspec, err, cErrs := mlcompiler.Compile(lspec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cerr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cerr)
			}
			return nil, fmt.Errorf("cannot compile the lexical specification: %v", b.String())
		}
		return nil, fmt.Errorf("cannot compile the lexical specification: %w", err)
	}
	tracer().Debugf("maleeni: %v lexical kinds compiled", len(clspec.KindNames)-1)

	return &maleeniLexer{
		clspec:   clspec,
		kind2Cat: kind2Cat,
		skip: map[string]struct{}{
			kindWhiteSpace:   {},
			kindLineComment:  {},
			kindBlockComment: {},
		},
	}, nil
}

func writeCompileError(b *strings.Builder, cErr *mlcompiler.CompileError) {
	if cErr.Fragment {
		fmt.Fprintf(b, "fragment ")
	}
	fmt.Fprintf(b, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(b, ": %v", cErr.Detail)
	}
}

func (l *maleeniLexer) Tokenize(src string) ([]*Token, []*LexicalError, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(l.clspec), strings.NewReader(src))
	if err != nil {
		return nil, nil, err
	}

	var toks []*Token
	var errs []*LexicalError
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, nil, err
		}
		if tok.EOF {
			break
		}
		if tok.Invalid {
			lexErrs := illegalRunes(string(tok.Lexeme), tok.Row+1, tok.Col+1)
			for _, e := range lexErrs {
				tracer().Debugf("%v", e)
			}
			errs = append(errs, lexErrs...)
			continue
		}

		kind := l.clspec.KindNames[tok.KindID].String()
		if _, ok := l.skip[kind]; ok {
			continue
		}
		cat, ok := l.kind2Cat[kind]
		if !ok {
			return nil, nil, fmt.Errorf("a lexical kind has no category: %v", kind)
		}
		toks = append(toks, &Token{
			Kind: cat,
			Text: string(tok.Lexeme),
			Row:  tok.Row + 1,
			Col:  tok.Col + 1,
		})
	}
	toks = append(toks, eofToken(src))

	return toks, errs, nil
}
