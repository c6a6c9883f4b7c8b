package driver

import (
	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/nihei9/jpred/lexer"
)

// SemanticActionSet receives the parser's decisions in input order. Open and Close
// calls are balanced, and every other call happens between the Open and Close of the
// non-terminal being derived.
type SemanticActionSet interface {
	// Open runs when the parser starts deriving `nonTerm`, the start symbol included.
	Open(nonTerm symbol.Symbol)

	// Close runs when the derivation of `nonTerm` ends, successfully or not.
	Close(nonTerm symbol.Symbol)

	// Match runs when the terminal `term` matches `tok`.
	Match(term symbol.Symbol, tok *lexer.Token)

	// Epsilon runs when the current non-terminal derives the empty string.
	Epsilon()

	// Miss runs when the parser gives up matching the terminal `term` and puts a
	// placeholder in its position. `cause` is the token found instead.
	Miss(term symbol.Symbol, cause *lexer.Token)

	// Skip runs for every token discarded while the parser synchronizes after an error.
	Skip(tok *lexer.Token)
}

var _ SemanticActionSet = &treeBuilder{}

// treeBuilder builds the parse tree from the parser's decisions.
type treeBuilder struct {
	root  *Node
	stack []*Node
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{}
}

func (b *treeBuilder) Open(nonTerm symbol.Symbol) {
	n := &Node{
		Kind:   NodeKindInterior,
		Symbol: nonTerm,
	}
	if len(b.stack) == 0 {
		b.root = n
	} else {
		b.appendChild(n)
	}
	b.stack = append(b.stack, n)
}

func (b *treeBuilder) Close(nonTerm symbol.Symbol) {
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *treeBuilder) Match(term symbol.Symbol, tok *lexer.Token) {
	b.appendChild(&Node{
		Kind:   NodeKindTerminal,
		Symbol: term,
		Token:  tok,
	})
}

func (b *treeBuilder) Epsilon() {
	b.appendChild(&Node{
		Kind:   NodeKindEpsilon,
		Symbol: symbol.SymbolNil,
	})
}

func (b *treeBuilder) Miss(term symbol.Symbol, cause *lexer.Token) {
	b.appendChild(&Node{
		Kind:   NodeKindTerminal,
		Symbol: term,
	})
}

func (b *treeBuilder) Skip(tok *lexer.Token) {
}

func (b *treeBuilder) appendChild(n *Node) {
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, n)
}
