package driver

import (
	"fmt"
	"io"

	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/grammar/symbol"
	"github.com/nihei9/jpred/lexer"
)

type NodeKind int

const (
	NodeKindInterior NodeKind = iota
	NodeKindTerminal
	NodeKindEpsilon
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindInterior:
		return "interior"
	case NodeKindTerminal:
		return "terminal"
	case NodeKindEpsilon:
		return "epsilon"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is a node of a parse tree. An interior node owns its children. A terminal leaf
// holds the token it matched, or no token when the parser inserted it to recover from a
// missing terminal. An epsilon leaf holds nothing and its symbol is nil.
type Node struct {
	Kind     NodeKind
	Symbol   symbol.Symbol
	Token    *lexer.Token
	Children []*Node
}

// IsPlaceholder reports whether `n` stands for a terminal that was missing in the input.
func (n *Node) IsPlaceholder() bool {
	return n.Kind == NodeKindTerminal && n.Token == nil
}

// Walk visits `n` and its descendants depth-first, children in production order. When
// `fn` returns false, the children of the node passed to it are not visited.
func Walk(n *Node, fn func(n *Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Tree is a parse tree together with the symbol table naming its nodes.
type Tree struct {
	Root *Node

	symTab *symbol.SymbolTableReader
}

func NewTree(root *Node, symTab *symbol.SymbolTableReader) *Tree {
	return &Tree{
		Root:   root,
		symTab: symTab,
	}
}

// Name returns the grammar symbol `n` is tagged with.
func (t *Tree) Name(n *Node) string {
	if n.Kind == NodeKindEpsilon {
		return grammar.Epsilon
	}
	text, ok := t.symTab.ToText(n.Symbol)
	if !ok {
		return fmt.Sprintf("<%v>", n.Symbol)
	}
	return text
}

func (t *Tree) symbols(names []string) map[symbol.Symbol]struct{} {
	syms := map[symbol.Symbol]struct{}{}
	for _, name := range names {
		sym, ok := t.symTab.ToSymbol(name)
		if !ok {
			continue
		}
		syms[sym] = struct{}{}
	}
	return syms
}

func matches(n *Node, syms map[symbol.Symbol]struct{}) bool {
	if n.Kind == NodeKindEpsilon {
		return false
	}
	_, ok := syms[n.Symbol]
	return ok
}

// Find returns the first proper descendant of `n`, in depth-first order, tagged with one
// of `names`.
func (t *Tree) Find(n *Node, names ...string) *Node {
	syms := t.symbols(names)
	var found *Node
	for _, c := range n.Children {
		Walk(c, func(d *Node) bool {
			if found != nil {
				return false
			}
			if matches(d, syms) {
				found = d
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// FindNearest returns the proper descendant of `n` tagged with one of `names` that is
// closest to `n`. Among descendants at the same depth the leftmost wins.
func (t *Tree) FindNearest(n *Node, names ...string) *Node {
	syms := t.symbols(names)
	queue := append([]*Node{}, n.Children...)
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		if matches(d, syms) {
			return d
		}
		queue = append(queue, d.Children...)
	}
	return nil
}

// FindAll returns the proper descendants of `n` tagged with one of `names` in depth-first
// order. The descendants of a found node are not searched.
func (t *Tree) FindAll(n *Node, names ...string) []*Node {
	syms := t.symbols(names)
	var found []*Node
	for _, c := range n.Children {
		Walk(c, func(d *Node) bool {
			if matches(d, syms) {
				found = append(found, d)
				return false
			}
			return true
		})
	}
	return found
}

// FirstLeaf returns the first terminal leaf under `n`, `n` itself included, that matched a
// token of the category `name`. Placeholders never match.
func (t *Tree) FirstLeaf(n *Node, name string) *Node {
	sym, ok := t.symTab.ToSymbol(name)
	if !ok {
		return nil
	}
	var found *Node
	Walk(n, func(d *Node) bool {
		if found != nil {
			return false
		}
		if d.Kind == NodeKindTerminal && d.Token != nil && d.Symbol == sym {
			found = d
			return false
		}
		return true
	})
	return found
}

func PrintTree(w io.Writer, t *Tree) {
	if t == nil {
		return
	}
	printTree(w, t, t.Root, "", "")
}

func printTree(w io.Writer, t *Tree, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	switch {
	case node.IsPlaceholder():
		fmt.Fprintf(w, "%v!%v\n", ruledLine, t.Name(node))
	case node.Kind == NodeKindTerminal:
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, t.Name(node), node.Token.Text)
	default:
		fmt.Fprintf(w, "%v%v\n", ruledLine, t.Name(node))
	}

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, t, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
