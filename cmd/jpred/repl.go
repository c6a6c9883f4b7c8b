package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/frontend"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Analyze Java sources entered interactively",
		Long: `repl reads one source per line and prints its declarations and diagnostics.
Commands:
  :tree   toggle printing the parse tree
  :quit   leave (or <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

type repl struct {
	frontend *frontend.Frontend
	rl       *readline.Instance
	showTree bool
}

func runREPL(cmd *cobra.Command, args []string) error {
	f, err := frontend.New(frontend.LexerBackend(*rootFlags.lexer))
	if err != nil {
		return err
	}
	rl, err := readline.New("jpred> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	r := &repl{
		frontend: f,
		rl:       rl,
	}
	pterm.Info.Println("Quit with <ctrl>D")
	return r.run()
}

func (r *repl) run() error {
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}

		switch line {
		case ":quit":
			return nil
		case ":tree":
			r.showTree = !r.showTree
			pterm.Info.Println(fmt.Sprintf("tree: %v", r.showTree))
			continue
		}

		res, err := r.frontend.Analyze(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if r.showTree {
			renderTree(res.Tree)
		}
		printSymbols(res.Symbols)
		printDiagnostics(res)
	}
}

func renderTree(tree *driver.Tree) {
	if tree == nil || tree.Root == nil {
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledNodes(tree, tree.Root, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledNodes(tree *driver.Tree, n *driver.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	var text string
	switch {
	case n.IsPlaceholder():
		text = "!" + tree.Name(n)
	case n.Kind == driver.NodeKindTerminal:
		text = fmt.Sprintf("%v %q", tree.Name(n), n.Token.Text)
	default:
		text = tree.Name(n)
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  text,
	})
	for _, c := range n.Children {
		ll = leveledNodes(tree, c, ll, level+1)
	}
	return ll
}
