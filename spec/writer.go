package spec

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nihei9/jpred/grammar"
)

var reName = regexp.MustCompile(`^[A-Za-z_][0-9A-Za-z_]*$`)

// Write prints `def` in the notation Parse reads. Terminals are always quoted, so the
// output reads back to an equal definition.
func Write(w io.Writer, def *grammar.Definition) error {
	if def == nil {
		return fmt.Errorf("a grammar definition is required")
	}
	for _, name := range []string{def.Name, def.Start} {
		if !reName.MatchString(name) {
			return fmt.Errorf("a name cannot be written in the notation: %q", name)
		}
	}

	terms := map[string]struct{}{}
	for _, t := range def.Terminals {
		terms[t] = struct{}{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#name %v;\n", def.Name)
	fmt.Fprintf(&b, "#start %v;\n", def.Start)
	if len(def.Terminals) > 0 {
		fmt.Fprintf(&b, "#terminals")
		for _, t := range def.Terminals {
			fmt.Fprintf(&b, " %v", strconv.Quote(t))
		}
		fmt.Fprintf(&b, ";\n")
	}

	for _, rule := range def.Rules {
		if !reName.MatchString(rule.LHS) {
			return fmt.Errorf("a name cannot be written in the notation: %q", rule.LHS)
		}
		fmt.Fprintf(&b, "\n%v\n", rule.LHS)
		for i, alt := range rule.Alternatives {
			if i == 0 {
				fmt.Fprintf(&b, "    :")
			} else {
				fmt.Fprintf(&b, "    |")
			}
			if err := writeElements(&b, alt, terms); err != nil {
				return err
			}
			fmt.Fprintf(&b, "\n")
		}
		fmt.Fprintf(&b, "    ;\n")
	}

	if len(def.Resolutions) > 0 {
		fmt.Fprintf(&b, "\n")
	}
	for _, res := range def.Resolutions {
		if !reName.MatchString(res.NonTerminal) {
			return fmt.Errorf("a name cannot be written in the notation: %q", res.NonTerminal)
		}
		fmt.Fprintf(&b, "#resolve %v %v :", res.NonTerminal, strconv.Quote(res.Terminal))
		if err := writeElements(&b, res.Alternative, terms); err != nil {
			return err
		}
		fmt.Fprintf(&b, ";\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeElements(b *strings.Builder, elems []string, terms map[string]struct{}) error {
	for _, e := range elems {
		if _, ok := terms[e]; ok {
			fmt.Fprintf(b, " %v", strconv.Quote(e))
			continue
		}
		if e != grammar.Epsilon && !reName.MatchString(e) {
			return fmt.Errorf("a name cannot be written in the notation: %q", e)
		}
		fmt.Fprintf(b, " %v", e)
	}
	return nil
}
