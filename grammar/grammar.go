package grammar

import (
	"encoding/json"
	"fmt"
	"io"

	verr "github.com/nihei9/jpred/error"
	"github.com/nihei9/jpred/grammar/symbol"
)

// Epsilon marks an alternative deriving the empty string. It may only appear as the
// single symbol of an alternative.
const Epsilon = "ε"

// Rule lists the alternatives of one non-terminal in the order they are tried when
// the parsing table is built.
type Rule struct {
	LHS          string     `json:"lhs"`
	Alternatives [][]string `json:"alternatives"`
}

// Resolution forces a table cell to an alternative after automatic construction.
type Resolution struct {
	NonTerminal string   `json:"non_terminal"`
	Terminal    string   `json:"terminal"`
	Alternative []string `json:"alternative"`
}

// Definition is the static description of a grammar. Terminals lists every token
// category the lexical layer can produce; a body symbol that is neither a rule LHS nor
// one of these categories makes the definition invalid.
type Definition struct {
	Name        string        `json:"name"`
	Start       string        `json:"start"`
	Terminals   []string      `json:"terminals"`
	Rules       []*Rule       `json:"rules"`
	Resolutions []*Resolution `json:"resolutions,omitempty"`
}

func ReadDefinition(r io.Reader) (*Definition, error) {
	def := &Definition{}
	err := json.NewDecoder(r).Decode(def)
	if err != nil {
		return nil, fmt.Errorf("cannot decode a grammar definition: %w", err)
	}
	return def, nil
}

type resolution struct {
	lhs  symbol.Symbol
	term symbol.Symbol
	prod productionNum
}

type Grammar struct {
	name          string
	symbolTable   *symbol.SymbolTableReader
	productionSet *productionSet
	startSymbol   symbol.Symbol
	resolutions   []*resolution
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) SymbolTable() *symbol.SymbolTableReader {
	return g.symbolTable
}

func (g *Grammar) StartSymbol() symbol.Symbol {
	return g.startSymbol
}

type GrammarBuilder struct {
	Definition *Definition
	SourceName string

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	def := b.Definition
	if def == nil {
		return nil, fmt.Errorf("a grammar definition is required")
	}

	if def.Name == "" {
		b.appendError(semErrNoGrammarName, "", "", 0)
	}
	if def.Start == "" {
		b.appendError(semErrNoStartSymbol, "", "", 0)
	}
	if len(def.Rules) == 0 {
		b.appendError(semErrNoProduction, "", "", 0)
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	symTab, err := b.genSymbolTable(def)
	if err != nil {
		return nil, err
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	prods, err := b.genProductionSet(def, symTab.Reader())
	if err != nil {
		return nil, err
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	resolutions := b.genResolutions(def, symTab.Reader(), prods)
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	start, _ := symTab.Reader().ToSymbol(def.Start)

	tracer().Debugf("grammar %v: %v non-terminals, %v terminals, %v productions", def.Name, symTab.Reader().NonTerminalCount()-1, symTab.Reader().TerminalCount()-1, len(prods.getAllProductions()))

	return &Grammar{
		name:          def.Name,
		symbolTable:   symTab.Reader(),
		productionSet: prods,
		startSymbol:   start,
		resolutions:   resolutions,
	}, nil
}

func (b *GrammarBuilder) appendError(cause error, detail string, rule string, alt int) {
	b.errs = append(b.errs, &verr.SpecError{
		Cause:       cause,
		Detail:      detail,
		SourceName:  b.SourceName,
		Rule:        rule,
		Alternative: alt,
	})
}

func (b *GrammarBuilder) genSymbolTable(def *Definition) (*symbol.SymbolTable, error) {
	symTab := symbol.NewSymbolTable()
	w := symTab.Writer()

	startDefined := false
	for _, rule := range def.Rules {
		if rule.LHS == def.Start {
			startDefined = true
			break
		}
	}
	if !startDefined {
		b.appendError(semErrUndefinedStart, def.Start, "", 0)
		return symTab, nil
	}

	_, err := w.RegisterStartSymbol(def.Start)
	if err != nil {
		return nil, err
	}

	lhsSeen := map[string]struct{}{}
	for _, rule := range def.Rules {
		if rule.LHS == "" {
			b.appendError(semErrEmptyNonTerminalName, "", "", 0)
			continue
		}
		if _, ok := lhsSeen[rule.LHS]; ok {
			b.appendError(semErrDuplicateRule, rule.LHS, rule.LHS, 0)
			continue
		}
		lhsSeen[rule.LHS] = struct{}{}

		_, err := w.RegisterNonTerminalSymbol(rule.LHS)
		if err != nil {
			return nil, err
		}
	}

	termSeen := map[string]struct{}{}
	for _, term := range def.Terminals {
		switch {
		case term == "":
			b.appendError(semErrEmptyTerminalName, "", "", 0)
			continue
		case term == symbol.NameEOF || term == Epsilon:
			b.appendError(semErrReservedSym, term, "", 0)
			continue
		}
		if _, ok := termSeen[term]; ok {
			b.appendError(semErrDuplicateTerminal, term, "", 0)
			continue
		}
		termSeen[term] = struct{}{}
		if _, ok := lhsSeen[term]; ok {
			b.appendError(semErrDuplicateName, term, "", 0)
			continue
		}

		_, err := w.RegisterTerminalSymbol(term)
		if err != nil {
			return nil, err
		}
	}

	return symTab, nil
}

func (b *GrammarBuilder) genProductionSet(def *Definition, symTab *symbol.SymbolTableReader) (*productionSet, error) {
	prods := newProductionSet()
	lhsSeen := map[string]struct{}{}
	for _, rule := range def.Rules {
		if _, ok := lhsSeen[rule.LHS]; ok {
			continue
		}
		lhsSeen[rule.LHS] = struct{}{}

		lhs, ok := symTab.ToSymbol(rule.LHS)
		if !ok {
			continue
		}

		if len(rule.Alternatives) == 0 {
			b.appendError(semErrNoProduction, rule.LHS, rule.LHS, 0)
			continue
		}

		for i, alt := range rule.Alternatives {
			rhs, ok := b.genRHS(rule.LHS, i+1, alt, symTab)
			if !ok {
				continue
			}

			prod, err := newProduction(lhs, rhs)
			if err != nil {
				return nil, err
			}
			if !prods.append(prod) {
				b.appendError(semErrDuplicateProduction, fmt.Sprintf("%v", alt), rule.LHS, i+1)
			}
		}
	}

	return prods, nil
}

func (b *GrammarBuilder) genRHS(lhs string, altNum int, alt []string, symTab *symbol.SymbolTableReader) ([]symbol.Symbol, bool) {
	if len(alt) == 0 || (len(alt) == 1 && alt[0] == Epsilon) {
		return []symbol.Symbol{}, true
	}

	ok := true
	rhs := make([]symbol.Symbol, 0, len(alt))
	for _, text := range alt {
		switch text {
		case Epsilon:
			b.appendError(semErrInvalidEpsilon, "", lhs, altNum)
			ok = false
			continue
		case symbol.NameEOF:
			b.appendError(semErrReservedSym, text, lhs, altNum)
			ok = false
			continue
		}

		sym, found := symTab.ToSymbol(text)
		if !found {
			b.appendError(semErrUndefinedSym, text, lhs, altNum)
			ok = false
			continue
		}
		rhs = append(rhs, sym)
	}

	return rhs, ok
}

func (b *GrammarBuilder) genResolutions(def *Definition, symTab *symbol.SymbolTableReader, prods *productionSet) []*resolution {
	var resolutions []*resolution
	for _, res := range def.Resolutions {
		lhs, ok := symTab.ToSymbol(res.NonTerminal)
		if !ok || !lhs.IsNonTerminal() {
			b.appendError(semErrResolutionNonTerminal, res.NonTerminal, "", 0)
			continue
		}
		term, ok := symTab.ToSymbol(res.Terminal)
		if !ok || !term.IsTerminal() {
			b.appendError(semErrResolutionTerminal, res.Terminal, res.NonTerminal, 0)
			continue
		}

		rhs := []symbol.Symbol{}
		if !(len(res.Alternative) == 0 || (len(res.Alternative) == 1 && res.Alternative[0] == Epsilon)) {
			for _, text := range res.Alternative {
				sym, found := symTab.ToSymbol(text)
				if !found {
					rhs = nil
					break
				}
				rhs = append(rhs, sym)
			}
		}
		var prod *production
		if rhs != nil {
			prod, ok = prods.findByID(genProductionID(lhs, rhs))
		}
		if rhs == nil || !ok {
			b.appendError(semErrResolutionAlternative, fmt.Sprintf("%v", res.Alternative), res.NonTerminal, 0)
			continue
		}

		resolutions = append(resolutions, &resolution{
			lhs:  lhs,
			term: term,
			prod: prod.num,
		})
	}

	return resolutions
}
