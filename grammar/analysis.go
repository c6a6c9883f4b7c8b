package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/nihei9/jpred/grammar/symbol"
)

// Production is a read-only view of one alternative of a rule. An empty RHS derives
// the empty string.
type Production struct {
	Num         int
	LHS         symbol.Symbol
	RHS         []symbol.Symbol
	Alternative int
}

func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

// Analysis bundles FIRST, FOLLOW, the LL(1) table and the conflicts found while
// building it. Nothing mutates an Analysis after Generate returns, so one value can be
// shared by any number of parsers running concurrently.
type Analysis struct {
	grammar   *Grammar
	first     *firstSet
	follow    *followSet
	table     *ParsingTable
	prods     []*Production
	conflicts []*Conflict
}

// Generate computes FIRST, then FOLLOW, then the parsing table of `gram`. Each step
// depends on the previous one.
func Generate(gram *Grammar) (*Analysis, error) {
	if gram == nil {
		return nil, fmt.Errorf("a grammar is required")
	}

	first, err := genFirstSet(gram.productionSet)
	if err != nil {
		return nil, err
	}

	follow, err := genFollowSet(gram.productionSet, first, gram.startSymbol)
	if err != nil {
		return nil, err
	}

	prods := gram.productionSet.getAllProductions()
	views := make([]*Production, len(prods))
	for i, p := range prods {
		views[i] = &Production{
			Num:         p.num.Int(),
			LHS:         p.lhs,
			RHS:         p.rhs,
			Alternative: p.alt,
		}
	}

	b := &llTableBuilder{
		prods:  gram.productionSet,
		first:  first,
		follow: follow,
		symTab: gram.symbolTable,
		views:  views,
	}
	tab, err := b.build(gram.resolutions)
	if err != nil {
		return nil, err
	}

	tracer().Infof("grammar %v analyzed: %v productions, %v conflicts", gram.name, len(views), len(b.conflicts))

	return &Analysis{
		grammar:   gram,
		first:     first,
		follow:    follow,
		table:     tab,
		prods:     views,
		conflicts: b.conflicts,
	}, nil
}

func (a *Analysis) Grammar() *Grammar {
	return a.grammar
}

func (a *Analysis) SymbolTable() *symbol.SymbolTableReader {
	return a.grammar.symbolTable
}

func (a *Analysis) StartSymbol() symbol.Symbol {
	return a.grammar.startSymbol
}

// Productions returns all productions in definition order.
func (a *Analysis) Productions() []*Production {
	return a.prods
}

// Lookup returns the production chosen for the non-terminal `nonTerm` when the lookahead
// is `term`.
func (a *Analysis) Lookup(nonTerm symbol.Symbol, term symbol.Symbol) (*Production, bool) {
	num := a.table.read(nonTerm, term)
	if num == productionNumNil {
		return nil, false
	}
	return a.prods[num.Int()-1], true
}

// First returns the terminals of FIRST(sym) in symbol order and whether sym is nullable.
func (a *Analysis) First(sym symbol.Symbol) ([]symbol.Symbol, bool, error) {
	if sym.IsTerminal() {
		return []symbol.Symbol{sym}, false, nil
	}
	e := a.first.findBySymbol(sym)
	if e == nil {
		return nil, false, fmt.Errorf("an entry of FIRST was not found; symbol: %s", sym)
	}
	return e.sorted(), e.empty, nil
}

// Follow returns FOLLOW(nonTerm) in symbol order. The end-marker comes first when present.
func (a *Analysis) Follow(nonTerm symbol.Symbol) ([]symbol.Symbol, error) {
	e, err := a.follow.find(nonTerm)
	if err != nil {
		return nil, err
	}
	return e.sorted(), nil
}

// Follows reports whether `term` is a member of FOLLOW(nonTerm).
func (a *Analysis) Follows(nonTerm symbol.Symbol, term symbol.Symbol) bool {
	e, err := a.follow.find(nonTerm)
	if err != nil {
		return false
	}
	return e.contains(term)
}

// Conflicts returns the table conflicts in the order they were encountered.
func (a *Analysis) Conflicts() []*Conflict {
	return a.conflicts
}

// Text returns the name of `sym`.
func (a *Analysis) Text(sym symbol.Symbol) string {
	text, ok := a.grammar.symbolTable.ToText(sym)
	if !ok {
		return fmt.Sprintf("<%v>", sym)
	}
	return text
}

// ProductionText renders a production like `ElseOpt → else Stmt`.
func (a *Analysis) ProductionText(prod *Production) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", a.Text(prod.LHS))
	if prod.IsEmpty() {
		fmt.Fprintf(&b, " %v", Epsilon)
		return b.String()
	}
	for _, sym := range prod.RHS {
		fmt.Fprintf(&b, " %v", a.Text(sym))
	}
	return b.String()
}

type SetReport struct {
	NonTerminal string   `json:"non_terminal"`
	Symbols     []string `json:"symbols"`
}

type CellReport struct {
	NonTerminal string `json:"non_terminal"`
	Terminal    string `json:"terminal"`
	Production  string `json:"production"`
}

type ConflictReport struct {
	NonTerminal string `json:"non_terminal"`
	Terminal    string `json:"terminal"`
	Existing    string `json:"existing"`
	Rejected    string `json:"rejected"`
}

// Report is the textual form of an Analysis. Sets are ordered by symbol number, cells by
// row then column, and conflicts by encounter order.
type Report struct {
	Name      string            `json:"name"`
	First     []*SetReport      `json:"first"`
	Follow    []*SetReport      `json:"follow"`
	Table     []*CellReport     `json:"table"`
	Conflicts []*ConflictReport `json:"conflicts"`
}

func symbolComparator(a, b interface{}) int {
	s1 := a.(symbol.Symbol)
	s2 := b.(symbol.Symbol)
	return utils.IntComparator(s1.Num().Int(), s2.Num().Int())
}

func (a *Analysis) Report() (*Report, error) {
	nonTerms := a.grammar.symbolTable.NonTerminalSymbols()
	terms := a.grammar.symbolTable.TerminalSymbols()

	rep := &Report{
		Name: a.grammar.name,
	}

	for _, nt := range nonTerms {
		fe := a.first.findBySymbol(nt)
		if fe == nil {
			return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %s", nt)
		}
		set := treeset.NewWith(symbolComparator)
		for sym := range fe.symbols {
			set.Add(sym)
		}
		syms := a.texts(set)
		if fe.empty {
			syms = append(syms, Epsilon)
		}
		rep.First = append(rep.First, &SetReport{
			NonTerminal: a.Text(nt),
			Symbols:     syms,
		})

		we, err := a.follow.find(nt)
		if err != nil {
			return nil, err
		}
		set = treeset.NewWith(symbolComparator)
		for sym := range we.symbols {
			set.Add(sym)
		}
		if we.eof {
			set.Add(symbol.SymbolEOF)
		}
		rep.Follow = append(rep.Follow, &SetReport{
			NonTerminal: a.Text(nt),
			Symbols:     a.texts(set),
		})

		for _, t := range terms {
			prod, ok := a.Lookup(nt, t)
			if !ok {
				continue
			}
			rep.Table = append(rep.Table, &CellReport{
				NonTerminal: a.Text(nt),
				Terminal:    a.Text(t),
				Production:  a.ProductionText(prod),
			})
		}
	}

	for _, c := range a.conflicts {
		rep.Conflicts = append(rep.Conflicts, &ConflictReport{
			NonTerminal: a.Text(c.NonTerminal),
			Terminal:    a.Text(c.Terminal),
			Existing:    a.ProductionText(c.Existing),
			Rejected:    a.ProductionText(c.Rejected),
		})
	}

	return rep, nil
}

func (a *Analysis) texts(set *treeset.Set) []string {
	texts := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		texts = append(texts, a.Text(v.(symbol.Symbol)))
	}
	return texts
}

// Fingerprint returns a digest of the report. Two analyses of the same grammar have the
// same fingerprint.
func (a *Analysis) Fingerprint() (string, error) {
	rep, err := a.Report()
	if err != nil {
		return "", err
	}
	return structhash.Hash(rep, 1)
}
