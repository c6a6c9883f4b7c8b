package grammar

import (
	"fmt"

	"github.com/nihei9/jpred/compressor"
	"github.com/nihei9/jpred/grammar/symbol"
)

// Conflict records a table cell that a later production tried to claim after an earlier
// production had already been written there. The earlier production stays in the table.
type Conflict struct {
	NonTerminal symbol.Symbol
	Terminal    symbol.Symbol
	Existing    *Production
	Rejected    *Production
}

// ParsingTable is the LL(1) table. Rows are non-terminal numbers and columns are terminal
// numbers. Cells are packed by row displacement since most of them are empty.
type ParsingTable struct {
	cells *compressor.Displaced
}

func (t *ParsingTable) read(nonTerm symbol.Symbol, term symbol.Symbol) productionNum {
	if !nonTerm.IsNonTerminal() || !term.IsTerminal() {
		return productionNumNil
	}
	v, err := t.cells.Lookup(nonTerm.Num().Int(), term.Num().Int())
	if err != nil {
		return productionNumNil
	}
	return productionNum(v)
}

// denseTable is the table while it is being filled.
type denseTable struct {
	entries       []int
	terminalCount int
}

func newDenseTable(termCount, nonTermCount int) *denseTable {
	return &denseTable{
		entries:       make([]int, termCount*nonTermCount),
		terminalCount: termCount,
	}
}

func (t *denseTable) read(nonTerm symbol.Symbol, term symbol.Symbol) productionNum {
	return productionNum(t.entries[nonTerm.Num().Int()*t.terminalCount+term.Num().Int()])
}

func (t *denseTable) write(nonTerm symbol.Symbol, term symbol.Symbol, prod productionNum) {
	t.entries[nonTerm.Num().Int()*t.terminalCount+term.Num().Int()] = prod.Int()
}

func (t *denseTable) pack() (*ParsingTable, error) {
	dense, err := compressor.NewDense(t.entries, t.terminalCount)
	if err != nil {
		return nil, err
	}
	cells := compressor.Displace(dense, productionNumNil.Int())
	tracer().Debugf("parsing table packed: %v cells -> %v slots", len(t.entries), cells.Len())
	return &ParsingTable{
		cells: cells,
	}, nil
}

type llTableBuilder struct {
	prods  *productionSet
	first  *firstSet
	follow *followSet
	symTab *symbol.SymbolTableReader
	views  []*Production

	conflicts []*Conflict
}

func (b *llTableBuilder) build(resolutions []*resolution) (*ParsingTable, error) {
	tab := newDenseTable(b.symTab.TerminalCount(), b.symTab.NonTerminalCount())

	for _, prod := range b.prods.getAllProductions() {
		fst, err := b.first.find(prod, 0)
		if err != nil {
			return nil, err
		}
		for _, a := range fst.sorted() {
			b.writeEntry(tab, prod.lhs, a, prod.num)
		}
		if !fst.empty {
			continue
		}

		flw, err := b.follow.find(prod.lhs)
		if err != nil {
			return nil, err
		}
		for _, a := range flw.sorted() {
			b.writeEntry(tab, prod.lhs, a, prod.num)
		}
	}

	for _, res := range resolutions {
		before := tab.read(res.lhs, res.term)
		tab.write(res.lhs, res.term, res.prod)
		tracer().Debugf("resolution applied: %v, %v: production %v -> %v", b.text(res.lhs), b.text(res.term), before, res.prod)
	}

	return tab.pack()
}

// writeEntry writes `prod` into the cell (lhs, a) unless the cell is already occupied.
// A collision between two different productions is recorded as a conflict and the
// production written first is kept.
func (b *llTableBuilder) writeEntry(tab *denseTable, lhs symbol.Symbol, a symbol.Symbol, prod productionNum) {
	existing := tab.read(lhs, a)
	if existing == productionNumNil {
		tab.write(lhs, a, prod)
		return
	}
	if existing == prod {
		return
	}

	b.conflicts = append(b.conflicts, &Conflict{
		NonTerminal: lhs,
		Terminal:    a,
		Existing:    b.views[existing.Int()-1],
		Rejected:    b.views[prod.Int()-1],
	})
	tracer().Debugf("conflict: %v, %v: production %v is kept, production %v is rejected", b.text(lhs), b.text(a), existing, prod)
}

func (b *llTableBuilder) text(sym symbol.Symbol) string {
	text, ok := b.symTab.ToText(sym)
	if !ok {
		return fmt.Sprintf("<%v>", sym)
	}
	return text
}
