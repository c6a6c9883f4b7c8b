package grammar

import (
	"fmt"
	"sort"

	"github.com/nihei9/jpred/grammar/symbol"
)

// firstEntry is a FIRST set. Epsilon is kept as a flag rather than as a member.
type firstEntry struct {
	symbols map[symbol.Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[symbol.Symbol]struct{}{},
		empty:   false,
	}
}

func (e *firstEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if !e.empty {
		e.empty = true
		return true
	}
	return false
}

func (e *firstEntry) mergeExceptEmpty(target *firstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.symbols {
		added := e.add(sym)
		if added {
			changed = true
		}
	}
	return changed
}

// sorted returns the terminals of the set ordered by their symbol numbers.
func (e *firstEntry) sorted() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(e.symbols))
	for sym := range e.symbols {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Num() < syms[j].Num()
	})
	return syms
}

type firstSet struct {
	set map[symbol.Symbol]*firstEntry
}

func newFirstSet(prods *productionSet) *firstSet {
	fst := &firstSet{
		set: map[symbol.Symbol]*firstEntry{},
	}
	for _, prod := range prods.getAllProductions() {
		if _, ok := fst.set[prod.lhs]; ok {
			continue
		}
		fst.set[prod.lhs] = newFirstEntry()
	}

	return fst
}

// find returns FIRST of the RHS of `prod` starting at `head`. A suffix that is empty
// yields a set containing only epsilon.
func (fst *firstSet) find(prod *production, head int) (*firstEntry, error) {
	if prod.rhsLen <= head {
		entry := newFirstEntry()
		entry.addEmpty()
		return entry, nil
	}
	return fst.findBySequence(prod.rhs[head:])
}

func (fst *firstSet) findBySequence(seq []symbol.Symbol) (*firstEntry, error) {
	entry := newFirstEntry()
	for _, sym := range seq {
		if sym.IsTerminal() {
			entry.add(sym)
			return entry, nil
		}

		e := fst.findBySymbol(sym)
		if e == nil {
			return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %s", sym)
		}
		for s := range e.symbols {
			entry.add(s)
		}
		if !e.empty {
			return entry, nil
		}
	}
	entry.addEmpty()
	return entry, nil
}

func (fst *firstSet) findBySymbol(sym symbol.Symbol) *firstEntry {
	return fst.set[sym]
}

type firstComContext struct {
	first *firstSet
}

func newFirstComContext(prods *productionSet) *firstComContext {
	return &firstComContext{
		first: newFirstSet(prods),
	}
}

// genFirstSet iterates over all productions until a full pass adds nothing. Every
// set only grows and is bounded by the terminal alphabet plus epsilon, so the loop ends.
func genFirstSet(prods *productionSet) (*firstSet, error) {
	cc := newFirstComContext(prods)
	rounds := 0
	for {
		rounds++
		more := false
		for _, prod := range prods.getAllProductions() {
			e := cc.first.findBySymbol(prod.lhs)
			changed, err := genProdFirstEntry(cc, e, prod)
			if err != nil {
				return nil, err
			}
			if changed {
				more = true
			}
		}
		if !more {
			break
		}
	}
	tracer().Debugf("FIRST reached its fixpoint after %v rounds", rounds)
	return cc.first, nil
}

func genProdFirstEntry(cc *firstComContext, acc *firstEntry, prod *production) (bool, error) {
	if prod.isEmpty() {
		return acc.addEmpty(), nil
	}

	changed := false
	for _, sym := range prod.rhs {
		if sym.IsTerminal() {
			return acc.add(sym) || changed, nil
		}

		e := cc.first.findBySymbol(sym)
		if e == nil {
			return false, fmt.Errorf("an entry of FIRST was not found; symbol: %s", sym)
		}
		if acc.mergeExceptEmpty(e) {
			changed = true
		}
		if !e.empty {
			return changed, nil
		}
	}
	return acc.addEmpty() || changed, nil
}
