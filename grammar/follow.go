package grammar

import (
	"fmt"
	"sort"

	"github.com/nihei9/jpred/grammar/symbol"
)

// followEntry is a FOLLOW set. The end-marker is kept as a flag rather than as a member.
type followEntry struct {
	symbols map[symbol.Symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[symbol.Symbol]struct{}{},
		eof:     false,
	}
}

func (e *followEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

func (e *followEntry) contains(sym symbol.Symbol) bool {
	if sym == symbol.SymbolEOF {
		return e.eof
	}
	_, ok := e.symbols[sym]
	return ok
}

func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false

	if fst != nil {
		for sym := range fst.symbols {
			added := e.add(sym)
			if added {
				changed = true
			}
		}
	}

	if flw != nil {
		for sym := range flw.symbols {
			added := e.add(sym)
			if added {
				changed = true
			}
		}
		if flw.eof {
			added := e.addEOF()
			if added {
				changed = true
			}
		}
	}

	return changed
}

// sorted returns the members ordered by their symbol numbers; the end-marker, having
// the smallest terminal number, comes first when present.
func (e *followEntry) sorted() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(e.symbols)+1)
	if e.eof {
		syms = append(syms, symbol.SymbolEOF)
	}
	for sym := range e.symbols {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Num() < syms[j].Num()
	})
	return syms
}

type followSet struct {
	set map[symbol.Symbol]*followEntry
}

func newFollow(prods *productionSet) *followSet {
	flw := &followSet{
		set: map[symbol.Symbol]*followEntry{},
	}
	for _, prod := range prods.getAllProductions() {
		if _, ok := flw.set[prod.lhs]; ok {
			continue
		}
		flw.set[prod.lhs] = newFollowEntry()
	}
	return flw
}

func (flw *followSet) find(sym symbol.Symbol) (*followEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("an entry of FOLLOW was not found; symbol: %s", sym)
	}
	return e, nil
}

type followComContext struct {
	prods  *productionSet
	first  *firstSet
	follow *followSet
}

func newFollowComContext(prods *productionSet, first *firstSet) *followComContext {
	return &followComContext{
		prods:  prods,
		first:  first,
		follow: newFollow(prods),
	}
}

func genFollowSet(prods *productionSet, first *firstSet, start symbol.Symbol) (*followSet, error) {
	cc := newFollowComContext(prods, first)

	startEntry, err := cc.follow.find(start)
	if err != nil {
		return nil, err
	}
	startEntry.addEOF()

	rounds := 0
	for {
		rounds++
		more := false
		for _, prod := range prods.getAllProductions() {
			changed, err := genFollowEntries(cc, prod)
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
	tracer().Debugf("FOLLOW reached its fixpoint after %v rounds", rounds)

	return cc.follow, nil
}

// genFollowEntries propagates into FOLLOW(B) for every non-terminal B in the RHS of
// `prod`, i.e. for every A → αBβ.
func genFollowEntries(cc *followComContext, prod *production) (bool, error) {
	changed := false
	for i, sym := range prod.rhs {
		if !sym.IsNonTerminal() {
			continue
		}

		acc, err := cc.follow.find(sym)
		if err != nil {
			return false, err
		}
		fst, err := cc.first.find(prod, i+1)
		if err != nil {
			return false, err
		}
		if acc.merge(fst, nil) {
			changed = true
		}
		if fst.empty {
			flw, err := cc.follow.find(prod.lhs)
			if err != nil {
				return false, err
			}
			if acc.merge(nil, flw) {
				changed = true
			}
		}
	}

	return changed, nil
}
