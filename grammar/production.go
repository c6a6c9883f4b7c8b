package grammar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/nihei9/jpred/grammar/symbol"
)

type productionID [32]byte

func (id productionID) String() string {
	return hex.EncodeToString(id[:])
}

func genProductionID(lhs symbol.Symbol, rhs []symbol.Symbol) productionID {
	seq := lhs.Byte()
	for _, sym := range rhs {
		seq = append(seq, sym.Byte()...)
	}
	return productionID(sha256.Sum256(seq))
}

type productionNum uint16

const (
	productionNumNil = productionNum(0)
	productionNumMin = productionNum(1)
)

func (n productionNum) Int() int {
	return int(n)
}

// production is one alternative of a rule. An empty RHS stands for an epsilon alternative.
type production struct {
	id     productionID
	num    productionNum
	lhs    symbol.Symbol
	rhs    []symbol.Symbol
	rhsLen int

	// alt is the 1-based position of the alternative within its rule.
	alt int
}

func newProduction(lhs symbol.Symbol, rhs []symbol.Symbol) (*production, error) {
	if lhs.IsNil() {
		return nil, fmt.Errorf("LHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
	}
	for _, sym := range rhs {
		if sym.IsNil() {
			return nil, fmt.Errorf("a symbol of RHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
		}
	}

	return &production{
		id:     genProductionID(lhs, rhs),
		lhs:    lhs,
		rhs:    rhs,
		rhsLen: len(rhs),
	}, nil
}

func (p *production) equals(q *production) bool {
	return q.id == p.id
}

func (p *production) isEmpty() bool {
	return p.rhsLen == 0
}

// productionSet keeps productions in definition order. Every pass of the analysis
// iterates them in that order, which is what makes conflict reports reproducible.
type productionSet struct {
	prods     []*production
	lhs2Prods map[symbol.Symbol][]*production
	id2Prod   map[productionID]*production
	num       productionNum
}

func newProductionSet() *productionSet {
	return &productionSet{
		lhs2Prods: map[symbol.Symbol][]*production{},
		id2Prod:   map[productionID]*production{},
		num:       productionNumMin,
	}
}

func (ps *productionSet) append(prod *production) bool {
	if _, ok := ps.id2Prod[prod.id]; ok {
		return false
	}

	prod.num = ps.num
	ps.num++
	prod.alt = len(ps.lhs2Prods[prod.lhs]) + 1

	ps.prods = append(ps.prods, prod)
	ps.lhs2Prods[prod.lhs] = append(ps.lhs2Prods[prod.lhs], prod)
	ps.id2Prod[prod.id] = prod

	return true
}

func (ps *productionSet) findByID(id productionID) (*production, bool) {
	prod, ok := ps.id2Prod[id]
	return prod, ok
}

func (ps *productionSet) findByNum(num productionNum) (*production, bool) {
	if num < productionNumMin || num.Int() > len(ps.prods) {
		return nil, false
	}
	return ps.prods[num.Int()-1], true
}

func (ps *productionSet) findByLHS(lhs symbol.Symbol) ([]*production, bool) {
	if lhs.IsNil() {
		return nil, false
	}

	prods, ok := ps.lhs2Prods[lhs]
	return prods, ok
}

func (ps *productionSet) getAllProductions() []*production {
	return ps.prods
}
