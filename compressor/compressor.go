// Package compressor packs sparse tables. A parsing table has one row per non-terminal
// and one column per terminal, and most of its cells are empty.
package compressor

import (
	"fmt"
	"sort"
)

type Table interface {
	Lookup(row, col int) (int, error)
	Size() (int, int)
}

var (
	_ Table = &Dense{}
	_ Table = &Displaced{}
)

// Dense is a row-major table.
type Dense struct {
	entries []int
	rows    int
	cols    int
}

func NewDense(entries []int, cols int) (*Dense, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries is empty")
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols must be >=1")
	}
	if len(entries)%cols != 0 {
		return nil, fmt.Errorf("entries length or column count are incorrect; entries length: %v, column count: %v", len(entries), cols)
	}
	return &Dense{
		entries: entries,
		rows:    len(entries) / cols,
		cols:    cols,
	}, nil
}

func (t *Dense) Lookup(row, col int) (int, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return t.entries[row*t.cols+col], nil
}

func (t *Dense) Size() (int, int) {
	return t.rows, t.cols
}

const noOwner = -1

// Displaced overlays all rows onto one array. Each row is shifted by its own offset so
// that its non-empty cells land on slots no other row uses; owner records which row put
// a value in each slot, so a lookup can tell its own cells from another row's.
type Displaced struct {
	rows   int
	cols   int
	empty  int
	values []int
	owner  []int
	offset []int
}

// Displace packs `t`. Cells holding `empty` are not stored and read back as `empty`.
// Rows are placed densest first at the lowest offset that fits.
func Displace(t *Dense, empty int) *Displaced {
	type rowCells struct {
		row  int
		cols []int
	}
	rows := make([]rowCells, t.rows)
	for r := range rows {
		rows[r].row = r
		for c := 0; c < t.cols; c++ {
			if t.entries[r*t.cols+c] != empty {
				rows[r].cols = append(rows[r].cols, c)
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return len(rows[i].cols) > len(rows[j].cols)
	})

	d := &Displaced{
		rows:   t.rows,
		cols:   t.cols,
		empty:  empty,
		offset: make([]int, t.rows),
	}
	for _, rc := range rows {
		if len(rc.cols) == 0 {
			break
		}
		off := 0
		for !d.fits(off, rc.cols) {
			off++
		}
		d.grow(off + rc.cols[len(rc.cols)-1] + 1)
		for _, c := range rc.cols {
			d.values[off+c] = t.entries[rc.row*t.cols+c]
			d.owner[off+c] = rc.row
		}
		d.offset[rc.row] = off
	}
	return d
}

func (t *Displaced) fits(off int, cols []int) bool {
	for _, c := range cols {
		if off+c < len(t.owner) && t.owner[off+c] != noOwner {
			return false
		}
	}
	return true
}

func (t *Displaced) grow(n int) {
	for len(t.values) < n {
		t.values = append(t.values, t.empty)
		t.owner = append(t.owner, noOwner)
	}
}

func (t *Displaced) Lookup(row, col int) (int, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return t.empty, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	i := t.offset[row] + col
	if i >= len(t.owner) || t.owner[i] != row {
		return t.empty, nil
	}
	return t.values[i], nil
}

func (t *Displaced) Size() (int, int) {
	return t.rows, t.cols
}

// Len returns the number of slots the packed rows occupy.
func (t *Displaced) Len() int {
	return len(t.values)
}
