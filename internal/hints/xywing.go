package hints

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// detectXYWing finds a pivot cell with candidates {a,b} and two wing
// cells with candidates {a,c} and {b,c} such that the pivot shares a
// unit with each wing; any cell seeing both wings can have c removed
// (spec.md §4.6 step 6). Grounded on the teacher's
// techniques/pairs.go wing-matching idiom (pair cells matched by
// shared-symbol algebra, then validated by geometry).
func detectXYWing(g *grid.Grid) *Descriptor {
	var biValue []int
	for i := 0; i < grid.TotalCells; i++ {
		cell := g.CellAt(i)
		if !cell.IsSingle() && bitset.PopCount(cell.Candidates) == 2 {
			biValue = append(biValue, i)
		}
	}

	for _, pivot := range biValue {
		pc := g.CellAt(pivot).Candidates.ToSlice()
		for _, w1 := range biValue {
			if w1 == pivot || !grid.Sees(pivot, w1) {
				continue
			}
			w1c := g.CellAt(w1).Candidates.ToSlice()
			shared1, c1, ok1 := sharedDigitAndOther(pc, w1c)
			if !ok1 {
				continue
			}
			for _, w2 := range biValue {
				if w2 == pivot || w2 == w1 || !grid.Sees(pivot, w2) {
					continue
				}
				w2c := g.CellAt(w2).Candidates.ToSlice()
				shared2, c2, ok2 := sharedDigitAndOther(pc, w2c)
				if !ok2 || shared2 == shared1 || c2 != c1 {
					continue
				}
				if d := xyWingElimination(g, pivot, w1, w2, c1); d != nil {
					return d
				}
			}
		}
	}
	return nil
}

// sharedDigitAndOther reports, for a bivalue wing candidate set wc,
// the one digit it shares with the pivot's candidates pc and the
// other digit it carries, when exactly one digit is shared.
func sharedDigitAndOther(pc, wc []int) (shared, other int, ok bool) {
	if len(wc) != 2 {
		return 0, 0, false
	}
	in0, in1 := containsInt(pc, wc[0]), containsInt(pc, wc[1])
	switch {
	case in0 && !in1:
		return wc[0], wc[1], true
	case in1 && !in0:
		return wc[1], wc[0], true
	default:
		return 0, 0, false
	}
}

func xyWingElimination(g *grid.Grid, pivot, w1, w2, c int) *Descriptor {
	var elims []Elimination
	for i := 0; i < grid.TotalCells; i++ {
		if i == pivot || i == w1 || i == w2 {
			continue
		}
		if !grid.Sees(w1, i) || !grid.Sees(w2, i) {
			continue
		}
		cell := g.CellAt(i)
		if !cell.IsSingle() && cell.Candidates.Has(c) {
			elims = append(elims, Elimination{Cell: coordOf(i), Symbol: c})
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &Descriptor{
		Kind:         XYWing,
		Action:       Remove,
		Symbols:      []int{c},
		Hints:        elimCells(elims),
		Candidates:   coordsOf([]int{pivot, w1, w2}),
		Eliminations: elims,
		Triggers: []Trigger{
			{Cell: coordOf(pivot), Flavor: Weak},
			{Cell: coordOf(w1), Flavor: Regular},
			{Cell: coordOf(w2), Flavor: Regular},
		},
	}
}
