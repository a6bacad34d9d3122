package hints

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// detectNakedSubset finds k cells (k in 2..4) within a unit whose
// candidate union has exactly k symbols, eliminating those symbols
// from the unit's other cells (spec.md §4.6 step 4). Enumeration uses
// lexicographic k-subsets of the unit's unsolved cells, grounded on
// the teacher's detectNakedPair/Triple/Quad family generalized to a
// single k-parametrized routine over bitset.Combinations.
func detectNakedSubset(g *grid.Grid) *Descriptor {
	for k := 2; k <= 4; k++ {
		for unit := 0; unit < grid.Size; unit++ {
			if d := nakedSubsetInUnit(g, rowCells(unit), k); d != nil {
				return d
			}
			if d := nakedSubsetInUnit(g, colCells(unit), k); d != nil {
				return d
			}
			if d := nakedSubsetInUnit(g, boxCells(unit), k); d != nil {
				return d
			}
		}
	}
	return nil
}

func nakedSubsetInUnit(g *grid.Grid, cells []int, k int) *Descriptor {
	var open []int
	for _, idx := range cells {
		if !g.CellAt(idx).IsSingle() {
			open = append(open, idx)
		}
	}
	if len(open) < k {
		return nil
	}
	for _, combo := range bitset.Combinations(open, k) {
		var union bitset.Mask
		for _, idx := range combo {
			union = union.Union(g.CellAt(idx).Candidates)
		}
		if bitset.PopCount(union) != k {
			continue
		}
		var elims []Elimination
		for _, idx := range open {
			if containsInt(combo, idx) {
				continue
			}
			overlap := g.CellAt(idx).Candidates.Intersect(union)
			for _, d := range overlap.ToSlice() {
				elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: d})
			}
		}
		if len(elims) == 0 {
			continue
		}
		return &Descriptor{
			Kind:         NakedSubset,
			Action:       Remove,
			Symbols:      union.ToSlice(),
			Hints:        elimCells(elims),
			Candidates:   coordsOf(combo),
			Eliminations: elims,
			Triggers:     patternTriggers(combo),
		}
	}
	return nil
}

// detectHiddenSubset finds k symbols (k in 2..4) confined to exactly k
// cells within a unit, stripping every other candidate from those
// cells. Grounded on the teacher's detectHiddenPair/Triple/Quad.
func detectHiddenSubset(g *grid.Grid) *Descriptor {
	for k := 2; k <= 4; k++ {
		for unit := 0; unit < grid.Size; unit++ {
			if d := hiddenSubsetInUnit(g, rowCells(unit), k); d != nil {
				return d
			}
			if d := hiddenSubsetInUnit(g, colCells(unit), k); d != nil {
				return d
			}
			if d := hiddenSubsetInUnit(g, boxCells(unit), k); d != nil {
				return d
			}
		}
	}
	return nil
}

func hiddenSubsetInUnit(g *grid.Grid, cells []int, k int) *Descriptor {
	var openSymbols []int
	locations := make(map[int]bitset.Mask) // symbol -> mask of cell positions (by index into cells)
	for sym := 1; sym <= 9; sym++ {
		placed := false
		var where bitset.Mask
		for ci, idx := range cells {
			cell := g.CellAt(idx)
			if s, ok := cell.Symbol(); ok {
				if s == sym {
					placed = true
				}
				continue
			}
			if cell.Candidates.Has(sym) {
				where = where.Set(ci + 1)
			}
		}
		if !placed && bitset.PopCount(where) >= 1 {
			openSymbols = append(openSymbols, sym)
			locations[sym] = where
		}
	}
	if len(openSymbols) < k {
		return nil
	}
	for _, combo := range bitset.Combinations(openSymbols, k) {
		var union bitset.Mask
		for _, sym := range combo {
			union = union.Union(locations[sym])
		}
		if bitset.PopCount(union) != k {
			continue
		}
		cellIdxs := make([]int, 0, k)
		for _, ci := range union.ToSlice() {
			cellIdxs = append(cellIdxs, cells[ci-1])
		}
		symMask := bitset.FromDigits(combo)
		var elims []Elimination
		for _, idx := range cellIdxs {
			extra := g.CellAt(idx).Candidates.Subtract(symMask)
			for _, d := range extra.ToSlice() {
				elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: d})
			}
		}
		if len(elims) == 0 {
			continue
		}
		return &Descriptor{
			Kind:         HiddenSubset,
			Action:       Remove,
			Symbols:      combo,
			Hints:        elimCells(elims),
			Candidates:   coordsOf(cellIdxs),
			Eliminations: elims,
			Triggers:     patternTriggers(cellIdxs),
		}
	}
	return nil
}
