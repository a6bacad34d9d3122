package hints

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// detectFish finds X-Wing (k=2), Swordfish (k=3) and Jellyfish (k=4)
// patterns for each symbol, row-based then column-based (spec.md §4.6
// step 5). For each symbol, a per-row location mask (columns where the
// symbol is still a candidate) is built; a bounded recursive search
// looks for k rows whose union of location masks has size exactly k.
// Grounded on the teacher's fish family (techniques_fish.go), replaced
// here with a single k-parametrized routine driven by bitset.Mask.
func detectFish(g *grid.Grid) *Descriptor {
	for k := 2; k <= 4; k++ {
		if d := fishOnAxis(g, k, true); d != nil {
			return d
		}
		if d := fishOnAxis(g, k, false); d != nil {
			return d
		}
	}
	return nil
}

// fishOnAxis searches rows (byRow==true) or columns for a fish of
// size k for every symbol.
func fishOnAxis(g *grid.Grid, k int, byRow bool) *Descriptor {
	for sym := 1; sym <= 9; sym++ {
		lines := make([]bitset.Mask, grid.Size)
		for line := 0; line < grid.Size; line++ {
			var cells []int
			if byRow {
				cells = rowCells(line)
			} else {
				cells = colCells(line)
			}
			var mask bitset.Mask
			for _, idx := range cells {
				cross := idx % grid.Size
				if !byRow {
					cross = idx / grid.Size
				}
				cell := g.CellAt(idx)
				if !cell.IsSingle() && cell.Candidates.Has(sym) {
					mask = mask.Set(cross + 1)
				}
			}
			lines[line] = mask
		}

		candidateLines := make([]int, 0, grid.Size)
		for line := 0; line < grid.Size; line++ {
			c := bitset.PopCount(lines[line])
			if c >= 1 && c <= k {
				candidateLines = append(candidateLines, line)
			}
		}
		if d := searchFishLines(g, sym, k, byRow, lines, candidateLines); d != nil {
			return d
		}
	}
	return nil
}

func searchFishLines(g *grid.Grid, sym, k int, byRow bool, lines []bitset.Mask, candidates []int) *Descriptor {
	for _, combo := range bitset.Combinations(candidates, k) {
		var union bitset.Mask
		for _, line := range combo {
			union = union.Union(lines[line])
		}
		if bitset.PopCount(union) != k {
			continue
		}
		elims := fishEliminations(g, sym, byRow, combo, union)
		if len(elims) == 0 {
			continue
		}
		triggers := fishTriggers(byRow, combo, union)
		return &Descriptor{
			Kind:         fishKind(k),
			Action:       Remove,
			Symbols:      []int{sym},
			Hints:        elimCells(elims),
			Candidates:   triggerCells(triggers),
			Eliminations: elims,
			Triggers:     triggers,
		}
	}
	return nil
}

func fishEliminations(g *grid.Grid, sym int, byRow bool, lines []int, crossUnion bitset.Mask) []Elimination {
	lineSet := make(map[int]bool, len(lines))
	for _, l := range lines {
		lineSet[l] = true
	}
	var elims []Elimination
	for _, cross := range crossUnion.ToSlice() {
		crossIdx := cross - 1
		for line := 0; line < grid.Size; line++ {
			if lineSet[line] {
				continue
			}
			var idx int
			if byRow {
				idx = line*grid.Size + crossIdx
			} else {
				idx = crossIdx*grid.Size + line
			}
			cell := g.CellAt(idx)
			if !cell.IsSingle() && cell.Candidates.Has(sym) {
				elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: sym})
			}
		}
	}
	return elims
}

func fishTriggers(byRow bool, lines []int, crossUnion bitset.Mask) []Trigger {
	var out []Trigger
	for _, line := range lines {
		for _, cross := range crossUnion.ToSlice() {
			crossIdx := cross - 1
			var idx int
			if byRow {
				idx = line*grid.Size + crossIdx
			} else {
				idx = crossIdx*grid.Size + line
			}
			out = append(out, Trigger{Cell: coordOf(idx), Flavor: Regular})
		}
	}
	return out
}

func triggerCells(triggers []Trigger) []grid.Coord {
	out := make([]grid.Coord, len(triggers))
	for i, t := range triggers {
		out[i] = t.Cell
	}
	return out
}
