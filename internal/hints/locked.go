package hints

import "github.com/jrm-1535/sudoku-lib-sub000/internal/grid"

// detectLockedCandidate finds locked-candidate eliminations within a
// box/band or box/stack intersection (spec.md §4.6 step 3). Grounded
// on the teacher's detectPointingPair (Type A: a box confines a symbol
// to one row/col, eliminate it from the rest of that row/col) and
// detectBoxLineReduction (Type B: a row/col confines a symbol to one
// box, eliminate it from the rest of that box), both in
// techniques_simple.go.
func detectLockedCandidate(g *grid.Grid) *Descriptor {
	if d := detectPointingType(g); d != nil {
		return d
	}
	return detectClaimingType(g)
}

// detectPointingType is locked-candidate Type A.
func detectPointingType(g *grid.Grid) *Descriptor {
	for box := 0; box < grid.Size; box++ {
		cells := boxCells(box)
		for sym := 1; sym <= 9; sym++ {
			var positions []int
			for _, idx := range cells {
				cell := g.CellAt(idx)
				if !cell.IsSingle() && cell.Candidates.Has(sym) {
					positions = append(positions, idx)
				}
			}
			if len(positions) < 2 || len(positions) > 3 {
				continue
			}
			if d := pointingAlongRow(g, positions, sym); d != nil {
				return d
			}
			if d := pointingAlongCol(g, positions, sym); d != nil {
				return d
			}
		}
	}
	return nil
}

func pointingAlongRow(g *grid.Grid, positions []int, sym int) *Descriptor {
	row := positions[0] / grid.Size
	for _, p := range positions[1:] {
		if p/grid.Size != row {
			return nil
		}
	}
	var elims []Elimination
	for _, idx := range rowCells(row) {
		if containsInt(positions, idx) {
			continue
		}
		if g.CellAt(idx).Candidates.Has(sym) {
			elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: sym})
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &Descriptor{
		Kind:         LockedCandidate,
		Action:       Remove,
		Symbols:      []int{sym},
		Hints:        elimCells(elims),
		Candidates:   coordsOf(positions),
		Eliminations: elims,
		Triggers:     patternTriggers(positions),
	}
}

func pointingAlongCol(g *grid.Grid, positions []int, sym int) *Descriptor {
	col := positions[0] % grid.Size
	for _, p := range positions[1:] {
		if p%grid.Size != col {
			return nil
		}
	}
	var elims []Elimination
	for _, idx := range colCells(col) {
		if containsInt(positions, idx) {
			continue
		}
		if g.CellAt(idx).Candidates.Has(sym) {
			elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: sym})
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &Descriptor{
		Kind:         LockedCandidate,
		Action:       Remove,
		Symbols:      []int{sym},
		Hints:        elimCells(elims),
		Candidates:   coordsOf(positions),
		Eliminations: elims,
		Triggers:     patternTriggers(positions),
	}
}

// detectClaimingType is locked-candidate Type B.
func detectClaimingType(g *grid.Grid) *Descriptor {
	for unit := 0; unit < grid.Size; unit++ {
		if d := claimingInLine(g, rowCells(unit), func(idx int) int { return grid.BoxOf(idx/grid.Size, idx%grid.Size) }); d != nil {
			return d
		}
		if d := claimingInLine(g, colCells(unit), func(idx int) int { return grid.BoxOf(idx/grid.Size, idx%grid.Size) }); d != nil {
			return d
		}
	}
	return nil
}

func claimingInLine(g *grid.Grid, line []int, boxOf func(int) int) *Descriptor {
	for sym := 1; sym <= 9; sym++ {
		var positions []int
		for _, idx := range line {
			cell := g.CellAt(idx)
			if !cell.IsSingle() && cell.Candidates.Has(sym) {
				positions = append(positions, idx)
			}
		}
		if len(positions) < 2 || len(positions) > 3 {
			continue
		}
		box := boxOf(positions[0])
		same := true
		for _, p := range positions[1:] {
			if boxOf(p) != box {
				same = false
				break
			}
		}
		if !same {
			continue
		}
		var elims []Elimination
		for _, idx := range boxCells(box) {
			if containsInt(positions, idx) {
				continue
			}
			if g.CellAt(idx).Candidates.Has(sym) {
				elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: sym})
			}
		}
		if len(elims) == 0 {
			continue
		}
		return &Descriptor{
			Kind:         LockedCandidate,
			Action:       Remove,
			Symbols:      []int{sym},
			Hints:        elimCells(elims),
			Candidates:   coordsOf(positions),
			Eliminations: elims,
			Triggers:     patternTriggers(positions),
		}
	}
	return nil
}

func patternTriggers(positions []int) []Trigger {
	out := make([]Trigger, len(positions))
	for i, idx := range positions {
		out[i] = Trigger{Cell: coordOf(idx), Flavor: Weak}
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func coordOf(idx int) grid.Coord {
	return grid.Coord{Row: idx / grid.Size, Col: idx % grid.Size}
}

func coordsOf(idxs []int) []grid.Coord {
	out := make([]grid.Coord, len(idxs))
	for i, idx := range idxs {
		out[i] = coordOf(idx)
	}
	return out
}

func elimCells(elims []Elimination) []grid.Coord {
	out := make([]grid.Coord, len(elims))
	for i, e := range elims {
		out[i] = e.Cell
	}
	return out
}
