package hints

import "github.com/jrm-1535/sudoku-lib-sub000/internal/grid"

// detectNakedSingle finds a non-given cell already pruned down to one
// candidate, tried first since every later technique assumes pencils
// are free of already-solved symbols (spec.md §4.6 step 1). Grounded
// on the teacher's detectNakedSingle (techniques_simple.go).
func detectNakedSingle(g *grid.Grid) *Descriptor {
	for i := 0; i < grid.TotalCells; i++ {
		cell := g.CellAt(i)
		if cell.State&grid.Given != 0 || !cell.IsSingle() {
			continue
		}
		sym, _ := cell.Symbol()
		r, c := i/grid.Size, i%grid.Size
		pos := grid.Coord{Row: r, Col: c}
		return &Descriptor{
			Kind:      NakedSingle,
			Action:    Set,
			Symbols:   []int{sym},
			Hints:     []grid.Coord{pos},
			Selection: &pos,
			Triggers:  solvedPeerTriggers(g, i, sym),
		}
	}
	return nil
}

// solvedPeerTriggers collects, deduplicated by symbol, every peer of i
// that is itself solved with a symbol other than sym.
func solvedPeerTriggers(g *grid.Grid, i, sym int) []Trigger {
	seen := make(map[int]bool)
	var out []Trigger
	for _, p := range grid.Peers[i] {
		peer := g.CellAt(p)
		if s, ok := peer.Symbol(); ok && s != sym && !seen[s] {
			seen[s] = true
			out = append(out, Trigger{Cell: grid.Coord{Row: p / grid.Size, Col: p % grid.Size}, Flavor: Regular})
		}
	}
	return out
}

// detectHiddenSingle finds a symbol confined to one cell within a row,
// column or box (spec.md §4.6 step 2). Grounded on the teacher's
// detectHiddenSingle (techniques_simple.go), generalized across all
// three unit kinds via grid's *Indices helpers.
func detectHiddenSingle(g *grid.Grid) *Descriptor {
	for unit := 0; unit < grid.Size; unit++ {
		if d := hiddenSingleInUnit(g, rowCells(unit)); d != nil {
			return d
		}
		if d := hiddenSingleInUnit(g, colCells(unit)); d != nil {
			return d
		}
		if d := hiddenSingleInUnit(g, boxCells(unit)); d != nil {
			return d
		}
	}
	return nil
}

func hiddenSingleInUnit(g *grid.Grid, cells []int) *Descriptor {
	for sym := 1; sym <= 9; sym++ {
		pos := -1
		count := 0
		for _, idx := range cells {
			cell := g.CellAt(idx)
			if s, ok := cell.Symbol(); ok {
				if s == sym {
					count = -1
					break
				}
				continue
			}
			if cell.Candidates.Has(sym) {
				count++
				pos = idx
			}
		}
		if count != 1 {
			continue
		}
		r, c := pos/grid.Size, pos%grid.Size
		target := grid.Coord{Row: r, Col: c}
		return &Descriptor{
			Kind:       HiddenSingle,
			Action:     Set,
			Symbols:    []int{sym},
			Hints:      []grid.Coord{target},
			Selection:  &target,
			Candidates: unitCoords(cells),
			Triggers:   hiddenSingleTriggers(g, cells, pos, sym),
		}
	}
	return nil
}

// hiddenSingleTriggers explains why every other cell of the unit
// cannot hold sym: for each excluded cell, find a peer outside the
// unit solved with sym (a Regular trigger) and mark the excluded cell
// itself as a Weak trigger (it carries no solved symbol of its own,
// but combines with the regular trigger to forbid sym).
func hiddenSingleTriggers(g *grid.Grid, cells []int, pos, sym int) []Trigger {
	inUnit := make(map[int]bool, len(cells))
	for _, idx := range cells {
		inUnit[idx] = true
	}
	seen := make(map[int]bool)
	var out []Trigger
	for _, idx := range cells {
		if idx == pos {
			continue
		}
		cell := g.CellAt(idx)
		if cell.IsSingle() || cell.Candidates.Has(sym) {
			continue
		}
		for _, p := range grid.Peers[idx] {
			if inUnit[p] {
				continue
			}
			peer := g.CellAt(p)
			if s, ok := peer.Symbol(); ok && s == sym {
				if !seen[p] {
					seen[p] = true
					out = append(out, Trigger{Cell: grid.Coord{Row: p / grid.Size, Col: p % grid.Size}, Flavor: Regular})
				}
				out = append(out, Trigger{Cell: grid.Coord{Row: idx / grid.Size, Col: idx % grid.Size}, Flavor: Weak})
				break
			}
		}
	}
	return out
}

func rowCells(r int) []int {
	idx := grid.RowIndices(r)
	return idx[:]
}

func colCells(c int) []int {
	idx := grid.ColIndices(c)
	return idx[:]
}

func boxCells(b int) []int {
	idx := grid.BoxIndices(b)
	return idx[:]
}

func unitCoords(cells []int) []grid.Coord {
	out := make([]grid.Coord, len(cells))
	for i, idx := range cells {
		out[i] = grid.Coord{Row: idx / grid.Size, Col: idx % grid.Size}
	}
	return out
}
