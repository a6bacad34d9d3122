// Package grid implements the 9x9 Sudoku grid: cells, candidate masks,
// peer/unit lookups and the conflict-propagation pass the solver and
// hint engine build on.
//
// For the candidate bitmask itself, see package bitset.
package grid

import "github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"

const (
	Size       = 9
	BoxSize    = 3
	TotalCells = 81
)

// CellState is a set of independent flags describing a cell's role and
// current rendering attributes. Given/Selected/InError are durable;
// the rest are transient hint-rendering attributes cleared on every
// state change unrelated to the current hint (see ClearTransientAttrs).
type CellState uint16

const (
	Given CellState = 1 << iota
	Selected
	InError
	Hint
	ChainHead
	WeakTrigger
	Trigger
	AlternateTrigger
)

const transientMask = Hint | ChainHead | WeakTrigger | Trigger | AlternateTrigger

// Cell holds a candidate mask, its cached population count, and state
// flags. count == popcount(candidates) is an invariant maintained by
// every mutator in this file (property 1 of spec.md §8).
type Cell struct {
	Candidates bitset.Mask
	Count      uint8
	State      CellState
}

// IsSingle reports whether the cell holds exactly one candidate.
func (c Cell) IsSingle() bool { return c.Count == 1 }

// Symbol returns the cell's single symbol, if it has exactly one.
func (c Cell) Symbol() (int, bool) { return c.Candidates.Only() }

func (c *Cell) setCandidates(m bitset.Mask) {
	c.Candidates = m
	c.Count = uint8(bitset.PopCount(m))
}

// Coord is a (row, col) grid position, 0 ≤ row,col < Size.
type Coord struct {
	Row, Col int
}

// Grid is the 9x9 array of cells plus the current selection.
type Grid struct {
	Cells     [TotalCells]Cell
	Selection *Coord
}

// New returns an empty grid (every cell has no candidates, no state).
func New() *Grid {
	return &Grid{}
}

func idx(r, c int) int { return r*Size + c }

// BoxOf returns the box number (0..8, row-major) containing (r, c).
func BoxOf(r, c int) int {
	return (r/BoxSize)*BoxSize + c/BoxSize
}

// Cell returns the cell at (r, c).
func (g *Grid) Cell(r, c int) *Cell {
	return &g.Cells[idx(r, c)]
}

// CellAt returns the cell at flat index i (0..80).
func (g *Grid) CellAt(i int) *Cell {
	return &g.Cells[i]
}

// RowIndices returns the 9 flat indices of row r.
func RowIndices(r int) [Size]int {
	var out [Size]int
	for c := 0; c < Size; c++ {
		out[c] = idx(r, c)
	}
	return out
}

// ColIndices returns the 9 flat indices of column c.
func ColIndices(c int) [Size]int {
	var out [Size]int
	for r := 0; r < Size; r++ {
		out[r] = idx(r, c)
	}
	return out
}

// BoxIndices returns the 9 flat indices of box b (0..8, row-major).
func BoxIndices(b int) [Size]int {
	var out [Size]int
	boxRow, boxCol := (b/BoxSize)*BoxSize, (b%BoxSize)*BoxSize
	i := 0
	for r := boxRow; r < boxRow+BoxSize; r++ {
		for c := boxCol; c < boxCol+BoxSize; c++ {
			out[i] = idx(r, c)
			i++
		}
	}
	return out
}

// Peers holds, for each flat cell index, every other cell sharing its
// row, column or box (precomputed once, mirrors the teacher's
// human/sdk.go Peers/RowPeers/ColPeers/BoxPeers tables).
var (
	Peers    [TotalCells][]int
	RowPeers [TotalCells][]int
	ColPeers [TotalCells][]int
	BoxPeers [TotalCells][]int
)

func init() {
	for i := 0; i < TotalCells; i++ {
		r, c := i/Size, i%Size
		b := BoxOf(r, c)

		seen := make(map[int]bool)
		for _, j := range RowIndices(r) {
			if j != i {
				RowPeers[i] = append(RowPeers[i], j)
				seen[j] = true
			}
		}
		for _, j := range ColIndices(c) {
			if j != i {
				ColPeers[i] = append(ColPeers[i], j)
				seen[j] = true
			}
		}
		for _, j := range BoxIndices(b) {
			if j != i {
				BoxPeers[i] = append(BoxPeers[i], j)
				seen[j] = true
			}
		}
		for j := range seen {
			Peers[i] = append(Peers[i], j)
		}
	}
}

// Sees reports whether two distinct cells share a row, column or box.
func Sees(i, j int) bool {
	if i == j {
		return false
	}
	ri, ci := i/Size, i%Size
	rj, cj := j/Size, j%Size
	return ri == rj || ci == cj || BoxOf(ri, ci) == BoxOf(rj, cj)
}

// SetSymbol makes the cell at (r,c) a single-symbol cell. Precondition:
// the cell is not Given; violating this is a programmer error (panic),
// per spec.md §7.
func (g *Grid) SetSymbol(r, c, s int, given bool) {
	cell := g.Cell(r, c)
	if cell.State&Given != 0 {
		panic("grid: cannot mutate a given cell")
	}
	cell.setCandidates(bitset.Mask(0).Set(s))
	if given {
		cell.State |= Given
	}
}

// AddCandidate adds s as a candidate of (r,c).
func (g *Grid) AddCandidate(r, c, s int) {
	cell := g.mutableCell(r, c)
	cell.setCandidates(cell.Candidates.Set(s))
}

// ToggleCandidate flips whether s is a candidate of (r,c). Fails (panics)
// if clearing the last candidate of a non-given cell would leave it
// with zero candidates while already a given single is never toggled.
func (g *Grid) ToggleCandidate(r, c, s int) {
	cell := g.mutableCell(r, c)
	if cell.Candidates.Has(s) {
		g.removeCandidateChecked(cell, s)
	} else {
		cell.setCandidates(cell.Candidates.Set(s))
	}
}

// RemoveCandidates clears every digit in mask from (r,c).
func (g *Grid) RemoveCandidates(r, c int, mask bitset.Mask) {
	cell := g.mutableCell(r, c)
	next := cell.Candidates.Subtract(mask)
	if next.IsEmpty() && cell.State&Given == 0 && !cell.IsSingle() {
		panic("grid: removing candidates would leave a non-given cell with none")
	}
	cell.setCandidates(next)
}

// SetCandidates replaces the candidate mask of (r,c) outright.
func (g *Grid) SetCandidates(r, c int, mask bitset.Mask) {
	cell := g.mutableCell(r, c)
	cell.setCandidates(mask)
}

func (g *Grid) removeCandidateChecked(cell *Cell, s int) {
	next := cell.Candidates.Clear(s)
	if next.IsEmpty() && cell.State&Given == 0 {
		panic("grid: cannot clear the last candidate of a non-given cell")
	}
	cell.setCandidates(next)
}

func (g *Grid) mutableCell(r, c int) *Cell {
	cell := g.Cell(r, c)
	if cell.State&Given != 0 {
		panic("grid: cannot mutate a given cell")
	}
	return cell
}

// Erase zeroes the cell at (r,c), preserving the Selected flag.
func (g *Grid) Erase(r, c int) {
	cell := g.mutableCell(r, c)
	selected := cell.State & Selected
	cell.setCandidates(0)
	cell.State = selected
}

// Select updates the current selection. Passing nil clears it. When a
// cell becomes selected, IN_ERROR is recomputed across the grid
// relative to that cell (spec.md §3).
func (g *Grid) Select(pos *Coord) {
	for i := range g.Cells {
		g.Cells[i].State &^= InError
	}
	g.Selection = pos
	if pos == nil {
		return
	}
	cell := g.Cell(pos.Row, pos.Col)
	cell.State |= Selected
	sym, ok := cell.Symbol()
	if !ok {
		return
	}
	i := idx(pos.Row, pos.Col)
	for _, p := range Peers[i] {
		peer := &g.Cells[p]
		if s, ok := peer.Symbol(); ok && s == sym {
			cell.State |= InError
			peer.State |= InError
		}
	}
}

// CountSingles returns the number of solved (single-candidate) cells.
func (g *Grid) CountSingles() int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].IsSingle() {
			n++
		}
	}
	return n
}

// IsSolved reports whether every symbol appears as a single in exactly
// 9 cells (spec.md §4.2).
func (g *Grid) IsSolved() bool {
	var counts [10]int
	for i := range g.Cells {
		if s, ok := g.Cells[i].Symbol(); ok {
			counts[s]++
		}
	}
	for s := 1; s <= 9; s++ {
		if counts[s] != 9 {
			return false
		}
	}
	return true
}

// SinglesMatching returns every single cell whose symbol is in mask.
func (g *Grid) SinglesMatching(mask bitset.Mask) []Coord {
	var out []Coord
	for i := range g.Cells {
		if s, ok := g.Cells[i].Symbol(); ok && mask.Has(s) {
			out = append(out, Coord{Row: i / Size, Col: i % Size})
		}
	}
	return out
}

// FillCell populates the candidates of an empty, non-given cell. If
// avoidConflict is true, the initial candidates exclude symbols already
// single in the same row/col/box; otherwise every digit 1-9 is added.
func (g *Grid) FillCell(r, c int, avoidConflict bool) {
	cell := g.Cell(r, c)
	if cell.State&Given != 0 || cell.IsSingle() {
		return
	}
	mask := bitset.Full
	if avoidConflict {
		i := idx(r, c)
		for _, p := range Peers[i] {
			if s, ok := g.Cells[p].Symbol(); ok {
				mask = mask.Clear(s)
			}
		}
	}
	cell.setCandidates(mask)
}

// RemoveConflicts propagates every single-symbol cell by removing that
// symbol from its row/col/box peers, repeating until a fixed point.
// Returns false if a peer's candidates would become empty (the grid
// cannot be completed); this is a normal search outcome, not an error
// (spec.md §4.2, §7).
func (g *Grid) RemoveConflicts() bool {
	queue := make([]int, 0, TotalCells)
	for i := range g.Cells {
		if s, ok := g.Cells[i].Symbol(); ok {
			_ = s
			queue = append(queue, i)
		}
	}
	enqueued := make(map[int]bool, TotalCells)
	for _, i := range queue {
		enqueued[i] = true
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		enqueued[i] = false

		sym, ok := g.Cells[i].Symbol()
		if !ok {
			continue
		}
		for _, p := range Peers[i] {
			peer := &g.Cells[p]
			if !peer.Candidates.Has(sym) {
				continue
			}
			if peer.IsSingle() {
				return false
			}
			next := peer.Candidates.Clear(sym)
			if next.IsEmpty() {
				return false
			}
			peer.setCandidates(next)
			if peer.IsSingle() && !enqueued[p] {
				queue = append(queue, p)
				enqueued[p] = true
			}
		}
	}
	return true
}

// ClearTransientAttrs clears every transient rendering attribute
// (HINT/TRIGGER/WEAK_TRIGGER/ALTERNATE_TRIGGER/CHAIN_HEAD) on every
// cell. Called whenever the core signals a state change unrelated to
// the current hint (spec.md §3).
func (g *Grid) ClearTransientAttrs() {
	for i := range g.Cells {
		g.Cells[i].State &^= transientMask
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Cells: g.Cells}
	if g.Selection != nil {
		sel := *g.Selection
		out.Selection = &sel
	}
	return out
}
