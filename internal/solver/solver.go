// Package solver implements the backtracking solver (C4): count
// solutions up to two, or find one. It operates on a working snapshot
// pushed onto the caller's stack.Stack and always returns the caller's
// visible state untouched.
package solver

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

// Result is the outcome of counting solutions, capped at 2.
type Result int

const (
	Unsolvable Result = 0
	Unique     Result = 1
	Multiple   Result = 2
)

// SolveGrid counts solutions of the grid currently at the top of st,
// capped at 2 when findAllUpTo2 is true (spec.md §4.4). The caller's
// stack is restored exactly to its pre-call state.
func SolveGrid(st *stack.Stack, findAllUpTo2 bool) Result {
	limit := 1
	if findAllUpTo2 {
		limit = 2
	}
	low := st.SetLowWaterMark()
	defer st.ClearLowWaterMark()
	defer st.SetSP(low)

	st.Push()
	count := 0
	search(st, limit, &count)

	switch {
	case count == 0:
		return Unsolvable
	case count == 1:
		return Unique
	default:
		return Multiple
	}
}

// CheckCurrentGrid is solve_grid(true): 0, 1 or ≥2 (returned as 2).
func CheckCurrentGrid(st *stack.Stack) Result {
	return SolveGrid(st, true)
}

// FindOneSolution reports whether the grid at the top of st has at
// least one solution, without exposing it (spec.md §4.4 shorthand
// wrapper). Use FindSolution when the solved grid itself is needed
// (e.g. the facade's solve-from-current-position operation).
func FindOneSolution(st *stack.Stack) bool {
	return SolveGrid(st, false) != Unsolvable
}

// FindSolution searches for a single solution to the grid at the top
// of st and, if found, returns a standalone copy of it. The caller's
// stack is restored exactly to its pre-call state either way — the
// solver never edits the user-visible snapshot (spec.md §4.4).
func FindSolution(st *stack.Stack) (*grid.Grid, bool) {
	low := st.SetLowWaterMark()
	defer st.ClearLowWaterMark()
	defer st.SetSP(low)

	st.Push()
	count := 0
	search(st, 1, &count)
	if count < 1 {
		return nil, false
	}
	return st.Top().Clone(), true
}

// search runs one level of the backtracking search: propagate, apply
// hidden singles, and either report a solution or branch on the
// minimum-candidate cell. It returns true once count has reached
// limit, signalling every enclosing call to stop without popping its
// own push — the winning path stays on the stack for the caller to
// read via st.Top().
func search(st *stack.Stack, limit int, count *int) bool {
	g := st.Top()
	if !g.RemoveConflicts() {
		return false
	}
	for applyHiddenSingles(g) {
		if !g.RemoveConflicts() {
			return false
		}
	}

	if g.CountSingles() == grid.TotalCells {
		*count++
		return *count >= limit
	}

	cellIdx, ok := pickFewestCandidatesCell(g)
	if !ok {
		return false
	}
	r, c := cellIdx/grid.Size, cellIdx%grid.Size
	mask := g.CellAt(cellIdx).Candidates

	for {
		digitIdx, rest, ok := bitset.ExtractLowest(mask)
		if !ok {
			return false
		}
		mask = rest

		st.Push()
		st.Top().SetSymbol(r, c, digitIdx+1, false)
		if search(st, limit, count) {
			return true
		}
		if _, err := st.Pop(); err != nil {
			panic(err)
		}
	}
}

// pickFewestCandidatesCell returns the flat index of an empty cell
// with the fewest remaining candidates (ties broken by lowest index:
// the choice is immaterial to correctness, only to search order, so
// the solver stays deterministic and testable).
func pickFewestCandidatesCell(g *grid.Grid) (int, bool) {
	best := -1
	bestCount := 10
	for i := 0; i < grid.TotalCells; i++ {
		cell := g.CellAt(i)
		if cell.IsSingle() || cell.Count == 0 {
			continue
		}
		if int(cell.Count) < bestCount {
			best, bestCount = i, int(cell.Count)
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// applyHiddenSingles assigns every symbol that has exactly one
// possible cell left in some row, column or box. Returns whether any
// assignment was made.
func applyHiddenSingles(g *grid.Grid) bool {
	changed := false
	for unit := 0; unit < grid.Size; unit++ {
		rows := grid.RowIndices(unit)
		cols := grid.ColIndices(unit)
		boxes := grid.BoxIndices(unit)
		changed = scanUnitHiddenSingles(g, rows[:]) || changed
		changed = scanUnitHiddenSingles(g, cols[:]) || changed
		changed = scanUnitHiddenSingles(g, boxes[:]) || changed
	}
	return changed
}

func scanUnitHiddenSingles(g *grid.Grid, cells []int) bool {
	changed := false
	for digit := 1; digit <= 9; digit++ {
		pos := -1
		count := 0
		for _, idx := range cells {
			cell := g.CellAt(idx)
			if cell.IsSingle() {
				if s, _ := cell.Symbol(); s == digit {
					count = -1 // already solved elsewhere in the unit
					break
				}
				continue
			}
			if cell.Candidates.Has(digit) {
				count++
				pos = idx
			}
		}
		if count == 1 {
			r, c := pos/grid.Size, pos%grid.Size
			g.SetSymbol(r, c, digit, false)
			changed = true
		}
	}
	return changed
}
