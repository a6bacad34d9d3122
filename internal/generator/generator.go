// Package generator builds a uniquely-solvable puzzle by adding random
// givens to an empty grid until solver.SolveGrid confirms uniqueness
// (C5, spec.md §4.5), grounded on the teacher's dp.GenerateFullGrid /
// CarveGivens random-fill-then-check idiom (internal/sudoku/dp/solver.go),
// adapted to build up from empty rather than carve down from full.
package generator

import (
	"errors"
	"math/rand"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/solver"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

// MaxTrials bounds the random add-a-given loop (spec.md §4.5 step 3).
const MaxTrials = 1000

// ErrExhausted is returned when MaxTrials random trials fail to reach
// a uniquely-solvable grid; the caller should retry with a new seed.
var ErrExhausted = errors.New("generator: exceeded safety bound without reaching a unique puzzle")

type given struct {
	row, col, symbol int
}

// Generate seeds an RNG from seed and returns a grid with a set of
// givens that uniquely determine a solution, following spec.md §4.5:
// repeatedly pick a random empty cell and symbol, tentatively make it
// a given, and ask the solver whether the grid is now unsolvable (undo
// and retry), uniquely solvable (done) or still multiply solvable
// (keep going). Each trial rebuilds the working grid from the current
// set of givens, so a rejected trial can never leave stale candidate
// state behind.
func Generate(seed int64) (*grid.Grid, error) {
	rng := rand.New(rand.NewSource(seed))
	var givens []given

	for trial := 0; trial < MaxTrials; trial++ {
		g := build(givens)
		r, c := rng.Intn(grid.Size), rng.Intn(grid.Size)
		cell := g.Cell(r, c)
		if cell.IsSingle() {
			continue
		}
		symbol := 1 + rng.Intn(9)
		if !cell.Candidates.Has(symbol) {
			continue
		}

		candidate := append(append([]given(nil), givens...), given{r, c, symbol})
		g = build(candidate)

		st := stack.New()
		*st.Top() = *g

		switch solver.CheckCurrentGrid(st) {
		case solver.Unique:
			// Return the givens with conflict-free candidates, not the
			// propagated working grid, which may already be solved.
			puzzle := grid.New()
			for _, gv := range candidate {
				puzzle.SetSymbol(gv.row, gv.col, gv.symbol, true)
			}
			for i := range puzzle.Cells {
				puzzle.FillCell(i/grid.Size, i%grid.Size, true)
			}
			return scramble(rng, puzzle), nil
		case solver.Unsolvable:
			// dead end: drop this trial's given and retry
		case solver.Multiple:
			givens = candidate
		}
	}
	return nil, ErrExhausted
}

// scramble applies the classic band/row/column/digit symmetries that
// preserve a Sudoku grid's validity and solution count, so two puzzles
// generated from nearby seeds don't look alike (grounded on
// original_source/gen.c's randomly_transpose, reworked here as row and
// column band/within-band permutations plus a digit relabeling rather
// than the original's specific transpose/reflect operation list).
func scramble(rng *rand.Rand, g *grid.Grid) *grid.Grid {
	rows := permutedLineOrder(rng)
	cols := permutedLineOrder(rng)
	digits := rng.Perm(9)

	out := grid.New()
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			src := g.Cell(rows[r], cols[c])
			dst := out.Cell(r, c)
			dst.Candidates = remapDigits(src.Candidates, digits)
			dst.Count = uint8(bitset.PopCount(dst.Candidates))
			dst.State = src.State &^ transientCellState
		}
	}
	return out
}

// transientCellState is every rendering flag that must not survive a
// scramble (it describes the pre-scramble layout, not the puzzle).
const transientCellState = grid.Selected | grid.InError | grid.Hint |
	grid.ChainHead | grid.WeakTrigger | grid.Trigger | grid.AlternateTrigger

// permutedLineOrder returns a random permutation of 0..8 built from a
// random band order (0,1,2) each internally shuffled, the row/column
// symmetry that keeps every box a valid 3x3 block.
func permutedLineOrder(rng *rand.Rand) [grid.Size]int {
	var order [grid.Size]int
	i := 0
	for _, band := range rng.Perm(3) {
		for _, within := range rng.Perm(3) {
			order[i] = band*3 + within
			i++
		}
	}
	return order
}

// remapDigits relabels every digit in m through perm (perm[d-1] gives
// the 0-based replacement for digit d).
func remapDigits(m bitset.Mask, perm []int) bitset.Mask {
	var out bitset.Mask
	for d := 1; d <= 9; d++ {
		if m.Has(d) {
			out = out.Set(perm[d-1] + 1)
		}
	}
	return out
}

// build constructs a fresh grid from a list of givens: every given is
// set first, then every remaining cell is filled with the candidates
// consistent with the current givens, and conflicts are propagated.
func build(givens []given) *grid.Grid {
	g := grid.New()
	for _, gv := range givens {
		g.SetSymbol(gv.row, gv.col, gv.symbol, true)
	}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			g.FillCell(r, c, true)
		}
	}
	g.RemoveConflicts()
	return g
}
