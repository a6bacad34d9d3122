package hints

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

// rowMissingOneGrid builds a stack whose top grid has row 0 filled
// with 1..8 as givens in columns 0..7, column 8 empty: a textbook
// naked single for 9 (spec.md §8 scenario S1).
func rowMissingOneGrid() *stack.Stack {
	st := stack.New()
	g := st.Top()
	for c := 0; c < 8; c++ {
		g.SetSymbol(0, c, c+1, true)
	}
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			g.FillCell(r, c, true)
		}
	}
	g.RemoveConflicts()
	return st
}

func TestHintFindsNakedSingle(t *testing.T) {
	st := rowMissingOneGrid()

	d := Hint(st)
	if d == nil {
		t.Fatal("expected a hint")
	}
	if d.Kind != NakedSingle {
		t.Fatalf("expected NakedSingle, got %v", d.Kind)
	}
	if d.Action != Set {
		t.Fatal("expected a Set action")
	}
	if len(d.Hints) != 1 || d.Hints[0] != (grid.Coord{Row: 0, Col: 8}) {
		t.Fatalf("expected hint at (0,8), got %v", d.Hints)
	}
	if d.Symbols[0] != 9 {
		t.Fatalf("expected symbol 9, got %v", d.Symbols)
	}

	// The caller's own snapshot must carry the visual attributes but
	// otherwise be unchanged except for the HINT/TRIGGER state flags.
	after := st.Top()
	if after.Cell(0, 8).State&grid.Hint == 0 {
		t.Fatal("expected (0,8) flagged HINT")
	}
}

func TestHintReturnsNilOnSolvedGrid(t *testing.T) {
	st := stack.New()
	g := st.Top()
	solution := [9][9]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.SetSymbol(r, c, solution[r][c], true)
		}
	}
	if d := Hint(st); d != nil {
		t.Fatalf("expected no hint on a solved grid, got %v", d.Kind)
	}
}

func TestHintLeavesStackPointerUnchanged(t *testing.T) {
	st := rowMissingOneGrid()
	spBefore := st.SP()
	Hint(st)
	if st.SP() != spBefore {
		t.Fatalf("expected sp unchanged by Hint, got %d want %d", st.SP(), spBefore)
	}
}

func TestDetectHiddenSingleInBox(t *testing.T) {
	g := grid.New()
	// Every box-0 cell but (0,2) has digit 1 eliminated from its
	// pencils by outside constraints; (0,2) keeps three candidates
	// including 1, so it is a hidden single, not a naked one.
	boxCellsExceptTarget := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, rc := range boxCellsExceptTarget {
		g.SetCandidates(rc[0], rc[1], bitset.FromDigits([]int{2, 3, 4, 6, 7, 8}))
	}
	g.SetCandidates(0, 2, bitset.FromDigits([]int{1, 5, 9}))

	d := detectHiddenSingle(g)
	if d == nil {
		t.Fatal("expected a hidden single")
	}
	if d.Action != Set || d.Symbols[0] != 1 {
		t.Fatalf("expected Set of symbol 1, got action=%v symbols=%v", d.Action, d.Symbols)
	}
	if len(d.Hints) != 1 || d.Hints[0] != (grid.Coord{Row: 0, Col: 2}) {
		t.Fatalf("expected hint at (0,2), got %v", d.Hints)
	}
}
