package facade

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

func TestToggleEnterGameFlipsInitAndEnter(t *testing.T) {
	g := New(UICallbacks{})
	if g.State() != Init {
		t.Fatalf("expected Init, got %v", g.State())
	}
	if err := g.ToggleEnterGame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != Enter {
		t.Fatalf("expected Enter, got %v", g.State())
	}
	if err := g.ToggleEnterGame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != Init {
		t.Fatalf("expected Init, got %v", g.State())
	}
}

func TestRandomGameEntersStarted(t *testing.T) {
	g := New(UICallbacks{})
	seed := int64(7)
	if err := g.RandomGame(&seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != Started {
		t.Fatalf("expected Started, got %v", g.State())
	}
	if g.Grid().CountSingles() == 0 {
		t.Fatal("expected some givens")
	}
}

func TestPickGameRejectsOutOfRange(t *testing.T) {
	g := New(UICallbacks{})
	if err := g.PickGame("0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != Init {
		t.Fatal("out-of-range pick_game should be a no-op")
	}
	if err := g.PickGame("not-a-number"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != Init {
		t.Fatal("invalid pick_game string should be a no-op")
	}
}

func TestCommitGameRequiresUniqueSolution(t *testing.T) {
	g := New(UICallbacks{})
	if err := g.ToggleEnterGame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A grid with no givens at all has many solutions.
	if err := g.CommitGame("test"); err == nil {
		t.Fatal("expected commit to fail on a non-unique grid")
	}
	if g.State() != Enter {
		t.Fatal("failed commit should leave state in Enter")
	}
}

func TestEnterSymbolGuardsGivenCells(t *testing.T) {
	g := New(UICallbacks{})
	seed := int64(3)
	if err := g.RandomGame(&seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Find a given cell and assert it cannot be selected, so EnterSymbol
	// (which acts on the selection) can never reach it.
	gr := g.Grid()
	found := false
	for r := 0; r < 9 && !found; r++ {
		for c := 0; c < 9 && !found; c++ {
			cell := gr.Cell(r, c)
			if cell.State&grid.Given != 0 {
				if err := g.SetSelection(r, c); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if g.Grid().Selection != nil {
					t.Fatal("selecting a given cell should be a no-op")
				}
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected at least one given cell")
	}
}

func TestUndoRestoresPriorGrid(t *testing.T) {
	g := New(UICallbacks{})
	seed := int64(11)
	if err := g.RandomGame(&seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grid := g.Grid()
	r, c := -1, -1
	for row := 0; row < 9 && r < 0; row++ {
		for col := 0; col < 9; col++ {
			if !grid.Cell(row, col).IsSingle() {
				r, c = row, col
				break
			}
		}
	}
	if r < 0 {
		t.Fatal("expected at least one empty cell")
	}
	if err := g.SetSelection(r, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := g.Grid().Cell(r, c).Candidates
	if err := g.EnterSymbol(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Grid().Cell(r, c).Candidates == before {
		t.Fatal("expected EnterSymbol to change the cell")
	}
	if err := g.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Grid().Cell(r, c).Candidates != before {
		t.Fatal("expected Undo to restore the prior candidates")
	}
}
