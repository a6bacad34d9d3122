package persistence

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// TestRoundTripGivens covers spec.md §8 scenario S6: save the grid
// after S1 (row 0 givens 1..8 in columns 0..7, cell (0,8) empty),
// reload, and check cell (0,8) is empty while (0,0..7) are given.
func TestRoundTripGivens(t *testing.T) {
	g := grid.New()
	for c := 0; c < 8; c++ {
		g.SetSymbol(0, c, c+1, true)
	}

	text := Serialize(g, 0)

	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for c := 0; c < 8; c++ {
		cell := doc.Grid.Cell(0, c)
		sym, ok := cell.Symbol()
		if !ok || sym != c+1 {
			t.Fatalf("cell (0,%d): got %v, want given %d", c, cell, c+1)
		}
		if cell.State&grid.Given == 0 {
			t.Fatalf("cell (0,%d) should be given", c)
		}
	}
	if !doc.Grid.Cell(0, 8).Candidates.IsEmpty() {
		t.Fatal("cell (0,8) should remain empty")
	}
}

func TestRoundTripWithPencilMarks(t *testing.T) {
	g := grid.New()
	g.AddCandidate(2, 3, 4)
	g.AddCandidate(2, 3, 7)
	g.AddCandidate(2, 3, 9)

	text := Serialize(g, 42)
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.ElapsedSecond != 42 {
		t.Fatalf("elapsed seconds: got %d, want 42", doc.ElapsedSecond)
	}
	cell := doc.Grid.Cell(2, 3)
	for _, d := range []int{4, 7, 9} {
		if !cell.Candidates.Has(d) {
			t.Fatalf("expected candidate %d to survive round trip", d)
		}
	}
	if cell.Candidates.Has(1) {
		t.Fatal("unexpected candidate 1")
	}
}

func TestParseCurrentRowAndColumnCommands(t *testing.T) {
	// "R 3" then "2 = 5" sets cell (row=2, col=1) to given 5.
	doc, err := Parse("R 3\n2 = 5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sym, ok := doc.Grid.Cell(2, 1).Symbol()
	if !ok || sym != 5 {
		t.Fatalf("cell (2,1): got %v, want given 5", doc.Grid.Cell(2, 1))
	}
}

func TestParseExplicitColRowForm(t *testing.T) {
	// "4,6 = 8" sets cell at column 4, row 6 (0-indexed: col=3, row=5).
	doc, err := Parse("4,6 = 8")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sym, ok := doc.Grid.Cell(5, 3).Symbol()
	if !ok || sym != 8 {
		t.Fatalf("cell (5,3): got %v, want given 8", doc.Grid.Cell(5, 3))
	}
}

func TestParseIgnoresComments(t *testing.T) {
	doc, err := Parse("# a save file\nR 1\n1 = 9 # given one\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sym, ok := doc.Grid.Cell(0, 0).Symbol()
	if !ok || sym != 9 {
		t.Fatal("expected cell (0,0) to be given 9")
	}
}

func TestParseRejectsMalformedAssignment(t *testing.T) {
	if _, err := Parse("1 + 2"); err == nil {
		t.Fatal("expected a parse error")
	}
}
