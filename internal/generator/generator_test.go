package generator

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/solver"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

func TestGenerateProducesUniquelySolvableGrid(t *testing.T) {
	g, err := Generate(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.CountSingles() == 0 {
		t.Fatal("expected at least one given")
	}
	st := stack.New()
	*st.Top() = *g
	if got := solver.CheckCurrentGrid(st); got != solver.Unique {
		t.Fatalf("expected a uniquely solvable grid, got %v", got)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	a, errA := Generate(7)
	b, errB := Generate(7)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	for i := 0; i < len(a.Cells); i++ {
		if a.Cells[i].Candidates != b.Cells[i].Candidates {
			t.Fatalf("cell %d differs between two runs with the same seed", i)
		}
	}
}

func TestGenerateDifferentSeedsCanDiffer(t *testing.T) {
	a, err := Generate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i := 0; i < len(a.Cells); i++ {
		if a.Cells[i].Candidates != b.Cells[i].Candidates {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to plausibly produce different puzzles")
	}
}
