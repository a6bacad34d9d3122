package hints

import (
	"testing"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// xWingGrid builds the grid spec.md §8 scenario S3 describes: symbol 4
// is a candidate in exactly columns {2,6} of rows 1 and 5, and remains
// a candidate everywhere else in the grid (every other cell keeps a
// full pencil mark set). That keeps symbol 4 confined to columns {2,6}
// in rows 1 and 5 only, without ever confining any digit to a single
// cell or a small subset anywhere else, so no earlier technique in the
// battery (naked/hidden single, locked candidate, naked/hidden subset)
// fires before detectFish gets a chance.
func xWingGrid() *grid.Grid {
	g := grid.New()
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			g.SetCandidates(r, c, bitset.Full)
		}
	}
	four := bitset.Mask(0).Set(4)
	fishRows := map[int]bool{1: true, 5: true}
	for r := range fishRows {
		for c := 0; c < grid.Size; c++ {
			if c != 2 && c != 6 {
				g.RemoveCandidates(r, c, four)
			}
		}
	}
	return g
}

func TestDetectFishFindsXWing(t *testing.T) {
	g := xWingGrid()

	d := detectFish(g)
	if d == nil {
		t.Fatal("expected an X-Wing hint")
	}
	if d.Kind != XWing {
		t.Fatalf("expected kind=XWing, got %v", d.Kind)
	}
	if d.Action != Remove {
		t.Fatalf("expected action=Remove, got %v", d.Action)
	}
	if len(d.Symbols) != 1 || d.Symbols[0] != 4 {
		t.Fatalf("expected symbols={4}, got %v", d.Symbols)
	}

	// Every row but 1 and 5 still has symbol 4 as a candidate in both
	// columns 2 and 6, so the X-Wing eliminates it from all of them.
	wantHints := make(map[grid.Coord]bool)
	for r := 0; r < grid.Size; r++ {
		if r == 1 || r == 5 {
			continue
		}
		wantHints[grid.Coord{Row: r, Col: 2}] = true
		wantHints[grid.Coord{Row: r, Col: 6}] = true
	}
	if len(d.Hints) != len(wantHints) {
		t.Fatalf("expected %d eliminations, got %d: %v", len(wantHints), len(d.Hints), d.Hints)
	}
	for _, h := range d.Hints {
		if !wantHints[h] {
			t.Fatalf("unexpected elimination at %v", h)
		}
	}

	wantTriggers := map[grid.Coord]bool{
		{Row: 1, Col: 2}: true, {Row: 1, Col: 6}: true,
		{Row: 5, Col: 2}: true, {Row: 5, Col: 6}: true,
	}
	if len(d.Triggers) != len(wantTriggers) {
		t.Fatalf("expected %d trigger cells, got %d: %v", len(wantTriggers), len(d.Triggers), d.Triggers)
	}
	for _, tr := range d.Triggers {
		if !wantTriggers[tr.Cell] {
			t.Fatalf("unexpected trigger at %v", tr.Cell)
		}
	}
}
