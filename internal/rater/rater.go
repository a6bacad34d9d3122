// Package rater implements the difficulty classifier (C7): it replays
// a filled grid using only the hint engine, counting which techniques
// were needed, and classifies the result into one of four tiers
// (spec.md §4.7).
package rater

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/hints"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

// Level is one of the four difficulty tiers spec.md §4.7 names.
type Level int

const (
	Easy Level = iota
	Simple
	Moderate
	Difficult
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "Easy"
	case Simple:
		return "Simple"
	case Moderate:
		return "Moderate"
	default:
		return "Difficult"
	}
}

// tierOf maps a hint Kind to the difficulty tier it puts a puzzle in,
// grounded on the teacher's TechniqueTierToDifficulty/tierOrder idiom
// in human/solver.go (highest tier used wins), but collapsed from the
// teacher's 39-technique/4-tier table down to this spec's 7-technique
// table (spec.md §4.7):
//
//	naked/hidden single                         -> Easy
//	locked candidate, naked subset               -> Simple
//	hidden subset                                -> Moderate
//	X-Wing/Swordfish/Jellyfish, XY-wing, chain   -> Difficult
func tierOf(k hints.Kind) Level {
	switch k {
	case hints.NakedSingle, hints.HiddenSingle:
		return Easy
	case hints.LockedCandidate, hints.NakedSubset:
		return Simple
	case hints.HiddenSubset:
		return Moderate
	default: // XWing, Swordfish, Jellyfish, XYWing, ForbiddingChain
		return Difficult
	}
}

// Counts tallies how many hints of each Kind were applied during a
// replay; useful for a caller (the facade's end-of-game summary, or a
// test) that wants the full technique breakdown, not just the final
// Level.
type Counts map[hints.Kind]int

// Evaluate replays g to completion using only the hint engine,
// applying each returned hint's action until either the grid is solved
// or the engine can no longer produce a hint, and classifies the
// result (spec.md §4.7). g is not mutated; Evaluate works against its
// own copy.
//
// If the engine runs dry before the grid is complete, the grid is
// classified Difficult regardless of what was used up to that point
// (spec.md §4.7: "the engine doesn't cover that level of reasoning").
func Evaluate(g *grid.Grid) (Level, Counts) {
	st := stack.New()
	*st.Top() = *g.Clone()

	counts := Counts{}
	highest := Easy

	for !st.Top().IsSolved() {
		d := hints.Hint(st)
		if d == nil {
			return Difficult, counts
		}
		counts[d.Kind]++
		if tier := tierOf(d.Kind); tier > highest {
			highest = tier
		}
		apply(st.Top(), d)
	}
	return highest, counts
}

// apply performs a hint descriptor's action directly on g, like the
// facade's Step operation (spec.md §6.1 "step()"), so the replay
// actually makes progress instead of re-deriving the same hint forever.
// Unlike Step, a Set marks the cell Given on this private copy (so the
// naked-single detector, which skips given cells, does not report it
// again) and propagates the new symbol out of its peers' candidates.
func apply(g *grid.Grid, d *hints.Descriptor) {
	switch d.Action {
	case hints.Set:
		for _, h := range d.Hints {
			if len(d.Symbols) == 1 {
				g.SetSymbol(h.Row, h.Col, d.Symbols[0], true)
			}
		}
		g.RemoveConflicts()
	case hints.Remove:
		for _, e := range d.Eliminations {
			cell := g.Cell(e.Cell.Row, e.Cell.Col)
			if !cell.IsSingle() {
				g.RemoveCandidates(e.Cell.Row, e.Cell.Col, bitset.Mask(0).Set(e.Symbol))
			}
		}
	}
}
