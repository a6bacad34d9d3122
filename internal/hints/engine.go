package hints

import (
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
)

type detector struct {
	kind Kind
	fn   func(*grid.Grid) *Descriptor
}

// order is the fixed technique battery, run in this exact sequence;
// only the seven techniques spec.md names are kept (the teacher's
// TechniqueRegistry carries roughly three dozen — see DESIGN.md for
// why the rest are out of scope here).
var order = []detector{
	{NakedSingle, detectNakedSingle},
	{HiddenSingle, detectHiddenSingle},
	{LockedCandidate, detectLockedCandidate},
	{NakedSubset, detectNakedSubset},
	{HiddenSubset, detectHiddenSubset},
	{XWing, detectFish},
	{XYWing, detectXYWing},
	{ForbiddingChain, detectForbiddingChain},
}

// Hint runs the technique battery against a pushed working snapshot of
// the grid at the top of st, returns the first actionable descriptor
// (preferring a Set action over a later Remove-only one), and writes
// the descriptor's visual attributes onto the caller's own top-of-stack
// snapshot before returning (spec.md §4.6, "Concurrency and speculative
// state").
func Hint(st *stack.Stack) *Descriptor {
	low := st.SetLowWaterMark()
	defer st.ClearLowWaterMark()
	defer st.SetSP(low)

	st.Push()
	working := st.Top()

	// Techniques run in a fixed order with the Set-producing ones
	// (NakedSingle, HiddenSingle) tried first, so stopping at the first
	// actionable descriptor already gives Set priority over any later
	// Remove-only technique (spec.md §4.6).
	var best *Descriptor
	for _, d := range order {
		if desc := d.fn(working); desc != nil {
			best = desc
			break
		}
	}
	if best == nil {
		return nil
	}

	applyVisualAttrs(st.At(low), best)
	return best
}

// applyVisualAttrs clears prior transient attributes and paints the
// descriptor's hint/trigger cells onto g.
func applyVisualAttrs(g *grid.Grid, d *Descriptor) {
	g.ClearTransientAttrs()
	for _, h := range d.Hints {
		g.Cell(h.Row, h.Col).State |= grid.Hint
	}
	for _, t := range d.Triggers {
		cell := g.Cell(t.Cell.Row, t.Cell.Col)
		switch t.Flavor {
		case Regular:
			cell.State |= grid.Trigger
		case Weak:
			cell.State |= grid.WeakTrigger
		case Alternate:
			cell.State |= grid.AlternateTrigger
		}
		if t.Head {
			cell.State |= grid.ChainHead
		}
	}
}
