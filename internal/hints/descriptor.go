// Package hints implements the human-style deductive hint engine (C6):
// a fixed-order battery of techniques that each inspect a working
// snapshot of the grid and, on success, describe a single actionable
// step without applying it. Grounded on the teacher's
// internal/sudoku/human/techniques_*.go detectors (same "walk the
// board, build a *core.Move" shape), adapted to the Kind/Action/
// Trigger descriptor spec.md §3 calls for instead of the teacher's
// free-form core.Move/Highlights.
package hints

import "github.com/jrm-1535/sudoku-lib-sub000/internal/grid"

// Kind identifies which technique produced a Descriptor.
type Kind int

const (
	NakedSingle Kind = iota
	HiddenSingle
	LockedCandidate
	NakedSubset
	HiddenSubset
	XWing     // fish of size 2
	Swordfish // fish of size 3
	Jellyfish // fish of size 4
	XYWing
	ForbiddingChain
)

func (k Kind) String() string {
	switch k {
	case NakedSingle:
		return "NakedSingle"
	case HiddenSingle:
		return "HiddenSingle"
	case LockedCandidate:
		return "LockedCandidate"
	case NakedSubset:
		return "NakedSubset"
	case HiddenSubset:
		return "HiddenSubset"
	case XWing:
		return "XWing"
	case Swordfish:
		return "Swordfish"
	case Jellyfish:
		return "Jellyfish"
	case XYWing:
		return "XYWing"
	case ForbiddingChain:
		return "ForbiddingChain"
	default:
		return "Unknown"
	}
}

// fishKind maps a fish size (2, 3 or 4) to its named Kind.
func fishKind(k int) Kind {
	switch k {
	case 2:
		return XWing
	case 3:
		return Swordfish
	default:
		return Jellyfish
	}
}

// Action is what the caller should do to apply a Descriptor.
type Action int

const (
	Set Action = iota
	Remove
)

// TriggerFlavor controls how a trigger cell is rendered.
type TriggerFlavor int

const (
	Regular   TriggerFlavor = iota // a solved cell forcing the deduction, or "+1" chain polarity
	Weak                           // forced by a combination of constraints, shown with pencils
	Alternate                      // "-1" chain polarity
)

// Trigger is a cell that justifies a Descriptor, annotated for display.
type Trigger struct {
	Cell   grid.Coord
	Flavor TriggerFlavor
	Head   bool // first cell of a chain segment
}

// Elimination is one (cell, symbol) candidate to remove.
type Elimination struct {
	Cell   grid.Coord
	Symbol int
}

// Descriptor describes one actionable deduction: either setting a
// single cell to a symbol, or removing one or more candidates.
// Consumed once by the caller, then discarded (spec.md §4.6).
type Descriptor struct {
	Kind   Kind
	Action Action

	// Symbols are the digit(s) this deduction concerns.
	Symbols []int

	// Hints are the cells whose state changes: the Set target, or the
	// cells from which Eliminations are removed.
	Hints []grid.Coord

	// Candidates are supporting cells that define the pattern's region
	// (the locked box/line, the subset cells, the fish's intersections)
	// without themselves changing.
	Candidates []grid.Coord

	// Eliminations lists the candidates to remove, for Action == Remove.
	Eliminations []Elimination

	Triggers []Trigger

	// Selection is the cell the UI should move the cursor to, if any.
	Selection *grid.Coord
}

// HasSetAction reports whether this descriptor sets a cell (as opposed
// to only removing candidates).
func (d *Descriptor) HasSetAction() bool { return d.Action == Set }
