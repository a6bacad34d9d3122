package facade

import (
	"time"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/hints"
)

// UICallbacks is the function table the core invokes outward on every
// state- or grid-changing operation (spec.md §6.2). Grounded in shape
// on the teacher's gin.H{...} JSON response maps (routes.go) — a flat
// table of named fields is the teacher's idiom for "the set of things
// the core reports outward" — generalized from JSON fields to Go
// function values since this is an in-process callback table, not a
// wire format. Every field is optional; a nil field is simply not
// invoked.
type UICallbacks struct {
	Redraw          func()
	SetWindowName   func(name string)
	SetStatus       func(status Status)
	SetBackLevel    func(level int)
	SetEnterMode    func(mode EnterMode)
	EnableMenu      func(menu Menu)
	DisableMenu     func(menu Menu)
	EnableMenuItem  func(menu Menu, item MenuItem)
	DisableMenuItem func(menu Menu, item MenuItem)
	SuccessDialog   func(duration time.Duration)
}

// EnterMode is the UI's current entry mode (spec.md §6.2).
type EnterMode int

const (
	EnterGameMode EnterMode = iota
	CancelGameMode
	CommitGameMode
)

// Menu identifies one of the UI's top-level menus (spec.md §6.2); the
// core enables/disables by this symbolic id, never by label.
type Menu int

const (
	MenuFile Menu = iota
	MenuEdit
	MenuTool
)

// MenuItem is a symbolic item id within a Menu (spec.md §6.2).
type MenuItem string

// StatusCode enumerates the status values spec.md §6.2 names.
type StatusCode int

const (
	StatusBlank StatusCode = iota
	StatusDuplicate
	StatusMark
	StatusBack
	StatusCheck
	StatusHint
	StatusNoSolution
	StatusOneSolution
	StatusSeveralSolutions
	StatusOver
)

// Status is one value reported through UICallbacks.SetStatus. Only the
// fields relevant to Code are meaningful: IntValue for Mark(n)/Back(n),
// BoolValue for Check(ok), HintKind for Hint(kind) (spec.md §6.2).
type Status struct {
	Code      StatusCode
	IntValue  int
	BoolValue bool
	HintKind  hints.Kind
}
