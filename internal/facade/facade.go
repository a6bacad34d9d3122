// Package facade implements the game facade (C8): the small state
// machine and guard rails spec.md §4.8 describes, exposing the
// operations of spec.md §6.1 and consuming a UICallbacks table shaped
// like spec.md §6.2. It is the sole owner of the grid stack, wiring C2
// (grid) through C7 (rater) together behind one stateful object.
//
// Grounded on the teacher's routes.go handler set (sessionStartHandler/
// solveNextHandler/validateBoardHandler/...), the closest analogue in
// the teacher repo to "a facade exposing operations and triggering
// side effects" — generalized from stateless HTTP handlers taking a
// request body into a persistent, in-process *Game holding its own
// UICallbacks, since the teacher keeps no in-process game object
// (state lives in the client plus a JWT session token).
package facade

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/bitset"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/generator"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/hints"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/persistence"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/rater"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/solver"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/stack"
	"github.com/jrm-1535/sudoku-lib-sub000/pkg/constants"
)

// State is the facade's state machine (spec.md §6.1 header row:
// "Init → Enter ⇄ Started → Over → Init/Started").
type State int

const (
	Init State = iota
	Enter
	Started
	Over
)

// Key is a selection-movement direction for MoveSelection.
type Key int

const (
	Up Key = iota
	Down
	Left
	Right
)

var (
	ErrWrongState          = errors.New("facade: operation not valid in current state")
	ErrNoSelection         = errors.New("facade: no cell selected")
	ErrGivenCell           = errors.New("facade: cannot act on a given cell")
	ErrNotUniquelySolvable = errors.New("facade: givens do not yet determine a unique solution")
	ErrNoHint              = errors.New("facade: no hint available to apply")
)

// Game owns the grid stack and drives every spec.md §6.1 operation. It
// is not safe for concurrent use (spec.md §5: "single-threaded,
// cooperative").
type Game struct {
	stack *stack.Stack
	state State

	ui UICallbacks

	conflictDetection bool
	autoChecking      bool
	pencilMode        bool

	name           string
	elapsedSeconds int
	playStart      time.Time

	lastHint *hints.Descriptor
}

// New wires ui and returns a facade in the Init state
// (game_init(ui_callbacks), spec.md §6.1).
func New(ui UICallbacks) *Game {
	return &Game{
		stack:             stack.New(),
		state:             Init,
		ui:                ui,
		conflictDetection: true,
	}
}

func (g *Game) State() State { return g.state }

// PlayDuration reports how long this game has been actively played, in
// seconds, including the time accrued in the current Started span
// (grounded on original_source/game.c's sudoku_how_long_playing:
// spec.md has no equivalent operation, but the original game state
// tracks it across save/load, matching elapsedSeconds's persistence
// through OpenFile/SaveFile below).
func (g *Game) PlayDuration() int {
	if g.state != Started || g.playStart.IsZero() {
		return g.elapsedSeconds
	}
	return g.elapsedSeconds + int(time.Since(g.playStart).Seconds())
}

// freezePlayDuration bakes the current Started span into
// elapsedSeconds and stops the live clock; called on entering Over.
// SaveFile does not call it: it writes PlayDuration() and the clock
// keeps running.
func (g *Game) freezePlayDuration() {
	g.elapsedSeconds = g.PlayDuration()
	g.playStart = time.Time{}
}

// Grid returns the grid at the current top of stack for read-only
// inspection (the UI's CellView rendering, spec.md §5: "the UI
// consumes snapshots exclusively via cell_definition").
func (g *Game) Grid() *grid.Grid { return g.stack.Top() }

func (g *Game) redraw() {
	if g.ui.Redraw != nil {
		g.ui.Redraw()
	}
}

func (g *Game) setStatus(st Status) {
	if g.ui.SetStatus != nil {
		g.ui.SetStatus(st)
	}
}

// RandomGame produces a new uniquely-solvable puzzle, seeded from n if
// given, else from the current time, and enters Started (spec.md §6.1
// "random_game(n?)").
func (g *Game) RandomGame(n *int64) error {
	seed := time.Now().UnixNano()
	if n != nil {
		seed = *n
	}
	newGrid, err := generator.Generate(seed)
	if err != nil {
		return err
	}
	g.stack.Reset()
	*g.stack.Top() = *newGrid
	g.elapsedSeconds = 0
	g.playStart = time.Now()
	g.state = Started
	g.redraw()
	return nil
}

// PickGame parses decimal as a game number in [1, 10000] and starts it
// (spec.md §6.1 "pick_game(decimal_string)"). An invalid string is a
// no-op, per spec.md.
func (g *Game) PickGame(decimal string) error {
	n, err := strconv.Atoi(strings.TrimSpace(decimal))
	if err != nil || n < 1 || n > constants.MaxGameNumber {
		return nil
	}
	seed := int64(n)
	return g.RandomGame(&seed)
}

// OpenFile loads the textual save format of spec.md §6.3 and enters
// Started on success. A read or parse failure leaves the facade's
// state untouched (spec.md §7: ParseError/IOError cross the boundary
// without being treated as a programmer error).
func (g *Game) OpenFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := persistence.Parse(string(data))
	if err != nil {
		return err
	}
	g.stack.Reset()
	*g.stack.Top() = *doc.Grid
	g.elapsedSeconds = doc.ElapsedSecond
	g.playStart = time.Now()
	g.state = Started
	g.redraw()
	return nil
}

// SaveFile serializes the current grid in the spec.md §6.3 format.
// Valid while Started or Over.
func (g *Game) SaveFile(path string) error {
	if g.state != Started && g.state != Over {
		return ErrWrongState
	}
	text := persistence.Serialize(g.stack.Top(), g.PlayDuration())
	return os.WriteFile(path, []byte(text), 0o644)
}

// ToggleEnterGame flips Init↔Enter and clears the grid (spec.md §6.1).
func (g *Game) ToggleEnterGame() error {
	switch g.state {
	case Init:
		g.stack.Reset()
		g.state = Enter
		if g.ui.SetEnterMode != nil {
			g.ui.SetEnterMode(EnterGameMode)
		}
	case Enter:
		g.stack.Reset()
		g.state = Init
		if g.ui.SetEnterMode != nil {
			g.ui.SetEnterMode(CancelGameMode)
		}
	default:
		return ErrWrongState
	}
	g.redraw()
	return nil
}

// CommitGame locks the current givens and enters Started, but only
// once they determine a unique solution (spec.md §6.1: "Enter,
// unique-solution substate -> lock givens, Started").
func (g *Game) CommitGame(name string) error {
	if g.state != Enter {
		return ErrWrongState
	}
	result := solver.CheckCurrentGrid(g.stack)
	g.reportCheckStatus(result)
	if result != solver.Unique {
		return ErrNotUniquelySolvable
	}

	top := g.stack.Top()
	for i := range top.Cells {
		if top.Cells[i].IsSingle() {
			top.Cells[i].State |= grid.Given
		}
	}
	g.name = name
	g.elapsedSeconds = 0
	g.playStart = time.Now()
	g.state = Started
	if g.ui.SetWindowName != nil {
		g.ui.SetWindowName(name)
	}
	if g.ui.SetEnterMode != nil {
		g.ui.SetEnterMode(CommitGameMode)
	}
	g.redraw()
	return nil
}

func (g *Game) reportCheckStatus(result solver.Result) {
	switch result {
	case solver.Unsolvable:
		g.setStatus(Status{Code: StatusNoSolution})
	case solver.Unique:
		g.setStatus(Status{Code: StatusOneSolution})
	case solver.Multiple:
		g.setStatus(Status{Code: StatusSeveralSolutions})
	}
}

// SetSelection moves the selection to (r, c). Per spec.md §4.8's guard
// rails ("no selection on given cells"), selecting a given cell is a
// no-op: the previous selection, if any, is left in place.
func (g *Game) SetSelection(r, c int) error {
	if g.state != Enter && g.state != Started {
		return ErrWrongState
	}
	if r < 0 || r >= grid.Size || c < 0 || c >= grid.Size {
		return nil
	}
	if g.stack.Top().Cell(r, c).State&grid.Given != 0 {
		return nil
	}
	g.stack.Top().Select(&grid.Coord{Row: r, Col: c})
	g.redraw()
	return nil
}

// MoveSelection moves the selection by one cell in the given
// direction, wrapping at the grid edges. Landing on a given cell is
// blocked (same guard rail as SetSelection): the cursor stays put.
func (g *Game) MoveSelection(key Key) error {
	if g.state != Enter && g.state != Started {
		return ErrWrongState
	}
	sel := g.stack.Top().Selection
	r, c := 0, 0
	if sel != nil {
		r, c = sel.Row, sel.Col
	}
	switch key {
	case Up:
		r = (r - 1 + grid.Size) % grid.Size
	case Down:
		r = (r + 1) % grid.Size
	case Left:
		c = (c - 1 + grid.Size) % grid.Size
	case Right:
		c = (c + 1) % grid.Size
	}
	return g.SetSelection(r, c)
}

// EnterSymbol applies sym to the selected cell: in pencil mode it
// toggles sym as a candidate; otherwise it sets the cell to the single
// symbol sym (spec.md §6.1: "toggle candidate / place symbol per
// mode" — the source text leaves which mode is current unspecified; it
// is a facade-level setting toggled by SetPencilMode, see DESIGN.md
// Open Question decisions).
func (g *Game) EnterSymbol(sym int) error {
	if g.state != Enter && g.state != Started {
		return ErrWrongState
	}
	sel := g.stack.Top().Selection
	if sel == nil {
		return ErrNoSelection
	}
	if g.stack.Top().Cell(sel.Row, sel.Col).State&grid.Given != 0 {
		return ErrGivenCell
	}
	g.stack.Push()
	top := g.stack.Top()
	if g.pencilMode {
		top.ToggleCandidate(sel.Row, sel.Col, sym)
	} else {
		top.SetSymbol(sel.Row, sel.Col, sym, false)
	}
	if g.conflictDetection {
		top.Select(sel)
	}
	if g.autoChecking && !g.pencilMode && g.state == Started {
		g.reportCheckStatus(solver.CheckCurrentGrid(g.stack))
	}
	g.redraw()
	return nil
}

// SetPencilMode switches EnterSymbol between placing a solved digit and
// toggling a pencil mark.
func (g *Game) SetPencilMode(pencil bool) { g.pencilMode = pencil }

// EraseSelection clears the selected cell if it is not given (spec.md
// §6.1: "selection on non-given").
func (g *Game) EraseSelection() error {
	if g.state != Enter && g.state != Started {
		return ErrWrongState
	}
	sel := g.stack.Top().Selection
	if sel == nil {
		return ErrNoSelection
	}
	if g.stack.Top().Cell(sel.Row, sel.Col).State&grid.Given != 0 {
		return ErrGivenCell
	}
	g.stack.Push()
	g.stack.Top().Erase(sel.Row, sel.Col)
	g.redraw()
	return nil
}

// Undo pops one slot, reporting a Mark status if a bookmark sat at the
// snapshot just left so the UI can refresh its bookmark menu (spec.md
// §4.3: "Undo across a bookmark returns a special indication").
func (g *Game) Undo() error {
	_, crossed, err := g.stack.Undo()
	if err != nil {
		return err
	}
	if crossed {
		g.setStatus(Status{Code: StatusMark, IntValue: len(g.bookmarksSnapshot())})
	}
	g.redraw()
	return nil
}

// Redo re-pushes the most recently undone slot, if any.
func (g *Game) Redo() error {
	_, crossed, err := g.stack.Redo()
	if err != nil {
		return err
	}
	if crossed {
		g.setStatus(Status{Code: StatusMark, IntValue: len(g.bookmarksSnapshot())})
	}
	g.redraw()
	return nil
}

func (g *Game) bookmarksSnapshot() []int64 {
	// Stack exposes bookmark state only through CheckIfAtBookmark; a
	// count isn't tracked separately, so report membership instead of a
	// running length — kept deliberately simple.
	if g.stack.CheckIfAtBookmark() == stack.NoMark {
		return nil
	}
	return []int64{g.stack.SP()}
}

// MarkState pushes the current position as a bookmark (spec.md §6.1
// "mark_state()"); valid only while Started.
func (g *Game) MarkState() error {
	if g.state != Started {
		return ErrWrongState
	}
	if err := g.stack.NewBookmark(); err != nil {
		return err
	}
	g.setStatus(Status{Code: StatusMark, IntValue: 1})
	return nil
}

// BackToLastMark pops the most recent bookmark and truncates the
// stack to it (spec.md §6.1 "back_to_mark()").
func (g *Game) BackToLastMark() error {
	if g.state != Started {
		return ErrWrongState
	}
	if err := g.stack.ReturnToLastBookmark(); err != nil {
		return err
	}
	g.setStatus(Status{Code: StatusBack, IntValue: 1})
	g.redraw()
	return nil
}

// Hint invokes the hint engine (C6) against the current grid, stores
// the descriptor for a subsequent Step, and reports its kind via
// SetStatus (spec.md §6.1 "hint()").
func (g *Game) Hint() (*hints.Descriptor, error) {
	if g.state != Started {
		return nil, ErrWrongState
	}
	d := hints.Hint(g.stack)
	g.lastHint = d
	if d == nil {
		g.setStatus(Status{Code: StatusBlank})
		return nil, nil
	}
	g.setStatus(Status{Code: StatusHint, HintKind: d.Kind})
	g.redraw()
	return d, nil
}

// Step applies the most recently computed hint's action (spec.md §6.1
// "step()").
func (g *Game) Step() error {
	if g.state != Started {
		return ErrWrongState
	}
	if g.lastHint == nil {
		return ErrNoHint
	}
	g.stack.Push()
	applyDescriptor(g.stack.Top(), g.lastHint)
	g.lastHint = nil
	g.redraw()
	return nil
}

func applyDescriptor(g *grid.Grid, d *hints.Descriptor) {
	switch d.Action {
	case hints.Set:
		for _, h := range d.Hints {
			if len(d.Symbols) == 1 {
				g.SetSymbol(h.Row, h.Col, d.Symbols[0], false)
			}
		}
	case hints.Remove:
		for _, e := range d.Eliminations {
			cell := g.Cell(e.Cell.Row, e.Cell.Col)
			if !cell.IsSingle() {
				g.RemoveCandidates(e.Cell.Row, e.Cell.Col, bitset.Mask(0).Set(e.Symbol))
			}
		}
	}
}

// Fill expands the candidates of the selected cell (spec.md §6.1
// "fill(no_conflict)").
func (g *Game) Fill(noConflict bool) error {
	if g.state != Started {
		return ErrWrongState
	}
	sel := g.stack.Top().Selection
	if sel == nil {
		return ErrNoSelection
	}
	g.stack.Push()
	g.stack.Top().FillCell(sel.Row, sel.Col, noConflict)
	g.redraw()
	return nil
}

// FillAll expands the candidates of every empty cell (spec.md §6.1
// "fill_all(no_conflict)").
func (g *Game) FillAll(noConflict bool) error {
	if g.state != Started {
		return ErrWrongState
	}
	g.stack.Push()
	top := g.stack.Top()
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			top.FillCell(r, c, noConflict)
		}
	}
	g.redraw()
	return nil
}

// CheckFromCurrentPosition consults the solver and reports the
// NoSolution/OneSolution/SeveralSolutions status (spec.md §6.1).
func (g *Game) CheckFromCurrentPosition() (solver.Result, error) {
	if g.state != Started {
		return 0, ErrWrongState
	}
	result := solver.CheckCurrentGrid(g.stack)
	g.reportCheckStatus(result)
	return result, nil
}

// SolveFromCurrentPosition replaces the grid with a full solution, if
// one exists, and enters Over (spec.md §6.1
// "solve_from_current_position()").
func (g *Game) SolveFromCurrentPosition() error {
	if g.state != Started {
		return ErrWrongState
	}
	solved, ok := solver.FindSolution(g.stack)
	if !ok {
		g.setStatus(Status{Code: StatusNoSolution})
		return nil
	}
	g.stack.Push()
	*g.stack.Top() = *solved
	g.freezePlayDuration()
	g.state = Over
	g.setStatus(Status{Code: StatusOver})
	g.redraw()
	return nil
}

// ToggleConflictDetection flips the persistent no-conflict option
// (spec.md §6.1).
func (g *Game) ToggleConflictDetection() { g.conflictDetection = !g.conflictDetection }

// ToggleAutoChecking flips the persistent auto-check option (spec.md
// §6.1).
func (g *Game) ToggleAutoChecking() { g.autoChecking = !g.autoChecking }

// Rate classifies the current grid's difficulty by replaying it with
// the hint engine (C7, spec.md §4.7); useful once a game is Over or as
// a generator-time rating pass.
func (g *Game) Rate() (rater.Level, rater.Counts) {
	return rater.Evaluate(g.stack.Top())
}
