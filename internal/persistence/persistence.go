// Package persistence implements the whitespace-insensitive save-file
// grammar of spec.md §6.3: a recursive-descent scanner/writer pair that
// the facade's OpenFile/SaveFile operations (spec.md §6.1) call into.
// This is new relative to the teacher, which persists whole puzzles as
// JSON (internal/puzzles/loader.go, no longer part of this module —
// see DESIGN.md). This package has no Load function or singleton: it
// exposes Parse and Serialize, and the facade does the file I/O. The
// grammar itself is hand-written since
// no parser-combinator library appears anywhere in the pack (DESIGN.md
// records this as a justified stdlib piece).
package persistence

import (
	"fmt"
	"strings"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// ParseError reports a malformed save file; it crosses the facade
// boundary verbatim (spec.md §7) and leaves the caller's state
// untouched.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("persistence: parse error at offset %d: %s", e.Pos, e.Msg)
}

// Document is the result of parsing a save file: the grid it describes
// plus the elapsed-seconds counter from any 'T'/'t' command.
type Document struct {
	Grid          *grid.Grid
	ElapsedSecond int
}

type scanner struct {
	src []rune
	pos int
}

// Parse reads the grammar of spec.md §6.3:
//
//	file       := (space | time | command | assignment)*
//	time       := ('T'|'t') integer
//	command    := ('C'|'c'|'R'|'r') symbol
//	assignment := [symbol ',']? [symbol]? ('=' | ':') symbol (',' symbol)*
//	comment    := '#' .* EOL
//	symbol     := '1'..'9'
//
// 'R'/'r' and 'C'/'c' set the current row/column (1-indexed symbols
// mapped to 0-indexed grid coordinates); an assignment's leading
// symbol(s) give column[,row] explicitly, falling back to the current
// row/column when omitted, exactly as spec.md §6.3 describes:
// "x,y = v sets cell (x,y). x = v uses current row. = v uses current
// row and current column."
func Parse(text string) (*Document, error) {
	s := &scanner{src: []rune(text)}
	g := grid.New()
	doc := &Document{Grid: g}

	curRow, curCol := 0, 0

	for {
		s.skipSpaceAndComments()
		if s.atEnd() {
			break
		}
		ch := s.peek()
		switch {
		case ch == 'T' || ch == 't':
			s.next()
			n, ok := s.readInt()
			if !ok {
				return nil, &ParseError{Pos: s.pos, Msg: "expected integer after T"}
			}
			doc.ElapsedSecond = n
		case ch == 'R' || ch == 'r':
			s.next()
			s.skipSpaceAndComments()
			sym, ok := s.readSymbol()
			if !ok {
				return nil, &ParseError{Pos: s.pos, Msg: "expected digit 1-9 after R"}
			}
			curRow = sym - 1
		case ch == 'C' || ch == 'c':
			s.next()
			s.skipSpaceAndComments()
			sym, ok := s.readSymbol()
			if !ok {
				return nil, &ParseError{Pos: s.pos, Msg: "expected digit 1-9 after C"}
			}
			curCol = sym - 1
		default:
			var err error
			curRow, curCol, err = s.readAssignment(g, curRow, curCol)
			if err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// readAssignment parses one assignment and applies it to g, returning
// the (possibly updated) current row/column for subsequent bare forms.
func (s *scanner) readAssignment(g *grid.Grid, curRow, curCol int) (int, int, error) {
	start := s.pos
	first, haveFirst := s.readSymbol()
	col, row := curCol, curRow
	if haveFirst {
		if s.peek() == ',' {
			s.next()
			second, ok := s.readSymbol()
			if !ok {
				return 0, 0, &ParseError{Pos: s.pos, Msg: "expected digit 1-9 after ','"}
			}
			col, row = first-1, second-1
		} else {
			col = first - 1
		}
	}

	s.skipSpaceAndComments()
	op := s.peek()
	if op != '=' && op != ':' {
		return 0, 0, &ParseError{Pos: start, Msg: "expected '=' or ':'"}
	}
	s.next()

	values, err := s.readSymbolList()
	if err != nil {
		return 0, 0, err
	}

	switch op {
	case '=':
		if len(values) != 1 {
			return 0, 0, &ParseError{Pos: start, Msg: "'=' requires exactly one symbol"}
		}
		g.SetSymbol(row, col, values[0], true)
	case ':':
		for _, v := range values {
			g.AddCandidate(row, col, v)
		}
	}
	return row, col, nil
}

func (s *scanner) readSymbolList() ([]int, error) {
	s.skipSpaceAndComments()
	first, ok := s.readSymbol()
	if !ok {
		return nil, &ParseError{Pos: s.pos, Msg: "expected digit 1-9"}
	}
	out := []int{first}
	for {
		s.skipSpaceAndComments()
		if s.peek() != ',' {
			break
		}
		s.next()
		s.skipSpaceAndComments()
		v, ok := s.readSymbol()
		if !ok {
			return nil, &ParseError{Pos: s.pos, Msg: "expected digit 1-9 after ','"}
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *scanner) readSymbol() (int, bool) {
	if s.atEnd() {
		return 0, false
	}
	ch := s.peek()
	if ch < '1' || ch > '9' {
		return 0, false
	}
	s.next()
	return int(ch - '0'), true
}

func (s *scanner) readInt() (int, bool) {
	s.skipSpaceAndComments()
	start := s.pos
	for !s.atEnd() && s.peek() >= '0' && s.peek() <= '9' {
		s.next()
	}
	if s.pos == start {
		return 0, false
	}
	n := 0
	for _, ch := range s.src[start:s.pos] {
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func (s *scanner) skipSpaceAndComments() {
	for !s.atEnd() {
		ch := s.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			s.next()
		case ch == '#':
			for !s.atEnd() && s.peek() != '\n' {
				s.next()
			}
		default:
			return
		}
	}
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }
func (s *scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}
func (s *scanner) next() rune  { ch := s.src[s.pos]; s.pos++; return ch }

// Serialize writes g (and elapsedSeconds, if non-zero) in the grammar
// of spec.md §6.3: one "R <row>" header per non-empty row, then each
// non-empty column in that row as "<col> = <v>" (given single) or
// "<col> : v1, v2, …" (candidates) — the exact shape spec.md §6.3
// describes for saving.
func Serialize(g *grid.Grid, elapsedSeconds int) string {
	var b strings.Builder
	if elapsedSeconds > 0 {
		fmt.Fprintf(&b, "T %d\n", elapsedSeconds)
	}
	for r := 0; r < grid.Size; r++ {
		rowHasContent := false
		for c := 0; c < grid.Size; c++ {
			if !g.Cell(r, c).Candidates.IsEmpty() {
				rowHasContent = true
				break
			}
		}
		if !rowHasContent {
			continue
		}
		fmt.Fprintf(&b, "R %d\n", r+1)
		for c := 0; c < grid.Size; c++ {
			cell := g.Cell(r, c)
			if cell.Candidates.IsEmpty() {
				continue
			}
			if sym, ok := cell.Symbol(); ok && cell.State&grid.Given != 0 {
				fmt.Fprintf(&b, "%d = %d\n", c+1, sym)
				continue
			}
			digits := cell.Candidates.ToSlice()
			fmt.Fprintf(&b, "%d : ", c+1)
			for i, d := range digits {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%d", d)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
