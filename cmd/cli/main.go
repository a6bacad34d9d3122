// Command cli is the CLI surface of spec.md §6.4: "-g N" starts a
// specific game number, "-h" shows help, and a positional filename
// opens a save (spec.md §6.3). Grounded on the teacher's
// cmd/server/main.go bootstrap shape (parse input, print the error and
// exit non-zero on failure) combined with the other_examples manifest for kpitt-sudoku,
// which renders a terminal Sudoku grid with github.com/fatih/color —
// adopted here to color givens vs. solved vs. hinted cells instead of
// hand-rolling ANSI escapes (see DESIGN.md, SPEC_FULL.md §6.4).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/facade"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

func main() {
	gameNumber := flag.Int("g", 0, "start with a specific game number (1-10000)")
	flag.Parse()

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	g := facade.New(facade.UICallbacks{
		Redraw: func() {},
	})

	switch {
	case path != "":
		if err := g.OpenFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "sudoku: could not open %s: %v\n", path, err)
			os.Exit(1)
		}
	case *gameNumber > 0:
		if err := g.PickGame(fmt.Sprintf("%d", *gameNumber)); err != nil {
			fmt.Fprintf(os.Stderr, "sudoku: could not start game %d: %v\n", *gameNumber, err)
			os.Exit(1)
		}
	default:
		if err := g.RandomGame(nil); err != nil {
			fmt.Fprintf(os.Stderr, "sudoku: could not generate a game: %v\n", err)
			os.Exit(1)
		}
	}

	render(g.Grid())

	level, _ := g.Rate()
	fmt.Printf("difficulty: %s\n", level)
	fmt.Printf("play time: %ds\n", g.PlayDuration())
}

var (
	givenColor  = color.New(color.FgGreen, color.Bold)
	solvedColor = color.New(color.FgCyan)
	hintColor   = color.New(color.FgYellow, color.Bold)
	emptyColor  = color.New(color.FgHiBlack)
)

// render prints g to stdout, one row per line, colored by cell role:
// givens in green, user-solved cells in cyan, hinted cells in yellow,
// and empty cells as a dim dot.
func render(g *grid.Grid) {
	for r := 0; r < grid.Size; r++ {
		if r > 0 && r%3 == 0 {
			fmt.Println("------+-------+------")
		}
		for c := 0; c < grid.Size; c++ {
			if c > 0 && c%3 == 0 {
				fmt.Print("| ")
			}
			cell := g.Cell(r, c)
			if sym, ok := cell.Symbol(); ok {
				switch {
				case cell.State&grid.Given != 0:
					givenColor.Printf("%d ", sym)
				case cell.State&grid.Hint != 0:
					hintColor.Printf("%d ", sym)
				default:
					solvedColor.Printf("%d ", sym)
				}
			} else {
				emptyColor.Print(". ")
			}
		}
		fmt.Println()
	}
}
