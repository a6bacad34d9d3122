package hints

import (
	"sort"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
)

// component maps a cell's flat index to its chain polarity, +1 or -1.
type component map[int]int

// detectForbiddingChain implements single-digit coloring: for each
// symbol, build the conjugate-pair graph (cells where the symbol has
// exactly two candidate positions in some row/col/box), two-color each
// connected component, and look for a direct or inter-component
// exclusion (spec.md §4.6 step 7).
func detectForbiddingChain(g *grid.Grid) *Descriptor {
	for sym := 1; sym <= 9; sym++ {
		if d := forbiddingChainForSymbol(g, sym); d != nil {
			return d
		}
	}
	return nil
}

func forbiddingChainForSymbol(g *grid.Grid, sym int) *Descriptor {
	cells := candidateCellsFor(g, sym)
	if len(cells) < 4 {
		return nil
	}
	adj := conjugateEdges(g, sym)
	components := colorComponents(cells, adj)
	if len(components) == 0 {
		return nil
	}

	for _, comp := range components {
		if d := directExclusion(g, sym, comp); d != nil {
			return d
		}
	}
	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			if d := interComponentExclusion(g, sym, components[i], components[j]); d != nil {
				return d
			}
		}
	}
	return nil
}

func candidateCellsFor(g *grid.Grid, sym int) []int {
	var out []int
	for i := 0; i < grid.TotalCells; i++ {
		cell := g.CellAt(i)
		if !cell.IsSingle() && cell.Candidates.Has(sym) {
			out = append(out, i)
		}
	}
	return out
}

// conjugateEdges links two cells whenever they are the only two
// candidate positions for sym in some row, column or box.
func conjugateEdges(g *grid.Grid, sym int) map[int][]int {
	adj := make(map[int][]int)
	link := func(unit []int) {
		var members []int
		for _, idx := range unit {
			cell := g.CellAt(idx)
			if !cell.IsSingle() && cell.Candidates.Has(sym) {
				members = append(members, idx)
			}
		}
		if len(members) == 2 {
			a, b := members[0], members[1]
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}
	for u := 0; u < grid.Size; u++ {
		link(rowCells(u))
		link(colCells(u))
		link(boxCells(u))
	}
	return adj
}

// colorComponents two-colors every connected subgraph of at least two
// cells, starting each at polarity +1. A component whose cycles force
// a contradicting color on some cell is dropped: its chain reasoning
// would not be sound.
func colorComponents(cells []int, adj map[int][]int) []component {
	visited := make(map[int]bool)
	var comps []component
	for _, start := range cells {
		if visited[start] || len(adj[start]) == 0 {
			continue
		}
		comp := component{start: 1}
		visited[start] = true
		queue := []int{start}
		consistent := true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range adj[cur] {
				want := -comp[cur]
				if p, ok := comp[n]; ok {
					if p != want {
						consistent = false
					}
					continue
				}
				comp[n] = want
				visited[n] = true
				queue = append(queue, n)
			}
		}
		if consistent && len(comp) >= 2 {
			comps = append(comps, comp)
		}
	}
	return comps
}

// directExclusion looks for a cell outside the component that sees a
// +1-polarity cell on its row and a -1-polarity cell on its column (or
// vice versa): whichever polarity is assumed, the cell is excluded.
func directExclusion(g *grid.Grid, sym int, comp component) *Descriptor {
	plus := cellsWithPolarity(comp, 1)
	minus := cellsWithPolarity(comp, -1)
	for i := 0; i < grid.TotalCells; i++ {
		if _, in := comp[i]; in {
			continue
		}
		cell := g.CellAt(i)
		if cell.IsSingle() || !cell.Candidates.Has(sym) {
			continue
		}
		r, c := i/grid.Size, i%grid.Size
		if (rowHasPolarity(plus, r) && colHasPolarity(minus, c)) ||
			(rowHasPolarity(minus, r) && colHasPolarity(plus, c)) {
			return chainDescriptor(sym, comp, []Elimination{{Cell: coordOf(i), Symbol: sym}})
		}
	}
	return nil
}

// interComponentExclusion merges two components when every pair of
// cells they share a unit with agrees on the same polarity product,
// then applies directExclusion to the merged, sign-aligned component.
// If instead some pair's product contradicts an earlier one, the two
// chains cannot both be assuming compatible polarities: one of the two
// cells whose polarity stayed the same between the two checked pairs
// is blamed, and every cell of its own component sharing its polarity
// is excluded (original_source/chains.c's find_chain_exclusions, the
// seg1_index/seg2_index "polarity clash" loop).
func interComponentExclusion(g *grid.Grid, sym int, a, b component) *Descriptor {
	aCells := sortedCells(a)
	bCells := sortedCells(b)

	product := 0
	found := false
	prevX, prevY := -1, -1

	for _, x := range aCells {
		for _, y := range bCells {
			if !grid.Sees(x, y) {
				continue
			}
			p := a[x] * b[y]
			if !found {
				product, prevX, prevY, found = p, x, y, true
				continue
			}
			if p != product {
				excluded, excludedInA := prevY, false
				if a[prevX] == a[x] {
					excluded, excludedInA = prevX, true
				}
				return chainContradictionDescriptor(sym, a, b, excluded, excludedInA)
			}
		}
	}
	if !found {
		return nil
	}
	merged := component{}
	for x, p := range a {
		merged[x] = p
	}
	for y, p := range b {
		merged[y] = p * product
	}
	return directExclusion(g, sym, merged)
}

// chainContradictionDescriptor builds the descriptor for an
// inter-component polarity contradiction: excluded (found in a if
// excludedInA, else in b) is the cell whose assumed polarity turned
// out incompatible with the other chain, so every cell sharing its
// polarity within its own component is eliminated for sym.
// original_source/chains.c restricts this to the chain-array suffix
// starting at the excluded link; the Go component map has no
// equivalent traversal order, so this eliminates the whole same-
// polarity subset of the blamed component instead (see DESIGN.md).
func chainContradictionDescriptor(sym int, a, b component, excluded int, excludedInA bool) *Descriptor {
	comp := a
	if !excludedInA {
		comp = b
	}
	polarity := comp[excluded]

	var elims []Elimination
	for _, idx := range cellsWithPolarity(comp, polarity) {
		elims = append(elims, Elimination{Cell: coordOf(idx), Symbol: sym})
	}
	if len(elims) == 0 {
		return nil
	}

	merged := component{}
	for x, p := range a {
		merged[x] = p
	}
	for y, p := range b {
		merged[y] = p
	}
	d := chainDescriptor(sym, merged, elims)
	sel := coordOf(excluded)
	d.Selection = &sel
	return d
}

// sortedCells returns comp's cell indices in ascending order, standing
// in for the fixed traversal order of original_source/chains.c's flat
// chain_link_t array (a Go map has none).
func sortedCells(comp component) []int {
	out := make([]int, 0, len(comp))
	for idx := range comp {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func chainDescriptor(sym int, comp component, elims []Elimination) *Descriptor {
	indices := make([]int, 0, len(comp))
	for idx := range comp {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	var triggers []Trigger
	headSeen := map[int]bool{1: false, -1: false}
	for _, idx := range indices {
		p := comp[idx]
		flavor := Regular
		if p == -1 {
			flavor = Alternate
		}
		triggers = append(triggers, Trigger{Cell: coordOf(idx), Flavor: flavor, Head: !headSeen[p]})
		headSeen[p] = true
	}
	return &Descriptor{
		Kind:         ForbiddingChain,
		Action:       Remove,
		Symbols:      []int{sym},
		Hints:        elimCells(elims),
		Eliminations: elims,
		Triggers:     triggers,
	}
}

func cellsWithPolarity(comp component, p int) []int {
	var out []int
	for idx, pol := range comp {
		if pol == p {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

func rowHasPolarity(cells []int, r int) bool {
	for _, idx := range cells {
		if idx/grid.Size == r {
			return true
		}
	}
	return false
}

func colHasPolarity(cells []int, c int) bool {
	for _, idx := range cells {
		if idx%grid.Size == c {
			return true
		}
	}
	return false
}
