// Package hamcycle — canonical cycle construction.
//
// The canonical cycle is a column serpentine: even columns run top to
// bottom, odd columns bottom to top, so each column hands off to the next
// through a single horizontal edge at an alternating end row. The last
// column (odd, since width is even) finishes at row 0, and one wraparound
// edge (width−1,0)–(0,0) closes the figure across the seam.
//
// The alternation is the correctness-critical detail: two same-direction
// columns end and start at opposite rows and cannot be joined at all, so a
// non-alternating layout degenerates into disjoint loops instead of one
// Hamiltonian cycle.
package hamcycle

import "github.com/lampwright/lampcycle/cylgrid"

// Build deterministically constructs the canonical Hamiltonian cycle for g.
// No randomness is consumed. Dimension validation lives in cylgrid.New; the
// only failure here is a nil grid.
//
// Guarantees: the result satisfies every Cycle invariant.
// Complexity: O(width·height) time and space.
func Build(g *cylgrid.Grid) (*Cycle, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	var (
		w = g.Width()
		h = g.Height()
		n = g.Cells()
	)

	// Lay out the serpentine order, then link it into a ring.
	order := make([]int, 0, n)
	for x := 0; x < w; x++ {
		if x%2 == 0 {
			for y := 0; y < h; y++ {
				order = append(order, g.Index(cylgrid.Point{X: x, Y: y}))
			}
		} else {
			for y := h - 1; y >= 0; y-- {
				order = append(order, g.Index(cylgrid.Point{X: x, Y: y}))
			}
		}
	}

	c := &Cycle{
		grid:  g,
		next:  make([]int, n),
		prev:  make([]int, n),
		start: order[0], // (0,0)
	}
	for i := 0; i < n; i++ {
		u := order[i]
		v := order[(i+1)%n] // the final pair is the seam closure
		c.next[u] = v
		c.prev[v] = u
	}

	return c, nil
}
