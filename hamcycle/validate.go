// Package hamcycle — invariant validation and explicit-order construction.
package hamcycle

import (
	"fmt"

	"github.com/lampwright/lampcycle/cylgrid"
)

// Validate re-checks every Cycle invariant by walking the ring once:
// exactly width·height vertices, no repeats, every consecutive pair
// (including the closing pair) a grid edge, next/prev agreement, and a
// single cycle rather than disjoint sub-cycles. Returns nil on success or
// the first violation found, wrapped with the offending detail.
//
// Complexity: O(n) time, O(n) scratch.
func (c *Cycle) Validate() error {
	if c == nil || c.grid == nil {
		return ErrNilGrid
	}
	n := c.grid.Cells()
	if len(c.next) != n || len(c.prev) != n {
		return fmt.Errorf("hamcycle: ring size %d/%d for %d cells: %w",
			len(c.next), len(c.prev), n, ErrWrongLength)
	}

	seen := make([]bool, n)

	v := c.start
	for i := 0; i < n; i++ {
		if seen[v] {
			return fmt.Errorf("hamcycle: vertex %v revisited: %w",
				c.grid.Coordinate(v), ErrDuplicateVertex)
		}
		seen[v] = true

		u := c.next[v]
		if u < 0 || u >= n || c.prev[u] != v {
			return fmt.Errorf("hamcycle: at vertex %v: %w",
				c.grid.Coordinate(v), ErrBrokenRing)
		}
		if !c.grid.IsEdge(c.grid.Coordinate(v), c.grid.Coordinate(u)) {
			return fmt.Errorf("hamcycle: %v→%v: %w",
				c.grid.Coordinate(v), c.grid.Coordinate(u), ErrNotAdjacent)
		}
		// Returning to start early means a disjoint sub-cycle exists.
		if u == c.start && i != n-1 {
			return fmt.Errorf("hamcycle: ring closes after %d of %d vertices: %w",
				i+1, n, ErrWrongLength)
		}
		v = u
	}
	if v != c.start {
		return fmt.Errorf("hamcycle: ring open after %d vertices: %w", n, ErrBrokenRing)
	}

	return nil
}

// FromVertices rebuilds a Cycle from an explicit vertex order over g,
// validating every invariant on the way in: length width·height, all
// vertices in range and distinct, every consecutive pair (including the
// pair closing the sequence) grid-adjacent. The resulting ring reproduces
// exactly the given order from its first vertex.
//
// Complexity: O(n).
func FromVertices(g *cylgrid.Grid, pts []cylgrid.Point) (*Cycle, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Cells()
	if len(pts) != n {
		return nil, fmt.Errorf("hamcycle: %d vertices for %d cells: %w",
			len(pts), n, ErrWrongLength)
	}

	seen := make([]bool, n)
	for i, p := range pts {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("hamcycle: vertex %d = %v: %w", i, p, ErrOutOfBounds)
		}
		idx := g.Index(p)
		if seen[idx] {
			return nil, fmt.Errorf("hamcycle: vertex %d = %v: %w", i, p, ErrDuplicateVertex)
		}
		seen[idx] = true
	}
	for i := range pts {
		u, v := pts[i], pts[(i+1)%n]
		if !g.IsEdge(u, v) {
			return nil, fmt.Errorf("hamcycle: pair %d: %v→%v: %w", i, u, v, ErrNotAdjacent)
		}
	}

	c := &Cycle{
		grid:  g,
		next:  make([]int, n),
		prev:  make([]int, n),
		start: g.Index(pts[0]),
	}
	for i := range pts {
		u := g.Index(pts[i])
		v := g.Index(pts[(i+1)%n])
		c.next[u] = v
		c.prev[v] = u
	}

	return c, nil
}
