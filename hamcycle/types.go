// Package hamcycle — core types and sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context (the offending vertex, pair, or count) is attached with %w
//     wrapping at the reporting site, never baked into the sentinel.
//   - No panics on user input anywhere in the package.
package hamcycle

import (
	"errors"

	"github.com/lampwright/lampcycle/cylgrid"
)

// Sentinel errors for cycle construction and validation.
var (
	// ErrNilGrid is returned when a nil *cylgrid.Grid is supplied.
	ErrNilGrid = errors.New("hamcycle: grid is nil")

	// ErrWrongLength indicates a vertex sequence whose length differs from
	// width·height, or a ring that closes before visiting every cell.
	ErrWrongLength = errors.New("hamcycle: sequence does not cover the grid exactly once")

	// ErrOutOfBounds indicates a vertex outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("hamcycle: vertex out of grid range")

	// ErrDuplicateVertex indicates a cell visited more than once.
	ErrDuplicateVertex = errors.New("hamcycle: duplicate vertex")

	// ErrNotAdjacent indicates a consecutive pair (including the closing
	// pair) that is not a grid edge.
	ErrNotAdjacent = errors.New("hamcycle: consecutive vertices are not grid-adjacent")

	// ErrBrokenRing indicates internal next/prev inconsistency. Seeing it
	// outside of tests means a bug in this package, not bad input.
	ErrBrokenRing = errors.New("hamcycle: next/prev rings disagree")
)

// Cycle is a closed Hamiltonian cycle over a cylindrical grid, stored as an
// array-indexed doubly linked ring. The zero value is not usable; obtain a
// Cycle from Build or FromVertices. A Cycle is mutated in place by Flip and
// must not be shared across goroutines while flips run.
type Cycle struct {
	grid       *cylgrid.Grid
	next, prev []int
	start      int // ring traversal origin, a row-major vertex index

	// flip scratch: stamped membership marks, reused across split attempts
	// to avoid clearing an O(n) buffer per attempt.
	mark      []int
	markStamp int
}

// Grid returns the grid the cycle spans.
func (c *Cycle) Grid() *cylgrid.Grid { return c.grid }

// Len returns the number of vertices in the cycle, width·height.
func (c *Cycle) Len() int { return len(c.next) }

// Vertices returns the cycle order as points, starting from the traversal
// origin and following the ring. The closing edge back to the first point
// is implied. The returned slice is freshly allocated.
// Complexity: O(n).
func (c *Cycle) Vertices() []cylgrid.Point {
	out := make([]cylgrid.Point, 0, len(c.next))

	v := c.start
	for i := 0; i < len(c.next); i++ {
		out = append(out, c.grid.Coordinate(v))
		v = c.next[v]
	}

	return out
}

// uses reports whether the ring currently contains the undirected edge {u,v}.
// Complexity: O(1).
func (c *Cycle) uses(u, v int) bool {
	return c.next[u] == v || c.next[v] == u
}
