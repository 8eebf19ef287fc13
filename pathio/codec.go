// Package pathio — Cycle ↔ Record codec.
package pathio

import (
	"fmt"

	"github.com/lampwright/lampcycle/cylgrid"
	"github.com/lampwright/lampcycle/hamcycle"
)

// Encode converts a cycle and its traits into a persistable Record. The
// vertex list follows the cycle's traversal order from its start vertex.
// Complexity: O(n).
func Encode(c *hamcycle.Cycle, traits Traits) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("%w: nil cycle", ErrMalformedPath)
	}

	pts := c.Vertices()
	vertices := make([][2]int, len(pts))
	for i, p := range pts {
		vertices[i] = [2]int{p.X, p.Y}
	}

	return Record{
		Width:    c.Grid().Width(),
		Height:   c.Grid().Height(),
		Vertices: vertices,
		Traits:   traits,
	}, nil
}

// Decode rebuilds the cycle and traits from a Record, revalidating every
// structural invariant: dimensions, vertex count, range, uniqueness, and
// adjacency of each consecutive pair including the implied closing pair.
// Any violation is reported as ErrMalformedPath wrapped around the cause.
// Complexity: O(n).
func Decode(rec Record) (*hamcycle.Cycle, Traits, error) {
	g, err := cylgrid.New(rec.Width, rec.Height)
	if err != nil {
		return nil, Traits{}, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}

	pts := make([]cylgrid.Point, len(rec.Vertices))
	for i, v := range rec.Vertices {
		pts[i] = cylgrid.Point{X: v[0], Y: v[1]}
	}

	c, err := hamcycle.FromVertices(g, pts)
	if err != nil {
		return nil, Traits{}, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}

	return c, rec.Traits, nil
}
