package cylgrid

import "fmt"

// New constructs a cylindrical Grid with the given dimensions.
// Returns ErrInvalidDimension (wrapped with the offending values) if either
// dimension is odd, zero, or negative.
// Complexity: O(1).
func New(width, height int) (*Grid, error) {
	if width <= 0 || width%2 != 0 {
		return nil, fmt.Errorf("cylgrid: width=%d: %w", width, ErrInvalidDimension)
	}
	if height <= 0 || height%2 != 0 {
		return nil, fmt.Errorf("cylgrid: height=%d: %w", height, ErrInvalidDimension)
	}

	return &Grid{width: width, height: height}, nil
}

// Width returns the cyclic dimension of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the open dimension of the grid.
func (g *Grid) Height() int { return g.height }

// Cells returns the total number of grid cells, width·height.
func (g *Grid) Cells() int { return g.width * g.height }

// InBounds reports whether p lies within [0,width)×[0,height).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// WrapX normalizes an x coordinate onto the cyclic axis.
// Accepts any int, including negatives.
// Complexity: O(1).
func (g *Grid) WrapX(x int) int {
	x %= g.width
	if x < 0 {
		x += g.width
	}

	return x
}

// Neighbors returns the grid-adjacent points of p: two horizontal neighbors
// (wrap-aware) and up to two vertical ones (fewer at the open ends y=0 and
// y=height−1). Order is deterministic: left, right, up, down.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	out = append(out,
		Point{X: g.WrapX(p.X - 1), Y: p.Y},
		Point{X: g.WrapX(p.X + 1), Y: p.Y},
	)
	if p.Y > 0 {
		out = append(out, Point{X: p.X, Y: p.Y - 1})
	}
	if p.Y < g.height-1 {
		out = append(out, Point{X: p.X, Y: p.Y + 1})
	}

	return out
}

// IsEdge reports whether u and v are grid-adjacent: horizontal neighbors
// modulo width, or vertical neighbors on the open axis. A point is never
// adjacent to itself.
// Complexity: O(1).
func (g *Grid) IsEdge(u, v Point) bool {
	if !g.InBounds(u) || !g.InBounds(v) {
		return false
	}
	if u.Y == v.Y {
		// Horizontal adjacency, wrap-aware. Width 2 is a special case where
		// both horizontal neighbors coincide; the predicate still holds.
		return g.WrapX(u.X+1) == v.X || g.WrapX(u.X-1) == v.X
	}
	if u.X == v.X {
		dy := u.Y - v.Y

		return dy == 1 || dy == -1
	}

	return false
}

// IsSeamEdge reports whether u and v are horizontal neighbors across the
// wraparound boundary (columns width−1 and 0, either order, same row).
// A non-edge is never a seam edge.
// Complexity: O(1).
func (g *Grid) IsSeamEdge(u, v Point) bool {
	if u.Y != v.Y || !g.IsEdge(u, v) {
		return false
	}
	lo, hi := u.X, v.X
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo == 0 && hi == g.width-1 && g.width > 2
}

// Index maps p to its row-major index: y·width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
