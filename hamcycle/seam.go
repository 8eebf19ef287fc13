package hamcycle

import "github.com/lampwright/lampcycle/cylgrid"

// SeamEdge is a traversal edge that crosses the cylinder seam, i.e. joins
// column width-1 back to column 0 through the horizontal wrap.
type SeamEdge struct {
	From, To cylgrid.Point
}

// SeamEdges walks the ring once and collects every edge that crosses the
// seam, in traversal order from the cycle's start vertex. The canonical
// serpentine uses exactly one; flips may introduce more.
//
// Complexity: O(n).
func (c *Cycle) SeamEdges() []SeamEdge {
	var seams []SeamEdge
	v := c.start
	for i := 0; i < c.grid.Cells(); i++ {
		u := c.next[v]
		p, q := c.grid.Coordinate(v), c.grid.Coordinate(u)
		if c.grid.IsSeamEdge(p, q) {
			seams = append(seams, SeamEdge{From: p, To: q})
		}
		v = u
	}
	return seams
}
