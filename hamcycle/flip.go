// Package hamcycle — randomized local transformations ("flips").
//
// A flip candidate is a 2×2 block of cells together with the subset of its
// four connecting edges the ring currently uses. Only blocks using exactly
// one parallel pair (both horizontals or both verticals, the perpendicular
// pair unused) qualify; every other configuration is rigid — a corner pair
// would strand a vertex at degree zero, three used edges leave no
// alternative wiring at all.
//
// For a qualifying block the arc directions decide everything:
//
//   - Aligned (both edges traversed in the same spatial direction): the
//     perpendicular substitution keeps a single ring. Applied as an O(1)
//     corner splice plus an orientation fix-up along one enclosed segment.
//   - Anti-aligned: the bare substitution provably pinches the ring into
//     two disjoint cycles. The engine performs it anyway — an O(1) splice
//     with no orientation damage — and immediately re-merges at the first
//     other qualifying block whose parallel pair spans both cycles,
//     scanning block origins in row-major order from the sampled origin.
//     The merge is the same corner splice. If no merge site exists the
//     split is reverted and the attempt is skipped.
//
// Either way the cycle is a single Hamiltonian ring at every observable
// point, and an attempt never fails: it is accepted or silently consumed.
package hamcycle

import (
	"math/rand"

	"github.com/lampwright/lampcycle/cylgrid"
)

// Flip performs up to attempts randomized local transformations on c,
// mutating it in place, and returns how many were accepted. Sampling is
// uniform over block origins: x ∈ [0,width) wrapping, y ∈ [0,height−1).
//
// A nil rng falls back to the deterministic default stream (NewRNG(0));
// attempts ≤ 0 is a no-op. Identical (initial cycle, rng seed, attempts)
// yield a bit-identical resulting ring. Flip never fails.
func Flip(c *Cycle, attempts int, rng *rand.Rand) int {
	if c == nil || attempts <= 0 {
		return 0
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	var (
		w        = c.grid.Width()
		h        = c.grid.Height()
		accepted int
	)
	for i := 0; i < attempts; i++ {
		x := rng.Intn(w)
		y := rng.Intn(h - 1)
		if c.flipAt(x, y) {
			accepted++
		}
	}

	return accepted
}

// block resolves the four corner indices of the 2×2 block at origin (x,y):
//
//	a b   a=(x,y)  b=(x+1 mod w, y)
//	c d   c=(x,y+1) d=(x+1 mod w, y+1)
func (c *Cycle) block(x, y int) (a, b, cc, d int) {
	g := c.grid
	xr := g.WrapX(x + 1)
	a = g.Index(cylgrid.Point{X: x, Y: y})
	b = g.Index(cylgrid.Point{X: xr, Y: y})
	cc = g.Index(cylgrid.Point{X: x, Y: y + 1})
	d = g.Index(cylgrid.Point{X: xr, Y: y + 1})

	return a, b, cc, d
}

// classify inspects which connecting edges of the block the ring uses and,
// for a qualifying parallel pair, returns its endpoints ordered so that
// {p1,q1} and {p2,q2} are the perpendicular partner edges and next[p1]==p2.
// ok is false for every rigid configuration.
// Complexity: O(1).
func (c *Cycle) classify(x, y int) (p1, p2, q1, q2 int, ok bool) {
	a, b, cc, d := c.block(x, y)

	var (
		top    = c.uses(a, b)
		bottom = c.uses(cc, d)
		left   = c.uses(a, cc)
		right  = c.uses(b, d)
	)
	switch {
	case top && bottom && !left && !right:
		p1, p2, q1, q2 = a, b, cc, d // horizontal pair, partners {a,c},{b,d}
	case left && right && !top && !bottom:
		p1, p2, q1, q2 = a, cc, b, d // vertical pair, partners {a,b},{c,d}
	default:
		return 0, 0, 0, 0, false
	}

	// Normalize the p edge to ring direction. Swapping both sides keeps the
	// partner mapping {p1,q1}/{p2,q2} intact.
	if c.next[p1] != p2 {
		p1, p2 = p2, p1
		q1, q2 = q2, q1
	}

	return p1, p2, q1, q2, true
}

// flipAt attempts one transformation at block origin (x,y). Reports whether
// the ring changed.
func (c *Cycle) flipAt(x, y int) bool {
	p1, p2, q1, q2, ok := c.classify(x, y)
	if !ok {
		return false
	}

	if c.next[q1] == q2 {
		// Aligned arcs p1→p2 and q1→q2: ring order is p1,p2,…,q1,q2.
		// Substitution keeps one cycle but reverses the enclosed segment;
		// the boundary arcs become p1→q1 and p2→q2.
		c.reverseSegment(p2, q1)
		c.splice(p1, q2, q1, p2)

		return true
	}

	// Anti-aligned arcs p1→p2 and q2→q1: the splice pinches the ring into
	// cycle A (holding p1,q1) and cycle B (holding p2,q2).
	c.splice(p1, p2, q1, q2)
	if c.remerge(x, y) {
		return true
	}

	// No merge site anywhere: undo the split, consume the attempt.
	c.splice(p1, q1, p2, q2)

	return false
}

// splice writes the four boundary pointers: arcs u1→v1 and v2→u2 replace
// whatever u1 and v2 pointed at. With next[u1]==u2 and next[v2]==v1 it is
// the edge substitution itself: applied to one ring it splits it in two,
// applied across two rings it merges them, and it is its own inverse under
// argument swap (u2↔v1).
// Complexity: O(1).
func (c *Cycle) splice(u1, u2, v1, v2 int) {
	c.next[u1] = v1
	c.prev[v1] = u1
	c.next[v2] = u2
	c.prev[u2] = v2
}

// reverseSegment flips the ring orientation of the segment from u to v
// inclusive, following next pointers. The segment boundaries are left for
// the caller to re-splice.
// Complexity: O(segment length).
func (c *Cycle) reverseSegment(u, v int) {
	w := u
	for {
		nx := c.next[w]
		c.next[w], c.prev[w] = c.prev[w], c.next[w]
		if w == v {
			return
		}
		w = nx
	}
}

// reverseRing flips the orientation of the entire sub-cycle containing u.
// Complexity: O(sub-cycle length).
func (c *Cycle) reverseRing(u int) {
	w := u
	for {
		nx := c.next[w]
		c.next[w], c.prev[w] = c.prev[w], c.next[w]
		if nx == u {
			return
		}
		w = nx
	}
}

// markRing stamps every vertex of the sub-cycle containing u and returns
// the stamp. Stamps make the scratch buffer reusable without clearing.
// Complexity: O(sub-cycle length).
func (c *Cycle) markRing(u int) int {
	if c.mark == nil {
		c.mark = make([]int, len(c.next))
	}
	c.markStamp++

	w := u
	for {
		c.mark[w] = c.markStamp
		w = c.next[w]
		if w == u {
			return c.markStamp
		}
	}
}

// remerge scans block origins in row-major order after the split origin
// (x,y), wrapping over all W·(H−1) blocks except (x,y) itself, and merges
// the two sub-cycles at the first qualifying block whose parallel pair has
// one edge in each. Reports whether a merge happened.
func (c *Cycle) remerge(x, y int) bool {
	var (
		w     = c.grid.Width()
		total = w * (c.grid.Height() - 1)
		from  = y*w + x
	)

	// Stamp one of the two sub-cycles so edge membership is an O(1) check.
	// The vertex at the split origin's top-left corner sits in cycle A.
	a, _, _, _ := c.block(x, y)
	stamp := c.markRing(a)

	for k := 1; k < total; k++ {
		j := (from + k) % total
		p1, p2, q1, q2, ok := c.classify(j%w, j/w)
		if !ok {
			continue
		}
		// Both endpoints of one parallel edge share a sub-cycle; the block
		// merges only if its two edges live in different sub-cycles.
		if (c.mark[p1] == stamp) == (c.mark[q1] == stamp) {
			continue
		}
		// Orient the q edge against the p edge so the splice chains the two
		// rings instead of pinching one.
		if c.next[q1] == q2 {
			c.reverseRing(q1)
		}
		c.splice(p1, p2, q1, q2)

		return true
	}

	return false
}
