// Package cylgrid models a width×height grid wrapped into a cylinder.
//
// The width axis is cyclic: column width−1 is adjacent to column 0 (the
// "seam"). The height axis is not: rows 0 and height−1 are open cylinder
// ends. Both dimensions must be positive even integers — every other shape
// is rejected at construction, because only even-by-even cylinders admit
// the closed Hamiltonian patterns the rest of the module produces.
//
// A Grid is immutable once built. It answers three questions:
//
//   - Neighbors(p): the up-to-four grid-adjacent points of p
//   - IsEdge(u, v): whether u and v are grid-adjacent
//   - Index/Coordinate: the row-major mapping between points and indices
//
// Complexity: all operations are O(1) except Neighbors, which is O(1) with
// a small constant (at most four candidates).
package cylgrid
