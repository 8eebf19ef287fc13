// Package lampcycle generates closed Hamiltonian cycles over even-by-even
// cylindrical grids — decorative path patterns for lamp shades that wrap
// around the cylinder exactly once and visit every cell exactly once.
//
// 🏮 What is lampcycle?
//
//	A small, deterministic pattern engine that brings together:
//		• cylgrid/   — the cylindrical grid model (width wraps, height does not)
//		• hamcycle/  — canonical cycle construction + randomized flip engine
//		• pathio/    — JSON persistence of a cycle with physical lamp traits
//		• catalog/   — a Badger-backed store of generated patterns
//		• render/    — PNG rasterization with seam-aware edge splitting
//		• cmd/lampgen — the command-line surface tying the stages together
//
// ✨ Why lampcycle?
//
//   - Exact invariants — a pattern is always one simple cycle over all cells
//   - Reproducible — explicit seeds everywhere, no ambient randomness
//   - Seam-aware — the wraparound boundary is a first-class concept, so a
//     renderer can split seam edges into one stub per cylinder side
//
// Quick ASCII example (4×2, the canonical serpentine, seam on the right):
//
//	┌─┐ ┌─┐ ~
//	│ │ │ │
//	└─┘ └─┘ ~
//
// Pipeline: cylgrid.New → hamcycle.Build → hamcycle.Flip (optional) →
// pathio.Save → render.WritePNG / catalog.Put.
//
//	go get github.com/lampwright/lampcycle
package lampcycle
