// Package hamcycle constructs and perturbs closed Hamiltonian cycles on a
// cylindrical grid (see cylgrid).
//
// What
//
//   - Build: deterministically produce the canonical cycle for any valid
//     grid — a column serpentine closed through a single seam edge.
//   - Flip: apply up to N randomized local transformations that keep the
//     cycle a single simple ring over all cells, driven by an explicit
//     seeded RNG.
//   - FromVertices: rebuild a cycle from an explicit vertex order, checking
//     every invariant (used by persistence).
//   - Validate / SeamEdges: invariant re-checking and seam derivation for
//     renderers.
//
// Representation
//
//	A cycle is an array-indexed doubly linked ring: next[i] and prev[i]
//	hold the ring neighbors of the vertex with row-major index i. Local
//	edge substitutions are pointer rewrites on the four corners of a 2×2
//	block; only an orientation fix-up ever walks a segment.
//
// Invariants (hold at every observable point)
//
//   - length == width·height, every cell appears exactly once
//   - every consecutive pair, including the closing pair, is a grid edge
//   - the ring is one cycle, never two or more disjoint sub-cycles
//
// Determinism
//
//	Build takes no randomness. Flip consumes an explicit *rand.Rand; the
//	same (initial cycle, seed, attempt count) always yields a bit-identical
//	ring. NewRNG applies the seed==0 ⇒ fixed-default policy, so ambient
//	time-based seeding is a caller decision, never an accident.
//
// Complexity
//
//	Build is O(width·height). Per flip attempt, sampling and the local case
//	classification are O(1); an accepted transformation additionally pays
//	for one segment or sub-cycle walk.
package hamcycle
