// Package pathio persists lamp path patterns: a Hamiltonian cycle over a
// cylindrical grid together with the physical fabrication traits carried
// alongside it.
//
// # What the package solves
//
// A generated cycle is only useful if it can be written out, stored, and
// reloaded intact. pathio defines the persisted record schema and the
// bidirectional codec between the in-memory Cycle and that record:
//
//	📐 Record   — {width, height, vertices, traits}, the JSON document.
//	🧲 Traits   — wall thickness, wall height, free-form numeric extras;
//	              opaque payload, never consulted by the algorithmic core.
//	🔁 Encode   — Cycle + Traits → Record.
//	🔁 Decode   — Record → Cycle + Traits, revalidating every structural
//	              invariant on the way in.
//	💾 Save/Load — Record ↔ file, JSON on disk.
//
// # Guarantees
//
//   - Round trip: Decode(Encode(c, tr)) reproduces the identical vertex
//     order and traits for every valid input.
//   - Decode never constructs an invalid cycle: wrong vertex count, an
//     out-of-range or repeated vertex, or a non-adjacent consecutive pair
//     (the closing pair included) fails with ErrMalformedPath wrapped
//     around the specific violation.
//
// Complexity: Encode and Decode are O(width·height).
package pathio
