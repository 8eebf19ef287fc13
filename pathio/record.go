// Package pathio — persisted record schema.
package pathio

import "errors"

// ErrMalformedPath is returned by Decode for any structurally invalid
// record. The wrapped cause names the specific violation; branch with
// errors.Is against this sentinel.
var ErrMalformedPath = errors.New("pathio: malformed path record")

// Traits carries the physical fabrication metadata persisted alongside a
// cycle. The algorithmic core never reads it.
type Traits struct {
	// WallThickness is the printed wall thickness in millimeters.
	WallThickness float64 `json:"wall_thickness"`

	// WallHeight is the printed wall height in millimeters.
	WallHeight float64 `json:"wall_height"`

	// Extra holds free-form numeric fields for downstream tooling.
	Extra map[string]float64 `json:"extra,omitempty"`
}

// Record is the persisted form of a cycle plus its traits. Vertices are
// (x,y) pairs in cycle order; the closing edge back to the first vertex is
// implied. Field order matches the on-disk JSON schema.
type Record struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Vertices [][2]int `json:"vertices"`
	Traits   Traits   `json:"traits"`
}
