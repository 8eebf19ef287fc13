// Package cylgrid defines the core types and sentinel errors for the
// cylindrical grid model.
package cylgrid

import "errors"

// Sentinel errors for cylgrid operations.
var (
	// ErrInvalidDimension indicates a width or height that is odd, zero, or
	// negative. Both dimensions must be positive even integers.
	// Usage: if errors.Is(err, ErrInvalidDimension) { /* reject the request */ }.
	ErrInvalidDimension = errors.New("cylgrid: dimension must be a positive even integer")
)

// Point identifies a single grid cell by its coordinates.
// X ∈ [0,Width) on the cyclic axis, Y ∈ [0,Height) on the open axis.
// Identity is the coordinate pair.
type Point struct {
	X, Y int
}

// Grid is an immutable width×height cylindrical grid.
// Width wraps; Height does not.
type Grid struct {
	width, height int
}
