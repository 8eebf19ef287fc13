// Package render rasterizes a persisted path record to an image so the
// pattern can be inspected before fabrication.
//
// The cylinder is unrolled: cell (x,y) maps to a fixed-size pixel block,
// row 0 at the top. Regular cycle edges are straight segments between cell
// centers; an edge crossing the seam is drawn as two half-stubs, one
// leaving the rightmost column toward the right border and one leaving
// column 0 toward the left border, so the unrolled image never shows a
// false full-width line.
//
// Output is ordinary image/png; sizing and palette come from Options.
package render
