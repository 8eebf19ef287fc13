// Package render — record → raster image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lampwright/lampcycle/pathio"
)

// Options controls raster geometry and palette.
type Options struct {
	// CellPx is the pixel size of one grid cell. Must be positive.
	CellPx int

	// Margin is the border around the unrolled grid, in pixels.
	Margin int

	// Background fills the whole canvas before drawing.
	Background color.RGBA

	// Path colors regular cycle edges.
	Path color.RGBA

	// Seam colors the half-stubs of seam-crossing edges.
	Seam color.RGBA

	// Vertex colors the marker dot at each cell center.
	Vertex color.RGBA
}

// DefaultOptions returns the standard palette: white canvas, dark path,
// red seam stubs, 16 px cells.
func DefaultOptions() Options {
	return Options{
		CellPx:     16,
		Margin:     8,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Path:       color.RGBA{R: 0x20, G: 0x28, B: 0x30, A: 0xff},
		Seam:       color.RGBA{R: 0xd0, G: 0x30, B: 0x28, A: 0xff},
		Vertex:     color.RGBA{R: 0x50, G: 0x70, B: 0x90, A: 0xff},
	}
}

// Image rasterizes the record. The record is structurally revalidated
// first, so a malformed one fails with pathio.ErrMalformedPath rather than
// producing a nonsense picture. Invalid Options fail with a plain error.
//
// Canvas size: (2·Margin + width·CellPx) × (2·Margin + height·CellPx).
// Complexity: O(pixels).
func Image(rec pathio.Record, opts Options) (*image.RGBA, error) {
	if opts.CellPx <= 0 {
		return nil, fmt.Errorf("render: CellPx=%d: must be positive", opts.CellPx)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("render: Margin=%d: must be non-negative", opts.Margin)
	}
	if _, _, err := pathio.Decode(rec); err != nil {
		return nil, err
	}

	var (
		w   = 2*opts.Margin + rec.Width*opts.CellPx
		h   = 2*opts.Margin + rec.Height*opts.CellPx
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	)
	fill(img, img.Bounds(), opts.Background)

	// Edges first, markers on top.
	n := len(rec.Vertices)
	for i := 0; i < n; i++ {
		u := rec.Vertices[i]
		v := rec.Vertices[(i+1)%n]
		if isSeamPair(u, v, rec.Width) {
			drawSeamStubs(img, u, v, opts)
			continue
		}
		drawSegment(img, u, v, opts)
	}
	for _, p := range rec.Vertices {
		cx, cy := center(p, opts)
		fill(img, image.Rect(cx-1, cy-1, cx+2, cy+2), opts.Vertex)
	}

	return img, nil
}

// WritePNG encodes img to path as PNG.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %q: %w", path, err)
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %q: %w", path, err)
	}

	return nil
}

// isSeamPair reports whether the consecutive pair crosses the seam, i.e.
// joins columns width−1 and 0 in either direction.
func isSeamPair(u, v [2]int, width int) bool {
	if width <= 2 {
		// With two columns every horizontal edge is also the wrap; the
		// unrolled picture shows it as a direct segment.
		return false
	}
	lo, hi := u[0], v[0]
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo == 0 && hi == width-1
}

// center maps a grid vertex to its pixel center.
func center(p [2]int, opts Options) (int, int) {
	return opts.Margin + p[0]*opts.CellPx + opts.CellPx/2,
		opts.Margin + p[1]*opts.CellPx + opts.CellPx/2
}

// drawSegment draws the axis-aligned edge between two cell centers.
func drawSegment(img *image.RGBA, u, v [2]int, opts Options) {
	x1, y1 := center(u, opts)
	x2, y2 := center(v, opts)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	fill(img, image.Rect(x1, y1, x2+1, y2+1), opts.Path)
}

// drawSeamStubs draws a seam edge as two horizontal half-stubs: one from
// the rightmost column's center toward the right, one from column 0's
// center toward the left.
func drawSeamStubs(img *image.RGBA, u, v [2]int, opts Options) {
	for _, p := range [][2]int{u, v} {
		cx, cy := center(p, opts)
		half := opts.CellPx / 2
		if p[0] == 0 {
			fill(img, image.Rect(cx-half, cy, cx+1, cy+1), opts.Seam)
		} else {
			fill(img, image.Rect(cx, cy, cx+half+1, cy+1), opts.Seam)
		}
	}
}

// fill paints the rectangle clipped to the image bounds.
func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
