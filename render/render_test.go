// Package render_test checks raster geometry, palette placement, seam stub
// splitting, and rejection of malformed records.
package render_test

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lampwright/lampcycle/cylgrid"
	"github.com/lampwright/lampcycle/hamcycle"
	"github.com/lampwright/lampcycle/pathio"
	"github.com/lampwright/lampcycle/render"
)

func makeRecord(t *testing.T, w, h int) pathio.Record {
	t.Helper()
	g, err := cylgrid.New(w, h)
	require.NoError(t, err)
	c, err := hamcycle.Build(g)
	require.NoError(t, err)
	rec, err := pathio.Encode(c, pathio.Traits{})
	require.NoError(t, err)

	return rec
}

func TestImage_Geometry(t *testing.T) {
	opts := render.DefaultOptions()
	opts.CellPx = 10
	opts.Margin = 5

	img, err := render.Image(makeRecord(t, 4, 6), opts)
	require.NoError(t, err)

	want := image.Rect(0, 0, 2*5+4*10, 2*5+6*10)
	require.Equal(t, want, img.Bounds())

	// Corners stay background.
	require.Equal(t, opts.Background, img.RGBAAt(0, 0))
	require.Equal(t, opts.Background, img.RGBAAt(img.Bounds().Max.X-1, img.Bounds().Max.Y-1))
}

// TestImage_PathPixels checks a known canonical edge leaves path-colored
// pixels: on the 4×4 serpentine the first step runs from (0,0) down to
// (0,1), so the midpoint between those centers is on the path.
func TestImage_PathPixels(t *testing.T) {
	opts := render.DefaultOptions()
	opts.CellPx = 10
	opts.Margin = 0

	img, err := render.Image(makeRecord(t, 4, 4), opts)
	require.NoError(t, err)

	// Centers of (0,0) and (0,1) are (5,5) and (5,15); (5,10) sits between.
	require.Equal(t, opts.Path, img.RGBAAt(5, 10))
}

// TestImage_SeamStubs: the canonical closing edge (width−1,0)→(0,0) must
// not paint a continuous row-0 line; instead both borders carry seam-
// colored stubs and the midrow between interior columns stays background.
func TestImage_SeamStubs(t *testing.T) {
	opts := render.DefaultOptions()
	opts.CellPx = 10
	opts.Margin = 0

	img, err := render.Image(makeRecord(t, 4, 4), opts)
	require.NoError(t, err)

	// Stub leaving column 3 toward the right border (center (35,5),
	// marker-free pixel at x=38) and the mirror stub left of column 0's
	// center (5,5) at x=2.
	require.Equal(t, opts.Seam, img.RGBAAt(38, 5))
	require.Equal(t, opts.Seam, img.RGBAAt(2, 5))

	// Columns 0 and 1 connect at the bottom row, so row 0 between their
	// centers carries no edge at all.
	require.Equal(t, opts.Background, img.RGBAAt(10, 5))
}

func TestImage_MalformedRecord(t *testing.T) {
	rec := pathio.Record{Width: 4, Height: 4, Vertices: [][2]int{{0, 0}}}

	_, err := render.Image(rec, render.DefaultOptions())
	require.ErrorIs(t, err, pathio.ErrMalformedPath)
}

func TestImage_BadOptions(t *testing.T) {
	rec := makeRecord(t, 2, 2)

	opts := render.DefaultOptions()
	opts.CellPx = 0
	_, err := render.Image(rec, opts)
	require.Error(t, err)

	opts = render.DefaultOptions()
	opts.Margin = -1
	_, err = render.Image(rec, opts)
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	img, err := render.Image(makeRecord(t, 4, 4), render.DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cycle.png")
	require.NoError(t, render.WritePNG(path, img))
	require.FileExists(t, path)
}
