//go:build ebiten

package render

import (
	"image/color"

	"lifemap/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell colors into a single RGBA image and draws it
// scaled. The backing image follows the grid's dimensions, so the painter
// survives runtime resizes.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []life.Cell
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.ensure(w, h)
	return gp
}

func (gp *GridPainter) ensure(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit renders the grid's current generation into dst at the given pixel
// scale. In trails mode dead cells are skipped rather than painted over, so
// dst keeps whatever was drawn before.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, palette []color.RGBA, dead color.RGBA, scale int, trails bool) {
	size := g.Dims()
	gp.ensure(size.W, size.H)
	if gp.img == nil {
		return
	}

	gp.cells = gp.cells[:0]
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c, err := g.CellAt(x, y)
			if err != nil {
				return
			}
			gp.cells = append(gp.cells, c)
		}
	}
	fillAgeRGBA(gp.buf, gp.cells, palette, dead, trails)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
