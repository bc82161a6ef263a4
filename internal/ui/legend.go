//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"lifemap/pkg/heatmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	legendMargin    = 8
	legendBarHeight = 10
)

// Legend draws a horizontal age gradient with min/mid/max labels along the
// bottom edge of the screen.
type Legend struct {
	maxAge  int
	variant heatmap.Variant
	visible bool

	bar  *ebiten.Image
	barW int
}

// NewLegend constructs a visible legend for the given age range and palette.
func NewLegend(maxAge int, v heatmap.Variant) *Legend {
	return &Legend{maxAge: maxAge, variant: v, visible: true}
}

// Toggle flips the legend's visibility.
func (l *Legend) Toggle() {
	if l == nil {
		return
	}
	l.visible = !l.visible
}

// Draw paints the gradient bar and its labels. A nil or hidden legend draws
// nothing.
func (l *Legend) Draw(screen *ebiten.Image) {
	if l == nil || !l.visible {
		return
	}
	bounds := screen.Bounds()
	barW := bounds.Dx() - 2*legendMargin
	if barW < 2 {
		return
	}
	l.ensureBar(barW)

	barY := bounds.Dy() - legendMargin - legendBarHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(legendMargin, float64(barY))
	screen.DrawImage(l.bar, op)

	labelY := barY - 4
	white := color.White
	midLabel := strconv.Itoa(l.maxAge / 2)
	maxLabel := strconv.Itoa(l.maxAge)
	text.Draw(screen, "0", basicfont.Face7x13, legendMargin, labelY, white)
	text.Draw(screen, midLabel, basicfont.Face7x13, legendMargin+barW/2-len(midLabel)*7/2, labelY, white)
	text.Draw(screen, maxLabel, basicfont.Face7x13, legendMargin+barW-len(maxLabel)*7, labelY, white)
}

func (l *Legend) ensureBar(barW int) {
	if l.bar != nil && l.barW == barW {
		return
	}
	l.barW = barW
	l.bar = ebiten.NewImage(barW, legendBarHeight)
	swatches := heatmap.Gradient(l.maxAge, l.variant, barW)
	buf := make([]byte, 4*barW*legendBarHeight)
	for y := 0; y < legendBarHeight; y++ {
		for x := 0; x < barW; x++ {
			col := swatches[x]
			base := (y*barW + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	l.bar.WritePixels(buf)
}
