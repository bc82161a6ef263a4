package render

import (
	"image/color"
	"testing"

	"lifemap/pkg/life"
)

func TestFillAgeRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, A: 255},
		{R: 20, A: 255},
	}
	dead := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	cells := []life.Cell{
		{},
		{Alive: true, Age: 1},
		{Alive: true, Age: 2},
		{Alive: true, Age: 9}, // past the palette, clamps to the last entry
	}
	buf := make([]byte, 4*len(cells))

	fillAgeRGBA(buf, cells, palette, dead, false)
	if buf[0] != dead.R || buf[1] != dead.G || buf[2] != dead.B || buf[3] != dead.A {
		t.Fatalf("dead cell pixel: %v", buf[0:4])
	}
	if buf[4] != 10 || buf[8] != 20 || buf[12] != 20 {
		t.Fatalf("alive pixels: %v %v %v", buf[4:8], buf[8:12], buf[12:16])
	}

	fillAgeRGBA(buf, cells, palette, dead, true)
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 0 {
		t.Fatalf("trails mode should leave dead cells transparent: %v", buf[0:4])
	}
	if buf[4] != 10 {
		t.Fatalf("trails mode changed alive pixel: %v", buf[4:8])
	}
}
