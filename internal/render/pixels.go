package render

import (
	"image/color"

	"lifemap/pkg/life"
)

// fillAgeRGBA converts cell data into RGBA pixels in buf, indexing the
// palette by age. Ages past the end of the palette clamp to its last entry.
// Dead cells take the dead color, or transparent black when trails is set so
// previously drawn pixels show through.
func fillAgeRGBA(buf []byte, cells []life.Cell, palette []color.RGBA, dead color.RGBA, trails bool) {
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		base := i * 4
		if !c.Alive || c.Age <= 0 {
			if trails {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			buf[base+0] = dead.R
			buf[base+1] = dead.G
			buf[base+2] = dead.B
			buf[base+3] = dead.A
			continue
		}
		idx := c.Age - 1
		if idx > last {
			idx = last
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
