// Package heatmap maps cell ages onto a color gradient for display.
package heatmap

import (
	"fmt"
	"image/color"
)

// Variant selects the gradient palette.
type Variant int

const (
	// VariantClassic interpolates across three stops: blue, green, red.
	VariantClassic Variant = iota
	// VariantRainbow adds cyan and yellow between the classic stops:
	// blue, cyan, green, yellow, red.
	VariantRainbow
)

// DeadColor is returned for age 0 and doubles as the renderer's background.
var DeadColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

var (
	stopBlue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	stopCyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	stopGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	stopYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	stopRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ParseVariant maps a flag value onto a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "classic":
		return VariantClassic, nil
	case "rainbow":
		return VariantRainbow, nil
	}
	return VariantClassic, fmt.Errorf("heatmap: unknown palette %q", name)
}

// String returns the flag spelling of the variant.
func (v Variant) String() string {
	if v == VariantRainbow {
		return "rainbow"
	}
	return "classic"
}

// ColorForAge maps an age to an RGB color. Age 0 yields DeadColor. Positive
// ages normalize against maxAge (clamped to [0, 1]); the first half of the
// range interpolates from the young to the middle stop, the second half from
// the middle to the old stop.
func ColorForAge(age, maxAge int, v Variant) color.RGBA {
	if age <= 0 {
		return DeadColor
	}
	if maxAge <= 0 {
		maxAge = 1
	}
	norm := float64(age) / float64(maxAge)
	if norm > 1 {
		norm = 1
	}
	if norm <= 0.5 {
		return halfColor(v, false, norm*2)
	}
	return halfColor(v, true, (norm-0.5)*2)
}

func halfColor(v Variant, old bool, t float64) color.RGBA {
	switch {
	case v == VariantRainbow && old:
		return lerpThrough(stopGreen, stopYellow, stopRed, t)
	case v == VariantRainbow:
		return lerpThrough(stopBlue, stopCyan, stopGreen, t)
	case old:
		return lerp(stopGreen, stopRed, t)
	default:
		return lerp(stopBlue, stopGreen, t)
	}
}

// lerp blends a toward b per channel, rounding to the nearest integer value.
func lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

// lerpThrough blends across a middle stop by nesting two lerps: the result
// at t is the blend of lerp(a,mid,t) and lerp(mid,b,t). Endpoints and the
// middle stop are hit exactly.
func lerpThrough(a, mid, b color.RGBA, t float64) color.RGBA {
	return lerp(lerp(a, mid, t), lerp(mid, b, t), t)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Gradient samples the palette into width swatches covering ages 1..maxAge,
// left to right from youngest to oldest. Renderers index it by age to avoid
// interpolating per cell; the legend draws it directly.
func Gradient(maxAge int, v Variant, width int) []color.RGBA {
	if width <= 0 {
		return nil
	}
	out := make([]color.RGBA, width)
	if width == 1 {
		out[0] = ColorForAge(maxAge, maxAge, v)
		return out
	}
	for i := range out {
		age := 1 + i*(maxAge-1)/(width-1)
		out[i] = ColorForAge(age, maxAge, v)
	}
	return out
}
