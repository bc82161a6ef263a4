package heatmap

import (
	"image/color"
	"testing"
)

func TestDeadAgeReturnsDeadColor(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantRainbow} {
		if got := ColorForAge(0, 50, v); got != DeadColor {
			t.Fatalf("%s: age 0 returned %v, expected the dead color", v, got)
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}

	for _, v := range []Variant{VariantClassic, VariantRainbow} {
		if got := ColorForAge(50, 50, v); got != red {
			t.Fatalf("%s: max age returned %v, expected pure red", v, got)
		}
		if got := ColorForAge(25, 50, v); got != green {
			t.Fatalf("%s: midpoint age returned %v, expected the pure green stop", v, got)
		}
	}

	// A single-step range jumps straight to the old endpoint.
	if got := ColorForAge(1, 1, VariantClassic); got != red {
		t.Fatalf("maxAge 1: got %v, expected red", got)
	}
	if got := halfColor(VariantClassic, false, 0); got != blue {
		t.Fatalf("young endpoint: got %v, expected blue", got)
	}
}

func TestAgesPastMaxClamp(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantRainbow} {
		want := ColorForAge(50, 50, v)
		if got := ColorForAge(75, 50, v); got != want {
			t.Fatalf("%s: age past max returned %v, expected %v", v, got, want)
		}
	}
}

func TestInterpolationFractionMonotonic(t *testing.T) {
	// The interpolation fraction growing with age shows up directly in the
	// channels: classic fades blue out over the young half and red in over
	// the old half.
	prevBlue := 255
	for age := 1; age <= 25; age++ {
		c := ColorForAge(age, 50, VariantClassic)
		if int(c.B) > prevBlue {
			t.Fatalf("blue channel rose at age %d: %d > %d", age, c.B, prevBlue)
		}
		prevBlue = int(c.B)
	}
	prevRed := 0
	for age := 26; age <= 50; age++ {
		c := ColorForAge(age, 50, VariantClassic)
		if int(c.R) < prevRed {
			t.Fatalf("red channel fell at age %d: %d < %d", age, c.R, prevRed)
		}
		prevRed = int(c.R)
	}
}

func TestRainbowPassesThroughExtraStops(t *testing.T) {
	// The nested interpolation keeps green fully saturated at the quarter
	// points, where the blend is centered on the cyan and yellow stops.
	q1 := ColorForAge(13, 52, VariantRainbow)
	if q1.R != 0 || q1.G == 0 || q1.B == 0 {
		t.Fatalf("first quarter should mix cyan tones, got %v", q1)
	}
	q3 := ColorForAge(39, 52, VariantRainbow)
	if q3.B != 0 || q3.G == 0 || q3.R == 0 {
		t.Fatalf("third quarter should mix yellow tones, got %v", q3)
	}
}

func TestGradientSampling(t *testing.T) {
	swatches := Gradient(50, VariantClassic, 50)
	if len(swatches) != 50 {
		t.Fatalf("gradient length: got %d, expected 50", len(swatches))
	}
	if swatches[0] != ColorForAge(1, 50, VariantClassic) {
		t.Fatalf("gradient start: got %v", swatches[0])
	}
	if swatches[49] != ColorForAge(50, 50, VariantClassic) {
		t.Fatalf("gradient end: got %v", swatches[49])
	}
	if Gradient(50, VariantClassic, 0) != nil {
		t.Fatal("zero-width gradient should be nil")
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("classic")
	if err != nil || v != VariantClassic {
		t.Fatalf("classic: %v, %v", v, err)
	}
	v, err = ParseVariant("rainbow")
	if err != nil || v != VariantRainbow {
		t.Fatalf("rainbow: %v, %v", v, err)
	}
	if _, err := ParseVariant("plasma"); err == nil {
		t.Fatal("unknown palette did not error")
	}
}
