// Package colour provides the canonical colour model for contrast
// analysis: an 8-bit RGB value type, WCAG relative luminance and
// contrast ratio primitives, and colour-vision deficiency simulation.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour in 8-bit-per-channel RGB format.
// It is the canonical internal representation; construct values from
// external input via Normalize, which rejects anything malformed.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	// Black and White are the candidate text colours used by
	// BestTextColor and foreground suggestions.
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as an uppercase 6-digit hex string (e.g. "#1A2B3C").
// This is the interchange form: Normalize(c.Hex()) round-trips exactly.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies the sRGB-to-linear transfer function to a
// normalized colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0, rounded to 2 decimal places. Returns a value
// between 1 and 21, where 21 is maximum contrast (black vs white).
// The result is symmetric: ContrastRatio(a, b) == ContrastRatio(b, a).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return round2((l1 + 0.05) / (l2 + 0.05))
}

// BestTextColor returns pure black or pure white, whichever has the
// higher contrast ratio against the given background. Ties favour white.
func BestTextColor(bg RGB) RGB {
	white := ContrastRatio(bg, White)
	black := ContrastRatio(bg, Black)
	if white >= black {
		return White
	}
	return Black
}

// round2 rounds to 2 decimal places, the precision used for all
// reported ratios.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
