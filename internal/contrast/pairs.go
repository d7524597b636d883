// Package contrast generates foreground/background colour pairs from a
// palette and classifies them against a WCAG contrast threshold, under
// normal vision and simulated colour-vision deficiencies.
package contrast

import (
	"github.com/chromalint/chromalint/internal/colour"
)

// CBRatios holds the contrast ratio of a pair under each simulated
// colour-vision deficiency.
type CBRatios struct {
	Protanopia   float64 `json:"protanopia"`
	Deuteranopia float64 `json:"deuteranopia"`
	Tritanopia   float64 `json:"tritanopia"`
}

// Pair is an ordered foreground/background colour pair with its
// contrast ratio under every vision mode. (A,B) and (B,A) share the
// same ratios but are distinct pairs: the roles matter for reporting.
type Pair struct {
	Foreground colour.RGB
	Background colour.RGB

	// Ratio is the contrast ratio under normal vision.
	Ratio float64
	CB    CBRatios
}

// MinRatio returns the minimum contrast ratio across all vision modes.
func (p Pair) MinRatio() float64 {
	min := p.Ratio
	for _, r := range []float64{p.CB.Protanopia, p.CB.Deuteranopia, p.CB.Tritanopia} {
		if r < min {
			min = r
		}
	}
	return min
}

// ratioFor computes the contrast ratio of a pair under a vision mode by
// simulating both colours first.
func ratioFor(fg, bg colour.RGB, mode colour.VisionMode) float64 {
	return colour.ContrastRatio(colour.Simulate(fg, mode), colour.Simulate(bg, mode))
}

// NewPair evaluates a single foreground/background combination under
// all vision modes.
func NewPair(fg, bg colour.RGB) Pair {
	return Pair{
		Foreground: fg,
		Background: bg,
		Ratio:      colour.ContrastRatio(fg, bg),
		CB: CBRatios{
			Protanopia:   ratioFor(fg, bg, colour.Protanopia),
			Deuteranopia: ratioFor(fg, bg, colour.Deuteranopia),
			Tritanopia:   ratioFor(fg, bg, colour.Tritanopia),
		},
	}
}

// GeneratePairs produces all ordered pairs of distinct palette colours,
// n*(n-1) for a palette of size n, in palette order. The palette is
// already deduplicated and capped, which bounds the quadratic cost.
func GeneratePairs(p *colour.Palette) []Pair {
	colours := p.Colours()
	n := len(colours)
	if n < 2 {
		return nil
	}

	pairs := make([]Pair, 0, n*(n-1))
	for i, fg := range colours {
		for j, bg := range colours {
			if i == j {
				continue
			}
			pairs = append(pairs, NewPair(fg, bg))
		}
	}
	return pairs
}
