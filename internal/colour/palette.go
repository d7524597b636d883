package colour

import (
	"encoding/json"
	"fmt"
)

// DefaultMaxColours bounds the palette size so that the O(n²) pair
// generation downstream stays cheap (n=24 means at most 552 ordered
// pairs, ~2,200 ratio evaluations across the four vision modes).
const DefaultMaxColours = 24

// Palette is an ordered sequence of unique colours. Insertion order is
// preserved, duplicates by canonical value are suppressed, and the
// sequence is truncated to a maximum size after deduplication.
type Palette struct {
	colours   []RGB
	requested int
}

// NewPalette builds a Palette from raw colour strings. Each string is
// normalized via Normalize; unparseable entries are skipped rather than
// defaulted, and the skip is observable through Requested vs Len.
// A max of 0 or less selects DefaultMaxColours.
func NewPalette(raw []string, max int) *Palette {
	if max <= 0 {
		max = DefaultMaxColours
	}

	p := &Palette{requested: len(raw)}
	seen := make(map[RGB]struct{}, len(raw))
	for _, s := range raw {
		c, ok := Normalize(s)
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		p.colours = append(p.colours, c)
	}

	if len(p.colours) > max {
		p.colours = p.colours[:max]
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.colours)
}

// Requested returns the number of raw colour strings the palette was
// built from, before normalization, deduplication and truncation.
func (p *Palette) Requested() int {
	return p.requested
}

// Colours returns the palette colours in insertion order. The slice is
// shared; callers must not mutate it.
func (p *Palette) Colours() []RGB {
	return p.colours
}

// ToHex converts the palette colours to uppercase hex strings
// (e.g., ["#1A2B3C", "#4D5E6F"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.colours))
	for i, c := range p.colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count     int      `json:"count"`
	Requested int      `json:"requested"`
	Colours   []string `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(PaletteJSON{
		Count:     len(p.colours),
		Requested: p.requested,
		Colours:   p.ToHex(),
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.colours))
	for i, c := range p.colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}
