package colour

import (
	"math"
	"strconv"
	"strings"
)

// namedColours is the fixed table of CSS named colours accepted by
// Normalize. Extraction collaborators emit anything beyond this as hex
// or rgb() notation.
var namedColours = map[string]RGB{
	"black":  {R: 0x00, G: 0x00, B: 0x00},
	"white":  {R: 0xFF, G: 0xFF, B: 0xFF},
	"red":    {R: 0xFF, G: 0x00, B: 0x00},
	"blue":   {R: 0x00, G: 0x00, B: 0xFF},
	"green":  {R: 0x00, G: 0x80, B: 0x00},
	"gray":   {R: 0x80, G: 0x80, B: 0x80},
	"grey":   {R: 0x80, G: 0x80, B: 0x80},
	"yellow": {R: 0xFF, G: 0xFF, B: 0x00},
}

// Normalize parses a raw colour string into its canonical RGB form.
// Accepted forms:
//   - hex: #RGB, #RGBA, #RRGGBB, #RRGGBBAA (alpha ignored)
//   - functional: rgb(r, g, b) and rgba(r, g, b, a) with numeric
//     components truncated to integers (alpha ignored)
//   - named: black, white, red, blue, green, gray, grey, yellow
//
// Returns false for anything malformed or out of range. Callers must
// not substitute a default colour on failure: a fabricated black or
// white corrupts the contrast statistics downstream.
func Normalize(raw string) (RGB, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseFunctional(lower)
	}

	if c, ok := namedColours[lower]; ok {
		return c, true
	}

	return RGB{}, false
}

// parseHex parses the digits of a hex colour (without the leading '#').
// 3- and 4-digit shorthand is expanded by doubling each digit; a
// trailing alpha pair is discarded.
func parseHex(h string) (RGB, bool) {
	switch len(h) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(h); i++ {
			expanded = append(expanded, h[i], h[i])
		}
		h = string(expanded)
	case 6, 8:
		// Full form, possibly with alpha.
	default:
		return RGB{}, false
	}

	r, okR := hexByte(h[0:2])
	g, okG := hexByte(h[2:4])
	b, okB := hexByte(h[4:6])
	if !okR || !okG || !okB {
		return RGB{}, false
	}
	if len(h) == 8 {
		if _, ok := hexByte(h[6:8]); !ok {
			return RGB{}, false
		}
	}

	return RGB{R: r, G: g, B: b}, true
}

// hexByte converts a two-character hex string to a byte.
func hexByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// parseFunctional parses lowercased rgb(...) / rgba(...) notation.
// rgb takes exactly three components, rgba exactly four; the alpha
// component only has to be numeric.
func parseFunctional(s string) (RGB, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGB{}, false
	}

	wantAlpha := strings.HasPrefix(s, "rgba")
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if (wantAlpha && len(parts) != 4) || (!wantAlpha && len(parts) != 3) {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return RGB{}, false
		}
		v := int(f) // truncate fractional components
		if v < 0 || v > 255 {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}

	if wantAlpha {
		if _, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err != nil {
			return RGB{}, false
		}
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}
