package colour

// VisionMode identifies a vision condition under which contrast is
// evaluated. Normal is the identity; the three deficiency modes apply a
// fixed linear approximation of the corresponding dichromacy.
type VisionMode int

const (
	Normal VisionMode = iota
	Protanopia
	Deuteranopia
	Tritanopia
)

// String returns the lowercase name of the vision mode.
func (m VisionMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Protanopia:
		return "protanopia"
	case Deuteranopia:
		return "deuteranopia"
	case Tritanopia:
		return "tritanopia"
	default:
		return "unknown"
	}
}

// Deficiencies lists the non-Normal vision modes in evaluation order.
func Deficiencies() []VisionMode {
	return []VisionMode{Protanopia, Deuteranopia, Tritanopia}
}

// visionMatrices holds the fixed 3x3 transforms applied to [0,1]-scaled
// RGB channels. The constants are the standard linear dichromacy
// approximations; each row sums to 1, so white maps to white.
var visionMatrices = map[VisionMode][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.0},
		{0.558, 0.442, 0.0},
		{0.0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.0},
		{0.7, 0.3, 0.0},
		{0.0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0.0},
		{0.0, 0.433, 0.567},
		{0.0, 0.475, 0.525},
	},
}

// Simulate returns the colour as perceived under the given vision mode.
// Normal returns the colour unchanged. Deficiency modes apply the
// mode's matrix to the channels normalized to [0,1], clamp each result
// to [0,1] and rescale to [0,255]. The transform is deterministic.
func Simulate(c RGB, mode VisionMode) RGB {
	m, ok := visionMatrices[mode]
	if !ok {
		return c
	}

	in := [3]float64{
		float64(c.R) / 255.0,
		float64(c.G) / 255.0,
		float64(c.B) / 255.0,
	}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		v := m[i][0]*in[0] + m[i][1]*in[1] + m[i][2]*in[2]
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out[i] = uint8(v * 255.0)
	}

	return RGB{R: out[0], G: out[1], B: out[2]}
}
