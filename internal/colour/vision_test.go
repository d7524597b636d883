package colour

import (
	"testing"
)

func TestSimulateNormalIsIdentity(t *testing.T) {
	colours := []RGB{
		{},
		{R: 255, G: 255, B: 255},
		{R: 255},
		{R: 0x1A, G: 0x2B, B: 0x3C},
		{R: 0x77, G: 0x77, B: 0x77},
	}

	for _, c := range colours {
		if got := Simulate(c, Normal); got != c {
			t.Errorf("Simulate(%s, Normal) = %s, want identity", c.Hex(), got.Hex())
		}
	}
}

func TestSimulateKnownValues(t *testing.T) {
	red := RGB{R: 255}
	green := RGB{G: 255}
	blue := RGB{B: 255}
	white := RGB{R: 255, G: 255, B: 255}

	tests := []struct {
		name string
		c    RGB
		mode VisionMode
		want RGB
	}{
		// Matrix rows sum to 1, so white and black are preserved.
		{name: "white protanopia", c: white, mode: Protanopia, want: white},
		{name: "white deuteranopia", c: white, mode: Deuteranopia, want: white},
		{name: "white tritanopia", c: white, mode: Tritanopia, want: white},
		{name: "black protanopia", c: RGB{}, mode: Protanopia, want: RGB{}},

		{name: "red protanopia", c: red, mode: Protanopia, want: RGB{R: 144, G: 142, B: 0}},
		{name: "red deuteranopia", c: red, mode: Deuteranopia, want: RGB{R: 159, G: 178, B: 0}},
		{name: "red tritanopia", c: red, mode: Tritanopia, want: RGB{R: 242, G: 0, B: 0}},

		{name: "green protanopia", c: green, mode: Protanopia, want: RGB{R: 110, G: 112, B: 61}},
		{name: "blue protanopia", c: blue, mode: Protanopia, want: RGB{R: 0, G: 0, B: 193}},
		{name: "blue tritanopia", c: blue, mode: Tritanopia, want: RGB{R: 0, G: 144, B: 133}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simulate(tt.c, tt.mode); got != tt.want {
				t.Errorf("Simulate(%s, %s) = %+v, want %+v", tt.c.Hex(), tt.mode, got, tt.want)
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	c := RGB{R: 0xF5, G: 0x9E, B: 0x0B}
	for _, mode := range Deficiencies() {
		first := Simulate(c, mode)
		for i := 0; i < 10; i++ {
			if got := Simulate(c, mode); got != first {
				t.Fatalf("Simulate(%s, %s) not deterministic: %s vs %s", c.Hex(), mode, got.Hex(), first.Hex())
			}
		}
	}
}

func TestVisionModeString(t *testing.T) {
	tests := []struct {
		mode VisionMode
		want string
	}{
		{mode: Normal, want: "normal"},
		{mode: Protanopia, want: "protanopia"},
		{mode: Deuteranopia, want: "deuteranopia"},
		{mode: Tritanopia, want: "tritanopia"},
		{mode: VisionMode(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("VisionMode(%d).String() = %s, want %s", tt.mode, got, tt.want)
		}
	}
}
