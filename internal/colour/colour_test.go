package colour

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

// sampleColours returns a deterministic grid of colours covering the RGB cube.
func sampleColours() []Colour {
	var colours []Colour
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				colours = append(colours, NewColour(uint8(r), uint8(g), uint8(b)))
			}
		}
	}
	// A few off-grid values to catch rounding at odd channels.
	for _, hex := range []string{"#3182CE", "#010203", "#FEFDFC", "#7F8081", "#C0FFEE", "#BADA55"} {
		colours = append(colours, MustParse(hex))
	}
	return colours
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "six digit with hash", input: "#3182CE", want: "#3182CE"},
		{name: "lowercase", input: "#3182ce", want: "#3182CE"},
		{name: "no hash", input: "3182ce", want: "#3182CE"},
		{name: "shorthand", input: "#abc", want: "#AABBCC"},
		{name: "shorthand no hash", input: "fff", want: "#FFFFFF"},
		{name: "surrounding whitespace", input: "  #000000 ", want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalise(tt.input)
			if err != nil {
				t.Fatalf("Normalise(%q) error = %v", tt.input, err)
			}
			if got.Hex() != tt.want {
				t.Errorf("Normalise(%q) = %s, want %s", tt.input, got.Hex(), tt.want)
			}
		})
	}
}

func TestNormaliseInvalid(t *testing.T) {
	inputs := []string{"", "#", "#12", "#1234", "#GGGGGG", "#1234567", "red", "#-12345", "#12 345"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Normalise(input)
			if !errors.Is(err, ErrInvalidColourFormat) {
				t.Errorf("Normalise(%q) error = %v, want ErrInvalidColourFormat", input, err)
			}
		})
	}
}

func TestNormaliseHex(t *testing.T) {
	got, err := NormaliseHex("c0ffee")
	if err != nil {
		t.Fatalf("NormaliseHex() error = %v", err)
	}
	if got != "#C0FFEE" {
		t.Errorf("NormaliseHex() = %s, want #C0FFEE", got)
	}

	if _, err := NormaliseHex("nope"); err == nil {
		t.Error("NormaliseHex(\"nope\") expected error")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("not-a-colour")
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{name: "exact", r: 49, g: 130, b: 206, want: "#3182CE"},
		{name: "rounds to nearest", r: 254.6, g: 0.4, b: 127.5, want: "#FF0080"},
		{name: "clamps", r: 300, g: -5, b: 1000, want: "#FF00FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRGB(tt.r, tt.g, tt.b)
			if err != nil {
				t.Fatalf("FromRGB() error = %v", err)
			}
			if got.Hex() != tt.want {
				t.Errorf("FromRGB() = %s, want %s", got.Hex(), tt.want)
			}
		})
	}
}

func TestFromRGBRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{name: "NaN", r: math.NaN(), g: 0, b: 0},
		{name: "+Inf", r: 0, g: math.Inf(1), b: 0},
		{name: "-Inf", r: 0, g: 0, b: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRGB(tt.r, tt.g, tt.b); !errors.Is(err, ErrInvalidChannelRange) {
				t.Errorf("FromRGB() error = %v, want ErrInvalidChannelRange", err)
			}
		})
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "red", h: 0, s: 1, l: 0.5, want: "#FF0000"},
		{name: "negative hue wraps", h: -120, s: 1, l: 0.5, want: "#0000FF"},
		{name: "large hue wraps", h: 480, s: 1, l: 0.5, want: "#00FF00"},
		{name: "saturation clamped", h: 0, s: 2, l: 0.5, want: "#FF0000"},
		{name: "lightness clamped", h: 200, s: 0.5, l: 1.5, want: "#FFFFFF"},
		{name: "grey", h: 0, s: 0, l: 0.5, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHSL(tt.h, tt.s, tt.l)
			if err != nil {
				t.Fatalf("FromHSL() error = %v", err)
			}
			if got.Hex() != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got.Hex(), tt.want)
			}
		})
	}

	if _, err := FromHSL(math.NaN(), 0.5, 0.5); !errors.Is(err, ErrInvalidChannelRange) {
		t.Errorf("FromHSL(NaN) error = %v, want ErrInvalidChannelRange", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range sampleColours() {
		rgb := c.RGB()
		viaRGB, err := FromRGB(float64(rgb.R), float64(rgb.G), float64(rgb.B))
		if err != nil {
			t.Fatalf("FromRGB(%s) error = %v", c, err)
		}
		if viaRGB != c {
			t.Errorf("hex -> RGB -> hex: %s became %s", c, viaRGB)
		}

		hsl := c.HSL()
		viaHSL, err := FromHSL(hsl.H, hsl.S, hsl.L)
		if err != nil {
			t.Fatalf("FromHSL(%s) error = %v", c, err)
		}
		if viaHSL != c {
			t.Errorf("hex -> HSL -> hex: %s became %s (%s)", c, viaHSL, hsl)
		}

		reparsed, err := Normalise(c.Hex())
		if err != nil || reparsed != c {
			t.Errorf("Normalise(%s) = %s, %v", c.Hex(), reparsed, err)
		}
	}
}

func TestHSLRanges(t *testing.T) {
	for _, c := range sampleColours() {
		hsl := c.HSL()
		if hsl.H < 0 || hsl.H >= 360 {
			t.Errorf("%s hue %v out of [0, 360)", c, hsl.H)
		}
		if hsl.S < 0 || hsl.S > 1 || hsl.L < 0 || hsl.L > 1 {
			t.Errorf("%s saturation/lightness out of range: %s", c, hsl)
		}
	}
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		if got := NormaliseHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormaliseHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 180, 180},
		{350, 10, 20},
		{10, 350, 20},
		{120, 120, 0},
		{-30, 30, 60},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestLab(t *testing.T) {
	white := White.Lab()
	if math.Abs(white.L-100) > 0.05 || math.Abs(white.A) > 0.05 || math.Abs(white.B) > 0.05 {
		t.Errorf("White.Lab() = %s, want lab(100, 0, 0)", white)
	}

	black := Black.Lab()
	if math.Abs(black.L) > 0.01 {
		t.Errorf("Black.Lab() = %s, want L = 0", black)
	}

	// Red has a strongly positive a* component.
	if red := MustParse("#FF0000").Lab(); red.A < 50 {
		t.Errorf("red a* = %v, want > 50", red.A)
	}

	for _, c := range sampleColours() {
		if got := FromLab(c.Lab()); DeltaE(got, c) > 1 {
			t.Errorf("FromLab(%s.Lab()) = %s", c, got)
		}
	}
}

func TestDeltaE(t *testing.T) {
	c := MustParse("#3182CE")
	if d := DeltaE(c, c); d != 0 {
		t.Errorf("DeltaE(c, c) = %v, want 0", d)
	}
	if d := DeltaE(Black, White); math.Abs(d-100) > 0.05 {
		t.Errorf("DeltaE(black, white) = %v, want 100", d)
	}
	if DeltaE(Black, c) != DeltaE(c, Black) {
		t.Error("DeltaE is not symmetric")
	}
}

func TestColourJSON(t *testing.T) {
	in := struct {
		Colour Colour `json:"colour"`
	}{Colour: MustParse("#abc")}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"colour":"#AABBCC"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var out struct {
		Colour Colour `json:"colour"`
	}
	if err := json.Unmarshal([]byte(`{"colour":"#zzz"}`), &out); !errors.Is(err, ErrInvalidColourFormat) {
		t.Errorf("Unmarshal(invalid) error = %v, want ErrInvalidColourFormat", err)
	}
}

func TestRGBString(t *testing.T) {
	rgb := MustParse("#3182CE").RGB()
	if got := rgb.String(); got != "rgb(49, 130, 206)" {
		t.Errorf("RGB.String() = %s", got)
	}
	if got := MustParse("#FF0000").HSL().String(); got != "hsl(0, 100%, 50%)" {
		t.Errorf("HSL.String() = %s", got)
	}
}
