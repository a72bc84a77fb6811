package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in HSL space. H is in degrees [0, 360), S and L are
// fractions in [0, 1]. Percentages only appear when formatting for display.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour in CSS notation, e.g. "hsl(210, 62%, 50%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S*100, h.L*100)
}

// HSL converts the colour to HSL.
func (c Colour) HSL() HSL {
	h, s, l := rgbToHSL(c.rgb)
	return HSL{H: h, S: s, L: l}
}

// FromHSL builds a Colour from HSL components. Hue wraps into [0, 360),
// saturation and lightness are clamped into [0, 1]. NaN and infinities are
// rejected.
func FromHSL(h, s, l float64) (Colour, error) {
	if !isFinite(h) || !isFinite(s) || !isFinite(l) {
		return Colour{}, fmt.Errorf("%w: hsl(%v, %v, %v)", ErrInvalidChannelRange, h, s, l)
	}
	return fromHSL(HSL{H: h, S: s, L: l}), nil
}

// fromHSL converts engine-produced HSL values, which are always finite.
func fromHSL(hsl HSL) Colour {
	return Colour{rgb: hslToRGB(NormaliseHue(hsl.H), clamp01(hsl.S), clamp01(hsl.L))}
}

// NormaliseHue wraps a hue in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return h * 60, s, l
}

// hslToRGB converts HSL to RGB, rounding each channel to the nearest integer
// so that RGB -> HSL -> RGB is lossless.
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := channel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+120) * 255),
		G: channel(hueToRGB(p, q, h) * 255),
		B: channel(hueToRGB(p, q, h-120) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion; t is in degrees.
func hueToRGB(p, q, t float64) float64 {
	t = NormaliseHue(t)

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}
