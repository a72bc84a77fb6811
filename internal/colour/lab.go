package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab is a colour in CIE L*a*b* space (D65 white point) on the conventional
// scale: L in [0, 100], a and b roughly in [-128, 127].
// It is only used for perceptual distance and interpolation.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the Lab components rounded to two decimals.
func (lab Lab) String() string {
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", lab.L, lab.A, lab.B)
}

// go-colorful works on a 0-1 scale for all three Lab components.
const labScale = 100.0

// Lab converts the colour to CIE L*a*b*.
func (c Colour) Lab() Lab {
	l, a, b := c.colorful().Lab()
	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}
}

// FromLab converts a Lab value back to sRGB, clamping out-of-gamut results.
func FromLab(lab Lab) Colour {
	return fromColorful(colorful.Lab(lab.L/labScale, lab.A/labScale, lab.B/labScale))
}

// DeltaE returns the CIE76 colour difference (Euclidean distance in Lab).
// Identical colours have a distance of zero.
func DeltaE(a, b Colour) float64 {
	return a.colorful().DistanceLab(b.colorful()) * labScale
}

func (c Colour) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.rgb.R) / 255.0,
		G: float64(c.rgb.G) / 255.0,
		B: float64(c.rgb.B) / 255.0,
	}
}

func fromColorful(cf colorful.Color) Colour {
	r, g, b := cf.Clamped().RGB255()
	return NewColour(r, g, b)
}
