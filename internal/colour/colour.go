// Package colour converts between colour representations and derives shade
// ramps, harmonies and adjustments from a single base colour.
//
// Every function in this package is pure: inputs are values, outputs are new
// values, and nothing is cached or shared between calls.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Colour is a validated sRGB colour. Values can only be built from parsed hex
// or finite channel values, so a Colour is always safe to convert.
// The zero value is black.
type Colour struct {
	rgb RGB
}

// Black and White are the two candidate text colours.
var (
	Black = Colour{}
	White = Colour{rgb: RGB{R: 255, G: 255, B: 255}}
)

// NewColour creates a Colour from 8-bit channels.
func NewColour(r, g, b uint8) Colour {
	return Colour{rgb: RGB{R: r, G: g, B: b}}
}

// Normalise parses a 3- or 6-digit hex colour, with or without a leading '#',
// and returns it as a Colour. Surrounding whitespace is ignored.
func Normalise(input string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(input), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("%w: %q: expected 3 or 6 hex digits", ErrInvalidColourFormat, input)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %q: not a hex value", ErrInvalidColourFormat, input)
	}

	return NewColour(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// NormaliseHex is Normalise for callers that only deal in strings.
func NormaliseHex(input string) (string, error) {
	c, err := Normalise(input)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// MustParse is like Normalise but panics on error. Intended for constants.
func MustParse(input string) Colour {
	c, err := Normalise(input)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Colour from numeric channels. Finite values are rounded to
// the nearest integer and clamped to [0, 255]; NaN and infinities are rejected.
func FromRGB(r, g, b float64) (Colour, error) {
	for _, v := range []float64{r, g, b} {
		if !isFinite(v) {
			return Colour{}, fmt.Errorf("%w: rgb(%v, %v, %v)", ErrInvalidChannelRange, r, g, b)
		}
	}
	return NewColour(channel(r), channel(g), channel(b)), nil
}

// Hex returns the canonical "#RRGGBB" form.
func (c Colour) Hex() string {
	return c.rgb.Hex()
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.rgb.Hex()
}

// RGB returns the colour's 8-bit channels.
func (c Colour) RGB() RGB {
	return c.rgb
}

// MarshalText encodes the colour as canonical hex.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes and validates a hex colour.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := Normalise(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// channel rounds and clamps a finite value into an 8-bit channel.
func channel(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
