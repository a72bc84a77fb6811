package colour

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Shade is a stop in a ten-step shade ramp. 50 is the lightest, 900 the darkest.
type Shade int

// Shade keys, lightest to darkest.
const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
)

// Shades lists every shade key in ascending order.
var Shades = [...]Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400,
	Shade500, Shade600, Shade700, Shade800, Shade900,
}

// ParseShade parses a shade key such as "500".
func ParseShade(s string) (Shade, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid shade %q", s)
	}
	shade := Shade(n)
	if shade.index() < 0 {
		return 0, fmt.Errorf("invalid shade %q (valid: 50, 100-900 in steps of 100)", s)
	}
	return shade, nil
}

// String returns the shade key, e.g. "500".
func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// Number returns the shade as an integer.
func (s Shade) Number() int {
	return int(s)
}

// Valid reports whether s is one of the ten shade keys.
func (s Shade) Valid() bool {
	return s.index() >= 0
}

func (s Shade) index() int {
	switch {
	case s == Shade50:
		return 0
	case s >= Shade100 && s <= Shade900 && s%100 == 0:
		return int(s / 100)
	default:
		return -1
	}
}

// Palette is a complete ten-stop shade ramp. It is an immutable value:
// operations that change a palette return a new one.
type Palette struct {
	colours [len(Shades)]Colour
}

// NewPalette builds a palette from a shade map. Every shade must be present.
func NewPalette(colours map[Shade]Colour) (Palette, error) {
	var p Palette
	for i, shade := range Shades {
		c, ok := colours[shade]
		if !ok {
			return Palette{}, fmt.Errorf("palette is missing shade %s", shade)
		}
		p.colours[i] = c
	}
	if len(colours) != len(Shades) {
		return Palette{}, fmt.Errorf("palette has %d shades, want %d", len(colours), len(Shades))
	}
	return p, nil
}

// Get returns the colour at the given shade. Unknown shades return black and false.
func (p Palette) Get(shade Shade) (Colour, bool) {
	i := shade.index()
	if i < 0 {
		return Colour{}, false
	}
	return p.colours[i], true
}

// MustGet returns the colour at the given shade and panics for unknown shades.
func (p Palette) MustGet(shade Shade) Colour {
	c, ok := p.Get(shade)
	if !ok {
		panic(fmt.Sprintf("shade %d not found in palette", shade))
	}
	return c
}

// Base returns the 500 stop.
func (p Palette) Base() Colour {
	return p.MustGet(Shade500)
}

// With returns a copy of the palette with one shade recoloured.
func (p Palette) With(shade Shade, c Colour) Palette {
	if i := shade.index(); i >= 0 {
		p.colours[i] = c
	}
	return p
}

// All returns an iterator over the palette in ascending shade order.
func (p Palette) All() func(func(Shade, Colour) bool) {
	return func(yield func(Shade, Colour) bool) {
		for i, shade := range Shades {
			if !yield(shade, p.colours[i]) {
				return
			}
		}
	}
}

// Map returns the palette as shade key → hex, the form theme export
// collaborators consume.
func (p Palette) Map() map[string]string {
	m := make(map[string]string, len(Shades))
	for shade, c := range p.All() {
		m[shade.String()] = c.Hex()
	}
	return m
}

// MarshalJSON encodes the palette as an object ordered by shade.
func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, shade := range Shades {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%q", shade.String(), p.colours[i].Hex())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a shade key → hex object.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var raw map[string]Colour
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	colours := make(map[Shade]Colour, len(raw))
	for key, c := range raw {
		shade, err := ParseShade(key)
		if err != nil {
			return err
		}
		colours[shade] = c
	}
	parsed, err := NewPalette(colours)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String returns a human-readable representation of the palette.
func (p Palette) String() string {
	var sb strings.Builder
	for shade, c := range p.All() {
		fmt.Fprintf(&sb, "%4s: %s\n", shade, c.Hex())
	}
	return sb.String()
}
