package colour

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
)

// Lighten moves lightness toward 1 by amount (0-1) of the remaining headroom.
// Hue and saturation are held constant.
func Lighten(c Colour, amount float64) Colour {
	hsl := c.HSL()
	hsl.L += clamp01(amount) * (1 - hsl.L)
	return fromHSL(hsl)
}

// Darken moves lightness toward 0 by amount (0-1) of the current lightness.
// Hue and saturation are held constant.
func Darken(c Colour, amount float64) Colour {
	hsl := c.HSL()
	hsl.L -= clamp01(amount) * hsl.L
	return fromHSL(hsl)
}

// shadeStep is the lighten/darken fraction applied for a shade before scaling.
type shadeStep struct {
	shade   Shade
	amount  float64
	lighter bool
}

var shadeSteps = [...]shadeStep{
	{Shade50, 0.90, true},
	{Shade100, 0.75, true},
	{Shade200, 0.55, true},
	{Shade300, 0.35, true},
	{Shade400, 0.15, true},
	{Shade600, 0.15, false},
	{Shade700, 0.35, false},
	{Shade800, 0.55, false},
	{Shade900, 0.75, false},
}

// GeneratePalette derives a ten-stop ramp from base. The 500 stop is base
// itself; lighter stops are lightened and darker stops darkened by fixed
// fractions, scaled so that very light or very dark bases still spread out
// instead of clipping to white or black.
func GeneratePalette(base Colour) Palette {
	l := base.HSL().L
	lightScale := math.Max(0.8, 1.2-l)
	darkScale := math.Max(0.8, 0.2+l)

	p := Palette{}.With(Shade500, base)
	for _, step := range shadeSteps {
		if step.lighter {
			p = p.With(step.shade, Lighten(base, step.amount*lightScale))
		} else {
			p = p.With(step.shade, Darken(base, step.amount*darkScale))
		}
	}
	return p
}

// NeutralPalette is the grey ramp substituted for an unparseable base colour
// under FallbackNeutral.
var NeutralPalette = Palette{colours: [len(Shades)]Colour{
	MustParse("#F7FAFC"),
	MustParse("#EDF2F7"),
	MustParse("#E2E8F0"),
	MustParse("#CBD5E0"),
	MustParse("#A0AEC0"),
	MustParse("#718096"),
	MustParse("#4A5568"),
	MustParse("#2D3748"),
	MustParse("#1A202C"),
	MustParse("#171923"),
}}

// FallbackStrategy controls what a Generator does with a base colour it cannot parse.
type FallbackStrategy int

const (
	// FallbackNeutral substitutes NeutralPalette and logs a warning.
	FallbackNeutral FallbackStrategy = iota
	// FallbackError returns an error wrapping ErrInvalidColourFormat.
	FallbackError
)

// String returns the strategy name.
func (f FallbackStrategy) String() string {
	switch f {
	case FallbackNeutral:
		return "neutral"
	case FallbackError:
		return "error"
	default:
		return fmt.Sprintf("FallbackStrategy(%d)", int(f))
	}
}

// ParseFallbackStrategy parses "neutral" or "error".
func ParseFallbackStrategy(s string) (FallbackStrategy, error) {
	switch s {
	case "neutral", "grey", "gray", "":
		return FallbackNeutral, nil
	case "error", "strict":
		return FallbackError, nil
	default:
		return 0, fmt.Errorf("invalid fallback strategy: %s (valid: neutral, error)", s)
	}
}

// Generator turns raw base colour strings into palettes, applying a fallback
// strategy to input that fails to parse.
type Generator struct {
	fallback FallbackStrategy
	logger   hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFallback sets the fallback strategy. The default is FallbackNeutral.
func WithFallback(f FallbackStrategy) Option {
	return func(g *Generator) {
		g.fallback = f
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		fallback: FallbackNeutral,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fallback returns the generator's fallback strategy.
func (g *Generator) Fallback() FallbackStrategy {
	return g.fallback
}

// Generate parses base and derives its palette. Under FallbackNeutral an
// unparseable base yields NeutralPalette and a nil error; under
// FallbackError the parse error is returned.
func (g *Generator) Generate(base string) (Palette, error) {
	c, err := Normalise(base)
	if err != nil {
		if g.fallback == FallbackError {
			return Palette{}, fmt.Errorf("failed to generate palette: %w", err)
		}
		g.logger.Warn("unparseable base colour, using neutral palette", "base", base, "error", err)
		return NeutralPalette, nil
	}
	g.logger.Debug("generating palette", "base", c.Hex())
	return GeneratePalette(c), nil
}

// Parse normalises a colour argument under the same fallback strategy as
// Generate. Under FallbackNeutral an unparseable value becomes the neutral 500.
func (g *Generator) Parse(input string) (Colour, error) {
	c, err := Normalise(input)
	if err == nil {
		return c, nil
	}
	if g.fallback == FallbackError {
		return Colour{}, err
	}
	g.logger.Warn("unparseable colour, using neutral grey", "colour", input, "error", err)
	return NeutralPalette.Base(), nil
}
