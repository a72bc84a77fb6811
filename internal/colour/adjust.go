package colour

import (
	"fmt"
	"math"
	"strings"
)

// Adjustment holds the creative adjustments applied to a whole palette.
// It is transient: apply it once with ApplyAdjustment and discard it.
type Adjustment struct {
	// Brightness lightens (positive) or darkens (negative) every shade,
	// using the same semantics as Lighten and Darken. Range [-2, 2].
	Brightness float64 `json:"brightness"`
	// Saturation shifts HSL saturation by Saturation/100. Range [-50, 50].
	Saturation float64 `json:"saturation"`
	// Temperature shifts hue by Temperature*0.1 degrees. Range [-100, 100].
	// Positive is warmer. This is a hue rotation, not a white-balance model.
	Temperature float64 `json:"temperature"`
	// Contrast stretches (positive) or compresses (negative) the ramp around
	// the 500 stop. Range [-50, 50].
	Contrast float64 `json:"contrast"`
	// Gamma applies power-law correction per RGB channel. 1 is a no-op and
	// 0 is treated as 1 so that the zero Adjustment changes nothing.
	Gamma float64 `json:"gamma"`
}

// Adjustment ranges.
const (
	MaxBrightness  = 2.0
	MaxSaturation  = 50.0
	MaxTemperature = 100.0
	MaxContrast    = 50.0
	MinGamma       = 0.1
	MaxGamma       = 10.0
)

// NeutralAdjustment returns an adjustment that leaves a palette unchanged.
func NeutralAdjustment() Adjustment {
	return Adjustment{Gamma: 1}
}

// IsNeutral reports whether applying a would leave every colour unchanged.
func (a Adjustment) IsNeutral() bool {
	return a.Brightness == 0 && a.Saturation == 0 && a.Temperature == 0 &&
		a.Contrast == 0 && a.gamma() == 1
}

// Validate rejects NaN and infinite parameters. Finite values outside the
// documented ranges are accepted and clamped by Clamped.
func (a Adjustment) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"brightness", a.Brightness},
		{"saturation", a.Saturation},
		{"temperature", a.Temperature},
		{"contrast", a.Contrast},
		{"gamma", a.Gamma},
	}
	var bad []string
	for _, f := range fields {
		if !isFinite(f.value) {
			bad = append(bad, fmt.Sprintf("%s=%v", f.name, f.value))
		}
	}
	if a.Gamma < 0 {
		bad = append(bad, fmt.Sprintf("gamma=%v", a.Gamma))
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAdjustment, strings.Join(bad, ", "))
	}
	return nil
}

// Clamped returns a copy with every parameter clamped into its range.
func (a Adjustment) Clamped() Adjustment {
	return Adjustment{
		Brightness:  clamp(a.Brightness, -MaxBrightness, MaxBrightness),
		Saturation:  clamp(a.Saturation, -MaxSaturation, MaxSaturation),
		Temperature: clamp(a.Temperature, -MaxTemperature, MaxTemperature),
		Contrast:    clamp(a.Contrast, -MaxContrast, MaxContrast),
		Gamma:       clamp(a.gamma(), MinGamma, MaxGamma),
	}
}

func (a Adjustment) gamma() float64 {
	if a.Gamma == 0 {
		return 1
	}
	return a.Gamma
}

// adjustStep is one stage of the adjustment pipeline. pivot is the 500 stop
// as it entered the step.
type adjustStep func(c Colour, shade Shade, a Adjustment, pivot Colour) Colour

// adjustPipeline is applied in order, each step consuming the previous
// step's output. Reordering it changes the result.
var adjustPipeline = [...]adjustStep{
	adjustBrightness,
	adjustSaturation,
	adjustTemperature,
	adjustContrast,
	adjustGamma,
}

func adjustBrightness(c Colour, _ Shade, a Adjustment, _ Colour) Colour {
	switch {
	case a.Brightness > 0:
		return Lighten(c, a.Brightness)
	case a.Brightness < 0:
		return Darken(c, -a.Brightness)
	default:
		return c
	}
}

func adjustSaturation(c Colour, _ Shade, a Adjustment, _ Colour) Colour {
	if a.Saturation == 0 {
		return c
	}
	hsl := c.HSL()
	hsl.S = clamp01(hsl.S + a.Saturation/100)
	return fromHSL(hsl)
}

// adjustTemperature rotates hue as a stand-in for colour temperature.
func adjustTemperature(c Colour, _ Shade, a Adjustment, _ Colour) Colour {
	if a.Temperature == 0 {
		return c
	}
	return rotate(c, a.Temperature*0.1)
}

// adjustContrast stretches or compresses the ramp around the 500 stop, more
// strongly the further a stop is from it. Stretching lightens lighter stops
// and darkens darker ones. Compressing divides the lightness gap between a
// stop and the pivot by 1+k*distance, so a stop never crosses the pivot.
func adjustContrast(c Colour, shade Shade, a Adjustment, pivot Colour) Colour {
	if a.Contrast == 0 || shade == Shade500 {
		return c
	}

	distance := math.Abs(float64(shade-Shade500)) / 100
	k := math.Abs(a.Contrast) * 0.02

	if a.Contrast < 0 {
		hsl := c.HSL()
		target := pivot.HSL().L
		hsl.L = target + (hsl.L-target)/(1+k*distance)
		return fromHSL(hsl)
	}

	if shade < Shade500 {
		return Lighten(c, distance*k)
	}
	return Darken(c, distance*k)
}

func adjustGamma(c Colour, _ Shade, a Adjustment, _ Colour) Colour {
	g := a.gamma()
	if g == 1 {
		return c
	}
	correct := func(v uint8) uint8 {
		return channel(255 * math.Pow(float64(v)/255, g))
	}
	return NewColour(correct(c.rgb.R), correct(c.rgb.G), correct(c.rgb.B))
}

// EditSession is the caller-owned editing state for a palette. Locked shades
// are left untouched by ApplyAdjustment. The zero value has nothing locked.
type EditSession struct {
	locked uint16
}

// Lock returns a session with the given shades locked. Unknown shades are ignored.
func (s EditSession) Lock(shades ...Shade) EditSession {
	for _, shade := range shades {
		if i := shade.index(); i >= 0 {
			s.locked |= 1 << i
		}
	}
	return s
}

// Unlock returns a session with the given shades unlocked.
func (s EditSession) Unlock(shades ...Shade) EditSession {
	for _, shade := range shades {
		if i := shade.index(); i >= 0 {
			s.locked &^= 1 << i
		}
	}
	return s
}

// IsLocked reports whether shade is locked.
func (s EditSession) IsLocked(shade Shade) bool {
	i := shade.index()
	return i >= 0 && s.locked&(1<<i) != 0
}

// Locked returns the locked shades in ascending order.
func (s EditSession) Locked() []Shade {
	var shades []Shade
	for _, shade := range Shades {
		if s.IsLocked(shade) {
			shades = append(shades, shade)
		}
	}
	return shades
}

// ApplyAdjustment returns a new palette with a applied to every unlocked
// shade. The adjustment is clamped into range first; NaN or infinite
// parameters are rejected with ErrInvalidAdjustment.
func ApplyAdjustment(p Palette, a Adjustment, session EditSession) (Palette, error) {
	if err := a.Validate(); err != nil {
		return Palette{}, err
	}
	a = a.Clamped()
	if a.IsNeutral() {
		return p, nil
	}

	out := p
	for _, step := range adjustPipeline {
		pivot := out.Base()
		next := out
		for shade, c := range out.All() {
			if session.IsLocked(shade) {
				continue
			}
			next = next.With(shade, step(c, shade, a, pivot))
		}
		out = next
	}
	return out, nil
}

// LargeDeltaThreshold is the ΔE above which an adjusted shade is flagged as
// having drifted noticeably from the original.
const LargeDeltaThreshold = 20.0

// PerceptualDelta returns, per shade, the CIE76 distance between original and
// adjusted.
func PerceptualDelta(original, adjusted Palette) map[Shade]float64 {
	deltas := make(map[Shade]float64, len(Shades))
	for i, shade := range Shades {
		deltas[shade] = DeltaE(original.colours[i], adjusted.colours[i])
	}
	return deltas
}

// FlaggedShades returns, in ascending order, the shades whose delta exceeds threshold.
func FlaggedShades(deltas map[Shade]float64, threshold float64) []Shade {
	var flagged []Shade
	for _, shade := range Shades {
		if d, ok := deltas[shade]; ok && d > threshold {
			flagged = append(flagged, shade)
		}
	}
	return flagged
}
