package colour

import (
	"fmt"
	"math"
	"strings"
)

// Bounds applied to caller-supplied counts. The editor only offers small
// values, but anything reaching the engine is clamped rather than trusted.
const (
	MaxHarmonyCount = 24
	MaxScaleSteps   = 64

	DefaultAnalogousCount  = 3
	DefaultAnalogousAngle  = 30.0
	DefaultMonochromeCount = 5
)

// rotate returns base with its hue shifted by degrees.
func rotate(base Colour, degrees float64) Colour {
	hsl := base.HSL()
	hsl.H += degrees
	return fromHSL(hsl)
}

// Complementary returns base with its hue rotated by 180 degrees.
func Complementary(base Colour) Colour {
	return rotate(base, 180)
}

// Analogous returns count colours centred on the base hue and spaced angle
// degrees apart. Odd counts are symmetric around base; even counts lean
// toward the lower hues. A count of 1 returns just base.
func Analogous(base Colour, count int, angle float64) []Colour {
	count = clampCount(count, MaxHarmonyCount)
	if !isFinite(angle) {
		angle = DefaultAnalogousAngle
	}
	if count == 1 {
		return []Colour{base}
	}

	start := -float64(count-1) / 2 * angle
	colours := make([]Colour, count)
	for i := range colours {
		offset := start + float64(i)*angle
		if offset == 0 {
			colours[i] = base
			continue
		}
		colours[i] = rotate(base, offset)
	}
	return colours
}

// Triadic returns base and the two colours 120 and 240 degrees around the wheel.
func Triadic(base Colour) []Colour {
	return []Colour{base, rotate(base, 120), rotate(base, 240)}
}

// Monochromatic returns count colours sharing the base hue and saturation
// with lightness evenly spaced across [0.1, 0.9]. A count of 1 returns just base.
func Monochromatic(base Colour, count int) []Colour {
	count = clampCount(count, MaxHarmonyCount)
	if count == 1 {
		return []Colour{base}
	}

	hsl := base.HSL()
	colours := make([]Colour, count)
	for i := range colours {
		hsl.L = 0.1 + 0.8*float64(i)/float64(count-1)
		colours[i] = fromHSL(hsl)
	}
	return colours
}

// Scale returns steps colours interpolated in CIE Lab from start to end,
// both endpoints included. A single step yields just start.
func Scale(start, end Colour, steps int) []Colour {
	steps = clampCount(steps, MaxScaleSteps)
	if steps == 1 {
		return []Colour{start}
	}

	from, to := start.colorful(), end.colorful()
	colours := make([]Colour, steps)
	for i := range colours {
		switch i {
		case 0:
			colours[i] = start
		case steps - 1:
			colours[i] = end
		default:
			t := float64(i) / float64(steps-1)
			colours[i] = fromColorful(from.BlendLab(to, t))
		}
	}
	return colours
}

func clampCount(n, maxCount int) int {
	return int(clamp(float64(n), 1, float64(maxCount)))
}

// HarmonyMode selects a harmony derivation.
type HarmonyMode string

// Harmony modes.
const (
	HarmonyComplementary HarmonyMode = "complementary"
	HarmonyAnalogous     HarmonyMode = "analogous"
	HarmonyTriadic       HarmonyMode = "triadic"
	HarmonyMonochromatic HarmonyMode = "monochromatic"
)

// HarmonyModes lists the supported modes.
var HarmonyModes = []HarmonyMode{
	HarmonyComplementary,
	HarmonyAnalogous,
	HarmonyTriadic,
	HarmonyMonochromatic,
}

// ParseHarmonyMode parses a mode name, case-insensitively.
func ParseHarmonyMode(s string) (HarmonyMode, error) {
	mode := HarmonyMode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range HarmonyModes {
		if m == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown harmony mode: %s", s)
}

// HarmonyOptions carries the optional parameters for Harmony.
// Zero values select the defaults.
type HarmonyOptions struct {
	Count int
	Angle float64
}

// Harmony derives colours from base using the given mode. The complementary
// mode returns base followed by its complement.
func Harmony(base Colour, mode HarmonyMode, opts HarmonyOptions) ([]Colour, error) {
	switch mode {
	case HarmonyComplementary:
		return []Colour{base, Complementary(base)}, nil
	case HarmonyAnalogous:
		count := opts.Count
		if count == 0 {
			count = DefaultAnalogousCount
		}
		angle := opts.Angle
		if angle == 0 || math.IsNaN(angle) {
			angle = DefaultAnalogousAngle
		}
		return Analogous(base, count, angle), nil
	case HarmonyTriadic:
		return Triadic(base), nil
	case HarmonyMonochromatic:
		count := opts.Count
		if count == 0 {
			count = DefaultMonochromeCount
		}
		return Monochromatic(base, count), nil
	default:
		return nil, fmt.Errorf("unknown harmony mode: %s", mode)
	}
}
