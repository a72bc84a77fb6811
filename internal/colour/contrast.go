package colour

import "math"

// WCAG 2.x contrast thresholds.
const (
	ContrastAANormal  = 4.5
	ContrastAALarge   = 3.0
	ContrastAAANormal = 7.0
	ContrastAAALarge  = 4.5
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c Colour) float64 {
	r := gammaCorrect(float64(c.rgb.R) / 255.0)
	g := gammaCorrect(float64(c.rgb.G) / 255.0)
	b := gammaCorrect(float64(c.rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises an sRGB colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The ratio is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight reports whether the colour's relative luminance is above 0.5.
//
// This is a fixed threshold rather than the W3C approach of comparing contrast
// against black and white, so some mid-tones classify differently from
// AccessibleTextColour. Callers that need a text colour should use that instead.
func IsLight(c Colour) bool {
	return RelativeLuminance(c) > 0.5
}

// AccessibleTextColour returns black or white, whichever reaches minContrast
// against bg. If both do, black is preferred on light backgrounds and white on
// dark ones (the higher contrast wins). If neither does, the higher-contrast
// option is returned. A non-positive or non-finite minContrast means AA normal.
func AccessibleTextColour(bg Colour, minContrast float64) Colour {
	if !isFinite(minContrast) || minContrast <= 0 {
		minContrast = ContrastAANormal
	}

	black := ContrastRatio(bg, Black)
	white := ContrastRatio(bg, White)

	switch {
	case black >= minContrast && white >= minContrast:
		if white > black {
			return White
		}
		return Black
	case black >= minContrast:
		return Black
	case white >= minContrast:
		return White
	case white > black:
		return White
	default:
		return Black
	}
}

// ContrastReport describes how a colour pair performs against WCAG thresholds.
type ContrastReport struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// Contrast builds a ContrastReport for a colour pair.
func Contrast(c1, c2 Colour) ContrastReport {
	ratio := ContrastRatio(c1, c2)
	return ContrastReport{
		Ratio:     ratio,
		AANormal:  ratio >= ContrastAANormal,
		AALarge:   ratio >= ContrastAALarge,
		AAANormal: ratio >= ContrastAAANormal,
		AAALarge:  ratio >= ContrastAAALarge,
	}
}

// Level summarises the report as the highest level met for normal text.
func (r ContrastReport) Level() string {
	switch {
	case r.AAANormal:
		return "AAA"
	case r.AANormal:
		return "AA"
	case r.AALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}
