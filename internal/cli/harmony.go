package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

// suggestionThreshold is the minimum similarity for a "did you mean" hint.
const suggestionThreshold = 0.5

type harmonyOptions struct {
	mode   string
	count  int
	angle  float64
	format string
}

func newHarmonyCmd(a *app) *cobra.Command {
	var opts harmonyOptions

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Derive harmonious colours from a base colour",
		Long: `Derive colours that harmonise with a base colour.

Modes:
  complementary   the base and its hue rotated by 180 degrees
  analogous       --count colours spaced --angle degrees apart, centred on the base
  triadic         the base and its hue rotated by 120 and 240 degrees
  monochromatic   --count colours at the base hue with lightness from 10% to 90%`,
		Example: `  shadeforge harmony "#3182CE" --mode triadic
  shadeforge harmony "#3182CE" --mode analogous --count 5 --angle 15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHarmony(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(colour.HarmonyComplementary), "harmony mode (complementary, analogous, triadic, monochromatic)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of colours for analogous and monochromatic modes")
	cmd.Flags().Float64Var(&opts.angle, "angle", colour.DefaultAnalogousAngle, "hue spacing in degrees for analogous mode")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex, "output format (table, hex, hexnohash, rgb, hsl, json)")

	return cmd
}

func (a *app) runHarmony(cmd *cobra.Command, input string, opts harmonyOptions) error {
	if err := validateFormat(opts.format, colourFormats); err != nil {
		return err
	}
	mode, err := colour.ParseHarmonyMode(opts.mode)
	if err != nil {
		if s := suggestMode(opts.mode); s != "" {
			return fmt.Errorf("%w (did you mean %q?)", err, s)
		}
		return err
	}
	if opts.count < 0 {
		return fmt.Errorf("invalid --count: %d", opts.count)
	}
	// HarmonyOptions treats a zero angle as unset, so reject it here rather
	// than silently using the default.
	if opts.angle == 0 || math.IsNaN(opts.angle) || math.IsInf(opts.angle, 0) {
		return fmt.Errorf("invalid --angle: %v (must be a non-zero number of degrees)", opts.angle)
	}
	if opts.count > colour.MaxHarmonyCount {
		a.log().Warn("count clamped", "requested", opts.count, "max", colour.MaxHarmonyCount)
	}

	base, err := a.generator().Parse(input)
	if err != nil {
		return err
	}

	colours, err := colour.Harmony(base, mode, colour.HarmonyOptions{Count: opts.count, Angle: opts.angle})
	if err != nil {
		return err
	}
	a.log().Debug("derived harmony", "base", base.Hex(), "mode", string(mode), "colours", len(colours))

	return a.printer(cmd).colours(colours, opts.format)
}

// suggestMode returns the harmony mode most similar to input, or "" when
// nothing is close enough.
func suggestMode(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	best, bestScore := "", 0.0
	for _, m := range colour.HarmonyModes {
		score := strutil.Similarity(input, string(m), lev)
		if score > bestScore {
			best, bestScore = string(m), score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}
