package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

type paletteOptions struct {
	format      string
	adjust      colour.Adjustment
	lock        []string
	minContrast float64
}

// paletteJSON is the JSON shape of the palette command.
type paletteJSON struct {
	Base       colour.Colour      `json:"base"`
	Shades     colour.Palette     `json:"shades"`
	Adjustment *colour.Adjustment `json:"adjustment,omitempty"`
	Original   *colour.Palette    `json:"original,omitempty"`
	DeltaE     map[string]float64 `json:"delta_e,omitempty"`
	Flagged    []colour.Shade     `json:"flagged,omitempty"`
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := paletteOptions{adjust: colour.NeutralAdjustment()}

	cmd := &cobra.Command{
		Use:   "palette <colour>",
		Short: "Generate a 50-900 shade ramp from a base colour",
		Long: `Generate a ten-stop shade ramp (50, 100-900) from a base colour. The base
colour is always the 500 stop. Adjustment flags are applied to the generated
ramp in order: brightness, saturation, temperature, contrast, gamma.

Colours are accepted as #RRGGBB, RRGGBB, #RGB or RGB.`,
		Example: `  shadeforge palette "#3182CE"
  shadeforge palette 3182ce --format json
  shadeforge palette "#3182CE" --saturation 20 --contrast 10 --lock 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPalette(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, hex, hexnohash, rgb, hsl, json)")
	addAdjustmentFlags(cmd.Flags(), &opts.adjust)
	cmd.Flags().StringSliceVar(&opts.lock, "lock", nil, "shades left untouched by adjustments (e.g. 500,600)")
	cmd.Flags().Float64Var(&opts.minContrast, "min-contrast", colour.ContrastAANormal, "minimum contrast for the suggested text colour")

	return cmd
}

func (a *app) runPalette(cmd *cobra.Command, base string, opts paletteOptions) error {
	if err := validateFormat(opts.format, colourFormats); err != nil {
		return err
	}
	session, err := parseLocks(opts.lock)
	if err != nil {
		return err
	}

	original, err := a.generator().Generate(base)
	if err != nil {
		return err
	}

	palette := original
	var deltas map[colour.Shade]float64
	var flagged []colour.Shade
	adjusted := !opts.adjust.IsNeutral()
	if adjusted {
		if opts.adjust.Clamped() != opts.adjust {
			a.log().Debug("adjustment clamped into range", "requested", fmt.Sprintf("%+v", opts.adjust))
		}
		palette, err = colour.ApplyAdjustment(original, opts.adjust, session)
		if err != nil {
			return err
		}
		deltas = colour.PerceptualDelta(original, palette)
		flagged = colour.FlaggedShades(deltas, colour.LargeDeltaThreshold)
		for _, shade := range flagged {
			a.log().Warn("large perceptual change", "shade", shade.String(), "delta_e", fmt.Sprintf("%.1f", deltas[shade]))
		}
	}

	p := a.printer(cmd)
	switch opts.format {
	case formatJSON:
		out := paletteJSON{Base: palette.Base(), Shades: palette}
		if adjusted {
			adj := opts.adjust.Clamped()
			out.Adjustment = &adj
			out.Original = &original
			out.DeltaE = make(map[string]float64, len(deltas))
			for shade, d := range deltas {
				out.DeltaE[shade.String()] = d
			}
			out.Flagged = flagged
		}
		return p.json(out)
	case formatTable:
		headers := []string{"SHADE", "HEX", "RGB", "HSL", "TEXT", "CONTRAST"}
		if adjusted {
			headers = append(headers, "ΔE")
		}
		t := NewTable(p.tableHeaders(headers...)...)
		for shade, c := range palette.All() {
			text := colour.AccessibleTextColour(c, opts.minContrast)
			cells := []string{
				shade.String(),
				c.Hex(),
				c.RGB().String(),
				c.HSL().String(),
				text.Hex(),
				fmt.Sprintf("%.2f", colour.ContrastRatio(c, text)),
			}
			if adjusted {
				d := fmt.Sprintf("%.1f", deltas[shade])
				if session.IsLocked(shade) {
					d = "locked"
				}
				cells = append(cells, d)
			}
			p.addRow(t, c, cells...)
		}
		p.table(t)
	default:
		for shade, c := range palette.All() {
			p.printf("%s: %s\n", shade, formatColour(c, opts.format))
		}
	}
	return nil
}

// addAdjustmentFlags registers one flag per adjustment parameter.
func addAdjustmentFlags(fs *pflag.FlagSet, adj *colour.Adjustment) {
	fs.Float64Var(&adj.Brightness, "brightness", 0, "lighten (positive) or darken (negative) every shade, -2 to 2")
	fs.Float64Var(&adj.Saturation, "saturation", 0, "shift saturation, -50 to 50")
	fs.Float64Var(&adj.Temperature, "temperature", 0, "warm (positive) or cool (negative) the hue, -100 to 100")
	fs.Float64Var(&adj.Contrast, "contrast", 0, "stretch or compress the ramp around 500, -50 to 50")
	fs.Float64Var(&adj.Gamma, "gamma", 1, "gamma correction, 0.1 to 10")
}

// parseLocks builds an edit session from shade keys such as "500".
func parseLocks(values []string) (colour.EditSession, error) {
	var session colour.EditSession
	for _, v := range values {
		shade, err := colour.ParseShade(v)
		if err != nil {
			return session, fmt.Errorf("invalid --lock value: %w", err)
		}
		session = session.Lock(shade)
	}
	return session, nil
}
