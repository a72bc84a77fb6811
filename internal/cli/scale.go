package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

func newScaleCmd(a *app) *cobra.Command {
	var (
		steps  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "scale <start> <end>",
		Short: "Interpolate a gradient between two colours",
		Long: `Interpolate a perceptual gradient between two colours in CIE Lab space.
The first and last colours are exactly <start> and <end>.`,
		Example: `  shadeforge scale "#3182CE" "#E53E3E" --steps 7`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, colourFormats); err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("invalid --steps: %d (must be at least 1)", steps)
			}
			if steps > colour.MaxScaleSteps {
				a.log().Warn("steps clamped", "requested", steps, "max", colour.MaxScaleSteps)
			}

			g := a.generator()
			start, err := g.Parse(args[0])
			if err != nil {
				return err
			}
			end, err := g.Parse(args[1])
			if err != nil {
				return err
			}

			return a.printer(cmd).colours(colour.Scale(start, end, steps), format)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 5, "number of colours including both ends")
	cmd.Flags().StringVarP(&format, "format", "f", formatHex, "output format (table, hex, hexnohash, rgb, hsl, json)")

	return cmd
}
