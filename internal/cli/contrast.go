package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

// contrastJSON is the JSON shape of the contrast command.
type contrastJSON struct {
	Foreground colour.Colour `json:"foreground"`
	Background colour.Colour `json:"background"`
	colour.ContrastReport
	Level               string        `json:"level"`
	ForegroundLuminance float64       `json:"foreground_luminance"`
	BackgroundLuminance float64       `json:"background_luminance"`
	BackgroundIsLight   bool          `json:"background_is_light"`
	SuggestedText       colour.Colour `json:"suggested_text"`
}

func newContrastCmd(a *app) *cobra.Command {
	var (
		format      string
		minContrast float64
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio between two colours",
		Example: `  shadeforge contrast "#FFFFFF" "#3182CE"
  shadeforge contrast 767676 fff --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, []string{formatTable, formatJSON}); err != nil {
				return err
			}

			g := a.generator()
			fg, err := g.Parse(args[0])
			if err != nil {
				return err
			}
			bg, err := g.Parse(args[1])
			if err != nil {
				return err
			}

			report := colour.Contrast(fg, bg)
			out := contrastJSON{
				Foreground:          fg,
				Background:          bg,
				ContrastReport:      report,
				Level:               report.Level(),
				ForegroundLuminance: colour.RelativeLuminance(fg),
				BackgroundLuminance: colour.RelativeLuminance(bg),
				BackgroundIsLight:   colour.IsLight(bg),
				SuggestedText:       colour.AccessibleTextColour(bg, minContrast),
			}

			p := a.printer(cmd)
			if format == formatJSON {
				return p.json(out)
			}

			p.printf("Foreground:  %s  %s\n", p.swatch(fg), fg.RGB())
			p.printf("Background:  %s  %s\n", p.swatch(bg), bg.RGB())
			p.printf("Ratio:       %.2f:1 (%s)\n", report.Ratio, report.Level())
			p.println()
			t := NewTable("LEVEL", "NORMAL TEXT", "LARGE TEXT")
			t.AddRow("AA", passFail(report.AANormal), passFail(report.AALarge))
			t.AddRow("AAA", passFail(report.AAANormal), passFail(report.AAALarge))
			p.table(t)
			p.println()
			tone := "dark"
			if out.BackgroundIsLight {
				tone = "light"
			}
			p.printf("Background is %s; suggested text colour %s (%.2f:1)\n",
				tone, out.SuggestedText.Hex(), colour.ContrastRatio(bg, out.SuggestedText))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().Float64Var(&minContrast, "min-contrast", colour.ContrastAANormal, "minimum contrast for the suggested text colour")

	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
