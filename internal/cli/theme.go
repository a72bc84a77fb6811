package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadeforge/internal/colour"
	"github.com/jmylchreest/shadeforge/internal/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "theme [name=colour ...]",
		Short: "Build a set of named palettes",
		Long: `Build a theme: a set of uniquely named palettes, each generated from a base
colour. Names are lower-cased with whitespace collapsed to hyphens, and must
be unique ignoring case.

Palettes are given as name=colour arguments, read from --file, or both. Seed
files may be TOML or YAML (a "palettes" list of name/base entries), or text
with one name=colour pair per line.`,
		Example: `  shadeforge theme primary=#3182CE accent=#D69E2E
  shadeforge theme --file theme.toml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, []string{formatTable, formatJSON}); err != nil {
				return err
			}

			var seeds []theme.Seed
			if file != "" {
				loaded, err := theme.LoadSeeds(file)
				if err != nil {
					return err
				}
				seeds = append(seeds, loaded...)
			}
			for _, arg := range args {
				seed, err := theme.ParseSeed(arg)
				if err != nil {
					return err
				}
				seeds = append(seeds, seed)
			}
			if len(seeds) == 0 {
				return errors.New("no palettes given: pass name=colour arguments or --file")
			}

			coll, err := theme.Build(a.generator(), seeds)
			if err != nil {
				return err
			}
			a.log().Debug("built theme", "palettes", coll.Len())

			p := a.printer(cmd)
			if format == formatJSON {
				return p.json(coll.Entries())
			}

			t := NewTable(append([]string{"SHADE"}, coll.Names()...)...)
			for _, shade := range colour.Shades {
				row := []string{shade.String()}
				for entry := range coll.All() {
					c := entry.Palette.MustGet(shade)
					if p.swatches() {
						row = append(row, p.swatch(c))
					} else {
						row = append(row, c.Hex())
					}
				}
				t.AddRow(row...)
			}
			p.table(t)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed file (.toml, .yaml, .yml or text)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	return cmd
}
