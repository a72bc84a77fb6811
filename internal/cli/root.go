// Package cli provides the command-line interface for shadeforge.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shadeforge/internal/colour"
	"github.com/jmylchreest/shadeforge/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose  bool
	quiet    bool
	strict   bool
	noColour bool
	preview  string
}

// app is the state shared by the command tree for one invocation.
type app struct {
	opts   globalOptions
	env    envConfig
	logger hclog.Logger
}

// NewRootCmd builds the shadeforge command tree.
func NewRootCmd() *cobra.Command {
	a := &app{env: loadEnvConfig()}

	rootCmd := &cobra.Command{
		Use:   "shadeforge",
		Short: "Generate and refine colour palettes for design themes",
		Long: `shadeforge turns a single base colour into a ten-stop shade ramp (50-900),
derives harmonies (complementary, analogous, triadic, monochromatic) and
gradients, checks WCAG contrast, and applies brightness, saturation,
temperature, contrast and gamma adjustments to whole palettes.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.quiet, "quiet", "q", false, "suppress warnings")
	rootCmd.PersistentFlags().BoolVar(&a.opts.strict, "strict", false, "fail on invalid colours instead of falling back to the neutral palette")
	rootCmd.PersistentFlags().BoolVar(&a.opts.noColour, "no-colour", false, "disable colour swatches")
	rootCmd.PersistentFlags().StringVar(&a.opts.preview, "preview", a.env.preview, "show colour swatches (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newHarmonyCmd(a))
	rootCmd.AddCommand(newScaleCmd(a))
	rootCmd.AddCommand(newContrastCmd(a))
	rootCmd.AddCommand(newThemeCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup validates global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.opts.preview {
	case previewAuto, previewAlways, previewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", a.opts.preview)
	}
	a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose, a.opts.quiet)
	return nil
}

// generator returns a palette generator honouring --strict and SHADEFORGE_FALLBACK.
func (a *app) generator() *colour.Generator {
	fallback := a.env.fallback
	if a.opts.strict {
		fallback = colour.FallbackError
	}
	return colour.NewGenerator(colour.WithFallback(fallback), colour.WithLogger(a.log()))
}

func (a *app) log() hclog.Logger {
	if a.logger == nil {
		return hclog.NewNullLogger()
	}
	return a.logger
}

// newLogger configures hclog the same way for every command: debug when
// verbose, silent when quiet, warnings otherwise.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "shadeforge",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
