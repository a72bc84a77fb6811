package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/shadeforge/internal/colour"
	"github.com/jmylchreest/shadeforge/internal/util"
)

// Output formats.
const (
	formatTable     = "table"
	formatHex       = "hex"
	formatHexNoHash = "hexnohash"
	formatRGB       = "rgb"
	formatHSL       = "hsl"
	formatJSON      = "json"
)

// colourFormats are the formats accepted by commands that print colour lists.
var colourFormats = []string{formatTable, formatHex, formatHexNoHash, formatRGB, formatHSL, formatJSON}

func validateFormat(format string, allowed []string) error {
	if !slices.Contains(allowed, format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// formatColour renders c in one of the single-line formats.
func formatColour(c colour.Colour, format string) string {
	switch format {
	case formatHexNoHash:
		return util.StripHash(c.Hex())
	case formatRGB:
		return c.RGB().String()
	case formatHSL:
		return c.HSL().String()
	default:
		return c.Hex()
	}
}

// printer writes command output, optionally decorated with colour swatches.
type printer struct {
	w   io.Writer
	out *termenv.Output // nil when swatches are disabled
}

func (a *app) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	p := &printer{w: w}
	switch {
	case a.opts.noColour:
	case a.opts.preview == previewAlways:
		p.out = termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
	case a.opts.preview == previewAuto && !a.env.noColour && isTerminal(w):
		p.out = termenv.NewOutput(w)
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatches reports whether swatches are rendered.
func (p *printer) swatches() bool {
	return p.out != nil
}

// swatch renders c as a coloured block labelled with its hex value, using
// whichever of black or white text reads better on it.
func (p *printer) swatch(c colour.Colour) string {
	label := " " + c.Hex() + " "
	if p.out == nil {
		return label
	}
	text := colour.AccessibleTextColour(c, colour.ContrastAANormal)
	return p.out.String(label).
		Foreground(p.out.Color(text.Hex())).
		Background(p.out.Color(c.Hex())).
		String()
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *printer) table(t *Table) {
	fmt.Fprint(p.w, t.Render())
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colours prints a list of colours in the requested format.
func (p *printer) colours(colours []colour.Colour, format string) error {
	switch format {
	case formatJSON:
		return p.json(colours)
	case formatTable:
		t := NewTable(p.tableHeaders("#", "HEX", "RGB", "HSL")...)
		for i, c := range colours {
			p.addRow(t, c, fmt.Sprintf("%d", i+1), c.Hex(), c.RGB().String(), c.HSL().String())
		}
		p.table(t)
	default:
		for _, c := range colours {
			p.println(formatColour(c, format))
		}
	}
	return nil
}

// tableHeaders prepends a swatch column when swatches are enabled.
func (p *printer) tableHeaders(headers ...string) []string {
	if p.swatches() {
		return append([]string{"SWATCH"}, headers...)
	}
	return headers
}

func (p *printer) addRow(t *Table, c colour.Colour, cells ...string) {
	if p.swatches() {
		cells = append([]string{p.swatch(c)}, cells...)
	}
	t.AddRow(cells...)
}
