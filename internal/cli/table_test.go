package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	table := NewTable("SHADE", "HEX", "TEXT")
	table.AddRow("50", "#EBF4FB", "#000000")
	table.AddRow("500", "#3182CE", "#000000")

	want := "SHADE  HEX      TEXT\n" +
		"-----  -------  -------\n" +
		"50     #EBF4FB  #000000\n" +
		"500    #3182CE  #000000\n"
	assert.Equal(t, want, table.Render())
}

func TestTableAddRowNormalises(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("only")
	table.AddRow("x", "y", "dropped")

	assert.Len(t, table.rows[0], 2)
	assert.Equal(t, "", table.rows[0][1])
	assert.Equal(t, []string{"x", "y"}, table.rows[1])
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	swatch := "\x1b[48;2;49;130;206m #3182CE \x1b[0m"
	table := NewTable("SWATCH", "NAME")
	table.AddRow(swatch, "primary")

	lines := strings.Split(table.Render(), "\n")
	// " #3182CE " is 9 visible characters, wider than the header.
	assert.Equal(t, "SWATCH     NAME", lines[0])
	assert.Equal(t, 9, visibleWidth(swatch))
}

func TestTableEmpty(t *testing.T) {
	assert.Equal(t, "", NewTable().Render())
}

func TestVisibleWidthUnicode(t *testing.T) {
	assert.Equal(t, 2, visibleWidth("ΔE"))
	assert.Equal(t, "ΔE  ", padRight("ΔE", 4))
}
