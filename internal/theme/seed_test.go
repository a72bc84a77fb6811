package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/shadeforge/internal/colour"
	"github.com/jmylchreest/shadeforge/internal/security"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseSeed(t *testing.T) {
	s, err := ParseSeed(" Primary Brand = #3182CE ")
	require.NoError(t, err)
	assert.Equal(t, Seed{Name: "Primary Brand", Base: "#3182CE"}, s)

	_, err = ParseSeed("primary")
	assert.Error(t, err)
}

func TestParseSeedsText(t *testing.T) {
	input := `# Brand palettes
primary=#3182CE

accent = e53e3e
#no-equals-is-a-comment
`
	seeds, err := ParseSeedsText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Seed{
		{Name: "primary", Base: "#3182CE"},
		{Name: "accent", Base: "e53e3e"},
	}, seeds)

	_, err = ParseSeedsText(strings.NewReader("primary=#3182CE\nbroken line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadSeeds(t *testing.T) {
	want := []Seed{
		{Name: "Primary Brand", Base: "#3182CE"},
		{Name: "accent", Base: "#E53E3E"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "text",
			file: "seeds.txt",
			content: "Primary Brand=#3182CE\naccent=#E53E3E\n",
		},
		{
			name: "toml",
			file: "seeds.toml",
			content: `[[palettes]]
name = "Primary Brand"
base = "#3182CE"

[[palettes]]
name = "accent"
base = "#E53E3E"
`,
		},
		{
			name: "yaml",
			file: "seeds.yaml",
			content: `palettes:
  - name: Primary Brand
    base: "#3182CE"
  - name: accent
    base: "#E53E3E"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds, err := LoadSeeds(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, seeds)
		})
	}
}

func TestLoadSeedsErrors(t *testing.T) {
	_, err := LoadSeeds(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = LoadSeeds(writeFile(t, "bad.toml", "[[palettes]]\nname = \"x\"\ncolour = \"#000\"\n"))
	assert.ErrorContains(t, err, "invalid TOML")

	_, err = LoadSeeds(writeFile(t, "bad.yml", "palettes:\n  - name: x\n    colour: \"#000\"\n"))
	assert.ErrorContains(t, err, "invalid YAML")

	_, err = LoadSeeds(writeFile(t, "huge.txt", strings.Repeat("x", MaxSeedFileSize+1)))
	assert.ErrorIs(t, err, security.ErrSizeLimit)

	seeds, err := LoadSeeds(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestBuild(t *testing.T) {
	c, err := Build(nil, []Seed{
		{Name: "Primary Brand", Base: "#3182CE"},
		{Name: "Accent", Base: "#E53E3E"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"primary-brand", "accent"}, c.Names())

	_, err = Build(nil, []Seed{
		{Name: "Primary Brand", Base: "#3182CE"},
		{Name: "primary brand", Base: "#E53E3E"},
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.ErrorContains(t, err, "palette 2")

	strict := colour.NewGenerator(colour.WithFallback(colour.FallbackError))
	_, err = Build(strict, []Seed{{Name: "x", Base: "nope"}})
	assert.ErrorIs(t, err, colour.ErrInvalidColourFormat)
}
