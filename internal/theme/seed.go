package theme

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/shadeforge/internal/colour"
	"github.com/jmylchreest/shadeforge/internal/security"
)

// Seed is a palette name and the base colour it is generated from.
// Base is kept as the raw string; it is validated when the palette is built.
type Seed struct {
	Name string `toml:"name" yaml:"name"`
	Base string `toml:"base" yaml:"base"`
}

// seedFile is the TOML/YAML document layout:
//
//	[[palettes]]
//	name = "Primary Brand"
//	base = "#3182CE"
//
// YAML uses the same keys; base values must be quoted since '#' starts a comment.
type seedFile struct {
	Palettes []Seed `toml:"palettes" yaml:"palettes"`
}

// ParseSeed parses a "name=hex" pair.
func ParseSeed(s string) (Seed, error) {
	name, base, ok := strings.Cut(s, "=")
	if !ok {
		return Seed{}, fmt.Errorf("invalid palette %q: expected 'name=hex'", s)
	}
	return Seed{Name: strings.TrimSpace(name), Base: strings.TrimSpace(base)}, nil
}

// MaxSeedFileSize is the largest seed file LoadSeeds accepts.
const MaxSeedFileSize = 1 << 20

// LoadSeeds reads palette seeds from a file. The format is chosen by
// extension: .toml, .yaml/.yml, anything else is the text format read by
// ParseSeedsText.
func LoadSeeds(path string) ([]Seed, error) {
	data, err := security.ReadFile(path, MaxSeedFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []Seed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		seeds, err = parseSeedsTOML(data)
	case ".yaml", ".yml":
		seeds, err = parseSeedsYAML(data)
	default:
		seeds, err = ParseSeedsText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seeds, nil
}

// ParseSeedsText parses one "name=hex" pair per line. Blank lines are
// skipped, as are lines starting with '#' that contain no '='.
func ParseSeedsText(r io.Reader) ([]Seed, error) {
	var seeds []Seed

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || (strings.HasPrefix(line, "#") && !strings.Contains(line, "=")) {
			continue
		}

		seed, err := ParseSeed(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return seeds, nil
}

func parseSeedsTOML(data []byte) ([]Seed, error) {
	var f seedFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return f.Palettes, nil
}

func parseSeedsYAML(data []byte) ([]Seed, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return f.Palettes, nil
}

// Build creates a collection from seeds, stopping at the first seed whose
// name is empty or taken, or whose base fails under g's fallback strategy.
func Build(g *colour.Generator, seeds []Seed) (*Collection, error) {
	c := NewCollection(g)
	for i, s := range seeds {
		if _, err := c.Add(s.Name, s.Base); err != nil {
			return nil, fmt.Errorf("palette %d: %w", i+1, err)
		}
	}
	return c, nil
}
