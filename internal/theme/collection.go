package theme

import (
	"fmt"

	"github.com/jmylchreest/shadeforge/internal/colour"
)

// Entry is one named palette in a collection.
type Entry struct {
	Name    string         `json:"name"`
	Base    colour.Colour  `json:"base"`
	Palette colour.Palette `json:"shades"`
}

// Collection is an ordered set of uniquely named palettes. Palettes are
// values, so every change replaces an entry rather than editing it.
// A Collection is not safe for concurrent mutation.
type Collection struct {
	generator *colour.Generator
	entries   []Entry
}

// NewCollection creates an empty collection whose palettes are generated by g.
// A nil generator uses colour.NewGenerator().
func NewCollection(g *colour.Generator) *Collection {
	if g == nil {
		g = colour.NewGenerator()
	}
	return &Collection{generator: g}
}

// Len returns the number of palettes.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Names returns the palette names in insertion order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the palette entry with the given name.
func (c *Collection) Get(name string) (Entry, bool) {
	i := c.index(name)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i], true
}

// All returns an iterator over the entries in insertion order.
func (c *Collection) All() func(func(Entry) bool) {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (c *Collection) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Add validates rawName, generates a palette from base and appends it.
// It returns the formatted name.
func (c *Collection) Add(rawName, base string) (string, error) {
	name, err := IsNameAvailable(rawName, c.Names())
	if err != nil {
		return "", err
	}

	entry, err := c.generate(name, base)
	if err != nil {
		return "", err
	}

	c.entries = append(c.entries, entry)
	return name, nil
}

// Recolour regenerates the named palette from a new base colour.
func (c *Collection) Recolour(name, base string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("palette %q not found", name)
	}

	entry, err := c.generate(c.entries[i].Name, base)
	if err != nil {
		return err
	}

	c.entries[i] = entry
	return nil
}

// SetShade replaces a single shade of the named palette. Setting the 500
// stop also moves the palette's base.
func (c *Collection) SetShade(name string, shade colour.Shade, col colour.Colour) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("palette %q not found", name)
	}
	if !shade.Valid() {
		return fmt.Errorf("invalid shade %d", shade)
	}

	e := c.entries[i]
	e.Palette = e.Palette.With(shade, col)
	if shade == colour.Shade500 {
		e.Base = col
	}
	c.entries[i] = e
	return nil
}

// Replace swaps the named palette for p, e.g. after an adjustment.
func (c *Collection) Replace(name string, p colour.Palette) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("palette %q not found", name)
	}
	c.entries[i].Palette = p
	c.entries[i].Base = p.Base()
	return nil
}

// Rename gives the named palette a new name, validated like Add.
// It returns the formatted new name.
func (c *Collection) Rename(name, rawNew string) (string, error) {
	i := c.index(name)
	if i < 0 {
		return "", fmt.Errorf("palette %q not found", name)
	}

	others := make([]string, 0, len(c.entries)-1)
	for j, e := range c.entries {
		if j != i {
			others = append(others, e.Name)
		}
	}

	newName, err := IsNameAvailable(rawNew, others)
	if err != nil {
		return "", err
	}

	c.entries[i].Name = newName
	return newName, nil
}

// Remove deletes the named palette, reporting whether it existed.
func (c *Collection) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}

func (c *Collection) generate(name, base string) (Entry, error) {
	p, err := c.generator.Generate(base)
	if err != nil {
		return Entry{}, fmt.Errorf("palette %q: %w", name, err)
	}
	return Entry{Name: name, Base: p.Base(), Palette: p}, nil
}

// index looks up a palette by name; lookups use the same formatting as Add.
func (c *Collection) index(name string) int {
	key := FormatName(name)
	for i, e := range c.entries {
		if e.Name == key {
			return i
		}
	}
	return -1
}
