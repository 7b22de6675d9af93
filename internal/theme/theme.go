// Package theme resolves named presets and per-call overrides into a
// render.Config. The renderer never sees theme tables.
package theme

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

//go:embed themes.toml
var builtin []byte

// Theme is a named bundle of style, eye style and colours.
type Theme struct {
	Name  string `toml:"-" json:"name"`
	Label string `toml:"label" json:"label"`
	Style string `toml:"style" json:"style"`
	Eye   string `toml:"eye" json:"eye"`
	FG    string `toml:"fg" json:"fg"`
	BG    string `toml:"bg" json:"bg"`
}

// Catalog is an immutable set of themes.
type Catalog struct {
	themes map[string]Theme
	names  []string
}

// Load parses a TOML document with a [themes.<name>] table per theme.
func Load(data []byte) (*Catalog, error) {
	var doc struct {
		Themes map[string]Theme `toml:"themes"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}

	c := &Catalog{themes: make(map[string]Theme, len(doc.Themes))}
	for name, t := range doc.Themes {
		name = strings.ToLower(name)
		t.Name = name
		c.themes[name] = t
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Builtin returns the presets shipped with the binary.
func Builtin() *Catalog {
	c, err := Load(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

// Themes lists all themes sorted by name.
func (c *Catalog) Themes() []Theme {
	out := make([]Theme, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.themes[n])
	}
	return out
}

// Lookup finds a theme by case-insensitive name.
func (c *Catalog) Lookup(name string) (Theme, bool) {
	t, ok := c.themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Overrides are explicit per-call settings. Empty strings and nil pointers
// mean "not set".
type Overrides struct {
	Theme      string
	Style      string
	EyeStyle   string
	Color      string
	Background string
	Size       *int
	Margin     *int
	LogoPath   string
	Format     string
}

// Resolve merges o over the named theme over the defaults. An unknown theme
// is ignored. Colours that are not six hex digits fall back to black
// foreground and white background.
func (c *Catalog) Resolve(o Overrides) render.Config {
	cfg := render.DefaultConfig()

	t, _ := c.Lookup(o.Theme)
	style := firstNonEmpty(o.Style, t.Style)
	eye := firstNonEmpty(o.EyeStyle, t.Eye)
	fg := firstNonEmpty(o.Color, t.FG)
	bg := firstNonEmpty(o.Background, t.BG)

	cfg.Style = render.ParseStyle(style)
	cfg.EyeStyle = render.ParseEyeStyle(eye)
	cfg.Color = render.ParseColor(fg, render.Black)
	cfg.Background = render.ParseColor(bg, render.White)
	cfg.Format = render.ParseFormat(o.Format)
	cfg.LogoPath = o.LogoPath
	if o.Size != nil {
		cfg.Size = *o.Size
	}
	if o.Margin != nil {
		cfg.Margin = *o.Margin
	}
	return cfg
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
