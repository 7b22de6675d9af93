package render

import (
	"image/color"
	"strings"
)

// Canvas bounds in pixels. Sizes outside are clamped, never rejected.
const (
	MinSize       = 100
	MaxSize       = 1000
	DefaultSize   = 400
	DefaultMargin = 40
)

// Style selects how body (non finder pattern) modules are drawn.
type Style int

const (
	StyleSquare Style = iota
	StyleRounded
	StyleDots
	StyleLiquid
	StyleClassy
)

var styleNames = map[Style]string{
	StyleSquare:  "square",
	StyleRounded: "rounded",
	StyleDots:    "dots",
	StyleLiquid:  "liquid",
	StyleClassy:  "classy",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return styleNames[StyleSquare]
}

// ParseStyle maps a style name to a Style. Unknown names yield StyleSquare.
func ParseStyle(name string) Style {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return s
		}
	}
	return StyleSquare
}

// EyeStyle selects how the three finder patterns are drawn.
type EyeStyle int

const (
	EyeSquare EyeStyle = iota
	EyeRounded
	EyeCircle
)

var eyeNames = map[EyeStyle]string{
	EyeSquare:  "square",
	EyeRounded: "rounded",
	EyeCircle:  "circle",
}

func (e EyeStyle) String() string {
	if name, ok := eyeNames[e]; ok {
		return name
	}
	return eyeNames[EyeSquare]
}

// ParseEyeStyle maps an eye style name to an EyeStyle. Unknown names yield EyeSquare.
func ParseEyeStyle(name string) EyeStyle {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range eyeNames {
		if n == name {
			return e
		}
	}
	return EyeSquare
}

// Format is the output encoding of a render.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
	FormatBase64
)

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatBase64:
		return "base64"
	default:
		return "png"
	}
}

// ParseFormat maps a format name to a Format. Unknown names yield FormatPNG.
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "svg":
		return FormatSVG
	case "base64":
		return FormatBase64
	default:
		return FormatPNG
	}
}

// ContentType is the MIME type a transport should send for f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatBase64:
		return "text/plain; charset=utf-8"
	default:
		return "image/png"
	}
}

// Config is the fully resolved styling of one render.
type Config struct {
	Size       int
	Margin     int
	Style      Style
	EyeStyle   EyeStyle
	Color      color.RGBA
	Background color.RGBA
	// LogoPath is an optional image file drawn in the middle of the code.
	LogoPath string
	Format   Format
}

// DefaultConfig returns black on white square modules at DefaultSize.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Margin:     DefaultMargin,
		Style:      StyleSquare,
		EyeStyle:   EyeSquare,
		Color:      Black,
		Background: White,
		Format:     FormatPNG,
	}
}

// normalized clamps size into [MinSize, MaxSize]. The margin is only reduced
// when it would leave the symbol no area.
func (c Config) normalized() Config {
	if c.Size < MinSize {
		c.Size = MinSize
	}
	if c.Size > MaxSize {
		c.Size = MaxSize
	}
	if c.Margin < 0 {
		c.Margin = 0
	}
	if maxMargin := (c.Size - 1) / 2; c.Margin > maxMargin {
		c.Margin = maxMargin
	}
	c.Color.A = 255
	c.Background.A = 255
	return c
}
