package render

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

var hexColorRe = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// ParseColor parses a "#rrggbb" or "rrggbb" string. Anything else returns def.
func ParseColor(s string, def color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)
	if !hexColorRe.MatchString(s) {
		return def
	}
	s = strings.TrimPrefix(s, "#")

	r, err1 := strconv.ParseUint(s[0:2], 16, 8)
	g, err2 := strconv.ParseUint(s[2:4], 16, 8)
	b, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return def
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// Hex formats c as lower-case "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
