package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"
)

// SVG serialises the scene, embedding the logo image as a PNG data URI.
func (s *Scene) SVG() (string, error) {
	var b strings.Builder
	if err := s.writeSVG(&b, true); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeSVG writes the scene markup. Without withImage the logo plate is kept
// but the bitmap is left out, for rasterisers that cannot draw <image>.
func (s *Scene) writeSVG(b *strings.Builder, withImage bool) error {
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		s.Size, s.Size, s.Size, s.Size)
	fmt.Fprintf(b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, s.Size, s.Size, Hex(s.Background))

	for _, l := range s.Layers {
		fill := Hex(l.Fill)
		switch l.Kind {
		case LayerShape:
			for _, sh := range l.Shapes {
				b.WriteString(sh.element(fill))
			}
		default:
			if len(l.Shapes) == 0 {
				continue
			}
			b.WriteString(`<path d="`)
			for _, sh := range l.Shapes {
				sh.appendPath(b)
			}
			fmt.Fprintf(b, `" fill="%s"/>`, fill)
		}
	}

	if s.Logo != nil {
		b.WriteString(s.Logo.Plate.element(Hex(s.Background)))
		if withImage {
			var buf bytes.Buffer
			if err := png.Encode(&buf, s.Logo.Image); err != nil {
				return fmt.Errorf("encode logo: %w", err)
			}
			sz := s.Logo.Image.Bounds().Dx()
			fmt.Fprintf(b, `<image x="%d" y="%d" width="%d" height="%d" href="data:image/png;base64,%s"/>`,
				s.Logo.X, s.Logo.Y, sz, sz, base64.StdEncoding.EncodeToString(buf.Bytes()))
		}
	}

	b.WriteString(`</svg>`)
	return nil
}
