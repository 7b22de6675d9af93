package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Image rasterises the scene onto a Size x Size canvas.
func (s *Scene) Image() (image.Image, error) {
	var b strings.Builder
	if err := s.writeSVG(&b, false); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(b.String()))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(s.Size), float64(s.Size))

	img := image.NewRGBA(image.Rect(0, 0, s.Size, s.Size))
	scanner := rasterx.NewScannerGV(s.Size, s.Size, img, img.Bounds())
	raster := rasterx.NewDasher(s.Size, s.Size, scanner)
	icon.Draw(raster, 1.0)

	if s.Logo == nil {
		return img, nil
	}
	return imaging.Overlay(img, s.Logo.Image, image.Pt(s.Logo.X, s.Logo.Y), 1.0), nil
}

// PNG rasterises the scene and encodes it as PNG.
func (s *Scene) PNG() ([]byte, error) {
	img, err := s.Image()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
