package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

const (
	logoRatio    = 0.22
	platePadding = 20
	plateRadius  = 16
)

// Logo is the centred overlay: a background coloured plate and the logo
// image fitted into a transparent square drawn at (X, Y).
type Logo struct {
	Plate RoundedRect
	Image *image.NRGBA
	X, Y  int
}

func loadLogo(path string, size int) (*Logo, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	logoSize := int(math.Round(float64(size) * logoRatio))
	plate := float64(logoSize + platePadding)
	offset := (float64(size) - plate) / 2
	pos := (size - logoSize) / 2

	return &Logo{
		Plate: RoundedRect{X: offset, Y: offset, Side: plate, Radius: plateRadius},
		Image: contain(src, logoSize),
		X:     pos,
		Y:     pos,
	}, nil
}

// contain scales src to fit a box x box square keeping its aspect ratio and
// centres it on a transparent canvas.
func contain(src image.Image, box int) *image.NRGBA {
	b := src.Bounds()
	var fitted *image.NRGBA
	if b.Dx() >= b.Dy() {
		fitted = imaging.Resize(src, box, 0, imaging.Lanczos)
	} else {
		fitted = imaging.Resize(src, 0, box, imaging.Lanczos)
	}
	return imaging.PasteCenter(imaging.New(box, box, color.NRGBA{}), fitted)
}
