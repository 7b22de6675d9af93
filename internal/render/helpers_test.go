package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

var allStyles = []Style{StyleSquare, StyleRounded, StyleDots, StyleLiquid, StyleClassy}

var allEyes = []EyeStyle{EyeSquare, EyeRounded, EyeCircle}

// patternMatrix returns an n x n matrix with a fixed pseudo-random pattern.
func patternMatrix(n int) Matrix {
	m := make(Matrix, n)
	for r := range m {
		m[r] = make([]bool, n)
		for c := range m[r] {
			m[r][c] = (r*7+c*13+r*c)%5 < 2
		}
	}
	return m
}

// fullMatrix returns an n x n matrix with every module dark.
func fullMatrix(n int) Matrix {
	m := make(Matrix, n)
	for r := range m {
		m[r] = make([]bool, n)
		for c := range m[r] {
			m[r][c] = true
		}
	}
	return m
}

func writeLogo(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	require.NoError(t, imaging.Save(img, path))
	return path
}

func rgbAt(img image.Image, x, y int) color.RGBA {
	r, g, b, _ := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
}
