package render

import (
	"errors"
	"fmt"
)

// Side lengths of the smallest (version 1) and largest (version 40) QR symbols.
const (
	minModules = 21
	maxModules = 177
	eyeModules = 7
)

var (
	// ErrInvalidMatrix is returned for matrices that are not a legal QR symbol shape.
	ErrInvalidMatrix = errors.New("invalid QR matrix")
	// ErrRender wraps failures of the encoding stage.
	ErrRender = errors.New("render failed")
)

// Matrix is a square grid of QR modules indexed [row][col]; true is dark.
// The renderer only reads it.
type Matrix [][]bool

// Count is the number of modules per side.
func (m Matrix) Count() int { return len(m) }

// At reports whether the module at (r, c) is dark. Out of range is light.
func (m Matrix) At(r, c int) bool {
	if r < 0 || r >= len(m) || c < 0 || c >= len(m[r]) {
		return false
	}
	return m[r][c]
}

// Validate checks that m is square with a side of 21 + 4k modules, k in [0, 39].
func (m Matrix) Validate() error {
	n := len(m)
	if n < minModules || n > maxModules || (n-minModules)%4 != 0 {
		return fmt.Errorf("%w: side %d is not a QR version size", ErrInvalidMatrix, n)
	}
	for r, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d modules, want %d", ErrInvalidMatrix, r, len(row), n)
		}
	}
	return nil
}
