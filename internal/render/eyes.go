package render

import "image/color"

// eyeDrawer emits the primitives of one 7x7 finder pattern occupying box.
type eyeDrawer interface {
	drawEye(dst []piece, box Box, cell float64, fg, bg color.RGBA) []piece
}

var eyeDrawers = map[EyeStyle]eyeDrawer{
	EyeSquare:  squareEye{},
	EyeCircle:  circleEye{},
	EyeRounded: roundedEye{},
}

func eyeDrawerFor(e EyeStyle) eyeDrawer {
	if d, ok := eyeDrawers[e]; ok {
		return d
	}
	return squareEye{}
}

// squareEye is the canonical ring: four one-module borders and a 3x3 centre.
type squareEye struct{}

func (squareEye) drawEye(dst []piece, box Box, cell float64, fg, _ color.RGBA) []piece {
	x, y, s := box.X, box.Y, box.W
	for _, sh := range []Shape{
		Rect{X: x, Y: y, W: s, H: cell},
		Rect{X: x, Y: y + s - cell, W: s, H: cell},
		Rect{X: x, Y: y, W: cell, H: s},
		Rect{X: x + s - cell, Y: y, W: cell, H: s},
		Rect{X: x + 2*cell, Y: y + 2*cell, W: 3 * cell, H: 3 * cell},
	} {
		dst = append(dst, piece{shape: sh, fill: fg})
	}
	return dst
}

// circleEye is an outer ring cut by an opposite-winding hole plus a solid centre disc.
type circleEye struct{}

func (circleEye) drawEye(dst []piece, box Box, cell float64, fg, _ color.RGBA) []piece {
	cx, cy := box.Center()
	outer := box.W / 2
	return append(dst,
		piece{shape: Circle{CX: cx, CY: cy, R: outer}, fill: fg},
		piece{shape: Circle{CX: cx, CY: cy, R: outer - cell, Hole: true}, fill: fg},
		piece{shape: Circle{CX: cx, CY: cy, R: 1.5 * cell}, fill: fg},
	)
}

// roundedEye stacks three solid rounded plates of alternating colour. The
// middle plate is background coloured, so each plate is its own layer.
type roundedEye struct{}

func (roundedEye) drawEye(dst []piece, box Box, cell float64, fg, bg color.RGBA) []piece {
	x, y, s := box.X, box.Y, box.W
	return append(dst,
		piece{shape: RoundedRect{X: x, Y: y, Side: s, Radius: 2 * cell}, fill: fg, own: true},
		piece{shape: RoundedRect{X: x + cell, Y: y + cell, Side: s - 2*cell, Radius: cell}, fill: bg, own: true},
		piece{shape: RoundedRect{X: x + 2*cell, Y: y + 2*cell, Side: s - 4*cell, Radius: cell}, fill: fg, own: true},
	)
}

func synthesizeEyes(g grid, eye EyeStyle, fg, bg color.RGBA) []piece {
	d := eyeDrawerFor(eye)
	var pieces []piece
	for _, box := range g.eyeBoxes() {
		pieces = d.drawEye(pieces, box, g.cell, fg, bg)
	}
	return pieces
}
