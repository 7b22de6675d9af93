package render

import "image/color"

// Module size factors per style.
const (
	overdraw      = 0.2 // hides anti-aliasing seams between neighbouring squares
	dotRadius     = 0.35
	roundedRadius = 0.35
	classyRadius  = 0.1
)

// piece is a primitive tagged with its fill. Pieces marked own are drawn as
// their own layer instead of being merged into the path of their colour.
type piece struct {
	shape Shape
	fill  color.RGBA
	own   bool
}

// moduleDrawer emits the primitives for one dark body module.
type moduleDrawer interface {
	drawModule(dst []Shape, g grid, r, c int) []Shape
}

var moduleDrawers = map[Style]moduleDrawer{
	StyleSquare:  squareModule{},
	StyleRounded: roundedModule{radius: roundedRadius},
	StyleClassy:  roundedModule{radius: classyRadius},
	StyleDots:    dotModule{},
	StyleLiquid:  liquidModule{},
}

func moduleDrawerFor(s Style) moduleDrawer {
	if d, ok := moduleDrawers[s]; ok {
		return d
	}
	return squareModule{}
}

type squareModule struct{}

func (squareModule) drawModule(dst []Shape, g grid, r, c int) []Shape {
	x, y := g.origin(r, c)
	return append(dst, Rect{X: x, Y: y, W: g.cell + overdraw, H: g.cell + overdraw})
}

type roundedModule struct {
	radius float64
}

func (m roundedModule) drawModule(dst []Shape, g grid, r, c int) []Shape {
	x, y := g.origin(r, c)
	return append(dst, RoundedRect{X: x, Y: y, Side: g.cell, Radius: g.cell * m.radius})
}

type dotModule struct{}

func (dotModule) drawModule(dst []Shape, g grid, r, c int) []Shape {
	x, y := g.origin(r, c)
	return append(dst, Circle{CX: x + g.cell/2, CY: y + g.cell/2, R: g.cell * dotRadius})
}

// liquidModule draws a disc per module and bridges it to its right and lower
// dark neighbours. Only forward neighbours are checked, so a row-major sweep
// bridges every adjacency exactly once.
type liquidModule struct{}

func (liquidModule) drawModule(dst []Shape, g grid, r, c int) []Shape {
	x, y := g.origin(r, c)
	cx, cy := x+g.cell/2, y+g.cell/2
	dst = append(dst, Circle{CX: cx, CY: cy, R: g.cell/2 + overdraw})
	if g.body(r, c+1) {
		dst = append(dst, Rect{X: cx, Y: y, W: g.cell, H: g.cell})
	}
	if g.body(r+1, c) {
		dst = append(dst, Rect{X: x, Y: cy, W: g.cell, H: g.cell})
	}
	return dst
}

// synthesizeBody walks every dark module outside the finder patterns in
// row-major order and returns the primitives of the active style.
func synthesizeBody(g grid, style Style) []Shape {
	d := moduleDrawerFor(style)
	var shapes []Shape
	for r := 0; r < g.count; r++ {
		for c := 0; c < g.count; c++ {
			if g.body(r, c) {
				shapes = d.drawModule(shapes, g, r, c)
			}
		}
	}
	return shapes
}
