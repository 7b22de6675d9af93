package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Box is an axis aligned rectangle in canvas pixels.
type Box struct {
	X, Y, W, H float64
}

// Center returns the midpoint of b.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersect returns the overlap of b and o; W or H is <= 0 when they are disjoint.
func (b Box) Intersect(o Box) Box {
	x0 := math.Max(b.X, o.X)
	y0 := math.Max(b.Y, o.Y)
	x1 := math.Min(b.X+b.W, o.X+o.W)
	y1 := math.Min(b.Y+b.H, o.Y+o.H)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Shape is a single fill primitive.
//
// All shapes trace clockwise on screen except hole circles, so that a nonzero
// fill of an accumulated path gives the union of solids minus the holes.
type Shape interface {
	Bounds() Box
	// appendPath writes absolute SVG path commands for the outline.
	appendPath(b *strings.Builder)
	// element renders the shape as a standalone SVG element.
	element(fill string) string
}

// Rect is a plain rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bounds() Box { return Box(r) }

func (r Rect) appendPath(b *strings.Builder) {
	fmt.Fprintf(b, "M%s,%sH%sV%sH%sZ", num(r.X), num(r.Y), num(r.X+r.W), num(r.Y+r.H), num(r.X))
}

func (r Rect) element(fill string) string {
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(r.X), num(r.Y), num(r.W), num(r.H), fill)
}

// RoundedRect is a square of side Side with corner radius Radius.
type RoundedRect struct {
	X, Y, Side, Radius float64
}

func (r RoundedRect) Bounds() Box { return Box{r.X, r.Y, r.Side, r.Side} }

func (r RoundedRect) appendPath(b *strings.Builder) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Side, r.Y+r.Side
	rad := math.Min(r.Radius, r.Side/2)
	if rad <= 0 {
		Rect{r.X, r.Y, r.Side, r.Side}.appendPath(b)
		return
	}
	a := num(rad)
	fmt.Fprintf(b, "M%s,%sH%sA%s,%s 0 0,1 %s,%s", num(x0+rad), num(y0), num(x1-rad), a, a, num(x1), num(y0+rad))
	fmt.Fprintf(b, "V%sA%s,%s 0 0,1 %s,%s", num(y1-rad), a, a, num(x1-rad), num(y1))
	fmt.Fprintf(b, "H%sA%s,%s 0 0,1 %s,%s", num(x0+rad), a, a, num(x0), num(y1-rad))
	fmt.Fprintf(b, "V%sA%s,%s 0 0,1 %s,%sZ", num(y0+rad), a, a, num(x0+rad), num(y0))
}

func (r RoundedRect) element(fill string) string {
	rad := num(r.Radius)
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s"/>`,
		num(r.X), num(r.Y), num(r.Side), num(r.Side), rad, rad, fill)
}

// Circle is a disc. A Hole circle is traced counter-clockwise and cuts an
// opening into any solid shape of the same path.
type Circle struct {
	CX, CY, R float64
	Hole      bool
}

func (c Circle) Bounds() Box { return Box{c.CX - c.R, c.CY - c.R, 2 * c.R, 2 * c.R} }

func (c Circle) appendPath(b *strings.Builder) {
	sweep := 1
	if c.Hole {
		sweep = 0
	}
	r := num(c.R)
	left, right, cy := num(c.CX-c.R), num(c.CX+c.R), num(c.CY)
	fmt.Fprintf(b, "M%s,%sA%s,%s 0 1,%d %s,%sA%s,%s 0 1,%d %s,%sZ",
		left, cy, r, r, sweep, right, cy, r, r, sweep, left, cy)
}

func (c Circle) element(fill string) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, num(c.CX), num(c.CY), num(c.R), fill)
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// grid maps module coordinates to canvas coordinates.
type grid struct {
	m      Matrix
	count  int
	margin float64
	cell   float64
}

func newGrid(m Matrix, size, margin int) grid {
	n := m.Count()
	return grid{
		m:      m,
		count:  n,
		margin: float64(margin),
		cell:   float64(size-2*margin) / float64(n),
	}
}

// origin is the top left corner of module (r, c).
func (g grid) origin(r, c int) (float64, float64) {
	return g.margin + float64(c)*g.cell, g.margin + float64(r)*g.cell
}

// isEye reports whether (r, c) belongs to one of the three finder patterns.
func (g grid) isEye(r, c int) bool {
	top := r < eyeModules
	left := c < eyeModules
	return (top && left) ||
		(top && c >= g.count-eyeModules) ||
		(r >= g.count-eyeModules && left)
}

// body reports whether (r, c) is a dark module outside the finder patterns.
func (g grid) body(r, c int) bool {
	return g.m.At(r, c) && !g.isEye(r, c)
}

// eyeBoxes returns the canvas boxes of the top-left, top-right and bottom-left finder patterns.
func (g grid) eyeBoxes() [3]Box {
	s := float64(eyeModules) * g.cell
	anchors := [3][2]int{{0, 0}, {0, g.count - eyeModules}, {g.count - eyeModules, 0}}
	var boxes [3]Box
	for i, a := range anchors {
		x, y := g.origin(a[0], a[1])
		boxes[i] = Box{X: x, Y: y, W: s, H: s}
	}
	return boxes
}
