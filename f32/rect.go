// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "github.com/rectext/rectext/internal/fmath"

// A Rectangle is an axis aligned rectangle given by its origin, the
// corner with the smallest coordinates, and its size. A negative size
// is kept as is; use Canon for a rectangle with a non-negative size.
type Rectangle struct {
	Origin Point
	Size   Size
}

// Rect is shorthand for Rectangle{Point{x, y}, Size{w, h}}.
func Rect(x, y, w, h float32) Rectangle {
	return Rectangle{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectAt is shorthand for Rectangle{origin, size}.
func RectAt(origin Point, size Size) Rectangle {
	return Rectangle{Origin: origin, Size: size}
}

// String return a string representation of r.
func (r Rectangle) String() string {
	return r.Origin.String() + "+" + r.Size.String()
}

func (r Rectangle) X() float32      { return r.Origin.X }
func (r Rectangle) Y() float32      { return r.Origin.Y }
func (r Rectangle) Width() float32  { return r.Size.Width }
func (r Rectangle) Height() float32 { return r.Size.Height }

func (r *Rectangle) SetX(x float32) { r.Origin.X = x }
func (r *Rectangle) SetY(y float32) { r.Origin.Y = y }

// MinX returns the coordinate of the minimum X edge, r.X().
func (r Rectangle) MinX() float32 { return r.Origin.X }

// MinY returns the coordinate of the minimum Y edge, r.Y().
func (r Rectangle) MinY() float32 { return r.Origin.Y }

// MaxX returns the coordinate of the maximum X edge.
func (r Rectangle) MaxX() float32 { return r.Origin.X + r.Size.Width }

// MaxY returns the coordinate of the maximum Y edge.
func (r Rectangle) MaxY() float32 { return r.Origin.Y + r.Size.Height }

// Coord returns the coordinate of edge e.
func (r Rectangle) Coord(e Edge) float32 {
	switch e {
	case MinXEdge:
		return r.MinX()
	case MinYEdge:
		return r.MinY()
	case MaxXEdge:
		return r.MaxX()
	case MaxYEdge:
		return r.MaxY()
	default:
		panic("unreachable")
	}
}

// SetCoord moves r so that edge e lies at v. The size of r is
// unchanged.
func (r *Rectangle) SetCoord(e Edge, v float32) {
	switch e {
	case MinXEdge:
		r.Origin.X = v
	case MinYEdge:
		r.Origin.Y = v
	case MaxXEdge:
		r.Origin.X = v - r.Size.Width
	case MaxYEdge:
		r.Origin.Y = v - r.Size.Height
	default:
		panic("unreachable")
	}
}

// CenterX returns the horizontal center of r.
func (r Rectangle) CenterX() float32 {
	return r.Origin.X + r.Size.Width*0.5
}

// SetCenterX moves r horizontally so that its center lies at x.
func (r *Rectangle) SetCenterX(x float32) {
	r.Origin.X = x - r.Size.Width*0.5
}

// CenterY returns the vertical center of r.
func (r Rectangle) CenterY() float32 {
	return r.Origin.Y + r.Size.Height*0.5
}

// SetCenterY moves r vertically so that its center lies at y.
func (r *Rectangle) SetCenterY(y float32) {
	r.Origin.Y = y - r.Size.Height*0.5
}

// Left is the minimum X edge regardless of convention.
func (r Rectangle) Left() float32       { return r.Coord(MinXEdge) }
func (r *Rectangle) SetLeft(v float32)  { r.SetCoord(MinXEdge, v) }
func (r Rectangle) Right() float32      { return r.Coord(MaxXEdge) }
func (r *Rectangle) SetRight(v float32) { r.SetCoord(MaxXEdge, v) }

// Top returns the coordinate of the top edge under c.
func (r Rectangle) Top(c Convention) float32 {
	return r.Coord(c.TopEdge())
}

// SetTop moves r vertically so that its top edge under c lies at v.
func (r *Rectangle) SetTop(c Convention, v float32) {
	r.SetCoord(c.TopEdge(), v)
}

// Bottom returns the coordinate of the bottom edge under c.
func (r Rectangle) Bottom(c Convention) float32 {
	return r.Coord(c.BottomEdge())
}

// SetBottom moves r vertically so that its bottom edge under c lies
// at v.
func (r *Rectangle) SetBottom(c Convention, v float32) {
	r.SetCoord(c.BottomEdge(), v)
}

// Anchor returns the anchor point of r named by d. The convention c
// decides which Y edge is the top.
func (r Rectangle) Anchor(c Convention, d Direction) Point {
	x, y, hasX, hasY := d.edges(c)
	p := r.Center()
	if hasX {
		p.X = r.Coord(x)
	}
	if hasY {
		p.Y = r.Coord(y)
	}
	return p
}

// SetAnchor moves r so that its anchor point d lies at p. Each axis
// is solved on its own and the size of r never changes.
func (r *Rectangle) SetAnchor(c Convention, d Direction, p Point) {
	x, y, hasX, hasY := d.edges(c)
	if hasX {
		r.SetCoord(x, p.X)
	} else {
		r.SetCenterX(p.X)
	}
	if hasY {
		r.SetCoord(y, p.Y)
	} else {
		r.SetCenterY(p.Y)
	}
}

// WithAnchor returns a copy of r moved so that its anchor point d lies
// at p.
func (r Rectangle) WithAnchor(c Convention, d Direction, p Point) Rectangle {
	r.SetAnchor(c, d, p)
	return r
}

func (r Rectangle) TopLeft(c Convention) Point      { return Pt(r.Left(), r.Top(c)) }
func (r Rectangle) TopCenter(c Convention) Point    { return Pt(r.CenterX(), r.Top(c)) }
func (r Rectangle) TopRight(c Convention) Point     { return Pt(r.Right(), r.Top(c)) }
func (r Rectangle) CenterLeft() Point               { return Pt(r.Left(), r.CenterY()) }
func (r Rectangle) Center() Point                   { return Pt(r.CenterX(), r.CenterY()) }
func (r Rectangle) CenterRight() Point              { return Pt(r.Right(), r.CenterY()) }
func (r Rectangle) BottomLeft(c Convention) Point   { return Pt(r.Left(), r.Bottom(c)) }
func (r Rectangle) BottomCenter(c Convention) Point { return Pt(r.CenterX(), r.Bottom(c)) }
func (r Rectangle) BottomRight(c Convention) Point  { return Pt(r.Right(), r.Bottom(c)) }

func (r *Rectangle) SetTopLeft(c Convention, p Point) {
	r.SetLeft(p.X)
	r.SetTop(c, p.Y)
}

func (r *Rectangle) SetTopCenter(c Convention, p Point) {
	r.SetCenterX(p.X)
	r.SetTop(c, p.Y)
}

func (r *Rectangle) SetTopRight(c Convention, p Point) {
	r.SetRight(p.X)
	r.SetTop(c, p.Y)
}

func (r *Rectangle) SetCenterLeft(p Point) {
	r.SetLeft(p.X)
	r.SetCenterY(p.Y)
}

func (r *Rectangle) SetCenter(p Point) {
	r.SetCenterX(p.X)
	r.SetCenterY(p.Y)
}

func (r *Rectangle) SetCenterRight(p Point) {
	r.SetRight(p.X)
	r.SetCenterY(p.Y)
}

func (r *Rectangle) SetBottomLeft(c Convention, p Point) {
	r.SetLeft(p.X)
	r.SetBottom(c, p.Y)
}

func (r *Rectangle) SetBottomCenter(c Convention, p Point) {
	r.SetCenterX(p.X)
	r.SetBottom(c, p.Y)
}

func (r *Rectangle) SetBottomRight(c Convention, p Point) {
	r.SetRight(p.X)
	r.SetBottom(c, p.Y)
}

// WithOrigin returns r with its origin replaced.
func (r Rectangle) WithOrigin(o Point) Rectangle {
	return Rectangle{Origin: o, Size: r.Size}
}

func (r Rectangle) WithXY(x, y float32) Rectangle { return r.WithOrigin(Pt(x, y)) }
func (r Rectangle) WithX(x float32) Rectangle     { return r.WithXY(x, r.Origin.Y) }
func (r Rectangle) WithY(y float32) Rectangle     { return r.WithXY(r.Origin.X, y) }

// WithSize returns r with its size replaced.
func (r Rectangle) WithSize(s Size) Rectangle {
	return Rectangle{Origin: r.Origin, Size: s}
}

func (r Rectangle) WithWidthHeight(w, h float32) Rectangle { return r.WithSize(Sz(w, h)) }
func (r Rectangle) WithWidth(w float32) Rectangle          { return r.WithWidthHeight(w, r.Size.Height) }
func (r Rectangle) WithHeight(h float32) Rectangle         { return r.WithWidthHeight(r.Size.Width, h) }

// WithXWidth returns r with its horizontal position and extent
// replaced.
func (r Rectangle) WithXWidth(x, w float32) Rectangle {
	return Rect(x, r.Origin.Y, w, r.Size.Height)
}

// WithYHeight returns r with its vertical position and extent
// replaced.
func (r Rectangle) WithYHeight(y, h float32) Rectangle {
	return Rect(r.Origin.X, y, r.Size.Width, h)
}

// OffsetBy returns r translated by (dx, dy).
func (r Rectangle) OffsetBy(dx, dy float32) Rectangle {
	return r.WithOrigin(r.Origin.AddXY(dx, dy))
}

func (r Rectangle) OffsetX(dx float32) Rectangle    { return r.OffsetBy(dx, 0) }
func (r Rectangle) OffsetY(dy float32) Rectangle    { return r.OffsetBy(0, dy) }
func (r Rectangle) OffsetBySize(s Size) Rectangle   { return r.OffsetBy(s.Width, s.Height) }
func (r *Rectangle) OffsetByInPlace(dx, dy float32) { r.Origin.AddXYInPlace(dx, dy) }
func (r *Rectangle) OffsetXInPlace(dx float32)      { r.Origin.X += dx }
func (r *Rectangle) OffsetYInPlace(dy float32)      { r.Origin.Y += dy }
func (r *Rectangle) OffsetBySizeInPlace(s Size)     { r.Origin.AddSizeInPlace(s) }

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{Origin: r.Origin.Add(p), Size: r.Size}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{Origin: r.Origin.Sub(p), Size: r.Size}
}

// AddSize returns r with s added to its size. The origin stays put.
func (r Rectangle) AddSize(s Size) Rectangle {
	return Rectangle{Origin: r.Origin, Size: r.Size.Add(s)}
}

// SubSize returns r with s subtracted from its size.
func (r Rectangle) SubSize(s Size) Rectangle {
	return Rectangle{Origin: r.Origin, Size: r.Size.Sub(s)}
}

func (r *Rectangle) AddInPlace(p Point)    { *r = r.Add(p) }
func (r *Rectangle) SubInPlace(p Point)    { *r = r.Sub(p) }
func (r *Rectangle) AddSizeInPlace(s Size) { *r = r.AddSize(s) }
func (r *Rectangle) SubSizeInPlace(s Size) { *r = r.SubSize(s) }

// Apply returns the smallest rectangle containing the four corners of
// r transformed by t.
func (r Rectangle) Apply(t Affine2D) Rectangle {
	p0 := t.Transform(r.Origin)
	p1 := t.Transform(Pt(r.MaxX(), r.MinY()))
	p2 := t.Transform(Pt(r.MinX(), r.MaxY()))
	p3 := t.Transform(Pt(r.MaxX(), r.MaxY()))
	minX := fmath.Min(p0.X, p1.X, p2.X, p3.X)
	minY := fmath.Min(p0.Y, p1.Y, p2.Y, p3.Y)
	maxX := fmath.Max(p0.X, p1.X, p2.X, p3.X)
	maxY := fmath.Max(p0.Y, p1.Y, p2.Y, p3.Y)
	return Rect(minX, minY, maxX-minX, maxY-minY)
}

func (r *Rectangle) ApplyInPlace(t Affine2D) { *r = r.Apply(t) }

// Canon returns the canonical version of r, with a non-negative size
// and the same covered area.
func (r Rectangle) Canon() Rectangle {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains reports whether p lies in r, where a point on the minimum
// edges is inside and a point on the maximum edges is not.
func (r Rectangle) Contains(p Point) bool {
	return r.MinX() <= p.X && p.X < r.MaxX() &&
		r.MinY() <= p.Y && p.Y < r.MaxY()
}

// Intersect returns the intersection of r and s. Both are taken in
// their canonical form. The zero Rectangle is returned if they do not
// overlap.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	r, s = r.Canon(), s.Canon()
	minX := fmath.Max(r.MinX(), s.MinX())
	minY := fmath.Max(r.MinY(), s.MinY())
	maxX := fmath.Min(r.MaxX(), s.MaxX())
	maxY := fmath.Min(r.MaxY(), s.MaxY())
	if minX >= maxX || minY >= maxY {
		return Rectangle{}
	}
	return Rect(minX, minY, maxX-minX, maxY-minY)
}

// Union returns the smallest rectangle containing both r and s. An
// empty operand is ignored.
func (r Rectangle) Union(s Rectangle) Rectangle {
	r, s = r.Canon(), s.Canon()
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	minX := fmath.Min(r.MinX(), s.MinX())
	minY := fmath.Min(r.MinY(), s.MinY())
	maxX := fmath.Max(r.MaxX(), s.MaxX())
	maxY := fmath.Max(r.MaxY(), s.MaxY())
	return Rect(minX, minY, maxX-minX, maxY-minY)
}
