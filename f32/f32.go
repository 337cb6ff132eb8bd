// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 geometry toolkit built around Point, Size,
Rectangle and Affine2D values.

A Rectangle is stored as an origin and a size, and neither is ever
normalized: negative sizes are legal and propagate through every
operation.

The package does not fix the direction of the Y axis. Operations that
talk about the top or bottom of a rectangle take a Convention, either
YDown, the screen space where Y grows downward, or YUp, the cartesian
space where Y grows upward. Operations phrased in terms of the minimum
and maximum edges work the same in both.

Every method that returns a modified copy has a twin with the InPlace
suffix that assigns the copy to its receiver.
*/
package f32

import "strconv"

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Size is a two dimensional extent. Its fields may be negative.
type Size struct {
	Width, Height float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// String return a string representation of p.
func (p Point) String() string {
	return "(" + ftoa(p.X) + "," + ftoa(p.Y) + ")"
}

// WithX returns p with its X coordinate replaced.
func (p Point) WithX(x float32) Point {
	p.X = x
	return p
}

// WithY returns p with its Y coordinate replaced.
func (p Point) WithY(y float32) Point {
	p.Y = y
	return p
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// AddSize returns p displaced by s.
func (p Point) AddSize(s Size) Point {
	return p.AddXY(s.Width, s.Height)
}

// SubSize returns p displaced by -s.
func (p Point) SubSize(s Size) Point {
	return p.SubXY(s.Width, s.Height)
}

// AddXY returns p displaced by (dx, dy).
func (p Point) AddXY(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// SubXY returns p displaced by (-dx, -dy).
func (p Point) SubXY(dx, dy float32) Point {
	return Point{X: p.X - dx, Y: p.Y - dy}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector p/s.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// MulXY returns p scaled by fx horizontally and fy vertically.
func (p Point) MulXY(fx, fy float32) Point {
	return Point{X: p.X * fx, Y: p.Y * fy}
}

// DivXY returns p divided by fx horizontally and fy vertically.
func (p Point) DivXY(fx, fy float32) Point {
	return Point{X: p.X / fx, Y: p.Y / fy}
}

// Apply returns p transformed by t.
func (p Point) Apply(t Affine2D) Point {
	return t.Transform(p)
}

func (p *Point) AddInPlace(p2 Point)         { *p = p.Add(p2) }
func (p *Point) SubInPlace(p2 Point)         { *p = p.Sub(p2) }
func (p *Point) AddSizeInPlace(s Size)       { *p = p.AddSize(s) }
func (p *Point) SubSizeInPlace(s Size)       { *p = p.SubSize(s) }
func (p *Point) AddXYInPlace(dx, dy float32) { *p = p.AddXY(dx, dy) }
func (p *Point) SubXYInPlace(dx, dy float32) { *p = p.SubXY(dx, dy) }
func (p *Point) MulInPlace(s float32)        { *p = p.Mul(s) }
func (p *Point) DivInPlace(s float32)        { *p = p.Div(s) }
func (p *Point) MulXYInPlace(fx, fy float32) { *p = p.MulXY(fx, fy) }
func (p *Point) DivXYInPlace(fx, fy float32) { *p = p.DivXY(fx, fy) }
func (p *Point) ApplyInPlace(t Affine2D)     { *p = p.Apply(t) }

// String return a string representation of s.
func (s Size) String() string {
	return "(" + ftoa(s.Width) + "," + ftoa(s.Height) + ")"
}

// WithWidth returns s with its width replaced.
func (s Size) WithWidth(w float32) Size {
	s.Width = w
	return s
}

// WithHeight returns s with its height replaced.
func (s Size) WithHeight(h float32) Size {
	s.Height = h
	return s
}

// Add returns the size s+s2.
func (s Size) Add(s2 Size) Size {
	return s.AddWH(s2.Width, s2.Height)
}

// Sub returns the size s-s2.
func (s Size) Sub(s2 Size) Size {
	return s.SubWH(s2.Width, s2.Height)
}

// AddWH returns s grown by dw and dh.
func (s Size) AddWH(dw, dh float32) Size {
	return Size{Width: s.Width + dw, Height: s.Height + dh}
}

// SubWH returns s shrunk by dw and dh.
func (s Size) SubWH(dw, dh float32) Size {
	return Size{Width: s.Width - dw, Height: s.Height - dh}
}

// Mul returns s scaled by f.
func (s Size) Mul(f float32) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Div returns s divided by f.
func (s Size) Div(f float32) Size {
	return Size{Width: s.Width / f, Height: s.Height / f}
}

// MulWH returns s with its width scaled by fw and its height by fh.
func (s Size) MulWH(fw, fh float32) Size {
	return Size{Width: s.Width * fw, Height: s.Height * fh}
}

// DivWH returns s with its width divided by fw and its height by fh.
func (s Size) DivWH(fw, fh float32) Size {
	return Size{Width: s.Width / fw, Height: s.Height / fh}
}

// Apply returns s transformed by the linear part of t. The
// translation of t does not affect sizes.
func (s Size) Apply(t Affine2D) Size {
	return t.TransformSize(s)
}

func (s *Size) AddInPlace(s2 Size)          { *s = s.Add(s2) }
func (s *Size) SubInPlace(s2 Size)          { *s = s.Sub(s2) }
func (s *Size) AddWHInPlace(dw, dh float32) { *s = s.AddWH(dw, dh) }
func (s *Size) SubWHInPlace(dw, dh float32) { *s = s.SubWH(dw, dh) }
func (s *Size) MulInPlace(f float32)        { *s = s.Mul(f) }
func (s *Size) DivInPlace(f float32)        { *s = s.Div(f) }
func (s *Size) MulWHInPlace(fw, fh float32) { *s = s.MulWH(fw, fh) }
func (s *Size) DivWHInPlace(fw, fh float32) { *s = s.DivWH(fw, fh) }
func (s *Size) ApplyInPlace(t Affine2D)     { *s = s.Apply(t) }

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
