// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/rectext/rectext/internal/fmath"
)

// FPt converts an image.Point to a Point.
func FPt(p image.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// FRect converts an image.Rectangle to a Rectangle.
func FRect(r image.Rectangle) Rectangle {
	return RectAt(FPt(r.Min), Size{Width: float32(r.Dx()), Height: float32(r.Dy())})
}

// Round returns the integer point nearest to p.
func (p Point) Round() image.Point {
	return image.Point{X: fmath.Round(p.X), Y: fmath.Round(p.Y)}
}

// Round returns the smallest integer rectangle that contains r.
func (r Rectangle) Round() image.Rectangle {
	r = r.Canon()
	return image.Rectangle{
		Min: image.Point{X: fmath.Floor(r.MinX()), Y: fmath.Floor(r.MinY())},
		Max: image.Point{X: fmath.Ceil(r.MaxX()), Y: fmath.Ceil(r.MaxY())},
	}
}

// Fixed converts p to 26.6 fixed point, rounding to the nearest
// representable value.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// FixedPt converts a 26.6 fixed point to a Point.
func FixedPt(p fixed.Point26_6) Point {
	return Point{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

// Fixed converts the canonical form of r to a 26.6 fixed point
// rectangle.
func (r Rectangle) Fixed() fixed.Rectangle26_6 {
	r = r.Canon()
	return fixed.Rectangle26_6{
		Min: r.Origin.Fixed(),
		Max: Pt(r.MaxX(), r.MaxY()).Fixed(),
	}
}

// FixedRect converts a 26.6 fixed point rectangle to a Rectangle.
func FixedRect(r fixed.Rectangle26_6) Rectangle {
	min, max := FixedPt(r.Min), FixedPt(r.Max)
	return RectAt(min, Sz(max.X-min.X, max.Y-min.Y))
}

// Aff3 returns t in the row major layout used by
// golang.org/x/image/draw transformers.
func (t Affine2D) Aff3() f64.Aff3 {
	a, b, c, d, tx, ty := t.Elems()
	return f64.Aff3{
		float64(a), float64(c), float64(tx),
		float64(b), float64(d), float64(ty),
	}
}

// FromAff3 converts a row major matrix to an Affine2D. Elements are
// rounded to float32.
func FromAff3(m f64.Aff3) Affine2D {
	return NewAffine2D(
		float32(m[0]), float32(m[3]),
		float32(m[1]), float32(m[4]),
		float32(m[2]), float32(m[5]),
	)
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(fmath.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
