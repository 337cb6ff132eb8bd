// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"strings"
)

// Affine2D represents an affine 2D transformation. The zero value of
// Affine2D represents the identity transform.
//
// Points are treated as row vectors and multiplied on the left of the
// matrix
//
//	[ a  b 0]
//	[ c  d 0]
//	[tx ty 1]
//
// so a point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty).
type Affine2D struct {
	// The identity matrix is subtracted from the stored elements,
	// so a and d hold the diagonal minus one.
	a, b   float32
	c, d   float32
	tx, ty float32
}

// NewAffine2D creates a new Affine2D transform from the matrix elements
// in row order.
func NewAffine2D(a, b, c, d, tx, ty float32) Affine2D {
	return Affine2D{
		a: a - 1, b: b,
		c: c, d: d - 1,
		tx: tx, ty: ty,
	}
}

// Offset the transformation.
func (t Affine2D) Offset(offset Point) Affine2D {
	t.tx += offset.X
	t.ty += offset.Y
	return t
}

// Scale the transformation around the given origin.
func (t Affine2D) Scale(origin, factor Point) Affine2D {
	if origin == (Point{}) {
		return t.scale(factor)
	}
	t = t.Offset(origin.Mul(-1))
	t = t.scale(factor)
	return t.Offset(origin)
}

// Rotate the transformation by the given angle (in radians) counter
// clockwise around the given origin, as seen with Y growing upward.
func (t Affine2D) Rotate(origin Point, radians float32) Affine2D {
	if origin == (Point{}) {
		return t.rotate(radians)
	}
	t = t.Offset(origin.Mul(-1))
	t = t.rotate(radians)
	return t.Offset(origin)
}

// Shear the transformation by the given angle (in radians) around the
// given origin.
func (t Affine2D) Shear(origin Point, radiansX, radiansY float32) Affine2D {
	if origin == (Point{}) {
		return t.shear(radiansX, radiansY)
	}
	t = t.Offset(origin.Mul(-1))
	t = t.shear(radiansX, radiansY)
	return t.Offset(origin)
}

// Concat returns the transformation that applies t and then t2.
func (t Affine2D) Concat(t2 Affine2D) Affine2D {
	a1, b1, c1, d1, tx1, ty1 := t.Elems()
	a2, b2, c2, d2, tx2, ty2 := t2.Elems()
	return NewAffine2D(
		a1*a2+b1*c2, a1*b2+b1*d2,
		c1*a2+d1*c2, c1*b2+d1*d2,
		tx1*a2+ty1*c2+tx2, tx1*b2+ty1*d2+ty2,
	)
}

// ConcatInPlace sets t to t.Concat(t2).
func (t *Affine2D) ConcatInPlace(t2 Affine2D) {
	*t = t.Concat(t2)
}

// Mul returns A*B, the transformation that applies B and then A.
func (A Affine2D) Mul(B Affine2D) Affine2D {
	return B.Concat(A)
}

// Invert the transformation. Note that if the matrix is close to
// singular numerical errors may become large or infinity.
func (t Affine2D) Invert() Affine2D {
	if t.a == 0 && t.b == 0 && t.c == 0 && t.d == 0 {
		return Affine2D{tx: -t.tx, ty: -t.ty}
	}
	a, b, c, d, tx, ty := t.Elems()
	det := a*d - b*c
	a, b, c, d = d/det, -b/det, -c/det, a/det
	return NewAffine2D(a, b, c, d, -(tx*a + ty*c), -(tx*b + ty*d))
}

// Transform p by returning t*p.
func (t Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(t.a+1) + p.Y*t.c + t.tx,
		Y: p.X*t.b + p.Y*(t.d+1) + t.ty,
	}
}

// TransformSize transforms s by the linear part of t, ignoring the
// translation.
func (t Affine2D) TransformSize(s Size) Size {
	return Size{
		Width:  s.Width*(t.a+1) + s.Height*t.c,
		Height: s.Width*t.b + s.Height*(t.d+1),
	}
}

// Elems returns the matrix elements of the transform in row order.
func (t Affine2D) Elems() (a, b, c, d, tx, ty float32) {
	return t.a + 1, t.b, t.c, t.d + 1, t.tx, t.ty
}

// Split a transform into two parts, one which is pure offset and the
// other representing the scaling, shearing and rotation part.
func (t Affine2D) Split() (srs Affine2D, offset Point) {
	return Affine2D{
		a: t.a, b: t.b,
		c: t.c, d: t.d,
	}, Point{X: t.tx, Y: t.ty}
}

func (t Affine2D) scale(factor Point) Affine2D {
	a, b, c, d, tx, ty := t.Elems()
	return NewAffine2D(
		a*factor.X, b*factor.Y,
		c*factor.X, d*factor.Y,
		tx*factor.X, ty*factor.Y,
	)
}

func (t Affine2D) rotate(radians float32) Affine2D {
	sin, cos := math.Sincos(float64(radians))
	s, k := float32(sin), float32(cos)
	a, b, c, d, tx, ty := t.Elems()
	return NewAffine2D(
		a*k-b*s, a*s+b*k,
		c*k-d*s, c*s+d*k,
		tx*k-ty*s, tx*s+ty*k,
	)
}

func (t Affine2D) shear(radiansX, radiansY float32) Affine2D {
	sx := float32(math.Tan(float64(radiansX)))
	sy := float32(math.Tan(float64(radiansY)))
	a, b, c, d, tx, ty := t.Elems()
	return NewAffine2D(
		a+b*sx, a*sy+b,
		c+d*sx, c*sy+d,
		tx+ty*sx, tx*sy+ty,
	)
}

// String renders t as (a,b,c,d,tx,ty).
func (t Affine2D) String() string {
	a, b, c, d, tx, ty := t.Elems()
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range [...]float32{a, b, c, d, tx, ty} {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ftoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
