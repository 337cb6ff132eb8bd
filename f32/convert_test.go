// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

func TestImageConversions(t *testing.T) {
	if got := FPt(image.Pt(3, -4)); got != Pt(3, -4) {
		t.Errorf("FPt = %v", got)
	}
	if got := FRect(image.Rect(1, 2, 5, 8)); got != Rect(1, 2, 4, 6) {
		t.Errorf("FRect = %v", got)
	}
	if got := Pt(1.4, -2.6).Round(); got != image.Pt(1, -3) {
		t.Errorf("Point.Round = %v", got)
	}
	if got := Rect(0.5, 1.5, 2, 2).Round(); got != image.Rect(0, 1, 3, 4) {
		t.Errorf("Rectangle.Round = %v", got)
	}
	if got := Rect(4, 4, -2, -2).Round(); got != image.Rect(2, 2, 4, 4) {
		t.Errorf("Round of a negative size = %v", got)
	}
}

func TestFixedConversions(t *testing.T) {
	p := Pt(1.5, -0.25)
	fp := p.Fixed()
	if want := (fixed.Point26_6{X: 96, Y: -16}); fp != want {
		t.Errorf("Fixed = %v, want %v", fp, want)
	}
	if got := FixedPt(fp); got != p {
		t.Errorf("FixedPt = %v, want %v", got, p)
	}
	r := Rect(1, 2, 3.5, 4)
	fr := r.Fixed()
	if want := (fixed.Rectangle26_6{Min: fixed.P(1, 2), Max: fixed.Point26_6{X: 288, Y: 384}}); fr != want {
		t.Errorf("Rectangle.Fixed = %v, want %v", fr, want)
	}
	if got := FixedRect(fr); got != r {
		t.Errorf("FixedRect = %v, want %v", got, r)
	}
}

func TestAff3(t *testing.T) {
	m := NewAffine2D(1, 2, 3, 4, 5, 6)
	if got := FromAff3(m.Aff3()); got != m {
		t.Errorf("FromAff3(Aff3()) = %v, want %v", got, m)
	}
	aff := m.Aff3()
	p := Pt(7, -1)
	x := aff[0]*float64(p.X) + aff[1]*float64(p.Y) + aff[2]
	y := aff[3]*float64(p.X) + aff[4]*float64(p.Y) + aff[5]
	if got := m.Transform(p); got != Pt(float32(x), float32(y)) {
		t.Errorf("Transform = %v, Aff3 maps to (%v,%v)", got, x, y)
	}
}

// A transform converted with Aff3 must move pixels where Transform
// moves points.
func TestAff3DrawTransform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, colornames.Red)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	m := Affine2D{}.Offset(Pt(2, 3))
	draw.NearestNeighbor.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Src, nil)

	at := m.Transform(Point{}).Round()
	if got := color.RGBAModel.Convert(dst.At(at.X, at.Y)); got != colornames.Red {
		t.Errorf("pixel at %v = %v, want red", at, got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel at (0,0) = %v, want transparent", got)
	}
}
