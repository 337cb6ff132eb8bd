// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"testing"

	"github.com/rectext/rectext/internal/fmath"
)

func rectEq(r1, r2 Rectangle) bool {
	const tol = 1e-5
	return eq(r1.Origin, r2.Origin) &&
		fmath.Near(r1.Size.Width, r2.Size.Width, tol) &&
		fmath.Near(r1.Size.Height, r2.Size.Height, tol)
}

func TestInsetBy(t *testing.T) {
	r := Rect(0, 0, 10, 20)
	got := r.InsetBy(Insets{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4})
	if want := Rect(1, 2, 6, 14); got != want {
		t.Errorf("InsetBy = %v, want %v", got, want)
	}
	if got := r.InsetBy(Insets{}); got != r {
		t.Errorf("zero Insets changed %v to %v", r, got)
	}
	if got := r.InsetBy(Insets{MaxX: 3}); got != Rect(0, 0, 7, 20) {
		t.Errorf("InsetBy MaxX only = %v", got)
	}
}

func TestInsetCentered(t *testing.T) {
	r := Rect(0, 0, 10, 20)
	tests := []struct {
		name string
		got  Rectangle
		want Rectangle
	}{
		{"Inset", r.Inset(2), Rect(2, 2, 6, 16)},
		{"InsetXY", r.InsetXY(1, 3), Rect(1, 3, 8, 14)},
		{"InsetX", r.InsetX(1), Rect(1, 0, 8, 20)},
		{"InsetY", r.InsetY(3), Rect(0, 3, 10, 14)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
		if tc.got.Center() != r.Center() {
			t.Errorf("%s moved the center to %v", tc.name, tc.got.Center())
		}
	}
}

func TestInsetBeyondSize(t *testing.T) {
	r := Rect(0, 0, 4, 4)
	if got := r.Inset(3); got != Rect(3, 3, -2, -2) {
		t.Errorf("Inset(3) = %v, want a negative size", got)
	}
}

func TestExtend(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	if got := r.Extend(2); got != Rect(-2, -2, 14, 14) {
		t.Errorf("Extend(2) = %v, want %v", got, Rect(-2, -2, 14, 14))
	}
}

func TestExtendIsNegativeInset(t *testing.T) {
	r := Rect(1.5, -2, 10, 20)
	in := Insets{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	e := Edges{Top: 1, Left: 2, Bottom: 3, Right: 4}
	s := Sz(2, 5)
	for _, c := range []Convention{YDown, YUp} {
		tests := []struct {
			name          string
			extend, inset Rectangle
		}{
			{"Extend", r.Extend(3), r.Inset(-3)},
			{"ExtendXY", r.ExtendXY(3, 4), r.InsetXY(-3, -4)},
			{"ExtendX", r.ExtendX(3), r.InsetX(-3)},
			{"ExtendY", r.ExtendY(3), r.InsetY(-3)},
			{"ExtendBy", r.ExtendBy(in), r.InsetBy(in.Neg())},
			{"ExtendEdges", r.ExtendEdges(c, e), r.InsetEdges(c, e.Neg())},
			{"ExtendTopLeft", r.ExtendTopLeft(c, s), r.InsetTopLeft(c, s.Mul(-1))},
			{"ExtendTopRight", r.ExtendTopRight(c, s), r.InsetTopRight(c, s.Mul(-1))},
			{"ExtendBottomLeft", r.ExtendBottomLeft(c, s), r.InsetBottomLeft(c, s.Mul(-1))},
			{"ExtendBottomRight", r.ExtendBottomRight(c, s), r.InsetBottomRight(c, s.Mul(-1))},
		}
		for _, tc := range tests {
			if tc.extend != tc.inset {
				t.Errorf("%v: %s = %v, negative inset = %v", c, tc.name, tc.extend, tc.inset)
			}
		}
	}
}

func TestExtendInsetRoundTrip(t *testing.T) {
	rects := []Rectangle{Rect(0, 0, 10, 10), Rect(-3.25, 7.5, 0.5, 100), Rect(1e3, -1e3, 12.125, 3)}
	for _, r := range rects {
		for _, k := range []float32{0, 1, 2.5, -4, 0.125} {
			if got := r.Extend(k).Inset(k); !rectEq(got, r) {
				t.Errorf("%v extended and inset by %v = %v", r, k, got)
			}
			if got := r.ExtendBy(UniformInsets(k)).InsetBy(UniformInsets(k)); !rectEq(got, r) {
				t.Errorf("%v ExtendBy and InsetBy %v = %v", r, k, got)
			}
		}
	}
}

func TestEdgesInsets(t *testing.T) {
	e := Edges{Top: 1, Left: 2, Bottom: 3, Right: 4}
	if got, want := e.Insets(YDown), (Insets{MinX: 2, MinY: 1, MaxX: 4, MaxY: 3}); got != want {
		t.Errorf("YDown insets = %+v, want %+v", got, want)
	}
	if got, want := e.Insets(YUp), (Insets{MinX: 2, MinY: 3, MaxX: 4, MaxY: 1}); got != want {
		t.Errorf("YUp insets = %+v, want %+v", got, want)
	}
}

// The semantic inset forms must move the same edges the accessors
// call top and bottom.
func TestInsetEdgesMatchesAccessors(t *testing.T) {
	r := Rect(0, 0, 10, 20)
	for _, c := range []Convention{YDown, YUp} {
		top := r.InsetEdges(c, Edges{Top: 5})
		if top.Bottom(c) != r.Bottom(c) {
			t.Errorf("%v: top inset moved the bottom edge: %v", c, top)
		}
		if top.Top(c) == r.Top(c) {
			t.Errorf("%v: top inset did not move the top edge: %v", c, top)
		}
		bottom := r.InsetEdges(c, Edges{Bottom: 5})
		if bottom.Top(c) != r.Top(c) {
			t.Errorf("%v: bottom inset moved the top edge: %v", c, bottom)
		}
	}
}

func TestInsetCorners(t *testing.T) {
	r := Rect(0, 0, 10, 20)
	s := Sz(1, 2)
	tests := []struct {
		name     string
		inset    func(c Convention, s Size) Rectangle
		down, up Rectangle
	}{
		{"InsetTopLeft", r.InsetTopLeft, Rect(1, 2, 9, 18), Rect(1, 0, 9, 18)},
		{"InsetTopRight", r.InsetTopRight, Rect(0, 2, 9, 18), Rect(0, 0, 9, 18)},
		{"InsetBottomLeft", r.InsetBottomLeft, Rect(1, 0, 9, 18), Rect(1, 2, 9, 18)},
		{"InsetBottomRight", r.InsetBottomRight, Rect(0, 0, 9, 18), Rect(0, 2, 9, 18)},
	}
	for _, tc := range tests {
		if got := tc.inset(YDown, s); got != tc.down {
			t.Errorf("%s(YDown) = %v, want %v", tc.name, got, tc.down)
		}
		if got := tc.inset(YUp, s); got != tc.up {
			t.Errorf("%s(YUp) = %v, want %v", tc.name, got, tc.up)
		}
	}
}

func TestInsetInPlace(t *testing.T) {
	r := Rect(1, 2, 30, 40)
	in := Insets{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	e := Edges{Top: 1, Left: 2, Bottom: 3, Right: 4}
	s := Sz(2, 5)
	c := YUp
	tests := []struct {
		name    string
		inPlace func(r *Rectangle)
		want    Rectangle
	}{
		{"InsetByInPlace", func(q *Rectangle) { q.InsetByInPlace(in) }, r.InsetBy(in)},
		{"InsetInPlace", func(q *Rectangle) { q.InsetInPlace(3) }, r.Inset(3)},
		{"InsetXYInPlace", func(q *Rectangle) { q.InsetXYInPlace(3, 4) }, r.InsetXY(3, 4)},
		{"InsetXInPlace", func(q *Rectangle) { q.InsetXInPlace(3) }, r.InsetX(3)},
		{"InsetYInPlace", func(q *Rectangle) { q.InsetYInPlace(3) }, r.InsetY(3)},
		{"InsetEdgesInPlace", func(q *Rectangle) { q.InsetEdgesInPlace(c, e) }, r.InsetEdges(c, e)},
		{"InsetTopLeftInPlace", func(q *Rectangle) { q.InsetTopLeftInPlace(c, s) }, r.InsetTopLeft(c, s)},
		{"InsetTopRightInPlace", func(q *Rectangle) { q.InsetTopRightInPlace(c, s) }, r.InsetTopRight(c, s)},
		{"InsetBottomLeftInPlace", func(q *Rectangle) { q.InsetBottomLeftInPlace(c, s) }, r.InsetBottomLeft(c, s)},
		{"InsetBottomRightInPlace", func(q *Rectangle) { q.InsetBottomRightInPlace(c, s) }, r.InsetBottomRight(c, s)},
		{"ExtendByInPlace", func(q *Rectangle) { q.ExtendByInPlace(in) }, r.ExtendBy(in)},
		{"ExtendInPlace", func(q *Rectangle) { q.ExtendInPlace(3) }, r.Extend(3)},
		{"ExtendXYInPlace", func(q *Rectangle) { q.ExtendXYInPlace(3, 4) }, r.ExtendXY(3, 4)},
		{"ExtendXInPlace", func(q *Rectangle) { q.ExtendXInPlace(3) }, r.ExtendX(3)},
		{"ExtendYInPlace", func(q *Rectangle) { q.ExtendYInPlace(3) }, r.ExtendY(3)},
		{"ExtendEdgesInPlace", func(q *Rectangle) { q.ExtendEdgesInPlace(c, e) }, r.ExtendEdges(c, e)},
		{"ExtendTopLeftInPlace", func(q *Rectangle) { q.ExtendTopLeftInPlace(c, s) }, r.ExtendTopLeft(c, s)},
		{"ExtendTopRightInPlace", func(q *Rectangle) { q.ExtendTopRightInPlace(c, s) }, r.ExtendTopRight(c, s)},
		{"ExtendBottomLeftInPlace", func(q *Rectangle) { q.ExtendBottomLeftInPlace(c, s) }, r.ExtendBottomLeft(c, s)},
		{"ExtendBottomRightInPlace", func(q *Rectangle) { q.ExtendBottomRightInPlace(c, s) }, r.ExtendBottomRight(c, s)},
	}
	for _, tc := range tests {
		q := r
		tc.inPlace(&q)
		if q != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, q, tc.want)
		}
	}
}
