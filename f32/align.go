// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "fmt"

// Centered returns a rectangle of size s with the same center as r.
func (r Rectangle) Centered(s Size) Rectangle {
	dx := r.Size.Width - s.Width
	dy := r.Size.Height - s.Height
	return RectAt(r.Origin.AddXY(dx*0.5, dy*0.5), s)
}

// CenteredTo returns a rectangle of size s inside r, flush with edge e
// and centered along it.
func (r Rectangle) CenteredTo(s Size, e Edge) Rectangle {
	dx := r.Size.Width - s.Width
	dy := r.Size.Height - s.Height
	var o Point
	switch e {
	case MinXEdge:
		o = r.Origin.AddXY(0, dy*0.5)
	case MinYEdge:
		o = r.Origin.AddXY(dx*0.5, 0)
	case MaxXEdge:
		o = r.Origin.AddXY(dx, dy*0.5)
	case MaxYEdge:
		o = r.Origin.AddXY(dx*0.5, dy)
	default:
		panic("unreachable")
	}
	return RectAt(o, s)
}

// Aligned returns a rectangle of size s flush with the corner of r
// where e1 and e2 meet. The edges may be given in any order but must
// lie on different axes; Aligned panics otherwise.
func (r Rectangle) Aligned(s Size, e1, e2 Edge) Rectangle {
	if e1.Axis() == e2.Axis() {
		panic(fmt.Errorf("f32: cannot align to the corner of %v and %v: both edges are %v", e1, e2, e1.Axis()))
	}
	if e1.Axis() == Vertical {
		e1, e2 = e2, e1
	}
	o := r.Origin
	if e1 == MaxXEdge {
		o.X += r.Size.Width - s.Width
	}
	if e2 == MaxYEdge {
		o.Y += r.Size.Height - s.Height
	}
	return RectAt(o, s)
}

// Place returns a rectangle of size s inside r, positioned at the
// anchor named by d under convention c: flush with the edges d names
// and centered on any axis it leaves free.
func (r Rectangle) Place(c Convention, d Direction, s Size) Rectangle {
	x, y, hasX, hasY := d.edges(c)
	switch {
	case hasX && hasY:
		return r.Aligned(s, x, y)
	case hasX:
		return r.CenteredTo(s, x)
	case hasY:
		return r.CenteredTo(s, y)
	default:
		return r.Centered(s)
	}
}

func (r *Rectangle) CenterInPlace(s Size)                           { *r = r.Centered(s) }
func (r *Rectangle) CenterToInPlace(s Size, e Edge)                 { *r = r.CenteredTo(s, e) }
func (r *Rectangle) AlignInPlace(s Size, e1, e2 Edge)               { *r = r.Aligned(s, e1, e2) }
func (r *Rectangle) PlaceInPlace(c Convention, d Direction, s Size) { *r = r.Place(c, d, s) }
