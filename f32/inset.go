// SPDX-License-Identifier: Unlicense OR MIT

package f32

// Insets are distances to move each edge of a rectangle inward,
// named by axis. The zero value leaves a rectangle unchanged.
type Insets struct {
	MinX, MinY, MaxX, MaxY float32
}

// Edges are distances to move each edge of a rectangle inward, named
// by side. A Convention maps them to Insets.
type Edges struct {
	Top, Left, Bottom, Right float32
}

// UniformInsets returns Insets with the same distance on all edges.
func UniformInsets(v float32) Insets {
	return Insets{MinX: v, MinY: v, MaxX: v, MaxY: v}
}

// Neg returns the insets that move every edge the opposite way.
func (in Insets) Neg() Insets {
	return Insets{MinX: -in.MinX, MinY: -in.MinY, MaxX: -in.MaxX, MaxY: -in.MaxY}
}

// Neg returns the edges that move every side the opposite way.
func (e Edges) Neg() Edges {
	return Edges{Top: -e.Top, Left: -e.Left, Bottom: -e.Bottom, Right: -e.Right}
}

// Insets maps e to axis insets, using c to decide which Y edge the
// top and bottom distances apply to.
func (e Edges) Insets(c Convention) Insets {
	in := Insets{MinX: e.Left, MaxX: e.Right}
	if c.TopEdge() == MinYEdge {
		in.MinY, in.MaxY = e.Top, e.Bottom
	} else {
		in.MinY, in.MaxY = e.Bottom, e.Top
	}
	return in
}

// InsetBy returns r with each edge moved inward by the matching
// inset. Insets larger than the size give a negative size.
func (r Rectangle) InsetBy(in Insets) Rectangle {
	return Rectangle{
		Origin: Point{X: r.Origin.X + in.MinX, Y: r.Origin.Y + in.MinY},
		Size: Size{
			Width:  r.Size.Width - (in.MinX + in.MaxX),
			Height: r.Size.Height - (in.MinY + in.MaxY),
		},
	}
}

// Inset returns r inset by v on all edges.
func (r Rectangle) Inset(v float32) Rectangle {
	return r.InsetXY(v, v)
}

// InsetXY returns r inset by dx on the left and right edges and by dy
// on the other two. The center is unchanged.
func (r Rectangle) InsetXY(dx, dy float32) Rectangle {
	return r.InsetBy(Insets{MinX: dx, MinY: dy, MaxX: dx, MaxY: dy})
}

func (r Rectangle) InsetX(dx float32) Rectangle { return r.InsetXY(dx, 0) }
func (r Rectangle) InsetY(dy float32) Rectangle { return r.InsetXY(0, dy) }

// InsetEdges returns r inset by e, with top and bottom taken under c.
func (r Rectangle) InsetEdges(c Convention, e Edges) Rectangle {
	return r.InsetBy(e.Insets(c))
}

// InsetTopLeft returns r with its top edge moved in by s.Height and
// its left edge by s.Width.
func (r Rectangle) InsetTopLeft(c Convention, s Size) Rectangle {
	return r.InsetEdges(c, Edges{Top: s.Height, Left: s.Width})
}

// InsetTopRight returns r with its top edge moved in by s.Height and
// its right edge by s.Width.
func (r Rectangle) InsetTopRight(c Convention, s Size) Rectangle {
	return r.InsetEdges(c, Edges{Top: s.Height, Right: s.Width})
}

// InsetBottomLeft returns r with its bottom edge moved in by s.Height
// and its left edge by s.Width.
func (r Rectangle) InsetBottomLeft(c Convention, s Size) Rectangle {
	return r.InsetEdges(c, Edges{Bottom: s.Height, Left: s.Width})
}

// InsetBottomRight returns r with its bottom edge moved in by s.Height
// and its right edge by s.Width.
func (r Rectangle) InsetBottomRight(c Convention, s Size) Rectangle {
	return r.InsetEdges(c, Edges{Bottom: s.Height, Right: s.Width})
}

// Extending is insetting by the negated amount.

func (r Rectangle) ExtendBy(in Insets) Rectangle                { return r.InsetBy(in.Neg()) }
func (r Rectangle) Extend(v float32) Rectangle                  { return r.Inset(-v) }
func (r Rectangle) ExtendXY(dx, dy float32) Rectangle           { return r.InsetXY(-dx, -dy) }
func (r Rectangle) ExtendX(dx float32) Rectangle                { return r.InsetX(-dx) }
func (r Rectangle) ExtendY(dy float32) Rectangle                { return r.InsetY(-dy) }
func (r Rectangle) ExtendEdges(c Convention, e Edges) Rectangle { return r.InsetEdges(c, e.Neg()) }

func (r Rectangle) ExtendTopLeft(c Convention, s Size) Rectangle {
	return r.InsetTopLeft(c, s.Mul(-1))
}

func (r Rectangle) ExtendTopRight(c Convention, s Size) Rectangle {
	return r.InsetTopRight(c, s.Mul(-1))
}

func (r Rectangle) ExtendBottomLeft(c Convention, s Size) Rectangle {
	return r.InsetBottomLeft(c, s.Mul(-1))
}

func (r Rectangle) ExtendBottomRight(c Convention, s Size) Rectangle {
	return r.InsetBottomRight(c, s.Mul(-1))
}

func (r *Rectangle) InsetByInPlace(in Insets)                     { *r = r.InsetBy(in) }
func (r *Rectangle) InsetInPlace(v float32)                       { *r = r.Inset(v) }
func (r *Rectangle) InsetXYInPlace(dx, dy float32)                { *r = r.InsetXY(dx, dy) }
func (r *Rectangle) InsetXInPlace(dx float32)                     { *r = r.InsetX(dx) }
func (r *Rectangle) InsetYInPlace(dy float32)                     { *r = r.InsetY(dy) }
func (r *Rectangle) InsetEdgesInPlace(c Convention, e Edges)      { *r = r.InsetEdges(c, e) }
func (r *Rectangle) InsetTopLeftInPlace(c Convention, s Size)     { *r = r.InsetTopLeft(c, s) }
func (r *Rectangle) InsetTopRightInPlace(c Convention, s Size)    { *r = r.InsetTopRight(c, s) }
func (r *Rectangle) InsetBottomLeftInPlace(c Convention, s Size)  { *r = r.InsetBottomLeft(c, s) }
func (r *Rectangle) InsetBottomRightInPlace(c Convention, s Size) { *r = r.InsetBottomRight(c, s) }

func (r *Rectangle) ExtendByInPlace(in Insets)                     { *r = r.ExtendBy(in) }
func (r *Rectangle) ExtendInPlace(v float32)                       { *r = r.Extend(v) }
func (r *Rectangle) ExtendXYInPlace(dx, dy float32)                { *r = r.ExtendXY(dx, dy) }
func (r *Rectangle) ExtendXInPlace(dx float32)                     { *r = r.ExtendX(dx) }
func (r *Rectangle) ExtendYInPlace(dy float32)                     { *r = r.ExtendY(dy) }
func (r *Rectangle) ExtendEdgesInPlace(c Convention, e Edges)      { *r = r.ExtendEdges(c, e) }
func (r *Rectangle) ExtendTopLeftInPlace(c Convention, s Size)     { *r = r.ExtendTopLeft(c, s) }
func (r *Rectangle) ExtendTopRightInPlace(c Convention, s Size)    { *r = r.ExtendTopRight(c, s) }
func (r *Rectangle) ExtendBottomLeftInPlace(c Convention, s Size)  { *r = r.ExtendBottomLeft(c, s) }
func (r *Rectangle) ExtendBottomRightInPlace(c Convention, s Size) { *r = r.ExtendBottomRight(c, s) }
