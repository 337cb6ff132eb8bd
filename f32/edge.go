// SPDX-License-Identifier: Unlicense OR MIT

package f32

// Edge names one side of a rectangle by axis and extremity.
type Edge uint8

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Direction names one of the nine anchor points of a rectangle.
type Direction uint8

// Convention selects the direction of the Y axis.
type Convention uint8

const (
	MinXEdge Edge = iota
	MinYEdge
	MaxXEdge
	MaxYEdge
)

const (
	Horizontal Axis = iota
	Vertical
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	// YDown is screen space: Y grows downward and the top
	// edge is the minimum Y edge.
	YDown Convention = iota
	// YUp is cartesian space: Y grows upward and the top
	// edge is the maximum Y edge.
	YUp
)

// Axis returns the axis e lies across.
func (e Edge) Axis() Axis {
	switch e {
	case MinXEdge, MaxXEdge:
		return Horizontal
	case MinYEdge, MaxYEdge:
		return Vertical
	default:
		panic("unreachable")
	}
}

func (e Edge) String() string {
	switch e {
	case MinXEdge:
		return "MinXEdge"
	case MinYEdge:
		return "MinYEdge"
	case MaxXEdge:
		return "MaxXEdge"
	case MaxYEdge:
		return "MaxYEdge"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// TopEdge returns the Y edge that is the top under c.
func (c Convention) TopEdge() Edge {
	switch c {
	case YDown:
		return MinYEdge
	case YUp:
		return MaxYEdge
	default:
		panic("unreachable")
	}
}

// BottomEdge returns the Y edge that is the bottom under c.
func (c Convention) BottomEdge() Edge {
	switch c {
	case YDown:
		return MaxYEdge
	case YUp:
		return MinYEdge
	default:
		panic("unreachable")
	}
}

func (c Convention) String() string {
	switch c {
	case YDown:
		return "YDown"
	case YUp:
		return "YUp"
	default:
		panic("unreachable")
	}
}

// edges returns the X and Y edges d is flush against under c. A
// missing edge means d is centered on that axis.
func (d Direction) edges(c Convention) (x, y Edge, hasX, hasY bool) {
	switch d {
	case NW, W, SW:
		x, hasX = MinXEdge, true
	case NE, E, SE:
		x, hasX = MaxXEdge, true
	case N, S, Center:
	default:
		panic("unreachable")
	}
	switch d {
	case NW, N, NE:
		y, hasY = c.TopEdge(), true
	case SW, S, SE:
		y, hasY = c.BottomEdge(), true
	}
	return
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
