package sequencer

// Direction is a unit step along one axis.
type Direction struct {
	Axis Axis
	Step int // -1 or +1
}

// Row 0 is the top of the window, so Up decreases Y.
var (
	Left  = Direction{Axis: AxisX, Step: -1}
	Right = Direction{Axis: AxisX, Step: 1}
	Up    = Direction{Axis: AxisY, Step: -1}
	Down  = Direction{Axis: AxisY, Step: 1}
)

// Cursor is the currently selected cell, in absolute grid coordinates.
type Cursor struct {
	Point
}

func (c *Cursor) along(a Axis) int {
	if a == AxisX {
		return c.X
	}
	return c.Y
}

func (c *Cursor) advance(d Direction) {
	if d.Axis == AxisX {
		c.X += d.Step
	} else {
		c.Y += d.Step
	}
}

// trailingEdge is the last visible index in the direction of travel.
func trailingEdge(v *Viewport, d Direction) int {
	origin := v.originAlong(d.Axis)
	if d.Step > 0 {
		return origin + v.extent(d.Axis) - 1
	}
	return origin
}

// navigate moves the cursor one step in d, panning the viewport first when
// the cursor sits on the window edge it is moving across. It returns true if
// the cursor or the viewport changed.
func navigate(g *Grid, v *Viewport, c *Cursor, d Direction) bool {
	pos := c.along(d.Axis)
	next := pos + d.Step
	if next < 0 || next >= g.extent(d.Axis) {
		// Blocked at the grid edge, but a pan-only command may have left
		// the cursor off screen.
		return v.reveal(c.Point)
	}
	if pos == trailingEdge(v, d) {
		v.pan(d.Axis, d.Step)
	}
	c.advance(d)
	v.reveal(c.Point)
	return true
}
