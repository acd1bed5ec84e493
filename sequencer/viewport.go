package sequencer

// Point is an absolute or viewport-relative cell coordinate.
type Point struct {
	X, Y int
}

// Axis selects the time (X) or pitch (Y) dimension.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Viewport is the fixed-size window of the grid shown on screen. The origin
// is the absolute coordinate of its top-left cell and always satisfies
// 0 <= origin <= gridDim - viewDim on both axes.
type Viewport struct {
	width, height         int
	gridWidth, gridHeight int
	origin                Point
}

// NewViewport creates a viewport at the grid's top-left corner.
func NewViewport(g *Grid, width, height int) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, &ContractError{Op: "NewViewport", X: width, Y: height, Err: ErrInvalidSize}
	}
	if width > g.Width() || height > g.Height() {
		return nil, &ContractError{Op: "NewViewport", X: width, Y: height, Err: ErrViewportTooLarge}
	}
	return &Viewport{
		width:      width,
		height:     height,
		gridWidth:  g.Width(),
		gridHeight: g.Height(),
	}, nil
}

func (v *Viewport) Size() (w, h int) { return v.width, v.height }
func (v *Viewport) Origin() Point    { return v.origin }

// MaxOrigin is the largest valid origin on each axis.
func (v *Viewport) MaxOrigin() Point {
	return Point{X: v.gridWidth - v.width, Y: v.gridHeight - v.height}
}

// SetOrigin moves the viewport, failing if the origin is out of range.
func (v *Viewport) SetOrigin(p Point) error {
	hi := v.MaxOrigin()
	if p.X < 0 || p.X > hi.X || p.Y < 0 || p.Y > hi.Y {
		return outOfBounds("SetOrigin", p.X, p.Y)
	}
	v.origin = p
	return nil
}

// PanHorizontal shifts the origin by delta columns, clamped to the grid.
func (v *Viewport) PanHorizontal(delta int) {
	v.origin.X = shift(v.origin.X, delta, v.gridWidth-v.width)
}

// PanVertical shifts the origin by delta rows, clamped to the grid.
func (v *Viewport) PanVertical(delta int) {
	v.origin.Y = shift(v.origin.Y, delta, v.gridHeight-v.height)
}

func (v *Viewport) pan(a Axis, delta int) {
	if a == AxisX {
		v.PanHorizontal(delta)
	} else {
		v.PanVertical(delta)
	}
}

// CanPan reports whether panning by delta along a would move the origin.
func (v *Viewport) CanPan(a Axis, delta int) bool {
	o := v.originAlong(a)
	return delta != 0 && delta >= -o && delta <= v.gridExtent(a)-v.extent(a)-o
}

// Contains reports whether the absolute coordinate is inside the window.
func (v *Viewport) Contains(x, y int) bool {
	return x >= v.origin.X && x < v.origin.X+v.width &&
		y >= v.origin.Y && y < v.origin.Y+v.height
}

// TranslateToVisible converts an absolute coordinate to window-relative
// coordinates. ok is false when the coordinate is not visible.
func (v *Viewport) TranslateToVisible(x, y int) (lx, ly int, ok bool) {
	if !v.Contains(x, y) {
		return 0, 0, false
	}
	return x - v.origin.X, y - v.origin.Y, true
}

// reveal scrolls the minimal amount needed to bring p into the window.
func (v *Viewport) reveal(p Point) bool {
	before := v.origin
	if p.X < v.origin.X {
		v.PanHorizontal(p.X - v.origin.X)
	} else if p.X >= v.origin.X+v.width {
		v.PanHorizontal(p.X - (v.origin.X + v.width - 1))
	}
	if p.Y < v.origin.Y {
		v.PanVertical(p.Y - v.origin.Y)
	} else if p.Y >= v.origin.Y+v.height {
		v.PanVertical(p.Y - (v.origin.Y + v.height - 1))
	}
	return v.origin != before
}

func (v *Viewport) originAlong(a Axis) int {
	if a == AxisX {
		return v.origin.X
	}
	return v.origin.Y
}

func (v *Viewport) extent(a Axis) int {
	if a == AxisX {
		return v.width
	}
	return v.height
}

func (v *Viewport) gridExtent(a Axis) int {
	if a == AxisX {
		return v.gridWidth
	}
	return v.gridHeight
}

// shift moves origin by delta within [0, hi]. The delta is clamped first so
// origin+delta cannot overflow.
func shift(origin, delta, hi int) int {
	return origin + clamp(delta, -origin, hi-origin)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
