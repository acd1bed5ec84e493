package sequencer

// Grid is the full-resolution data grid: Width time steps by Height pitch
// rows, each cell either filled or empty. Storage is dense and row-major.
//
// Every accessor panics with a *ContractError when given a coordinate
// outside the grid.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates an all-empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ContractError{Op: "NewGrid", X: width, Y: height, Err: ErrInvalidSize}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(op string, x, y int) int {
	if !g.InBounds(x, y) {
		panic(outOfBounds(op, x, y))
	}
	return y*g.width + x
}

// Get returns true if the cell is filled.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.index("Get", x, y)]
}

func (g *Grid) IsFilled(x, y int) bool { return g.Get(x, y) }
func (g *Grid) IsEmpty(x, y int) bool  { return !g.Get(x, y) }

func (g *Grid) SetFilled(x, y int) {
	g.cells[g.index("SetFilled", x, y)] = true
}

func (g *Grid) SetEmpty(x, y int) {
	g.cells[g.index("SetEmpty", x, y)] = false
}

// Toggle flips a single cell between filled and empty.
func (g *Grid) Toggle(x, y int) {
	i := g.index("Toggle", x, y)
	g.cells[i] = !g.cells[i]
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Filled counts filled cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// extent returns the grid size along an axis.
func (g *Grid) extent(a Axis) int {
	if a == AxisX {
		return g.width
	}
	return g.height
}
