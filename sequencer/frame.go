package sequencer

// Cell is what a renderer needs to draw one visible cell.
type Cell struct {
	Local  Point // window-relative
	Abs    Point // absolute grid coordinate
	Cursor bool
	Filled bool
}

// VisibleCell describes the window-relative cell (i, j). It panics with a
// *ContractError if (i, j) is outside the window.
func (e *Editor) VisibleCell(i, j int) Cell {
	w, h := e.view.Size()
	if i < 0 || i >= w || j < 0 || j >= h {
		panic(outOfBounds("VisibleCell", i, j))
	}
	o := e.view.Origin()
	abs := Point{X: o.X + i, Y: o.Y + j}
	return Cell{
		Local:  Point{X: i, Y: j},
		Abs:    abs,
		Cursor: abs == e.cursor.Point,
		Filled: e.grid.Get(abs.X, abs.Y),
	}
}

// EachVisible calls fn for every visible cell, row by row from the top.
func (e *Editor) EachVisible(fn func(Cell)) {
	w, h := e.view.Size()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			fn(e.VisibleCell(i, j))
		}
	}
}
