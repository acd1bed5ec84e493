package sequencer

import "fmt"

// Options configures a new Editor.
type Options struct {
	GridWidth, GridHeight int
	ViewWidth, ViewHeight int
	Origin                Point
	Cursor                Point
}

// DefaultOptions is a 64 step by 36 row grid seen through a 32x12 window.
func DefaultOptions() Options {
	return Options{
		GridWidth:  64,
		GridHeight: 36,
		ViewWidth:  32,
		ViewHeight: 12,
	}
}

// Editor is the editing session: it owns the grid, the viewport and the
// cursor and keeps them consistent. It is not safe for concurrent use.
type Editor struct {
	grid   *Grid
	view   *Viewport
	cursor Cursor
}

// NewEditor validates opts and builds an editor. If the initial cursor lies
// outside the initial window, the window is scrolled to show it.
func NewEditor(opts Options) (*Editor, error) {
	g, err := NewGrid(opts.GridWidth, opts.GridHeight)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	v, err := NewViewport(g, opts.ViewWidth, opts.ViewHeight)
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	if err := v.SetOrigin(opts.Origin); err != nil {
		return nil, fmt.Errorf("viewport origin: %w", err)
	}
	if !g.InBounds(opts.Cursor.X, opts.Cursor.Y) {
		return nil, fmt.Errorf("cursor: %w", outOfBounds("NewEditor", opts.Cursor.X, opts.Cursor.Y))
	}
	e := &Editor{grid: g, view: v, cursor: Cursor{Point: opts.Cursor}}
	v.reveal(e.cursor.Point)
	return e, nil
}

// Grid exposes the data grid for read-mostly collaborators.
func (e *Editor) Grid() *Grid { return e.grid }

// Viewport exposes the visible window.
func (e *Editor) Viewport() *Viewport { return e.view }

// Apply executes one command and reports whether any state changed. A
// command issued at an edge is a silent no-op and returns false. Quit is
// handled by the caller and never changes state.
func (e *Editor) Apply(cmd Command) bool {
	switch {
	case cmd.IsMove():
		d, _ := cmd.direction()
		return e.Move(d)
	case cmd.IsPan():
		d, _ := cmd.direction()
		return e.Pan(d)
	case cmd == ToggleCell:
		e.grid.Toggle(e.cursor.X, e.cursor.Y)
		return true
	case cmd == ClearGrid:
		if e.grid.Filled() == 0 {
			return false
		}
		e.grid.Clear()
		return true
	}
	return false
}

// Move navigates the cursor one cell, dragging the viewport when needed.
// A move blocked by the grid edge leaves the cursor in place; it returns
// true only if the cursor was off screen and the viewport scrolled to show
// it, and false otherwise.
func (e *Editor) Move(d Direction) bool {
	return navigate(e.grid, e.view, &e.cursor, d)
}

// Pan moves only the viewport. A pan past the last valid origin is rejected
// up front rather than absorbed by clamping.
func (e *Editor) Pan(d Direction) bool {
	if !e.view.CanPan(d.Axis, d.Step) {
		return false
	}
	e.view.pan(d.Axis, d.Step)
	return true
}

// SelectVisible moves the cursor to the window-relative cell (i, j).
func (e *Editor) SelectVisible(i, j int) error {
	w, h := e.view.Size()
	if i < 0 || i >= w || j < 0 || j >= h {
		return outOfBounds("SelectVisible", i, j)
	}
	o := e.view.Origin()
	e.cursor.Point = Point{X: o.X + i, Y: o.Y + j}
	return nil
}

// CellState reports whether the absolute cell (x, y) is filled.
func (e *Editor) CellState(x, y int) (bool, error) {
	if !e.grid.InBounds(x, y) {
		return false, outOfBounds("CellState", x, y)
	}
	return e.grid.Get(x, y), nil
}

// IsCellVisible reports whether the absolute cell (x, y) is in the window.
func (e *Editor) IsCellVisible(x, y int) (bool, error) {
	if !e.grid.InBounds(x, y) {
		return false, outOfBounds("IsCellVisible", x, y)
	}
	return e.view.Contains(x, y), nil
}

func (e *Editor) ViewportOrigin() Point { return e.view.Origin() }
func (e *Editor) CursorPosition() Point { return e.cursor.Point }
