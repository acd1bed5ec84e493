package sequencer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a coordinate outside the data grid or viewport.
	ErrOutOfBounds = errors.New("sequencer: coordinate out of bounds")
	// ErrInvalidSize indicates a non-positive grid or viewport dimension.
	ErrInvalidSize = errors.New("sequencer: dimensions must be positive")
	// ErrViewportTooLarge indicates a viewport wider or taller than the grid.
	ErrViewportTooLarge = errors.New("sequencer: viewport exceeds grid dimensions")
)

// ContractError reports a call that broke the editor's contract, such as
// reading a cell outside the grid. It is never produced by a navigation
// command that merely hit an edge.
type ContractError struct {
	Op   string
	X, Y int
	Err  error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s(%d,%d): %v", e.Op, e.X, e.Y, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func outOfBounds(op string, x, y int) *ContractError {
	return &ContractError{Op: op, X: x, Y: y, Err: ErrOutOfBounds}
}
