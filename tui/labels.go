package tui

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// in ascending order
var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// minCellWidth fits "[●]" or " ● ".
const minCellWidth = 3

// layout is the column geometry of the grid view, sized so the widest row
// and column labels still leave a one-space gap.
type layout struct {
	label int // "C#2 "
	cell  int
}

func newLayout(gridWidth, gridHeight int) layout {
	octave := (gridHeight - 1) / 12
	return layout{
		label: len("C#") + len(strconv.Itoa(octave)) + 1,
		cell:  max(minCellWidth, len(strconv.Itoa(gridWidth-1))+1),
	}
}

// rowLabel names the pitch of grid row y. The bottom row is C0 and pitch
// rises towards row 0.
func (l layout) rowLabel(y, gridHeight int) string {
	pitch := gridHeight - 1 - y
	return runewidth.FillRight(fmt.Sprintf("%s%d", noteNames[pitch%12], pitch/12), l.label)
}

// columnLabel is the absolute time index of column x, padded to a cell.
func (l layout) columnLabel(x int) string {
	return runewidth.FillRight(strconv.Itoa(x), l.cell)
}
