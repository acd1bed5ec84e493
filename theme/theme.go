package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-steproll/sequencer"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Grid states (no cursor)
	CellEmpty  rune // · empty cell
	CellFilled rune // ● filled cell

	// Grid states (with cursor)
	CursorEmpty  rune // ○ cursor on empty
	CursorFilled rune // ◉ cursor on filled
}

// Color roles are palette indexes, in the order of palettes/classic.gpl.
const (
	RoleBackground = iota
	RoleBorder
	RoleEmpty
	RoleEmptyCursor
	RoleFilled
	RoleFilledCursor
	RoleCursor
	RoleText

	NumRoles
)

// Classic is the built-in palette: light cells, red notes, magenta cursor.
func Classic() *Palette {
	return &Palette{
		Name: "Classic",
		Colors: []RGB{
			{255, 255, 255},
			{152, 152, 152},
			{240, 240, 240},
			{200, 200, 200},
			{255, 0, 0},
			{200, 0, 0},
			{255, 0, 255},
			{0, 0, 0},
		},
	}
}

// New builds a theme. The palette must define a color for every role.
func New(palette *Palette) (*Theme, error) {
	if len(palette.Colors) < NumRoles {
		return nil, fmt.Errorf("palette %q has %d colors, need %d", palette.Name, len(palette.Colors), NumRoles)
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			CellEmpty:    '·',
			CellFilled:   '●',
			CursorEmpty:  '○',
			CursorFilled: '◉',
		},
	}, nil
}

// Default is the Classic theme.
func Default() *Theme {
	t, _ := New(Classic())
	return t
}

// Load builds a theme from a .gpl file, or the default theme for "".
func Load(path string) (*Theme, error) {
	if path == "" {
		return Default(), nil
	}
	p, err := LoadGPL(path)
	if err != nil {
		return nil, err
	}
	return New(p)
}

// Style helpers

func (t *Theme) Background() lipgloss.Color { return t.color(RoleBackground) }
func (t *Theme) Border() lipgloss.Color     { return t.color(RoleBorder) }
func (t *Theme) Cursor() lipgloss.Color     { return t.color(RoleCursor) }
func (t *Theme) Text() lipgloss.Color       { return t.color(RoleText) }

// CellColor is the body color of a cell in the given state.
func (t *Theme) CellColor(filled, cursor bool) lipgloss.Color {
	switch {
	case filled && cursor:
		return t.color(RoleFilledCursor)
	case filled:
		return t.color(RoleFilled)
	case cursor:
		return t.color(RoleEmptyCursor)
	}
	return t.color(RoleEmpty)
}

// CellSymbol is the glyph of a cell in the given state.
func (t *Theme) CellSymbol(filled, cursor bool) rune {
	switch {
	case filled && cursor:
		return t.Symbols.CursorFilled
	case filled:
		return t.Symbols.CellFilled
	case cursor:
		return t.Symbols.CursorEmpty
	}
	return t.Symbols.CellEmpty
}

// PadColors maps the theme onto a Launchpad mirror.
func (t *Theme) PadColors() sequencer.PadColors {
	return sequencer.PadColors{
		Empty:    [3]uint8{0, 0, 0},
		Filled:   t.RGB(RoleFilled),
		Cursor:   t.RGB(RoleCursor),
		Controls: t.RGB(RoleBorder),
		Clear:    t.RGB(RoleFilledCursor),
	}
}

// RGB returns raw RGB for a role (for Launchpad)
func (t *Theme) RGB(role int) RGB {
	return t.Palette.Index(role)
}

func (t *Theme) color(role int) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Index(role))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
