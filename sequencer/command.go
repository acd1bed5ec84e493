package sequencer

import "fmt"

// Command is one discrete editing action, issued once per key press or pad
// press.
type Command int

const (
	CmdNone Command = iota
	MoveCursorLeft
	MoveCursorRight
	MoveCursorUp
	MoveCursorDown
	PanViewportLeft
	PanViewportRight
	PanViewportUp
	PanViewportDown
	ToggleCell
	ClearGrid
	Quit
)

var commandNames = map[Command]string{
	MoveCursorLeft:   "move-left",
	MoveCursorRight:  "move-right",
	MoveCursorUp:     "move-up",
	MoveCursorDown:   "move-down",
	PanViewportLeft:  "pan-left",
	PanViewportRight: "pan-right",
	PanViewportUp:    "pan-up",
	PanViewportDown:  "pan-down",
	ToggleCell:       "toggle",
	ClearGrid:        "clear",
	Quit:             "quit",
}

// Commands lists every command in declaration order.
func Commands() []Command {
	return []Command{
		MoveCursorLeft, MoveCursorRight, MoveCursorUp, MoveCursorDown,
		PanViewportLeft, PanViewportRight, PanViewportUp, PanViewportDown,
		ToggleCell, ClearGrid, Quit,
	}
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand maps a config name such as "pan-left" to its Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", name)
}

// direction returns the navigation or pan direction of c.
func (c Command) direction() (Direction, bool) {
	switch c {
	case MoveCursorLeft, PanViewportLeft:
		return Left, true
	case MoveCursorRight, PanViewportRight:
		return Right, true
	case MoveCursorUp, PanViewportUp:
		return Up, true
	case MoveCursorDown, PanViewportDown:
		return Down, true
	}
	return Direction{}, false
}

// IsPan reports whether c moves only the viewport.
func (c Command) IsPan() bool {
	return c >= PanViewportLeft && c <= PanViewportDown
}

// IsMove reports whether c navigates the cursor.
func (c Command) IsMove() bool {
	return c >= MoveCursorLeft && c <= MoveCursorDown
}
