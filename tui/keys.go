package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"go-steproll/config"
	"go-steproll/sequencer"
	"go-steproll/widgets"
)

// keyMap holds one binding per command. It satisfies help.KeyMap.
type keyMap struct {
	bindings map[sequencer.Command]key.Binding
}

// newKeyMap builds bindings from command -> keys. config.QuitKey is always
// added to quit so the editor can be left even with a broken keys section.
func newKeyMap(keys map[sequencer.Command][]string) keyMap {
	km := keyMap{bindings: make(map[sequencer.Command]key.Binding)}
	for _, c := range sequencer.Commands() {
		ks := slices.Clone(keys[c])
		if c == sequencer.Quit && !slices.Contains(ks, config.QuitKey) {
			ks = append(ks, config.QuitKey)
		}
		if len(ks) == 0 {
			continue
		}
		shown := make([]string, len(ks))
		for i, k := range ks {
			shown[i] = widgets.DisplayKey(k)
		}
		km.bindings[c] = key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(shown, "/"), c.String()),
		)
	}
	return km
}

// lookup returns the command bound to msg.
func (km keyMap) lookup(msg tea.KeyMsg) (sequencer.Command, bool) {
	for _, c := range sequencer.Commands() {
		if b, ok := km.bindings[c]; ok && key.Matches(msg, b) {
			return c, true
		}
	}
	return sequencer.CmdNone, false
}

func (km keyMap) group(cmds ...sequencer.Command) []key.Binding {
	var out []key.Binding
	for _, c := range cmds {
		if b, ok := km.bindings[c]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (km keyMap) ShortHelp() []key.Binding {
	return km.group(sequencer.ToggleCell, sequencer.ClearGrid, sequencer.Quit)
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.group(sequencer.MoveCursorLeft, sequencer.MoveCursorRight, sequencer.MoveCursorUp, sequencer.MoveCursorDown),
		km.group(sequencer.PanViewportLeft, sequencer.PanViewportRight, sequencer.PanViewportUp, sequencer.PanViewportDown),
		km.group(sequencer.ToggleCell, sequencer.ClearGrid, sequencer.Quit),
	}
}
