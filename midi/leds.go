package midi

import "go-steproll/debug"

// LEDMirror remembers what a controller is showing and sends only the pads
// that differ from the previous frame.
type LEDMirror struct {
	prev map[[2]int]LEDUpdate
}

func NewLEDMirror() *LEDMirror {
	return &LEDMirror{prev: make(map[[2]int]LEDUpdate)}
}

// Reset forgets the previous frame so the next Flush repaints everything.
func (m *LEDMirror) Reset() {
	m.prev = make(map[[2]int]LEDUpdate)
}

// Diff returns the updates needed to go from the previous frame to leds and
// records leds as the new frame. Pads missing from leds are switched off.
func (m *LEDMirror) Diff(leds []LEDUpdate) []LEDUpdate {
	next := make(map[[2]int]LEDUpdate, len(leds))
	var updates []LEDUpdate

	for _, led := range leds {
		key := [2]int{led.Row, led.Col}
		next[key] = led
		if prev, ok := m.prev[key]; !ok || prev != led {
			updates = append(updates, led)
		}
	}

	for key := range m.prev {
		if _, ok := next[key]; !ok {
			updates = append(updates, LEDUpdate{Row: key[0], Col: key[1]})
		}
	}

	m.prev = next
	return updates
}

// Flush sends the changed pads to c.
func (m *LEDMirror) Flush(c Controller, leds []LEDUpdate) error {
	if c == nil {
		return nil
	}
	updates := m.Diff(leds)
	if len(updates) == 0 {
		return nil
	}
	debug.Log("led", "flush: batch=%d frame=%d", len(updates), len(leds))
	return c.SetLEDBatch(updates)
}
