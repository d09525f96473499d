package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
)

// Machine accumulates terminal events between frames and emits one
// normalized engine.Input per frame
type Machine struct {
	keyTable *KeyTable
	clicks   ClickTracker

	pointer    core.Point
	buttonDown bool
	released   bool

	// Engine keys waiting for a frame; one is delivered per frame
	keys []core.Key
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		keys:     make([]core.Key, 0, 4),
	}
}

// Process consumes one terminal event. The returned key is the semantic key
// of a key event, or core.KeyNone. Quit and Report are returned but never
// queued for the engine.
func (m *Machine) Process(ev tcell.Event) core.Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := m.keyTable.Translate(ev)
		switch key {
		case core.KeyNone, core.KeyQuit, core.KeyReport:
		default:
			m.keys = append(m.keys, key)
		}
		return key
	case *tcell.EventMouse:
		m.processMouse(ev)
	}
	return core.KeyNone
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	m.pointer = core.Point{X: x, Y: y}

	// Drag and wheel events repeat the button state; only changes are edges
	down := ev.Buttons()&tcell.Button1 != 0
	if down == m.buttonDown {
		return
	}
	m.buttonDown = down
	if m.clicks.Edge() {
		m.released = true
	}
}

// Frame returns this frame's input and resets the per-frame release flag.
// The pointer persists across frames.
func (m *Machine) Frame() engine.Input {
	in := engine.Input{
		Pointer:       m.pointer,
		ClickReleased: m.released,
	}
	m.released = false

	if len(m.keys) > 0 {
		in.Key = m.keys[0]
		m.keys = m.keys[1:]
	}
	return in
}

// Pointer returns the last pointer position seen
func (m *Machine) Pointer() core.Point {
	return m.pointer
}

// Reset clears pending keys and any half-finished click
func (m *Machine) Reset() {
	m.clicks.Reset()
	m.buttonDown = false
	m.released = false
	m.keys = m.keys[:0]
}
