package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/papercraft/core"
)

func TestClickTracker_OneReleasePerGesture(t *testing.T) {
	var c ClickTracker

	assert.False(t, c.Edge(), "press")
	assert.True(t, c.Pending())
	assert.True(t, c.Edge(), "release")
	assert.False(t, c.Pending())

	assert.False(t, c.Edge())
	c.Reset()
	assert.False(t, c.Edge(), "reset drops the half gesture")
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Key
	}{
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), core.KeyMove},
		{"A", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), core.KeyAttack},
		{"b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), core.KeyBuild},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KeySpace},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.KeyEscape},
		{"report", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.KeyReport},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), core.KeyQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.KeyQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.ev))
		})
	}
}

func TestMachine_ClickReleaseOncePerGesture(t *testing.T) {
	m := NewMachine()

	m.Process(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	in := m.Frame()
	assert.Equal(t, core.Point{X: 4, Y: 5}, in.Pointer)
	assert.False(t, in.ClickReleased, "press alone")

	// Drag repeats the held button; not an edge
	m.Process(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	assert.False(t, m.Frame().ClickReleased)

	m.Process(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	in = m.Frame()
	assert.True(t, in.ClickReleased)
	assert.Equal(t, core.Point{X: 6, Y: 5}, in.Pointer)

	// Flag lasts one frame
	assert.False(t, m.Frame().ClickReleased)

	// Pure motion never clicks
	m.Process(tcell.NewEventMouse(9, 9, tcell.ButtonNone, tcell.ModNone))
	in = m.Frame()
	assert.False(t, in.ClickReleased)
	assert.Equal(t, core.Point{X: 9, Y: 9}, m.Pointer())
}

func TestMachine_KeysOnePerFrame(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, core.KeyMove, m.Process(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.Equal(t, core.KeyQuit, m.Process(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)))
	m.Process(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	require.Equal(t, core.KeyMove, m.Frame().Key)
	require.Equal(t, core.KeyEscape, m.Frame().Key)
	assert.Equal(t, core.KeyNone, m.Frame().Key)

	m.Process(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	m.Reset()
	assert.Equal(t, core.KeyNone, m.Frame().Key)
}
