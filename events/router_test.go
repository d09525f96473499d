package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventUnitMoved, Round: 1})
	q.Push(GameEvent{Type: EventUnitDied, Round: 2})
	assert.Equal(t, 2, q.Len())

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventUnitMoved, got[0].Type)
	assert.Equal(t, EventUnitDied, got[1].Type)
	assert.Equal(t, 0, q.Len())
}

func TestRouter_DispatchAll(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	moves := &recordingHandler{types: []EventType{EventUnitMoved}}
	all := &recordingHandler{types: AllTypes()}
	r.Register(moves)
	r.Register(all)

	assert.Equal(t, 2, r.HandlerCount(EventUnitMoved))
	assert.Equal(t, 1, r.HandlerCount(EventTurnAdvanced))

	q.Push(GameEvent{Type: EventUnitMoved, Payload: &MovePayload{MovesLeft: 1}})
	q.Push(GameEvent{Type: EventTurnAdvanced, Payload: &TurnPayload{}})

	assert.Equal(t, 2, r.DispatchAll())
	assert.Len(t, moves.seen, 1)
	assert.Len(t, all.seen, 2)
	assert.Equal(t, 0, r.DispatchAll())
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "UnitAttacked", EventUnitAttacked.String())
	assert.Equal(t, "Unknown", EventType(999).String())
	assert.Len(t, AllTypes(), len(typeNames))
}
