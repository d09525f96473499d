package events

// EventType represents the type of game event
type EventType int

const (
	// EventSelectionChanged signals a Select dispatch
	// Trigger: RulesEngine.Select | Payload: *SelectionPayload
	EventSelectionChanged EventType = iota + 1

	// EventModeChanged signals a mode transition from key input
	// Trigger: RulesEngine.HandleKey | Payload: *ModePayload
	EventModeChanged

	// EventUnitMoved signals a legal move
	// Trigger: RulesEngine.Move | Payload: *MovePayload
	EventUnitMoved

	// EventUnitAttacked signals damage applied to a target
	// Trigger: RulesEngine.Attack | Payload: *AttackPayload
	EventUnitAttacked

	// EventInterceptorSpawned signals a successful build
	// Trigger: RulesEngine.Build | Payload: *SpawnPayload
	EventInterceptorSpawned

	// EventUnitDied signals removal by death cleanup
	// Trigger: RulesEngine.Cull | Payload: *DeathPayload
	EventUnitDied

	// EventTurnAdvanced signals the turn cursor moved; Recharged is set on wrap
	// Trigger: RulesEngine.EndTurn | Payload: *TurnPayload
	EventTurnAdvanced

	// EventActionRejected signals a silently ignored action (debug only)
	// Trigger: any action | Payload: *RejectedPayload
	EventActionRejected

	// EventSessionStarted signals Menu -> Playing
	// Trigger: RulesEngine.HandleKey | Payload: nil
	EventSessionStarted
)

var typeNames = map[EventType]string{
	EventSelectionChanged:   "SelectionChanged",
	EventModeChanged:        "ModeChanged",
	EventUnitMoved:          "UnitMoved",
	EventUnitAttacked:       "UnitAttacked",
	EventInterceptorSpawned: "InterceptorSpawned",
	EventUnitDied:           "UnitDied",
	EventTurnAdvanced:       "TurnAdvanced",
	EventActionRejected:     "ActionRejected",
	EventSessionStarted:     "SessionStarted",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single rules-engine notification
type GameEvent struct {
	Type    EventType
	Payload any
	Round   int
}
