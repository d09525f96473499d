package audio

import (
	"testing"

	"github.com/lixenwraith/papercraft/events"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		sm.Play(st)
	}
	sm.HandleEvent(events.GameEvent{Type: events.EventUnitDied, Payload: &events.DeathPayload{}})
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(NewAudioConfig(false, 0.5))
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled init should not fail: %v", err)
	}
	if sm.initialized {
		t.Error("Disabled manager should stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Cleanup()
}

// TestSoundFor verifies event to cue mapping
func TestSoundFor(t *testing.T) {
	tests := []struct {
		name  string
		ev    events.GameEvent
		want  SoundType
		sound bool
	}{
		{"select", events.GameEvent{Type: events.EventSelectionChanged, Payload: &events.SelectionPayload{Selected: true}}, SoundSelect, true},
		{"deselect", events.GameEvent{Type: events.EventSelectionChanged, Payload: &events.SelectionPayload{}}, 0, false},
		{"move", events.GameEvent{Type: events.EventUnitMoved}, SoundMove, true},
		{"hit", events.GameEvent{Type: events.EventUnitAttacked}, SoundHit, true},
		{"death", events.GameEvent{Type: events.EventUnitDied}, SoundDeath, true},
		{"spawn", events.GameEvent{Type: events.EventInterceptorSpawned}, SoundSpawn, true},
		{"turn", events.GameEvent{Type: events.EventTurnAdvanced, Payload: &events.TurnPayload{}}, SoundTurn, true},
		{"recharge", events.GameEvent{Type: events.EventTurnAdvanced, Payload: &events.TurnPayload{Recharged: true}}, SoundRecharge, true},
		{"rejected", events.GameEvent{Type: events.EventActionRejected}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundFor(tt.ev)
			if ok != tt.sound {
				t.Fatalf("SoundFor ok = %v, want %v", ok, tt.sound)
			}
			if ok && got != tt.want {
				t.Errorf("SoundFor = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestNewAudioConfigClamp verifies volume clamping
func TestNewAudioConfigClamp(t *testing.T) {
	if v := NewAudioConfig(true, 3).MasterVolume; v != 1 {
		t.Errorf("Expected clamp to 1, got %f", v)
	}
	if v := NewAudioConfig(true, -1).MasterVolume; v != 0 {
		t.Errorf("Expected clamp to 0, got %f", v)
	}
}
