package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/papercraft/events"
)

// SoundManager plays short synthesized cues for game events.
// Every method is a silent no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Disabled configs stay silent without error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker shutdown that survives re-init; clearing the mixer is enough
	sm.initialized = false
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CreateSound(st, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EventTypes returns the event types that have a sound cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSelectionChanged,
		events.EventUnitMoved,
		events.EventUnitAttacked,
		events.EventUnitDied,
		events.EventInterceptorSpawned,
		events.EventTurnAdvanced,
	}
}

// HandleEvent plays the cue mapped to the event. Rejected actions stay silent.
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if st, ok := SoundFor(ev); ok {
		sm.Play(st)
	}
}

// SoundFor maps a game event to its cue
func SoundFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventSelectionChanged:
		if p, ok := ev.Payload.(*events.SelectionPayload); ok && p.Selected {
			return SoundSelect, true
		}
	case events.EventUnitMoved:
		return SoundMove, true
	case events.EventUnitAttacked:
		return SoundHit, true
	case events.EventUnitDied:
		return SoundDeath, true
	case events.EventInterceptorSpawned:
		return SoundSpawn, true
	case events.EventTurnAdvanced:
		if p, ok := ev.Payload.(*events.TurnPayload); ok && p.Recharged {
			return SoundRecharge, true
		}
		return SoundTurn, true
	}
	return 0, false
}
