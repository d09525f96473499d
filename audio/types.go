package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundSelect SoundType = iota // Unit selected
	SoundMove                    // Unit moved
	SoundHit                     // Attack landed
	SoundDeath                   // Unit removed
	SoundSpawn                   // Interceptor built
	SoundTurn                    // Turn advanced
	SoundRecharge                // Round wrapped, all units recharged
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundSelect:   "select",
	SoundMove:     "move",
	SoundHit:      "hit",
	SoundDeath:    "death",
	SoundSpawn:    "spawn",
	SoundTurn:     "turn",
	SoundRecharge: "recharge",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
