package audio

// AudioConfig holds synthesis and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundSelect:   0.3,
			SoundMove:     0.4,
			SoundHit:      0.8,
			SoundDeath:    0.8,
			SoundSpawn:    0.6,
			SoundTurn:     0.5,
			SoundRecharge: 0.6,
		},
	}
}

// NewAudioConfig builds a config from the enabled flag and master volume.
// Volume is clamped to [0, 1].
func NewAudioConfig(enabled bool, volume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(volume, 0), 1)
	return cfg
}
