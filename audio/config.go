package audio

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Collisions fire often; keep them under the other cues
	cfg.EffectVolumes[SoundSplash] = 0.6
	cfg.EffectVolumes[SoundPush] = 0.5
	return cfg
}

// SetEffectVolume sets one effect volume, clamped to [0, 1]
func (c *AudioConfig) SetEffectVolume(s SoundType, vol float64) {
	if s < 0 || s >= soundTypeCount {
		return
	}
	c.EffectVolumes[s] = clampUnit(vol)
}

// SetMasterVolume sets the master volume, clamped to [0, 1]
func (c *AudioConfig) SetMasterVolume(vol float64) {
	c.MasterVolume = clampUnit(vol)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
