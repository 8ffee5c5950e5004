package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "REALITY_BENDER_AUDIO_ENABLED"
	EnvMasterVolume = "REALITY_BENDER_MASTER_VOLUME"
	EnvSFXVolumes   = "REALITY_BENDER_SFX_VOLUMES"
	EnvSampleRate   = "REALITY_BENDER_SAMPLE_RATE"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundGravity:   0.8,
			SoundDimension: 0.7,
			SoundTime:      0.6,
			SoundCollision: 0.8,
			SoundVictory:   1.0,
		},
		SampleRate: 44100,
	}
}

// LoadAudioConfig returns defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from the environment; malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON, e.g. {"gravity":0.5,"victory":1}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, err := ParseSoundType(name); err == nil {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
