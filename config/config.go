// Package config loads the TOML game configuration and converts it into the
// settings each subsystem consumes
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/reality-bender/audio"
	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/engine"
	"github.com/lixenwraith/reality-bender/input"
	"github.com/lixenwraith/reality-bender/physics"
)

// ErrUnknownKeys is returned when the file sets keys no section declares
var ErrUnknownKeys = errors.New("unknown config keys")

// Config is the decoded configuration file
type Config struct {
	Game    GameConfig    `toml:"game"`
	Physics PhysicsConfig `toml:"physics"`
	Input   InputConfig   `toml:"input"`
	Audio   AudioConfig   `toml:"audio"`
	Debug   DebugConfig   `toml:"debug"`
}

// GameConfig holds loop timing and session options
type GameConfig struct {
	FrameInterval    time.Duration `toml:"frame_interval"`
	SampleInterval   time.Duration `toml:"sample_interval"`
	RestartDelay     time.Duration `toml:"restart_delay"`
	HistoryCapacity  int           `toml:"history_capacity"`
	DebounceModeKeys bool          `toml:"debounce_mode_keys"`
	Level            string        `toml:"level"`
}

// PhysicsConfig holds integrator constants
type PhysicsConfig struct {
	Gravity   float64 `toml:"gravity"`
	JumpForce float64 `toml:"jump_force"`
	MoveSpeed float64 `toml:"move_speed"`
}

// InputConfig holds key release timing and bindings
// Keys maps a terminal key name ("Up", "g", "Ctrl-C") to an action ("ArrowUp", "quit", "none")
type InputConfig struct {
	ReleaseAfter time.Duration     `toml:"release_after"`
	Keys         map[string]string `toml:"keys"`
}

// AudioConfig holds the mix; Volumes is keyed by cue name
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// DebugConfig holds the status endpoint address, empty disables it
type DebugConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration
func Default() *Config {
	p := physics.DefaultParams()
	a := audio.DefaultAudioConfig()
	return &Config{
		Game: GameConfig{
			FrameInterval:   constants.FrameUpdateInterval,
			SampleInterval:  constants.HistorySampleInterval,
			RestartDelay:    constants.CollisionRestartDelay,
			HistoryCapacity: constants.HistoryCapacity,
		},
		Physics: PhysicsConfig{
			Gravity:   p.Gravity,
			JumpForce: p.JumpForce,
			MoveSpeed: p.MoveSpeed,
		},
		Input: InputConfig{
			ReleaseAfter: input.DefaultReleaseAfter,
		},
		Audio: AudioConfig{
			Enabled:      a.Enabled,
			MasterVolume: a.MasterVolume,
		},
	}
}

// Load decodes path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(names, ", "))
}

// Validate rejects values no subsystem can run with
func (c *Config) Validate() error {
	switch {
	case c.Game.FrameInterval <= 0:
		return fmt.Errorf("game.frame_interval must be positive, got %v", c.Game.FrameInterval)
	case c.Game.SampleInterval <= 0:
		return fmt.Errorf("game.sample_interval must be positive, got %v", c.Game.SampleInterval)
	case c.Game.RestartDelay < 0:
		return fmt.Errorf("game.restart_delay must not be negative, got %v", c.Game.RestartDelay)
	case c.Game.HistoryCapacity <= 0:
		return fmt.Errorf("game.history_capacity must be positive, got %d", c.Game.HistoryCapacity)
	case c.Input.ReleaseAfter < 0:
		return fmt.Errorf("input.release_after must not be negative, got %v", c.Input.ReleaseAfter)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.Volumes {
		if _, err := audio.ParseSoundType(name); err != nil {
			return fmt.Errorf("audio.volumes: %w", err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.volumes.%s must be within [0, 1], got %v", name, v)
		}
	}
	if _, err := input.ParseBindings(c.Input.Keys); err != nil {
		return fmt.Errorf("input.keys: %w", err)
	}
	return nil
}

// EngineConfig returns the game tuning
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Physics: physics.Params{
			Gravity:   c.Physics.Gravity,
			JumpForce: c.Physics.JumpForce,
			MoveSpeed: c.Physics.MoveSpeed,
		},
		HistoryCapacity: c.Game.HistoryCapacity,
		SampleInterval:  c.Game.SampleInterval,
		Input: input.Options{
			DebounceModeKeys: c.Game.DebounceModeKeys,
			ReleaseAfter:     c.Input.ReleaseAfter,
		},
	}
}

// LoopConfig returns the scheduler settings
func (c *Config) LoopConfig() engine.LoopConfig {
	return engine.LoopConfig{
		FrameInterval: c.Game.FrameInterval,
		RestartDelay:  c.Game.RestartDelay,
	}
}

// Keymap returns the default bindings with the configured overrides applied
func (c *Config) Keymap() (*input.Keymap, error) {
	override, err := input.ParseBindings(c.Input.Keys)
	if err != nil {
		return nil, fmt.Errorf("input.keys: %w", err)
	}
	return input.MergeKeymap(input.DefaultKeymap(), override), nil
}

// AudioSettings returns the audio mix; environment variables override the file
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.Volumes {
		if st, err := audio.ParseSoundType(name); err == nil {
			ac.EffectVolumes[st] = v
		}
	}
	audio.ApplyEnv(ac)
	return ac
}
