package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/reality-bender/events"
)

// SoundManager plays game cues through the speaker mixer
// Every method is a no-op until Initialize succeeds, so the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	initErr     error
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Config returns the active audio configuration
func (sm *SoundManager) Config() *AudioConfig { return sm.cfg }

// Initialize opens the speaker; disabled audio initializes nothing and reports no error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Name implements service.Service
func (sm *SoundManager) Name() string { return "audio" }

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string { return nil }

// Start opens the speaker; a missing device leaves the game silent and is kept for InitErr
func (sm *SoundManager) Start() error {
	err := sm.Initialize()
	sm.mu.Lock()
	sm.initErr = err
	sm.mu.Unlock()
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

// InitErr returns the speaker error from the last Start, nil if audio is running or disabled
func (sm *SoundManager) InitErr() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initErr
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer = &beep.Mixer{}
	sm.initialized = false
}

// Play queues a streamer on the mixer
func (sm *SoundManager) Play(st SoundType, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	if st >= 0 && st < soundTypeCount {
		sm.played[st]++
	}
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// HandleEvent plays the cue for a mode toggle or terminal outcome
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if !sm.Initialized() {
		return
	}
	if st, s, ok := CueFor(ev, sm.cfg); ok {
		sm.Play(st, s)
	}
}

// EventTypes returns the events that have a cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGravityToggled,
		events.EventDimensionShifted,
		events.EventTimeToggled,
		events.EventCollision,
		events.EventVictory,
	}
}
