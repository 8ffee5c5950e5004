package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/reality-bender/constants"
	"github.com/lixenwraith/reality-bender/events"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// oscillator generates a fixed-frequency wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep glides exponentially from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a gliding oscillator, used for the gravity and time cues
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.from * math.Pow(s.to/s.from, progress)

		val := sample(s.wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func (cfg *AudioConfig) gain(st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateGravitySound glides down when gravity pulls down and up when it inverts
func CreateGravitySound(cfg *AudioConfig, direction int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	from, to := 220.0, 660.0
	if direction == constants.GravityDown {
		from, to = to, from
	}
	glide := NewSweep(from, to, constants.GravitySoundDuration, WaveSine, rate)
	shaped := NewEnvelope(glide, constants.GravitySoundDuration, constants.GravitySoundAttack, constants.GravitySoundRelease, rate)

	return newVolume(shaped, cfg.gain(SoundGravity))
}

// DimensionFrequency returns the chime root for a dimension, a major third apart
func DimensionFrequency(dimension int) float64 {
	return 440.0 * math.Pow(2, float64(dimension-1)*4/12)
}

// CreateDimensionSound generates a root plus fifth chime pitched by dimension
func CreateDimensionSound(cfg *AudioConfig, dimension int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	root := DimensionFrequency(dimension)

	fund := NewOscillator(root, constants.DimensionSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.DimensionSoundDuration, constants.DimensionSoundAttack, constants.DimensionSoundRelease, rate)

	fifth := NewOscillator(root*1.5, constants.DimensionSoundDuration, WaveSine, rate)
	fifthShaped := NewEnvelope(fifth, constants.DimensionSoundDuration, constants.DimensionSoundAttack, constants.DimensionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(fifthShaped, 0.3),
	)
	return newVolume(mixed, cfg.gain(SoundDimension))
}

// CreateTimeSound swells downward when time reverses and upward when it resumes
func CreateTimeSound(cfg *AudioConfig, reversed bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	from, to := 110.0, 880.0
	if reversed {
		from, to = to, from
	}
	glide := NewSweep(from, to, constants.TimeSoundDuration, WaveSaw, rate)
	air := NewOscillator(0, constants.TimeSoundDuration, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(glide, 0.4),
		newVolume(air, 0.1),
	)
	shaped := NewEnvelope(mixed, constants.TimeSoundDuration, constants.TimeSoundAttack, constants.TimeSoundRelease, rate)

	return newVolume(shaped, cfg.gain(SoundTime))
}

// CreateCollisionSound generates a harsh low buzz
func CreateCollisionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(100.0, constants.CollisionSoundDuration, WaveSaw, rate)
	sub := NewOscillator(50.0, constants.CollisionSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(
		newVolume(buzz, 0.6),
		newVolume(sub, 0.3),
	)
	shaped := NewEnvelope(mixed, constants.CollisionSoundDuration, constants.CollisionSoundAttack, constants.CollisionSoundRelease, rate)

	return newVolume(shaped, cfg.gain(SoundCollision))
}

// CreateVictorySound generates a two-note rising resolve
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6
	n1 := NewOscillator(1046.50, constants.VictorySoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.VictorySoundNote1Duration, constants.VictorySoundAttack, constants.VictorySoundNote1Release, rate)

	// G6
	n2 := NewOscillator(1567.98, constants.VictorySoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.VictorySoundNote2Duration, constants.VictorySoundAttack, constants.VictorySoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.gain(SoundVictory))
}

// CueFor builds the cue for a game event, ok is false for events without sound
func CueFor(ev events.GameEvent, cfg *AudioConfig) (SoundType, beep.Streamer, bool) {
	switch ev.Type {
	case events.EventGravityToggled:
		dir := constants.GravityUp
		if p, ok := ev.Payload.(*events.GravityPayload); ok {
			dir = p.Direction
		}
		return SoundGravity, CreateGravitySound(cfg, dir), true
	case events.EventDimensionShifted:
		dim := 1
		if p, ok := ev.Payload.(*events.DimensionPayload); ok {
			dim = p.Dimension
		}
		return SoundDimension, CreateDimensionSound(cfg, dim), true
	case events.EventTimeToggled:
		reversed := false
		if p, ok := ev.Payload.(*events.TimePayload); ok {
			reversed = p.Reversed
		}
		return SoundTime, CreateTimeSound(cfg, reversed), true
	case events.EventCollision:
		return SoundCollision, CreateCollisionSound(cfg), true
	case events.EventVictory:
		return SoundVictory, CreateVictorySound(cfg), true
	}
	return 0, nil, false
}
