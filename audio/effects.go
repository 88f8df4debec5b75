package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/floorplan/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given length
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
			if i == 0 {
				return 0, false
			}
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; s is cut at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if left := e.totalSamples - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.attackSamples + e.sustainSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; log2(0) is -Inf so zero becomes Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a pure sine from beep's generators, falling back to the local oscillator
// for frequencies the generator rejects
func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), s)
}

// CreatePinCue generates a rising two-note chime for a dropped pin
func CreatePinCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(tone(parameter.PinCueNote1Freq, parameter.PinCueNote1Duration, rate),
		parameter.PinCueNote1Duration, parameter.PinCueAttack, parameter.PinCueNote1Duration/2, rate)
	n2 := NewEnvelope(tone(parameter.PinCueNote2Freq, parameter.PinCueNote2Duration, rate),
		parameter.PinCueNote2Duration, parameter.PinCueAttack, parameter.PinCueRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(CuePin))
}

// CreateCoastCue generates a soft noise swell when the view starts coasting
func CreateCoastCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.CoastCueDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.CoastCueDuration, parameter.CoastCueAttack, parameter.CoastCueRelease, rate)
	return newVolume(shaped, cfg.volume(CueCoast))
}

// CreateErrorCue generates a short harsh buzz for a rejected placement code
func CreateErrorCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.ErrorCueFreq, parameter.ErrorCueDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.ErrorCueDuration, parameter.ErrorCueAttack, parameter.ErrorCueRelease, rate)
	return newVolume(shaped, cfg.volume(CueError))
}

// cueStreamer returns the streamer for c, nil for unknown cues
func cueStreamer(c Cue, cfg *Config) beep.Streamer {
	switch c {
	case CuePin:
		return CreatePinCue(cfg)
	case CueCoast:
		return CreateCoastCue(cfg)
	case CueError:
		return CreateErrorCue(cfg)
	default:
		return nil
	}
}
