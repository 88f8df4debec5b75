// Package audio plays short feedback cues through beep's speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/logging"
	"github.com/lixenwraith/floorplan/parameter"
)

var audioLog zerolog.Logger = logging.Module("audio")

// Player owns the speaker mixer
// Every method is safe before Initialize and after Cleanup, where it does nothing
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [cueCount]time.Time
	played      [cueCount]int
}

// NewPlayer creates a player, nil cfg uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	audioLog.Info().Int("rate", p.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup silences the mixer
// beep's speaker has no close, clearing the mixer leaves it idle
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) PlayPin()   { p.play(CuePin) }
func (p *Player) PlayCoast() { p.play(CueCoast) }
func (p *Player) PlayError() { p.play(CueError) }

// Played returns how many times c reached the mixer
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return p.played[c]
}

func (p *Player) play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	now := time.Now()
	if now.Sub(p.lastPlayed[c]) < parameter.MinCueGap {
		return
	}

	s := cueStreamer(c, p.cfg)
	if s == nil {
		return
	}
	p.lastPlayed[c] = now
	p.played[c]++

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
