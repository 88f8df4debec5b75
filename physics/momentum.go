package physics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/engine"
	"github.com/lixenwraith/floorplan/logging"
	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/vmath"
)

var physicsLog zerolog.Logger = logging.Module("physics")

// Config tunes the exponential decay of a momentum session
type Config struct {
	Friction    float64 // Per-frame velocity multiplier in (0, 1)
	Threshold   float64 // Session ends once both axes fall below this, px/ms
	FrameMillis float64 // Assumed frame duration used to turn velocity into a delta
}

// DefaultConfig returns the tuned defaults (0.95 friction, 0.01 threshold, 16ms frames)
func DefaultConfig() Config {
	return Config{
		Friction:    parameter.MomentumFriction,
		Threshold:   parameter.MomentumThreshold,
		FrameMillis: parameter.MomentumFrameMillis,
	}
}

// withDefaults replaces zero or invalid fields with DefaultConfig values
// so every session terminates
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !(c.Friction > 0 && c.Friction < 1) {
		if c.Friction != 0 {
			physicsLog.Warn().Float64("friction", c.Friction).Msg("invalid momentum friction, using default")
		}
		c.Friction = d.Friction
	}
	if !(c.Threshold > 0) {
		if c.Threshold != 0 {
			physicsLog.Warn().Float64("threshold", c.Threshold).Msg("invalid momentum threshold, using default")
		}
		c.Threshold = d.Threshold
	}
	if !(c.FrameMillis > 0) {
		c.FrameMillis = d.FrameMillis
	}
	return c
}

// Validate rejects configurations that would never terminate or never move
func (c Config) Validate() error {
	if !(c.Friction > 0 && c.Friction < 1) {
		return fmt.Errorf("momentum friction %v outside (0, 1)", c.Friction)
	}
	if !(c.Threshold > 0) {
		return fmt.Errorf("momentum threshold %v must be positive", c.Threshold)
	}
	if !(c.FrameMillis > 0) {
		return fmt.Errorf("momentum frame duration %v must be positive", c.FrameMillis)
	}
	return nil
}

// Callbacks receive momentum output, nil fields are skipped
type Callbacks struct {
	OnUpdate   func(deltaX, deltaY float64)
	OnComplete func()
}

// momentumState tracks the session lifecycle
type momentumState uint8

const (
	momentumIdle    momentumState = iota // Constructed, Start not yet called
	momentumRunning                      // A frame is requested
	momentumStopped                      // Completed or cancelled, terminal
)

// Momentum is one inertial coasting session
// Each frame emits velocity*FrameMillis then decays velocity by Friction
// Not safe for concurrent use; frames and Stop must come from the same goroutine
// (engine.Loop / engine.Clock.RunSafe guarantee this)
type Momentum struct {
	id       string
	velocity vmath.Point
	cfg      Config
	frames   engine.FrameRequester
	cb       Callbacks

	state      momentumState
	handle     engine.Handle
	frameCount int
}

// NewMomentum creates a session, zero or invalid config fields take defaults
func NewMomentum(velocity vmath.Point, cfg Config, frames engine.FrameRequester, cb Callbacks) *Momentum {
	return &Momentum{
		id:       uuid.NewString(),
		velocity: velocity,
		cfg:      cfg.withDefaults(),
		frames:   frames,
		cb:       cb,
	}
}

// ID identifies the session in logs
func (m *Momentum) ID() string {
	return m.id
}

// Velocity returns the current (decayed) velocity
func (m *Momentum) Velocity() vmath.Point {
	return m.velocity
}

// Running reports whether a frame is pending
func (m *Momentum) Running() bool {
	return m.state == momentumRunning
}

// Frames returns the number of frames that emitted an update
func (m *Momentum) Frames() int {
	return m.frameCount
}

// Start requests the first frame; a stopped or running session ignores it
func (m *Momentum) Start() {
	if m.state != momentumIdle {
		return
	}
	m.state = momentumRunning
	physicsLog.Debug().
		Str("session", m.id).
		Float64("vx", m.velocity.X).
		Float64("vy", m.velocity.Y).
		Msg("momentum started")
	m.handle = m.frames.Request(m.step)
}

// Stop cancels the pending frame and suppresses all further callbacks
// Idempotent and safe to call from inside OnUpdate/OnComplete
func (m *Momentum) Stop() {
	if m.state == momentumStopped {
		return
	}
	m.state = momentumStopped
	if m.handle != 0 {
		m.frames.Cancel(m.handle)
		m.handle = 0
	}
	physicsLog.Debug().Str("session", m.id).Int("frames", m.frameCount).Msg("momentum stopped")
}

// step runs one frame
func (m *Momentum) step(_ time.Time) {
	if m.state != momentumRunning {
		return
	}
	m.handle = 0

	if vmath.BothBelow(m.velocity, m.cfg.Threshold) {
		// Stopped before the callback so OnComplete may start a new session or call Stop
		m.state = momentumStopped
		physicsLog.Debug().Str("session", m.id).Int("frames", m.frameCount).Msg("momentum complete")
		if m.cb.OnComplete != nil {
			m.cb.OnComplete()
		}
		return
	}

	delta := m.velocity.Scale(m.cfg.FrameMillis)
	m.velocity = m.velocity.Scale(m.cfg.Friction)
	m.frameCount++

	if m.cb.OnUpdate != nil {
		m.cb.OnUpdate(delta.X, delta.Y)
	}

	if m.state == momentumRunning {
		m.handle = m.frames.Request(m.step)
	}
}
