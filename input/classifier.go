package input

import (
	"time"

	"github.com/lixenwraith/floorplan/engine"
	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/vmath"
)

// Classifier is the gesture state machine
// Turns contact start/move/end events into pan and pinch deltas plus a release velocity
type Classifier struct {
	state        gestureState
	handlers     Handlers
	timeProvider engine.TimeProvider

	// momentumSpeed is the release speed above which OnMomentumStart fires
	momentumSpeed float64
}

// NewClassifier creates a classifier emitting to h, nil tp uses the monotonic clock
func NewClassifier(h Handlers, tp engine.TimeProvider) *Classifier {
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	return &Classifier{
		handlers:      h,
		timeProvider:  tp,
		momentumSpeed: parameter.MomentumStartSpeed,
	}
}

// SetHandlers replaces the output callbacks
func (c *Classifier) SetHandlers(h Handlers) {
	c.handlers = h
}

// Snapshot returns a copy of the current gesture state
func (c *Classifier) Snapshot() Snapshot {
	return c.state.snapshot()
}

// Phase returns the current classification
func (c *Classifier) Phase() Phase {
	return c.state.phase
}

// Reset drops any in-progress gesture without emitting callbacks
func (c *Classifier) Reset() {
	c.state = gestureState{}
}

// Start, Move and End are shorthands for Handle with the matching kind, stamped now
func (c *Classifier) Start(touches ...vmath.Point) {
	c.Handle(TouchEvent{Kind: ContactStart, Touches: touches})
}

func (c *Classifier) Move(touches ...vmath.Point) {
	c.Handle(TouchEvent{Kind: ContactMove, Touches: touches})
}

func (c *Classifier) End(remaining ...vmath.Point) {
	c.Handle(TouchEvent{Kind: ContactEnd, Touches: remaining})
}

// Handle advances the state machine by one host event
// Malformed or unexpected input is a silent no-op
func (c *Classifier) Handle(ev TouchEvent) {
	now := ev.Time
	if now.IsZero() {
		now = c.timeProvider.Now()
	}

	switch ev.Kind {
	case ContactStart:
		c.processStart(ev.Touches, now)
	case ContactMove:
		c.processMove(ev.Touches, now)
	case ContactEnd:
		c.processEnd(ev.Touches, now)
	}
}

// === Start ===

func (c *Classifier) processStart(touches []vmath.Point, now time.Time) {
	// A second finger landing mid-pan never upgrades to a pinch
	if c.state.active {
		return
	}

	switch len(touches) {
	case 1:
		p := touches[0]
		c.state = gestureState{
			active:          true,
			phase:           PhasePanning,
			initialMidpoint: p,
			lastMidpoint:    p,
			lastTime:        now,
		}
		if c.handlers.OnPanStart != nil {
			c.handlers.OnPanStart(p)
		}

	case 2:
		dist := vmath.Distance(touches[0], touches[1])
		mid := vmath.Midpoint(touches[0], touches[1])
		c.state = gestureState{
			active:          true,
			phase:           PhasePinching,
			initialDistance: dist,
			initialMidpoint: mid,
			lastMidpoint:    mid,
			lastTime:        now,
		}
		if c.handlers.OnPinchStart != nil {
			c.handlers.OnPinchStart(dist, mid)
		}
	}
}

// === Move ===

func (c *Classifier) processMove(touches []vmath.Point, now time.Time) {
	if !c.state.active {
		return
	}

	switch c.state.phase {
	case PhasePanning:
		if len(touches) != 1 {
			return
		}
		delta := c.track(touches[0], now)
		if c.handlers.OnPanMove != nil {
			c.handlers.OnPanMove(delta.X, delta.Y, c.state.velocity)
		}

	case PhasePinching:
		switch len(touches) {
		case 1:
			c.demoteToPan(touches[0], now)
		case 2:
			dist := vmath.Distance(touches[0], touches[1])
			mid := vmath.Midpoint(touches[0], touches[1])
			// Relative to gesture start, not the previous frame
			scale := dist / c.state.initialDistance
			delta := c.track(mid, now)
			if c.handlers.OnPinchMove != nil {
				c.handlers.OnPinchMove(scale, mid, delta.X, delta.Y)
			}
		}
	}
}

// track moves lastMidpoint to p and refreshes velocity, returning the delta
// A non-positive time step keeps the previous velocity sample
func (c *Classifier) track(p vmath.Point, now time.Time) vmath.Point {
	delta := p.Sub(c.state.lastMidpoint)
	dtMillis := float64(now.Sub(c.state.lastTime)) / float64(time.Millisecond)
	if dtMillis > 0 {
		c.state.velocity = delta.Div(dtMillis)
	}
	c.state.lastMidpoint = p
	c.state.lastTime = now
	return delta
}

// demoteToPan continues a pinch as a pan from the remaining contact without a jump
func (c *Classifier) demoteToPan(p vmath.Point, now time.Time) {
	c.state.phase = PhasePanning
	c.state.initialDistance = 0
	c.state.lastMidpoint = p
	c.state.velocity = vmath.Point{}
	c.state.lastTime = now
}

// === End ===

func (c *Classifier) processEnd(remaining []vmath.Point, now time.Time) {
	if !c.state.active {
		return
	}

	switch len(remaining) {
	case 0:
		velocity := c.state.velocity
		c.state = gestureState{lastTime: now}

		if vmath.AnyAbove(velocity, c.momentumSpeed) && c.handlers.OnMomentumStart != nil {
			c.handlers.OnMomentumStart(velocity)
		}
		if c.handlers.OnTouchEnd != nil {
			c.handlers.OnTouchEnd()
		}

	case 1:
		if c.state.phase == PhasePinching {
			c.demoteToPan(remaining[0], now)
			return
		}
		// The panning finger may have lifted while an ignored one stays down
		c.state.lastMidpoint = remaining[0]
		c.state.lastTime = now
		c.state.velocity = vmath.Point{}
	}
}
