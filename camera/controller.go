package camera

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/engine"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/logging"
	"github.com/lixenwraith/floorplan/physics"
	"github.com/lixenwraith/floorplan/vmath"
)

var cameraLog zerolog.Logger = logging.Module("camera")

// Controller applies classifier output and momentum to a Camera
// Runs on the same goroutine as the classifier and the frame loop
type Controller struct {
	cam    *Camera
	frames engine.FrameRequester
	cfg    physics.Config

	base    Camera      // camera captured at gesture or pinch start
	anchor  vmath.Point // pinch midpoint at pinch start
	session string      // current gesture id, empty when idle

	momentum *physics.Momentum

	onCoast  func(velocity vmath.Point)
	onSettle func()
}

// NewController drives cam from gestures; coasting frames come from frames
func NewController(cam *Camera, frames engine.FrameRequester, cfg physics.Config) *Controller {
	return &Controller{
		cam:    cam,
		frames: frames,
		cfg:    cfg,
	}
}

// OnCoast registers a hook fired when a momentum session starts
func (c *Controller) OnCoast(fn func(velocity vmath.Point)) {
	c.onCoast = fn
}

// OnSettle registers a hook fired when a momentum session completes on its own
func (c *Controller) OnSettle(fn func()) {
	c.onSettle = fn
}

// Camera returns the controlled camera
func (c *Controller) Camera() *Camera {
	return c.cam
}

// Session returns the id of the gesture in progress, or empty
func (c *Controller) Session() string {
	return c.session
}

// Handlers returns classifier callbacks bound to c
func (c *Controller) Handlers() input.Handlers {
	return input.Handlers{
		OnPanStart:      c.panStart,
		OnPanMove:       c.panMove,
		OnPinchStart:    c.pinchStart,
		OnPinchMove:     c.pinchMove,
		OnMomentumStart: c.momentumStart,
		OnTouchEnd:      c.touchEnd,
	}
}

// Coasting reports whether a momentum session is running
func (c *Controller) Coasting() bool {
	return c.momentum != nil && c.momentum.Running()
}

// StopMomentum cancels coasting, if any
func (c *Controller) StopMomentum() {
	if c.momentum == nil {
		return
	}
	c.momentum.Stop()
	c.momentum = nil
}

func (c *Controller) beginGesture(kind string) {
	c.StopMomentum()
	c.session = uuid.NewString()
	c.base = *c.cam
	cameraLog.Debug().Str("session", c.session).Str("kind", kind).Msg("gesture started")
}

func (c *Controller) panStart(point vmath.Point) {
	c.beginGesture("pan")
}

func (c *Controller) panMove(dx, dy float64, _ vmath.Point) {
	c.cam.Pan(dx, dy)
}

func (c *Controller) pinchStart(_ float64, midpoint vmath.Point) {
	c.beginGesture("pinch")
	c.anchor = midpoint
}

// pinchMove applies scale against the camera captured at pinch start
// The midpoint shift is carried by center, so dx/dy are not applied separately
func (c *Controller) pinchMove(scale float64, center vmath.Point, _, _ float64) {
	c.cam.ZoomFrom(c.base, scale, c.anchor, center)
}

func (c *Controller) momentumStart(velocity vmath.Point) {
	c.StopMomentum()

	var m *physics.Momentum
	m = physics.NewMomentum(velocity, c.cfg, c.frames, physics.Callbacks{
		OnUpdate: func(dx, dy float64) {
			c.cam.Pan(dx, dy)
		},
		OnComplete: func() {
			if c.momentum == m {
				c.momentum = nil
			}
			if c.onSettle != nil {
				c.onSettle()
			}
		},
	})
	c.momentum = m

	cameraLog.Debug().
		Str("session", c.session).
		Str("momentum", m.ID()).
		Float64("vx", velocity.X).
		Float64("vy", velocity.Y).
		Msg("coasting")
	m.Start()

	if c.onCoast != nil {
		c.onCoast(velocity)
	}
}

func (c *Controller) touchEnd() {
	cameraLog.Debug().Str("session", c.session).Bool("coasting", c.Coasting()).Msg("gesture ended")
	c.session = ""
}
