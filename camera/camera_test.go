package camera

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/floorplan/engine"
	"github.com/lixenwraith/floorplan/input"
	"github.com/lixenwraith/floorplan/physics"
	"github.com/lixenwraith/floorplan/vmath"
)

func near(a, b vmath.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCamera_TransformRoundTrip(t *testing.T) {
	c := New(0.5)
	c.Pan(30, -10)

	w := vmath.Pt(200, 100)
	s := c.WorldToScreen(w)
	if !near(s, vmath.Pt(130, 40)) {
		t.Errorf("WorldToScreen = %v, want (130, 40)", s)
	}
	if back := c.ScreenToWorld(s); !near(back, w) {
		t.Errorf("ScreenToWorld(WorldToScreen(w)) = %v, want %v", back, w)
	}
}

func TestCamera_ZoomFromKeepsAnchor(t *testing.T) {
	base := New(1)
	base.Pan(15, 25)

	tests := []struct {
		name   string
		factor float64
		anchor vmath.Point
		center vmath.Point
	}{
		{"ZoomIn", 2, vmath.Pt(50, 50), vmath.Pt(50, 50)},
		{"ZoomOut", 0.5, vmath.Pt(10, 90), vmath.Pt(10, 90)},
		{"ZoomAndDrift", 1.5, vmath.Pt(40, 40), vmath.Pt(70, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.ZoomFrom(base, tt.factor, tt.anchor, tt.center)

			world := base.ScreenToWorld(tt.anchor)
			if got := c.WorldToScreen(world); !near(got, tt.center) {
				t.Errorf("anchor world point lands at %v, want %v", got, tt.center)
			}
			if !(math.Abs(c.Scale-base.Scale*tt.factor) < 1e-9) {
				t.Errorf("scale = %v, want %v", c.Scale, base.Scale*tt.factor)
			}
		})
	}
}

func TestCamera_ZoomIsAbsoluteAgainstBase(t *testing.T) {
	base := New(1)
	var c Camera
	anchor := vmath.Pt(0, 0)

	// Repeating the same factor does not compound
	c.ZoomFrom(base, 2, anchor, anchor)
	c.ZoomFrom(base, 2, anchor, anchor)
	if c.Scale != 2 {
		t.Errorf("scale after repeated factor 2 = %v, want 2", c.Scale)
	}
}

func TestCamera_ZoomClamps(t *testing.T) {
	base := New(1)
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"NaN", math.NaN(), 1},
		{"PosInf", math.Inf(1), base.MaxScale},
		{"Zero", 0, base.MinScale},
		{"Huge", 1e9, base.MaxScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.ZoomFrom(base, tt.factor, vmath.Pt(10, 10), vmath.Pt(10, 10))
			if c.Scale != tt.want {
				t.Errorf("scale = %v, want %v", c.Scale, tt.want)
			}
			if math.IsNaN(c.OffsetX) || math.IsInf(c.OffsetX, 0) {
				t.Errorf("offset = (%v, %v), want finite", c.OffsetX, c.OffsetY)
			}
		})
	}
}

func TestCamera_Fit(t *testing.T) {
	c := New(1)
	c.Fit(1000, 500, 200, 200)
	if c.Scale != 0.2 {
		t.Errorf("scale = %v, want 0.2", c.Scale)
	}
	if c.OffsetX != 0 || c.OffsetY != 50 {
		t.Errorf("offset = (%v, %v), want (0, 50)", c.OffsetX, c.OffsetY)
	}
}

// rig wires classifier -> controller -> camera with manual time and frames
type rig struct {
	tp   *engine.MockTimeProvider
	loop *engine.Loop
	cam  *Camera
	ctl  *Controller
	cls  *input.Classifier
}

func newRig() *rig {
	tp := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	loop := engine.NewLoop(tp)
	cam := New(1)
	ctl := NewController(&cam, loop, physics.DefaultConfig())
	return &rig{
		tp:   tp,
		loop: loop,
		cam:  &cam,
		ctl:  ctl,
		cls:  input.NewClassifier(ctl.Handlers(), tp),
	}
}

// flick drags one contact by (dx, 0) over 10ms and lifts it
func (r *rig) flick(dx float64) {
	r.cls.Start(vmath.Pt(0, 0))
	r.tp.AdvanceMillis(10)
	r.cls.Move(vmath.Pt(dx, 0))
	r.cls.End()
}

func TestController_PanAndCoast(t *testing.T) {
	r := newRig()
	coasts, settles := 0, 0
	r.ctl.OnCoast(func(vmath.Point) { coasts++ })
	r.ctl.OnSettle(func() { settles++ })

	r.flick(10)
	if r.cam.OffsetX != 10 {
		t.Fatalf("offset after drag = %v, want 10", r.cam.OffsetX)
	}
	if !r.ctl.Coasting() || coasts != 1 {
		t.Fatalf("coasting=%v coasts=%d after fast release", r.ctl.Coasting(), coasts)
	}
	if r.ctl.Session() != "" {
		t.Error("session id kept after touch end")
	}

	// velocity 1 px/ms over a 16ms frame
	r.loop.Tick()
	if math.Abs(r.cam.OffsetX-26) > 1e-9 {
		t.Errorf("offset after one frame = %v, want 26", r.cam.OffsetX)
	}

	for i := 0; i < 1000 && r.ctl.Coasting(); i++ {
		r.loop.Tick()
	}
	if r.ctl.Coasting() || settles != 1 {
		t.Errorf("coasting=%v settles=%d after decay", r.ctl.Coasting(), settles)
	}
}

func TestController_SlowReleaseDoesNotCoast(t *testing.T) {
	r := newRig()
	r.cls.Start(vmath.Pt(0, 0))
	r.tp.AdvanceMillis(100)
	r.cls.Move(vmath.Pt(5, 0)) // 0.05 px/ms
	r.cls.End()

	if r.ctl.Coasting() || r.loop.Pending() != 0 {
		t.Error("slow release started momentum")
	}
}

func TestController_NewGestureCancelsMomentum(t *testing.T) {
	r := newRig()
	settles := 0
	r.ctl.OnSettle(func() { settles++ })

	r.flick(20)
	r.loop.Tick()
	offset := r.cam.OffsetX

	r.cls.Start(vmath.Pt(5, 5))
	if r.ctl.Coasting() {
		t.Fatal("momentum still running after a new touch")
	}
	if r.ctl.Session() == "" {
		t.Error("no session id for the new gesture")
	}
	for i := 0; i < 5; i++ {
		r.loop.Tick()
	}
	if r.cam.OffsetX != offset {
		t.Errorf("camera moved after cancellation: %v -> %v", offset, r.cam.OffsetX)
	}
	if settles != 0 {
		t.Errorf("settles = %d, want 0 for a cancelled session", settles)
	}
}

func TestController_RepeatedFlicksKeepOneSession(t *testing.T) {
	r := newRig()
	r.flick(20)
	r.flick(20)
	if r.loop.Pending() != 1 {
		t.Errorf("pending frames = %d, want exactly one momentum session", r.loop.Pending())
	}
}

func TestController_Pinch(t *testing.T) {
	r := newRig()

	r.cls.Start(vmath.Pt(0, 0), vmath.Pt(100, 0))
	r.tp.AdvanceMillis(16)
	r.cls.Move(vmath.Pt(-50, 0), vmath.Pt(150, 0))

	if r.cam.Scale != 2 {
		t.Errorf("scale = %v, want 2", r.cam.Scale)
	}
	// world point under the pinch midpoint stays put
	if got := r.cam.WorldToScreen(vmath.Pt(50, 0)); !near(got, vmath.Pt(50, 0)) {
		t.Errorf("midpoint drifted to %v", got)
	}

	// spreading further is still relative to the pinch start
	r.tp.AdvanceMillis(16)
	r.cls.Move(vmath.Pt(-100, 0), vmath.Pt(200, 0))
	if r.cam.Scale != 3 {
		t.Errorf("scale = %v, want 3", r.cam.Scale)
	}
}
