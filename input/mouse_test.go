package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/vmath"
)

func TestMouseAdapter_DragLifecycle(t *testing.T) {
	a := NewMouseAdapter()

	evs := a.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if len(evs) != 1 || evs[0].Kind != ContactStart || len(evs[0].Touches) != 1 {
		t.Fatalf("press = %+v, want one single-contact start", evs)
	}
	if want := a.ToHost(10, 5); evs[0].Touches[0] != want {
		t.Errorf("start point = %v, want %v", evs[0].Touches[0], want)
	}
	if !a.Pressed() {
		t.Error("Pressed() = false after press")
	}

	// Same cell again produces nothing
	if evs := a.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone)); len(evs) != 0 {
		t.Errorf("repeat cell = %+v, want none", evs)
	}

	evs = a.Translate(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	if len(evs) != 1 || evs[0].Kind != ContactMove {
		t.Fatalf("drag = %+v, want one move", evs)
	}

	evs = a.Translate(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 || evs[0].Kind != ContactEnd || len(evs[0].Touches) != 0 {
		t.Fatalf("release = %+v, want end with no remaining contacts", evs)
	}
	if a.Pressed() {
		t.Error("Pressed() = true after release")
	}
}

func TestMouseAdapter_CellScaling(t *testing.T) {
	a := &MouseAdapter{CellWidth: 10, CellHeight: 20}
	if got := a.ToHost(2, 3); got != vmath.Pt(25, 70) {
		t.Errorf("ToHost(2,3) = %v, want (25,70)", got)
	}
}

func TestMouseAdapter_WheelDrivesPinch(t *testing.T) {
	a := NewMouseAdapter()

	var scales []float64
	c := NewClassifier(Handlers{
		OnPinchMove: func(scale float64, _ vmath.Point, _, _ float64) { scales = append(scales, scale) },
	}, nil)

	for _, ev := range a.Translate(tcell.NewEventMouse(40, 10, tcell.WheelUp, tcell.ModNone)) {
		c.Handle(ev)
	}
	for _, ev := range a.Translate(tcell.NewEventMouse(40, 10, tcell.WheelDown, tcell.ModNone)) {
		c.Handle(ev)
	}

	if len(scales) != 2 {
		t.Fatalf("pinch moves = %d, want 2", len(scales))
	}
	if !approx(scales[0], 1.1) || !approx(scales[1], 0.9) {
		t.Errorf("scales = %v, want [1.1 0.9]", scales)
	}
	if c.Snapshot().Active {
		t.Error("synthetic pinch left the classifier active")
	}
}

func TestMouseAdapter_WheelIgnoredWhileDragging(t *testing.T) {
	a := NewMouseAdapter()
	a.Translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))

	evs := a.Translate(tcell.NewEventMouse(1, 1, tcell.Button1|tcell.WheelUp, tcell.ModNone))
	for _, ev := range evs {
		if len(ev.Touches) == 2 {
			t.Errorf("wheel during drag produced a pinch: %+v", evs)
		}
	}
}
