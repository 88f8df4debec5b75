package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/vmath"
)

// MouseAdapter turns terminal mouse reports into touch events
// Left-button drag is a one-contact pan; a wheel notch is a synthetic two-contact pinch
// around the pointer. Cell coordinates are scaled to host pixels so velocity thresholds
// keep their meaning
type MouseAdapter struct {
	CellWidth  float64
	CellHeight float64

	pressed bool
	last    vmath.Point
}

// NewMouseAdapter creates an adapter with the default cell size
func NewMouseAdapter() *MouseAdapter {
	return &MouseAdapter{
		CellWidth:  parameter.CellWidthPixels,
		CellHeight: parameter.CellHeightPixels,
	}
}

// Pressed reports whether a drag is in progress
func (a *MouseAdapter) Pressed() bool {
	return a.pressed
}

// ToHost converts a cell position to host pixels (cell centre)
func (a *MouseAdapter) ToHost(x, y int) vmath.Point {
	return vmath.Point{
		X: (float64(x) + 0.5) * a.CellWidth,
		Y: (float64(y) + 0.5) * a.CellHeight,
	}
}

// Translate returns the touch events for one mouse report, possibly none
func (a *MouseAdapter) Translate(ev *tcell.EventMouse) []TouchEvent {
	x, y := ev.Position()
	p := a.ToHost(x, y)
	when := ev.When()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button1 != 0:
		if !a.pressed {
			a.pressed = true
			a.last = p
			return []TouchEvent{{Kind: ContactStart, Touches: []vmath.Point{p}, Time: when}}
		}
		if p == a.last {
			return nil
		}
		a.last = p
		return []TouchEvent{{Kind: ContactMove, Touches: []vmath.Point{p}, Time: when}}

	case a.pressed:
		// Any report without Button1 while dragging is the release
		a.pressed = false
		return []TouchEvent{{Kind: ContactEnd, Time: when}}

	case buttons&tcell.WheelUp != 0:
		return a.Pinch(p, 1+parameter.WheelPinchStep, when)

	case buttons&tcell.WheelDown != 0:
		return a.Pinch(p, 1-parameter.WheelPinchStep, when)
	}
	return nil
}

// Pinch synthesizes a complete two-finger gesture centred on p scaling by factor
// Also used for keyboard zoom
func (a *MouseAdapter) Pinch(p vmath.Point, factor float64, when time.Time) []TouchEvent {
	half := parameter.WheelPinchSpread / 2
	spread := half * factor
	return []TouchEvent{
		{Kind: ContactStart, Touches: []vmath.Point{{X: p.X - half, Y: p.Y}, {X: p.X + half, Y: p.Y}}, Time: when},
		{Kind: ContactMove, Touches: []vmath.Point{{X: p.X - spread, Y: p.Y}, {X: p.X + spread, Y: p.Y}}, Time: when},
		{Kind: ContactEnd, Time: when},
	}
}
