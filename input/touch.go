package input

import (
	"time"

	"github.com/lixenwraith/floorplan/vmath"
)

// EventKind discriminates the three host contact callbacks
type EventKind uint8

const (
	ContactStart EventKind = iota // A contact went down; Touches lists all active contacts
	ContactMove                   // Active contacts moved
	ContactEnd                    // A contact lifted; Touches lists the remaining contacts
)

func (k EventKind) String() string {
	switch k {
	case ContactStart:
		return "ContactStart"
	case ContactMove:
		return "ContactMove"
	case ContactEnd:
		return "ContactEnd"
	default:
		return "Unknown"
	}
}

// TouchEvent is one host pointer event
// Time may be zero, in which case the classifier stamps it from its TimeProvider
type TouchEvent struct {
	Kind    EventKind
	Touches []vmath.Point
	Time    time.Time
}

// Handlers are the classifier outputs, nil fields are skipped
// Callbacks run synchronously inside Handle after the state has been updated
type Handlers struct {
	OnPanStart      func(point vmath.Point)
	OnPanMove       func(deltaX, deltaY float64, velocity vmath.Point)
	OnPinchStart    func(distance float64, midpoint vmath.Point)
	OnPinchMove     func(scale float64, center vmath.Point, deltaX, deltaY float64)
	OnMomentumStart func(velocity vmath.Point)
	OnTouchEnd      func()
}
