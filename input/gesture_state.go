package input

import (
	"time"

	"github.com/lixenwraith/floorplan/vmath"
)

// Phase is the classifier state derived from the active contact count
type Phase uint8

const (
	PhaseIdle     Phase = iota // No contacts, awaiting contact-start
	PhasePanning               // One contact, or a pinch that lost a finger
	PhasePinching              // Two contacts since gesture start
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePanning:
		return "Panning"
	case PhasePinching:
		return "Pinching"
	default:
		return "Unknown"
	}
}

// gestureState is owned by a single Classifier and never shared
type gestureState struct {
	active          bool
	phase           Phase
	initialDistance float64 // 0 unless the gesture began as a pinch and still is one
	initialMidpoint vmath.Point
	lastMidpoint    vmath.Point
	velocity        vmath.Point // px/ms
	lastTime        time.Time
}

// Snapshot is an immutable copy of the gesture state handed to callers
type Snapshot struct {
	Active          bool
	Phase           Phase
	InitialDistance float64
	InitialMidpoint vmath.Point
	LastMidpoint    vmath.Point
	Velocity        vmath.Point
	LastTime        time.Time
}

func (s *gestureState) snapshot() Snapshot {
	return Snapshot{
		Active:          s.active,
		Phase:           s.phase,
		InitialDistance: s.initialDistance,
		InitialMidpoint: s.initialMidpoint,
		LastMidpoint:    s.lastMidpoint,
		Velocity:        s.velocity,
		LastTime:        s.lastTime,
	}
}
