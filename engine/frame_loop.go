package engine

import (
	"time"
)

// Handle identifies a pending frame request, zero is never issued
type Handle uint64

// FrameCallback runs once on the frame after it was requested
type FrameCallback func(now time.Time)

// FrameRequester is the animation-frame facility momentum depends on
// Request schedules fn for the next frame, Cancel drops it if not yet run
type FrameRequester interface {
	Request(fn FrameCallback) Handle
	Cancel(h Handle)
}

// Loop is a host-agnostic animation-frame queue
// Not safe for concurrent use: drive it from one goroutine or through Clock.RunSafe
type Loop struct {
	timeProvider TimeProvider

	nextHandle Handle
	pending    map[Handle]FrameCallback
	order      []Handle

	frameCount uint64
}

var _ FrameRequester = (*Loop)(nil)

// NewLoop creates a frame loop, nil tp uses the monotonic clock
func NewLoop(tp TimeProvider) *Loop {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &Loop{
		timeProvider: tp,
		pending:      make(map[Handle]FrameCallback),
		order:        make([]Handle, 0, 8),
	}
}

// Request schedules fn for the next Tick
func (l *Loop) Request(fn FrameCallback) Handle {
	l.nextHandle++
	h := l.nextHandle
	l.pending[h] = fn
	l.order = append(l.order, h)
	return h
}

// Cancel drops a pending request, unknown or already-run handles are ignored
func (l *Loop) Cancel(h Handle) {
	delete(l.pending, h)
}

// Pending returns the number of requests waiting for the next Tick
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns the number of ticks executed
func (l *Loop) Frames() uint64 {
	return l.frameCount
}

// Tick runs every callback requested before this call, in request order
// Callbacks requested during the tick wait for the next one; cancellations during the tick are honored
// Returns the number of callbacks run
func (l *Loop) Tick() int {
	l.frameCount++
	if len(l.order) == 0 {
		return 0
	}

	batch := l.order
	l.order = make([]Handle, 0, len(batch))
	now := l.timeProvider.Now()

	ran := 0
	for _, h := range batch {
		fn, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		fn(now)
		ran++
	}
	return ran
}
