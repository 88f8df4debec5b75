package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// RedrawInterval is how often the terminal viewer repaints
	RedrawInterval = 33 * time.Millisecond

	// EventChannelSize is the buffer between the tcell poller and the UI goroutine
	EventChannelSize = 100
)
