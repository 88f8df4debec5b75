package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume scales every cue, 0..1
	AudioMasterVolume = 0.6

	// MinCueGap drops repeats of the same cue closer than this
	MinCueGap = 60 * time.Millisecond
)

// Pin drop: two-note rising chime
const (
	PinCueNote1Duration = 70 * time.Millisecond
	PinCueNote2Duration = 180 * time.Millisecond
	PinCueAttack        = 5 * time.Millisecond
	PinCueRelease       = 120 * time.Millisecond
	PinCueNote1Freq     = 987.77
	PinCueNote2Freq     = 1318.51
)

// Coast: soft noise swell
const (
	CoastCueDuration = 220 * time.Millisecond
	CoastCueAttack   = 90 * time.Millisecond
	CoastCueRelease  = 120 * time.Millisecond
)

// Rejected code: short saw buzz
const (
	ErrorCueDuration = 80 * time.Millisecond
	ErrorCueAttack   = 5 * time.Millisecond
	ErrorCueRelease  = 20 * time.Millisecond
	ErrorCueFreq     = 100.0
)
