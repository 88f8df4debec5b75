package parameter

// Gesture classification and momentum tuning
// Velocities are in host pixels per millisecond
const (
	// MomentumStartSpeed is the release speed (either axis) above which coasting starts
	MomentumStartSpeed = 0.1

	// MomentumFriction is the per-frame velocity multiplier, must be in (0, 1)
	MomentumFriction = 0.95

	// MomentumThreshold stops coasting once both axes fall below it
	MomentumThreshold = 0.01

	// MomentumFrameMillis is the assumed frame duration used to turn velocity into a delta
	MomentumFrameMillis = 16.0
)

// Terminal mouse emulation
const (
	// CellWidthPixels approximates one terminal column in host pixels
	CellWidthPixels = 8.0

	// CellHeightPixels approximates one terminal row in host pixels
	CellHeightPixels = 16.0

	// WheelPinchSpread is the synthetic finger distance for wheel zoom, in host pixels
	WheelPinchSpread = 100.0

	// WheelPinchStep is the relative spread change per wheel notch
	WheelPinchStep = 0.1
)
