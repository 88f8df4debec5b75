package parameter

// Camera zoom limits and defaults
const (
	// CameraMinScale is the smallest allowed zoom (screen units per map pixel)
	CameraMinScale = 0.01

	// CameraMaxScale is the largest allowed zoom
	CameraMaxScale = 4.0

	// CameraDefaultScale is used when the viewer cannot fit the map
	CameraDefaultScale = 0.1

	// CameraKeyPanPixels is the arrow-key pan step in host pixels
	CameraKeyPanPixels = 40.0
)
