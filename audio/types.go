package audio

import (
	"github.com/lixenwraith/floorplan/parameter"
)

// Cue identifies one feedback sound
type Cue int

const (
	CuePin   Cue = iota // Pin dropped on the map
	CueCoast            // View started coasting
	CueError            // Placement code rejected
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CuePin:
		return "pin"
	case CueCoast:
		return "coast"
	case CueError:
		return "error"
	default:
		return "unknown"
	}
}

// Config holds output rate and per-cue volumes
type Config struct {
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns full per-cue volume at the default master level
func DefaultConfig() *Config {
	cfg := &Config{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	cfg.CueVolumes[CueCoast] = 0.5
	return cfg
}

// volume returns the effective linear gain for c
func (cfg *Config) volume(c Cue) float64 {
	if c < 0 || c >= cueCount {
		return 0
	}
	return cfg.CueVolumes[c] * cfg.MasterVolume
}
