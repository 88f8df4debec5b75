package venue

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/logging"
)

// venueLog is the sub-logger for the venue module, carrying module=venue
var venueLog zerolog.Logger = logging.Module("venue")
