package parameter

// Venue layout defaults
const (
	// DefaultBoothsPerGroup is the column group size of the grid layout
	// Measured on the east hall plan; confirm per venue before reuse
	DefaultBoothsPerGroup = 24

	// DefaultMapWidth and DefaultMapHeight size the fallback map for unknown venues
	DefaultMapWidth  = 1000.0
	DefaultMapHeight = 1000.0
)
