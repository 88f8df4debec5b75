// Package venue resolves booth positions to map coordinates
// Hand-authored tables win; procedural layouts fill the gaps; anything else lands on the map centre
package venue

import (
	"github.com/lixenwraith/floorplan/vmath"
)

// Coordinate is a point in the venue map's pixel space
type Coordinate struct {
	X, Y float64
}

// Point converts to a vmath point
func (c Coordinate) Point() vmath.Point {
	return vmath.Point{X: c.X, Y: c.Y}
}

// Midpoint returns the arithmetic mean of a and b
func Midpoint(a, b Coordinate) Coordinate {
	return Coordinate(vmath.Midpoint(a.Point(), b.Point()))
}

// Rect is one hand-authored booth entry
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Table maps a single-space position ("A-01") to its authored rect
// Treated as immutable once registered
type Table map[string]Rect

// Lookup returns the rect origin for position
func (t Table) Lookup(position string) (Coordinate, bool) {
	r, ok := t[position]
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{X: r.X, Y: r.Y}, true
}
