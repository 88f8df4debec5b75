package vmath

import (
	"math"
)

// Point is a float64 2D sample in host pointer space
// Also used for velocities (px/ms) and map coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Div divides both components by d, returns zero vector for d == 0
func (p Point) Div(d float64) Point {
	if d == 0 {
		return Point{}
	}
	return Point{p.X / d, p.Y / d}
}

// Abs returns componentwise absolute value
func (p Point) Abs() Point {
	return Point{math.Abs(p.X), math.Abs(p.Y)}
}

// Len returns Euclidean length
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsZero reports whether both components are exactly zero
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the arithmetic mean of a and b
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// AnyAbove reports whether either component magnitude exceeds limit
func AnyAbove(p Point, limit float64) bool {
	return math.Abs(p.X) > limit || math.Abs(p.Y) > limit
}

// BothBelow reports whether both component magnitudes are under limit
func BothBelow(p Point, limit float64) bool {
	return math.Abs(p.X) < limit && math.Abs(p.Y) < limit
}

// Clamp restricts v to [lo, hi], NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
