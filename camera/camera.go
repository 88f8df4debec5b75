// Package camera maps venue map coordinates to host pixels and applies gesture output to the view
package camera

import (
	"math"

	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/vmath"
)

// Camera is a pan/zoom transform: screen = world*Scale + Offset
type Camera struct {
	OffsetX, OffsetY   float64
	Scale              float64
	MinScale, MaxScale float64
}

// New returns a camera at the origin with the given scale and default limits
func New(scale float64) Camera {
	c := Camera{
		MinScale: parameter.CameraMinScale,
		MaxScale: parameter.CameraMaxScale,
	}
	c.Scale = c.clamp(scale)
	return c
}

// clamp bounds s to the camera limits; NaN lands on MinScale
func (c Camera) clamp(s float64) float64 {
	lo, hi := c.MinScale, c.MaxScale
	if lo <= 0 {
		lo = parameter.CameraMinScale
	}
	if hi < lo {
		hi = lo
	}
	return vmath.Clamp(s, lo, hi)
}

// Offset returns the translation as a point
func (c Camera) Offset() vmath.Point {
	return vmath.Pt(c.OffsetX, c.OffsetY)
}

// Pan shifts the view by a screen-space delta
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomFrom sets c to base zoomed by factor
// The world point under anchor in base ends up under center in c
// factor is absolute against base, matching the pinch scale contract
func (c *Camera) ZoomFrom(base Camera, factor float64, anchor, center vmath.Point) {
	if math.IsNaN(factor) {
		factor = 1
	}
	if !(base.Scale > 0) {
		base.Scale = base.clamp(parameter.CameraDefaultScale)
	}

	world := base.ScreenToWorld(anchor)
	scale := base.clamp(base.Scale * factor)

	*c = base
	c.Scale = scale
	c.OffsetX = center.X - world.X*scale
	c.OffsetY = center.Y - world.Y*scale
}

// WorldToScreen maps a map coordinate to host pixels
func (c Camera) WorldToScreen(p vmath.Point) vmath.Point {
	return p.Scale(c.Scale).Add(c.Offset())
}

// ScreenToWorld maps host pixels back to the map
func (c Camera) ScreenToWorld(p vmath.Point) vmath.Point {
	if c.Scale == 0 {
		return vmath.Point{}
	}
	return p.Sub(c.Offset()).Div(c.Scale)
}

// Fit scales and centres a world rect of w by h inside a view of viewW by viewH
func (c *Camera) Fit(w, h, viewW, viewH float64) {
	if w <= 0 || h <= 0 || viewW <= 0 || viewH <= 0 {
		c.Scale = c.clamp(parameter.CameraDefaultScale)
		c.OffsetX, c.OffsetY = 0, 0
		return
	}
	c.Scale = c.clamp(math.Min(viewW/w, viewH/h))
	c.OffsetX = (viewW - w*c.Scale) / 2
	c.OffsetY = (viewH - h*c.Scale) / 2
}
