package venue

import (
	"strings"

	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/placement"
)

// Resolver maps placement positions to map coordinates
// Holds no per-call state; results depend only on the registry contents
type Resolver struct {
	registry *Registry
	fallback Coordinate
}

// NewResolver builds a resolver over reg; nil reg resolves everything to the default centre
func NewResolver(reg *Registry) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Resolver{
		registry: reg,
		fallback: Coordinate{X: parameter.DefaultMapWidth / 2, Y: parameter.DefaultMapHeight / 2},
	}
}

// Registry exposes the backing registry
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve returns the coordinate of a single-space position
// Order: exact table hit, then procedural layout, then the map centre
// Never fails; a double-space code resolves to the midpoint of its halves
func (r *Resolver) Resolve(position, venueID string) Coordinate {
	position = strings.TrimSpace(position)
	v, ok := r.registry.Venue(venueID)
	if !ok {
		venueLog.Debug().Str("venue", venueID).Str("position", position).Msg("unknown venue, using default centre")
		return r.fallback
	}

	if c, hit := v.Table.Lookup(position); hit {
		return c
	}

	code, err := placement.Parse(position)
	if err != nil {
		venueLog.Debug().Str("venue", venueID).Str("position", position).Err(err).Msg("unparsable position, using map centre")
		return v.Fallback()
	}

	if code.IsDouble() {
		n, err := placement.Normalize(code)
		if err != nil {
			venueLog.Debug().Str("venue", venueID).Str("position", position).Err(err).Msg("invalid double-space, using map centre")
			return v.Fallback()
		}
		return Midpoint(r.resolveSingle(v, n.Primary, code.Block, code.Number1),
			r.resolveSingle(v, n.Secondary, code.Block, code.Number2))
	}

	return r.locate(v, code.Block, code.Number1, position)
}

// resolveSingle resolves one half of a double-space code, table first
func (r *Resolver) resolveSingle(v *Venue, position, block, number string) Coordinate {
	if c, hit := v.Table.Lookup(position); hit {
		return c
	}
	return r.locate(v, block, number, position)
}

// locate runs the procedural layout, falling back to the map centre
func (r *Resolver) locate(v *Venue, block, number, position string) Coordinate {
	if v.Layout == nil {
		venueLog.Debug().Str("venue", v.ID).Str("position", position).Msg("no layout, using map centre")
		return v.Fallback()
	}
	n, ok := placement.Number(number)
	if !ok {
		return v.Fallback()
	}
	c, ok := v.Layout.Locate(block, n)
	if !ok {
		venueLog.Debug().Str("venue", v.ID).Str("position", position).Msg("block outside layout, using map centre")
		return v.Fallback()
	}
	return c
}

// ResolvePlacement normalizes code and resolves it, returning the midpoint for double-space codes
func (r *Resolver) ResolvePlacement(code placement.Code, venueID string) (Coordinate, error) {
	n, err := placement.Normalize(code)
	if err != nil {
		return Coordinate{}, err
	}
	if !n.IsDoubleSpace {
		return r.Resolve(n.Primary, venueID), nil
	}
	return Midpoint(r.Resolve(n.Primary, venueID), r.Resolve(n.Secondary, venueID)), nil
}

// ResolveCode parses raw and resolves it
func (r *Resolver) ResolveCode(raw, venueID string) (Coordinate, error) {
	code, err := placement.Parse(raw)
	if err != nil {
		return Coordinate{}, err
	}
	return r.ResolvePlacement(code, venueID)
}
