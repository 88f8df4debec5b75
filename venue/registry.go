package venue

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/floorplan/parameter"
)

// Venue is one floor map: its hand-authored table plus optional procedural layout
type Venue struct {
	ID     string
	Name   string
	Width  float64
	Height float64
	Table  Table
	Layout Layout // nil = table only
}

// Fallback returns the map centre, or the default map centre when dimensions are unset
func (v *Venue) Fallback() Coordinate {
	w, h := v.Width, v.Height
	if w <= 0 {
		w = parameter.DefaultMapWidth
	}
	if h <= 0 {
		h = parameter.DefaultMapHeight
	}
	return Coordinate{X: w / 2, Y: h / 2}
}

// Registry holds venues by id
// Registration happens at startup; lookups are safe from any goroutine
// RegisterLayout swaps in a copy, so a *Venue already handed out never changes
type Registry struct {
	mu     sync.RWMutex
	venues map[string]*Venue
}

func NewRegistry() *Registry {
	return &Registry{venues: make(map[string]*Venue)}
}

// Register adds v; empty and duplicate ids are rejected
func (r *Registry) Register(v *Venue) error {
	if v == nil || v.ID == "" {
		return fmt.Errorf("venue id is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.venues[v.ID]; exists {
		return fmt.Errorf("venue %q already registered", v.ID)
	}
	if v.Table == nil {
		v.Table = Table{}
	}
	r.venues[v.ID] = v
	venueLog.Debug().Str("venue", v.ID).Int("booths", len(v.Table)).Bool("layout", v.Layout != nil).Msg("venue registered")
	return nil
}

// RegisterLayout attaches or replaces the procedural layout of a registered venue
func (r *Registry) RegisterLayout(venueID string, l Layout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.venues[venueID]
	if !ok {
		return fmt.Errorf("venue %q not registered", venueID)
	}
	updated := *v
	updated.Layout = l
	r.venues[venueID] = &updated
	return nil
}

// Venue returns the venue registered under id
func (r *Registry) Venue(id string) (*Venue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.venues[id]
	return v, ok
}

// IDs returns registered venue ids in sorted order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.venues))
	for id := range r.venues {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
