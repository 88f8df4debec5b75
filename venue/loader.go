package venue

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// fileFormat mirrors the venues JSON document
type fileFormat struct {
	Venues []venueEntry `json:"venues"`
}

type venueEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Map  struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"map"`
	Booths Table        `json:"booths"`
	Layout *layoutEntry `json:"layout"`
	Pins   []string     `json:"pins"`
}

type layoutEntry struct {
	Grid    *GridLayout    `json:"grid"`
	Columns []ColumnLayout `json:"columns"`
}

// build returns the procedural layout described by e, grid before columns
func (e *layoutEntry) build() Layout {
	if e == nil {
		return nil
	}
	var c Composite
	if e.Grid != nil {
		c = append(c, *e.Grid)
	}
	for _, col := range e.Columns {
		c = append(c, col)
	}
	switch len(c) {
	case 0:
		return nil
	case 1:
		return c[0]
	}
	return c
}

// Catalog is a decoded venue file
type Catalog struct {
	registry *Registry
	pins     map[string][]string
}

// Load decodes a venue document from r
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read venues: %w", err)
	}

	var f fileFormat
	if err := sonic.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode venues: %w", err)
	}

	cat := &Catalog{
		registry: NewRegistry(),
		pins:     make(map[string][]string, len(f.Venues)),
	}
	for i := range f.Venues {
		e := &f.Venues[i]
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("venue %d: %w", i, err)
		}
		v := &Venue{
			ID:     e.ID,
			Name:   e.Name,
			Width:  e.Map.Width,
			Height: e.Map.Height,
			Table:  e.Booths,
			Layout: e.Layout.build(),
		}
		if err := cat.registry.Register(v); err != nil {
			return nil, err
		}
		cat.pins[e.ID] = e.Pins
	}

	venueLog.Info().Int("venues", len(f.Venues)).Msg("venues loaded")
	return cat, nil
}

// LoadFile opens path and loads it
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open venues: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func validateEntry(e *venueEntry) error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	if e.Map.Width < 0 || e.Map.Height < 0 {
		return fmt.Errorf("%s: negative map size", e.ID)
	}
	if e.Layout != nil && e.Layout.Grid != nil && e.Layout.Grid.GroupSize < 0 {
		return fmt.Errorf("%s: negative group size", e.ID)
	}
	return nil
}

// Registry returns the venues of the catalog
func (c *Catalog) Registry() *Registry {
	return c.registry
}

// Pins returns the placement codes listed for venue id
func (c *Catalog) Pins(id string) []string {
	return c.pins[id]
}
