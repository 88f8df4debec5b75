package venue

import (
	"unicode/utf8"

	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/vmath"
)

// Layout is a venue's procedural geometry
// Locate returns false when the block or number is outside the layout's known ranges
type Layout interface {
	Locate(block string, number int) (Coordinate, bool)
}

// LayoutFunc adapts a plain function to Layout
type LayoutFunc func(block string, number int) (Coordinate, bool)

func (f LayoutFunc) Locate(block string, number int) (Coordinate, bool) {
	return f(block, number)
}

// BlockRange assigns base origins to a run of blocks
// Single-rune blocks From..To get Origin + index*Step; a multi-rune From matches exactly
type BlockRange struct {
	From      string      `json:"from"`
	To        string      `json:"to,omitempty"`
	Origin    vmath.Point `json:"origin"`
	Step      vmath.Point `json:"step"`
	MaxNumber int         `json:"maxNumber,omitempty"` // 0 = unbounded
}

// base returns the origin for block, and false if block is outside the range
func (r BlockRange) base(block string) (vmath.Point, bool) {
	if block == r.From {
		return r.Origin, true
	}
	to := r.To
	if to == "" {
		return vmath.Point{}, false
	}

	b, bn := utf8.DecodeRuneInString(block)
	from, fn := utf8.DecodeRuneInString(r.From)
	last, ln := utf8.DecodeRuneInString(to)
	if bn != len(block) || fn != len(r.From) || ln != len(to) {
		return vmath.Point{}, false
	}
	if b < from || b > last {
		return vmath.Point{}, false
	}
	return r.Origin.Add(r.Step.Scale(float64(b - from))), true
}

// accepts reports whether number is in range for this block run
func (r BlockRange) accepts(number int) bool {
	if number < 1 {
		return false
	}
	return r.MaxNumber == 0 || number <= r.MaxNumber
}

// findBase scans ranges in order
func findBase(ranges []BlockRange, block string, number int) (vmath.Point, bool) {
	for _, r := range ranges {
		if base, ok := r.base(block); ok {
			if !r.accepts(number) {
				return vmath.Point{}, false
			}
			return base, true
		}
	}
	return vmath.Point{}, false
}

// GridLayout packs booths into column groups of GroupSize
// Within a group booths pair up into rows, odd positions on the left, even on the right
type GridLayout struct {
	GroupSize   int          `json:"groupSize"`
	ColumnWidth float64      `json:"columnWidth"`
	SideOffset  float64      `json:"sideOffset"`
	RowHeight   float64      `json:"rowHeight"`
	Blocks      []BlockRange `json:"blocks"`
}

func (g GridLayout) Locate(block string, number int) (Coordinate, bool) {
	base, ok := findBase(g.Blocks, block, number)
	if !ok {
		return Coordinate{}, false
	}

	groupSize := g.GroupSize
	if groupSize <= 0 {
		groupSize = parameter.DefaultBoothsPerGroup
	}

	i := number - 1
	group := i / groupSize
	within := i % groupSize
	row := within / 2
	isRight := within%2 == 1

	x := base.X + float64(group)*g.ColumnWidth
	if isRight {
		x += g.SideOffset
	}
	y := base.Y + float64(row)*g.RowHeight
	return Coordinate{X: x, Y: y}, true
}

// ColumnLayout places booths of narrow aisles in a single column
type ColumnLayout struct {
	Stride float64      `json:"stride"`
	Blocks []BlockRange `json:"blocks"`
}

func (c ColumnLayout) Locate(block string, number int) (Coordinate, bool) {
	base, ok := findBase(c.Blocks, block, number)
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{X: base.X, Y: base.Y + float64(number-1)*c.Stride}, true
}

// Composite tries each layout in order
type Composite []Layout

func (c Composite) Locate(block string, number int) (Coordinate, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if coord, ok := l.Locate(block, number); ok {
			return coord, true
		}
	}
	return Coordinate{}, false
}
