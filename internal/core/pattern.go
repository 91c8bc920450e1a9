package core

import "sort"

// Offset is a cell position relative to a stamp anchor.
type Offset struct {
	DR, DC int
}

// Pattern is a named set of offsets that can be stamped onto a lattice.
type Pattern struct {
	Name    string
	Offsets []Offset
}

// Stamp forces every pattern cell to age 1 at anchor+offset, wrapping
// toroidally. Cells outside the footprint are untouched. Stamping does not
// record history; callers push a frame first if they want undo.
func (p Pattern) Stamp(l *Lattice2D, anchorRow, anchorCol int) {
	for _, off := range p.Offsets {
		l.Set(anchorRow+off.DR, anchorCol+off.DC, 1)
	}
}

var patternRegistry = map[string]Pattern{}

// RegisterPattern adds a pattern to the registry. Empty names are ignored.
func RegisterPattern(p Pattern) {
	if p.Name == "" {
		return
	}
	patternRegistry[p.Name] = p
}

// LookupPattern resolves a pattern by name, reporting whether it exists.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patternRegistry[name]
	return p, ok
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patternRegistry))
	for name := range patternRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPattern(Pattern{Name: "block", Offsets: []Offset{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	}})
	RegisterPattern(Pattern{Name: "blinker", Offsets: []Offset{
		{0, 0}, {0, 1}, {0, 2},
	}})
	RegisterPattern(Pattern{Name: "glider", Offsets: []Offset{
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	}})
	RegisterPattern(Pattern{Name: "rpentomino", Offsets: []Offset{
		{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1},
	}})
	RegisterPattern(Pattern{Name: "lwss", Offsets: []Offset{
		{0, 1}, {0, 4}, {1, 0}, {2, 0}, {2, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3},
	}})
}
