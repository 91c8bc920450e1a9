package core

import "sort"

// NeighborMask is a set of neighbor counts encoded as a bitmask. Bit n set
// means count n is a member. Counts range 0..8 for the 2D Moore neighborhood
// and 0..26 for the 3D one.
type NeighborMask uint32

// MaxNeighbors3D is the size of the 3D Moore neighborhood.
const MaxNeighbors3D = 26

// MaskOf builds a NeighborMask from explicit counts. Counts outside [0, 26]
// are ignored.
func MaskOf(counts ...int) NeighborMask {
	var m NeighborMask
	for _, n := range counts {
		if n >= 0 && n <= MaxNeighbors3D {
			m |= 1 << uint(n)
		}
	}
	return m
}

// Contains reports whether count n is a member of the mask.
func (m NeighborMask) Contains(n int) bool {
	if n < 0 || n > MaxNeighbors3D {
		return false
	}
	return m&(1<<uint(n)) != 0
}

// Counts expands the mask back into a sorted slice of member counts.
func (m NeighborMask) Counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors3D; n++ {
		if m.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// RuleSet is an immutable born/survive transition rule. A dead cell becomes
// alive when its live-neighbor count is in Born; a live cell stays alive when
// its count is in Survive. An empty Survive mask means cells never survive.
type RuleSet struct {
	Name    string
	Born    NeighborMask
	Survive NeighborMask
}

var ruleRegistry = map[string]RuleSet{}

// RegisterRule adds a rule to the registry. Rules with empty names are
// ignored; re-registering a name replaces the previous entry.
func RegisterRule(r RuleSet) {
	if r.Name == "" {
		return
	}
	ruleRegistry[r.Name] = r
}

// LookupRule resolves a rule by name, reporting whether it exists.
func LookupRule(name string) (RuleSet, bool) {
	r, ok := ruleRegistry[name]
	return r, ok
}

// RuleNames lists the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(ruleRegistry))
	for name := range ruleRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterRule(RuleSet{Name: "life", Born: MaskOf(3), Survive: MaskOf(2, 3)})
	RegisterRule(RuleSet{Name: "highlife", Born: MaskOf(3, 6), Survive: MaskOf(2, 3)})
	RegisterRule(RuleSet{Name: "seeds", Born: MaskOf(2), Survive: MaskOf()})
	RegisterRule(RuleSet{Name: "daynight", Born: MaskOf(3, 6, 7, 8), Survive: MaskOf(3, 4, 6, 7, 8)})
	// Volumetric rules for the cube shell. "life" also works there: a shell
	// cell's live neighbors all lie on the locally flat boundary, so face
	// interiors behave like the planar game.
	RegisterRule(RuleSet{Name: "bays-4555", Born: MaskOf(5), Survive: MaskOf(4, 5)})
	RegisterRule(RuleSet{Name: "bays-5766", Born: MaskOf(6, 7), Survive: MaskOf(5, 6, 7)})
}
