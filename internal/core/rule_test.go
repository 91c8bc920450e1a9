package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskOfIgnoresOutOfRange(t *testing.T) {
	m := MaskOf(-1, 0, 3, 26, 27)
	assert.True(t, m.Contains(0))
	assert.True(t, m.Contains(3))
	assert.True(t, m.Contains(26))
	assert.False(t, m.Contains(-1))
	assert.False(t, m.Contains(27))
	assert.Equal(t, []int{0, 3, 26}, m.Counts())
}

func TestEmptyMaskContainsNothing(t *testing.T) {
	m := MaskOf()
	for n := 0; n <= MaxNeighbors3D; n++ {
		assert.False(t, m.Contains(n), "count %d", n)
	}
	assert.Nil(t, m.Counts())
}

func TestLookupRule(t *testing.T) {
	r, ok := LookupRule("life")
	require.True(t, ok)
	assert.Equal(t, MaskOf(3), r.Born)
	assert.Equal(t, MaskOf(2, 3), r.Survive)

	_, ok = LookupRule("no-such-rule")
	assert.False(t, ok)
}

func TestSeedsRuleHasEmptySurviveSet(t *testing.T) {
	r, ok := LookupRule("seeds")
	require.True(t, ok)
	assert.Equal(t, NeighborMask(0), r.Survive)
}

func TestRuleNamesSorted(t *testing.T) {
	names := RuleNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "life")
	assert.Contains(t, names, "bays-5766")
}

func TestRegisterRuleIgnoresEmptyName(t *testing.T) {
	before := len(RuleNames())
	RegisterRule(RuleSet{})
	assert.Len(t, RuleNames(), before)
}

func TestLookupPattern(t *testing.T) {
	p, ok := LookupPattern("glider")
	require.True(t, ok)
	assert.Len(t, p.Offsets, 5)

	_, ok = LookupPattern("no-such-pattern")
	assert.False(t, ok)
}

func TestPatternStampWrapsToroidally(t *testing.T) {
	l := NewLattice2D(5, 5)
	p, ok := LookupPattern("block")
	require.True(t, ok)
	p.Stamp(l, 4, 4)

	for _, rc := range [][2]int{{4, 4}, {4, 0}, {0, 4}, {0, 0}} {
		assert.Equal(t, uint8(1), l.At(rc[0], rc[1]), "cell (%d,%d)", rc[0], rc[1])
	}
	assert.Equal(t, 4, l.Population())
}
