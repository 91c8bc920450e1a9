package torus

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"shell-life/internal/core"
)

func aliveSet(l *core.Lattice2D) []bool {
	out := make([]bool, len(l.Ages()))
	for i, v := range l.Ages() {
		out[i] = v > 0
	}
	return out
}

func TestBlockIsStillLife(t *testing.T) {
	w := New(16, 16)
	if !w.Stamp("block", 3, 3) {
		t.Fatal("block pattern must be registered")
	}
	want := aliveSet(w.Snapshot())

	for i := 0; i < 10; i++ {
		w.Step()
	}
	if diff := cmp.Diff(want, aliveSet(w.Snapshot())); diff != "" {
		t.Errorf("block changed shape (-want +got):\n%s", diff)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	const n = 16
	w := New(n, n)
	if !w.Stamp("glider", 2, 2) {
		t.Fatal("glider pattern must be registered")
	}
	before := w.Snapshot()

	for i := 0; i < 4; i++ {
		w.Step()
	}
	after := w.Snapshot()

	// After 4 generations the glider's shape recurs translated by (+1,+1),
	// wrapping toroidally.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			wantAlive := before.At(r, c) > 0
			gotAlive := after.At(r+1, c+1) > 0
			if wantAlive != gotAlive {
				t.Fatalf("cell (%d,%d): alive=%v after translation, want %v", r, c, gotAlive, wantAlive)
			}
		}
	}
}

func TestAgeSaturates(t *testing.T) {
	core.RegisterRule(core.RuleSet{
		Name:    "test-immortal",
		Born:    core.MaskOf(),
		Survive: core.MaskOf(0, 1, 2, 3, 4, 5, 6, 7, 8),
	})
	w := New(8, 8)
	if !w.SetRule("test-immortal") {
		t.Fatal("immortal rule must resolve")
	}
	w.Toggle(4, 4)

	for i := 0; i < 300; i++ {
		w.Step()
	}
	if got := w.Snapshot().At(4, 4); got != core.MaxAge {
		t.Errorf("age after 300 generations = %d, want %d", got, core.MaxAge)
	}
}

func TestStepSideChannel(t *testing.T) {
	w := New(16, 16)
	w.Stamp("blinker", 5, 5)
	w.Step()

	// The horizontal blinker flips vertical: two births in rows 4 and 6.
	stats := w.LastStats()
	if stats.Births != 2 {
		t.Errorf("births = %d, want 2", stats.Births)
	}
	if stats.BirthRowSum != 10 {
		t.Errorf("birth row sum = %d, want 10", stats.BirthRowSum)
	}
	if stats.Population != 3 {
		t.Errorf("population = %d, want 3", stats.Population)
	}
}

func TestUndoRestoresPreviousGeneration(t *testing.T) {
	w := New(24, 24)
	w.Reset(42)
	before := w.Snapshot()

	w.Step()
	if !w.Undo() {
		t.Fatal("undo after a step must succeed")
	}
	if diff := cmp.Diff(before.Ages(), w.Snapshot().Ages()); diff != "" {
		t.Errorf("undo did not restore ages (-want +got):\n%s", diff)
	}
	if w.Generation() != 0 {
		t.Errorf("generation after undo = %d, want 0", w.Generation())
	}
}

func TestUndoOnEmptyHistoryIsNoOp(t *testing.T) {
	w := New(8, 8)
	if w.Undo() {
		t.Error("undo with no history must report false")
	}
}

func TestScrubTruncatesAndAdjustsGeneration(t *testing.T) {
	w := New(16, 16)
	w.Stamp("rpentomino", 6, 6)
	snapshots := make([]*core.Lattice2D, 0, 7)
	for i := 0; i < 6; i++ {
		snapshots = append(snapshots, w.Snapshot())
		w.Step()
	}
	// One stamp push plus six step pushes.
	if w.HistoryLen() != 7 {
		t.Fatalf("history length = %d, want 7", w.HistoryLen())
	}

	if !w.Scrub(3) {
		t.Fatal("in-range scrub must succeed")
	}
	// Frame 3 is the lattice recorded by the step that produced generation 3,
	// i.e. the state after two steps.
	if diff := cmp.Diff(snapshots[2].Ages(), w.Snapshot().Ages()); diff != "" {
		t.Errorf("scrub restored wrong frame (-want +got):\n%s", diff)
	}
	if w.HistoryLen() != 3 {
		t.Errorf("history length after scrub = %d, want 3", w.HistoryLen())
	}
	if w.Generation() != 2 {
		t.Errorf("generation after scrub = %d, want 2", w.Generation())
	}
}

func TestScrubOutOfRangeIsNoOp(t *testing.T) {
	w := New(8, 8)
	w.Step()
	gen := w.Generation()
	if w.Scrub(5) {
		t.Error("out-of-range scrub must report false")
	}
	if w.Generation() != gen {
		t.Error("failed scrub must not change the generation counter")
	}
}

func TestResizeClearsHistory(t *testing.T) {
	w := New(8, 8)
	w.Step()
	w.Step()

	if w.Resize(0, 10) || w.Resize(10, -1) {
		t.Error("non-positive dimensions must be rejected")
	}
	if !w.Resize(12, 20) {
		t.Fatal("valid resize must succeed")
	}
	if got := w.Size(); got.W != 20 || got.H != 12 {
		t.Errorf("size after resize = %+v, want 20x12", got)
	}
	if w.HistoryLen() != 0 {
		t.Errorf("history length after resize = %d, want 0", w.HistoryLen())
	}
	if w.Undo() {
		t.Error("undo across a resize must be impossible")
	}
}

func TestToggleRejectsOutOfRange(t *testing.T) {
	w := New(8, 8)
	if w.Toggle(-1, 0) || w.Toggle(0, 8) {
		t.Error("out-of-range toggle must report false")
	}
	if !w.Toggle(3, 3) {
		t.Fatal("in-range toggle must succeed")
	}
	if w.Snapshot().At(3, 3) != 1 {
		t.Error("toggle must set a dead cell to age 1")
	}
	w.Toggle(3, 3)
	if w.Snapshot().At(3, 3) != 0 {
		t.Error("second toggle must kill the cell")
	}
}

func TestStampWrapsAndRejectsUnknown(t *testing.T) {
	w := New(8, 8)
	if w.Stamp("no-such-pattern", 0, 0) {
		t.Error("unknown pattern must be rejected")
	}
	if !w.Stamp("block", 7, 7) {
		t.Fatal("block stamp must succeed")
	}
	l := w.Snapshot()
	for _, rc := range [][2]int{{7, 7}, {7, 0}, {0, 7}, {0, 0}} {
		if l.At(rc[0], rc[1]) != 1 {
			t.Errorf("wrapped stamp cell (%d,%d) = %d, want 1", rc[0], rc[1], l.At(rc[0], rc[1]))
		}
	}
}

func TestResetIsDeterministicPerSeed(t *testing.T) {
	a := New(32, 32)
	b := New(32, 32)
	a.Reset(99)
	b.Reset(99)
	if diff := cmp.Diff(a.Snapshot().Ages(), b.Snapshot().Ages()); diff != "" {
		t.Errorf("same seed produced different boards (-a +b):\n%s", diff)
	}
	b.Reset(100)
	if cmp.Equal(a.Snapshot().Ages(), b.Snapshot().Ages()) {
		t.Error("different seeds produced identical boards")
	}
}

func TestSeedsRuleNeverSurvives(t *testing.T) {
	w := New(16, 16)
	if !w.SetRule("seeds") {
		t.Fatal("seeds rule must be registered")
	}
	w.Stamp("block", 4, 4)
	w.Step()
	// Every cell of the block had >0 neighbors but seeds has an empty
	// survive set, so all four die.
	l := w.Snapshot()
	for r := 4; r <= 5; r++ {
		for c := 4; c <= 5; c++ {
			if l.At(r, c) != 0 {
				t.Errorf("cell (%d,%d) survived under seeds", r, c)
			}
		}
	}
}
