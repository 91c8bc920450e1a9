// Package torus runs a born/survive cellular automaton on a 2D toroidal
// lattice with bounded undo/rewind history.
package torus

import (
	"fmt"

	"shell-life/internal/core"
	"shell-life/internal/history"
	pkgcore "shell-life/pkg/core"
)

// Advance computes one generation into a freshly allocated lattice. Neighbor
// counts use the 8-cell Moore neighborhood with toroidal wrapping. Live cells
// age by one per surviving generation, saturating at core.MaxAge.
func Advance(src *core.Lattice2D, rule core.RuleSet) (*core.Lattice2D, core.StepStats) {
	rows, cols := src.Rows(), src.Cols()
	next := core.NewLattice2D(rows, cols)
	cur := src.Ages()
	out := next.Ages()

	var stats core.StepStats
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (r + dr + rows) % rows
					nc := (c + dc + cols) % cols
					if cur[nr*cols+nc] > 0 {
						neighbors++
					}
				}
			}
			idx := r*cols + c
			age := cur[idx]
			switch {
			case age > 0 && rule.Survive.Contains(neighbors):
				if age < core.MaxAge {
					age++
				}
				out[idx] = age
				stats.Population++
			case age == 0 && rule.Born.Contains(neighbors):
				out[idx] = 1
				stats.Births++
				stats.BirthRowSum += r
				stats.Population++
			default:
				out[idx] = 0
			}
		}
	}
	return next, stats
}

// World is a toroidal Game of Life session: a lattice, its rule, and the
// bounded history enabling undo and destructive rewind.
type World struct {
	cfg  Config
	lat  *core.Lattice2D
	rule core.RuleSet
	hist *history.Ring[*core.Lattice2D]
	rng  *pkgcore.RNG

	generation int
	last       core.StepStats
}

// New returns a world with default rule and the provided dimensions.
func New(rows, cols int) *World {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world for the provided configuration. Unknown rule
// names fall back to the default config's rule.
func NewWithConfig(cfg Config) *World {
	rule, ok := core.LookupRule(cfg.Rule)
	if !ok {
		rule, _ = core.LookupRule(DefaultConfig().Rule)
	}
	return &World{
		cfg:  cfg,
		lat:  core.NewLattice2D(cfg.Rows, cfg.Cols),
		rule: rule,
		hist: history.New[*core.Lattice2D](cfg.HistoryCap),
		rng:  pkgcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "torus" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.lat.Cols(), H: w.lat.Rows()} }

// Cells exposes the current age buffer.
func (w *World) Cells() []uint8 { return w.lat.Ages() }

// Rule returns the active rule.
func (w *World) Rule() core.RuleSet { return w.rule }

// Generation returns the number of steps since the last reset, adjusted for
// undo and rewind.
func (w *World) Generation() int { return w.generation }

// LastStats returns the side channel of the most recent step.
func (w *World) LastStats() core.StepStats { return w.last }

// HistoryLen returns the number of retained history frames.
func (w *World) HistoryLen() int { return w.hist.Len() }

// Snapshot returns a deep copy of the current lattice.
func (w *World) Snapshot() *core.Lattice2D { return w.lat.Clone() }

// Reset randomizes the board with the configured density, clears history and
// zeroes the generation counter.
func (w *World) Reset(seed int64) {
	w.rng = pkgcore.NewRNG(seed)
	pkgcore.FillDensity(w.rng.Source(), w.lat.Ages(), w.cfg.Density)
	w.hist.Clear()
	w.generation = 0
	w.last = core.StepStats{}
}

// Step records the current lattice and advances one generation. The new
// lattice is swapped in only after the full step computes.
func (w *World) Step() {
	w.hist.Push(w.lat)
	next, stats := Advance(w.lat, w.rule)
	w.lat = next
	w.generation++
	w.last = stats
}

// Toggle flips the cell at (row, col). Out-of-range coordinates are rejected
// as a no-op. The previous state is recorded for undo.
func (w *World) Toggle(row, col int) bool {
	if !w.lat.InBounds(row, col) {
		return false
	}
	w.hist.Push(w.lat)
	if w.lat.At(row, col) > 0 {
		w.lat.Set(row, col, 0)
	} else {
		w.lat.Set(row, col, 1)
	}
	return true
}

// Stamp places a registered pattern with its anchor at (row, col), wrapping
// toroidally. Unknown pattern names are rejected. The previous state is
// recorded for undo.
func (w *World) Stamp(name string, row, col int) bool {
	p, ok := core.LookupPattern(name)
	if !ok {
		return false
	}
	w.hist.Push(w.lat)
	p.Stamp(w.lat, row, col)
	return true
}

// SetRule switches the active rule by name, rejecting unknown names.
func (w *World) SetRule(name string) bool {
	rule, ok := core.LookupRule(name)
	if !ok {
		return false
	}
	w.rule = rule
	return true
}

// Randomize refills the board at the given density using the session RNG.
// The previous state is recorded for undo.
func (w *World) Randomize(density float64) {
	w.hist.Push(w.lat)
	pkgcore.FillDensity(w.rng.Source(), w.lat.Ages(), density)
}

// Clear kills every cell. The previous state is recorded for undo.
func (w *World) Clear() {
	w.hist.Push(w.lat)
	w.lat.Clear()
}

// Resize replaces the lattice wholesale. Non-positive dimensions are rejected
// before any allocation. History is always cleared: retained frames of other
// dimensions are meaningless.
func (w *World) Resize(rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		return false
	}
	w.cfg.Rows = rows
	w.cfg.Cols = cols
	w.lat = core.NewLattice2D(rows, cols)
	w.hist.Clear()
	w.generation = 0
	w.last = core.StepStats{}
	return true
}

// Undo restores the most recent history frame and decrements the generation
// counter. Reports false when there is nothing to undo.
func (w *World) Undo() bool {
	prev, ok := w.hist.Undo()
	if !ok {
		return false
	}
	w.lat = prev
	w.generation--
	return true
}

// Scrub rewinds destructively to the history frame at index: later frames are
// discarded and the generation counter drops by the number of frames removed.
// Out-of-range indices are a no-op.
func (w *World) Scrub(index int) bool {
	delta := w.hist.Len() - index
	frame, ok := w.hist.Scrub(index)
	if !ok {
		return false
	}
	w.lat = frame
	w.generation -= delta
	return true
}

// Parameters exposes HUD-visible session values.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Value: w.rule.Name},
				{Key: "generation", Label: "Generation", Value: fmt.Sprintf("%d", w.generation)},
				{Key: "population", Label: "Population", Value: fmt.Sprintf("%d", w.lat.Population())},
				{Key: "history", Label: "History", Value: fmt.Sprintf("%d", w.hist.Len())},
			},
		},
	}}
}

func init() {
	core.Register("torus", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
