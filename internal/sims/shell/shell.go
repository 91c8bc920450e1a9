// Package shell runs a born/survive cellular automaton on the outer boundary
// of a volumetric lattice. Interior cells never participate: they are skipped
// as subjects and contribute nothing as neighbors.
package shell

import (
	"fmt"

	"shell-life/internal/core"
	"shell-life/internal/geom"
	"shell-life/internal/history"
	pkgcore "shell-life/pkg/core"
)

// Advance computes one generation into a freshly allocated lattice. Only
// shell coordinates are evaluated; the 26-cell Moore neighborhood is counted
// according to the strategy.
func Advance(src *core.Lattice3D, rule core.RuleSet, strat Strategy) (*core.Lattice3D, core.StepStats) {
	w, h, d := src.Dims()
	next := core.NewLattice3D(w, h, d)

	var stats core.StepStats
	src.ForEachShell(func(x, y, z int) {
		neighbors := countNeighbors(src, x, y, z, strat)
		age := src.At(x, y, z)
		switch {
		case age > 0 && rule.Survive.Contains(neighbors):
			if age < core.MaxAge {
				age++
			}
			next.Set(x, y, z, age)
			stats.Population++
		case age == 0 && rule.Born.Contains(neighbors):
			next.Set(x, y, z, 1)
			stats.Births++
			stats.BirthRowSum += y
			stats.Population++
		}
	})
	return next, stats
}

func countNeighbors(l *core.Lattice3D, x, y, z int, strat Strategy) int {
	w, h, d := l.Dims()
	count := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx, ny, nz := x+dx, y+dy, z+dz
				if strat == StrategyWrapGated {
					nx = (nx + w) % w
					ny = (ny + h) % h
					nz = (nz + d) % d
				} else if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
					continue
				}
				// At reads interior cells as 0, so only shell neighbors
				// can contribute under either strategy.
				if l.At(nx, ny, nz) > 0 {
					count++
				}
			}
		}
	}
	return count
}

// LivePanel pairs a live shell cell with one of its world-space panel
// transforms. A cell on an edge or corner yields one LivePanel per face
// membership.
type LivePanel struct {
	X, Y, Z int
	Age     uint8
	Face    geom.Face
	Panel   geom.Panel
}

// World is a cube-shell Game of Life session with bounded undo/rewind
// history.
type World struct {
	cfg  Config
	lat  *core.Lattice3D
	rule core.RuleSet
	hist *history.Ring[*core.Lattice3D]
	rng  *pkgcore.RNG

	generation int
	last       core.StepStats

	net      *core.Lattice2D
	netDirty bool
}

// New returns a world with default rule and the provided dimensions.
func New(w, h, d int) *World {
	cfg := DefaultConfig()
	cfg.W, cfg.H, cfg.D = w, h, d
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
		cfg:      cfg,
		lat:      core.NewLattice3D(cfg.W, cfg.H, cfg.D),
		rule:     rule,
		hist:     history.New[*core.Lattice3D](cfg.HistoryCap),
		rng:      pkgcore.NewRNG(cfg.Seed),
		netDirty: true,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "shell" }

// Dims returns the volume dimensions.
func (w *World) Dims() (int, int, int) { return w.lat.Dims() }

// Rule returns the active rule.
func (w *World) Rule() core.RuleSet { return w.rule }

// Strategy returns the neighbor-count strategy in effect.
func (w *World) Strategy() Strategy { return w.cfg.Strategy }

// Generation returns the number of steps since the last reset, adjusted for
// undo and rewind.
func (w *World) Generation() int { return w.generation }

// LastStats returns the side channel of the most recent step.
func (w *World) LastStats() core.StepStats { return w.last }

// HistoryLen returns the number of retained history frames.
func (w *World) HistoryLen() int { return w.hist.Len() }

// Snapshot returns a deep copy of the current lattice.
func (w *World) Snapshot() *core.Lattice3D { return w.lat.Clone() }

// Reset seeds the shell with the configured density, clears history and
// zeroes the generation counter. Interior cells stay dead.
func (w *World) Reset(seed int64) {
	w.rng = pkgcore.NewRNG(seed)
	rng := w.rng.Source()
	w.lat.Clear()
	w.lat.ForEachShell(func(x, y, z int) {
		if rng.Float64() < w.cfg.Density {
			w.lat.Set(x, y, z, 1)
		}
	})
	w.hist.Clear()
	w.generation = 0
	w.last = core.StepStats{}
	w.netDirty = true
}

// Step records the current lattice and advances one generation. The new
// lattice is swapped in only after the full step computes.
func (w *World) Step() {
	w.hist.Push(w.lat)
	next, stats := Advance(w.lat, w.rule, w.cfg.Strategy)
	w.lat = next
	w.generation++
	w.last = stats
	w.netDirty = true
}

// SetStrategy switches the neighbor-count strategy for subsequent steps.
func (w *World) SetStrategy(s Strategy) { w.cfg.Strategy = s }

// Toggle flips the cell at (x, y, z). Interior and out-of-bounds coordinates
// are rejected as a no-op: painting into the hollow interior is disallowed.
func (w *World) Toggle(x, y, z int) bool {
	if !w.lat.OnShell(x, y, z) {
		return false
	}
	w.hist.Push(w.lat)
	if w.lat.At(x, y, z) > 0 {
		w.lat.Set(x, y, z, 0)
	} else {
		w.lat.Set(x, y, z, 1)
	}
	w.netDirty = true
	return true
}

// Stamp places a registered 2D pattern on the face the anchor belongs to,
// spreading the (Δrow, Δcol) offsets along the face's tangent axes. Offsets
// landing off the shell are skipped. Unknown patterns and non-shell anchors
// are rejected.
func (w *World) Stamp(name string, x, y, z int) bool {
	p, ok := core.LookupPattern(name)
	if !ok {
		return false
	}
	vw, vh, vd := w.lat.Dims()
	faces := geom.FaceGroups(x, y, z, vw, vh, vd)
	if len(faces) == 0 {
		return false
	}
	w.hist.Push(w.lat)
	ur, uc := tangentAxes(faces[0])
	for _, off := range p.Offsets {
		tx := x + off.DR*ur[0] + off.DC*uc[0]
		ty := y + off.DR*ur[1] + off.DC*uc[1]
		tz := z + off.DR*ur[2] + off.DC*uc[2]
		w.lat.Set(tx, ty, tz, 1)
	}
	w.netDirty = true
	return true
}

// tangentAxes returns the volume-space (row, col) step vectors for a face.
func tangentAxes(f geom.Face) (row, col [3]int) {
	switch f {
	case geom.FaceNegX, geom.FacePosX:
		return [3]int{0, 1, 0}, [3]int{0, 0, 1}
	case geom.FaceNegY, geom.FacePosY:
		return [3]int{0, 0, 1}, [3]int{1, 0, 0}
	default:
		return [3]int{0, 1, 0}, [3]int{1, 0, 0}
	}
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

// Randomize reseeds the shell at the given density using the session RNG.
// The previous state is recorded for undo.
func (w *World) Randomize(density float64) {
	w.hist.Push(w.lat)
	rng := w.rng.Source()
	w.lat.Clear()
	w.lat.ForEachShell(func(x, y, z int) {
		if rng.Float64() < density {
			w.lat.Set(x, y, z, 1)
		}
	})
	w.netDirty = true
}

// Clear kills every cell. The previous state is recorded for undo.
func (w *World) Clear() {
	w.hist.Push(w.lat)
	w.lat.Clear()
	w.netDirty = true
}

// Resize replaces the volume wholesale. Non-positive dimensions are rejected
// before any allocation. History is always cleared.
func (w *World) Resize(width, height, depth int) bool {
	if width <= 0 || height <= 0 || depth <= 0 {
		return false
	}
	w.cfg.W, w.cfg.H, w.cfg.D = width, height, depth
	w.lat = core.NewLattice3D(width, height, depth)
	w.hist.Clear()
	w.generation = 0
	w.last = core.StepStats{}
	w.net = nil
	w.netDirty = true
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
	w.netDirty = true
	return true
}

// Scrub rewinds destructively to the history frame at index: later frames
// are discarded and the generation counter drops by the number of frames
// removed. Out-of-range indices are a no-op.
func (w *World) Scrub(index int) bool {
	delta := w.hist.Len() - index
	frame, ok := w.hist.Scrub(index)
	if !ok {
		return false
	}
	w.lat = frame
	w.generation -= delta
	w.netDirty = true
	return true
}

// Panels returns one world-space panel per live cell per face membership,
// with the given cell spacing. This is the view the 3D rendering collaborator
// iterates once per frame.
func (w *World) Panels(spacing float64) []LivePanel {
	vw, vh, vd := w.lat.Dims()
	var out []LivePanel
	w.lat.ForEachShell(func(x, y, z int) {
		age := w.lat.At(x, y, z)
		if age == 0 {
			return
		}
		for _, f := range geom.FaceGroups(x, y, z, vw, vh, vd) {
			p, ok := geom.ProjectFace(x, y, z, vw, vh, vd, f, spacing)
			if !ok {
				continue
			}
			out = append(out, LivePanel{X: x, Y: y, Z: z, Age: age, Face: f, Panel: p})
		}
	})
	return out
}

// Parameters exposes HUD-visible session values.
func (w *World) Parameters() core.ParameterSnapshot {
	vw, vh, vd := w.lat.Dims()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Value: w.rule.Name},
				{Key: "strategy", Label: "Neighbors", Value: w.cfg.Strategy.String()},
				{Key: "dims", Label: "Volume", Value: fmt.Sprintf("%d×%d×%d", vw, vh, vd)},
				{Key: "generation", Label: "Generation", Value: fmt.Sprintf("%d", w.generation)},
				{Key: "population", Label: "Population", Value: fmt.Sprintf("%d", w.lat.Population())},
				{Key: "history", Label: "History", Value: fmt.Sprintf("%d", w.hist.Len())},
			},
		},
	}}
}

func init() {
	core.Register("shell", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
