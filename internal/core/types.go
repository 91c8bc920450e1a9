package core

// Size describes the dimensions of a simulation view. For volumetric sims it
// is the unfolded 2D footprint, not the raw volume.
type Size struct {
	W int
	H int
}

// StepStats is the per-generation side channel consumed by sonification and
// batch tooling. It is not part of lattice state.
type StepStats struct {
	// Births is the number of cells that went dead→alive this step.
	Births int
	// BirthRowSum is the sum of row indices (y for volumetric sims) of the
	// cells born this step, used to map vertical position to pitch.
	BirthRowSum int
	// Population is the live-cell count after the step.
	Population int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
