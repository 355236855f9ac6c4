package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// States returns the current cell values in row-major order; the classic
// variant keeps them in {0, 1} while the probabilistic variant uses the
// full [0, 1] range.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	States() []float64
	Generation() int
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
