package life

import (
	"errors"
	"fmt"

	"problife/internal/core"
	"problife/internal/rules"
)

var (
	// ErrInvalidDimension reports a grid size of one or less.
	ErrInvalidDimension = errors.New("life: grid size must be greater than 1")
	// ErrInvalidFraction reports an alive fraction outside [0, 1].
	ErrInvalidFraction = errors.New("life: alive fraction out of [0, 1]")
	// ErrDimensionMismatch reports injected values whose shape does not
	// match the grid.
	ErrDimensionMismatch = errors.New("life: injected grid has wrong dimensions")
	// ErrNoPriorState reports a backward step with no previous generation
	// to restore.
	ErrNoPriorState = errors.New("life: no previous generation to restore")
)

// Variant selects between the deterministic and probabilistic automata. The
// two share the same transition formula and differ only in whether states
// are constrained to {0, 1}.
type Variant string

const (
	// Classic is Conway's Game of Life with binary states.
	Classic Variant = "life"
	// Probabilistic is Problife, with continuous states in [0, 1].
	Probabilistic Variant = "problife"
)

// Clamp coerces a painted or toggled state into the variant's value domain:
// the nearest of {0, 1} for the classic game, the [0, 1] interval otherwise.
func (v Variant) Clamp(s float64) float64 {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	if v == Classic && s != 0 && s != 1 {
		if s < 0.5 {
			return 0
		}
		return 1
	}
	return s
}

// DefaultRules installs the preset that matches the variant into reg.
func (v Variant) DefaultRules(reg *rules.Registry) {
	if v == Probabilistic {
		rules.ApplyProblife(reg)
		return
	}
	rules.ApplyClassic(reg)
}

// Grid owns the square toroidal array of cells and drives whole-grid
// generation advancement. Every grid carries its own rule registry, so two
// simulations never interfere through shared rule state.
//
// The grid keeps two snapshots: the previous generation (for single-level
// undo and stability detection) and the initial generation (for full reset).
// Both are independent deep copies of the cell states.
type Grid struct {
	variant Variant
	rules   *rules.Registry

	size  int
	cells []Cell

	prev    *core.StateBuffer
	initial *core.StateBuffer

	generation int

	aliveFraction float64
	display       []float64
}

// New returns an empty grid for the given variant. When reg is nil the grid
// creates its own registry populated with the variant's preset rules. Call
// Initialize before advancing generations.
func New(variant Variant, reg *rules.Registry) *Grid {
	if variant != Probabilistic {
		variant = Classic
	}
	if reg == nil {
		reg = rules.NewRegistry()
		variant.DefaultRules(reg)
	}
	return &Grid{variant: variant, rules: reg}
}

// Variant reports which automaton the grid runs.
func (g *Grid) Variant() Variant { return g.variant }

// Rules exposes the grid's rule registry for configuration.
func (g *Grid) Rules() *rules.Registry { return g.rules }

// Initialize populates a size×size grid, drawing each cell alive with
// probability aliveFraction. A non-zero seed makes the draw reproducible; a
// zero seed derives one from the clock. The freshly drawn board is captured
// as the initial snapshot and the generation counter restarts at zero.
func (g *Grid) Initialize(size int, aliveFraction float64, seed int64) error {
	if size <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, size)
	}
	if aliveFraction < 0 || aliveFraction > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidFraction, aliveFraction)
	}

	rng := core.NewRNG(seed)
	cells := make([]Cell, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			state := 0.0
			if rng.Bernoulli(aliveFraction) {
				state = 1
			}
			cells[row*size+col] = Cell{Row: row, Col: col, State: state}
		}
	}

	g.size = size
	g.cells = cells
	g.aliveFraction = aliveFraction
	g.generation = 0
	g.prev = nil
	g.initial = g.captureStates()
	g.display = nil
	return nil
}

// Size reports the grid dimensions. The board is always square.
func (g *Grid) Size() core.Size { return core.Size{W: g.size, H: g.size} }

// Generation reports the number of forward advances minus backward steps.
func (g *Grid) Generation() int { return g.generation }

// captureStates deep-copies the current cell states into a fresh buffer.
func (g *Grid) captureStates() *core.StateBuffer {
	buf := core.NewStateBuffer(g.size, g.size)
	states := buf.States()
	for i, c := range g.cells {
		states[i] = c.State
	}
	return buf
}

// CellAt returns the cell stored at (row, col). Coordinates wrap toroidally.
func (g *Grid) CellAt(row, col int) Cell {
	if g.size == 0 {
		return Cell{}
	}
	col, row = g.wrap(col, row)
	return g.cells[row*g.size+col]
}

// StateAt returns the state of the cell at (row, col), wrapping toroidally.
func (g *Grid) StateAt(row, col int) float64 {
	return g.CellAt(row, col).State
}

// SetState overwrites one cell's state, coerced into the variant's value
// domain. Coordinates wrap toroidally. This is the editing surface a
// renderer uses to paint cells.
func (g *Grid) SetState(row, col int, state float64) {
	if g.size == 0 {
		return
	}
	col, row = g.wrap(col, row)
	g.cells[row*g.size+col].State = g.variant.Clamp(state)
}

func (g *Grid) wrap(x, y int) (int, int) {
	x = (x%g.size + g.size) % g.size
	y = (y%g.size + g.size) % g.size
	return x, y
}

// Neighbors returns the eight cells surrounding (row, col) at toroidal
// offsets {-1,0,1}×{-1,0,1} minus the origin. Edge cells wrap to the
// opposite edge, so every cell has exactly eight neighbors.
func (g *Grid) Neighbors(row, col int) []Cell {
	out := make([]Cell, 0, rules.MaxNeighbors)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, g.CellAt(row+dr, col+dc))
		}
	}
	return out
}

// neighborStates reads the eight neighbor states of (row, col) from a
// snapshot buffer, so phase one of an advance never observes a state that
// was already written for the next generation.
func neighborStates(buf *core.StateBuffer, row, col int, out []float64) []float64 {
	out = out[:0]
	states := buf.States()
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			x, y := buf.Wrap(col+dc, row+dr)
			out = append(out, states[buf.Index(x, y)])
		}
	}
	return out
}

// Advance moves the whole grid forward by one generation using a two-phase
// update: phase one computes every cell's next state from a snapshot of the
// current generation, phase two writes all of them back at once. The
// snapshot taken before phase one is retained as the previous generation.
// A failed advance leaves the grid unchanged.
func (g *Grid) Advance() error {
	snapshot := g.captureStates()
	next := make([]float64, len(g.cells))
	scratch := make([]float64, 0, rules.MaxNeighbors)
	for i := range g.cells {
		c := g.cells[i]
		scratch = neighborStates(snapshot, c.Row, c.Col, scratch)
		state, err := c.NextState(scratch, g.rules)
		if err != nil {
			return err
		}
		next[i] = state
	}
	for i := range g.cells {
		g.cells[i].State = next[i]
	}
	g.prev = snapshot
	g.generation++
	return nil
}

// StepBackward restores the previous generation and decrements the counter.
// Only one level of history is kept, so a second consecutive call fails with
// ErrNoPriorState.
func (g *Grid) StepBackward() error {
	if g.prev == nil {
		return ErrNoPriorState
	}
	states := g.prev.States()
	for i := range g.cells {
		g.cells[i].State = states[i]
	}
	g.prev = nil
	g.generation--
	return nil
}

// PreviousStates returns a copy of the previous generation's states in
// row-major order, when a snapshot exists.
func (g *Grid) PreviousStates() ([]float64, bool) {
	if g.prev == nil {
		return nil, false
	}
	states := g.prev.States()
	out := make([]float64, len(states))
	copy(out, states)
	return out, true
}

// Inject overwrites every cell's state from a size×size matrix of values,
// preserving cell positions. Snapshots and the generation counter are left
// untouched. Values are the caller's responsibility to keep in [0, 1].
func (g *Grid) Inject(values [][]float64) error {
	if len(values) != g.size {
		return fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(values), g.size)
	}
	for row, line := range values {
		if len(line) != g.size {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, row, len(line), g.size)
		}
	}
	for row, line := range values {
		for col, state := range line {
			g.cells[row*g.size+col].State = state
		}
	}
	return nil
}

// IsExtinct reports whether every cell's state is exactly zero.
func (g *Grid) IsExtinct() bool {
	for i := range g.cells {
		if g.cells[i].State != 0 {
			return false
		}
	}
	return true
}

// IsStable reports whether the grid is identical to the immediately
// preceding generation. The comparison is exact: states are rounded to two
// decimals on every update, so equality needs no tolerance band. A grid with
// no previous snapshot is never stable.
func (g *Grid) IsStable() bool {
	if g.prev == nil {
		return false
	}
	return g.captureStates().Equal(g.prev)
}

// ResetToInitial restores the cells from the snapshot taken at
// initialization time. The generation counter is left alone; only the board
// contents rewind.
func (g *Grid) ResetToInitial() {
	if g.initial == nil {
		return
	}
	states := g.initial.States()
	for i := range g.cells {
		g.cells[i].State = states[i]
	}
}

// Clear kills every cell and discards the previous-generation snapshot.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = 0
	}
	g.prev = nil
}
