package core

// StateBuffer stores a 2D grid of float64 cell states in row-major order.
type StateBuffer struct {
	W, H int
	data []float64
}

// NewStateBuffer allocates a buffer with the given dimensions.
func NewStateBuffer(w, h int) *StateBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &StateBuffer{W: w, H: h, data: make([]float64, w*h)}
}

// States exposes the backing slice so callers can read/write values directly.
func (b *StateBuffer) States() []float64 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *StateBuffer) Index(x, y int) int { return y*b.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *StateBuffer) Wrap(x, y int) (int, int) {
	x = (x%b.W + b.W) % b.W
	y = (y%b.H + b.H) % b.H
	return x, y
}

// Clear fills the buffer with zeros.
func (b *StateBuffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// Clone returns an independent deep copy of the buffer.
func (b *StateBuffer) Clone() *StateBuffer {
	out := &StateBuffer{W: b.W, H: b.H, data: make([]float64, len(b.data))}
	copy(out.data, b.data)
	return out
}

// Equal reports whether both buffers hold identical dimensions and values.
// The comparison is exact; callers that round states to a fixed precision
// get a stable equality out of it.
func (b *StateBuffer) Equal(other *StateBuffer) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
