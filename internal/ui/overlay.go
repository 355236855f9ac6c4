//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"problife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type previousStatesProvider interface {
	PreviousStates() ([]float64, bool)
}

// Overlay tints the cells whose state changed since the previous generation,
// which makes slow-moving Problife gradients visible. Toggled with Tab.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a change-highlight overlay for the simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(previousStatesProvider)
	if !ok {
		return
	}
	prev, ok := provider.PreviousStates()
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	curr := o.sim.States()
	if len(prev) != total || len(curr) != total || total == 0 {
		return
	}

	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	const maxAlpha = 150.0
	tint := color.RGBA{R: 230, G: 120, B: 40}
	for i := 0; i < total; i++ {
		base := i * 4
		delta := math.Abs(curr[i] - prev[i])
		if delta == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		if delta > 1 {
			delta = 1
		}
		// Pixels are premultiplied alpha.
		a := math.Round(maxAlpha * delta)
		o.buf[base+0] = uint8(float64(tint.R) * a / 255)
		o.buf[base+1] = uint8(float64(tint.G) * a / 255)
		o.buf[base+2] = uint8(float64(tint.B) * a / 255)
		o.buf[base+3] = uint8(a)
	}

	o.img.ReplacePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
