//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"problife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMarginX   = 8
	hudLineH     = 14
	hudFirstLine = 16
)

var keyHelp = []string{
	"space  pause/resume",
	"n      step forward",
	"b      step backward",
	"r      reset to initial",
	"s      reseed",
	"c      clear",
	"tab    highlight changes",
	"-/+    speed",
	"lmb    paint alive",
	"rmb    paint dead",
	"q/esc  quit",
}

// HUD renders the status panel to the right of the simulation view: grid
// read-outs, the active rule set, run status, and the key bindings.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	paused bool
	tps    int
	note   string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// SetStatus updates the run state shown on the panel. The note line is free
// text, used for termination reports ("extinction at gen 42").
func (h *HUD) SetStatus(paused bool, tps int, note string) {
	if h == nil {
		return
	}
	h.paused = paused
	h.tps = tps
	h.note = note
}

// Draw paints the HUD panel anchored to the right edge of the simulation
// view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := hudFirstLine
	line := func(s string) {
		text.Draw(h.panel, s, basicfont.Face7x13, hudMarginX, y, color.White)
		y += hudLineH
	}

	line(h.sim.Name())
	y += hudLineH / 2

	if provider, ok := h.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, p := range group.Params {
				line(fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
			y += hudLineH / 2
		}
	}

	if h.paused {
		line("paused")
	} else {
		line(fmt.Sprintf("running @ %d gps", h.tps))
	}
	if h.note != "" {
		line(h.note)
	}
	y += hudLineH / 2

	for _, s := range keyHelp {
		line(s)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
