//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"problife/internal/core"
	"problife/internal/render"
	"problife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minTPS = 1
	maxTPS = 60
)

type backwardStepper interface {
	StepBackward() error
}

type initialResetter interface {
	ResetToInitial()
}

type clearer interface {
	Clear()
}

type painter interface {
	SetState(row, col int, state float64)
}

type terminationChecker interface {
	IsExtinct() bool
	IsStable() bool
}

// Game adapts a core simulation to the ebiten.Game interface: rendering,
// pause/step/rewind controls, speed adjustment, and mouse cell painting.
type Game struct {
	sim     core.Sim
	grid    *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	fixed   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale      int
	panelWidth int
	paused     bool
	tickOnce   bool
	seed       int64
	note       string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:        sim,
		grid:       render.NewGridPainter(size.W, size.H),
		hud:        ui.NewHUD(sim, cfg.Panel),
		overlay:    ui.NewOverlay(sim, cfg.Scale),
		fixed:      core.NewFixedStep(cfg.TPS),
		onColor:    color.White,
		offColor:   color.Black,
		scale:      cfg.Scale,
		panelWidth: cfg.Panel,
		seed:       cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.note = ""
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if stepper, ok := g.sim.(backwardStepper); ok {
			if err := stepper.StepBackward(); err == nil {
				g.paused = true
				g.note = ""
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if resetter, ok := g.sim.(initialResetter); ok {
			resetter.ResetToInitial()
			g.paused = true
			g.note = ""
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
			g.paused = true
			g.note = ""
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.adjustTPS(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.adjustTPS(1)
	}

	g.paint()
	g.overlay.Update()

	if g.tickOnce {
		g.step()
		g.tickOnce = false
	} else if !g.paused && g.fixed.ShouldStep() {
		g.step()
	}

	g.hud.SetStatus(g.paused, g.fixed.TPS(), g.note)
	return nil
}

func (g *Game) step() {
	g.sim.Step()
	checker, ok := g.sim.(terminationChecker)
	if !ok {
		return
	}
	switch {
	case checker.IsExtinct():
		g.note = fmt.Sprintf("extinction at gen %d", g.sim.Generation())
		g.paused = true
	case checker.IsStable():
		g.note = fmt.Sprintf("equilibrium at gen %d", g.sim.Generation())
		g.paused = true
	}
}

func (g *Game) adjustTPS(direction int) {
	tps := g.fixed.TPS() + direction
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	g.fixed.SetTPS(tps)
}

// paint writes cell states under the cursor while a mouse button is held:
// left paints alive, right paints dead. The value goes through the variant's
// clamp, so the classic game toggles crisply between 0 and 1.
func (g *Game) paint() {
	p, ok := g.sim.(painter)
	if !ok {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	col := mx / scale
	row := my / scale
	if col < 0 || col >= size.W || row < 0 || row >= size.H {
		return
	}
	state := 1.0
	if right {
		state = 0
	}
	p.SetState(row, col, state)
	g.note = ""
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.grid.Blit(screen, g.sim.States(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size: the scaled grid plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panelWidth, s.H * g.scale
}
