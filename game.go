package jelly

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Fixed disables window resizing.
	Fixed bool
	// Autopilot pokes the jelly automatically while the user is idle.
	Autopilot bool
	// TestRunner, if set, drives scripted input and screenshots.
	TestRunner *TestRunner
}

// Game adapts a Simulation to ebiten.Game: it reads the pointer, forwards
// edges and resizes, ticks the simulation and renders it.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	sim        *Simulation
	renderer   *Renderer
	input      pointerInput
	last       pointerSample
	autopilot  *Autopilot
	fps        *fpsOverlay
	width      int
	height     int
	testRunner *TestRunner

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
}

// NewGame wraps sim for use with ebiten.RunGame.
func NewGame(sim *Simulation, cfg RunConfig) *Game {
	w, h := sim.scene.Size()
	g := &Game{
		ScreenshotDir: "screenshots",
		sim:           sim,
		renderer:      NewRenderer(sim.cfg.StrokeWidth),
		width:         int(w),
		height:        int(h),
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	if cfg.Autopilot {
		g.autopilot = NewAutopilot(sim.cfg.TickRate, w, h)
	}
	g.testRunner = cfg.TestRunner
	return g
}

// Simulation returns the wrapped simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Run opens a window and runs sim until the window is closed. If cfg.Width or
// cfg.Height is zero, the simulation's current scene size is used.
func Run(sim *Simulation, cfg RunConfig) error {
	w, h := sim.scene.Size()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.Title == "" {
		cfg.Title = "Jelly"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(sim.cfg.TickRate)
	if !cfg.Fixed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(NewGame(sim, cfg))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	sample, ok := g.nextInjected()
	if !ok {
		sample = g.input.read()
	}
	g.advance(sample)
	if g.fps != nil {
		g.fps.update(g.sim)
	}
	return nil
}

// advance feeds one pointer sample through the autopilot and into the
// simulation: press/release edges first, then the tick.
func (g *Game) advance(sample pointerSample) {
	prev := g.last
	g.last = sample
	if g.autopilot != nil {
		active := sample.pressed || pointerMoved(sample, prev)
		if x, y, pressed := g.autopilot.Update(active, sample.x, sample.y); pressed {
			sample = pointerSample{x: x, y: y, pressed: true}
		}
	}

	if sample.pressed {
		g.sim.OnPointerDown()
	} else {
		g.sim.OnPointerUp()
	}
	g.sim.Tick(sample.x, sample.y)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.sim.Background().toRGBA())
	g.renderer.Draw(screen, g.sim.DrawableBands())
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A change of outside size regenerates the
// scene for the new viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// resize regenerates the scene. Failures are logged and the old scene kept;
// the size is recorded either way so a bad size is not retried every frame.
func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	if err := g.sim.OnResize(float64(width), float64(height)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[jelly] %v\n", err)
		return
	}
	if g.autopilot != nil {
		g.autopilot.Resize(float64(width), float64(height))
	}
}
