package jelly

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints FPS, TPS and scene size in the top-left corner. The text
// is rebuilt every ~0.5 seconds of ticks.
type fpsOverlay struct {
	text       string
	sinceTicks int
}

func (o *fpsOverlay) update(sim *Simulation) {
	o.sinceTicks++
	if o.text != "" && o.sinceTicks < sim.cfg.TickRate/2 {
		return
	}
	o.sinceTicks = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npoints: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), sim.scene.PointCount())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}
