package jelly

import (
	"fmt"
	"os"
	"time"
)

// debugStats accumulates per-tick timing between log lines.
// Only populated when the Simulation is in debug mode.
type debugStats struct {
	ticks         int
	integrateTime time.Duration
	pointerTime   time.Duration
	tweenTime     time.Duration
	influenced    int
}

// debugLog prints the accumulated stats to stderr and resets them.
func (s *Simulation) debugLog() {
	if !s.debug || s.stats.ticks == 0 {
		return
	}
	st := s.stats
	n := time.Duration(st.ticks)
	_, _ = fmt.Fprintf(os.Stderr,
		"[jelly] tick %d | integrate: %v | pointer: %v | tween: %v (avg over %d)\n",
		s.ticks, st.integrateTime/n, st.pointerTime/n, st.tweenTime/n, st.ticks)
	_, _ = fmt.Fprintf(os.Stderr,
		"[jelly] bands: %d | points: %d | influenced: %d | energy: %.3f\n",
		len(s.scene.bands), s.scene.PointCount(), st.influenced, s.scene.KineticEnergy())
	s.stats = debugStats{}
}

// debugRegenerated logs a scene swap.
func (s *Simulation) debugRegenerated(width, height float64) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[jelly] regenerated %gx%g: %d bands, %d points, spacing %.2f\n",
		width, height, len(s.scene.bands), s.scene.PointCount(), s.scene.spacing)
}

// debugCheckRetired panics when a retired band is handed to a live scene
// operation. Only called in debug mode.
func debugCheckRetired(b *Band, op string) {
	if b.retired {
		panic(fmt.Sprintf("jelly debug: %s on retired band %q", op, b.Name))
	}
}
