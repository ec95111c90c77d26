package jelly

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// PointerState is the latest pointer sample. Active is toggled by
// OnPointerDown/OnPointerUp; Position is refreshed every Tick.
type PointerState struct {
	Active   bool
	Position Vec2
}

// DrawableBand is what a renderer needs to paint one band. Colors already
// carry the band's presentation alpha.
type DrawableBand struct {
	Curve  Curve
	Fill   Color
	Stroke Color
	Closed bool
}

// Simulation is the host-facing core. Hosts forward resize and pointer edges,
// call Tick once per frame, then draw DrawableBands. Everything runs on the
// caller's goroutine; a Simulation must not be shared across goroutines.
type Simulation struct {
	cfg     Config
	scene   *Scene
	pointer PointerState
	sink    EventSink
	debug   bool
	ticks   uint64
	tweens  []*TweenGroup
	drawBuf []DrawableBand
	stats   debugStats
}

// NewSimulation validates cfg and builds the first scene.
func NewSimulation(cfg Config, width, height float64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Layout.Colors = append([]Color(nil), cfg.Layout.Colors...)
	scene, err := Regenerate(cfg, width, height)
	if err != nil {
		return nil, err
	}
	s := &Simulation{cfg: cfg}
	s.install(scene)
	return s, nil
}

// Config returns the simulation's configuration.
func (s *Simulation) Config() Config {
	cfg := s.cfg
	cfg.Layout.Colors = append([]Color(nil), s.cfg.Layout.Colors...)
	return cfg
}

// Scene returns the current scene. The pointer is invalidated by the next
// successful OnResize.
func (s *Simulation) Scene() *Scene {
	return s.scene
}

// Pointer returns the latest pointer state.
func (s *Simulation) Pointer() PointerState {
	return s.pointer
}

// Ticks returns how many times Tick has run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// SetEventSink sets the optional event consumer. Pass nil to detach.
func (s *Simulation) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// stats are logged to stderr once per second of ticks and retired bands
// panic when re-added.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.stats = debugStats{}
}

func (s *Simulation) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Tick = s.ticks
	s.sink.EmitEvent(e)
}

// install swaps in scene, retires the old bands and starts the fade-in.
func (s *Simulation) install(scene *Scene) {
	if s.scene != nil {
		s.scene.retire()
	}
	s.scene = scene
	s.tweens = s.tweens[:0]
	if s.cfg.FadeIn > 0 {
		for _, b := range scene.bands {
			b.Alpha = 0
			s.tweens = append(s.tweens, TweenAlpha(b, 1, float32(s.cfg.FadeIn), ease.OutQuad))
		}
	}
}

// OnResize rebuilds the scene for the new viewport. Resizing to the current
// size is a no-op. On failure the previous scene stays in place.
func (s *Simulation) OnResize(width, height float64) error {
	if w, h := s.scene.Size(); w == width && h == height {
		return nil
	}
	s.emit(Event{Type: EventResize, Width: width, Height: height})
	scene, err := Regenerate(s.cfg, width, height)
	if err != nil {
		return fmt.Errorf("resize to %gx%g: %w", width, height, err)
	}
	s.install(scene)
	s.debugRegenerated(width, height)
	s.emit(Event{
		Type: EventRegenerate, Width: width, Height: height,
		Bands: len(scene.bands), Points: scene.PointCount(),
	})
	return nil
}

// OnPointerDown marks the pointer active. Influence starts on the next Tick.
func (s *Simulation) OnPointerDown() {
	if s.pointer.Active {
		return
	}
	s.pointer.Active = true
	s.emit(Event{Type: EventPointerDown, X: s.pointer.Position.X, Y: s.pointer.Position.Y})
}

// OnPointerUp marks the pointer inactive.
func (s *Simulation) OnPointerUp() {
	if !s.pointer.Active {
		return
	}
	s.pointer.Active = false
	s.emit(Event{Type: EventPointerUp, X: s.pointer.Position.X, Y: s.pointer.Position.Y})
}

// Tick advances the simulation by one frame: every band is stepped, then,
// if the pointer is active, points near (pointerX, pointerY) are pushed.
// Running tweens advance by 1/TickRate seconds.
func (s *Simulation) Tick(pointerX, pointerY float64) {
	s.pointer.Position = Vec2{X: pointerX, Y: pointerY}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.scene.Step(s.cfg.Physics)

	if s.debug {
		s.stats.integrateTime += time.Since(t0)
		t0 = time.Now()
	}

	if s.pointer.Active {
		p := s.cfg.Pointer
		n := s.scene.ApplyPointerForce(pointerX, pointerY, p.Radius, p.Force)
		if s.debug {
			s.stats.influenced += n
		}
	}

	if s.debug {
		s.stats.pointerTime += time.Since(t0)
		t0 = time.Now()
	}

	s.updateTweens(float32(1 / float64(s.cfg.TickRate)))

	s.ticks++
	if s.debug {
		s.stats.tweenTime += time.Since(t0)
		s.stats.ticks++
		if s.stats.ticks >= s.cfg.TickRate {
			s.debugLog()
		}
	}
}

func (s *Simulation) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// SetPalette replaces the palette. Existing bands cross-fade to their new
// colors over duration seconds (instantly when duration <= 0), and later
// regenerations use the new palette.
func (s *Simulation) SetPalette(colors []Color, duration float64) error {
	if len(colors) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	s.cfg.Layout.Colors = append([]Color(nil), colors...)
	for i, b := range s.scene.bands {
		c := s.cfg.Layout.colorFor(i)
		if duration <= 0 {
			b.Fill, b.Stroke = c, c
			continue
		}
		s.tweens = append(s.tweens,
			TweenFill(b, c, float32(duration), ease.InOutSine),
			TweenStroke(b, c, float32(duration), ease.InOutSine),
		)
	}
	return nil
}

// AddBand adds an extra band on top of the current scene. It is dropped on
// the next regeneration.
func (s *Simulation) AddBand(b *Band) {
	if s.debug {
		debugCheckRetired(b, "AddBand")
	}
	s.scene.AddBand(b)
}

// Background returns the clear color hosts paint behind the bands.
func (s *Simulation) Background() Color {
	return s.cfg.Layout.Colors[0]
}

// DrawableBands samples every band in paint order. The result and its curves
// are reused by the next call.
func (s *Simulation) DrawableBands() []DrawableBand {
	s.drawBuf = s.drawBuf[:0]
	for _, b := range s.scene.bands {
		s.drawBuf = append(s.drawBuf, DrawableBand{
			Curve:  b.Curve(s.cfg.Curve),
			Fill:   b.Fill.WithAlpha(b.Alpha),
			Stroke: b.Stroke.WithAlpha(b.Alpha),
			Closed: b.ring.closed,
		})
	}
	return s.drawBuf
}
