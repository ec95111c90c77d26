package jelly

import (
	"errors"
	"testing"
)

func TestRegenerateLayout(t *testing.T) {
	cfg := DefaultConfig()
	s, err := Regenerate(cfg, 750, 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bands()) != 5 {
		t.Fatalf("bands = %d, want 5", len(s.Bands()))
	}
	if s.Spacing() != 50 {
		t.Errorf("spacing = %v, want 50", s.Spacing())
	}
	if w, h := s.Size(); w != 750 || h != 500 {
		t.Errorf("Size = %vx%v", w, h)
	}
	for i, b := range s.Bands() {
		want := Rect{X: -100, Y: float64(i) * 100, Width: 850, Height: 150}
		if b.Origin != want {
			t.Errorf("band %d origin = %+v, want %+v", i, b.Origin, want)
		}
		if b.Fill != cfg.Layout.Colors[i] || b.Stroke != cfg.Layout.Colors[i] {
			t.Errorf("band %d colors = %+v / %+v", i, b.Fill, b.Stroke)
		}
		if got := b.Ring().At(0).Position; got != (Vec2{X: -100, Y: want.Y}) {
			t.Errorf("band %d first point = %+v", i, got)
		}
		if b.Ring().Len() != 40 {
			t.Errorf("band %d points = %d, want 40", i, b.Ring().Len())
		}
	}
	if s.PointCount() != 200 {
		t.Errorf("PointCount = %d, want 200", s.PointCount())
	}
}

func TestRegenerateErrors(t *testing.T) {
	if _, err := Regenerate(DefaultConfig(), 0, 500); !errors.Is(err, ErrInvalidLattice) {
		t.Errorf("zero width: err = %v, want ErrInvalidLattice", err)
	}
	cfg := DefaultConfig()
	cfg.Layout.BandCount = 0
	if _, err := Regenerate(cfg, 800, 600); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero bands: err = %v, want ErrInvalidConfig", err)
	}
}

func TestSceneStepAndPointer(t *testing.T) {
	cfg := DefaultConfig()
	s, err := Regenerate(cfg, 750, 500)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(cfg.Physics)
	if e := s.KineticEnergy(); e != 0 {
		t.Fatalf("resting scene gained energy %v", e)
	}

	// (-90, 105) is 10 units from band 1's first point at (-100, 100).
	n := s.ApplyPointerForce(-90, 105, cfg.Pointer.Radius, cfg.Pointer.Force)
	if n == 0 {
		t.Fatal("pointer influenced no points")
	}
	if s.KineticEnergy() == 0 {
		t.Error("pointer force did not add energy")
	}
	s.Step(cfg.Physics)
	if p := s.Bands()[1].Ring().At(0); p.Position == p.Rest() {
		t.Error("pushed point did not move on the next step")
	}
}

func TestSceneAddBand(t *testing.T) {
	s, err := Regenerate(DefaultConfig(), 750, 500)
	if err != nil {
		t.Fatal(err)
	}
	chain, err := NewChainBand("rope", Vec2{X: 0, Y: 250}, Vec2{X: 750, Y: 250}, 50, ColorWhite)
	if err != nil {
		t.Fatal(err)
	}
	s.AddBand(chain)
	if len(s.Bands()) != 6 || s.Bands()[5] != chain {
		t.Error("AddBand should append on top")
	}
	if chain.Fill.A != 0 {
		t.Error("chain bands have no fill")
	}
}
