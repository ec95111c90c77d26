package jelly

import (
	"fmt"
	"strconv"
)

// Scene is an ordered set of bands built for one viewport size. Bands paint
// back to front in slice order. A Scene is never resized; build a new one
// with Regenerate instead.
type Scene struct {
	bands   []*Band
	width   float64
	height  float64
	spacing float64
}

// Regenerate builds a fresh Scene for a width x height viewport. Band i spans
// the full width plus the overlap margin, starts at i*height/BandCount and is
// BleedHeight taller than its slot so neighbors overlap.
func Regenerate(cfg Config, width, height float64) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := cfg.Layout
	s := &Scene{
		bands:   make([]*Band, 0, l.BandCount),
		width:   width,
		height:  height,
		spacing: l.spacingFor(width),
	}
	for i := range l.BandCount {
		c := l.colorFor(i)
		b, err := NewBand("band"+strconv.Itoa(i), l.bandBox(i, width, height), s.spacing, c, c)
		if err != nil {
			return nil, fmt.Errorf("regenerate band %d: %w", i, err)
		}
		s.bands = append(s.bands, b)
	}
	return s, nil
}

// Bands returns the scene's bands in paint order. The returned slice MUST NOT
// be mutated.
func (s *Scene) Bands() []*Band {
	return s.bands
}

// AddBand appends a band on top of the paint order.
func (s *Scene) AddBand(b *Band) {
	s.bands = append(s.bands, b)
}

// Size returns the viewport the scene was built for.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Spacing returns the lattice spacing used for every band.
func (s *Scene) Spacing() float64 {
	return s.spacing
}

// Step advances every band by one physics step.
func (s *Scene) Step(cfg PhysicsConfig) {
	for _, b := range s.bands {
		b.Step(cfg)
	}
}

// ApplyPointerForce pushes every point of every band that lies within radius
// of (x, y). Returns the number of points pushed.
func (s *Scene) ApplyPointerForce(x, y, radius, force float64) int {
	n := 0
	for _, b := range s.bands {
		n += InfluenceRing(b.ring, x, y, radius, force)
	}
	return n
}

// PointCount returns the total number of point-masses.
func (s *Scene) PointCount() int {
	n := 0
	for _, b := range s.bands {
		n += b.ring.Len()
	}
	return n
}

// KineticEnergy sums the kinetic energy of every band.
func (s *Scene) KineticEnergy() float64 {
	var e float64
	for _, b := range s.bands {
		e += b.ring.KineticEnergy()
	}
	return e
}

// retire marks every band as belonging to a replaced scene.
func (s *Scene) retire() {
	for _, b := range s.bands {
		b.retired = true
	}
}
