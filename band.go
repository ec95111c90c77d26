package jelly

// Band is one deformable jelly shape: a ring of point-masses plus the colors
// it is painted with. Colors and Alpha are presentation only and never feed
// back into the physics.
type Band struct {
	Name   string
	Fill   Color
	Stroke Color
	// Origin is the box the ring was generated from.
	Origin Rect
	// Alpha multiplies Fill and Stroke alpha when drawn.
	Alpha float64

	ring    *Ring
	segBuf  []CurveSegment
	retired bool
}

// NewBand generates a closed rectangle ring for origin at the given spacing.
func NewBand(name string, origin Rect, spacing float64, fill, stroke Color) (*Band, error) {
	ring, err := GenerateRectangleRing(origin.X, origin.Y, origin.Width, origin.Height, spacing)
	if err != nil {
		return nil, err
	}
	return &Band{
		Name:   name,
		Fill:   fill,
		Stroke: stroke,
		Origin: origin,
		Alpha:  1,
		ring:   ring,
	}, nil
}

// NewChainBand wraps an open chain from `from` to `to` as a stroke-only band.
func NewChainBand(name string, from, to Vec2, spacing float64, stroke Color) (*Band, error) {
	ring, err := GenerateChain(from, to, spacing)
	if err != nil {
		return nil, err
	}
	return &Band{
		Name:   name,
		Stroke: stroke,
		Origin: ring.Bounds(),
		Alpha:  1,
		ring:   ring,
	}, nil
}

// Ring returns the band's point-masses.
func (b *Band) Ring() *Ring {
	return b.ring
}

// Step integrates the band and runs the neighbor pass.
func (b *Band) Step(cfg PhysicsConfig) {
	Step(b.ring, cfg)
}

// Curve samples the band's outline into an internal buffer. The returned
// segments are only valid until the next call.
func (b *Band) Curve(mode CurveMode) Curve {
	c := AppendCurve(b.segBuf, b.ring, mode)
	b.segBuf = c.Segments
	return c
}

// Retired reports whether the band belonged to a scene that has since been
// replaced. Retired bands are no longer stepped or drawn.
func (b *Band) Retired() bool {
	return b.retired
}
