package jelly

// PointMass is a simulated particle. Its rest position is fixed at generation
// time and anchors the restoring force.
type PointMass struct {
	Position Vec2
	Velocity Vec2
	rest     Vec2
}

// NewPointMass creates a point at rest at (x, y).
func NewPointMass(x, y float64) PointMass {
	p := Vec2{X: x, Y: y}
	return PointMass{Position: p, rest: p}
}

// Rest returns the undeformed position of the point.
func (p *PointMass) Rest() Vec2 {
	return p.rest
}

// Displacement returns Position - Rest.
func (p *PointMass) Displacement() Vec2 {
	return p.Position.Sub(p.rest)
}

// Ring is a fixed-size ordered sequence of point-masses. A closed ring treats
// the last point as adjacent to the first; an open chain does not.
//
// The length never changes after construction, so indices handed out by
// Wrap, Next and Prev stay valid for the ring's lifetime.
type Ring struct {
	points []PointMass
	closed bool
}

// NewRing wraps points as a ring. The slice is owned by the ring afterwards.
func NewRing(points []PointMass, closed bool) *Ring {
	return &Ring{points: points, closed: closed}
}

// Len returns the number of point-masses.
func (r *Ring) Len() int {
	return len(r.points)
}

// Closed reports whether the last point connects back to the first.
func (r *Ring) Closed() bool {
	return r.closed
}

// Points returns the backing slice. Elements may be mutated in place; the
// slice MUST NOT be resized.
func (r *Ring) Points() []PointMass {
	return r.points
}

// Wrap maps any integer index onto [0, Len) with modular arithmetic.
func (r *Ring) Wrap(i int) int {
	n := len(r.points)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the wrapped index after i.
func (r *Ring) Next(i int) int {
	return r.Wrap(i + 1)
}

// Prev returns the wrapped index before i.
func (r *Ring) Prev(i int) int {
	return r.Wrap(i - 1)
}

// At returns the point at the wrapped index i.
func (r *Ring) At(i int) *PointMass {
	return &r.points[r.Wrap(i)]
}

// EachPair calls fn for every adjacent (prev, curr) pair in sequence order.
// A closed ring starts with the wraparound pair (Len-1, 0); an open chain
// starts at (0, 1) and has no wraparound pair.
func (r *Ring) EachPair(fn func(prev, curr int)) {
	n := len(r.points)
	if n < 2 {
		return
	}
	start := 1
	if r.closed {
		start = 0
	}
	for i := start; i < n; i++ {
		fn(r.Prev(i), i)
	}
}

// Bounds returns the axis-aligned bounding box of the current positions.
func (r *Ring) Bounds() Rect {
	if len(r.points) == 0 {
		return Rect{}
	}
	minX := r.points[0].Position.X
	minY := r.points[0].Position.Y
	maxX, maxY := minX, minY
	for i := 1; i < len(r.points); i++ {
		p := r.points[i].Position
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// KineticEnergy returns the sum of squared speeds (unit mass per point).
func (r *Ring) KineticEnergy() float64 {
	var e float64
	for i := range r.points {
		e += r.points[i].Velocity.LenSq()
	}
	return e / 2
}
