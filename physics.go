package jelly

import "math"

// Integrate advances every point-mass of r by one step. For each point, in
// order: velocity decay, per-axis speed clamp, restoring pull toward the rest
// position, then position += velocity.
func Integrate(r *Ring, cfg PhysicsConfig) {
	pts := r.points
	maxSpeed := cfg.MaxSpeed
	for i := range pts {
		p := &pts[i]

		p.Velocity.X *= cfg.Decay
		p.Velocity.Y *= cfg.Decay

		if p.Velocity.X > maxSpeed || p.Velocity.X < -maxSpeed {
			p.Velocity.X = math.Copysign(maxSpeed, p.Velocity.X)
		}
		if p.Velocity.Y > maxSpeed || p.Velocity.Y < -maxSpeed {
			p.Velocity.Y = math.Copysign(maxSpeed, p.Velocity.Y)
		}

		p.Velocity.X -= (p.Position.X - p.rest.X) * cfg.RestoringPower
		p.Velocity.Y -= (p.Position.Y - p.rest.Y) * cfg.RestoringPower

		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
	}
}

// neighborThreshold is the squared separation above which two neighbors are
// pulled together. It is MaxSpeed^4 compared against dist^2, a tuned value
// rather than a physical rest length.
func neighborThreshold(cfg PhysicsConfig) float64 {
	ms2 := cfg.MaxSpeed * cfg.MaxSpeed
	return ms2 * ms2
}

// EnforceNeighborSpacing pulls over-stretched neighbors toward each other.
// Pairs are visited in sequence order and corrected in place, so later pairs
// see the velocity changes of earlier ones. The correction is attractive only
// and equal and opposite within each pair.
func EnforceNeighborSpacing(r *Ring, cfg PhysicsConfig) {
	threshold := neighborThreshold(cfg)
	pts := r.points
	r.EachPair(func(prev, curr int) {
		a := &pts[prev]
		b := &pts[curr]
		dx := a.Position.X - b.Position.X
		dy := a.Position.Y - b.Position.Y
		d2 := dx*dx + dy*dy
		if d2 <= threshold {
			return
		}
		dist := math.Sqrt(d2)
		if dist == 0 {
			return
		}
		ix := cfg.Entropy * dx / dist
		iy := cfg.Entropy * dy / dist
		b.Velocity.X += ix
		b.Velocity.Y += iy
		a.Velocity.X -= ix
		a.Velocity.Y -= iy
	})
}

// Step runs Integrate followed by EnforceNeighborSpacing.
func Step(r *Ring, cfg PhysicsConfig) {
	Integrate(r, cfg)
	EnforceNeighborSpacing(r, cfg)
}

// InfluenceRing pushes every point within radius of (x, y) away from the
// pointer. The kick is the raw offset times force, so points near the edge of
// the radius move more than points right under the pointer. Returns the
// number of points pushed.
func InfluenceRing(r *Ring, x, y, radius, force float64) int {
	pts := r.points
	n := 0
	for i := range pts {
		p := &pts[i]
		dx := x - p.Position.X
		dy := y - p.Position.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist >= radius || dist == 0 {
			continue
		}
		p.Velocity.X -= dx * force
		p.Velocity.Y -= dy * force
		n++
	}
	return n
}
