package jelly

// CurveMode selects how a ring is turned into drawable segments.
type CurveMode uint8

const (
	// CurveRounded uses each point-mass as a quadratic Bézier control point
	// and passes through the midpoints between neighbors.
	CurveRounded CurveMode = iota
	// CurveStraight draws straight segments through every point-mass.
	CurveStraight
)

// String returns the mode name used in configuration files.
func (m CurveMode) String() string {
	switch m {
	case CurveRounded:
		return "rounded"
	case CurveStraight:
		return "straight"
	default:
		return "unknown"
	}
}

// CurveSegment is one quadratic segment: from the previous endpoint, bending
// toward Control, ending at End. Control == End draws a straight line.
type CurveSegment struct {
	Control Vec2
	End     Vec2
}

// Curve is the drawable outline of a ring. Renderers move to Start, draw a
// quadratic to each segment in order, and close the path if Closed is set.
//
// A closed rounded curve starts at the midpoint of the ring's last and first
// points, which is also the End of its final segment. Renderers must move to
// Start rather than to the first segment's End, or the outline gains a kink
// at the seam.
type Curve struct {
	Start    Vec2
	Segments []CurveSegment
	Closed   bool
}

// SampleCurve converts the current positions of r into a Curve. The result
// owns a freshly allocated segment slice.
func SampleCurve(r *Ring, mode CurveMode) Curve {
	return AppendCurve(nil, r, mode)
}

// AppendCurve is like SampleCurve but reuses dst's backing array.
func AppendCurve(dst []CurveSegment, r *Ring, mode CurveMode) Curve {
	dst = dst[:0]
	pts := r.points
	n := len(pts)
	c := Curve{Closed: r.closed}
	if n == 0 {
		c.Segments = dst
		return c
	}

	switch {
	case mode == CurveStraight && r.closed:
		c.Start = pts[n-1].Position
		for i := range pts {
			p := pts[i].Position
			dst = append(dst, CurveSegment{Control: p, End: p})
		}

	case mode == CurveStraight:
		c.Start = pts[0].Position
		for i := 1; i < n; i++ {
			p := pts[i].Position
			dst = append(dst, CurveSegment{Control: p, End: p})
		}

	case r.closed:
		// Start at the final segment's endpoint so the path closes smoothly.
		c.Start = pts[n-1].Position.Mid(pts[0].Position)
		for i := range pts {
			p := pts[i].Position
			dst = append(dst, CurveSegment{Control: p, End: p.Mid(pts[r.Next(i)].Position)})
		}

	default:
		c.Start = pts[0].Position
		for i := 1; i < n-1; i++ {
			p := pts[i].Position
			dst = append(dst, CurveSegment{Control: p, End: p.Mid(pts[i+1].Position)})
		}
		if n > 1 {
			last := pts[n-1].Position
			dst = append(dst, CurveSegment{Control: last, End: last})
		}
	}

	c.Segments = dst
	return c
}

// Flatten evaluates every segment of c at steps evenly spaced parameters and
// appends the resulting polyline (Start first) to dst. The result holds
// len(c.Segments)*steps + 1 points. steps < 1 is treated as 1.
func Flatten(c Curve, steps int, dst []Vec2) []Vec2 {
	if steps < 1 {
		steps = 1
	}
	dst = append(dst, c.Start)
	a := c.Start
	for _, seg := range c.Segments {
		ctl, b := seg.Control, seg.End
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			u := 1 - t
			dst = append(dst, Vec2{
				X: u*u*a.X + 2*u*t*ctl.X + t*t*b.X,
				Y: u*u*a.Y + 2*u*t*ctl.Y + t*t*b.Y,
			})
		}
		a = b
	}
	return dst
}
