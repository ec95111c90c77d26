package jelly

import (
	"errors"
	"fmt"
	"math"
)

// MaxLatticePoints caps the size of a generated ring. Tessellated paths are
// indexed with uint16, so larger rings cannot be drawn in one call.
const MaxLatticePoints = 1 << 13

// ErrInvalidLattice is matched by every *InvalidLatticeError via errors.Is.
var ErrInvalidLattice = errors.New("invalid lattice")

// InvalidLatticeError reports a degenerate lattice request.
type InvalidLatticeError struct {
	Box     Rect
	Spacing float64
	Points  int // points the walk produced or would produce; 0 if not walked
	Reason  string
}

func (e *InvalidLatticeError) Error() string {
	return fmt.Sprintf("invalid lattice (%gx%g at %g,%g, spacing %g, %d points): %s",
		e.Box.Width, e.Box.Height, e.Box.X, e.Box.Y, e.Spacing, e.Points, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidLattice) succeed.
func (e *InvalidLatticeError) Is(target error) bool {
	return target == ErrInvalidLattice
}

// clampCount converts a point estimate for error reporting without
// overflowing int.
func clampCount(est float64) int {
	if est >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(est)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GenerateRectangleRing walks the outline of the rectangle clockwise (in
// screen coordinates) starting at (x, y), emitting one resting point-mass per
// spacing step. The cursor is advanced by repeated addition and carries over
// from one side to the next, so the last step of a side overshoots the corner
// whenever spacing does not divide the side length.
func GenerateRectangleRing(x, y, width, height, spacing float64) (*Ring, error) {
	box := Rect{X: x, Y: y, Width: width, Height: height}
	fail := func(points int, reason string) (*Ring, error) {
		return nil, &InvalidLatticeError{Box: box, Spacing: spacing, Points: points, Reason: reason}
	}

	switch {
	case !finite(x) || !finite(y):
		return fail(0, "origin is not finite")
	case !finite(width) || !finite(height) || width <= 0 || height <= 0:
		return fail(0, "width and height must be positive")
	case !finite(spacing) || spacing <= 0:
		return fail(0, "spacing must be positive")
	case spacing > width || spacing > height:
		return fail(0, "spacing exceeds a side")
	}

	// A cursor this far from zero cannot move by spacing.
	if x+spacing == x || y+spacing == y || (x+width)-spacing == x+width || (y+height)-spacing == y+height {
		return fail(0, "spacing below float precision at origin")
	}

	est := 2*(math.Ceil(width/spacing)+math.Ceil(height/spacing)) + 8
	if est > MaxLatticePoints {
		return fail(clampCount(est), "too many points")
	}
	estimate := int(est)

	pts := make([]PointMass, 0, estimate)
	px, py := x, y
	for px < x+width && len(pts) <= estimate {
		pts = append(pts, NewPointMass(px, py))
		px += spacing
	}
	for py < y+height && len(pts) <= estimate {
		pts = append(pts, NewPointMass(px, py))
		py += spacing
	}
	for px > x && len(pts) <= estimate {
		pts = append(pts, NewPointMass(px, py))
		px -= spacing
	}
	for py > y && len(pts) <= estimate {
		pts = append(pts, NewPointMass(px, py))
		py -= spacing
	}
	if len(pts) > estimate {
		return fail(len(pts), "walk did not close")
	}

	if len(pts) < 3 {
		return fail(len(pts), "fewer than 3 points")
	}
	return NewRing(pts, true), nil
}

// GenerateChain builds an open chain from `from` toward `to`, one point every
// spacing units, finishing with a point exactly at `to`.
func GenerateChain(from, to Vec2, spacing float64) (*Ring, error) {
	d := to.Sub(from)
	length := math.Sqrt(d.LenSq())
	box := Rect{
		X: math.Min(from.X, to.X), Y: math.Min(from.Y, to.Y),
		Width: math.Abs(d.X), Height: math.Abs(d.Y),
	}
	fail := func(points int, reason string) (*Ring, error) {
		return nil, &InvalidLatticeError{Box: box, Spacing: spacing, Points: points, Reason: reason}
	}

	switch {
	case !finite(from.X) || !finite(from.Y) || !finite(to.X) || !finite(to.Y):
		return fail(0, "endpoints are not finite")
	case !finite(spacing) || spacing <= 0:
		return fail(0, "spacing must be positive")
	case length == 0:
		return fail(0, "endpoints coincide")
	}

	est := math.Ceil(length/spacing) + 2
	if est > MaxLatticePoints {
		return fail(clampCount(est), "too many points")
	}
	estimate := int(est)

	ux, uy := d.X/length, d.Y/length
	pts := make([]PointMass, 0, estimate)
	for t := 0.0; t < length && len(pts) <= estimate; t += spacing {
		pts = append(pts, NewPointMass(from.X+ux*t, from.Y+uy*t))
	}
	// Accumulated rounding can leave the last step a hair short of `to`.
	if last := pts[len(pts)-1].Position; len(pts) > 1 && to.Sub(last).LenSq() < 1e-18*spacing*spacing {
		pts = pts[:len(pts)-1]
	}
	pts = append(pts, NewPointMass(to.X, to.Y))

	if len(pts) > estimate+1 {
		return fail(len(pts), "walk did not reach the end")
	}
	if len(pts) < 3 {
		return fail(len(pts), "fewer than 3 points")
	}
	return NewRing(pts, false), nil
}
