package jelly

import (
	"math"
	"slices"
)

// Span is a horizontal run [X0, X1) on one scanline.
type Span struct {
	X0, X1 float64
}

// Rasterizer turns drawable curves into per-row spans for hosts that paint
// cells rather than pixels, such as terminals. Polylines and crossing buffers
// are reused between calls.
type Rasterizer struct {
	// Steps is the number of samples per quadratic segment. Zero means 4.
	Steps int

	poly     []Vec2
	crossing []float64
}

// Polyline flattens c into the rasterizer's reusable buffer.
func (r *Rasterizer) Polyline(c Curve) []Vec2 {
	steps := r.Steps
	if steps <= 0 {
		steps = 4
	}
	r.poly = Flatten(c, steps, r.poly[:0])
	return r.poly
}

// Spans appends the even-odd interior spans of the closed polygon poly on
// the horizontal line at y.
func (r *Rasterizer) Spans(poly []Vec2, y float64, dst []Span) []Span {
	r.crossing = r.crossing[:0]
	n := len(poly)
	if n < 3 {
		return dst
	}
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := poly[j], poly[i]
		j = i
		// Half-open rule: count an edge when y is in [minY, maxY).
		if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
			t := (y - a.Y) / (b.Y - a.Y)
			r.crossing = append(r.crossing, a.X+t*(b.X-a.X))
		}
	}
	slices.Sort(r.crossing)
	for k := 0; k+1 < len(r.crossing); k += 2 {
		dst = append(dst, Span{X0: r.crossing[k], X1: r.crossing[k+1]})
	}
	return dst
}

// Cells calls fn for every cell (col, row) whose center lies inside the
// closed polygon poly, for rows [0, rows) and columns [0, cols). cellW and
// cellH are the cell size in simulation units.
func (r *Rasterizer) Cells(poly []Vec2, cols, rows int, cellW, cellH float64, fn func(col, row int)) {
	var spans []Span
	for row := range rows {
		cy := (float64(row) + 0.5) * cellH
		spans = r.Spans(poly, cy, spans[:0])
		for _, s := range spans {
			c0 := max(0, int(math.Ceil(s.X0/cellW-0.5)))
			c1 := min(cols, int(math.Ceil(s.X1/cellW-0.5)))
			for col := c0; col < c1; col++ {
				fn(col, row)
			}
		}
	}
}
