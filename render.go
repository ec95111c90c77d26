package jelly

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer paints DrawableBands with Ebitengine's path tessellator. Vertex
// and index buffers grow to a high-water mark and are reused across frames.
type Renderer struct {
	// StrokeWidth is the outline width in pixels. Zero skips the stroke.
	StrokeWidth float64
	// AntiAlias enables anti-aliased triangle edges.
	AntiAlias bool

	vertices []ebiten.Vertex
	indices  []uint16
	// Culled counts bands skipped last frame because they were off screen.
	Culled int
}

// NewRenderer creates a renderer with the given stroke width.
func NewRenderer(strokeWidth float64) *Renderer {
	return &Renderer{StrokeWidth: strokeWidth, AntiAlias: true}
}

// Draw fills then strokes every band onto dst in slice order.
func (r *Renderer) Draw(dst *ebiten.Image, bands []DrawableBand) {
	b := dst.Bounds()
	view := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	white := ensureWhitePixel()
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: r.AntiAlias,
		FillRule:  ebiten.FillRuleNonZero,
	}

	r.Culled = 0
	for i := range bands {
		band := &bands[i]
		if band.Closed && band.Fill.A > 0 {
			r.vertices, r.indices = r.fill(band)
			if !computeVertexAABB(r.vertices).Intersects(view) {
				r.Culled++
				continue
			}
			dst.DrawTriangles(r.vertices, r.indices, white, op)
		}
		if r.StrokeWidth > 0 && band.Stroke.A > 0 {
			r.vertices, r.indices = r.stroke(band)
			if len(r.indices) > 0 {
				stroke := &ebiten.DrawTrianglesOptions{AntiAlias: r.AntiAlias}
				dst.DrawTriangles(r.vertices, r.indices, white, stroke)
			}
		}
	}
}

// fill tessellates the band's interior into the reused buffers.
func (r *Renderer) fill(band *DrawableBand) ([]ebiten.Vertex, []uint16) {
	var p vector.Path
	appendCurvePath(&p, band.Curve)
	vs, is := p.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	tintVertices(vs, band.Fill)
	return vs, is
}

// stroke tessellates the band's outline into the reused buffers.
func (r *Renderer) stroke(band *DrawableBand) ([]ebiten.Vertex, []uint16) {
	var p vector.Path
	appendCurvePath(&p, band.Curve)
	vs, is := p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
		Width:    float32(r.StrokeWidth),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	tintVertices(vs, band.Stroke)
	return vs, is
}
