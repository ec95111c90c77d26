package jelly

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// White pixel singleton. Rendering happens on the game goroutine only.

var whiteImage *ebiten.Image
var whiteSubImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized white source region for
// untextured triangles. The 1x1 region is cut from the middle of a 3x3 image
// so linear filtering never samples a transparent edge.
func ensureWhitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// appendCurvePath traces c into p: move to Start, one quadratic per segment,
// and a closing edge when the curve is closed.
func appendCurvePath(p *vector.Path, c Curve) {
	p.MoveTo(float32(c.Start.X), float32(c.Start.Y))
	for _, seg := range c.Segments {
		p.QuadTo(
			float32(seg.Control.X), float32(seg.Control.Y),
			float32(seg.End.X), float32(seg.End.Y),
		)
	}
	if c.Closed {
		p.Close()
	}
}

// tintVertices maps vertices onto the white pixel and applies a
// premultiplied solid color.
func tintVertices(vs []ebiten.Vertex, c Color) {
	r := float32(clamp01(c.R))
	g := float32(clamp01(c.G))
	b := float32(clamp01(c.B))
	a := float32(clamp01(c.A))
	for i := range vs {
		v := &vs[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = r * a
		v.ColorG = g * a
		v.ColorB = b * a
		v.ColorA = a
	}
}

// computeVertexAABB scans DstX/DstY of the given vertices and returns their
// axis-aligned bounding box.
func computeVertexAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
