package jelly

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Band simultaneously.
// Create one via the convenience constructors (TweenAlpha, TweenFill,
// TweenStroke) and call Update(dt) each tick. If the target band is retired
// by a regeneration, the group stops immediately.
//
// Simulation owns the groups it creates; standalone callers update their own.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Band
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target band has been retired, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.Retired() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenAlpha creates a TweenGroup that animates band.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(band *Band, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: band}
	g.tweens[0] = gween.New(float32(band.Alpha), float32(to), duration, fn)
	g.fields[0] = &band.Alpha
	return g
}

// TweenFill creates a TweenGroup that animates all four components of
// band.Fill to the target color.
func TweenFill(band *Band, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenColor(band, &band.Fill, to, duration, fn)
}

// TweenStroke creates a TweenGroup that animates all four components of
// band.Stroke to the target color.
func TweenStroke(band *Band, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenColor(band, &band.Stroke, to, duration, fn)
}

func tweenColor(band *Band, c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: band}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
