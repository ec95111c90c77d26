package jelly

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerSample is one frame of pointer input, from a device or injected.
type pointerSample struct {
	x, y    float64
	pressed bool
}

// pointerInput merges mouse and touch into the single pointer the
// simulation understands. The first touch that went down drives the pointer
// until it lifts; otherwise the mouse does.
type pointerInput struct {
	touchIDs []ebiten.TouchID
	tracking ebiten.TouchID
	touching bool
	last     pointerSample
}

// read samples the current device state.
func (in *pointerInput) read() pointerSample {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if s, ok := in.readTouch(); ok {
		in.last = s
		return s
	}

	mx, my := ebiten.CursorPosition()
	s := pointerSample{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	in.last = s
	return s
}

// readTouch follows the tracked touch, or picks up a new one.
func (in *pointerInput) readTouch() (pointerSample, bool) {
	if len(in.touchIDs) == 0 {
		if in.touching {
			// The tracked touch lifted this frame: release where it was.
			in.touching = false
			return pointerSample{x: in.last.x, y: in.last.y}, true
		}
		return pointerSample{}, false
	}

	tid := in.touchIDs[0]
	if in.touching {
		for _, id := range in.touchIDs {
			if id == in.tracking {
				tid = id
				break
			}
		}
	}
	in.tracking = tid
	in.touching = true

	tx, ty := ebiten.TouchPosition(tid)
	return pointerSample{x: float64(tx), y: float64(ty), pressed: true}, true
}

// pointerMoved reports whether two samples differ in position by more than
// a pixel. Used to decide when the user is idle.
func pointerMoved(a, b pointerSample) bool {
	return math.Abs(a.x-b.x) > 1 || math.Abs(a.y-b.y) > 1
}
