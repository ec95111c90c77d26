package jelly

import (
	"github.com/charmbracelet/harmonica"
)

const (
	defaultIdleTicks    = 300 // five seconds at 60 TPS
	autopilotWaypoints  = 6
	autopilotArriveDist = 6.0
)

// Autopilot drives a virtual pointer through the bands while the user is
// idle, so an unattended window keeps wobbling. The pointer chases each
// waypoint on a critically-damped-ish harmonica spring.
type Autopilot struct {
	// IdleTicks is how many ticks without user input pass before the
	// autopilot takes over.
	IdleTicks int

	spring    harmonica.Spring
	x, vx     float64
	y, vy     float64
	idle      int
	target    int
	waypoints []Vec2
}

// NewAutopilot creates an autopilot for a width x height viewport ticking at
// tickRate updates per second.
func NewAutopilot(tickRate int, width, height float64) *Autopilot {
	a := &Autopilot{
		IdleTicks: defaultIdleTicks,
		spring:    harmonica.NewSpring(harmonica.FPS(tickRate), 4.0, 0.9),
	}
	a.Resize(width, height)
	a.x, a.y = a.waypoints[0].X, a.waypoints[0].Y
	return a
}

// Resize lays out a zigzag of waypoints across the viewport.
func (a *Autopilot) Resize(width, height float64) {
	a.waypoints = a.waypoints[:0]
	for i := range autopilotWaypoints {
		t := float64(i) / float64(autopilotWaypoints-1)
		y := 0.3
		if i%2 == 1 {
			y = 0.7
		}
		a.waypoints = append(a.waypoints, Vec2{X: width * (0.1 + 0.8*t), Y: height * y})
	}
	a.target %= len(a.waypoints)
}

// Waypoints returns the current waypoint list. The returned slice MUST NOT
// be mutated.
func (a *Autopilot) Waypoints() []Vec2 {
	return a.waypoints
}

// Engaged reports whether the autopilot currently owns the pointer.
func (a *Autopilot) Engaged() bool {
	return a.idle >= a.IdleTicks
}

// Update advances the autopilot one tick. userActive reports whether the
// user pressed or moved the pointer this tick; any user activity hands the
// pointer back and restarts the idle countdown from the user's position.
// Returns the virtual pointer and whether it should be treated as pressed.
func (a *Autopilot) Update(userActive bool, userX, userY float64) (x, y float64, pressed bool) {
	if userActive {
		a.idle = 0
		a.x, a.y = userX, userY
		a.vx, a.vy = 0, 0
		return userX, userY, false
	}
	if a.idle < a.IdleTicks {
		a.idle++
		return userX, userY, false
	}

	wp := a.waypoints[a.target]
	a.x, a.vx = a.spring.Update(a.x, a.vx, wp.X)
	a.y, a.vy = a.spring.Update(a.y, a.vy, wp.Y)
	if d := (Vec2{X: a.x, Y: a.y}).Sub(wp); d.LenSq() < autopilotArriveDist*autopilotArriveDist {
		a.target = (a.target + 1) % len(a.waypoints)
	}
	return a.x, a.y, true
}
