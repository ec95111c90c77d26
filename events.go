package jelly

// EventType identifies a kind of simulation event.
type EventType uint8

const (
	EventPointerDown EventType = iota // pointer pressed; X/Y hold the last known position
	EventPointerUp                    // pointer released
	EventResize                       // viewport changed; Width/Height hold the new size
	EventRegenerate                   // a new scene replaced the old one
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventResize:
		return "resize"
	case EventRegenerate:
		return "regenerate"
	default:
		return "unknown"
	}
}

// Event carries simulation state changes to an EventSink.
type Event struct {
	Type   EventType
	Tick   uint64
	X, Y   float64
	Width  float64
	Height float64
	// Bands and Points describe the scene after EventRegenerate.
	Bands  int
	Points int
}

// EventSink is the interface for optional event consumers such as an ECS.
// When set on a Simulation, pointer and resize events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}
