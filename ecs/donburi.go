package ecs

import (
	"github.com/phanxgames/jelly"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimulationEventType is the Donburi event type for jelly simulation events.
var SimulationEventType = events.NewEventType[jelly.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SimulationEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) jelly.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event jelly.Event) {
	SimulationEventType.Publish(s.world, event)
}
