// Package ecs provides ECS adapters for jelly's simulation events.
//
// The primary adapter is [NewDonburiSink], which forwards jelly events
// (pointer down/up, resize, regenerate) into a [Donburi] world as typed
// events. Subscribe to [SimulationEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sim.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
