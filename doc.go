// Package jelly is an interactive soft-body "jelly" toy for [Ebitengine].
//
// The screen is split into horizontal bands. Each band is a closed ring of
// point masses sampled along a rectangle's perimeter. Every tick the points
// decay their velocity, spring back toward their rest position and pull on
// their ring neighbors when stretched too far. Holding the pointer down
// pushes nearby points away, and the outline of each ring is drawn as a
// smooth closed curve through the midpoints of its edges.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, err := jelly.ConfigFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim, err := jelly.NewSimulation(cfg, 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	jelly.Run(sim, jelly.RunConfig{Title: "Jelly", Autopilot: true})
//
// # Headless use
//
// [Simulation] has no dependency on a window. Feed it resize and pointer
// edges with [Simulation.OnResize], [Simulation.OnPointerDown] and
// [Simulation.OnPointerUp], advance it with [Simulation.Tick] and read back
// outlines with [Simulation.DrawableBands]. The lower-level pieces are
// exported too: [GenerateRectangleRing], [Step], [InfluenceRing] and
// [SampleCurve] operate on a single [Ring].
//
// Hosts that paint cells rather than pixels can use [Rasterizer] to turn a
// curve into per-row spans.
//
// # Configuration
//
// [DefaultConfig] reproduces the classic tuning. [LoadConfig] overlays a
// JSON document on the defaults and [ConfigFromEnv] reads JELLY_* variables
// from the process environment and optional .env files (via [godotenv]).
//
// # Events
//
// Pointer edges, resizes and regenerations are reported to an [EventSink].
// The jelly/ecs module bridges them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [godotenv]: https://github.com/joho/godotenv
// [Donburi]: https://github.com/yohamta/donburi
package jelly
