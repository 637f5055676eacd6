// Package input is the input-state layer for [Ebitengine] games built on willow.
//
// It turns a stream of raw, platform-agnostic events (keys, characters, mouse
// motion, buttons, wheel and touch contacts) into a per-frame snapshot that the
// game polls, and it keeps a replayable copy of the raw stream for secondary
// consumers such as embedded UI toolkits.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop that feeds the [Context] from Ebitengine every tick:
//
//	in := input.NewContext()
//	input.Run(in, func() error {
//		if in.IsKeyPressed(input.KeySpace) {
//			jump()
//		}
//		return nil
//	}, nil, input.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, call [Context.Update] from your own [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.in.Update(g.src)
//		return nil
//	}
//
// # Frames
//
// Pressed and released sets, the wheel delta and the character stacks are
// frame-scoped: they hold only transitions seen since the last
// [Context.BeginFrame]. Down sets persist for as long as the key or button is
// held.
//
// # Touch simulation
//
// Real touches raise mouse events by default ([Context.SetSimulateMouseWithTouch]).
// The opposite direction, [Context.SetSimulateTouchWithMouse], fabricates a
// touch contact with the reserved id [MouseTouchID] from the left mouse button.
// The synthetic contact is reconciled lazily, each time touches are queried.
//
// # Subscribers
//
// Consumers that need the raw stream call [Context.RegisterSubscriber] once and
// [Context.Replay] every frame. Each replay delivers the events recorded since
// the previous replay, in arrival order, and empties the subscriber's log.
// Adapters for Donburi (willow-input/ecs) and Prometheus (willow-input/prom)
// are built on this API.
//
// A Context is not safe for concurrent use. It is meant to be driven from the
// goroutine that runs the game loop.
//
// [Ebitengine]: https://ebitengine.org
package input
