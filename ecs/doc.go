// Package ecs provides ECS adapters for willow-input's raw event stream.
//
// The primary adapter is [Bridge], which replays the events recorded by an
// [input.Context] into a [Donburi] world as typed events. Subscribe to
// [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	bridge := ecs.NewBridge(in, world)
//
//	// each frame
//	in.Update(src)
//	bridge.Update()
//	ecs.InputEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
