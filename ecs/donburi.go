package ecs

import (
	input "github.com/phanxgames/willow-input"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for raw input events.
// Subscribe to this in your ECS systems to receive keyboard, mouse and touch
// events in arrival order.
var InputEventType = events.NewEventType[input.Event]()

type donburiHandler struct {
	world donburi.World
}

// NewDonburiHandler creates an input.Handler that publishes every event it
// receives to InputEventType. Events are queued and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiHandler(world donburi.World) input.Handler {
	return &donburiHandler{world: world}
}

func (h *donburiHandler) HandleEvent(ev input.Event) {
	InputEventType.Publish(h.world, ev)
}

// Bridge forwards the raw event stream of an input.Context into a Donburi
// world. It owns one subscriber on the context.
type Bridge struct {
	ctx     *input.Context
	id      input.SubscriberID
	handler input.Handler
}

// NewBridge registers a subscriber on ctx. Events dispatched from now on are
// published to world on each call to Update.
func NewBridge(ctx *input.Context, world donburi.World) *Bridge {
	return &Bridge{
		ctx:     ctx,
		id:      ctx.RegisterSubscriber(),
		handler: NewDonburiHandler(world),
	}
}

// Update publishes the events recorded since the previous call. Call it once
// per frame, after the context has been updated and before ProcessEvents.
func (b *Bridge) Update() error {
	return b.ctx.Replay(b.id, b.handler)
}

// SubscriberID returns the context subscriber owned by the bridge.
func (b *Bridge) SubscriberID() input.SubscriberID {
	return b.id
}
