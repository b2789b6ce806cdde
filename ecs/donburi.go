package ecs

import (
	"github.com/phanxgames/stage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for stage interaction events.
// Events are queued on publish; call ProcessEvents (or events.ProcessAllEvents)
// from a system to deliver them.
var InteractionEventType = events.NewEventType[stage.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) stage.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event stage.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
