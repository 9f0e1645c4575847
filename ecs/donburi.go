package ecs

import (
	"github.com/phanxgames/marionette"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlaybackEventType is the Donburi event type for marionette clip
// completions. Subscribe to this in your ECS systems to react when a clip
// finishes naturally.
var PlaybackEventType = events.NewEventType[marionette.PlaybackEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a PlaybackSink backed by a Donburi world.
// Completion events are published to PlaybackEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) marionette.PlaybackSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitPlayback(event marionette.PlaybackEvent) {
	PlaybackEventType.Publish(s.world, event)
}
