package ecs

import (
	"testing"

	"github.com/phanxgames/marionette"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitPlayback(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []marionette.PlaybackEvent
	PlaybackEventType.Subscribe(world, func(w donburi.World, e marionette.PlaybackEvent) {
		received = append(received, e)
	})

	sink.EmitPlayback(marionette.PlaybackEvent{
		RigID: "hero",
		Clip:  "wave_next_idle",
		Base:  "wave",
		Track: 1,
	})
	sink.EmitPlayback(marionette.PlaybackEvent{
		RigID: "hero",
		Clip:  "idle",
		Base:  "idle",
	})

	// Events are queued until processed.
	PlaybackEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.RigID != "hero" || e0.Base != "wave" || e0.Track != 1 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Clip != "idle" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsPlaybackSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink marionette.PlaybackSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	PlaybackEventType.Subscribe(world, func(w donburi.World, e marionette.PlaybackEvent) {
		count1++
	})
	PlaybackEventType.Subscribe(world, func(w donburi.World, e marionette.PlaybackEvent) {
		count2++
	})

	sink.EmitPlayback(marionette.PlaybackEvent{RigID: "hero", Base: "walk"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
