// pkg/event/event_test.go
package event

import (
	"testing"
)

func TestNewEventBus_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()
	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
}

func TestBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewEventBus()

	var received []Event
	bus.Subscribe(Touchdown, func(e Event) {
		received = append(received, e)
	})

	evt := NewLanderEvent(Touchdown, nil, "lander-1", 42, 960, 0.5, -1.2)
	bus.Publish(evt)

	if len(received) != 1 {
		t.Fatalf("received %d events, expected 1", len(received))
	}
	le, ok := received[0].(*LanderEvent)
	if !ok {
		t.Fatalf("received event has type %T, expected *LanderEvent", received[0])
	}
	if le.LanderID != "lander-1" || le.Tick != 42 {
		t.Errorf("event fields = %+v", le)
	}
}

func TestBus_PublishIgnoresUnsubscribedTypes(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.Subscribe(Crash, func(Event) { called = true })

	bus.Publish(NewLanderEvent(Touchdown, nil, "lander-1", 1, 0, 0, 0))
	if called {
		t.Error("crash handler invoked for a touchdown event")
	}
}

func TestBus_MultipleHandlersAllRun(t *testing.T) {
	bus := NewEventBus()

	count := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(PhaseChanged, func(Event) { count++ })
	}

	bus.Publish(NewPhaseEvent(nil, "lander-1", 7, "initial_manoeuvre", "search_landing_site"))
	if count != 3 {
		t.Errorf("handlers run = %d, expected 3", count)
	}
}

func TestEventAccessors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected Type
	}{
		{name: "lander_event", event: NewLanderEvent(FuelExhausted, "src", "l", 1, 0, 0, 0), expected: FuelExhausted},
		{name: "phase_event", event: NewPhaseEvent("src", "l", 1, "a", "b"), expected: PhaseChanged},
		{name: "site_event", event: NewSiteEvent("src", "l", 1, 30), expected: SiteSelected},
		{name: "episode_event", event: NewEpisodeEvent(EpisodeStarted, "src", 1, 0), expected: EpisodeStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.event.GetType() != tt.expected {
				t.Errorf("GetType() = %v, expected %v", tt.event.GetType(), tt.expected)
			}
			if tt.event.GetSource() != "src" {
				t.Errorf("GetSource() = %v, expected src", tt.event.GetSource())
			}
		})
	}
}
