// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	EpisodeStarted Type = "episode_started"
	EpisodeEnded   Type = "episode_ended"
	SiteSelected   Type = "site_selected"
	PhaseChanged   Type = "phase_changed"
	FuelExhausted  Type = "fuel_exhausted"
	Touchdown      Type = "touchdown"
	Crash          Type = "crash"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// LanderEvent contains information about lander-related events
// (touchdown, crash, fuel exhaustion).
type LanderEvent struct {
	BaseEvent
	LanderID string
	Tick     uint64
	X        float64
	VX       float64
	VY       float64
}

// NewLanderEvent creates a new lander event
func NewLanderEvent(eventType Type, source interface{}, landerID string, tick uint64, x, vx, vy float64) *LanderEvent {
	return &LanderEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		LanderID: landerID,
		Tick:     tick,
		X:        x,
		VX:       vx,
		VY:       vy,
	}
}

// PhaseEvent reports an autopilot phase transition.
type PhaseEvent struct {
	BaseEvent
	LanderID string
	Tick     uint64
	From     string
	To       string
}

// NewPhaseEvent creates a new phase transition event
func NewPhaseEvent(source interface{}, landerID string, tick uint64, from, to string) *PhaseEvent {
	return &PhaseEvent{
		BaseEvent: BaseEvent{
			EventType: PhaseChanged,
			Source:    source,
		},
		LanderID: landerID,
		Tick:     tick,
		From:     from,
		To:       to,
	}
}

// SiteEvent reports the landing site chosen by an autopilot.
type SiteEvent struct {
	BaseEvent
	LanderID string
	Tick     uint64
	Site     int
}

// NewSiteEvent creates a new site selection event
func NewSiteEvent(source interface{}, landerID string, tick uint64, site int) *SiteEvent {
	return &SiteEvent{
		BaseEvent: BaseEvent{
			EventType: SiteSelected,
			Source:    source,
		},
		LanderID: landerID,
		Tick:     tick,
		Site:     site,
	}
}

// EpisodeEvent marks the start or end of an episode.
type EpisodeEvent struct {
	BaseEvent
	Seed uint64
	Tick uint64
}

// NewEpisodeEvent creates a new episode lifecycle event
func NewEpisodeEvent(eventType Type, source interface{}, seed, tick uint64) *EpisodeEvent {
	return &EpisodeEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Seed: seed,
		Tick: tick,
	}
}
