// pkg/entity/lander.go
package entity

import (
	"github.com/jl-wynen/lunarlander-bot/pkg/physics"
)

// Status describes whether a lander is still flying or already down.
type Status int

const (
	StatusFlying Status = iota
	StatusLanded
	StatusCrashed
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case StatusFlying:
		return "flying"
	case StatusLanded:
		return "landed"
	case StatusCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Lander represents one craft in the simulation
type Lander struct {
	ID string
	physics.MovementState
	Status    Status
	Thrusting bool // whether the main engine fired last tick
}

// NewLander creates a flying lander at the given position with a full
// fuel load.
func NewLander(id string, position physics.Vector2D, fuel float64) *Lander {
	return &Lander{
		ID: id,
		MovementState: physics.MovementState{
			Position: position,
			Fuel:     fuel,
		},
		Status: StatusFlying,
	}
}

// Asteroid is a transient obstacle drifting through the play area. It
// is reported to the bots but does not collide with landers.
type Asteroid struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// Update advances the asteroid by one tick
func (a *Asteroid) Update(deltaTime float64) {
	a.Position = a.Position.Add(a.Velocity.Scale(deltaTime))
}
