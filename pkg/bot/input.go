// pkg/bot/input.go
package bot

import "github.com/jl-wynen/lunarlander-bot/pkg/terrain"

// PlayerState is the kinematic snapshot of one craft for a single tick.
// The controller only reads it; nothing from the snapshot survives the
// tick except values explicitly copied into controller-owned state.
type PlayerState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Heading float64 `json:"heading"` // degrees, 0 = upright, positive counter-clockwise
	Fuel    float64 `json:"fuel"`
}

// AsteroidState describes a transient obstacle. Accepted for interface
// compatibility with the simulation; the autopilot does not react to
// asteroids yet.
type AsteroidState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

// TickInput is everything the simulation hands the controller for one
// tick. The controller depends only on its own craft's entry in Players
// and on Terrain; the remaining fields are an extension point.
type TickInput struct {
	T         float64                // elapsed time since episode start
	DT        float64                // tick duration
	PlayerID  string                 // key of the controller's own craft in Players
	Players   map[string]PlayerState // all crafts, keyed by identifier
	Terrain   terrain.Profile
	Asteroids []AsteroidState
}

// Instructions is the per-tick control output consumed by the
// simulation. Left and Right are never both set; Main is independent of
// rotation.
type Instructions struct {
	Main  bool `json:"main"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}
