// pkg/physics/lander.go
package physics

import "math"

// MovementState tracks lander kinematics
type MovementState struct {
	Position Vector2D
	Velocity Vector2D
	Heading  float64 // degrees, 0 = upright, positive counter-clockwise
	Fuel     float64
}

// UpdateMovement advances one tick of lander physics. turnInput is +1
// for a left (counter-clockwise) rotation command, -1 for right, 0 for
// none. The main engine only produces thrust while fuel remains.
func UpdateMovement(state *MovementState, deltaTime float64, mainEngine bool, turnInput float64, cfg Config) {
	// Apply rotation
	state.Heading += turnInput * cfg.TurnRate * deltaTime
	if cfg.HeadingPeriod > 0 {
		state.Heading = NormalizeHeading(state.Heading, cfg.HeadingPeriod)
	}

	// Gravity plus optional thrust
	accel := Vector2D{Y: -cfg.Gravity}
	if mainEngine && state.Fuel > 0 {
		accel = accel.Add(ThrustVector(state.Heading, cfg.MainThrust))
		state.Fuel = math.Max(0, state.Fuel-cfg.FuelBurnRate*deltaTime)
	}

	// Update velocity and position
	state.Velocity = state.Velocity.Add(accel.Scale(deltaTime))
	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))
}

// NormalizeHeading wraps a heading into [-period/2, period/2)
func NormalizeHeading(heading, period float64) float64 {
	h := math.Mod(heading+period/2, period)
	if h < 0 {
		h += period
	}
	return h - period/2
}
