// pkg/physics/flight.go
package physics

import "math"

// Config contains the physics constants for a scenario. The simulation
// supplies these at construction time; nothing in this package reads
// ambient globals, so a FlightModel can be tested with arbitrary values.
type Config struct {
	Gravity       float64 `json:"gravity"`       // downward acceleration, units/s^2
	MainThrust    float64 `json:"mainThrust"`    // main engine acceleration along the craft axis
	TurnRate      float64 `json:"turnRate"`      // rotation speed, degrees/s
	FuelBurnRate  float64 `json:"fuelBurnRate"`  // fuel consumed per second of main engine burn
	HeadingPeriod float64 `json:"headingPeriod"` // heading wrap period in degrees; 0 means headings do not wrap
}

// RotationCommand is the discrete output of the bang-bang heading controller.
type RotationCommand int

const (
	RotateNone RotationCommand = iota
	RotateLeft
	RotateRight
)

// String returns a human-readable name for the rotation command
func (rc RotationCommand) String() string {
	switch rc {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// FlightModel answers pure kinematic questions about a craft under
// constant gravity and constant main-engine thrust.
type FlightModel struct {
	cfg Config
}

// NewFlightModel creates a flight model for the given physics constants
func NewFlightModel(cfg Config) FlightModel {
	return FlightModel{cfg: cfg}
}

// StopHeight returns the height at which vertical velocity reaches zero
// if the main engine fires continuously from now on. The vertical thrust
// component is cos(heading) * MainThrust, so a banked craft brakes less.
//
// Sign convention: downward velocity is negative. For a descending craft
// the standard constant-acceleration relation v^2 = v0^2 + 2*(a-g)*(h-h0)
// solved for v = 0 gives h = h0 - v0^2 / (2*(a-g)).
//
// When the vertical thrust component does not exceed gravity the craft
// cannot arrest its descent; negative infinity is returned so that any
// comparison against a braking margin resolves to "fire the engine".
func (m FlightModel) StopHeight(h0, vy0, heading float64) float64 {
	if vy0 >= 0 {
		return h0
	}
	a := math.Cos(heading*math.Pi/180) * m.cfg.MainThrust
	net := a - m.cfg.Gravity
	if net <= 0 {
		return math.Inf(-1)
	}
	return h0 - vy0*vy0/(2*net)
}

// RotationCommand decides which way to rotate to reach target from
// current. Within tolerance (strict inequality) the goal counts as
// reached and RotateNone is returned; the caller should clear its
// rotation target. This is bang-bang steering with no smoothing: it may
// chatter at the tolerance boundary, which is fine because the state
// machine re-evaluates every tick.
func (m FlightModel) RotationCommand(current, target, tolerance float64) RotationCommand {
	diff := target - current
	if m.cfg.HeadingPeriod > 0 {
		diff = WrappedDiff(current, target, m.cfg.HeadingPeriod)
	}
	if math.Abs(diff) < tolerance {
		return RotateNone
	}
	if diff > 0 {
		return RotateLeft
	}
	return RotateRight
}

// WrappedDiff returns the signed difference target - current, taking the
// shortest way around a heading space that wraps at period degrees.
func WrappedDiff(current, target, period float64) float64 {
	diff := target - current
	for _, alt := range [2]float64{diff + period, diff - period} {
		if math.Abs(alt) < math.Abs(diff) {
			diff = alt
		}
	}
	return diff
}

// ThrustVector returns the acceleration vector produced by an engine of
// the given magnitude at the given heading. Heading zero points straight
// up; positive headings tilt counter-clockwise (to the left).
func ThrustVector(headingDeg, magnitude float64) Vector2D {
	rad := headingDeg * math.Pi / 180
	return Vector2D{
		X: -math.Sin(rad) * magnitude,
		Y: math.Cos(rad) * magnitude,
	}
}
