// pkg/bot/config.go
package bot

import "fmt"

// Config exposes every behavioral threshold of the autopilot as a named
// field. Historical controller variants differed only in these numbers;
// DefaultConfig carries the reference values.
type Config struct {
	// MinSiteWidth is the run length a flat terrain stretch must exceed
	// to qualify as a landing site.
	MinSiteWidth int `json:"minSiteWidth"`
	// RotationTolerance is the heading error, in degrees, below which a
	// rotation goal counts as reached.
	RotationTolerance float64 `json:"rotationTolerance"`
	// SafeHorizontalSpeed is the horizontal speed above which the
	// initial manoeuvre fires the main engine instead of rotating.
	SafeHorizontalSpeed float64 `json:"safeHorizontalSpeed"`
	// HoverMargin is added to the terrain maximum to form the safe
	// hover height used while searching for a site.
	HoverMargin float64 `json:"hoverMargin"`
	// AlignDistance is the horizontal offset from the site above which
	// the controller actively cancels drift toward it.
	AlignDistance float64 `json:"alignDistance"`
	// CommitDistance is the horizontal offset below which the
	// controller commits to the final landing phase.
	CommitDistance float64 `json:"commitDistance"`
	// AlignBankAngle is the bank used to cancel drift far from the
	// site; LandBankAngle the shallower bank used close to touchdown.
	AlignBankAngle float64 `json:"alignBankAngle"`
	LandBankAngle  float64 `json:"landBankAngle"`
	// BrakeMargin is the clearance above the site the predicted stop
	// point must keep during final descent.
	BrakeMargin float64 `json:"brakeMargin"`
	// FinalApproachBand is the altitude above the site below which the
	// controller commits to braking regardless of prediction.
	FinalApproachBand float64 `json:"finalApproachBand"`
	// MaxDescentRate is the hard limit on downward speed during the
	// landing phase (positive number; compared against -vy).
	MaxDescentRate float64 `json:"maxDescentRate"`
	// DriftEpsilon is the horizontal speed below which drift counts as
	// cancelled.
	DriftEpsilon float64 `json:"driftEpsilon"`
}

// DefaultConfig returns the reference autopilot tuning
func DefaultConfig() Config {
	return Config{
		MinSiteWidth:        40,
		RotationTolerance:   0.5,
		SafeHorizontalSpeed: 10,
		HoverMargin:         50,
		AlignDistance:       50,
		CommitDistance:      30,
		AlignBankAngle:      90,
		LandBankAngle:       45,
		BrakeMargin:         60,
		FinalApproachBand:   15,
		MaxDescentRate:      5,
		DriftEpsilon:        0.1,
	}
}

// Validate checks the tuning for values that would make the state
// machine misbehave.
func (c Config) Validate() error {
	if c.MinSiteWidth < 0 {
		return fmt.Errorf("minSiteWidth cannot be negative: %d", c.MinSiteWidth)
	}
	if c.RotationTolerance <= 0 {
		return fmt.Errorf("rotationTolerance must be positive: %g", c.RotationTolerance)
	}
	if c.CommitDistance > c.AlignDistance {
		return fmt.Errorf("commitDistance (%g) must not exceed alignDistance (%g)",
			c.CommitDistance, c.AlignDistance)
	}
	if c.MaxDescentRate < 0 {
		return fmt.Errorf("maxDescentRate cannot be negative: %g", c.MaxDescentRate)
	}
	return nil
}
