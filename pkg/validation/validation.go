// Package validation provides input validation for the per-tick
// controller inputs supplied by the simulation.
package validation

import (
	"fmt"
	"math"
)

// Limits on input shape
const (
	MaxPlayerIDLen = 64
	MaxCoordinate  = 1e9
)

// CheckFinite rejects NaN and infinite values. The field name is used
// in the returned error to point at the offending input.
func CheckFinite(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) {
			return fmt.Errorf("%s is NaN", field)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("%s is infinite", field)
		}
		if math.Abs(v) > MaxCoordinate {
			return fmt.Errorf("%s out of range: %g (max %g)", field, v, float64(MaxCoordinate))
		}
	}
	return nil
}

// ValidatePlayerID validates a player identifier
func ValidatePlayerID(id string) error {
	if id == "" {
		return fmt.Errorf("player id cannot be empty")
	}
	if len(id) > MaxPlayerIDLen {
		return fmt.Errorf("player id too long: %d characters (max %d)", len(id), MaxPlayerIDLen)
	}
	return nil
}

// ValidateTiming validates the per-tick clock values. Elapsed time may
// be zero on the first tick; the tick duration must be positive.
func ValidateTiming(t, dt float64) error {
	if err := CheckFinite("elapsed time", t); err != nil {
		return err
	}
	if err := CheckFinite("tick duration", dt); err != nil {
		return err
	}
	if t < 0 {
		return fmt.Errorf("elapsed time cannot be negative: %g", t)
	}
	if dt <= 0 {
		return fmt.Errorf("tick duration must be positive: %g", dt)
	}
	return nil
}
