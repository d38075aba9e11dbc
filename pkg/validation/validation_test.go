// pkg/validation/validation_test.go
package validation

import (
	"math"
	"strings"
	"testing"
)

func TestCheckFinite(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		expectErr bool
	}{
		{name: "all_finite", values: []float64{0, -12.5, 1e6}, expectErr: false},
		{name: "nan", values: []float64{1, math.NaN()}, expectErr: true},
		{name: "positive_infinity", values: []float64{math.Inf(1)}, expectErr: true},
		{name: "negative_infinity", values: []float64{math.Inf(-1)}, expectErr: true},
		{name: "out_of_range", values: []float64{2e9}, expectErr: true},
		{name: "empty", values: nil, expectErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFinite("field", tt.values...)
			if (err != nil) != tt.expectErr {
				t.Errorf("CheckFinite() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestCheckFinite_NamesField(t *testing.T) {
	err := CheckFinite("vertical velocity", math.NaN())
	if err == nil || !strings.Contains(err.Error(), "vertical velocity") {
		t.Errorf("error %v does not name the offending field", err)
	}
}

func TestValidatePlayerID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		expectErr bool
	}{
		{name: "valid", id: "lander-1", expectErr: false},
		{name: "empty", id: "", expectErr: true},
		{name: "too_long", id: strings.Repeat("x", MaxPlayerIDLen+1), expectErr: true},
		{name: "max_length", id: strings.Repeat("x", MaxPlayerIDLen), expectErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayerID(tt.id)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidatePlayerID(%q) error = %v, expectErr %v", tt.id, err, tt.expectErr)
			}
		})
	}
}

func TestValidateTiming(t *testing.T) {
	tests := []struct {
		name      string
		t         float64
		dt        float64
		expectErr bool
	}{
		{name: "valid", t: 10, dt: 0.1, expectErr: false},
		{name: "first_tick", t: 0, dt: 0.1, expectErr: false},
		{name: "zero_dt", t: 10, dt: 0, expectErr: true},
		{name: "negative_dt", t: 10, dt: -0.1, expectErr: true},
		{name: "negative_time", t: -1, dt: 0.1, expectErr: true},
		{name: "nan_time", t: math.NaN(), dt: 0.1, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t_ *testing.T) {
			err := ValidateTiming(tt.t, tt.dt)
			if (err != nil) != tt.expectErr {
				t_.Errorf("ValidateTiming(%g, %g) error = %v, expectErr %v", tt.t, tt.dt, err, tt.expectErr)
			}
		})
	}
}
