// pkg/terrain/terrain_test.go
package terrain

import (
	"testing"
)

func TestProfile_FindLandingSite(t *testing.T) {
	tests := []struct {
		name         string
		profile      Profile
		minWidth     int
		expectedSite int
		expectFound  bool
	}{
		{
			name:         "longest_run_midpoint",
			profile:      Profile{0, 0, 0, 5, 5, 5, 5, 5, 0, 0},
			minWidth:     4,
			expectedSite: 5, // run of five 5s at 3..7, midpoint 3 + 5/2
			expectFound:  true,
		},
		{
			name:        "below_threshold",
			profile:     Profile{0, 0, 0, 5, 5, 5, 5, 5, 0, 0},
			minWidth:    40,
			expectFound: false,
		},
		{
			name:        "threshold_is_strict",
			profile:     Profile{5, 5, 5, 5, 5},
			minWidth:    5,
			expectFound: false,
		},
		{
			name:         "tie_breaks_to_earlier_run",
			profile:      Profile{1, 1, 1, 2, 3, 4, 4, 4, 9},
			minWidth:     2,
			expectedSite: 1, // both runs have length 3; the one at index 0 wins
			expectFound:  true,
		},
		{
			name:         "even_length_run_floors_midpoint",
			profile:      Profile{9, 2, 2, 2, 2, 9},
			minWidth:     3,
			expectedSite: 3, // start 1 + 4/2
			expectFound:  true,
		},
		{
			name:        "empty_profile",
			profile:     Profile{},
			minWidth:    0,
			expectFound: false,
		},
		{
			name:         "single_sample_zero_threshold",
			profile:      Profile{7},
			minWidth:     0,
			expectedSite: 0,
			expectFound:  true,
		},
		{
			name:        "single_sample_below_threshold",
			profile:     Profile{7},
			minWidth:    1,
			expectFound: false,
		},
		{
			name:         "whole_profile_is_one_run",
			profile:      Profile{3, 3, 3, 3, 3, 3},
			minWidth:     5,
			expectedSite: 3,
			expectFound:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, found := tt.profile.FindLandingSite(tt.minWidth)
			if found != tt.expectFound {
				t.Fatalf("FindLandingSite() found = %v, expected %v", found, tt.expectFound)
			}
			if found && site != tt.expectedSite {
				t.Errorf("FindLandingSite() = %d, expected %d", site, tt.expectedSite)
			}
		})
	}
}

func TestProfile_FindLandingSite_Deterministic(t *testing.T) {
	profile := Generate(1920, 500, 60, 42)
	first, found := profile.FindLandingSite(40)
	if !found {
		t.Fatal("generated terrain must contain a qualifying site")
	}
	for i := 0; i < 10; i++ {
		site, ok := profile.FindLandingSite(40)
		if !ok || site != first {
			t.Fatalf("call %d returned (%d, %v), expected (%d, true)", i, site, ok, first)
		}
	}
}

func TestProfile_Max(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected float64
	}{
		{name: "empty", profile: Profile{}, expected: 0},
		{name: "single", profile: Profile{4}, expected: 4},
		{name: "max_in_middle", profile: Profile{1, 9, 3}, expected: 9},
		{name: "negative_heights", profile: Profile{-5, -2, -8}, expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Max(); got != tt.expected {
				t.Errorf("Max() = %g, expected %g", got, tt.expected)
			}
		})
	}
}

func TestProfile_HeightAt_ClampsIndex(t *testing.T) {
	profile := Profile{1, 2, 3}

	if got := profile.HeightAt(-4); got != 1 {
		t.Errorf("HeightAt(-4) = %g, expected 1", got)
	}
	if got := profile.HeightAt(7); got != 3 {
		t.Errorf("HeightAt(7) = %g, expected 3", got)
	}
	if got := profile.HeightAt(1); got != 2 {
		t.Errorf("HeightAt(1) = %g, expected 2", got)
	}
	var empty Profile
	if got := empty.HeightAt(0); got != 0 {
		t.Errorf("empty HeightAt(0) = %g, expected 0", got)
	}
}

func TestGenerate(t *testing.T) {
	profile := Generate(1920, 500, 60, 7)

	if len(profile) != 1920 {
		t.Fatalf("Generate() length = %d, expected 1920", len(profile))
	}
	for i, h := range profile {
		if h <= 0 || h > 500 {
			t.Fatalf("sample %d out of range: %g", i, h)
		}
	}
	if _, found := profile.FindLandingSite(60); !found {
		t.Error("generated terrain must contain a pad wider than padWidth")
	}

	// Same seed, same terrain.
	again := Generate(1920, 500, 60, 7)
	for i := range profile {
		if profile[i] != again[i] {
			t.Fatalf("sample %d differs between identical seeds", i)
		}
	}
}

func TestGenerate_ZeroWidth(t *testing.T) {
	if p := Generate(0, 500, 60, 1); p != nil {
		t.Errorf("Generate(0, ...) = %v, expected nil", p)
	}
}
