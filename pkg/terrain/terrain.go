// Package terrain provides the 1-D height profile the lander flies over
// and the landing-site analysis used by the autopilot.
package terrain

// Profile is an ordered sequence of terrain height samples indexed by
// horizontal position. A profile is immutable for the duration of an
// episode; callers must not mutate it while a controller holds it.
type Profile []float64

// FindLandingSite scans the profile for the longest run of consecutive
// samples with identical height. If the longest run is wider than
// minWidth samples, the run's midpoint index is returned (floor of
// start + length/2). Ties between equal-length runs go to the run with
// the lowest start index.
//
// The second return value is false when no run qualifies, including for
// an empty profile. The scan is a pure function of its input: repeated
// calls on the same profile return the same result.
func (p Profile) FindLandingSite(minWidth int) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}

	bestStart, bestLen := 0, 0
	runStart := 0
	for i := 1; i <= len(p); i++ {
		if i == len(p) || p[i] != p[i-1] {
			if length := i - runStart; length > bestLen {
				bestStart, bestLen = runStart, length
			}
			runStart = i
		}
	}

	if bestLen <= minWidth {
		return 0, false
	}
	return bestStart + bestLen/2, true
}

// Max returns the highest sample in the profile, or 0 for an empty one
func (p Profile) Max() float64 {
	var max float64
	for i, h := range p {
		if i == 0 || h > max {
			max = h
		}
	}
	return max
}

// HeightAt returns the height at index i, clamping i to the profile
// bounds so callers integrating a wrapped or overshooting x position
// never index out of range. Returns 0 for an empty profile.
func (p Profile) HeightAt(i int) float64 {
	if len(p) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}
