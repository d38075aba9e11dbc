// pkg/terrain/generate.go
package terrain

import (
	"math"
	"math/rand/v2"
)

// Generate builds a random height profile for a simulation episode:
// rough sloped stretches with one guaranteed flat pad of at least
// padWidth samples, so every generated map has a qualifying landing
// site. Heights stay within (0, maxHeight]. The same seed always yields
// the same profile.
func Generate(width int, maxHeight float64, padWidth int, seed uint64) Profile {
	if width <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	p := make(Profile, 0, width)
	height := maxHeight * (0.2 + 0.3*rng.Float64())

	padStart := 0
	if width > padWidth+2 {
		padStart = 1 + rng.IntN(width-padWidth-2)
	}

	for len(p) < width {
		if len(p) == padStart {
			// The pad: a run of identical samples wider than padWidth.
			flat := math.Round(height)
			if flat < 1 {
				flat = 1
			}
			padLen := padWidth + 1 + rng.IntN(padWidth)
			for i := 0; i < padLen && len(p) < width; i++ {
				p = append(p, flat)
			}
			height = flat
			continue
		}

		// A rough stretch: short segment of constant slope. Heights off
		// the pad are left unrounded so accidental equal-height runs
		// stay negligible.
		segment := 5 + rng.IntN(20)
		slope := (rng.Float64()*2 - 1) * maxHeight / 200
		for i := 0; i < segment && len(p) < width; i++ {
			if len(p) == padStart {
				break
			}
			height += slope
			if height < maxHeight*0.05 {
				height = maxHeight * 0.05
			}
			if height > maxHeight {
				height = maxHeight
			}
			p = append(p, height)
		}
	}
	return p
}
