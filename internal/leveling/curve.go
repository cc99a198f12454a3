// Package leveling maps accumulated skill points onto bounded levels.
//
// The curve is a logistic function centered on the midpoint of the points
// range: slow growth at the bottom, rapid growth through the middle, and a
// plateau near the top. That shape models how proficiency actually feels —
// early gains are hard to notice, mid-range practice compounds quickly, and
// mastery resists the last few levels.
package leveling

import "math"

const (
	// MinLevel is the floor for every level in the system.
	MinLevel = 1
	// MaxLevel is the ceiling for every level in the system.
	MaxLevel = 100

	// steepness controls how sharply the curve rises through the midpoint.
	steepness = 10.0
	// midpoint is the normalized point fraction where the curve inflects.
	midpoint = 0.5
)

// Level converts accumulated points into a level in [MinLevel, MaxLevel].
// Zero or negative points always map to MinLevel. The input fraction
// totalPoints/maxPoints is expected in (0, 1] but is not clamped before the
// transform; the final clamp guards floating-point edges far above 1.
func Level(totalPoints, maxPoints int) int {
	if totalPoints <= 0 {
		return MinLevel
	}

	x := float64(totalPoints) / float64(maxPoints)
	s := 1 / (1 + math.Exp(-steepness*(x-midpoint)))

	level := int(1 + s*99)
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
