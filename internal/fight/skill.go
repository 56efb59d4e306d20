package fight

import (
	"math"

	"github.com/boxlab/boxing-platform/internal/boxer"
)

// Skill computes a boxer's fighting skill from weight, name length, reach
// and an age modifier. Fighters in their prime (25-35) take no penalty.
func Skill(b boxer.Boxer) float64 {
	ageModifier := 0.0
	switch {
	case b.Age < 25:
		ageModifier = -1
	case b.Age > 35:
		ageModifier = -2
	}
	return float64(b.Weight*len(b.Name)) + b.Reach/10 + ageModifier
}

// winProbability maps the absolute skill gap onto (0.5, 1) with a logistic
// curve; the first entrant wins when the draw lands below it.
func winProbability(skill1, skill2 float64) float64 {
	delta := math.Abs(skill1 - skill2)
	return 1 / (1 + math.Exp(-delta))
}
