package fight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boxlab/boxing-platform/internal/boxer"
)

func TestSkill(t *testing.T) {
	prime := boxer.Boxer{Name: "Ali", Weight: 210, Reach: 78.0, Age: 30}
	assert.InDelta(t, 210*3+7.8, Skill(prime), 1e-9)

	young := prime
	young.Age = 21
	assert.InDelta(t, Skill(prime)-1, Skill(young), 1e-9)

	old := prime
	old.Age = 38
	assert.InDelta(t, Skill(prime)-2, Skill(old), 1e-9)
}

func TestSkillScalesWithNameLength(t *testing.T) {
	short := boxer.Boxer{Name: "Bo", Weight: 150, Reach: 70, Age: 30}
	long := boxer.Boxer{Name: "Bonecrusher", Weight: 150, Reach: 70, Age: 30}
	assert.Greater(t, Skill(long), Skill(short))
}

func TestWinProbability(t *testing.T) {
	// Equal skills: a coin flip.
	assert.InDelta(t, 0.5, winProbability(100, 100), 1e-9)

	// Any gap pushes the probability above one half, capped below one.
	p := winProbability(500, 100)
	assert.Greater(t, p, 0.5)
	assert.Less(t, p, 1.0)

	// Symmetric in its arguments since only the gap matters.
	assert.InDelta(t, winProbability(200, 150), winProbability(150, 200), 1e-9)
}
