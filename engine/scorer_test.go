package engine

import (
	"testing"

	"clementus360/nudge-coach/types"

	"github.com/stretchr/testify/assert"
)

func TestScoreContextInRange(t *testing.T) {
	times := []string{"morning", "afternoon", "evening", "night", "", "weird"}
	energies := []string{"high", "medium", "low", "", "extreme"}
	complexities := []string{"low", "medium", "high", "", "impossible"}

	for _, tod := range times {
		for _, energy := range energies {
			for _, complexity := range complexities {
				score := ScoreContext(types.Context{
					TimeOfDay:      tod,
					EnergyLevel:    energy,
					TaskComplexity: complexity,
				})
				assert.GreaterOrEqual(t, score, 0.0, "score below 0 for %s/%s/%s", tod, energy, complexity)
				assert.LessOrEqual(t, score, 1.0, "score above 1 for %s/%s/%s", tod, energy, complexity)
			}
		}
	}
}

func TestScoreContextKnownBuckets(t *testing.T) {
	score := ScoreContext(types.Context{
		TimeOfDay:      "morning",
		EnergyLevel:    "high",
		TaskComplexity: "low",
	})
	// 0.4*0.9 + 0.4*1.0 + 0.2*0.8
	assert.InDelta(t, 0.92, score, 1e-9)
}

func TestScoreContextUnknownBucketIsNeutral(t *testing.T) {
	known := ScoreContext(types.Context{
		TimeOfDay:      "morning",
		EnergyLevel:    "extreme", // not a real bucket
		TaskComplexity: "low",
	})
	neutral := ScoreContext(types.Context{
		TimeOfDay:      "morning",
		TaskComplexity: "low",
	})
	assert.InDelta(t, neutral, known, 1e-9, "unknown bucket should contribute the neutral value")
}

func TestScoreContextAllUnknownIsNeutral(t *testing.T) {
	score := ScoreContext(types.Context{})
	assert.InDelta(t, 0.5, score, 1e-9)
}
