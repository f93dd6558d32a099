// Package engine implements the nudge pipeline: context scoring, template
// selection, action personalization, timing, and response assembly. Every
// stage is a pure function over the injected catalog and request values.
package engine

import (
	"strings"

	"clementus360/nudge-coach/config"
	"clementus360/nudge-coach/types"
)

// Bucket weight tables. Higher means a better moment to intervene.
var (
	timeOfDayWeights = map[string]float64{
		"morning":   0.9,
		"afternoon": 0.6,
		"evening":   0.4,
		"night":     0.2,
	}
	energyWeights = map[string]float64{
		"high":   1.0,
		"medium": 0.6,
		"low":    0.2,
	}
	complexityWeights = map[string]float64{
		"low":    0.8,
		"medium": 0.5,
		"high":   0.2,
	}
)

// Unknown or missing buckets contribute this instead of failing.
const neutralWeight = 0.5

// Fixed factor weights: time of day 0.4, energy 0.4, task complexity 0.2.
const (
	timeOfDayFactor  = 0.4
	energyFactor     = 0.4
	complexityFactor = 0.2
)

// ScoreContext converts the bucketed context signals into a single
// timing-fitness score in [0,1]. The complement (1 - score) approximates
// the user's current cognitive load.
func ScoreContext(ctx types.Context) float64 {
	t := bucketWeight(timeOfDayWeights, ctx.TimeOfDay, "time_of_day")
	e := bucketWeight(energyWeights, ctx.EnergyLevel, "energy_level")
	c := bucketWeight(complexityWeights, ctx.TaskComplexity, "task_complexity")

	return timeOfDayFactor*t + energyFactor*e + complexityFactor*c
}

func bucketWeight(table map[string]float64, value, field string) float64 {
	if w, ok := table[strings.ToLower(value)]; ok {
		return w
	}
	if value != "" {
		config.Logger.Warnf("Unknown %s bucket %q, using neutral value", field, value)
	}
	return neutralWeight
}
