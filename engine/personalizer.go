package engine

import (
	"math"

	"clementus360/nudge-coach/config"
	"clementus360/nudge-coach/types"
)

// Deep-focus personas get longer blocks than the template's nominal
// durations; flexible personas take them as written.
const deepFocusDurationFactor = 1.25

const (
	directPrefix       = "Action required: "
	enthusiasticSuffix = " You've got this!"
)

// PersonalizeActions rewrites a template's actions for one persona. The
// input slice is never modified: every action is copied, restyled, and
// optionally rescaled. Output order and length always match the input.
func PersonalizeActions(actions []types.Action, persona types.PersonaConfig) []types.Action {
	out := make([]types.Action, len(actions))
	for i, action := range actions {
		action.Description = applyCommunicationStyle(action.Description, persona.Communication)
		if persona.WorkPattern == types.WorkDeepFocus {
			action.DurationMinutes = int(math.Ceil(float64(action.DurationMinutes) * deepFocusDurationFactor))
		}
		out[i] = action
	}
	return out
}

func applyCommunicationStyle(description, style string) string {
	switch style {
	case types.CommunicationDirect:
		return directPrefix + description
	case types.CommunicationEnthusiastic:
		return description + enthusiasticSuffix
	default:
		if style != "" {
			config.Logger.Warnf("Unknown communication style %q, leaving description as-is", style)
		}
		return description
	}
}
