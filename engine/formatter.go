package engine

import (
	"fmt"
	"strings"
	"time"

	"clementus360/nudge-coach/types"

	"github.com/google/uuid"
)

// Motivation triggers that are worth echoing back in a nudge. Persona
// triggers outside this vocabulary stay internal to selection logic.
var engagementVocabulary = map[string]bool{
	"progress":    true,
	"mastery":     true,
	"completion":  true,
	"momentum":    true,
	"streak":      true,
	"growth":      true,
	"achievement": true,
	"recognition": true,
}

// FormatNudge assembles the final nudge. A skip decision yields nil, the
// documented "not now" result; it is not an error.
func FormatNudge(tmpl *types.InterventionTemplate, actions []types.Action, decision types.TimingDecision, persona types.PersonaConfig, score float64) *types.Nudge {
	if decision == types.TimingSkip {
		return nil
	}

	return &types.Nudge{
		ID:              uuid.NewString(),
		TemplateID:      tmpl.ID,
		PersonaID:       persona.ID,
		Message:         buildMessage(tmpl, actions, decision, persona),
		Timing:          decision,
		ContextScore:    score,
		Actions:         actions,
		FollowUp:        tmpl.FollowUp,
		MotivationHooks: motivationHooks(persona),
		CreatedAt:       time.Now(),
	}
}

func buildMessage(tmpl *types.InterventionTemplate, actions []types.Action, decision types.TimingDecision, persona types.PersonaConfig) string {
	sections := []string{}

	switch persona.Communication {
	case types.CommunicationDirect:
		sections = append(sections, "Here is your next move.")
	case types.CommunicationEnthusiastic:
		sections = append(sections, "Great moment for a quick reset!")
	default:
		sections = append(sections, "A quick suggestion for you.")
	}

	switch decision {
	case types.TimingImmediate:
		sections = append(sections, "Start now:")
	case types.TimingNextBreak:
		sections = append(sections, "At your next break:")
	case types.TimingDefer:
		sections = append(sections, "When you have more capacity:")
	}

	for i, action := range actions {
		sections = append(sections, fmt.Sprintf("%d. %s (%d min)", i+1, action.Description, action.DurationMinutes))
	}

	if tmpl.FollowUp.DelayMinutes > 0 {
		sections = append(sections, fmt.Sprintf("Follow-up %s in %d minutes.", tmpl.FollowUp.Type, tmpl.FollowUp.DelayMinutes))
	}

	return strings.Join(sections, "\n")
}

// motivationHooks filters the persona's triggers down to the engagement
// vocabulary, preserving the persona's own priority order.
func motivationHooks(persona types.PersonaConfig) []string {
	hooks := []string{}
	for _, trigger := range persona.MotivationTriggers {
		if engagementVocabulary[trigger] {
			hooks = append(hooks, trigger)
		}
	}
	return hooks
}
