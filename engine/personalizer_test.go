package engine

import (
	"strings"
	"testing"

	"clementus360/nudge-coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleActions() []types.Action {
	return []types.Action{
		{Type: "micro_step", DurationMinutes: 2, Description: "Open the document", Priority: 1},
		{Type: "focus_block", DurationMinutes: 25, Description: "Work one block", Priority: 2},
	}
}

func TestPersonalizeActionsDirectStyle(t *testing.T) {
	persona := types.PersonaConfig{Communication: types.CommunicationDirect, WorkPattern: types.WorkFlexible}
	out := PersonalizeActions(sampleActions(), persona)

	require.Len(t, out, 2)
	for _, action := range out {
		assert.True(t, strings.HasPrefix(action.Description, "Action required: "), "got %q", action.Description)
	}
}

func TestPersonalizeActionsEnthusiasticStyle(t *testing.T) {
	persona := types.PersonaConfig{Communication: types.CommunicationEnthusiastic, WorkPattern: types.WorkFlexible}
	out := PersonalizeActions(sampleActions(), persona)

	require.Len(t, out, 2)
	for _, action := range out {
		assert.True(t, strings.HasSuffix(action.Description, "You've got this!"), "got %q", action.Description)
	}
}

func TestPersonalizeActionsDeepFocusScalesDurations(t *testing.T) {
	persona := types.PersonaConfig{Communication: types.CommunicationDirect, WorkPattern: types.WorkDeepFocus}
	out := PersonalizeActions(sampleActions(), persona)

	// ceil(2 * 1.25) = 3, ceil(25 * 1.25) = 32
	assert.Equal(t, 3, out[0].DurationMinutes)
	assert.Equal(t, 32, out[1].DurationMinutes)
}

func TestPersonalizeActionsFlexibleKeepsDurations(t *testing.T) {
	persona := types.PersonaConfig{Communication: types.CommunicationDirect, WorkPattern: types.WorkFlexible}
	out := PersonalizeActions(sampleActions(), persona)

	assert.Equal(t, 2, out[0].DurationMinutes)
	assert.Equal(t, 25, out[1].DurationMinutes)
}

func TestPersonalizeActionsDoesNotMutateInput(t *testing.T) {
	original := sampleActions()
	persona := types.PersonaConfig{Communication: types.CommunicationDirect, WorkPattern: types.WorkDeepFocus}

	_ = PersonalizeActions(original, persona)

	require.Equal(t, sampleActions(), original, "template actions must never be mutated in place")
}

func TestPersonalizeActionsPreservesLengthAndOrder(t *testing.T) {
	persona := types.PersonaConfig{Communication: types.CommunicationEnthusiastic}
	out := PersonalizeActions(sampleActions(), persona)

	require.Len(t, out, len(sampleActions()))
	assert.Equal(t, "micro_step", out[0].Type)
	assert.Equal(t, "focus_block", out[1].Type)
}

func TestPersonalizeActionsUnknownStyleLeavesDescription(t *testing.T) {
	persona := types.PersonaConfig{Communication: "telepathic"}
	out := PersonalizeActions(sampleActions(), persona)

	assert.Equal(t, "Open the document", out[0].Description)
}

func TestPersonalizeActionsEmptyInput(t *testing.T) {
	out := PersonalizeActions(nil, types.PersonaConfig{Communication: types.CommunicationDirect})
	assert.Empty(t, out)
}
