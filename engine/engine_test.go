package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analystPersona() types.PersonaConfig {
	return types.PersonaConfig{
		ID:                     "analyst",
		LearningStyle:          types.LearningSystematic,
		Communication:          types.CommunicationDirect,
		WorkPattern:            types.WorkDeepFocus,
		MotivationTriggers:     []string{"progress", "mastery"},
		CognitiveLoadThreshold: 0.8,
	}
}

func goodMorning() types.Context {
	return types.Context{
		TimeOfDay:      "morning",
		EnergyLevel:    "high",
		TaskComplexity: "low",
		Triggers:       []string{"distraction"},
	}
}

func TestGenerateNudgeRoundTrip(t *testing.T) {
	eng := New(30 * time.Minute)

	nudge, err := eng.GenerateNudge(analystPersona(), goodMorning(), catalog.BuiltIn(), nil)
	require.NoError(t, err)
	require.NotNil(t, nudge)

	assert.Equal(t, "distraction_reset", nudge.TemplateID)
	assert.Contains(t, []types.TimingDecision{types.TimingImmediate, types.TimingNextBreak}, nudge.Timing)

	require.NotEmpty(t, nudge.Actions)
	assert.True(t, strings.HasPrefix(nudge.Actions[0].Description, "Action required: "),
		"direct persona should get a direct-style first action, got %q", nudge.Actions[0].Description)
}

func TestGenerateNudgeRecentHistorySkips(t *testing.T) {
	eng := New(30 * time.Minute)
	history := []types.HistoryEntry{{Timestamp: time.Now().Add(-5 * time.Minute), TemplateID: "distraction_reset"}}

	nudge, err := eng.GenerateNudge(analystPersona(), goodMorning(), catalog.BuiltIn(), history)
	require.NoError(t, err)
	assert.Nil(t, nudge, "an intervention 5 minutes ago must suppress the next one")
}

func TestGenerateNudgeUnknownEnergyDoesNotFail(t *testing.T) {
	eng := New(30 * time.Minute)
	ctx := goodMorning()
	ctx.EnergyLevel = "extreme"

	nudge, err := eng.GenerateNudge(analystPersona(), ctx, catalog.BuiltIn(), nil)
	require.NoError(t, err)
	require.NotNil(t, nudge)
}

func TestGenerateNudgeEmptyCatalog(t *testing.T) {
	eng := New(30 * time.Minute)

	_, err := eng.GenerateNudge(analystPersona(), goodMorning(), catalog.Catalog{}, nil)
	require.Error(t, err)

	var confErr *types.ConfigurationError
	require.True(t, errors.As(err, &confErr))
}

func TestGenerateNudgeNoTriggersUsesDefaultTemplate(t *testing.T) {
	eng := New(30 * time.Minute)
	ctx := goodMorning()
	ctx.Triggers = nil

	nudge, err := eng.GenerateNudge(analystPersona(), ctx, catalog.BuiltIn(), nil)
	require.NoError(t, err)
	require.NotNil(t, nudge)
	assert.Equal(t, "general_checkin", nudge.TemplateID)
}
