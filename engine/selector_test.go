package engine

import (
	"errors"
	"testing"

	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/types"

	"github.com/stretchr/testify/require"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		DefaultTemplateID: "fallback",
		Templates: []types.InterventionTemplate{
			{
				ID:          "focus",
				TriggerTags: []string{"distraction", "notifications"},
				Actions:     []types.Action{{Type: "focus_block", DurationMinutes: 25, Description: "Work one block"}},
			},
			{
				ID:          "triage",
				TriggerTags: []string{"overwhelm", "distraction", "anxiety"},
				Actions:     []types.Action{{Type: "triage", DurationMinutes: 5, Description: "Pick one thing"}},
			},
			{
				ID:          "fallback",
				TriggerTags: []string{"general"},
				Actions:     []types.Action{{Type: "reflection", DurationMinutes: 3, Description: "Check in"}},
			},
		},
	}
}

func TestSelectTemplateEmptyCatalog(t *testing.T) {
	_, err := SelectTemplate(catalog.Catalog{}, types.Context{}, types.PersonaConfig{}, nil)
	require.Error(t, err)

	var confErr *types.ConfigurationError
	require.True(t, errors.As(err, &confErr), "expected ConfigurationError, got %T", err)
}

func TestSelectTemplateMatchesTriggers(t *testing.T) {
	tmpl, err := SelectTemplate(testCatalog(), types.Context{Triggers: []string{"notifications"}}, types.PersonaConfig{}, nil)
	require.NoError(t, err)
	require.Equal(t, "focus", tmpl.ID)
}

func TestSelectTemplateLargestIntersectionWins(t *testing.T) {
	ctx := types.Context{Triggers: []string{"distraction", "overwhelm"}}
	tmpl, err := SelectTemplate(testCatalog(), ctx, types.PersonaConfig{}, nil)
	require.NoError(t, err)
	require.Equal(t, "triage", tmpl.ID, "two-tag overlap should beat one-tag overlap")
}

func TestSelectTemplateTieBreaksByCatalogOrder(t *testing.T) {
	// "distraction" appears in both focus and triage; equal overlap and
	// equal fit must yield the earlier catalog entry.
	ctx := types.Context{Triggers: []string{"distraction"}}
	tmpl, err := SelectTemplate(testCatalog(), ctx, types.PersonaConfig{}, nil)
	require.NoError(t, err)
	require.Equal(t, "focus", tmpl.ID)
}

func TestSelectTemplateStrategyFitBreaksTies(t *testing.T) {
	ctx := types.Context{Triggers: []string{"distraction"}}
	preferTriage := func(tmpl types.InterventionTemplate, _ types.PersonaConfig, _ types.Context) float64 {
		if tmpl.ID == "triage" {
			return 0.95
		}
		return 0.5
	}
	tmpl, err := SelectTemplate(testCatalog(), ctx, types.PersonaConfig{}, preferTriage)
	require.NoError(t, err)
	require.Equal(t, "triage", tmpl.ID)
}

func TestSelectTemplateFallsBackToDefault(t *testing.T) {
	for _, triggers := range [][]string{nil, {}, {"nothing_matches"}} {
		tmpl, err := SelectTemplate(testCatalog(), types.Context{Triggers: triggers}, types.PersonaConfig{}, nil)
		require.NoError(t, err)
		require.NotNil(t, tmpl)
		require.Equal(t, "fallback", tmpl.ID)
	}
}

func TestSelectTemplateDeterministic(t *testing.T) {
	ctx := types.Context{Triggers: []string{"distraction", "anxiety"}}
	first, err := SelectTemplate(testCatalog(), ctx, types.PersonaConfig{}, nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := SelectTemplate(testCatalog(), ctx, types.PersonaConfig{}, nil)
		require.NoError(t, err)
		require.Equal(t, first.ID, again.ID)
	}
}
