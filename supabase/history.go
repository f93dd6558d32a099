package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"clementus360/nudge-coach/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// RecordIntervention persists one delivered nudge for cross-process
// frequency capping.
func RecordIntervention(client *supabase.Client, userID, templateID string, decision types.TimingDecision, at time.Time) error {
	record := types.InterventionRecord{
		UserID:     userID,
		TemplateID: templateID,
		Decision:   string(decision),
		CreatedAt:  at,
	}

	_, _, err := client.From("intervention_log").Insert(record, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to record intervention: %w", err)
	}

	return nil
}

// GetRecentInterventions returns the user's intervention log since the
// given time, newest first, as frequency-cap history entries.
func GetRecentInterventions(client *supabase.Client, userID string, since time.Time, limit int) ([]types.HistoryEntry, error) {
	resp, _, err := client.From("intervention_log").
		Select("*", "", false).
		Eq("user_id", userID).
		Gte("created_at", since.Format(time.RFC3339)).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch interventions: %w", err)
	}

	var records []types.InterventionRecord
	if err := json.Unmarshal(resp, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interventions: %w", err)
	}

	history := make([]types.HistoryEntry, 0, len(records))
	for _, r := range records {
		history = append(history, types.HistoryEntry{
			Timestamp:  r.CreatedAt,
			TemplateID: r.TemplateID,
		})
	}

	return history, nil
}
