package types

// Action is a single step inside an intervention template. Personalization
// copies actions before adjusting them; the catalog's originals are shared
// and must never change.
type Action struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
	Priority        int    `json:"priority,omitempty"`
}

// FollowUp describes when and how to check back after a nudge.
type FollowUp struct {
	DelayMinutes int    `json:"delay_minutes"`
	Type         string `json:"type"`
}

// InterventionTemplate is one catalog entry: the trigger conditions plus
// the default action plan before personalization.
type InterventionTemplate struct {
	ID          string   `json:"id"`
	TriggerTags []string `json:"trigger_tags"`
	Actions     []Action `json:"actions"`
	FollowUp    FollowUp `json:"follow_up"`
}
