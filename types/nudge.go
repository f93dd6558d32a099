package types

import "time"

// TimingDecision is the bounded output of the timing stage.
type TimingDecision string

const (
	TimingImmediate TimingDecision = "immediate"
	TimingNextBreak TimingDecision = "next_break"
	TimingDefer     TimingDecision = "defer"
	TimingSkip      TimingDecision = "skip"
)

// Nudge is the final coaching suggestion returned to the caller.
type Nudge struct {
	ID              string         `json:"id"`
	TemplateID      string         `json:"template_id"`
	PersonaID       string         `json:"persona_id"`
	Message         string         `json:"message"`
	Timing          TimingDecision `json:"timing"`
	ContextScore    float64        `json:"context_score"`
	Actions         []Action       `json:"actions"`
	FollowUp        FollowUp       `json:"follow_up"`
	MotivationHooks []string       `json:"motivation_hooks,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HistoryEntry is one row of the per-user intervention log, used only for
// frequency capping.
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	TemplateID string    `json:"template_id"`
}

// InterventionRecord is the persisted form of a delivered nudge.
type InterventionRecord struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id"`
	TemplateID string    `json:"template_id"`
	Decision   string    `json:"decision"`
	CreatedAt  time.Time `json:"created_at"`
}
