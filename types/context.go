package types

// Context carries the situational signals for one nudge request. It is
// constructed fresh per call and discarded afterwards.
//
// The bucket fields are free strings on the wire; values outside the known
// vocabulary are treated as neutral rather than rejected.
type Context struct {
	TimeOfDay      string   `json:"time_of_day"`     // "morning" | "afternoon" | "evening" | "night"
	EnergyLevel    string   `json:"energy_level"`    // "high" | "medium" | "low"
	TaskComplexity string   `json:"task_complexity"` // "low" | "medium" | "high"
	Triggers       []string `json:"triggers,omitempty"`

	// Optional numeric indicators
	InterruptionsPerHour float64 `json:"interruptions_per_hour,omitempty"`
	DeadlineMinutes      *int    `json:"deadline_minutes,omitempty"` // nil when no deadline is known
}
