package types

// Learning styles
const (
	LearningSystematic  = "systematic"
	LearningExploratory = "exploratory"
)

// Communication preferences
const (
	CommunicationDirect       = "direct"
	CommunicationEnthusiastic = "enthusiastic"
)

// Work patterns
const (
	WorkDeepFocus = "deep_focus"
	WorkFlexible  = "flexible"
)

// PersonaConfig is the static behavioral profile for one user archetype.
// Loaded once at startup and never mutated afterwards.
//
// LearningStyle, Communication, and WorkPattern take the constants above;
// CognitiveLoadThreshold is in [0,1]. MotivationTriggers is ordered, most
// important first.
type PersonaConfig struct {
	ID                     string   `json:"id"`
	LearningStyle          string   `json:"learning_style"`
	Communication          string   `json:"communication"`
	WorkPattern            string   `json:"work_pattern"`
	MotivationTriggers     []string `json:"motivation_triggers"`
	CognitiveLoadThreshold float64  `json:"cognitive_load_threshold"`
}
