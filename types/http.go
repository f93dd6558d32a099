package types

// NudgeRequest is the body of POST /nudge. Either PersonaID (resolved
// against the loaded catalog) or an inline Persona must be set. History is
// optional; when absent the server's own log for the user is consulted.
type NudgeRequest struct {
	UserID    string         `json:"user_id,omitempty"`
	PersonaID string         `json:"persona_id,omitempty"`
	Persona   *PersonaConfig `json:"persona,omitempty"`
	Context   Context        `json:"context"`
	History   []HistoryEntry `json:"history,omitempty"`
}

type NudgeResponse struct {
	Success      bool   `json:"success"`
	Nudge        *Nudge `json:"nudge,omitempty"`
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type PersonaResponse struct {
	Success      bool          `json:"success"`
	Persona      PersonaConfig `json:"persona"`
	ErrorMessage string        `json:"error,omitempty"`
}

type GetPersonasResponse struct {
	Success  bool            `json:"success"`
	Personas []PersonaConfig `json:"personas"`
}

type GetTemplatesResponse struct {
	Success   bool                   `json:"success"`
	Templates []InterventionTemplate `json:"templates"`
	DefaultID string                 `json:"default_id"`
}

type GetHistoryResponse struct {
	Success bool           `json:"success"`
	UserID  string         `json:"user_id"`
	History []HistoryEntry `json:"history"`
}

type ClearHistoryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
