package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/nudge-coach/config"
	"clementus360/nudge-coach/supabase"
	"clementus360/nudge-coach/types"
)

func (s *Server) GetPersonasHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.GetPersonasResponse{
		Success:  true,
		Personas: s.Catalog.Personas,
	})
}

func (s *Server) GetTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.GetTemplatesResponse{
		Success:   true,
		Templates: s.Catalog.Templates,
		DefaultID: s.Catalog.DefaultTemplateID,
	})
}

// UpsertPersonaHandler stores a per-user persona override in Supabase.
// The built-in catalog stays immutable; overrides only exist where
// persistence is configured.
func (s *Server) UpsertPersonaHandler(w http.ResponseWriter, r *http.Request) {
	var persona types.PersonaConfig
	if err := json.NewDecoder(r.Body).Decode(&persona); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if persona.ID == "" {
		writeError(w, "Missing persona id", http.StatusBadRequest)
		return
	}
	if persona.CognitiveLoadThreshold < 0 || persona.CognitiveLoadThreshold > 1 {
		writeError(w, "cognitive_load_threshold must be in [0,1]", http.StatusBadRequest)
		return
	}

	if !supabase.Enabled() {
		writeError(w, "Persona persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	client, _, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Warn("Failed to create Supabase client:", err)
		writeError(w, "Missing or invalid Authorization header", http.StatusUnauthorized)
		return
	}

	if err := supabase.UpsertPersonaConfig(client, persona); err != nil {
		config.Logger.Error("Failed to upsert persona config:", err)
		writeError(w, "Could not save persona", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.PersonaResponse{
		Success: true,
		Persona: persona,
	})
}
