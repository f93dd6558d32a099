package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"clementus360/nudge-coach/config"
	"clementus360/nudge-coach/supabase"
	"clementus360/nudge-coach/types"
)

// How far back persisted history is consulted for the frequency cap.
const historyLookback = 24 * time.Hour

// NudgeHandler runs the pipeline for one request. 200 carries the nudge,
// 204 means the timing stage decided to skip.
func (s *Server) NudgeHandler(w http.ResponseWriter, r *http.Request) {
	var req types.NudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	persona, ok := s.resolvePersona(r, req)
	if !ok {
		writeError(w, "Missing or unknown persona", http.StatusBadRequest)
		return
	}

	userID := s.resolveUserID(r, req)

	var nudge *types.Nudge
	var genErr error

	if req.History != nil || userID == "" {
		// Caller-supplied history is authoritative, and anonymous callers
		// have nothing to cap against; neither path touches the store's
		// critical section.
		nudge, genErr = s.Engine.GenerateNudge(persona, req.Context, s.Catalog, req.History)
		if genErr == nil && nudge != nil && userID != "" {
			s.History.Record(userID, nudge.TemplateID, nudge.CreatedAt)
		}
	} else {
		// Fetch any persisted history outside the lock; the network call
		// must not extend the critical section.
		persisted := s.persistedHistory(r)

		// Cap check, generation, and the delivery record run as one
		// atomic store operation so concurrent requests for the same
		// user cannot all pass the cap.
		s.History.Do(userID, func(hist []types.HistoryEntry) *types.HistoryEntry {
			if len(hist) == 0 {
				hist = persisted
			}
			nudge, genErr = s.Engine.GenerateNudge(persona, req.Context, s.Catalog, hist)
			if genErr != nil || nudge == nil {
				return nil
			}
			return &types.HistoryEntry{Timestamp: nudge.CreatedAt, TemplateID: nudge.TemplateID}
		})
	}

	if genErr != nil {
		var confErr *types.ConfigurationError
		if errors.As(genErr, &confErr) {
			config.Logger.Error("Catalog misconfiguration:", genErr)
			writeError(w, confErr.Error(), http.StatusInternalServerError)
			return
		}
		config.Logger.Error("Failed to generate nudge:", genErr)
		writeError(w, "Could not generate nudge", http.StatusInternalServerError)
		return
	}

	if nudge == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if userID != "" && supabase.Enabled() && r.Header.Get("Authorization") != "" {
		client, uid, err := supabase.SupabaseClientFromRequest(r)
		if err != nil {
			config.Logger.Warn("Failed to create Supabase client:", err)
		} else {
			go func() {
				if err := supabase.RecordIntervention(client, uid, nudge.TemplateID, nudge.Timing, nudge.CreatedAt); err != nil {
					config.Logger.Warn("RecordIntervention failed:", err)
				}
			}()
		}
	}

	writeJSON(w, http.StatusOK, types.NudgeResponse{
		Success: true,
		Nudge:   nudge,
	})
}

// resolvePersona prefers an inline persona, then the catalog, then a
// Supabase override when persistence is on.
func (s *Server) resolvePersona(r *http.Request, req types.NudgeRequest) (types.PersonaConfig, bool) {
	if req.Persona != nil {
		return *req.Persona, true
	}
	if req.PersonaID == "" {
		return types.PersonaConfig{}, false
	}

	if persona, ok := s.Catalog.PersonaByID(req.PersonaID); ok {
		return persona, true
	}

	if supabase.Enabled() && r.Header.Get("Authorization") != "" {
		client, _, err := supabase.SupabaseClientFromRequest(r)
		if err == nil {
			persona, found, err := supabase.GetPersonaConfig(client, req.PersonaID)
			if err != nil {
				config.Logger.Warn("Failed to fetch persona config:", err)
			} else if found {
				return persona, true
			}
		}
	}

	return types.PersonaConfig{}, false
}

func (s *Server) resolveUserID(r *http.Request, req types.NudgeRequest) string {
	if r.Header.Get("Authorization") != "" {
		if sub, err := supabase.UserIDFromRequest(r); err == nil {
			return sub
		}
		config.Logger.Warn("Unparseable Authorization header, treating request as anonymous")
	}
	return req.UserID
}

// persistedHistory consults the Supabase intervention log. It returns nil
// unless persistence is configured and the caller is authenticated.
func (s *Server) persistedHistory(r *http.Request) []types.HistoryEntry {
	if !supabase.Enabled() || r.Header.Get("Authorization") == "" {
		return nil
	}

	client, uid, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		return nil
	}

	hist, err := supabase.GetRecentInterventions(client, uid, time.Now().Add(-historyLookback), 20)
	if err != nil {
		config.Logger.Warn("Failed to fetch intervention history:", err)
		return nil
	}
	return hist
}
