package handlers

import (
	"net/http"

	"clementus360/nudge-coach/supabase"
	"clementus360/nudge-coach/types"
)

// historyUserID resolves the user whose log is being inspected: the JWT
// sub when present, the user_id query parameter otherwise.
func historyUserID(r *http.Request) string {
	if r.Header.Get("Authorization") != "" {
		if sub, err := supabase.UserIDFromRequest(r); err == nil {
			return sub
		}
	}
	return r.URL.Query().Get("user_id")
}

func (s *Server) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := historyUserID(r)
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, types.GetHistoryResponse{
		Success: true,
		UserID:  userID,
		History: s.History.Recent(userID),
	})
}

func (s *Server) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := historyUserID(r)
	if userID == "" {
		writeError(w, "Missing user_id", http.StatusBadRequest)
		return
	}

	s.History.Clear(userID)

	writeJSON(w, http.StatusOK, types.ClearHistoryResponse{
		Success: true,
		Message: "History cleared",
	})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
