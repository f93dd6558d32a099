package routes

import (
	"net/http"

	"clementus360/nudge-coach/handlers"
)

// RegisterHistoryRoutes registers frequency-cap log routes
func RegisterHistoryRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("GET /history", s.GetHistoryHandler)
	mux.HandleFunc("DELETE /history", s.ClearHistoryHandler)
}
