package routes

import (
	"net/http"

	"clementus360/nudge-coach/handlers"
)

// RegisterNudgeRoutes registers the pipeline endpoint
func RegisterNudgeRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("POST /nudge", s.NudgeHandler)
}
