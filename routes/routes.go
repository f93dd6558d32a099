package routes

import (
	"net/http"

	"clementus360/nudge-coach/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, s *handlers.Server) {
	RegisterNudgeRoutes(mux, s)
	RegisterCatalogRoutes(mux, s)
	RegisterHistoryRoutes(mux, s)

	mux.HandleFunc("GET /health", s.HealthHandler)
}
