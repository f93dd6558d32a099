package routes

import (
	"net/http"

	"clementus360/nudge-coach/handlers"
)

// RegisterCatalogRoutes registers read-only catalog inspection routes
func RegisterCatalogRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("GET /personas", s.GetPersonasHandler)
	mux.HandleFunc("PUT /personas", s.UpsertPersonaHandler)
	mux.HandleFunc("GET /templates", s.GetTemplatesHandler)
}
