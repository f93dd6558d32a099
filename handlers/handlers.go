package handlers

import (
	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/engine"
	"clementus360/nudge-coach/history"
)

// Server bundles the immutable catalog, the pipeline, and the shared
// history store behind the HTTP handlers.
type Server struct {
	Catalog catalog.Catalog
	Engine  *engine.Engine
	History *history.Store
}

func NewServer(cat catalog.Catalog, eng *engine.Engine, store *history.Store) *Server {
	return &Server{
		Catalog: cat,
		Engine:  eng,
		History: store,
	}
}
