package main

import (
	"log"
	"net/http"

	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/config"
	"clementus360/nudge-coach/engine"
	"clementus360/nudge-coach/handlers"
	"clementus360/nudge-coach/history"
	"clementus360/nudge-coach/middleware"
	"clementus360/nudge-coach/routes"
	"clementus360/nudge-coach/supabase"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	cfg := config.LoadEngineConfig()

	// A broken catalog is a setup bug; refuse to start.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		config.Logger.Fatal("Failed to load catalog:", err)
	}

	server := handlers.NewServer(
		cat,
		engine.New(cfg.MinNudgeInterval),
		history.NewStore(cfg.HistoryMaxEntries),
	)

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, server)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	log.Println("Server is running on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
