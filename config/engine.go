package config

import (
	"os"
	"strconv"
	"time"
)

// EngineConfig holds the runtime tunables for the nudge pipeline.
// Everything has a sane default so the server runs with an empty
// environment.
type EngineConfig struct {
	Port              string
	CatalogPath       string
	MinNudgeInterval  time.Duration
	HistoryMaxEntries int
}

func LoadEngineConfig() EngineConfig {
	return EngineConfig{
		Port:              envString("PORT", "8080"),
		CatalogPath:       os.Getenv("CATALOG_PATH"),
		MinNudgeInterval:  time.Duration(envInt("NUDGE_MIN_INTERVAL_MIN", 30)) * time.Minute,
		HistoryMaxEntries: envInt("HISTORY_MAX_ENTRIES", 100),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
