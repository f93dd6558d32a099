package supabase

import (
	"encoding/json"
	"fmt"

	"clementus360/nudge-coach/types"

	"github.com/supabase-community/supabase-go"
)

// GetPersonaConfig fetches a per-user persona override. A missing row is
// not an error; callers fall back to the catalog persona.
func GetPersonaConfig(client *supabase.Client, personaID string) (types.PersonaConfig, bool, error) {
	resp, _, err := client.From("persona_configs").
		Select("*", "", false).
		Eq("id", personaID).
		Execute()

	if err != nil {
		return types.PersonaConfig{}, false, fmt.Errorf("failed to fetch persona config: %w", err)
	}

	var personas []types.PersonaConfig
	if err := json.Unmarshal(resp, &personas); err != nil {
		return types.PersonaConfig{}, false, fmt.Errorf("failed to unmarshal persona config: %w", err)
	}

	if len(personas) == 0 {
		return types.PersonaConfig{}, false, nil
	}

	return personas[0], true, nil
}

// UpsertPersonaConfig stores or replaces a persona override.
func UpsertPersonaConfig(client *supabase.Client, persona types.PersonaConfig) error {
	_, _, err := client.From("persona_configs").
		Upsert(persona, "", "", "id").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to upsert persona config: %w", err)
	}

	return nil
}
