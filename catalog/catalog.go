// Package catalog holds the immutable persona table and intervention
// template catalog. Both are loaded once at startup, validated, and never
// mutated afterwards; the pipeline receives them as plain values.
package catalog

import (
	"fmt"

	"clementus360/nudge-coach/types"
)

type Catalog struct {
	Templates         []types.InterventionTemplate `json:"templates"`
	DefaultTemplateID string                       `json:"default_template_id"`
	Personas          []types.PersonaConfig        `json:"personas"`
}

// Default returns the designated fallback template. Validate guarantees it
// exists, so a nil return means the catalog was never validated.
func (c Catalog) Default() *types.InterventionTemplate {
	for i := range c.Templates {
		if c.Templates[i].ID == c.DefaultTemplateID {
			return &c.Templates[i]
		}
	}
	return nil
}

func (c Catalog) PersonaByID(id string) (types.PersonaConfig, bool) {
	for _, p := range c.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return types.PersonaConfig{}, false
}

// Validate enforces the catalog invariants: at least one template, a
// designated default that exists, every template with at least one trigger
// tag and one well-formed action, every persona threshold in [0,1].
func (c Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return &types.ConfigurationError{Reason: "template catalog is empty"}
	}
	if c.DefaultTemplateID == "" {
		return &types.ConfigurationError{Reason: "no default template designated"}
	}
	if c.Default() == nil {
		return &types.ConfigurationError{Reason: fmt.Sprintf("default template %q not found in catalog", c.DefaultTemplateID)}
	}

	seen := map[string]bool{}
	for _, t := range c.Templates {
		if t.ID == "" {
			return &types.ConfigurationError{Reason: "template with empty id"}
		}
		if seen[t.ID] {
			return &types.ConfigurationError{Reason: fmt.Sprintf("duplicate template id %q", t.ID)}
		}
		seen[t.ID] = true
		if len(t.TriggerTags) == 0 {
			return &types.ConfigurationError{Reason: fmt.Sprintf("template %q has no trigger tags", t.ID)}
		}
		if len(t.Actions) == 0 {
			return &types.ConfigurationError{Reason: fmt.Sprintf("template %q has no actions", t.ID)}
		}
		for i, a := range t.Actions {
			if a.Description == "" {
				return &types.ConfigurationError{Reason: fmt.Sprintf("template %q action %d has an empty description", t.ID, i)}
			}
			if a.DurationMinutes < 0 {
				return &types.ConfigurationError{Reason: fmt.Sprintf("template %q action %d has a negative duration", t.ID, i)}
			}
		}
	}

	for _, p := range c.Personas {
		if p.ID == "" {
			return &types.ConfigurationError{Reason: "persona with empty id"}
		}
		if p.CognitiveLoadThreshold < 0 || p.CognitiveLoadThreshold > 1 {
			return &types.ConfigurationError{Reason: fmt.Sprintf("persona %q threshold out of [0,1]", p.ID)}
		}
	}

	return nil
}
