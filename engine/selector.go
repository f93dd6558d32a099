package engine

import (
	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/types"
)

// StrategyFitFunc scores how well a template's approach suits a persona in
// the current context, in [0,1]. It is a pluggable model hook; the default
// is a constant, so tag intersection dominates selection.
type StrategyFitFunc func(tmpl types.InterventionTemplate, persona types.PersonaConfig, ctx types.Context) float64

// DefaultStrategyFit is the placeholder model: every template fits equally.
func DefaultStrategyFit(types.InterventionTemplate, types.PersonaConfig, types.Context) float64 {
	return 0.85
}

// SelectTemplate picks the template whose trigger tags best match the
// context's active triggers. Ranking is by intersection size, then
// strategy fit, then catalog order; with no match at all the designated
// default template is returned. An empty catalog is a setup bug and
// returns ConfigurationError.
func SelectTemplate(cat catalog.Catalog, ctx types.Context, persona types.PersonaConfig, fit StrategyFitFunc) (*types.InterventionTemplate, error) {
	if len(cat.Templates) == 0 {
		return nil, &types.ConfigurationError{Reason: "template catalog is empty"}
	}
	if fit == nil {
		fit = DefaultStrategyFit
	}

	active := make(map[string]bool, len(ctx.Triggers))
	for _, tag := range ctx.Triggers {
		active[tag] = true
	}

	var best *types.InterventionTemplate
	bestOverlap := 0
	bestFit := 0.0

	for i := range cat.Templates {
		tmpl := &cat.Templates[i]
		overlap := 0
		for _, tag := range tmpl.TriggerTags {
			if active[tag] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		f := fit(*tmpl, persona, ctx)
		// Strict comparisons keep catalog order as the final tie-break.
		if overlap > bestOverlap || (overlap == bestOverlap && f > bestFit) {
			best = tmpl
			bestOverlap = overlap
			bestFit = f
		}
	}

	if best != nil {
		return best, nil
	}

	def := cat.Default()
	if def == nil {
		return nil, &types.ConfigurationError{Reason: "no default template designated"}
	}
	return def, nil
}
