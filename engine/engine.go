package engine

import (
	"time"

	"clementus360/nudge-coach/catalog"
	"clementus360/nudge-coach/types"
)

// Engine wires the pipeline stages together. Fit and Timing.Now are
// injectable for tests; the zero-ish defaults from New are what production
// uses.
type Engine struct {
	Fit    StrategyFitFunc
	Timing TimingOptimizer
}

func New(minInterval time.Duration) *Engine {
	return &Engine{
		Fit: DefaultStrategyFit,
		Timing: TimingOptimizer{
			MinInterval: minInterval,
			Now:         time.Now,
		},
	}
}

// GenerateNudge runs the full pipeline:
//
//	context -> score -> template -> personalized actions -> timing -> nudge
//
// A (nil, nil) return means the timing stage decided to skip. The only
// error surfaced is ConfigurationError from selection; it indicates a
// broken catalog and must not be swallowed.
func (e *Engine) GenerateNudge(persona types.PersonaConfig, ctx types.Context, cat catalog.Catalog, history []types.HistoryEntry) (*types.Nudge, error) {
	score := ScoreContext(ctx)

	tmpl, err := SelectTemplate(cat, ctx, persona, e.Fit)
	if err != nil {
		return nil, err
	}

	actions := PersonalizeActions(tmpl.Actions, persona)
	decision := e.Timing.Optimize(ctx, persona, score, history)

	return FormatNudge(tmpl, actions, decision, persona, score), nil
}
