package engine

import (
	"time"

	"clementus360/nudge-coach/types"
)

// Decision thresholds on the timing-fitness score.
const (
	immediateScoreThreshold = 0.8
	deferScoreThreshold     = 0.3
)

// A deadline this close always wins, whatever the score says.
const deadlineImminentMinutes = 15

// More interruptions per hour than this and "immediate" is downgraded to
// "next_break": the user is already being pulled out of flow constantly.
const interruptionStormPerHour = 6.0

// TimingOptimizer turns a context score into a delivery decision and
// enforces the per-user frequency cap against the supplied history.
type TimingOptimizer struct {
	MinInterval time.Duration
	Now         func() time.Time // defaults to time.Now
}

// Optimize is deterministic given identical context, persona, score,
// history, and clock.
func (o TimingOptimizer) Optimize(ctx types.Context, persona types.PersonaConfig, score float64, history []types.HistoryEntry) types.TimingDecision {
	now := time.Now()
	if o.Now != nil {
		now = o.Now()
	}

	// Frequency cap first: a recent intervention suppresses everything,
	// including imminent deadlines.
	if last := latest(history); last != nil && now.Sub(last.Timestamp) < o.MinInterval {
		return types.TimingSkip
	}

	if ctx.DeadlineMinutes != nil && *ctx.DeadlineMinutes <= deadlineImminentMinutes {
		return types.TimingImmediate
	}

	// Cognitive load above the persona's tolerance means now is a bad
	// moment to add anything.
	if 1-score > persona.CognitiveLoadThreshold && persona.CognitiveLoadThreshold > 0 {
		return types.TimingDefer
	}

	switch {
	case score > immediateScoreThreshold:
		if ctx.InterruptionsPerHour > interruptionStormPerHour {
			return types.TimingNextBreak
		}
		return types.TimingImmediate
	case score < deferScoreThreshold:
		return types.TimingDefer
	default:
		return types.TimingNextBreak
	}
}

func latest(history []types.HistoryEntry) *types.HistoryEntry {
	var last *types.HistoryEntry
	for i := range history {
		if last == nil || history[i].Timestamp.After(last.Timestamp) {
			last = &history[i]
		}
	}
	return last
}
