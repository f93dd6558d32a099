package catalog

import "clementus360/nudge-coach/types"

// BuiltIn returns the catalog shipped with the binary. Deployments that
// need their own templates point CATALOG_PATH at a JSON file instead.
func BuiltIn() Catalog {
	return Catalog{
		DefaultTemplateID: "general_checkin",
		Templates: []types.InterventionTemplate{
			{
				ID:          "distraction_reset",
				TriggerTags: []string{"distraction", "context_switching", "notifications"},
				Actions: []types.Action{
					{Type: "environment", DurationMinutes: 2, Description: "Close every tab and app that is not part of the current task", Priority: 1},
					{Type: "focus_block", DurationMinutes: 25, Description: "Work a single uninterrupted block on the task you just named", Priority: 2},
				},
				FollowUp: types.FollowUp{DelayMinutes: 30, Type: "check_in"},
			},
			{
				ID:          "overwhelm_triage",
				TriggerTags: []string{"overwhelm", "too_many_tasks", "anxiety"},
				Actions: []types.Action{
					{Type: "brain_dump", DurationMinutes: 5, Description: "Write down everything competing for your attention, no ordering yet", Priority: 1},
					{Type: "triage", DurationMinutes: 5, Description: "Mark the one item that actually has to move today", Priority: 2},
					{Type: "focus_block", DurationMinutes: 20, Description: "Start on that one item and ignore the rest of the list", Priority: 3},
				},
				FollowUp: types.FollowUp{DelayMinutes: 45, Type: "review"},
			},
			{
				ID:          "procrastination_start",
				TriggerTags: []string{"procrastination", "avoidance", "stuck"},
				Actions: []types.Action{
					{Type: "micro_step", DurationMinutes: 2, Description: "Open the file or document for the task you are avoiding", Priority: 1},
					{Type: "timer", DurationMinutes: 10, Description: "Commit to ten minutes only, with permission to stop after", Priority: 2},
				},
				FollowUp: types.FollowUp{DelayMinutes: 15, Type: "check_in"},
			},
			{
				ID:          "deadline_sprint",
				TriggerTags: []string{"deadline", "urgency", "time_pressure"},
				Actions: []types.Action{
					{Type: "scope_cut", DurationMinutes: 3, Description: "List what can be dropped or shipped rough for this deadline", Priority: 1},
					{Type: "focus_block", DurationMinutes: 40, Description: "Sprint on the remaining must-have work", Priority: 2},
				},
				FollowUp: types.FollowUp{DelayMinutes: 60, Type: "review"},
			},
			{
				ID:          "low_energy_recovery",
				TriggerTags: []string{"fatigue", "low_energy", "afternoon_slump"},
				Actions: []types.Action{
					{Type: "movement", DurationMinutes: 5, Description: "Stand up, stretch, or take a short walk away from the screen", Priority: 1},
					{Type: "light_task", DurationMinutes: 15, Description: "Pick a low-effort task to rebuild momentum", Priority: 2},
				},
				FollowUp: types.FollowUp{DelayMinutes: 30, Type: "check_in"},
			},
			{
				ID:          "general_checkin",
				TriggerTags: []string{"general"},
				Actions: []types.Action{
					{Type: "reflection", DurationMinutes: 3, Description: "Name the one thing that would make the next hour feel productive", Priority: 1},
					{Type: "focus_block", DurationMinutes: 25, Description: "Give that one thing a dedicated block", Priority: 2},
				},
				FollowUp: types.FollowUp{DelayMinutes: 60, Type: "check_in"},
			},
		},
		Personas: []types.PersonaConfig{
			{
				ID:                     "analyst",
				LearningStyle:          types.LearningSystematic,
				Communication:          types.CommunicationDirect,
				WorkPattern:            types.WorkDeepFocus,
				MotivationTriggers:     []string{"progress", "mastery", "completion"},
				CognitiveLoadThreshold: 0.8,
			},
			{
				ID:                     "explorer",
				LearningStyle:          types.LearningExploratory,
				Communication:          types.CommunicationEnthusiastic,
				WorkPattern:            types.WorkFlexible,
				MotivationTriggers:     []string{"novelty", "growth", "recognition"},
				CognitiveLoadThreshold: 0.6,
			},
			{
				ID:                     "builder",
				LearningStyle:          types.LearningSystematic,
				Communication:          types.CommunicationEnthusiastic,
				WorkPattern:            types.WorkDeepFocus,
				MotivationTriggers:     []string{"momentum", "streak", "progress"},
				CognitiveLoadThreshold: 0.7,
			},
			{
				ID:                     "juggler",
				LearningStyle:          types.LearningExploratory,
				Communication:          types.CommunicationDirect,
				WorkPattern:            types.WorkFlexible,
				MotivationTriggers:     []string{"variety", "achievement"},
				CognitiveLoadThreshold: 0.5,
			},
		},
	}
}
