package coach

import "github.com/abhisek/tutorin/internal/llm"

// PlanSchema defines the JSON schema for coach plan generation.
var PlanSchema = &llm.Schema{
	Name:        "coach-steps",
	Description: "A guided step-by-step plan for a primary-school exercise, in Spanish",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short label for the exercise family (3-6 words, Spanish)",
			},
			"steps": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"description": "Ordered hints, one per turn, smallest checkable pieces first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "One hint in Spanish, phrased as a question the learner can answer",
						},
					},
					"required":             []any{"text"},
					"additionalProperties": false,
				},
			},
			"final_answer": map[string]any{
				"type":        "string",
				"description": "The final result, as short text",
			},
		},
		"required":             []any{"title", "steps", "final_answer"},
		"additionalProperties": false,
	},
}
