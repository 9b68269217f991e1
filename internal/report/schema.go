package report

import "github.com/abhisek/promptlab/internal/evaluator"

// Schema is a named JSON schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// ReportSchema describes the JSON document written by `evaluate --json`.
var ReportSchema = &Schema{
	Name:        "prompt-report",
	Description: "Heuristic feedback for a single prompt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise": map[string]any{
				"type":        "string",
				"description": "Exercise id the prompt was evaluated against",
			},
			"prompt": map[string]any{
				"type":        "string",
				"description": "The evaluated prompt, omitted unless requested",
			},
			"score": map[string]any{
				"type":    "integer",
				"minimum": evaluator.MinScore,
				"maximum": evaluator.MaxScore,
			},
			"rating": map[string]any{
				"type": "string",
				"enum": []any{
					evaluator.RatingExcellent,
					evaluator.RatingGood,
					evaluator.RatingNeedsWork,
					evaluator.RatingPoor,
				},
			},
			"suggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"warnings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"exercise", "score", "rating", "suggestions", "warnings"},
		"additionalProperties": false,
	},
}

// BatchSchema describes the JSON array written by `evaluate --file --json`.
var BatchSchema = &Schema{
	Name:        "prompt-report-batch",
	Description: "Heuristic feedback for a batch of prompts, in input order",
	Definition: map[string]any{
		"type":  "array",
		"items": ReportSchema.Definition,
	},
}
