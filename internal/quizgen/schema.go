package quizgen

import "github.com/yuhsin-liao/bopomo/internal/llm"

// QuizSchema is the JSON schema for a generated question batch. The root
// is an object because structured-output APIs reject bare arrays.
var QuizSchema = &llm.Schema{
	Name:        "zhuyin-quiz",
	Description: "A batch of multiple-choice zhuyin reading questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"character": map[string]any{
							"type":        "string",
							"description": "One Traditional Chinese character",
						},
						"zhuyin": map[string]any{
							"type":        "string",
							"description": "The correct zhuyin transcription with tone mark",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "Short English gloss",
						},
						"distractors": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 3 incorrect zhuyin transcriptions",
						},
					},
					"required":             []any{"character", "zhuyin", "meaning", "distractors"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
