package content

import "github.com/abhisek/studyloop/internal/llm"

// noteBatchSchema defines the JSON schema for notes-phase batches.
var noteBatchSchema = &llm.Schema{
	Name:        "note-batch",
	Description: "A batch of short expository study notes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept": map[string]any{
							"type":        "string",
							"description": "The concept this note covers",
						},
						"body": map[string]any{
							"type":        "string",
							"description": "The note text, 2-4 sentences, plain ASCII",
						},
					},
					"required":             []any{"concept", "body"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

// flashcardBatchSchema defines the JSON schema for flashcard batches.
var flashcardBatchSchema = &llm.Schema{
	Name:        "flashcard-batch",
	Description: "A batch of front/back recall flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept": map[string]any{
							"type":        "string",
							"description": "The concept this card exercises",
						},
						"front": map[string]any{
							"type":        "string",
							"description": "The recall prompt shown first",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side of the card",
						},
					},
					"required":             []any{"concept", "front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

// quizBatchSchema defines the JSON schema for quiz question batches.
// Each wrong choice may carry a misconception label so incorrect answers
// can be attributed to a specific error pattern.
var quizBatchSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of multiple-choice quiz questions with misconception tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept": map[string]any{
							"type":        "string",
							"description": "The concept this question tests",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, self-contained, plain ASCII",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options, one correct",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct choice",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief worked explanation shown after answering",
						},
						"misconceptions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"choice": map[string]any{
										"type":        "string",
										"description": "The wrong choice text",
									},
									"label": map[string]any{
										"type":        "string",
										"description": "Short snake_case misconception label, e.g. off_by_one",
									},
								},
								"required":             []any{"choice", "label"},
								"additionalProperties": false,
							},
							"description": "Misconception labels for distractors that reflect a known error pattern",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "Self-assessed difficulty from 0 (easy) to 1 (hard)",
						},
					},
					"required":             []any{"concept", "question", "choices", "answer", "explanation", "misconceptions", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}

// schemaForPhase returns the response schema for the given session phase.
func schemaForPhase(phase string) *llm.Schema {
	switch phase {
	case "flashcards":
		return flashcardBatchSchema
	case "quiz":
		return quizBatchSchema
	default:
		return noteBatchSchema
	}
}
