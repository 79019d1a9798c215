package misconception

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/studyloop/internal/llm"
)

// suggestionSchema defines the JSON shape for LLM remediation responses.
var suggestionSchema = &llm.Schema{
	Name:        "remediation-suggestions",
	Description: "Short study suggestions addressing recurring misconceptions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "One actionable suggestion per misconception label, in input order",
			},
		},
		"required":             []any{"suggestions"},
		"additionalProperties": false,
	},
}

const remediationSystemPrompt = `You are a study coach. For each misconception ` +
	`label you are given, write one short, concrete suggestion (max two sentences) ` +
	`that helps a learner correct that specific error pattern. Respond only with JSON.`

// LLMRemediator implements Remediator using the LLM provider.
type LLMRemediator struct {
	provider llm.Provider
}

// NewLLMRemediator creates an LLM-backed remediator.
func NewLLMRemediator(provider llm.Provider) *LLMRemediator {
	return &LLMRemediator{provider: provider}
}

// Suggest produces one remediation text per label.
func (r *LLMRemediator) Suggest(ctx context.Context, labels []string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "remediation")

	req := llm.Request{
		System: remediationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Misconception labels:\n- " + strings.Join(labels, "\n- ")},
		},
		Schema:    suggestionSchema,
		MaxTokens: 1024,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return out.Suggestions, nil
}

// StaticRemediator is a deterministic Remediator for offline use and tests.
type StaticRemediator struct{}

// Suggest returns a generic review prompt per label.
func (StaticRemediator) Suggest(_ context.Context, labels []string) ([]string, error) {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = fmt.Sprintf("Review worked examples that target the %q pattern, then re-attempt the related items.", label)
	}
	return out, nil
}
