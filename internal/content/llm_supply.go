package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyloop/internal/llm"
)

// GenConfig controls LLM content generation.
type GenConfig struct {
	// MaxTokens is the token budget for one batch response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultGenConfig returns the recommended generation settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// LLMSupply implements Supply using an LLM provider with per-phase
// structured-output schemas.
type LLMSupply struct {
	provider llm.Provider
	config   GenConfig
}

// NewLLMSupply creates an LLMSupply over the given provider.
func NewLLMSupply(provider llm.Provider, cfg GenConfig) *LLMSupply {
	return &LLMSupply{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before conversion.
type batchOutput struct {
	Items []itemOutput `json:"items"`
}

type itemOutput struct {
	Concept        string      `json:"concept"`
	Body           string      `json:"body"`
	Front          string      `json:"front"`
	Back           string      `json:"back"`
	Question       string      `json:"question"`
	Choices        []string    `json:"choices"`
	Answer         string      `json:"answer"`
	Explanation    string      `json:"explanation"`
	Misconceptions []tagOutput `json:"misconceptions"`
	Difficulty     float64     `json:"difficulty"`
}

type tagOutput struct {
	Choice string `json:"choice"`
	Label  string `json:"label"`
}

// NextItems generates a batch of study items for the request.
func (s *LLMSupply) NextItems(ctx context.Context, req Request) ([]Item, error) {
	ctx = llm.WithPurpose(ctx, "content-batch")

	llmReq := llm.Request{
		System: supplySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      schemaForPhase(req.Phase),
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("generate %s batch: %w", req.Phase, err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse %s batch: %w", req.Phase, err)
	}

	items := make([]Item, 0, len(raw.Items))
	for _, out := range raw.Items {
		item, err := convertItem(req.Phase, out)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// convertItem maps a raw LLM item onto an Item for the given phase and
// rejects structurally broken output the schema cannot catch.
func convertItem(phase string, out itemOutput) (Item, error) {
	switch phase {
	case "flashcards":
		if out.Front == "" || out.Back == "" {
			return Item{}, fmt.Errorf("flashcard for %q missing front or back", out.Concept)
		}
		return Item{
			Kind:    KindFlashcard,
			Concept: out.Concept,
			Prompt:  out.Front,
			Back:    out.Back,
		}, nil

	case "quiz":
		if len(out.Choices) != 4 {
			return Item{}, fmt.Errorf("question for %q has %d choices, want 4", out.Concept, len(out.Choices))
		}
		if !containsChoice(out.Choices, out.Answer) {
			return Item{}, fmt.Errorf("question for %q: answer not among choices", out.Concept)
		}
		tags := make(map[string]string, len(out.Misconceptions))
		for _, t := range out.Misconceptions {
			if t.Choice == out.Answer {
				continue
			}
			tags[t.Choice] = t.Label
		}
		return Item{
			Kind:           KindQuestion,
			Concept:        out.Concept,
			Prompt:         out.Question,
			Choices:        out.Choices,
			Answer:         out.Answer,
			Explanation:    out.Explanation,
			Misconceptions: tags,
			Difficulty:     out.Difficulty,
		}, nil

	default:
		if out.Body == "" {
			return Item{}, fmt.Errorf("note for %q has empty body", out.Concept)
		}
		return Item{
			Kind:    KindNote,
			Concept: out.Concept,
			Prompt:  out.Body,
		}, nil
	}
}

func containsChoice(choices []string, answer string) bool {
	for _, c := range choices {
		if c == answer {
			return true
		}
	}
	return false
}
