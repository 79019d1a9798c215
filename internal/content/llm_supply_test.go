package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/studyloop/internal/llm"
)

func quizRequest() Request {
	return Request{
		LearnerID:  "kai",
		Topic:      "go",
		Phase:      "quiz",
		Difficulty: 0.4,
		Count:      1,
		Concepts:   []string{"goroutines"},
	}
}

func TestLLMSupply_QuizBatch(t *testing.T) {
	payload := `{"items":[{
		"concept": "goroutines",
		"question": "What starts a goroutine?",
		"choices": ["go f()", "run f()", "spawn f()", "async f()"],
		"answer": "go f()",
		"explanation": "The go statement starts a new goroutine.",
		"misconceptions": [{"choice": "async f()", "label": "js_async_confusion"}],
		"difficulty": 0.3
	}]}`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	supply := NewLLMSupply(mock, DefaultGenConfig())

	items, err := supply.NextItems(context.Background(), quizRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Kind != KindQuestion {
		t.Errorf("kind = %q, want %q", item.Kind, KindQuestion)
	}
	if item.Answer != "go f()" {
		t.Errorf("answer = %q", item.Answer)
	}
	if item.Misconceptions["async f()"] != "js_async_confusion" {
		t.Errorf("misconception tag missing: %v", item.Misconceptions)
	}

	// The request should have gone out with the quiz schema.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "quiz-batch" {
		t.Errorf("expected quiz-batch schema, got %v", mock.Calls[0].Schema)
	}
}

func TestLLMSupply_FlashcardBatch(t *testing.T) {
	payload := `{"items":[{"concept":"channels","front":"What does close(ch) do?","back":"Marks the channel as closed; receives drain then yield zero values."}]}`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	supply := NewLLMSupply(mock, DefaultGenConfig())

	req := quizRequest()
	req.Phase = "flashcards"

	items, err := supply.NextItems(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Kind != KindFlashcard {
		t.Errorf("kind = %q, want %q", items[0].Kind, KindFlashcard)
	}
	if items[0].Prompt == "" || items[0].Back == "" {
		t.Errorf("flashcard sides missing: %+v", items[0])
	}
}

func TestLLMSupply_AnswerNotInChoicesRejected(t *testing.T) {
	payload := `{"items":[{
		"concept": "goroutines",
		"question": "What starts a goroutine?",
		"choices": ["run f()", "spawn f()", "async f()", "do f()"],
		"answer": "go f()",
		"explanation": "x",
		"misconceptions": [],
		"difficulty": 0.3
	}]}`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	supply := NewLLMSupply(mock, DefaultGenConfig())

	_, err := supply.NextItems(context.Background(), quizRequest())
	if err == nil {
		t.Fatal("expected error for answer missing from choices")
	}
}

func TestLLMSupply_TagOnCorrectChoiceDropped(t *testing.T) {
	payload := `{"items":[{
		"concept": "goroutines",
		"question": "What starts a goroutine?",
		"choices": ["go f()", "run f()", "spawn f()", "async f()"],
		"answer": "go f()",
		"explanation": "x",
		"misconceptions": [{"choice": "go f()", "label": "bogus"}],
		"difficulty": 0.3
	}]}`

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	supply := NewLLMSupply(mock, DefaultGenConfig())

	items, err := supply.NextItems(context.Background(), quizRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items[0].Misconceptions) != 0 {
		t.Errorf("tag on the correct choice should be dropped: %v", items[0].Misconceptions)
	}
}

func TestLLMSupply_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	supply := NewLLMSupply(mock, DefaultGenConfig())

	_, err := supply.NextItems(context.Background(), quizRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
