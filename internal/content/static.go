package content

import (
	"context"
	"fmt"
)

// StaticSupply is a deterministic Supply for tests and offline use. It
// fabricates items from the requested concepts, cycling when the batch is
// larger than the concept list.
type StaticSupply struct {
	// Calls records every request, newest last.
	Calls []Request

	// Err, when set, is returned from every NextItems call.
	Err error
}

// NewStaticSupply creates an empty StaticSupply.
func NewStaticSupply() *StaticSupply {
	return &StaticSupply{}
}

func (s *StaticSupply) NextItems(_ context.Context, req Request) ([]Item, error) {
	s.Calls = append(s.Calls, req)

	if s.Err != nil {
		return nil, s.Err
	}

	concepts := req.Concepts
	if len(concepts) == 0 {
		concepts = []string{req.Topic}
	}

	items := make([]Item, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		concept := concepts[i%len(concepts)]
		items = append(items, s.buildItem(req.Phase, concept, i))
	}
	return items, nil
}

func (s *StaticSupply) buildItem(phase, concept string, n int) Item {
	switch phase {
	case "flashcards":
		return Item{
			Kind:    KindFlashcard,
			Concept: concept,
			Prompt:  fmt.Sprintf("Recall %s (%d)", concept, n),
			Back:    fmt.Sprintf("Definition of %s", concept),
		}
	case "quiz":
		correct := fmt.Sprintf("%s is A", concept)
		wrong := fmt.Sprintf("%s is B", concept)
		return Item{
			Kind:        KindQuestion,
			Concept:     concept,
			Prompt:      fmt.Sprintf("Which statement about %s is true? (%d)", concept, n),
			Choices:     []string{correct, wrong, concept + " is C", concept + " is D"},
			Answer:      correct,
			Explanation: fmt.Sprintf("Option A restates the definition of %s.", concept),
			Misconceptions: map[string]string{
				wrong: "definition_confusion",
			},
			Difficulty: 0.5,
		}
	default:
		return Item{
			Kind:    KindNote,
			Concept: concept,
			Prompt:  fmt.Sprintf("Note %d: %s in brief.", n, concept),
		}
	}
}
