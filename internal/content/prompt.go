package content

import (
	"fmt"
	"strings"
)

const supplySystemPrompt = `You are a study-content author creating material for an adaptive learning session.

Rules:
- Generate exactly the requested number of items for the requested phase.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Every item must target one of the priority concepts when any are listed; spread items across them rather than repeating one concept.
- Match the target difficulty: 0 means introductory, 1 means expert-level.
- Notes are 2-4 sentences that explain one idea cleanly.
- Flashcards have a short recall prompt on the front and a complete answer on the back.
- Quiz questions have exactly 4 choices with exactly one correct. Distractors should reflect common mistakes, not random values, and each mistake-based distractor gets a short snake_case misconception label.
- Do not repeat any prompt from the "already served" list.`

// maxPriorPrompts caps how many already-served prompts go into the
// deduplication section.
const maxPriorPrompts = 10

// buildUserMessage constructs the supply prompt from a batch request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Phase: %s\n", req.Phase)
	fmt.Fprintf(&b, "Target difficulty: %.2f\n", req.Difficulty)
	fmt.Fprintf(&b, "Items wanted: %d\n", req.Count)

	b.WriteString("\nPriority concepts (most urgent first):\n")
	if len(req.Concepts) == 0 {
		b.WriteString("None - introduce foundational concepts for the topic")
	} else {
		for i, c := range req.Concepts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
	}

	b.WriteString("\nAlready served in this session:\n")
	b.WriteString(buildDedup(req.PriorPrompts, maxPriorPrompts))

	return b.String()
}

// buildDedup formats prior prompts for the prompt, keeping only the most
// recent max entries. Returns "None" when there is no history.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
