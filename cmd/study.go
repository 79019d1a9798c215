package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/studyloop/internal/content"
	"github.com/abhisek/studyloop/internal/llm"
	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/misconception"
	"github.com/abhisek/studyloop/internal/session"
	"github.com/abhisek/studyloop/internal/spacedrep"
	"github.com/abhisek/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study <topic>",
	Short: "Start or resume a study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		controller := buildController(ctx, st)
		learner := resolveLearner(cmd)

		return runStudyLoop(ctx, controller, learner, args[0])
	},
}

// buildController wires the session controller over the store. The LLM
// supply is used when a provider is configured; otherwise the session
// falls back to the deterministic built-in supply.
func buildController(ctx context.Context, st *store.Store) *session.Controller {
	var supply content.Supply
	var remediator misconception.Remediator

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using built-in content.")
		supply = content.NewStaticSupply()
	} else {
		supply = content.NewLLMSupply(provider, content.DefaultGenConfig())
		remediator = misconception.NewLLMRemediator(provider)
	}

	masteryService := mastery.NewService(st.ConceptRepo())
	reviewScheduler := spacedrep.NewScheduler(st.ConceptRepo())
	scheduler := content.NewScheduler(supply, masteryService, reviewScheduler, content.DefaultConfig())
	registry := misconception.NewRegistry(st.MisconceptionRepo(), st.ConceptRepo(), remediator)

	return session.NewController(
		st.SessionRepo(),
		st.EventRepo(),
		st.ConceptRepo(),
		registry,
		scheduler,
		session.DefaultConfig(),
	)
}

// outcome reports how serving one item or prompt ended.
type outcome struct {
	stop   bool
	skipTo session.Phase
}

func (o outcome) interrupted() bool {
	return o.stop || o.skipTo != ""
}

// runStudyLoop drives the line-based interactive session.
func runStudyLoop(ctx context.Context, controller *session.Controller, learner, topic string) error {
	in := bufio.NewScanner(os.Stdin)

	sess, err := controller.StartSession(ctx, learner, topic, time.Now())
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if sess.CardsShown > 0 {
		fmt.Printf("Resuming session (%d cards in, %d XP).\n", sess.CardsShown, sess.TotalXP)
	} else {
		fmt.Printf("Starting a new session on %q.\n", topic)
	}
	fmt.Println(`Commands: "skip notes|flashcards|quiz", "end".`)

	for {
		items, state, err := controller.NextBatch(ctx, sess.SessionID, time.Now())
		if err != nil {
			var unavail *content.ErrSupplyUnavailable
			if errors.As(err, &unavail) {
				fmt.Println("No more cards available right now. Session ended.")
				printSummary(state)
				return nil
			}
			return err
		}

		if state.Phase == string(session.PhaseEnded) {
			printSummary(state)
			return nil
		}

		fmt.Printf("\n--- %s ---\n", strings.ToUpper(state.Phase))

		for _, item := range items {
			out, err := serveItem(ctx, in, controller, sess.SessionID, item)
			if err != nil {
				return err
			}
			if out.stop {
				state, err := controller.EndSession(ctx, sess.SessionID, time.Now())
				if err != nil {
					return err
				}
				printSummary(state)
				return nil
			}
			if out.skipTo != "" {
				if _, err := controller.SkipPhase(ctx, sess.SessionID, out.skipTo, time.Now()); err != nil {
					var invalid *session.ErrInvalidPhaseTransition
					if errors.As(err, &invalid) {
						fmt.Println(invalid.Error())
						continue
					}
					return err
				}
				break
			}
		}
	}
}

// serveItem displays one item and records the learner's response.
func serveItem(ctx context.Context, in *bufio.Scanner, controller *session.Controller, sessionID string, item content.Item) (outcome, error) {
	switch item.Kind {
	case content.KindNote:
		fmt.Printf("\n[%s]\n%s\n", item.Concept, item.Prompt)
		_, out, err := prompt(in, "(enter to continue) ")
		return out, err

	case content.KindFlashcard:
		fmt.Printf("\nFront: %s\n", item.Prompt)
		if _, out, err := prompt(in, "(enter to reveal) "); out.interrupted() || err != nil {
			return out, err
		}
		fmt.Printf("Back:  %s\n", item.Back)
		rating, out, err := promptInt(in, "How well did you recall it? (0-5) ", 0, 5)
		if out.interrupted() || err != nil {
			return out, err
		}
		res, err := controller.RecordResponse(ctx, sessionID, session.Response{
			Concept: item.Concept,
			Type:    session.TypeFlashcard,
			Rating:  &rating,
		}, time.Now())
		if err != nil {
			return outcome{}, err
		}
		reportResult(res)
		return outcome{}, nil

	case content.KindQuestion:
		fmt.Printf("\n%s\n", item.Prompt)
		for i, choice := range item.Choices {
			fmt.Printf("  %d. %s\n", i+1, choice)
		}
		pick, out, err := promptInt(in, "Your answer (number): ", 1, len(item.Choices))
		if out.interrupted() || err != nil {
			return out, err
		}
		confidence, out, err := promptInt(in, "How confident are you? (0-100) ", 0, 100)
		if out.interrupted() || err != nil {
			return out, err
		}

		chosen := item.Choices[pick-1]
		correct := chosen == item.Answer
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. The answer is: %s\n", item.Answer)
		}
		if item.Explanation != "" {
			fmt.Println(item.Explanation)
		}

		res, err := controller.RecordResponse(ctx, sessionID, session.Response{
			Concept:            item.Concept,
			Type:               session.TypeQuiz,
			Correct:            correct,
			Confidence:         &confidence,
			MisconceptionLabel: item.Misconceptions[chosen],
		}, time.Now())
		if err != nil {
			return outcome{}, err
		}
		reportResult(res)
		return outcome{}, nil
	}

	return outcome{}, nil
}

func reportResult(res *session.Result) {
	if res.XPAwarded > 0 {
		fmt.Printf("+%d XP (streak %d)\n", res.XPAwarded, res.Session.Streak)
	}
	if res.Milestone {
		fmt.Printf("\n*** Milestone! %d cards, %d XP, best streak %d ***\n",
			res.Session.CardsShown, res.Session.TotalXP, res.Session.BestStreak)
	}
}

func printSummary(sess *store.SessionData) {
	fmt.Printf("\nSession complete: %d cards, %d XP, best streak %d.\n",
		sess.CardsShown, sess.TotalXP, sess.BestStreak)
}

// prompt reads one line and recognizes the session-level commands.
func prompt(in *bufio.Scanner, label string) (string, outcome, error) {
	fmt.Print(label)
	if !in.Scan() {
		return "", outcome{stop: true}, in.Err()
	}
	text := strings.TrimSpace(in.Text())
	if text == "end" || text == "quit" {
		return "", outcome{stop: true}, nil
	}
	if target, ok := strings.CutPrefix(text, "skip "); ok {
		return "", outcome{skipTo: session.Phase(strings.TrimSpace(target))}, nil
	}
	return text, outcome{}, nil
}

// promptInt reads an integer in [min, max], re-asking on bad input.
func promptInt(in *bufio.Scanner, label string, min, max int) (int, outcome, error) {
	for {
		text, out, err := prompt(in, label)
		if out.interrupted() || err != nil {
			return 0, out, err
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < min || n > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, outcome{}, nil
	}
}
