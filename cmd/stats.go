package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/studyloop/internal/calibration"
	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/misconception"
	"github.com/abhisek/studyloop/internal/spacedrep"
	"github.com/abhisek/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [topic]",
	Short: "Show mastery, review schedule, calibration, and misconceptions",
	Args:  cobra.MaximumNArgs(1),
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

		ctx := context.Background()
		learner := resolveLearner(cmd)
		now := time.Now()

		printWeakConcepts(ctx, st, learner)
		printDueReviews(ctx, st, learner, now)
		if len(args) == 1 {
			printCalibration(ctx, st, learner, args[0])
		}
		printMisconceptions(ctx, st, learner)

		return nil
	},
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func printWeakConcepts(ctx context.Context, st *store.Store, learner string) {
	section("Weak concepts")

	weak, err := mastery.NewService(st.ConceptRepo()).WeakConcepts(ctx, learner)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(weak) == 0 {
		fmt.Println("None - nothing below the mastery threshold.")
		return
	}
	for _, w := range weak {
		fmt.Printf("%-30s mastery %5.1f  (%d/%d correct)\n",
			w.Concept, w.MasteryScore, w.CorrectAttempts, w.TotalAttempts)
	}
}

func printDueReviews(ctx context.Context, st *store.Store, learner string, now time.Time) {
	section("Due reviews")

	due, err := spacedrep.NewScheduler(st.ConceptRepo()).DueReviews(ctx, learner, now)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(due) == 0 {
		fmt.Println("Nothing due.")
		return
	}
	for _, d := range due {
		fmt.Printf("%-30s %.1f days overdue  mastery %5.1f\n",
			d.Concept, d.OverdueDays, d.MasteryScore)
	}
}

func printCalibration(ctx context.Context, st *store.Store, learner, topic string) {
	section("Calibration (" + topic + ")")

	svc := calibration.NewService(st.EventRepo())
	snap, err := svc.Snapshot(ctx, learner, topic)
	if err != nil {
		var insufficient *calibration.ErrInsufficientData
		if errors.As(err, &insufficient) {
			fmt.Printf("Not enough data yet (%d of %d responses).\n",
				insufficient.Have, insufficient.Need)
			return
		}
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Responses:           %d\n", snap.TotalResponses)
	fmt.Printf("Brier score:         %.3f\n", snap.BrierScore)
	fmt.Printf("ECE:                 %.3f\n", snap.ECE)
	fmt.Printf("Overconfidence:      %.3f\n", snap.OverconfidenceIndex)
	for _, b := range snap.Buckets {
		if b.Count == 0 {
			continue
		}
		fmt.Printf("  %3d-%3d%%: %3d responses, %3.0f%% correct\n",
			b.Low, b.High, b.Count, b.Accuracy()*100)
	}

	gaps, err := svc.DunningKrugerConcepts(ctx, learner, topic)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(gaps) > 0 {
		fmt.Println("\nOverconfident concepts:")
		for _, g := range gaps {
			fmt.Printf("%-30s confidence %5.1f vs accuracy %5.1f (gap %.1f)\n",
				g.Concept, g.AvgConfidence, g.Accuracy, g.Gap)
		}
	}
}

func printMisconceptions(ctx context.Context, st *store.Store, learner string) {
	section("Misconceptions")

	registry := misconception.NewRegistry(st.MisconceptionRepo(), st.ConceptRepo(), nil)
	summary, err := registry.GetSummary(ctx, learner, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(summary.Entries) == 0 {
		fmt.Println("Not enough data yet.")
		return
	}

	for _, e := range summary.Entries {
		fmt.Printf("%-30s %-24s x%d  [%s]\n", e.Concept, e.Label, e.OccurrenceCount, e.Severity)
	}
}
