package misconception

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/studyloop/internal/store"
)

// Severity classifies how urgently a misconception needs remediation.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

const (
	// SevereOccurrences misses on a low-mastery concept mark a pattern
	// as entrenched rather than accidental.
	SevereOccurrences  = 3
	SevereMasteryBelow = 30.0

	ModerateOccurrences = 2
)

// DeriveSeverity computes severity from the occurrence count and the
// concept's current mastery. Derived on read, never stored: mastery moves
// between sessions and stale severities would mislead.
func DeriveSeverity(occurrences int, masteryScore float64) Severity {
	switch {
	case occurrences >= SevereOccurrences && masteryScore < SevereMasteryBelow:
		return SeveritySevere
	case occurrences >= ModerateOccurrences:
		return SeverityModerate
	default:
		return SeverityMinor
	}
}

// Entry is one (concept, label) pattern with its derived severity.
type Entry struct {
	Concept         string
	Label           string
	OccurrenceCount int
	Severity        Severity
}

// LabelCount aggregates one label's occurrences across concepts.
type LabelCount struct {
	Label string
	Total int
}

// Summary is the remediation-ready view of a learner's misconceptions.
type Summary struct {
	// TopLabels are the most frequent patterns across all concepts.
	TopLabels []LabelCount

	// Entries lists every (concept, label) pair, most frequent first.
	Entries []Entry

	// SeverityCounts is the distribution over Entries.
	SeverityCounts map[Severity]int

	// Suggestions are remediation texts for TopLabels, in order.
	// Empty when no remediation collaborator is configured or it failed.
	Suggestions []string
}

// Remediator produces human-readable remediation suggestions for the
// given misconception labels. External collaborator; may fail.
type Remediator interface {
	Suggest(ctx context.Context, labels []string) ([]string, error)
}

// Registry tracks recurring wrong-answer patterns per concept.
type Registry struct {
	entries    store.MisconceptionRepo
	concepts   store.ConceptRepo
	remediator Remediator // nil disables suggestions
}

// NewRegistry creates a registry. remediator may be nil.
func NewRegistry(entries store.MisconceptionRepo, concepts store.ConceptRepo, remediator Remediator) *Registry {
	return &Registry{entries: entries, concepts: concepts, remediator: remediator}
}

// Record increments the occurrence count for (learner, concept, label) and
// returns the pattern's new severity.
func (r *Registry) Record(ctx context.Context, learnerID, concept, label string) (Severity, error) {
	count, err := r.entries.Increment(ctx, learnerID, concept, label)
	if err != nil {
		return "", fmt.Errorf("record misconception: %w", err)
	}

	mastery := 0.0
	rec, err := r.concepts.Get(ctx, learnerID, concept)
	if err != nil {
		return "", fmt.Errorf("load concept mastery: %w", err)
	}
	if rec != nil {
		mastery = rec.MasteryScore
	}

	return DeriveSeverity(count, mastery), nil
}

// GetSummary builds the learner's misconception summary with the topN most
// frequent labels. A failing remediator degrades to an empty Suggestions
// list; the ranked data is always returned.
func (r *Registry) GetSummary(ctx context.Context, learnerID string, topN int) (*Summary, error) {
	all, err := r.entries.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list misconceptions: %w", err)
	}

	masteryByConcept := make(map[string]float64)
	records, err := r.concepts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list concept records: %w", err)
	}
	for _, rec := range records {
		masteryByConcept[rec.Concept] = rec.MasteryScore
	}

	summary := &Summary{SeverityCounts: make(map[Severity]int)}
	totals := make(map[string]int)

	for _, m := range all {
		severity := DeriveSeverity(m.OccurrenceCount, masteryByConcept[m.Concept])
		summary.Entries = append(summary.Entries, Entry{
			Concept:         m.Concept,
			Label:           m.Label,
			OccurrenceCount: m.OccurrenceCount,
			Severity:        severity,
		})
		summary.SeverityCounts[severity]++
		totals[m.Label] += m.OccurrenceCount
	}

	sort.Slice(summary.Entries, func(i, j int) bool {
		if summary.Entries[i].OccurrenceCount != summary.Entries[j].OccurrenceCount {
			return summary.Entries[i].OccurrenceCount > summary.Entries[j].OccurrenceCount
		}
		if summary.Entries[i].Concept != summary.Entries[j].Concept {
			return summary.Entries[i].Concept < summary.Entries[j].Concept
		}
		return summary.Entries[i].Label < summary.Entries[j].Label
	})

	for label, total := range totals {
		summary.TopLabels = append(summary.TopLabels, LabelCount{Label: label, Total: total})
	}
	sort.Slice(summary.TopLabels, func(i, j int) bool {
		if summary.TopLabels[i].Total != summary.TopLabels[j].Total {
			return summary.TopLabels[i].Total > summary.TopLabels[j].Total
		}
		return summary.TopLabels[i].Label < summary.TopLabels[j].Label
	})
	if topN > 0 && len(summary.TopLabels) > topN {
		summary.TopLabels = summary.TopLabels[:topN]
	}

	if r.remediator != nil && len(summary.TopLabels) > 0 {
		labels := make([]string, len(summary.TopLabels))
		for i, lc := range summary.TopLabels {
			labels[i] = lc.Label
		}
		if suggestions, err := r.remediator.Suggest(ctx, labels); err == nil {
			summary.Suggestions = suggestions
		}
	}

	return summary, nil
}
