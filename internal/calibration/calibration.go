package calibration

import (
	"fmt"
	"sort"

	"github.com/abhisek/studyloop/internal/store"
)

const (
	// BucketWidth is the confidence range covered by each bucket.
	BucketWidth = 20

	// NumBuckets covers the 0-100 confidence range in 20-point widths.
	NumBuckets = 5

	// MinResponses is the threshold below which a snapshot is provisional.
	// Showing percentages computed from a handful of answers reads as
	// "perfectly calibrated" when it is really "no data".
	MinResponses = 10

	// DunningKrugerGap is the confidence-over-accuracy gap (in points)
	// that flags a concept as overconfident.
	DunningKrugerGap = 20.0
)

// ErrInsufficientData signals that too few scored responses exist for a
// meaningful snapshot. It is a "not yet available" state, not a failure.
type ErrInsufficientData struct {
	Have int
	Need int
}

func (e *ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient calibration data: %d of %d responses", e.Have, e.Need)
}

// Bucket accumulates responses whose stated confidence falls in [Low, High].
type Bucket struct {
	Low        int
	High       int
	Count      int
	SumCorrect int
}

// Accuracy returns the fraction correct in this bucket, 0 if empty.
func (b Bucket) Accuracy() float64 {
	if b.Count == 0 {
		return 0
	}
	return float64(b.SumCorrect) / float64(b.Count)
}

// Midpoint returns the bucket's central confidence as a 0-1 fraction.
func (b Bucket) Midpoint() float64 {
	return float64(b.Low+b.High) / 2.0 / 100.0
}

// Snapshot is the derived calibration state for one learner and topic.
type Snapshot struct {
	Buckets             [NumBuckets]Bucket
	BrierScore          float64
	ECE                 float64
	OverconfidenceIndex float64
	TotalResponses      int
}

// ConceptGap is one concept whose stated confidence outruns its accuracy.
type ConceptGap struct {
	Concept       string
	AvgConfidence float64 // 0-100
	Accuracy      float64 // 0-100
	Gap           float64 // points
	Responses     int
}

// newBuckets returns the fixed bucket layout: 0-20, 21-40, ..., 81-100.
func newBuckets() [NumBuckets]Bucket {
	var bs [NumBuckets]Bucket
	for i := range bs {
		bs[i].Low = i*BucketWidth + 1
		bs[i].High = (i + 1) * BucketWidth
	}
	bs[0].Low = 0
	return bs
}

// bucketIndex maps a confidence value to its bucket.
func bucketIndex(confidence int) int {
	if confidence <= BucketWidth {
		return 0
	}
	idx := (confidence - 1) / BucketWidth
	if idx >= NumBuckets {
		idx = NumBuckets - 1
	}
	return idx
}

// scored reports whether an event contributes to calibration: quiz
// responses that carried a stated confidence.
func scored(e store.ResponseEventRecord) bool {
	return e.ResponseType == "quiz" && e.Confidence != nil
}

// Compute rebuilds a snapshot from the full response history. Recomputing
// from the durable log instead of patching incrementally means the numbers
// can never drift from the events that produced them. Pure; never fails.
func Compute(events []store.ResponseEventRecord) *Snapshot {
	snap := &Snapshot{Buckets: newBuckets()}

	var brierSum, overSum float64
	for _, e := range events {
		if !scored(e) {
			continue
		}
		conf := float64(*e.Confidence) / 100.0
		outcome := 0.0
		if e.Correct {
			outcome = 1.0
		}

		b := &snap.Buckets[bucketIndex(*e.Confidence)]
		b.Count++
		if e.Correct {
			b.SumCorrect++
		}

		diff := conf - outcome
		brierSum += diff * diff
		if diff > 0 {
			overSum += diff
		}
		snap.TotalResponses++
	}

	if snap.TotalResponses == 0 {
		return snap
	}

	n := float64(snap.TotalResponses)
	snap.BrierScore = brierSum / n
	snap.OverconfidenceIndex = overSum / n

	// Empty buckets are excluded: they carry no evidence.
	for _, b := range snap.Buckets {
		if b.Count == 0 {
			continue
		}
		gap := b.Accuracy() - b.Midpoint()
		if gap < 0 {
			gap = -gap
		}
		snap.ECE += float64(b.Count) / n * gap
	}

	return snap
}

// DunningKruger returns concepts whose average stated confidence exceeds
// actual accuracy by at least DunningKrugerGap points, widest gap first.
// This surfaces specific overconfident concepts, distinct from the
// aggregate OverconfidenceIndex.
func DunningKruger(events []store.ResponseEventRecord) []ConceptGap {
	type agg struct {
		confSum int
		correct int
		count   int
	}
	byConcept := make(map[string]*agg)
	for _, e := range events {
		if !scored(e) {
			continue
		}
		a := byConcept[e.Concept]
		if a == nil {
			a = &agg{}
			byConcept[e.Concept] = a
		}
		a.confSum += *e.Confidence
		if e.Correct {
			a.correct++
		}
		a.count++
	}

	var gaps []ConceptGap
	for concept, a := range byConcept {
		avgConf := float64(a.confSum) / float64(a.count)
		accuracy := float64(a.correct) / float64(a.count) * 100.0
		gap := avgConf - accuracy
		if gap < DunningKrugerGap {
			continue
		}
		gaps = append(gaps, ConceptGap{
			Concept:       concept,
			AvgConfidence: avgConf,
			Accuracy:      accuracy,
			Gap:           gap,
			Responses:     a.count,
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Concept < gaps[j].Concept
	})

	return gaps
}
