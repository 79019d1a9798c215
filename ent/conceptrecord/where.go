// Code generated by ent, DO NOT EDIT.

package conceptrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldLearnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConcept, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldMasteryScore, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldCorrectAttempts, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// ReviewStreak applies equality check predicate on the "review_streak" field. It's identical to ReviewStreakEQ.
func ReviewStreak(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldReviewStreak, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldNextReviewAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldLastSeenAt, v))
}

// ConfidenceSum applies equality check predicate on the "confidence_sum" field. It's identical to ConfidenceSumEQ.
func ConfidenceSum(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConfidenceSum, v))
}

// ConfidenceCount applies equality check predicate on the "confidence_count" field. It's identical to ConfidenceCountEQ.
func ConfidenceCount(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConfidenceCount, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldContainsFold(FieldConcept, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldMasteryScore, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldCorrectAttempts, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldIntervalDays, v))
}

// ReviewStreakEQ applies the EQ predicate on the "review_streak" field.
func ReviewStreakEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldReviewStreak, v))
}

// ReviewStreakNEQ applies the NEQ predicate on the "review_streak" field.
func ReviewStreakNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldReviewStreak, v))
}

// ReviewStreakIn applies the In predicate on the "review_streak" field.
func ReviewStreakIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldReviewStreak, vs...))
}

// ReviewStreakNotIn applies the NotIn predicate on the "review_streak" field.
func ReviewStreakNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldReviewStreak, vs...))
}

// ReviewStreakGT applies the GT predicate on the "review_streak" field.
func ReviewStreakGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldReviewStreak, v))
}

// ReviewStreakGTE applies the GTE predicate on the "review_streak" field.
func ReviewStreakGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldReviewStreak, v))
}

// ReviewStreakLT applies the LT predicate on the "review_streak" field.
func ReviewStreakLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldReviewStreak, v))
}

// ReviewStreakLTE applies the LTE predicate on the "review_streak" field.
func ReviewStreakLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldReviewStreak, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotNull(FieldNextReviewAt))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldLastSeenAt, v))
}

// ConfidenceSumEQ applies the EQ predicate on the "confidence_sum" field.
func ConfidenceSumEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConfidenceSum, v))
}

// ConfidenceSumNEQ applies the NEQ predicate on the "confidence_sum" field.
func ConfidenceSumNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldConfidenceSum, v))
}

// ConfidenceSumIn applies the In predicate on the "confidence_sum" field.
func ConfidenceSumIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldConfidenceSum, vs...))
}

// ConfidenceSumNotIn applies the NotIn predicate on the "confidence_sum" field.
func ConfidenceSumNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldConfidenceSum, vs...))
}

// ConfidenceSumGT applies the GT predicate on the "confidence_sum" field.
func ConfidenceSumGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldConfidenceSum, v))
}

// ConfidenceSumGTE applies the GTE predicate on the "confidence_sum" field.
func ConfidenceSumGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldConfidenceSum, v))
}

// ConfidenceSumLT applies the LT predicate on the "confidence_sum" field.
func ConfidenceSumLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldConfidenceSum, v))
}

// ConfidenceSumLTE applies the LTE predicate on the "confidence_sum" field.
func ConfidenceSumLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldConfidenceSum, v))
}

// ConfidenceCountEQ applies the EQ predicate on the "confidence_count" field.
func ConfidenceCountEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldEQ(FieldConfidenceCount, v))
}

// ConfidenceCountNEQ applies the NEQ predicate on the "confidence_count" field.
func ConfidenceCountNEQ(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNEQ(FieldConfidenceCount, v))
}

// ConfidenceCountIn applies the In predicate on the "confidence_count" field.
func ConfidenceCountIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldIn(FieldConfidenceCount, vs...))
}

// ConfidenceCountNotIn applies the NotIn predicate on the "confidence_count" field.
func ConfidenceCountNotIn(vs ...int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldNotIn(FieldConfidenceCount, vs...))
}

// ConfidenceCountGT applies the GT predicate on the "confidence_count" field.
func ConfidenceCountGT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGT(FieldConfidenceCount, v))
}

// ConfidenceCountGTE applies the GTE predicate on the "confidence_count" field.
func ConfidenceCountGTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldGTE(FieldConfidenceCount, v))
}

// ConfidenceCountLT applies the LT predicate on the "confidence_count" field.
func ConfidenceCountLT(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLT(FieldConfidenceCount, v))
}

// ConfidenceCountLTE applies the LTE predicate on the "confidence_count" field.
func ConfidenceCountLTE(v int) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.FieldLTE(FieldConfidenceCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptRecord) predicate.ConceptRecord {
	return predicate.ConceptRecord(sql.NotPredicates(p))
}
