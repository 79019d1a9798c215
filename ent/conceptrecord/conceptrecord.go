// Code generated by ent, DO NOT EDIT.

package conceptrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conceptrecord type in the database.
	Label = "concept_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldReviewStreak holds the string denoting the review_streak field in the database.
	FieldReviewStreak = "review_streak"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldConfidenceSum holds the string denoting the confidence_sum field in the database.
	FieldConfidenceSum = "confidence_sum"
	// FieldConfidenceCount holds the string denoting the confidence_count field in the database.
	FieldConfidenceCount = "confidence_count"
	// Table holds the table name of the conceptrecord in the database.
	Table = "concept_records"
)

// Columns holds all SQL columns for conceptrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldConcept,
	FieldMasteryScore,
	FieldTotalAttempts,
	FieldCorrectAttempts,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldReviewStreak,
	FieldNextReviewAt,
	FieldLastSeenAt,
	FieldConfidenceSum,
	FieldConfidenceCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultReviewStreak holds the default value on creation for the "review_streak" field.
	DefaultReviewStreak int
	// DefaultConfidenceSum holds the default value on creation for the "confidence_sum" field.
	DefaultConfidenceSum int
	// DefaultConfidenceCount holds the default value on creation for the "confidence_count" field.
	DefaultConfidenceCount int
)

// OrderOption defines the ordering options for the ConceptRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByReviewStreak orders the results by the review_streak field.
func ByReviewStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStreak, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByConfidenceSum orders the results by the confidence_sum field.
func ByConfidenceSum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceSum, opts...).ToFunc()
}

// ByConfidenceCount orders the results by the confidence_count field.
func ByConfidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceCount, opts...).ToFunc()
}
