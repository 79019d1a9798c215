// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyloop/ent/conceptrecord"
)

// ConceptRecord is the model entity for the ConceptRecord schema.
type ConceptRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Concept holds the value of the "concept" field.
	Concept string `json:"concept,omitempty"`
	// 0-100 exponentially-weighted estimate
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// SM-2 multiplier, floor 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Current review interval
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive successful reviews
	ReviewStreak int `json:"review_streak,omitempty"`
	// Nil until the first review is scheduled
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Sum of stated confidences, for per-concept averages
	ConfidenceSum int `json:"confidence_sum,omitempty"`
	// ConfidenceCount holds the value of the "confidence_count" field.
	ConfidenceCount int `json:"confidence_count,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conceptrecord.FieldMasteryScore, conceptrecord.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case conceptrecord.FieldID, conceptrecord.FieldTotalAttempts, conceptrecord.FieldCorrectAttempts, conceptrecord.FieldIntervalDays, conceptrecord.FieldReviewStreak, conceptrecord.FieldConfidenceSum, conceptrecord.FieldConfidenceCount:
			values[i] = new(sql.NullInt64)
		case conceptrecord.FieldLearnerID, conceptrecord.FieldConcept:
			values[i] = new(sql.NullString)
		case conceptrecord.FieldNextReviewAt, conceptrecord.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptRecord fields.
func (_m *ConceptRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conceptrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conceptrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case conceptrecord.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case conceptrecord.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case conceptrecord.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case conceptrecord.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case conceptrecord.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case conceptrecord.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case conceptrecord.FieldReviewStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_streak", values[i])
			} else if value.Valid {
				_m.ReviewStreak = int(value.Int64)
			}
		case conceptrecord.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case conceptrecord.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case conceptrecord.FieldConfidenceSum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_sum", values[i])
			} else if value.Valid {
				_m.ConfidenceSum = int(value.Int64)
			}
		case conceptrecord.FieldConfidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_count", values[i])
			} else if value.Valid {
				_m.ConfidenceCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptRecord.
// Note that you need to call ConceptRecord.Unwrap() before calling this method if this ConceptRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptRecord) Update() *ConceptRecordUpdateOne {
	return NewConceptRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptRecord) Unwrap() *ConceptRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("review_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewStreak))
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("confidence_sum=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceSum))
	builder.WriteString(", ")
	builder.WriteString("confidence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceCount))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptRecords is a parsable slice of ConceptRecord.
type ConceptRecords []*ConceptRecord
