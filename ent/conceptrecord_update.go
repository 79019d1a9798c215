// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyloop/ent/conceptrecord"
	"github.com/abhisek/studyloop/ent/predicate"
)

// ConceptRecordUpdate is the builder for updating ConceptRecord entities.
type ConceptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptRecordMutation
}

// Where appends a list predicates to the ConceptRecordUpdate builder.
func (_u *ConceptRecordUpdate) Where(ps ...predicate.ConceptRecord) *ConceptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ConceptRecordUpdate) SetLearnerID(v string) *ConceptRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableLearnerID(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ConceptRecordUpdate) SetConcept(v string) *ConceptRecordUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableConcept(v *string) *ConceptRecordUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ConceptRecordUpdate) SetMasteryScore(v float64) *ConceptRecordUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableMasteryScore(v *float64) *ConceptRecordUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ConceptRecordUpdate) AddMasteryScore(v float64) *ConceptRecordUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ConceptRecordUpdate) SetTotalAttempts(v int) *ConceptRecordUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableTotalAttempts(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ConceptRecordUpdate) AddTotalAttempts(v int) *ConceptRecordUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *ConceptRecordUpdate) SetCorrectAttempts(v int) *ConceptRecordUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableCorrectAttempts(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *ConceptRecordUpdate) AddCorrectAttempts(v int) *ConceptRecordUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ConceptRecordUpdate) SetEaseFactor(v float64) *ConceptRecordUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableEaseFactor(v *float64) *ConceptRecordUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ConceptRecordUpdate) AddEaseFactor(v float64) *ConceptRecordUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptRecordUpdate) SetIntervalDays(v int) *ConceptRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableIntervalDays(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptRecordUpdate) AddIntervalDays(v int) *ConceptRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetReviewStreak sets the "review_streak" field.
func (_u *ConceptRecordUpdate) SetReviewStreak(v int) *ConceptRecordUpdate {
	_u.mutation.ResetReviewStreak()
	_u.mutation.SetReviewStreak(v)
	return _u
}

// SetNillableReviewStreak sets the "review_streak" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableReviewStreak(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetReviewStreak(*v)
	}
	return _u
}

// AddReviewStreak adds value to the "review_streak" field.
func (_u *ConceptRecordUpdate) AddReviewStreak(v int) *ConceptRecordUpdate {
	_u.mutation.AddReviewStreak(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ConceptRecordUpdate) SetNextReviewAt(v time.Time) *ConceptRecordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableNextReviewAt(v *time.Time) *ConceptRecordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ConceptRecordUpdate) ClearNextReviewAt() *ConceptRecordUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConceptRecordUpdate) SetLastSeenAt(v time.Time) *ConceptRecordUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableLastSeenAt(v *time.Time) *ConceptRecordUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_u *ConceptRecordUpdate) SetConfidenceSum(v int) *ConceptRecordUpdate {
	_u.mutation.ResetConfidenceSum()
	_u.mutation.SetConfidenceSum(v)
	return _u
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableConfidenceSum(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetConfidenceSum(*v)
	}
	return _u
}

// AddConfidenceSum adds value to the "confidence_sum" field.
func (_u *ConceptRecordUpdate) AddConfidenceSum(v int) *ConceptRecordUpdate {
	_u.mutation.AddConfidenceSum(v)
	return _u
}

// SetConfidenceCount sets the "confidence_count" field.
func (_u *ConceptRecordUpdate) SetConfidenceCount(v int) *ConceptRecordUpdate {
	_u.mutation.ResetConfidenceCount()
	_u.mutation.SetConfidenceCount(v)
	return _u
}

// SetNillableConfidenceCount sets the "confidence_count" field if the given value is not nil.
func (_u *ConceptRecordUpdate) SetNillableConfidenceCount(v *int) *ConceptRecordUpdate {
	if v != nil {
		_u.SetConfidenceCount(*v)
	}
	return _u
}

// AddConfidenceCount adds value to the "confidence_count" field.
func (_u *ConceptRecordUpdate) AddConfidenceCount(v int) *ConceptRecordUpdate {
	_u.mutation.AddConfidenceCount(v)
	return _u
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_u *ConceptRecordUpdate) Mutation() *ConceptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := conceptrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := conceptrecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptrecord.Table, conceptrecord.Columns, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(conceptrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(conceptrecord.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(conceptrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(conceptrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(conceptrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(conceptrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(conceptrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(conceptrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(conceptrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(conceptrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(conceptrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStreak(); ok {
		_spec.SetField(conceptrecord.FieldReviewStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewStreak(); ok {
		_spec.AddField(conceptrecord.FieldReviewStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(conceptrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(conceptrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(conceptrecord.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceSum(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceSum(); ok {
		_spec.AddField(conceptrecord.FieldConfidenceSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceCount(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceCount(); ok {
		_spec.AddField(conceptrecord.FieldConfidenceCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptRecordUpdateOne is the builder for updating a single ConceptRecord entity.
type ConceptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ConceptRecordUpdateOne) SetLearnerID(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableLearnerID(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ConceptRecordUpdateOne) SetConcept(v string) *ConceptRecordUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableConcept(v *string) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ConceptRecordUpdateOne) SetMasteryScore(v float64) *ConceptRecordUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableMasteryScore(v *float64) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ConceptRecordUpdateOne) AddMasteryScore(v float64) *ConceptRecordUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ConceptRecordUpdateOne) SetTotalAttempts(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableTotalAttempts(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ConceptRecordUpdateOne) AddTotalAttempts(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *ConceptRecordUpdateOne) SetCorrectAttempts(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableCorrectAttempts(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *ConceptRecordUpdateOne) AddCorrectAttempts(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ConceptRecordUpdateOne) SetEaseFactor(v float64) *ConceptRecordUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableEaseFactor(v *float64) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ConceptRecordUpdateOne) AddEaseFactor(v float64) *ConceptRecordUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptRecordUpdateOne) SetIntervalDays(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableIntervalDays(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptRecordUpdateOne) AddIntervalDays(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetReviewStreak sets the "review_streak" field.
func (_u *ConceptRecordUpdateOne) SetReviewStreak(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetReviewStreak()
	_u.mutation.SetReviewStreak(v)
	return _u
}

// SetNillableReviewStreak sets the "review_streak" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableReviewStreak(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetReviewStreak(*v)
	}
	return _u
}

// AddReviewStreak adds value to the "review_streak" field.
func (_u *ConceptRecordUpdateOne) AddReviewStreak(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddReviewStreak(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ConceptRecordUpdateOne) SetNextReviewAt(v time.Time) *ConceptRecordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableNextReviewAt(v *time.Time) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ConceptRecordUpdateOne) ClearNextReviewAt() *ConceptRecordUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ConceptRecordUpdateOne) SetLastSeenAt(v time.Time) *ConceptRecordUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableLastSeenAt(v *time.Time) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_u *ConceptRecordUpdateOne) SetConfidenceSum(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetConfidenceSum()
	_u.mutation.SetConfidenceSum(v)
	return _u
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableConfidenceSum(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetConfidenceSum(*v)
	}
	return _u
}

// AddConfidenceSum adds value to the "confidence_sum" field.
func (_u *ConceptRecordUpdateOne) AddConfidenceSum(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddConfidenceSum(v)
	return _u
}

// SetConfidenceCount sets the "confidence_count" field.
func (_u *ConceptRecordUpdateOne) SetConfidenceCount(v int) *ConceptRecordUpdateOne {
	_u.mutation.ResetConfidenceCount()
	_u.mutation.SetConfidenceCount(v)
	return _u
}

// SetNillableConfidenceCount sets the "confidence_count" field if the given value is not nil.
func (_u *ConceptRecordUpdateOne) SetNillableConfidenceCount(v *int) *ConceptRecordUpdateOne {
	if v != nil {
		_u.SetConfidenceCount(*v)
	}
	return _u
}

// AddConfidenceCount adds value to the "confidence_count" field.
func (_u *ConceptRecordUpdateOne) AddConfidenceCount(v int) *ConceptRecordUpdateOne {
	_u.mutation.AddConfidenceCount(v)
	return _u
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_u *ConceptRecordUpdateOne) Mutation() *ConceptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptRecordUpdate builder.
func (_u *ConceptRecordUpdateOne) Where(ps ...predicate.ConceptRecord) *ConceptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptRecordUpdateOne) Select(field string, fields ...string) *ConceptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptRecord entity.
func (_u *ConceptRecordUpdateOne) Save(ctx context.Context) (*ConceptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptRecordUpdateOne) SaveX(ctx context.Context) *ConceptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := conceptrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := conceptrecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConceptRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptrecord.Table, conceptrecord.Columns, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptrecord.FieldID)
		for _, f := range fields {
			if !conceptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(conceptrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(conceptrecord.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(conceptrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(conceptrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(conceptrecord.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(conceptrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(conceptrecord.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(conceptrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(conceptrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(conceptrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(conceptrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewStreak(); ok {
		_spec.SetField(conceptrecord.FieldReviewStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewStreak(); ok {
		_spec.AddField(conceptrecord.FieldReviewStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(conceptrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(conceptrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(conceptrecord.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConfidenceSum(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceSum(); ok {
		_spec.AddField(conceptrecord.FieldConfidenceSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfidenceCount(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceCount(); ok {
		_spec.AddField(conceptrecord.FieldConfidenceCount, field.TypeInt, value)
	}
	_node = &ConceptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
