// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyloop/ent/conceptrecord"
)

// ConceptRecordCreate is the builder for creating a ConceptRecord entity.
type ConceptRecordCreate struct {
	config
	mutation *ConceptRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ConceptRecordCreate) SetLearnerID(v string) *ConceptRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ConceptRecordCreate) SetConcept(v string) *ConceptRecordCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *ConceptRecordCreate) SetMasteryScore(v float64) *ConceptRecordCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *ConceptRecordCreate) SetTotalAttempts(v int) *ConceptRecordCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableTotalAttempts(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *ConceptRecordCreate) SetCorrectAttempts(v int) *ConceptRecordCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableCorrectAttempts(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ConceptRecordCreate) SetEaseFactor(v float64) *ConceptRecordCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ConceptRecordCreate) SetIntervalDays(v int) *ConceptRecordCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableIntervalDays(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetReviewStreak sets the "review_streak" field.
func (_c *ConceptRecordCreate) SetReviewStreak(v int) *ConceptRecordCreate {
	_c.mutation.SetReviewStreak(v)
	return _c
}

// SetNillableReviewStreak sets the "review_streak" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableReviewStreak(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetReviewStreak(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ConceptRecordCreate) SetNextReviewAt(v time.Time) *ConceptRecordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableNextReviewAt(v *time.Time) *ConceptRecordCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ConceptRecordCreate) SetLastSeenAt(v time.Time) *ConceptRecordCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetConfidenceSum sets the "confidence_sum" field.
func (_c *ConceptRecordCreate) SetConfidenceSum(v int) *ConceptRecordCreate {
	_c.mutation.SetConfidenceSum(v)
	return _c
}

// SetNillableConfidenceSum sets the "confidence_sum" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableConfidenceSum(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetConfidenceSum(*v)
	}
	return _c
}

// SetConfidenceCount sets the "confidence_count" field.
func (_c *ConceptRecordCreate) SetConfidenceCount(v int) *ConceptRecordCreate {
	_c.mutation.SetConfidenceCount(v)
	return _c
}

// SetNillableConfidenceCount sets the "confidence_count" field if the given value is not nil.
func (_c *ConceptRecordCreate) SetNillableConfidenceCount(v *int) *ConceptRecordCreate {
	if v != nil {
		_c.SetConfidenceCount(*v)
	}
	return _c
}

// Mutation returns the ConceptRecordMutation object of the builder.
func (_c *ConceptRecordCreate) Mutation() *ConceptRecordMutation {
	return _c.mutation
}

// Save creates the ConceptRecord in the database.
func (_c *ConceptRecordCreate) Save(ctx context.Context) (*ConceptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptRecordCreate) SaveX(ctx context.Context) *ConceptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptRecordCreate) defaults() {
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := conceptrecord.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := conceptrecord.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := conceptrecord.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.ReviewStreak(); !ok {
		v := conceptrecord.DefaultReviewStreak
		_c.mutation.SetReviewStreak(v)
	}
	if _, ok := _c.mutation.ConfidenceSum(); !ok {
		v := conceptrecord.DefaultConfidenceSum
		_c.mutation.SetConfidenceSum(v)
	}
	if _, ok := _c.mutation.ConfidenceCount(); !ok {
		v := conceptrecord.DefaultConfidenceCount
		_c.mutation.SetConfidenceCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ConceptRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := conceptrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "ConceptRecord.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := conceptrecord.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ConceptRecord.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "ConceptRecord.mastery_score"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "ConceptRecord.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "ConceptRecord.correct_attempts"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ConceptRecord.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ConceptRecord.interval_days"`)}
	}
	if _, ok := _c.mutation.ReviewStreak(); !ok {
		return &ValidationError{Name: "review_streak", err: errors.New(`ent: missing required field "ConceptRecord.review_streak"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "ConceptRecord.last_seen_at"`)}
	}
	if _, ok := _c.mutation.ConfidenceSum(); !ok {
		return &ValidationError{Name: "confidence_sum", err: errors.New(`ent: missing required field "ConceptRecord.confidence_sum"`)}
	}
	if _, ok := _c.mutation.ConfidenceCount(); !ok {
		return &ValidationError{Name: "confidence_count", err: errors.New(`ent: missing required field "ConceptRecord.confidence_count"`)}
	}
	return nil
}

func (_c *ConceptRecordCreate) sqlSave(ctx context.Context) (*ConceptRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptRecordCreate) createSpec() (*ConceptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptrecord.Table, sqlgraph.NewFieldSpec(conceptrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(conceptrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(conceptrecord.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(conceptrecord.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(conceptrecord.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(conceptrecord.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(conceptrecord.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(conceptrecord.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.ReviewStreak(); ok {
		_spec.SetField(conceptrecord.FieldReviewStreak, field.TypeInt, value)
		_node.ReviewStreak = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(conceptrecord.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(conceptrecord.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.ConfidenceSum(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceSum, field.TypeInt, value)
		_node.ConfidenceSum = value
	}
	if value, ok := _c.mutation.ConfidenceCount(); ok {
		_spec.SetField(conceptrecord.FieldConfidenceCount, field.TypeInt, value)
		_node.ConfidenceCount = value
	}
	return _node, _spec
}

// ConceptRecordCreateBulk is the builder for creating many ConceptRecord entities in bulk.
type ConceptRecordCreateBulk struct {
	config
	err      error
	builders []*ConceptRecordCreate
}

// Save creates the ConceptRecord entities in the database.
func (_c *ConceptRecordCreateBulk) Save(ctx context.Context) ([]*ConceptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConceptRecordCreateBulk) SaveX(ctx context.Context) []*ConceptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
