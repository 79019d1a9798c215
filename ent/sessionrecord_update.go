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
	"github.com/abhisek/studyloop/ent/predicate"
	"github.com/abhisek/studyloop/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionRecordUpdate) SetLearnerID(v string) *SessionRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableLearnerID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionRecordUpdate) SetTopic(v string) *SessionRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTopic(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionRecordUpdate) SetPhase(v string) *SessionRecordUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePhase(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetMilestoneReturn sets the "milestone_return" field.
func (_u *SessionRecordUpdate) SetMilestoneReturn(v string) *SessionRecordUpdate {
	_u.mutation.SetMilestoneReturn(v)
	return _u
}

// SetNillableMilestoneReturn sets the "milestone_return" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableMilestoneReturn(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetMilestoneReturn(*v)
	}
	return _u
}

// SetCardsShown sets the "cards_shown" field.
func (_u *SessionRecordUpdate) SetCardsShown(v int) *SessionRecordUpdate {
	_u.mutation.ResetCardsShown()
	_u.mutation.SetCardsShown(v)
	return _u
}

// SetNillableCardsShown sets the "cards_shown" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCardsShown(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCardsShown(*v)
	}
	return _u
}

// AddCardsShown adds value to the "cards_shown" field.
func (_u *SessionRecordUpdate) AddCardsShown(v int) *SessionRecordUpdate {
	_u.mutation.AddCardsShown(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SessionRecordUpdate) SetStreak(v int) *SessionRecordUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStreak(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SessionRecordUpdate) AddStreak(v int) *SessionRecordUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SessionRecordUpdate) SetBestStreak(v int) *SessionRecordUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableBestStreak(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SessionRecordUpdate) AddBestStreak(v int) *SessionRecordUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *SessionRecordUpdate) SetTotalXp(v int) *SessionRecordUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTotalXp(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *SessionRecordUpdate) AddTotalXp(v int) *SessionRecordUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdate) SetDifficulty(v float64) *SessionRecordUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableDifficulty(v *float64) *SessionRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *SessionRecordUpdate) AddDifficulty(v float64) *SessionRecordUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionRecordUpdate) SetVersion(v int64) *SessionRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableVersion(v *int64) *SessionRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionRecordUpdate) AddVersion(v int64) *SessionRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdate) SetUpdatedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := sessionrecord.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.MilestoneReturn(); ok {
		_spec.SetField(sessionrecord.FieldMilestoneReturn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardsShown(); ok {
		_spec.SetField(sessionrecord.FieldCardsShown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsShown(); ok {
		_spec.AddField(sessionrecord.FieldCardsShown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sessionrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sessionrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sessionrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sessionrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(sessionrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(sessionrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(sessionrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sessionrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionRecordUpdateOne) SetLearnerID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableLearnerID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionRecordUpdateOne) SetTopic(v string) *SessionRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTopic(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionRecordUpdateOne) SetPhase(v string) *SessionRecordUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePhase(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetMilestoneReturn sets the "milestone_return" field.
func (_u *SessionRecordUpdateOne) SetMilestoneReturn(v string) *SessionRecordUpdateOne {
	_u.mutation.SetMilestoneReturn(v)
	return _u
}

// SetNillableMilestoneReturn sets the "milestone_return" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableMilestoneReturn(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetMilestoneReturn(*v)
	}
	return _u
}

// SetCardsShown sets the "cards_shown" field.
func (_u *SessionRecordUpdateOne) SetCardsShown(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCardsShown()
	_u.mutation.SetCardsShown(v)
	return _u
}

// SetNillableCardsShown sets the "cards_shown" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCardsShown(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCardsShown(*v)
	}
	return _u
}

// AddCardsShown adds value to the "cards_shown" field.
func (_u *SessionRecordUpdateOne) AddCardsShown(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCardsShown(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *SessionRecordUpdateOne) SetStreak(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStreak(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *SessionRecordUpdateOne) AddStreak(v int) *SessionRecordUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *SessionRecordUpdateOne) SetBestStreak(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableBestStreak(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *SessionRecordUpdateOne) AddBestStreak(v int) *SessionRecordUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *SessionRecordUpdateOne) SetTotalXp(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTotalXp(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *SessionRecordUpdateOne) AddTotalXp(v int) *SessionRecordUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdateOne) SetDifficulty(v float64) *SessionRecordUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableDifficulty(v *float64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *SessionRecordUpdateOne) AddDifficulty(v float64) *SessionRecordUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionRecordUpdateOne) SetVersion(v int64) *SessionRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableVersion(v *int64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SessionRecordUpdateOne) AddVersion(v int64) *SessionRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdateOne) SetUpdatedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := sessionrecord.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.MilestoneReturn(); ok {
		_spec.SetField(sessionrecord.FieldMilestoneReturn, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardsShown(); ok {
		_spec.SetField(sessionrecord.FieldCardsShown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardsShown(); ok {
		_spec.AddField(sessionrecord.FieldCardsShown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(sessionrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(sessionrecord.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(sessionrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(sessionrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(sessionrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(sessionrecord.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(sessionrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sessionrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
