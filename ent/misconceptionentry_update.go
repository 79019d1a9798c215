// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyloop/ent/misconceptionentry"
	"github.com/abhisek/studyloop/ent/predicate"
)

// MisconceptionEntryUpdate is the builder for updating MisconceptionEntry entities.
type MisconceptionEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MisconceptionEntryMutation
}

// Where appends a list predicates to the MisconceptionEntryUpdate builder.
func (_u *MisconceptionEntryUpdate) Where(ps ...predicate.MisconceptionEntry) *MisconceptionEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MisconceptionEntryUpdate) SetLearnerID(v string) *MisconceptionEntryUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MisconceptionEntryUpdate) SetNillableLearnerID(v *string) *MisconceptionEntryUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *MisconceptionEntryUpdate) SetConcept(v string) *MisconceptionEntryUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MisconceptionEntryUpdate) SetNillableConcept(v *string) *MisconceptionEntryUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *MisconceptionEntryUpdate) SetLabel(v string) *MisconceptionEntryUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *MisconceptionEntryUpdate) SetNillableLabel(v *string) *MisconceptionEntryUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *MisconceptionEntryUpdate) SetOccurrenceCount(v int) *MisconceptionEntryUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *MisconceptionEntryUpdate) SetNillableOccurrenceCount(v *int) *MisconceptionEntryUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *MisconceptionEntryUpdate) AddOccurrenceCount(v int) *MisconceptionEntryUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// Mutation returns the MisconceptionEntryMutation object of the builder.
func (_u *MisconceptionEntryUpdate) Mutation() *MisconceptionEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MisconceptionEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MisconceptionEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MisconceptionEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MisconceptionEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MisconceptionEntryUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := misconceptionentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := misconceptionentry.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := misconceptionentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.label": %w`, err)}
		}
	}
	return nil
}

func (_u *MisconceptionEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(misconceptionentry.Table, misconceptionentry.Columns, sqlgraph.NewFieldSpec(misconceptionentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(misconceptionentry.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(misconceptionentry.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(misconceptionentry.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconceptionentry.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(misconceptionentry.FieldOccurrenceCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{misconceptionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MisconceptionEntryUpdateOne is the builder for updating a single MisconceptionEntry entity.
type MisconceptionEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MisconceptionEntryMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MisconceptionEntryUpdateOne) SetLearnerID(v string) *MisconceptionEntryUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MisconceptionEntryUpdateOne) SetNillableLearnerID(v *string) *MisconceptionEntryUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *MisconceptionEntryUpdateOne) SetConcept(v string) *MisconceptionEntryUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MisconceptionEntryUpdateOne) SetNillableConcept(v *string) *MisconceptionEntryUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *MisconceptionEntryUpdateOne) SetLabel(v string) *MisconceptionEntryUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *MisconceptionEntryUpdateOne) SetNillableLabel(v *string) *MisconceptionEntryUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *MisconceptionEntryUpdateOne) SetOccurrenceCount(v int) *MisconceptionEntryUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *MisconceptionEntryUpdateOne) SetNillableOccurrenceCount(v *int) *MisconceptionEntryUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *MisconceptionEntryUpdateOne) AddOccurrenceCount(v int) *MisconceptionEntryUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// Mutation returns the MisconceptionEntryMutation object of the builder.
func (_u *MisconceptionEntryUpdateOne) Mutation() *MisconceptionEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MisconceptionEntryUpdate builder.
func (_u *MisconceptionEntryUpdateOne) Where(ps ...predicate.MisconceptionEntry) *MisconceptionEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MisconceptionEntryUpdateOne) Select(field string, fields ...string) *MisconceptionEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MisconceptionEntry entity.
func (_u *MisconceptionEntryUpdateOne) Save(ctx context.Context) (*MisconceptionEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MisconceptionEntryUpdateOne) SaveX(ctx context.Context) *MisconceptionEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MisconceptionEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MisconceptionEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MisconceptionEntryUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := misconceptionentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := misconceptionentry.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := misconceptionentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.label": %w`, err)}
		}
	}
	return nil
}

func (_u *MisconceptionEntryUpdateOne) sqlSave(ctx context.Context) (_node *MisconceptionEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(misconceptionentry.Table, misconceptionentry.Columns, sqlgraph.NewFieldSpec(misconceptionentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MisconceptionEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, misconceptionentry.FieldID)
		for _, f := range fields {
			if !misconceptionentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != misconceptionentry.FieldID {
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
		_spec.SetField(misconceptionentry.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(misconceptionentry.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(misconceptionentry.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconceptionentry.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(misconceptionentry.FieldOccurrenceCount, field.TypeInt, value)
	}
	_node = &MisconceptionEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{misconceptionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
