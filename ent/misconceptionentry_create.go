// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyloop/ent/misconceptionentry"
)

// MisconceptionEntryCreate is the builder for creating a MisconceptionEntry entity.
type MisconceptionEntryCreate struct {
	config
	mutation *MisconceptionEntryMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *MisconceptionEntryCreate) SetLearnerID(v string) *MisconceptionEntryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *MisconceptionEntryCreate) SetConcept(v string) *MisconceptionEntryCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *MisconceptionEntryCreate) SetLabel(v string) *MisconceptionEntryCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *MisconceptionEntryCreate) SetOccurrenceCount(v int) *MisconceptionEntryCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *MisconceptionEntryCreate) SetNillableOccurrenceCount(v *int) *MisconceptionEntryCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// Mutation returns the MisconceptionEntryMutation object of the builder.
func (_c *MisconceptionEntryCreate) Mutation() *MisconceptionEntryMutation {
	return _c.mutation
}

// Save creates the MisconceptionEntry in the database.
func (_c *MisconceptionEntryCreate) Save(ctx context.Context) (*MisconceptionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MisconceptionEntryCreate) SaveX(ctx context.Context) *MisconceptionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MisconceptionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MisconceptionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MisconceptionEntryCreate) defaults() {
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := misconceptionentry.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MisconceptionEntryCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MisconceptionEntry.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := misconceptionentry.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "MisconceptionEntry.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := misconceptionentry.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "MisconceptionEntry.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := misconceptionentry.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "MisconceptionEntry.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "MisconceptionEntry.occurrence_count"`)}
	}
	return nil
}

func (_c *MisconceptionEntryCreate) sqlSave(ctx context.Context) (*MisconceptionEntry, error) {
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

func (_c *MisconceptionEntryCreate) createSpec() (*MisconceptionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MisconceptionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(misconceptionentry.Table, sqlgraph.NewFieldSpec(misconceptionentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(misconceptionentry.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(misconceptionentry.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(misconceptionentry.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconceptionentry.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	return _node, _spec
}

// MisconceptionEntryCreateBulk is the builder for creating many MisconceptionEntry entities in bulk.
type MisconceptionEntryCreateBulk struct {
	config
	err      error
	builders []*MisconceptionEntryCreate
}

// Save creates the MisconceptionEntry entities in the database.
func (_c *MisconceptionEntryCreateBulk) Save(ctx context.Context) ([]*MisconceptionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MisconceptionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MisconceptionEntryMutation)
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
func (_c *MisconceptionEntryCreateBulk) SaveX(ctx context.Context) []*MisconceptionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MisconceptionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MisconceptionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
