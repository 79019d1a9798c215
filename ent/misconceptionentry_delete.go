// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyloop/ent/misconceptionentry"
	"github.com/abhisek/studyloop/ent/predicate"
)

// MisconceptionEntryDelete is the builder for deleting a MisconceptionEntry entity.
type MisconceptionEntryDelete struct {
	config
	hooks    []Hook
	mutation *MisconceptionEntryMutation
}

// Where appends a list predicates to the MisconceptionEntryDelete builder.
func (_d *MisconceptionEntryDelete) Where(ps ...predicate.MisconceptionEntry) *MisconceptionEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MisconceptionEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MisconceptionEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MisconceptionEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(misconceptionentry.Table, sqlgraph.NewFieldSpec(misconceptionentry.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MisconceptionEntryDeleteOne is the builder for deleting a single MisconceptionEntry entity.
type MisconceptionEntryDeleteOne struct {
	_d *MisconceptionEntryDelete
}

// Where appends a list predicates to the MisconceptionEntryDelete builder.
func (_d *MisconceptionEntryDeleteOne) Where(ps ...predicate.MisconceptionEntry) *MisconceptionEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MisconceptionEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{misconceptionentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MisconceptionEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
