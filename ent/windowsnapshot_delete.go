// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// WindowSnapshotDelete is the builder for deleting a WindowSnapshot entity.
type WindowSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *WindowSnapshotMutation
}

// Where appends a list predicates to the WindowSnapshotDelete builder.
func (wsd *WindowSnapshotDelete) Where(ps ...predicate.WindowSnapshot) *WindowSnapshotDelete {
	wsd.mutation.Where(ps...)
	return wsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wsd *WindowSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wsd.sqlExec, wsd.mutation, wsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wsd *WindowSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := wsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wsd *WindowSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(windowsnapshot.Table, sqlgraph.NewFieldSpec(windowsnapshot.FieldID, field.TypeInt))
	if ps := wsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wsd.mutation.done = true
	return affected, err
}

// WindowSnapshotDeleteOne is the builder for deleting a single WindowSnapshot entity.
type WindowSnapshotDeleteOne struct {
	wsd *WindowSnapshotDelete
}

// Where appends a list predicates to the WindowSnapshotDelete builder.
func (wsdo *WindowSnapshotDeleteOne) Where(ps ...predicate.WindowSnapshot) *WindowSnapshotDeleteOne {
	wsdo.wsd.mutation.Where(ps...)
	return wsdo
}

// Exec executes the deletion query.
func (wsdo *WindowSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := wsdo.wsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{windowsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wsdo *WindowSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := wsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
