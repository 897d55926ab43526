// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/schema"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// WindowSnapshotCreate is the builder for creating a WindowSnapshot entity.
type WindowSnapshotCreate struct {
	config
	mutation *WindowSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (wsc *WindowSnapshotCreate) SetUserID(s string) *WindowSnapshotCreate {
	wsc.mutation.SetUserID(s)
	return wsc
}

// SetSize sets the "size" field.
func (wsc *WindowSnapshotCreate) SetSize(i int) *WindowSnapshotCreate {
	wsc.mutation.SetSize(i)
	return wsc
}

// SetOutcomes sets the "outcomes" field.
func (wsc *WindowSnapshotCreate) SetOutcomes(sr []schema.OutcomeRecord) *WindowSnapshotCreate {
	wsc.mutation.SetOutcomes(sr)
	return wsc
}

// SetUpdatedAt sets the "updated_at" field.
func (wsc *WindowSnapshotCreate) SetUpdatedAt(t time.Time) *WindowSnapshotCreate {
	wsc.mutation.SetUpdatedAt(t)
	return wsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wsc *WindowSnapshotCreate) SetNillableUpdatedAt(t *time.Time) *WindowSnapshotCreate {
	if t != nil {
		wsc.SetUpdatedAt(*t)
	}
	return wsc
}

// Mutation returns the WindowSnapshotMutation object of the builder.
func (wsc *WindowSnapshotCreate) Mutation() *WindowSnapshotMutation {
	return wsc.mutation
}

// Save creates the WindowSnapshot in the database.
func (wsc *WindowSnapshotCreate) Save(ctx context.Context) (*WindowSnapshot, error) {
	wsc.defaults()
	return withHooks(ctx, wsc.sqlSave, wsc.mutation, wsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wsc *WindowSnapshotCreate) SaveX(ctx context.Context) *WindowSnapshot {
	v, err := wsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wsc *WindowSnapshotCreate) Exec(ctx context.Context) error {
	_, err := wsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsc *WindowSnapshotCreate) ExecX(ctx context.Context) {
	if err := wsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wsc *WindowSnapshotCreate) defaults() {
	if _, ok := wsc.mutation.UpdatedAt(); !ok {
		v := windowsnapshot.DefaultUpdatedAt()
		wsc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsc *WindowSnapshotCreate) check() error {
	if _, ok := wsc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WindowSnapshot.user_id"`)}
	}
	if v, ok := wsc.mutation.UserID(); ok {
		if err := windowsnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WindowSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := wsc.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "WindowSnapshot.size"`)}
	}
	if _, ok := wsc.mutation.Outcomes(); !ok {
		return &ValidationError{Name: "outcomes", err: errors.New(`ent: missing required field "WindowSnapshot.outcomes"`)}
	}
	if _, ok := wsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WindowSnapshot.updated_at"`)}
	}
	return nil
}

func (wsc *WindowSnapshotCreate) sqlSave(ctx context.Context) (*WindowSnapshot, error) {
	if err := wsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	wsc.mutation.id = &_node.ID
	wsc.mutation.done = true
	return _node, nil
}

func (wsc *WindowSnapshotCreate) createSpec() (*WindowSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &WindowSnapshot{config: wsc.config}
		_spec = sqlgraph.NewCreateSpec(windowsnapshot.Table, sqlgraph.NewFieldSpec(windowsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := wsc.mutation.UserID(); ok {
		_spec.SetField(windowsnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := wsc.mutation.Size(); ok {
		_spec.SetField(windowsnapshot.FieldSize, field.TypeInt, value)
		_node.Size = value
	}
	if value, ok := wsc.mutation.Outcomes(); ok {
		_spec.SetField(windowsnapshot.FieldOutcomes, field.TypeJSON, value)
		_node.Outcomes = value
	}
	if value, ok := wsc.mutation.UpdatedAt(); ok {
		_spec.SetField(windowsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WindowSnapshotCreateBulk is the builder for creating many WindowSnapshot entities in bulk.
type WindowSnapshotCreateBulk struct {
	config
	err      error
	builders []*WindowSnapshotCreate
}

// Save creates the WindowSnapshot entities in the database.
func (wscb *WindowSnapshotCreateBulk) Save(ctx context.Context) ([]*WindowSnapshot, error) {
	if wscb.err != nil {
		return nil, wscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wscb.builders))
	nodes := make([]*WindowSnapshot, len(wscb.builders))
	mutators := make([]Mutator, len(wscb.builders))
	for i := range wscb.builders {
		func(i int, root context.Context) {
			builder := wscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WindowSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, wscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wscb *WindowSnapshotCreateBulk) SaveX(ctx context.Context) []*WindowSnapshot {
	v, err := wscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wscb *WindowSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := wscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wscb *WindowSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := wscb.Exec(ctx); err != nil {
		panic(err)
	}
}
