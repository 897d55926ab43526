// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
	"github.com/bjpl/subjunctive-practice-sub006/ent/schema"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// WindowSnapshotUpdate is the builder for updating WindowSnapshot entities.
type WindowSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *WindowSnapshotMutation
}

// Where appends a list predicates to the WindowSnapshotUpdate builder.
func (wsu *WindowSnapshotUpdate) Where(ps ...predicate.WindowSnapshot) *WindowSnapshotUpdate {
	wsu.mutation.Where(ps...)
	return wsu
}

// SetUserID sets the "user_id" field.
func (wsu *WindowSnapshotUpdate) SetUserID(s string) *WindowSnapshotUpdate {
	wsu.mutation.SetUserID(s)
	return wsu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wsu *WindowSnapshotUpdate) SetNillableUserID(s *string) *WindowSnapshotUpdate {
	if s != nil {
		wsu.SetUserID(*s)
	}
	return wsu
}

// SetSize sets the "size" field.
func (wsu *WindowSnapshotUpdate) SetSize(i int) *WindowSnapshotUpdate {
	wsu.mutation.ResetSize()
	wsu.mutation.SetSize(i)
	return wsu
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (wsu *WindowSnapshotUpdate) SetNillableSize(i *int) *WindowSnapshotUpdate {
	if i != nil {
		wsu.SetSize(*i)
	}
	return wsu
}

// AddSize adds i to the "size" field.
func (wsu *WindowSnapshotUpdate) AddSize(i int) *WindowSnapshotUpdate {
	wsu.mutation.AddSize(i)
	return wsu
}

// SetOutcomes sets the "outcomes" field.
func (wsu *WindowSnapshotUpdate) SetOutcomes(sr []schema.OutcomeRecord) *WindowSnapshotUpdate {
	wsu.mutation.SetOutcomes(sr)
	return wsu
}

// AppendOutcomes appends sr to the "outcomes" field.
func (wsu *WindowSnapshotUpdate) AppendOutcomes(sr []schema.OutcomeRecord) *WindowSnapshotUpdate {
	wsu.mutation.AppendOutcomes(sr)
	return wsu
}

// SetUpdatedAt sets the "updated_at" field.
func (wsu *WindowSnapshotUpdate) SetUpdatedAt(t time.Time) *WindowSnapshotUpdate {
	wsu.mutation.SetUpdatedAt(t)
	return wsu
}

// Mutation returns the WindowSnapshotMutation object of the builder.
func (wsu *WindowSnapshotUpdate) Mutation() *WindowSnapshotMutation {
	return wsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wsu *WindowSnapshotUpdate) Save(ctx context.Context) (int, error) {
	wsu.defaults()
	return withHooks(ctx, wsu.sqlSave, wsu.mutation, wsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsu *WindowSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := wsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wsu *WindowSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := wsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsu *WindowSnapshotUpdate) ExecX(ctx context.Context) {
	if err := wsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wsu *WindowSnapshotUpdate) defaults() {
	if _, ok := wsu.mutation.UpdatedAt(); !ok {
		v := windowsnapshot.UpdateDefaultUpdatedAt()
		wsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsu *WindowSnapshotUpdate) check() error {
	if v, ok := wsu.mutation.UserID(); ok {
		if err := windowsnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WindowSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (wsu *WindowSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(windowsnapshot.Table, windowsnapshot.Columns, sqlgraph.NewFieldSpec(windowsnapshot.FieldID, field.TypeInt))
	if ps := wsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsu.mutation.UserID(); ok {
		_spec.SetField(windowsnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := wsu.mutation.Size(); ok {
		_spec.SetField(windowsnapshot.FieldSize, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.AddedSize(); ok {
		_spec.AddField(windowsnapshot.FieldSize, field.TypeInt, value)
	}
	if value, ok := wsu.mutation.Outcomes(); ok {
		_spec.SetField(windowsnapshot.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := wsu.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, windowsnapshot.FieldOutcomes, value)
		})
	}
	if value, ok := wsu.mutation.UpdatedAt(); ok {
		_spec.SetField(windowsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{windowsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wsu.mutation.done = true
	return n, nil
}

// WindowSnapshotUpdateOne is the builder for updating a single WindowSnapshot entity.
type WindowSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WindowSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (wsuo *WindowSnapshotUpdateOne) SetUserID(s string) *WindowSnapshotUpdateOne {
	wsuo.mutation.SetUserID(s)
	return wsuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wsuo *WindowSnapshotUpdateOne) SetNillableUserID(s *string) *WindowSnapshotUpdateOne {
	if s != nil {
		wsuo.SetUserID(*s)
	}
	return wsuo
}

// SetSize sets the "size" field.
func (wsuo *WindowSnapshotUpdateOne) SetSize(i int) *WindowSnapshotUpdateOne {
	wsuo.mutation.ResetSize()
	wsuo.mutation.SetSize(i)
	return wsuo
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (wsuo *WindowSnapshotUpdateOne) SetNillableSize(i *int) *WindowSnapshotUpdateOne {
	if i != nil {
		wsuo.SetSize(*i)
	}
	return wsuo
}

// AddSize adds i to the "size" field.
func (wsuo *WindowSnapshotUpdateOne) AddSize(i int) *WindowSnapshotUpdateOne {
	wsuo.mutation.AddSize(i)
	return wsuo
}

// SetOutcomes sets the "outcomes" field.
func (wsuo *WindowSnapshotUpdateOne) SetOutcomes(sr []schema.OutcomeRecord) *WindowSnapshotUpdateOne {
	wsuo.mutation.SetOutcomes(sr)
	return wsuo
}

// AppendOutcomes appends sr to the "outcomes" field.
func (wsuo *WindowSnapshotUpdateOne) AppendOutcomes(sr []schema.OutcomeRecord) *WindowSnapshotUpdateOne {
	wsuo.mutation.AppendOutcomes(sr)
	return wsuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wsuo *WindowSnapshotUpdateOne) SetUpdatedAt(t time.Time) *WindowSnapshotUpdateOne {
	wsuo.mutation.SetUpdatedAt(t)
	return wsuo
}

// Mutation returns the WindowSnapshotMutation object of the builder.
func (wsuo *WindowSnapshotUpdateOne) Mutation() *WindowSnapshotMutation {
	return wsuo.mutation
}

// Where appends a list predicates to the WindowSnapshotUpdate builder.
func (wsuo *WindowSnapshotUpdateOne) Where(ps ...predicate.WindowSnapshot) *WindowSnapshotUpdateOne {
	wsuo.mutation.Where(ps...)
	return wsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wsuo *WindowSnapshotUpdateOne) Select(field string, fields ...string) *WindowSnapshotUpdateOne {
	wsuo.fields = append([]string{field}, fields...)
	return wsuo
}

// Save executes the query and returns the updated WindowSnapshot entity.
func (wsuo *WindowSnapshotUpdateOne) Save(ctx context.Context) (*WindowSnapshot, error) {
	wsuo.defaults()
	return withHooks(ctx, wsuo.sqlSave, wsuo.mutation, wsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsuo *WindowSnapshotUpdateOne) SaveX(ctx context.Context) *WindowSnapshot {
	node, err := wsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wsuo *WindowSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := wsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsuo *WindowSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := wsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wsuo *WindowSnapshotUpdateOne) defaults() {
	if _, ok := wsuo.mutation.UpdatedAt(); !ok {
		v := windowsnapshot.UpdateDefaultUpdatedAt()
		wsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsuo *WindowSnapshotUpdateOne) check() error {
	if v, ok := wsuo.mutation.UserID(); ok {
		if err := windowsnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WindowSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (wsuo *WindowSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *WindowSnapshot, err error) {
	if err := wsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(windowsnapshot.Table, windowsnapshot.Columns, sqlgraph.NewFieldSpec(windowsnapshot.FieldID, field.TypeInt))
	id, ok := wsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WindowSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, windowsnapshot.FieldID)
		for _, f := range fields {
			if !windowsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != windowsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsuo.mutation.UserID(); ok {
		_spec.SetField(windowsnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := wsuo.mutation.Size(); ok {
		_spec.SetField(windowsnapshot.FieldSize, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.AddedSize(); ok {
		_spec.AddField(windowsnapshot.FieldSize, field.TypeInt, value)
	}
	if value, ok := wsuo.mutation.Outcomes(); ok {
		_spec.SetField(windowsnapshot.FieldOutcomes, field.TypeJSON, value)
	}
	if value, ok := wsuo.mutation.AppendedOutcomes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, windowsnapshot.FieldOutcomes, value)
		})
	}
	if value, ok := wsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(windowsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WindowSnapshot{config: wsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{windowsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wsuo.mutation.done = true
	return _node, nil
}
