// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
	"github.com/bjpl/subjunctive-practice-sub006/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(s string) *SessionEventUpdate {
	seu.mutation.SetSessionID(s)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetSessionID(*s)
	}
	return seu
}

// SetUserID sets the "user_id" field.
func (seu *SessionEventUpdate) SetUserID(s string) *SessionEventUpdate {
	seu.mutation.SetUserID(s)
	return seu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableUserID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetUserID(*s)
	}
	return seu
}

// SetKind sets the "kind" field.
func (seu *SessionEventUpdate) SetKind(s string) *SessionEventUpdate {
	seu.mutation.SetKind(s)
	return seu
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableKind(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetKind(*s)
	}
	return seu
}

// SetAnswered sets the "answered" field.
func (seu *SessionEventUpdate) SetAnswered(i int) *SessionEventUpdate {
	seu.mutation.ResetAnswered()
	seu.mutation.SetAnswered(i)
	return seu
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableAnswered(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetAnswered(*i)
	}
	return seu
}

// AddAnswered adds i to the "answered" field.
func (seu *SessionEventUpdate) AddAnswered(i int) *SessionEventUpdate {
	seu.mutation.AddAnswered(i)
	return seu
}

// SetCorrect sets the "correct" field.
func (seu *SessionEventUpdate) SetCorrect(i int) *SessionEventUpdate {
	seu.mutation.ResetCorrect()
	seu.mutation.SetCorrect(i)
	return seu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableCorrect(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetCorrect(*i)
	}
	return seu
}

// AddCorrect adds i to the "correct" field.
func (seu *SessionEventUpdate) AddCorrect(i int) *SessionEventUpdate {
	seu.mutation.AddCorrect(i)
	return seu
}

// SetDurationMs sets the "duration_ms" field.
func (seu *SessionEventUpdate) SetDurationMs(i int64) *SessionEventUpdate {
	seu.mutation.ResetDurationMs()
	seu.mutation.SetDurationMs(i)
	return seu
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableDurationMs(i *int64) *SessionEventUpdate {
	if i != nil {
		seu.SetDurationMs(*i)
	}
	return seu
}

// AddDurationMs adds i to the "duration_ms" field.
func (seu *SessionEventUpdate) AddDurationMs(i int64) *SessionEventUpdate {
	seu.mutation.AddDurationMs(i)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seu.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seu.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := seu.mutation.Answered(); ok {
		_spec.SetField(sessionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := seu.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := seu.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := seu.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetSessionID(s)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetSessionID(*s)
	}
	return seuo
}

// SetUserID sets the "user_id" field.
func (seuo *SessionEventUpdateOne) SetUserID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetUserID(s)
	return seuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableUserID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetUserID(*s)
	}
	return seuo
}

// SetKind sets the "kind" field.
func (seuo *SessionEventUpdateOne) SetKind(s string) *SessionEventUpdateOne {
	seuo.mutation.SetKind(s)
	return seuo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableKind(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetKind(*s)
	}
	return seuo
}

// SetAnswered sets the "answered" field.
func (seuo *SessionEventUpdateOne) SetAnswered(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetAnswered()
	seuo.mutation.SetAnswered(i)
	return seuo
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableAnswered(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetAnswered(*i)
	}
	return seuo
}

// AddAnswered adds i to the "answered" field.
func (seuo *SessionEventUpdateOne) AddAnswered(i int) *SessionEventUpdateOne {
	seuo.mutation.AddAnswered(i)
	return seuo
}

// SetCorrect sets the "correct" field.
func (seuo *SessionEventUpdateOne) SetCorrect(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetCorrect()
	seuo.mutation.SetCorrect(i)
	return seuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableCorrect(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetCorrect(*i)
	}
	return seuo
}

// AddCorrect adds i to the "correct" field.
func (seuo *SessionEventUpdateOne) AddCorrect(i int) *SessionEventUpdateOne {
	seuo.mutation.AddCorrect(i)
	return seuo
}

// SetDurationMs sets the "duration_ms" field.
func (seuo *SessionEventUpdateOne) SetDurationMs(i int64) *SessionEventUpdateOne {
	seuo.mutation.ResetDurationMs()
	seuo.mutation.SetDurationMs(i)
	return seuo
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableDurationMs(i *int64) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetDurationMs(*i)
	}
	return seuo
}

// AddDurationMs adds i to the "duration_ms" field.
func (seuo *SessionEventUpdateOne) AddDurationMs(i int64) *SessionEventUpdateOne {
	seuo.mutation.AddDurationMs(i)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Answered(); ok {
		_spec.SetField(sessionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := seuo.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
