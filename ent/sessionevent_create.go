// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SessionEventCreate) SetSequence(i int64) *SessionEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetTimestamp sets the "timestamp" field.
func (sec *SessionEventCreate) SetTimestamp(t time.Time) *SessionEventCreate {
	sec.mutation.SetTimestamp(t)
	return sec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableTimestamp(t *time.Time) *SessionEventCreate {
	if t != nil {
		sec.SetTimestamp(*t)
	}
	return sec
}

// SetSessionID sets the "session_id" field.
func (sec *SessionEventCreate) SetSessionID(s string) *SessionEventCreate {
	sec.mutation.SetSessionID(s)
	return sec
}

// SetUserID sets the "user_id" field.
func (sec *SessionEventCreate) SetUserID(s string) *SessionEventCreate {
	sec.mutation.SetUserID(s)
	return sec
}

// SetKind sets the "kind" field.
func (sec *SessionEventCreate) SetKind(s string) *SessionEventCreate {
	sec.mutation.SetKind(s)
	return sec
}

// SetAnswered sets the "answered" field.
func (sec *SessionEventCreate) SetAnswered(i int) *SessionEventCreate {
	sec.mutation.SetAnswered(i)
	return sec
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableAnswered(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetAnswered(*i)
	}
	return sec
}

// SetCorrect sets the "correct" field.
func (sec *SessionEventCreate) SetCorrect(i int) *SessionEventCreate {
	sec.mutation.SetCorrect(i)
	return sec
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableCorrect(i *int) *SessionEventCreate {
	if i != nil {
		sec.SetCorrect(*i)
	}
	return sec
}

// SetDurationMs sets the "duration_ms" field.
func (sec *SessionEventCreate) SetDurationMs(i int64) *SessionEventCreate {
	sec.mutation.SetDurationMs(i)
	return sec
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (sec *SessionEventCreate) SetNillableDurationMs(i *int64) *SessionEventCreate {
	if i != nil {
		sec.SetDurationMs(*i)
	}
	return sec
}

// Mutation returns the SessionEventMutation object of the builder.
func (sec *SessionEventCreate) Mutation() *SessionEventMutation {
	return sec.mutation
}

// Save creates the SessionEvent in the database.
func (sec *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SessionEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SessionEventCreate) defaults() {
	if _, ok := sec.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		sec.mutation.SetTimestamp(v)
	}
	if _, ok := sec.mutation.Answered(); !ok {
		v := sessionevent.DefaultAnswered
		sec.mutation.SetAnswered(v)
	}
	if _, ok := sec.mutation.Correct(); !ok {
		v := sessionevent.DefaultCorrect
		sec.mutation.SetCorrect(v)
	}
	if _, ok := sec.mutation.DurationMs(); !ok {
		v := sessionevent.DefaultDurationMs
		sec.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SessionEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := sec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := sec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := sec.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionEvent.user_id"`)}
	}
	if v, ok := sec.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SessionEvent.kind"`)}
	}
	if v, ok := sec.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SessionEvent.answered"`)}
	}
	if _, ok := sec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionEvent.correct"`)}
	}
	if _, ok := sec.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "SessionEvent.duration_ms"`)}
	}
	return nil
}

func (sec *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := sec.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := sec.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sec.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := sec.mutation.Answered(); ok {
		_spec.SetField(sessionevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := sec.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := sec.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (secb *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SessionEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
