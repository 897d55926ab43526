// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AnswerEventCreate) SetSequence(i int64) *AnswerEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AnswerEventCreate) SetTimestamp(t time.Time) *AnswerEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableTimestamp(t *time.Time) *AnswerEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AnswerEventCreate) SetSessionID(s string) *AnswerEventCreate {
	aec.mutation.SetSessionID(s)
	return aec
}

// SetUserID sets the "user_id" field.
func (aec *AnswerEventCreate) SetUserID(s string) *AnswerEventCreate {
	aec.mutation.SetUserID(s)
	return aec
}

// SetInfinitive sets the "infinitive" field.
func (aec *AnswerEventCreate) SetInfinitive(s string) *AnswerEventCreate {
	aec.mutation.SetInfinitive(s)
	return aec
}

// SetTense sets the "tense" field.
func (aec *AnswerEventCreate) SetTense(s string) *AnswerEventCreate {
	aec.mutation.SetTense(s)
	return aec
}

// SetPerson sets the "person" field.
func (aec *AnswerEventCreate) SetPerson(s string) *AnswerEventCreate {
	aec.mutation.SetPerson(s)
	return aec
}

// SetUserAnswer sets the "user_answer" field.
func (aec *AnswerEventCreate) SetUserAnswer(s string) *AnswerEventCreate {
	aec.mutation.SetUserAnswer(s)
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AnswerEventCreate) SetCorrect(b bool) *AnswerEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetMatchType sets the "match_type" field.
func (aec *AnswerEventCreate) SetMatchType(s string) *AnswerEventCreate {
	aec.mutation.SetMatchType(s)
	return aec
}

// SetCategory sets the "category" field.
func (aec *AnswerEventCreate) SetCategory(s string) *AnswerEventCreate {
	aec.mutation.SetCategory(s)
	return aec
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (aec *AnswerEventCreate) SetNillableCategory(s *string) *AnswerEventCreate {
	if s != nil {
		aec.SetCategory(*s)
	}
	return aec
}

// SetQuality sets the "quality" field.
func (aec *AnswerEventCreate) SetQuality(i int) *AnswerEventCreate {
	aec.mutation.SetQuality(i)
	return aec
}

// SetLatencyMs sets the "latency_ms" field.
func (aec *AnswerEventCreate) SetLatencyMs(i int64) *AnswerEventCreate {
	aec.mutation.SetLatencyMs(i)
	return aec
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aec *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return aec.mutation
}

// Save creates the AnswerEvent in the database.
func (aec *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AnswerEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AnswerEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := aec.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerEvent.user_id"`)}
	}
	if v, ok := aec.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Infinitive(); !ok {
		return &ValidationError{Name: "infinitive", err: errors.New(`ent: missing required field "AnswerEvent.infinitive"`)}
	}
	if v, ok := aec.mutation.Infinitive(); ok {
		if err := answerevent.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.infinitive": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "AnswerEvent.tense"`)}
	}
	if v, ok := aec.mutation.Tense(); ok {
		if err := answerevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.tense": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "AnswerEvent.person"`)}
	}
	if v, ok := aec.mutation.Person(); ok {
		if err := answerevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.person": %w`, err)}
		}
	}
	if _, ok := aec.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "AnswerEvent.user_answer"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := aec.mutation.MatchType(); !ok {
		return &ValidationError{Name: "match_type", err: errors.New(`ent: missing required field "AnswerEvent.match_type"`)}
	}
	if v, ok := aec.mutation.MatchType(); ok {
		if err := answerevent.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.match_type": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "AnswerEvent.quality"`)}
	}
	if _, ok := aec.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AnswerEvent.latency_ms"`)}
	}
	return nil
}

func (aec *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := aec.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := aec.mutation.Infinitive(); ok {
		_spec.SetField(answerevent.FieldInfinitive, field.TypeString, value)
		_node.Infinitive = value
	}
	if value, ok := aec.mutation.Tense(); ok {
		_spec.SetField(answerevent.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := aec.mutation.Person(); ok {
		_spec.SetField(answerevent.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := aec.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.MatchType(); ok {
		_spec.SetField(answerevent.FieldMatchType, field.TypeString, value)
		_node.MatchType = value
	}
	if value, ok := aec.mutation.Category(); ok {
		_spec.SetField(answerevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := aec.mutation.Quality(); ok {
		_spec.SetField(answerevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := aec.mutation.LatencyMs(); ok {
		_spec.SetField(answerevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (aecb *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AnswerEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
