// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/answerevent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AnswerEventUpdate) SetSessionID(s string) *AnswerEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableSessionID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// SetUserID sets the "user_id" field.
func (aeu *AnswerEventUpdate) SetUserID(s string) *AnswerEventUpdate {
	aeu.mutation.SetUserID(s)
	return aeu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableUserID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetUserID(*s)
	}
	return aeu
}

// SetInfinitive sets the "infinitive" field.
func (aeu *AnswerEventUpdate) SetInfinitive(s string) *AnswerEventUpdate {
	aeu.mutation.SetInfinitive(s)
	return aeu
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableInfinitive(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetInfinitive(*s)
	}
	return aeu
}

// SetTense sets the "tense" field.
func (aeu *AnswerEventUpdate) SetTense(s string) *AnswerEventUpdate {
	aeu.mutation.SetTense(s)
	return aeu
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableTense(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetTense(*s)
	}
	return aeu
}

// SetPerson sets the "person" field.
func (aeu *AnswerEventUpdate) SetPerson(s string) *AnswerEventUpdate {
	aeu.mutation.SetPerson(s)
	return aeu
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillablePerson(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetPerson(*s)
	}
	return aeu
}

// SetUserAnswer sets the "user_answer" field.
func (aeu *AnswerEventUpdate) SetUserAnswer(s string) *AnswerEventUpdate {
	aeu.mutation.SetUserAnswer(s)
	return aeu
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableUserAnswer(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetUserAnswer(*s)
	}
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AnswerEventUpdate) SetCorrect(b bool) *AnswerEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCorrect(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetMatchType sets the "match_type" field.
func (aeu *AnswerEventUpdate) SetMatchType(s string) *AnswerEventUpdate {
	aeu.mutation.SetMatchType(s)
	return aeu
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableMatchType(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetMatchType(*s)
	}
	return aeu
}

// SetCategory sets the "category" field.
func (aeu *AnswerEventUpdate) SetCategory(s string) *AnswerEventUpdate {
	aeu.mutation.SetCategory(s)
	return aeu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCategory(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetCategory(*s)
	}
	return aeu
}

// ClearCategory clears the value of the "category" field.
func (aeu *AnswerEventUpdate) ClearCategory() *AnswerEventUpdate {
	aeu.mutation.ClearCategory()
	return aeu
}

// SetQuality sets the "quality" field.
func (aeu *AnswerEventUpdate) SetQuality(i int) *AnswerEventUpdate {
	aeu.mutation.ResetQuality()
	aeu.mutation.SetQuality(i)
	return aeu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableQuality(i *int) *AnswerEventUpdate {
	if i != nil {
		aeu.SetQuality(*i)
	}
	return aeu
}

// AddQuality adds i to the "quality" field.
func (aeu *AnswerEventUpdate) AddQuality(i int) *AnswerEventUpdate {
	aeu.mutation.AddQuality(i)
	return aeu
}

// SetLatencyMs sets the "latency_ms" field.
func (aeu *AnswerEventUpdate) SetLatencyMs(i int64) *AnswerEventUpdate {
	aeu.mutation.ResetLatencyMs()
	aeu.mutation.SetLatencyMs(i)
	return aeu
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableLatencyMs(i *int64) *AnswerEventUpdate {
	if i != nil {
		aeu.SetLatencyMs(*i)
	}
	return aeu
}

// AddLatencyMs adds i to the "latency_ms" field.
func (aeu *AnswerEventUpdate) AddLatencyMs(i int64) *AnswerEventUpdate {
	aeu.mutation.AddLatencyMs(i)
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AnswerEventUpdate) check() error {
	if v, ok := aeu.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Infinitive(); ok {
		if err := answerevent.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.infinitive": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Tense(); ok {
		if err := answerevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.tense": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.Person(); ok {
		if err := answerevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.person": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.MatchType(); ok {
		if err := answerevent.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.match_type": %w`, err)}
		}
	}
	return nil
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Infinitive(); ok {
		_spec.SetField(answerevent.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Tense(); ok {
		_spec.SetField(answerevent.FieldTense, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Person(); ok {
		_spec.SetField(answerevent.FieldPerson, field.TypeString, value)
	}
	if value, ok := aeu.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.MatchType(); ok {
		_spec.SetField(answerevent.FieldMatchType, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Category(); ok {
		_spec.SetField(answerevent.FieldCategory, field.TypeString, value)
	}
	if aeu.mutation.CategoryCleared() {
		_spec.ClearField(answerevent.FieldCategory, field.TypeString)
	}
	if value, ok := aeu.mutation.Quality(); ok {
		_spec.SetField(answerevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedQuality(); ok {
		_spec.AddField(answerevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.LatencyMs(); ok {
		_spec.SetField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (aeuo *AnswerEventUpdateOne) SetSessionID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableSessionID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// SetUserID sets the "user_id" field.
func (aeuo *AnswerEventUpdateOne) SetUserID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetUserID(s)
	return aeuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableUserID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetUserID(*s)
	}
	return aeuo
}

// SetInfinitive sets the "infinitive" field.
func (aeuo *AnswerEventUpdateOne) SetInfinitive(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetInfinitive(s)
	return aeuo
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableInfinitive(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetInfinitive(*s)
	}
	return aeuo
}

// SetTense sets the "tense" field.
func (aeuo *AnswerEventUpdateOne) SetTense(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetTense(s)
	return aeuo
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableTense(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetTense(*s)
	}
	return aeuo
}

// SetPerson sets the "person" field.
func (aeuo *AnswerEventUpdateOne) SetPerson(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetPerson(s)
	return aeuo
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillablePerson(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetPerson(*s)
	}
	return aeuo
}

// SetUserAnswer sets the "user_answer" field.
func (aeuo *AnswerEventUpdateOne) SetUserAnswer(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetUserAnswer(s)
	return aeuo
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableUserAnswer(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetUserAnswer(*s)
	}
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AnswerEventUpdateOne) SetCorrect(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCorrect(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetMatchType sets the "match_type" field.
func (aeuo *AnswerEventUpdateOne) SetMatchType(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetMatchType(s)
	return aeuo
}

// SetNillableMatchType sets the "match_type" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableMatchType(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetMatchType(*s)
	}
	return aeuo
}

// SetCategory sets the "category" field.
func (aeuo *AnswerEventUpdateOne) SetCategory(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetCategory(s)
	return aeuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCategory(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetCategory(*s)
	}
	return aeuo
}

// ClearCategory clears the value of the "category" field.
func (aeuo *AnswerEventUpdateOne) ClearCategory() *AnswerEventUpdateOne {
	aeuo.mutation.ClearCategory()
	return aeuo
}

// SetQuality sets the "quality" field.
func (aeuo *AnswerEventUpdateOne) SetQuality(i int) *AnswerEventUpdateOne {
	aeuo.mutation.ResetQuality()
	aeuo.mutation.SetQuality(i)
	return aeuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableQuality(i *int) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetQuality(*i)
	}
	return aeuo
}

// AddQuality adds i to the "quality" field.
func (aeuo *AnswerEventUpdateOne) AddQuality(i int) *AnswerEventUpdateOne {
	aeuo.mutation.AddQuality(i)
	return aeuo
}

// SetLatencyMs sets the "latency_ms" field.
func (aeuo *AnswerEventUpdateOne) SetLatencyMs(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.ResetLatencyMs()
	aeuo.mutation.SetLatencyMs(i)
	return aeuo
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableLatencyMs(i *int64) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetLatencyMs(*i)
	}
	return aeuo
}

// AddLatencyMs adds i to the "latency_ms" field.
func (aeuo *AnswerEventUpdateOne) AddLatencyMs(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.AddLatencyMs(i)
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AnswerEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Infinitive(); ok {
		if err := answerevent.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.infinitive": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Tense(); ok {
		if err := answerevent.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.tense": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.Person(); ok {
		if err := answerevent.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.person": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.MatchType(); ok {
		if err := answerevent.MatchTypeValidator(v); err != nil {
			return &ValidationError{Name: "match_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.match_type": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Infinitive(); ok {
		_spec.SetField(answerevent.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Tense(); ok {
		_spec.SetField(answerevent.FieldTense, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Person(); ok {
		_spec.SetField(answerevent.FieldPerson, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.MatchType(); ok {
		_spec.SetField(answerevent.FieldMatchType, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Category(); ok {
		_spec.SetField(answerevent.FieldCategory, field.TypeString, value)
	}
	if aeuo.mutation.CategoryCleared() {
		_spec.ClearField(answerevent.FieldCategory, field.TypeString)
	}
	if value, ok := aeuo.mutation.Quality(); ok {
		_spec.SetField(answerevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedQuality(); ok {
		_spec.AddField(answerevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.LatencyMs(); ok {
		_spec.SetField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
