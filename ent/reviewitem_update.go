// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (riu *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	riu.mutation.Where(ps...)
	return riu
}

// SetUserID sets the "user_id" field.
func (riu *ReviewItemUpdate) SetUserID(s string) *ReviewItemUpdate {
	riu.mutation.SetUserID(s)
	return riu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableUserID(s *string) *ReviewItemUpdate {
	if s != nil {
		riu.SetUserID(*s)
	}
	return riu
}

// SetInfinitive sets the "infinitive" field.
func (riu *ReviewItemUpdate) SetInfinitive(s string) *ReviewItemUpdate {
	riu.mutation.SetInfinitive(s)
	return riu
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableInfinitive(s *string) *ReviewItemUpdate {
	if s != nil {
		riu.SetInfinitive(*s)
	}
	return riu
}

// SetTense sets the "tense" field.
func (riu *ReviewItemUpdate) SetTense(s string) *ReviewItemUpdate {
	riu.mutation.SetTense(s)
	return riu
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableTense(s *string) *ReviewItemUpdate {
	if s != nil {
		riu.SetTense(*s)
	}
	return riu
}

// SetPerson sets the "person" field.
func (riu *ReviewItemUpdate) SetPerson(s string) *ReviewItemUpdate {
	riu.mutation.SetPerson(s)
	return riu
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillablePerson(s *string) *ReviewItemUpdate {
	if s != nil {
		riu.SetPerson(*s)
	}
	return riu
}

// SetEaseFactor sets the "ease_factor" field.
func (riu *ReviewItemUpdate) SetEaseFactor(f float64) *ReviewItemUpdate {
	riu.mutation.ResetEaseFactor()
	riu.mutation.SetEaseFactor(f)
	return riu
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableEaseFactor(f *float64) *ReviewItemUpdate {
	if f != nil {
		riu.SetEaseFactor(*f)
	}
	return riu
}

// AddEaseFactor adds f to the "ease_factor" field.
func (riu *ReviewItemUpdate) AddEaseFactor(f float64) *ReviewItemUpdate {
	riu.mutation.AddEaseFactor(f)
	return riu
}

// SetIntervalDays sets the "interval_days" field.
func (riu *ReviewItemUpdate) SetIntervalDays(i int) *ReviewItemUpdate {
	riu.mutation.ResetIntervalDays()
	riu.mutation.SetIntervalDays(i)
	return riu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableIntervalDays(i *int) *ReviewItemUpdate {
	if i != nil {
		riu.SetIntervalDays(*i)
	}
	return riu
}

// AddIntervalDays adds i to the "interval_days" field.
func (riu *ReviewItemUpdate) AddIntervalDays(i int) *ReviewItemUpdate {
	riu.mutation.AddIntervalDays(i)
	return riu
}

// SetRepetitionCount sets the "repetition_count" field.
func (riu *ReviewItemUpdate) SetRepetitionCount(i int) *ReviewItemUpdate {
	riu.mutation.ResetRepetitionCount()
	riu.mutation.SetRepetitionCount(i)
	return riu
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableRepetitionCount(i *int) *ReviewItemUpdate {
	if i != nil {
		riu.SetRepetitionCount(*i)
	}
	return riu
}

// AddRepetitionCount adds i to the "repetition_count" field.
func (riu *ReviewItemUpdate) AddRepetitionCount(i int) *ReviewItemUpdate {
	riu.mutation.AddRepetitionCount(i)
	return riu
}

// SetDueDate sets the "due_date" field.
func (riu *ReviewItemUpdate) SetDueDate(t time.Time) *ReviewItemUpdate {
	riu.mutation.SetDueDate(t)
	return riu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableDueDate(t *time.Time) *ReviewItemUpdate {
	if t != nil {
		riu.SetDueDate(*t)
	}
	return riu
}

// SetLastQuality sets the "last_quality" field.
func (riu *ReviewItemUpdate) SetLastQuality(i int) *ReviewItemUpdate {
	riu.mutation.ResetLastQuality()
	riu.mutation.SetLastQuality(i)
	return riu
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableLastQuality(i *int) *ReviewItemUpdate {
	if i != nil {
		riu.SetLastQuality(*i)
	}
	return riu
}

// AddLastQuality adds i to the "last_quality" field.
func (riu *ReviewItemUpdate) AddLastQuality(i int) *ReviewItemUpdate {
	riu.mutation.AddLastQuality(i)
	return riu
}

// Mutation returns the ReviewItemMutation object of the builder.
func (riu *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return riu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (riu *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, riu.sqlSave, riu.mutation, riu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (riu *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := riu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (riu *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := riu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (riu *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := riu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (riu *ReviewItemUpdate) check() error {
	if v, ok := riu.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := riu.mutation.Infinitive(); ok {
		if err := reviewitem.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.infinitive": %w`, err)}
		}
	}
	if v, ok := riu.mutation.Tense(); ok {
		if err := reviewitem.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.tense": %w`, err)}
		}
	}
	if v, ok := riu.mutation.Person(); ok {
		if err := reviewitem.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.person": %w`, err)}
		}
	}
	return nil
}

func (riu *ReviewItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := riu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := riu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := riu.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := riu.mutation.Infinitive(); ok {
		_spec.SetField(reviewitem.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := riu.mutation.Tense(); ok {
		_spec.SetField(reviewitem.FieldTense, field.TypeString, value)
	}
	if value, ok := riu.mutation.Person(); ok {
		_spec.SetField(reviewitem.FieldPerson, field.TypeString, value)
	}
	if value, ok := riu.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := riu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := riu.mutation.RepetitionCount(); ok {
		_spec.SetField(reviewitem.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := riu.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(reviewitem.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := riu.mutation.DueDate(); ok {
		_spec.SetField(reviewitem.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := riu.mutation.LastQuality(); ok {
		_spec.SetField(reviewitem.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := riu.mutation.AddedLastQuality(); ok {
		_spec.AddField(reviewitem.FieldLastQuality, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, riu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	riu.mutation.done = true
	return n, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetUserID sets the "user_id" field.
func (riuo *ReviewItemUpdateOne) SetUserID(s string) *ReviewItemUpdateOne {
	riuo.mutation.SetUserID(s)
	return riuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableUserID(s *string) *ReviewItemUpdateOne {
	if s != nil {
		riuo.SetUserID(*s)
	}
	return riuo
}

// SetInfinitive sets the "infinitive" field.
func (riuo *ReviewItemUpdateOne) SetInfinitive(s string) *ReviewItemUpdateOne {
	riuo.mutation.SetInfinitive(s)
	return riuo
}

// SetNillableInfinitive sets the "infinitive" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableInfinitive(s *string) *ReviewItemUpdateOne {
	if s != nil {
		riuo.SetInfinitive(*s)
	}
	return riuo
}

// SetTense sets the "tense" field.
func (riuo *ReviewItemUpdateOne) SetTense(s string) *ReviewItemUpdateOne {
	riuo.mutation.SetTense(s)
	return riuo
}

// SetNillableTense sets the "tense" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableTense(s *string) *ReviewItemUpdateOne {
	if s != nil {
		riuo.SetTense(*s)
	}
	return riuo
}

// SetPerson sets the "person" field.
func (riuo *ReviewItemUpdateOne) SetPerson(s string) *ReviewItemUpdateOne {
	riuo.mutation.SetPerson(s)
	return riuo
}

// SetNillablePerson sets the "person" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillablePerson(s *string) *ReviewItemUpdateOne {
	if s != nil {
		riuo.SetPerson(*s)
	}
	return riuo
}

// SetEaseFactor sets the "ease_factor" field.
func (riuo *ReviewItemUpdateOne) SetEaseFactor(f float64) *ReviewItemUpdateOne {
	riuo.mutation.ResetEaseFactor()
	riuo.mutation.SetEaseFactor(f)
	return riuo
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableEaseFactor(f *float64) *ReviewItemUpdateOne {
	if f != nil {
		riuo.SetEaseFactor(*f)
	}
	return riuo
}

// AddEaseFactor adds f to the "ease_factor" field.
func (riuo *ReviewItemUpdateOne) AddEaseFactor(f float64) *ReviewItemUpdateOne {
	riuo.mutation.AddEaseFactor(f)
	return riuo
}

// SetIntervalDays sets the "interval_days" field.
func (riuo *ReviewItemUpdateOne) SetIntervalDays(i int) *ReviewItemUpdateOne {
	riuo.mutation.ResetIntervalDays()
	riuo.mutation.SetIntervalDays(i)
	return riuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableIntervalDays(i *int) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetIntervalDays(*i)
	}
	return riuo
}

// AddIntervalDays adds i to the "interval_days" field.
func (riuo *ReviewItemUpdateOne) AddIntervalDays(i int) *ReviewItemUpdateOne {
	riuo.mutation.AddIntervalDays(i)
	return riuo
}

// SetRepetitionCount sets the "repetition_count" field.
func (riuo *ReviewItemUpdateOne) SetRepetitionCount(i int) *ReviewItemUpdateOne {
	riuo.mutation.ResetRepetitionCount()
	riuo.mutation.SetRepetitionCount(i)
	return riuo
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableRepetitionCount(i *int) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetRepetitionCount(*i)
	}
	return riuo
}

// AddRepetitionCount adds i to the "repetition_count" field.
func (riuo *ReviewItemUpdateOne) AddRepetitionCount(i int) *ReviewItemUpdateOne {
	riuo.mutation.AddRepetitionCount(i)
	return riuo
}

// SetDueDate sets the "due_date" field.
func (riuo *ReviewItemUpdateOne) SetDueDate(t time.Time) *ReviewItemUpdateOne {
	riuo.mutation.SetDueDate(t)
	return riuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableDueDate(t *time.Time) *ReviewItemUpdateOne {
	if t != nil {
		riuo.SetDueDate(*t)
	}
	return riuo
}

// SetLastQuality sets the "last_quality" field.
func (riuo *ReviewItemUpdateOne) SetLastQuality(i int) *ReviewItemUpdateOne {
	riuo.mutation.ResetLastQuality()
	riuo.mutation.SetLastQuality(i)
	return riuo
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableLastQuality(i *int) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetLastQuality(*i)
	}
	return riuo
}

// AddLastQuality adds i to the "last_quality" field.
func (riuo *ReviewItemUpdateOne) AddLastQuality(i int) *ReviewItemUpdateOne {
	riuo.mutation.AddLastQuality(i)
	return riuo
}

// Mutation returns the ReviewItemMutation object of the builder.
func (riuo *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return riuo.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (riuo *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	riuo.mutation.Where(ps...)
	return riuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (riuo *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	riuo.fields = append([]string{field}, fields...)
	return riuo
}

// Save executes the query and returns the updated ReviewItem entity.
func (riuo *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, riuo.sqlSave, riuo.mutation, riuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (riuo *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := riuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (riuo *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := riuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (riuo *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := riuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (riuo *ReviewItemUpdateOne) check() error {
	if v, ok := riuo.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := riuo.mutation.Infinitive(); ok {
		if err := reviewitem.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.infinitive": %w`, err)}
		}
	}
	if v, ok := riuo.mutation.Tense(); ok {
		if err := reviewitem.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.tense": %w`, err)}
		}
	}
	if v, ok := riuo.mutation.Person(); ok {
		if err := reviewitem.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.person": %w`, err)}
		}
	}
	return nil
}

func (riuo *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := riuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := riuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := riuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := riuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := riuo.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := riuo.mutation.Infinitive(); ok {
		_spec.SetField(reviewitem.FieldInfinitive, field.TypeString, value)
	}
	if value, ok := riuo.mutation.Tense(); ok {
		_spec.SetField(reviewitem.FieldTense, field.TypeString, value)
	}
	if value, ok := riuo.mutation.Person(); ok {
		_spec.SetField(reviewitem.FieldPerson, field.TypeString, value)
	}
	if value, ok := riuo.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := riuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := riuo.mutation.RepetitionCount(); ok {
		_spec.SetField(reviewitem.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := riuo.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(reviewitem.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := riuo.mutation.DueDate(); ok {
		_spec.SetField(reviewitem.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := riuo.mutation.LastQuality(); ok {
		_spec.SetField(reviewitem.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := riuo.mutation.AddedLastQuality(); ok {
		_spec.AddField(reviewitem.FieldLastQuality, field.TypeInt, value)
	}
	_node = &ReviewItem{config: riuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, riuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	riuo.mutation.done = true
	return _node, nil
}
