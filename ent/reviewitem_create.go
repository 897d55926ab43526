// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ric *ReviewItemCreate) SetUserID(s string) *ReviewItemCreate {
	ric.mutation.SetUserID(s)
	return ric
}

// SetInfinitive sets the "infinitive" field.
func (ric *ReviewItemCreate) SetInfinitive(s string) *ReviewItemCreate {
	ric.mutation.SetInfinitive(s)
	return ric
}

// SetTense sets the "tense" field.
func (ric *ReviewItemCreate) SetTense(s string) *ReviewItemCreate {
	ric.mutation.SetTense(s)
	return ric
}

// SetPerson sets the "person" field.
func (ric *ReviewItemCreate) SetPerson(s string) *ReviewItemCreate {
	ric.mutation.SetPerson(s)
	return ric
}

// SetEaseFactor sets the "ease_factor" field.
func (ric *ReviewItemCreate) SetEaseFactor(f float64) *ReviewItemCreate {
	ric.mutation.SetEaseFactor(f)
	return ric
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableEaseFactor(f *float64) *ReviewItemCreate {
	if f != nil {
		ric.SetEaseFactor(*f)
	}
	return ric
}

// SetIntervalDays sets the "interval_days" field.
func (ric *ReviewItemCreate) SetIntervalDays(i int) *ReviewItemCreate {
	ric.mutation.SetIntervalDays(i)
	return ric
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableIntervalDays(i *int) *ReviewItemCreate {
	if i != nil {
		ric.SetIntervalDays(*i)
	}
	return ric
}

// SetRepetitionCount sets the "repetition_count" field.
func (ric *ReviewItemCreate) SetRepetitionCount(i int) *ReviewItemCreate {
	ric.mutation.SetRepetitionCount(i)
	return ric
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableRepetitionCount(i *int) *ReviewItemCreate {
	if i != nil {
		ric.SetRepetitionCount(*i)
	}
	return ric
}

// SetDueDate sets the "due_date" field.
func (ric *ReviewItemCreate) SetDueDate(t time.Time) *ReviewItemCreate {
	ric.mutation.SetDueDate(t)
	return ric
}

// SetLastQuality sets the "last_quality" field.
func (ric *ReviewItemCreate) SetLastQuality(i int) *ReviewItemCreate {
	ric.mutation.SetLastQuality(i)
	return ric
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableLastQuality(i *int) *ReviewItemCreate {
	if i != nil {
		ric.SetLastQuality(*i)
	}
	return ric
}

// Mutation returns the ReviewItemMutation object of the builder.
func (ric *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return ric.mutation
}

// Save creates the ReviewItem in the database.
func (ric *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	ric.defaults()
	return withHooks(ctx, ric.sqlSave, ric.mutation, ric.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ric *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := ric.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ric *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := ric.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ric *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := ric.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ric *ReviewItemCreate) defaults() {
	if _, ok := ric.mutation.EaseFactor(); !ok {
		v := reviewitem.DefaultEaseFactor
		ric.mutation.SetEaseFactor(v)
	}
	if _, ok := ric.mutation.IntervalDays(); !ok {
		v := reviewitem.DefaultIntervalDays
		ric.mutation.SetIntervalDays(v)
	}
	if _, ok := ric.mutation.RepetitionCount(); !ok {
		v := reviewitem.DefaultRepetitionCount
		ric.mutation.SetRepetitionCount(v)
	}
	if _, ok := ric.mutation.LastQuality(); !ok {
		v := reviewitem.DefaultLastQuality
		ric.mutation.SetLastQuality(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ric *ReviewItemCreate) check() error {
	if _, ok := ric.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewItem.user_id"`)}
	}
	if v, ok := ric.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if _, ok := ric.mutation.Infinitive(); !ok {
		return &ValidationError{Name: "infinitive", err: errors.New(`ent: missing required field "ReviewItem.infinitive"`)}
	}
	if v, ok := ric.mutation.Infinitive(); ok {
		if err := reviewitem.InfinitiveValidator(v); err != nil {
			return &ValidationError{Name: "infinitive", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.infinitive": %w`, err)}
		}
	}
	if _, ok := ric.mutation.Tense(); !ok {
		return &ValidationError{Name: "tense", err: errors.New(`ent: missing required field "ReviewItem.tense"`)}
	}
	if v, ok := ric.mutation.Tense(); ok {
		if err := reviewitem.TenseValidator(v); err != nil {
			return &ValidationError{Name: "tense", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.tense": %w`, err)}
		}
	}
	if _, ok := ric.mutation.Person(); !ok {
		return &ValidationError{Name: "person", err: errors.New(`ent: missing required field "ReviewItem.person"`)}
	}
	if v, ok := ric.mutation.Person(); ok {
		if err := reviewitem.PersonValidator(v); err != nil {
			return &ValidationError{Name: "person", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.person": %w`, err)}
		}
	}
	if _, ok := ric.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewItem.ease_factor"`)}
	}
	if _, ok := ric.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if _, ok := ric.mutation.RepetitionCount(); !ok {
		return &ValidationError{Name: "repetition_count", err: errors.New(`ent: missing required field "ReviewItem.repetition_count"`)}
	}
	if _, ok := ric.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "ReviewItem.due_date"`)}
	}
	if _, ok := ric.mutation.LastQuality(); !ok {
		return &ValidationError{Name: "last_quality", err: errors.New(`ent: missing required field "ReviewItem.last_quality"`)}
	}
	return nil
}

func (ric *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
	if err := ric.check(); err != nil {
		return nil, err
	}
	_node, _spec := ric.createSpec()
	if err := sqlgraph.CreateNode(ctx, ric.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ric.mutation.id = &_node.ID
	ric.mutation.done = true
	return _node, nil
}

func (ric *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: ric.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := ric.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ric.mutation.Infinitive(); ok {
		_spec.SetField(reviewitem.FieldInfinitive, field.TypeString, value)
		_node.Infinitive = value
	}
	if value, ok := ric.mutation.Tense(); ok {
		_spec.SetField(reviewitem.FieldTense, field.TypeString, value)
		_node.Tense = value
	}
	if value, ok := ric.mutation.Person(); ok {
		_spec.SetField(reviewitem.FieldPerson, field.TypeString, value)
		_node.Person = value
	}
	if value, ok := ric.mutation.EaseFactor(); ok {
		_spec.SetField(reviewitem.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := ric.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := ric.mutation.RepetitionCount(); ok {
		_spec.SetField(reviewitem.FieldRepetitionCount, field.TypeInt, value)
		_node.RepetitionCount = value
	}
	if value, ok := ric.mutation.DueDate(); ok {
		_spec.SetField(reviewitem.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := ric.mutation.LastQuality(); ok {
		_spec.SetField(reviewitem.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (ricb *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if ricb.err != nil {
		return nil, ricb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ricb.builders))
	nodes := make([]*ReviewItem, len(ricb.builders))
	mutators := make([]Mutator, len(ricb.builders))
	for i := range ricb.builders {
		func(i int, root context.Context) {
			builder := ricb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
					_, err = mutators[i+1].Mutate(root, ricb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ricb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ricb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ricb *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := ricb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ricb *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := ricb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ricb *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := ricb.Exec(ctx); err != nil {
		panic(err)
	}
}
