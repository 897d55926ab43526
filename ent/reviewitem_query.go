// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
)

// ReviewItemQuery is the builder for querying ReviewItem entities.
type ReviewItemQuery struct {
	config
	ctx        *QueryContext
	order      []reviewitem.OrderOption
	inters     []Interceptor
	predicates []predicate.ReviewItem
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReviewItemQuery builder.
func (riq *ReviewItemQuery) Where(ps ...predicate.ReviewItem) *ReviewItemQuery {
	riq.predicates = append(riq.predicates, ps...)
	return riq
}

// Limit the number of records to be returned by this query.
func (riq *ReviewItemQuery) Limit(limit int) *ReviewItemQuery {
	riq.ctx.Limit = &limit
	return riq
}

// Offset to start from.
func (riq *ReviewItemQuery) Offset(offset int) *ReviewItemQuery {
	riq.ctx.Offset = &offset
	return riq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (riq *ReviewItemQuery) Unique(unique bool) *ReviewItemQuery {
	riq.ctx.Unique = &unique
	return riq
}

// Order specifies how the records should be ordered.
func (riq *ReviewItemQuery) Order(o ...reviewitem.OrderOption) *ReviewItemQuery {
	riq.order = append(riq.order, o...)
	return riq
}

// First returns the first ReviewItem entity from the query.
// Returns a *NotFoundError when no ReviewItem was found.
func (riq *ReviewItemQuery) First(ctx context.Context) (*ReviewItem, error) {
	nodes, err := riq.Limit(1).All(setContextOp(ctx, riq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reviewitem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (riq *ReviewItemQuery) FirstX(ctx context.Context) *ReviewItem {
	node, err := riq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReviewItem ID from the query.
// Returns a *NotFoundError when no ReviewItem ID was found.
func (riq *ReviewItemQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = riq.Limit(1).IDs(setContextOp(ctx, riq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reviewitem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (riq *ReviewItemQuery) FirstIDX(ctx context.Context) int {
	id, err := riq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReviewItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReviewItem entity is found.
// Returns a *NotFoundError when no ReviewItem entities are found.
func (riq *ReviewItemQuery) Only(ctx context.Context) (*ReviewItem, error) {
	nodes, err := riq.Limit(2).All(setContextOp(ctx, riq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reviewitem.Label}
	default:
		return nil, &NotSingularError{reviewitem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (riq *ReviewItemQuery) OnlyX(ctx context.Context) *ReviewItem {
	node, err := riq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReviewItem ID in the query.
// Returns a *NotSingularError when more than one ReviewItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (riq *ReviewItemQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = riq.Limit(2).IDs(setContextOp(ctx, riq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reviewitem.Label}
	default:
		err = &NotSingularError{reviewitem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (riq *ReviewItemQuery) OnlyIDX(ctx context.Context) int {
	id, err := riq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReviewItems.
func (riq *ReviewItemQuery) All(ctx context.Context) ([]*ReviewItem, error) {
	ctx = setContextOp(ctx, riq.ctx, ent.OpQueryAll)
	if err := riq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReviewItem, *ReviewItemQuery]()
	return withInterceptors[[]*ReviewItem](ctx, riq, qr, riq.inters)
}

// AllX is like All, but panics if an error occurs.
func (riq *ReviewItemQuery) AllX(ctx context.Context) []*ReviewItem {
	nodes, err := riq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReviewItem IDs.
func (riq *ReviewItemQuery) IDs(ctx context.Context) (ids []int, err error) {
	if riq.ctx.Unique == nil && riq.path != nil {
		riq.Unique(true)
	}
	ctx = setContextOp(ctx, riq.ctx, ent.OpQueryIDs)
	if err = riq.Select(reviewitem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (riq *ReviewItemQuery) IDsX(ctx context.Context) []int {
	ids, err := riq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (riq *ReviewItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, riq.ctx, ent.OpQueryCount)
	if err := riq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, riq, querierCount[*ReviewItemQuery](), riq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (riq *ReviewItemQuery) CountX(ctx context.Context) int {
	count, err := riq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (riq *ReviewItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, riq.ctx, ent.OpQueryExist)
	switch _, err := riq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (riq *ReviewItemQuery) ExistX(ctx context.Context) bool {
	exist, err := riq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReviewItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (riq *ReviewItemQuery) Clone() *ReviewItemQuery {
	if riq == nil {
		return nil
	}
	return &ReviewItemQuery{
		config:     riq.config,
		ctx:        riq.ctx.Clone(),
		order:      append([]reviewitem.OrderOption{}, riq.order...),
		inters:     append([]Interceptor{}, riq.inters...),
		predicates: append([]predicate.ReviewItem{}, riq.predicates...),
		// clone intermediate query.
		sql:  riq.sql.Clone(),
		path: riq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReviewItem.Query().
//		GroupBy(reviewitem.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (riq *ReviewItemQuery) GroupBy(field string, fields ...string) *ReviewItemGroupBy {
	riq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReviewItemGroupBy{build: riq}
	grbuild.flds = &riq.ctx.Fields
	grbuild.label = reviewitem.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.ReviewItem.Query().
//		Select(reviewitem.FieldUserID).
//		Scan(ctx, &v)
func (riq *ReviewItemQuery) Select(fields ...string) *ReviewItemSelect {
	riq.ctx.Fields = append(riq.ctx.Fields, fields...)
	sbuild := &ReviewItemSelect{ReviewItemQuery: riq}
	sbuild.label = reviewitem.Label
	sbuild.flds, sbuild.scan = &riq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReviewItemSelect configured with the given aggregations.
func (riq *ReviewItemQuery) Aggregate(fns ...AggregateFunc) *ReviewItemSelect {
	return riq.Select().Aggregate(fns...)
}

func (riq *ReviewItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range riq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, riq); err != nil {
				return err
			}
		}
	}
	for _, f := range riq.ctx.Fields {
		if !reviewitem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if riq.path != nil {
		prev, err := riq.path(ctx)
		if err != nil {
			return err
		}
		riq.sql = prev
	}
	return nil
}

func (riq *ReviewItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReviewItem, error) {
	var (
		nodes = []*ReviewItem{}
		_spec = riq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReviewItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReviewItem{config: riq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, riq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (riq *ReviewItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := riq.querySpec()
	_spec.Node.Columns = riq.ctx.Fields
	if len(riq.ctx.Fields) > 0 {
		_spec.Unique = riq.ctx.Unique != nil && *riq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, riq.driver, _spec)
}

func (riq *ReviewItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	_spec.From = riq.sql
	if unique := riq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if riq.path != nil {
		_spec.Unique = true
	}
	if fields := riq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for i := range fields {
			if fields[i] != reviewitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := riq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := riq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := riq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := riq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (riq *ReviewItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(riq.driver.Dialect())
	t1 := builder.Table(reviewitem.Table)
	columns := riq.ctx.Fields
	if len(columns) == 0 {
		columns = reviewitem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if riq.sql != nil {
		selector = riq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if riq.ctx.Unique != nil && *riq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range riq.predicates {
		p(selector)
	}
	for _, p := range riq.order {
		p(selector)
	}
	if offset := riq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := riq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReviewItemGroupBy is the group-by builder for ReviewItem entities.
type ReviewItemGroupBy struct {
	selector
	build *ReviewItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rigb *ReviewItemGroupBy) Aggregate(fns ...AggregateFunc) *ReviewItemGroupBy {
	rigb.fns = append(rigb.fns, fns...)
	return rigb
}

// Scan applies the selector query and scans the result into the given value.
func (rigb *ReviewItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rigb.build.ctx, ent.OpQueryGroupBy)
	if err := rigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReviewItemQuery, *ReviewItemGroupBy](ctx, rigb.build, rigb, rigb.build.inters, v)
}

func (rigb *ReviewItemGroupBy) sqlScan(ctx context.Context, root *ReviewItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rigb.fns))
	for _, fn := range rigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rigb.flds)+len(rigb.fns))
		for _, f := range *rigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReviewItemSelect is the builder for selecting fields of ReviewItem entities.
type ReviewItemSelect struct {
	*ReviewItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ris *ReviewItemSelect) Aggregate(fns ...AggregateFunc) *ReviewItemSelect {
	ris.fns = append(ris.fns, fns...)
	return ris
}

// Scan applies the selector query and scans the result into the given value.
func (ris *ReviewItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ris.ctx, ent.OpQuerySelect)
	if err := ris.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReviewItemQuery, *ReviewItemSelect](ctx, ris.ReviewItemQuery, ris, ris.inters, v)
}

func (ris *ReviewItemSelect) sqlScan(ctx context.Context, root *ReviewItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ris.fns))
	for _, fn := range ris.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ris.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ris.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
