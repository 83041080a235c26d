// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// PlannedRunQuery is the builder for querying PlannedRun entities.
type PlannedRunQuery struct {
	config
	ctx          *QueryContext
	order        []plannedrun.OrderOption
	inters       []Interceptor
	predicates   []predicate.PlannedRun
	withCampaign *CampaignQuery
	withResult   *RunResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PlannedRunQuery builder.
func (_q *PlannedRunQuery) Where(ps ...predicate.PlannedRun) *PlannedRunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PlannedRunQuery) Limit(limit int) *PlannedRunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PlannedRunQuery) Offset(offset int) *PlannedRunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PlannedRunQuery) Unique(unique bool) *PlannedRunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PlannedRunQuery) Order(o ...plannedrun.OrderOption) *PlannedRunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCampaign chains the current query on the "campaign" edge.
func (_q *PlannedRunQuery) QueryCampaign() *CampaignQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(plannedrun.Table, plannedrun.FieldID, selector),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plannedrun.CampaignTable, plannedrun.CampaignColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResult chains the current query on the "result" edge.
func (_q *PlannedRunQuery) QueryResult() *RunResultQuery {
	query := (&RunResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(plannedrun.Table, plannedrun.FieldID, selector),
			sqlgraph.To(runresult.Table, runresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, plannedrun.ResultTable, plannedrun.ResultColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PlannedRun entity from the query.
// Returns a *NotFoundError when no PlannedRun was found.
func (_q *PlannedRunQuery) First(ctx context.Context) (*PlannedRun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{plannedrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PlannedRunQuery) FirstX(ctx context.Context) *PlannedRun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PlannedRun ID from the query.
// Returns a *NotFoundError when no PlannedRun ID was found.
func (_q *PlannedRunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{plannedrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PlannedRunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PlannedRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PlannedRun entity is found.
// Returns a *NotFoundError when no PlannedRun entities are found.
func (_q *PlannedRunQuery) Only(ctx context.Context) (*PlannedRun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{plannedrun.Label}
	default:
		return nil, &NotSingularError{plannedrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PlannedRunQuery) OnlyX(ctx context.Context) *PlannedRun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PlannedRun ID in the query.
// Returns a *NotSingularError when more than one PlannedRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PlannedRunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{plannedrun.Label}
	default:
		err = &NotSingularError{plannedrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PlannedRunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PlannedRuns.
func (_q *PlannedRunQuery) All(ctx context.Context) ([]*PlannedRun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PlannedRun, *PlannedRunQuery]()
	return withInterceptors[[]*PlannedRun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PlannedRunQuery) AllX(ctx context.Context) []*PlannedRun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PlannedRun IDs.
func (_q *PlannedRunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(plannedrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PlannedRunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PlannedRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PlannedRunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PlannedRunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PlannedRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PlannedRunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PlannedRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PlannedRunQuery) Clone() *PlannedRunQuery {
	if _q == nil {
		return nil
	}
	return &PlannedRunQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]plannedrun.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.PlannedRun{}, _q.predicates...),
		withCampaign: _q.withCampaign.Clone(),
		withResult:   _q.withResult.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCampaign tells the query-builder to eager-load the nodes that are connected to
// the "campaign" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PlannedRunQuery) WithCampaign(opts ...func(*CampaignQuery)) *PlannedRunQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCampaign = query
	return _q
}

// WithResult tells the query-builder to eager-load the nodes that are connected to
// the "result" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PlannedRunQuery) WithResult(opts ...func(*RunResultQuery)) *PlannedRunQuery {
	query := (&RunResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResult = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CampaignID string `json:"campaign_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PlannedRun.Query().
//		GroupBy(plannedrun.FieldCampaignID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PlannedRunQuery) GroupBy(field string, fields ...string) *PlannedRunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PlannedRunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = plannedrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CampaignID string `json:"campaign_id,omitempty"`
//	}
//
//	client.PlannedRun.Query().
//		Select(plannedrun.FieldCampaignID).
//		Scan(ctx, &v)
func (_q *PlannedRunQuery) Select(fields ...string) *PlannedRunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PlannedRunSelect{PlannedRunQuery: _q}
	sbuild.label = plannedrun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PlannedRunSelect configured with the given aggregations.
func (_q *PlannedRunQuery) Aggregate(fns ...AggregateFunc) *PlannedRunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PlannedRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !plannedrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PlannedRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PlannedRun, error) {
	var (
		nodes       = []*PlannedRun{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCampaign != nil,
			_q.withResult != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PlannedRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PlannedRun{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCampaign; query != nil {
		if err := _q.loadCampaign(ctx, query, nodes, nil,
			func(n *PlannedRun, e *Campaign) { n.Edges.Campaign = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResult; query != nil {
		if err := _q.loadResult(ctx, query, nodes, nil,
			func(n *PlannedRun, e *RunResult) { n.Edges.Result = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PlannedRunQuery) loadCampaign(ctx context.Context, query *CampaignQuery, nodes []*PlannedRun, init func(*PlannedRun), assign func(*PlannedRun, *Campaign)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PlannedRun)
	for i := range nodes {
		fk := nodes[i].CampaignID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(campaign.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "campaign_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PlannedRunQuery) loadResult(ctx context.Context, query *RunResultQuery, nodes []*PlannedRun, init func(*PlannedRun), assign func(*PlannedRun, *RunResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PlannedRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runresult.FieldRunID)
	}
	query.Where(predicate.RunResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(plannedrun.ResultColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PlannedRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PlannedRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(plannedrun.Table, plannedrun.Columns, sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plannedrun.FieldID)
		for i := range fields {
			if fields[i] != plannedrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCampaign != nil {
			_spec.Node.AddColumnOnce(plannedrun.FieldCampaignID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PlannedRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(plannedrun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = plannedrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PlannedRunGroupBy is the group-by builder for PlannedRun entities.
type PlannedRunGroupBy struct {
	selector
	build *PlannedRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PlannedRunGroupBy) Aggregate(fns ...AggregateFunc) *PlannedRunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PlannedRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PlannedRunQuery, *PlannedRunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PlannedRunGroupBy) sqlScan(ctx context.Context, root *PlannedRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PlannedRunSelect is the builder for selecting fields of PlannedRun entities.
type PlannedRunSelect struct {
	*PlannedRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PlannedRunSelect) Aggregate(fns ...AggregateFunc) *PlannedRunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PlannedRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PlannedRunQuery, *PlannedRunSelect](ctx, _s.PlannedRunQuery, _s, _s.inters, v)
}

func (_s *PlannedRunSelect) sqlScan(ctx context.Context, root *PlannedRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
