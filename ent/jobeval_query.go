// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/predicate"
)

// JobEvalQuery is the builder for querying JobEval entities.
type JobEvalQuery struct {
	config
	ctx        *QueryContext
	order      []jobeval.OrderOption
	inters     []Interceptor
	predicates []predicate.JobEval
	withJob    *JobQuery
	withStep   *JobStepQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the JobEvalQuery builder.
func (jeq *JobEvalQuery) Where(ps ...predicate.JobEval) *JobEvalQuery {
	jeq.predicates = append(jeq.predicates, ps...)
	return jeq
}

// Limit the number of records to be returned by this query.
func (jeq *JobEvalQuery) Limit(limit int) *JobEvalQuery {
	jeq.ctx.Limit = &limit
	return jeq
}

// Offset to start from.
func (jeq *JobEvalQuery) Offset(offset int) *JobEvalQuery {
	jeq.ctx.Offset = &offset
	return jeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (jeq *JobEvalQuery) Unique(unique bool) *JobEvalQuery {
	jeq.ctx.Unique = &unique
	return jeq
}

// Order specifies how the records should be ordered.
func (jeq *JobEvalQuery) Order(o ...jobeval.OrderOption) *JobEvalQuery {
	jeq.order = append(jeq.order, o...)
	return jeq
}

// QueryJob chains the current query on the "job" edge.
func (jeq *JobEvalQuery) QueryJob() *JobQuery {
	query := (&JobClient{config: jeq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := jeq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := jeq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(jobeval.Table, jobeval.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobeval.JobTable, jobeval.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(jeq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStep chains the current query on the "step" edge.
func (jeq *JobEvalQuery) QueryStep() *JobStepQuery {
	query := (&JobStepClient{config: jeq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := jeq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := jeq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(jobeval.Table, jobeval.FieldID, selector),
			sqlgraph.To(jobstep.Table, jobstep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobeval.StepTable, jobeval.StepColumn),
		)
		fromU = sqlgraph.SetNeighbors(jeq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first JobEval entity from the query.
// Returns a *NotFoundError when no JobEval was found.
func (jeq *JobEvalQuery) First(ctx context.Context) (*JobEval, error) {
	nodes, err := jeq.Limit(1).All(setContextOp(ctx, jeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{jobeval.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (jeq *JobEvalQuery) FirstX(ctx context.Context) *JobEval {
	node, err := jeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first JobEval ID from the query.
// Returns a *NotFoundError when no JobEval ID was found.
func (jeq *JobEvalQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = jeq.Limit(1).IDs(setContextOp(ctx, jeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{jobeval.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (jeq *JobEvalQuery) FirstIDX(ctx context.Context) string {
	id, err := jeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single JobEval entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one JobEval entity is found.
// Returns a *NotFoundError when no JobEval entities are found.
func (jeq *JobEvalQuery) Only(ctx context.Context) (*JobEval, error) {
	nodes, err := jeq.Limit(2).All(setContextOp(ctx, jeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{jobeval.Label}
	default:
		return nil, &NotSingularError{jobeval.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (jeq *JobEvalQuery) OnlyX(ctx context.Context) *JobEval {
	node, err := jeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only JobEval ID in the query.
// Returns a *NotSingularError when more than one JobEval ID is found.
// Returns a *NotFoundError when no entities are found.
func (jeq *JobEvalQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = jeq.Limit(2).IDs(setContextOp(ctx, jeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{jobeval.Label}
	default:
		err = &NotSingularError{jobeval.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (jeq *JobEvalQuery) OnlyIDX(ctx context.Context) string {
	id, err := jeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of JobEvals.
func (jeq *JobEvalQuery) All(ctx context.Context) ([]*JobEval, error) {
	ctx = setContextOp(ctx, jeq.ctx, ent.OpQueryAll)
	if err := jeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*JobEval, *JobEvalQuery]()
	return withInterceptors[[]*JobEval](ctx, jeq, qr, jeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (jeq *JobEvalQuery) AllX(ctx context.Context) []*JobEval {
	nodes, err := jeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of JobEval IDs.
func (jeq *JobEvalQuery) IDs(ctx context.Context) (ids []string, err error) {
	if jeq.ctx.Unique == nil && jeq.path != nil {
		jeq.Unique(true)
	}
	ctx = setContextOp(ctx, jeq.ctx, ent.OpQueryIDs)
	if err = jeq.Select(jobeval.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (jeq *JobEvalQuery) IDsX(ctx context.Context) []string {
	ids, err := jeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (jeq *JobEvalQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, jeq.ctx, ent.OpQueryCount)
	if err := jeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, jeq, querierCount[*JobEvalQuery](), jeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (jeq *JobEvalQuery) CountX(ctx context.Context) int {
	count, err := jeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (jeq *JobEvalQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, jeq.ctx, ent.OpQueryExist)
	switch _, err := jeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (jeq *JobEvalQuery) ExistX(ctx context.Context) bool {
	exist, err := jeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the JobEvalQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (jeq *JobEvalQuery) Clone() *JobEvalQuery {
	if jeq == nil {
		return nil
	}
	return &JobEvalQuery{
		config:     jeq.config,
		ctx:        jeq.ctx.Clone(),
		order:      append([]jobeval.OrderOption{}, jeq.order...),
		inters:     append([]Interceptor{}, jeq.inters...),
		predicates: append([]predicate.JobEval{}, jeq.predicates...),
		withJob:    jeq.withJob.Clone(),
		withStep:   jeq.withStep.Clone(),
		// clone intermediate query.
		sql:  jeq.sql.Clone(),
		path: jeq.path,
	}
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (jeq *JobEvalQuery) WithJob(opts ...func(*JobQuery)) *JobEvalQuery {
	query := (&JobClient{config: jeq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	jeq.withJob = query
	return jeq
}

// WithStep tells the query-builder to eager-load the nodes that are connected to
// the "step" edge. The optional arguments are used to configure the query builder of the edge.
func (jeq *JobEvalQuery) WithStep(opts ...func(*JobStepQuery)) *JobEvalQuery {
	query := (&JobStepClient{config: jeq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	jeq.withStep = query
	return jeq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.JobEval.Query().
//		GroupBy(jobeval.FieldJobID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (jeq *JobEvalQuery) GroupBy(field string, fields ...string) *JobEvalGroupBy {
	jeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &JobEvalGroupBy{build: jeq}
	grbuild.flds = &jeq.ctx.Fields
	grbuild.label = jobeval.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		JobID string `json:"job_id,omitempty"`
//	}
//
//	client.JobEval.Query().
//		Select(jobeval.FieldJobID).
//		Scan(ctx, &v)
func (jeq *JobEvalQuery) Select(fields ...string) *JobEvalSelect {
	jeq.ctx.Fields = append(jeq.ctx.Fields, fields...)
	sbuild := &JobEvalSelect{JobEvalQuery: jeq}
	sbuild.label = jobeval.Label
	sbuild.flds, sbuild.scan = &jeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a JobEvalSelect configured with the given aggregations.
func (jeq *JobEvalQuery) Aggregate(fns ...AggregateFunc) *JobEvalSelect {
	return jeq.Select().Aggregate(fns...)
}

func (jeq *JobEvalQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range jeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, jeq); err != nil {
				return err
			}
		}
	}
	for _, f := range jeq.ctx.Fields {
		if !jobeval.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if jeq.path != nil {
		prev, err := jeq.path(ctx)
		if err != nil {
			return err
		}
		jeq.sql = prev
	}
	return nil
}

func (jeq *JobEvalQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*JobEval, error) {
	var (
		nodes       = []*JobEval{}
		_spec       = jeq.querySpec()
		loadedTypes = [2]bool{
			jeq.withJob != nil,
			jeq.withStep != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*JobEval).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &JobEval{config: jeq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(jeq.modifiers) > 0 {
		_spec.Modifiers = jeq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, jeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := jeq.withJob; query != nil {
		if err := jeq.loadJob(ctx, query, nodes, nil,
			func(n *JobEval, e *Job) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := jeq.withStep; query != nil {
		if err := jeq.loadStep(ctx, query, nodes, nil,
			func(n *JobEval, e *JobStep) { n.Edges.Step = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (jeq *JobEvalQuery) loadJob(ctx context.Context, query *JobQuery, nodes []*JobEval, init func(*JobEval), assign func(*JobEval, *Job)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*JobEval)
	for i := range nodes {
		fk := nodes[i].JobID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(job.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "job_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (jeq *JobEvalQuery) loadStep(ctx context.Context, query *JobStepQuery, nodes []*JobEval, init func(*JobEval), assign func(*JobEval, *JobStep)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*JobEval)
	for i := range nodes {
		fk := nodes[i].StepID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(jobstep.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "step_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (jeq *JobEvalQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := jeq.querySpec()
	if len(jeq.modifiers) > 0 {
		_spec.Modifiers = jeq.modifiers
	}
	_spec.Node.Columns = jeq.ctx.Fields
	if len(jeq.ctx.Fields) > 0 {
		_spec.Unique = jeq.ctx.Unique != nil && *jeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, jeq.driver, _spec)
}

func (jeq *JobEvalQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(jobeval.Table, jobeval.Columns, sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString))
	_spec.From = jeq.sql
	if unique := jeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if jeq.path != nil {
		_spec.Unique = true
	}
	if fields := jeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobeval.FieldID)
		for i := range fields {
			if fields[i] != jobeval.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if jeq.withJob != nil {
			_spec.Node.AddColumnOnce(jobeval.FieldJobID)
		}
		if jeq.withStep != nil {
			_spec.Node.AddColumnOnce(jobeval.FieldStepID)
		}
	}
	if ps := jeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := jeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := jeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := jeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (jeq *JobEvalQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(jeq.driver.Dialect())
	t1 := builder.Table(jobeval.Table)
	columns := jeq.ctx.Fields
	if len(columns) == 0 {
		columns = jobeval.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if jeq.sql != nil {
		selector = jeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if jeq.ctx.Unique != nil && *jeq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range jeq.modifiers {
		m(selector)
	}
	for _, p := range jeq.predicates {
		p(selector)
	}
	for _, p := range jeq.order {
		p(selector)
	}
	if offset := jeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := jeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (jeq *JobEvalQuery) ForUpdate(opts ...sql.LockOption) *JobEvalQuery {
	if jeq.driver.Dialect() == dialect.Postgres {
		jeq.Unique(false)
	}
	jeq.modifiers = append(jeq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return jeq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (jeq *JobEvalQuery) ForShare(opts ...sql.LockOption) *JobEvalQuery {
	if jeq.driver.Dialect() == dialect.Postgres {
		jeq.Unique(false)
	}
	jeq.modifiers = append(jeq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return jeq
}

// JobEvalGroupBy is the group-by builder for JobEval entities.
type JobEvalGroupBy struct {
	selector
	build *JobEvalQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (jegb *JobEvalGroupBy) Aggregate(fns ...AggregateFunc) *JobEvalGroupBy {
	jegb.fns = append(jegb.fns, fns...)
	return jegb
}

// Scan applies the selector query and scans the result into the given value.
func (jegb *JobEvalGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, jegb.build.ctx, ent.OpQueryGroupBy)
	if err := jegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JobEvalQuery, *JobEvalGroupBy](ctx, jegb.build, jegb, jegb.build.inters, v)
}

func (jegb *JobEvalGroupBy) sqlScan(ctx context.Context, root *JobEvalQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(jegb.fns))
	for _, fn := range jegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*jegb.flds)+len(jegb.fns))
		for _, f := range *jegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*jegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := jegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// JobEvalSelect is the builder for selecting fields of JobEval entities.
type JobEvalSelect struct {
	*JobEvalQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (jes *JobEvalSelect) Aggregate(fns ...AggregateFunc) *JobEvalSelect {
	jes.fns = append(jes.fns, fns...)
	return jes
}

// Scan applies the selector query and scans the result into the given value.
func (jes *JobEvalSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, jes.ctx, ent.OpQuerySelect)
	if err := jes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JobEvalQuery, *JobEvalSelect](ctx, jes.JobEvalQuery, jes, jes.inters, v)
}

func (jes *JobEvalSelect) sqlScan(ctx context.Context, root *JobEvalQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(jes.fns))
	for _, fn := range jes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*jes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := jes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
