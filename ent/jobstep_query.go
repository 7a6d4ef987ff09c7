// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// JobStepQuery is the builder for querying JobStep entities.
type JobStepQuery struct {
	config
	ctx        *QueryContext
	order      []jobstep.OrderOption
	inters     []Interceptor
	predicates []predicate.JobStep
	withJob    *JobQuery
	withEvals  *JobEvalQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the JobStepQuery builder.
func (jsq *JobStepQuery) Where(ps ...predicate.JobStep) *JobStepQuery {
	jsq.predicates = append(jsq.predicates, ps...)
	return jsq
}

// Limit the number of records to be returned by this query.
func (jsq *JobStepQuery) Limit(limit int) *JobStepQuery {
	jsq.ctx.Limit = &limit
	return jsq
}

// Offset to start from.
func (jsq *JobStepQuery) Offset(offset int) *JobStepQuery {
	jsq.ctx.Offset = &offset
	return jsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (jsq *JobStepQuery) Unique(unique bool) *JobStepQuery {
	jsq.ctx.Unique = &unique
	return jsq
}

// Order specifies how the records should be ordered.
func (jsq *JobStepQuery) Order(o ...jobstep.OrderOption) *JobStepQuery {
	jsq.order = append(jsq.order, o...)
	return jsq
}

// QueryJob chains the current query on the "job" edge.
func (jsq *JobStepQuery) QueryJob() *JobQuery {
	query := (&JobClient{config: jsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := jsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := jsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstep.Table, jobstep.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobstep.JobTable, jobstep.JobColumn),
		)
		fromU = sqlgraph.SetNeighbors(jsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvals chains the current query on the "evals" edge.
func (jsq *JobStepQuery) QueryEvals() *JobEvalQuery {
	query := (&JobEvalClient{config: jsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := jsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := jsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstep.Table, jobstep.FieldID, selector),
			sqlgraph.To(jobeval.Table, jobeval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobstep.EvalsTable, jobstep.EvalsColumn),
		)
		fromU = sqlgraph.SetNeighbors(jsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first JobStep entity from the query.
// Returns a *NotFoundError when no JobStep was found.
func (jsq *JobStepQuery) First(ctx context.Context) (*JobStep, error) {
	nodes, err := jsq.Limit(1).All(setContextOp(ctx, jsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{jobstep.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (jsq *JobStepQuery) FirstX(ctx context.Context) *JobStep {
	node, err := jsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first JobStep ID from the query.
// Returns a *NotFoundError when no JobStep ID was found.
func (jsq *JobStepQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = jsq.Limit(1).IDs(setContextOp(ctx, jsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{jobstep.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (jsq *JobStepQuery) FirstIDX(ctx context.Context) string {
	id, err := jsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single JobStep entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one JobStep entity is found.
// Returns a *NotFoundError when no JobStep entities are found.
func (jsq *JobStepQuery) Only(ctx context.Context) (*JobStep, error) {
	nodes, err := jsq.Limit(2).All(setContextOp(ctx, jsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{jobstep.Label}
	default:
		return nil, &NotSingularError{jobstep.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (jsq *JobStepQuery) OnlyX(ctx context.Context) *JobStep {
	node, err := jsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only JobStep ID in the query.
// Returns a *NotSingularError when more than one JobStep ID is found.
// Returns a *NotFoundError when no entities are found.
func (jsq *JobStepQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = jsq.Limit(2).IDs(setContextOp(ctx, jsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{jobstep.Label}
	default:
		err = &NotSingularError{jobstep.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (jsq *JobStepQuery) OnlyIDX(ctx context.Context) string {
	id, err := jsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of JobSteps.
func (jsq *JobStepQuery) All(ctx context.Context) ([]*JobStep, error) {
	ctx = setContextOp(ctx, jsq.ctx, ent.OpQueryAll)
	if err := jsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*JobStep, *JobStepQuery]()
	return withInterceptors[[]*JobStep](ctx, jsq, qr, jsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (jsq *JobStepQuery) AllX(ctx context.Context) []*JobStep {
	nodes, err := jsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of JobStep IDs.
func (jsq *JobStepQuery) IDs(ctx context.Context) (ids []string, err error) {
	if jsq.ctx.Unique == nil && jsq.path != nil {
		jsq.Unique(true)
	}
	ctx = setContextOp(ctx, jsq.ctx, ent.OpQueryIDs)
	if err = jsq.Select(jobstep.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (jsq *JobStepQuery) IDsX(ctx context.Context) []string {
	ids, err := jsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (jsq *JobStepQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, jsq.ctx, ent.OpQueryCount)
	if err := jsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, jsq, querierCount[*JobStepQuery](), jsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (jsq *JobStepQuery) CountX(ctx context.Context) int {
	count, err := jsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (jsq *JobStepQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, jsq.ctx, ent.OpQueryExist)
	switch _, err := jsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (jsq *JobStepQuery) ExistX(ctx context.Context) bool {
	exist, err := jsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the JobStepQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (jsq *JobStepQuery) Clone() *JobStepQuery {
	if jsq == nil {
		return nil
	}
	return &JobStepQuery{
		config:     jsq.config,
		ctx:        jsq.ctx.Clone(),
		order:      append([]jobstep.OrderOption{}, jsq.order...),
		inters:     append([]Interceptor{}, jsq.inters...),
		predicates: append([]predicate.JobStep{}, jsq.predicates...),
		withJob:    jsq.withJob.Clone(),
		withEvals:  jsq.withEvals.Clone(),
		// clone intermediate query.
		sql:  jsq.sql.Clone(),
		path: jsq.path,
	}
}

// WithJob tells the query-builder to eager-load the nodes that are connected to
// the "job" edge. The optional arguments are used to configure the query builder of the edge.
func (jsq *JobStepQuery) WithJob(opts ...func(*JobQuery)) *JobStepQuery {
	query := (&JobClient{config: jsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	jsq.withJob = query
	return jsq
}

// WithEvals tells the query-builder to eager-load the nodes that are connected to
// the "evals" edge. The optional arguments are used to configure the query builder of the edge.
func (jsq *JobStepQuery) WithEvals(opts ...func(*JobEvalQuery)) *JobStepQuery {
	query := (&JobEvalClient{config: jsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	jsq.withEvals = query
	return jsq
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
//	client.JobStep.Query().
//		GroupBy(jobstep.FieldJobID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (jsq *JobStepQuery) GroupBy(field string, fields ...string) *JobStepGroupBy {
	jsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &JobStepGroupBy{build: jsq}
	grbuild.flds = &jsq.ctx.Fields
	grbuild.label = jobstep.Label
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
//	client.JobStep.Query().
//		Select(jobstep.FieldJobID).
//		Scan(ctx, &v)
func (jsq *JobStepQuery) Select(fields ...string) *JobStepSelect {
	jsq.ctx.Fields = append(jsq.ctx.Fields, fields...)
	sbuild := &JobStepSelect{JobStepQuery: jsq}
	sbuild.label = jobstep.Label
	sbuild.flds, sbuild.scan = &jsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a JobStepSelect configured with the given aggregations.
func (jsq *JobStepQuery) Aggregate(fns ...AggregateFunc) *JobStepSelect {
	return jsq.Select().Aggregate(fns...)
}

func (jsq *JobStepQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range jsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, jsq); err != nil {
				return err
			}
		}
	}
	for _, f := range jsq.ctx.Fields {
		if !jobstep.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if jsq.path != nil {
		prev, err := jsq.path(ctx)
		if err != nil {
			return err
		}
		jsq.sql = prev
	}
	return nil
}

func (jsq *JobStepQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*JobStep, error) {
	var (
		nodes       = []*JobStep{}
		_spec       = jsq.querySpec()
		loadedTypes = [2]bool{
			jsq.withJob != nil,
			jsq.withEvals != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*JobStep).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &JobStep{config: jsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(jsq.modifiers) > 0 {
		_spec.Modifiers = jsq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, jsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := jsq.withJob; query != nil {
		if err := jsq.loadJob(ctx, query, nodes, nil,
			func(n *JobStep, e *Job) { n.Edges.Job = e }); err != nil {
			return nil, err
		}
	}
	if query := jsq.withEvals; query != nil {
		if err := jsq.loadEvals(ctx, query, nodes,
			func(n *JobStep) { n.Edges.Evals = []*JobEval{} },
			func(n *JobStep, e *JobEval) { n.Edges.Evals = append(n.Edges.Evals, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (jsq *JobStepQuery) loadJob(ctx context.Context, query *JobQuery, nodes []*JobStep, init func(*JobStep), assign func(*JobStep, *Job)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*JobStep)
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
func (jsq *JobStepQuery) loadEvals(ctx context.Context, query *JobEvalQuery, nodes []*JobStep, init func(*JobStep), assign func(*JobStep, *JobEval)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*JobStep)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(jobeval.FieldStepID)
	}
	query.Where(predicate.JobEval(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(jobstep.EvalsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StepID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "step_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (jsq *JobStepQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := jsq.querySpec()
	if len(jsq.modifiers) > 0 {
		_spec.Modifiers = jsq.modifiers
	}
	_spec.Node.Columns = jsq.ctx.Fields
	if len(jsq.ctx.Fields) > 0 {
		_spec.Unique = jsq.ctx.Unique != nil && *jsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, jsq.driver, _spec)
}

func (jsq *JobStepQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(jobstep.Table, jobstep.Columns, sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString))
	_spec.From = jsq.sql
	if unique := jsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if jsq.path != nil {
		_spec.Unique = true
	}
	if fields := jsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobstep.FieldID)
		for i := range fields {
			if fields[i] != jobstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if jsq.withJob != nil {
			_spec.Node.AddColumnOnce(jobstep.FieldJobID)
		}
	}
	if ps := jsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := jsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := jsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := jsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (jsq *JobStepQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(jsq.driver.Dialect())
	t1 := builder.Table(jobstep.Table)
	columns := jsq.ctx.Fields
	if len(columns) == 0 {
		columns = jobstep.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if jsq.sql != nil {
		selector = jsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if jsq.ctx.Unique != nil && *jsq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range jsq.modifiers {
		m(selector)
	}
	for _, p := range jsq.predicates {
		p(selector)
	}
	for _, p := range jsq.order {
		p(selector)
	}
	if offset := jsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := jsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (jsq *JobStepQuery) ForUpdate(opts ...sql.LockOption) *JobStepQuery {
	if jsq.driver.Dialect() == dialect.Postgres {
		jsq.Unique(false)
	}
	jsq.modifiers = append(jsq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return jsq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (jsq *JobStepQuery) ForShare(opts ...sql.LockOption) *JobStepQuery {
	if jsq.driver.Dialect() == dialect.Postgres {
		jsq.Unique(false)
	}
	jsq.modifiers = append(jsq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return jsq
}

// JobStepGroupBy is the group-by builder for JobStep entities.
type JobStepGroupBy struct {
	selector
	build *JobStepQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (jsgb *JobStepGroupBy) Aggregate(fns ...AggregateFunc) *JobStepGroupBy {
	jsgb.fns = append(jsgb.fns, fns...)
	return jsgb
}

// Scan applies the selector query and scans the result into the given value.
func (jsgb *JobStepGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, jsgb.build.ctx, ent.OpQueryGroupBy)
	if err := jsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JobStepQuery, *JobStepGroupBy](ctx, jsgb.build, jsgb, jsgb.build.inters, v)
}

func (jsgb *JobStepGroupBy) sqlScan(ctx context.Context, root *JobStepQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(jsgb.fns))
	for _, fn := range jsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*jsgb.flds)+len(jsgb.fns))
		for _, f := range *jsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*jsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := jsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// JobStepSelect is the builder for selecting fields of JobStep entities.
type JobStepSelect struct {
	*JobStepQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (jss *JobStepSelect) Aggregate(fns ...AggregateFunc) *JobStepSelect {
	jss.fns = append(jss.fns, fns...)
	return jss
}

// Scan applies the selector query and scans the result into the given value.
func (jss *JobStepSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, jss.ctx, ent.OpQuerySelect)
	if err := jss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*JobStepQuery, *JobStepSelect](ctx, jss.JobStepQuery, jss, jss.inters, v)
}

func (jss *JobStepSelect) sqlScan(ctx context.Context, root *JobStepQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(jss.fns))
	for _, fn := range jss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*jss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := jss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
