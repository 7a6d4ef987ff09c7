// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/copymill/copymill/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/persona"
	"github.com/copymill/copymill/ent/systemlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobEval is the client for interacting with the JobEval builders.
	JobEval *JobEvalClient
	// JobStep is the client for interacting with the JobStep builders.
	JobStep *JobStepClient
	// Persona is the client for interacting with the Persona builders.
	Persona *PersonaClient
	// SystemLog is the client for interacting with the SystemLog builders.
	SystemLog *SystemLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Job = NewJobClient(c.config)
	c.JobEval = NewJobEvalClient(c.config)
	c.JobStep = NewJobStepClient(c.config)
	c.Persona = NewPersonaClient(c.config)
	c.SystemLog = NewSystemLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Job:       NewJobClient(cfg),
		JobEval:   NewJobEvalClient(cfg),
		JobStep:   NewJobStepClient(cfg),
		Persona:   NewPersonaClient(cfg),
		SystemLog: NewSystemLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:       ctx,
		config:    cfg,
		Job:       NewJobClient(cfg),
		JobEval:   NewJobEvalClient(cfg),
		JobStep:   NewJobStepClient(cfg),
		Persona:   NewPersonaClient(cfg),
		SystemLog: NewSystemLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Job.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Job.Use(hooks...)
	c.JobEval.Use(hooks...)
	c.JobStep.Use(hooks...)
	c.Persona.Use(hooks...)
	c.SystemLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Job.Intercept(interceptors...)
	c.JobEval.Intercept(interceptors...)
	c.JobStep.Intercept(interceptors...)
	c.Persona.Intercept(interceptors...)
	c.SystemLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobEvalMutation:
		return c.JobEval.mutate(ctx, m)
	case *JobStepMutation:
		return c.JobStep.mutate(ctx, m)
	case *PersonaMutation:
		return c.Persona.mutate(ctx, m)
	case *SystemLogMutation:
		return c.SystemLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(j *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(j))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(j *Job) *JobDeleteOne {
	return c.DeleteOneID(j.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Job.
func (c *JobClient) QuerySteps(j *Job) *JobStepQuery {
	query := (&JobStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := j.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobstep.Table, jobstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.StepsTable, job.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(j.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvals queries the evals edge of a Job.
func (c *JobClient) QueryEvals(j *Job) *JobEvalQuery {
	query := (&JobEvalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := j.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobeval.Table, jobeval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.EvalsTable, job.EvalsColumn),
		)
		fromV = sqlgraph.Neighbors(j.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobEvalClient is a client for the JobEval schema.
type JobEvalClient struct {
	config
}

// NewJobEvalClient returns a client for the JobEval from the given config.
func NewJobEvalClient(c config) *JobEvalClient {
	return &JobEvalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobeval.Hooks(f(g(h())))`.
func (c *JobEvalClient) Use(hooks ...Hook) {
	c.hooks.JobEval = append(c.hooks.JobEval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobeval.Intercept(f(g(h())))`.
func (c *JobEvalClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobEval = append(c.inters.JobEval, interceptors...)
}

// Create returns a builder for creating a JobEval entity.
func (c *JobEvalClient) Create() *JobEvalCreate {
	mutation := newJobEvalMutation(c.config, OpCreate)
	return &JobEvalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobEval entities.
func (c *JobEvalClient) CreateBulk(builders ...*JobEvalCreate) *JobEvalCreateBulk {
	return &JobEvalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobEvalClient) MapCreateBulk(slice any, setFunc func(*JobEvalCreate, int)) *JobEvalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobEvalCreateBulk{err: fmt.Errorf("calling to JobEvalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobEvalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobEvalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobEval.
func (c *JobEvalClient) Update() *JobEvalUpdate {
	mutation := newJobEvalMutation(c.config, OpUpdate)
	return &JobEvalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobEvalClient) UpdateOne(je *JobEval) *JobEvalUpdateOne {
	mutation := newJobEvalMutation(c.config, OpUpdateOne, withJobEval(je))
	return &JobEvalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobEvalClient) UpdateOneID(id string) *JobEvalUpdateOne {
	mutation := newJobEvalMutation(c.config, OpUpdateOne, withJobEvalID(id))
	return &JobEvalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobEval.
func (c *JobEvalClient) Delete() *JobEvalDelete {
	mutation := newJobEvalMutation(c.config, OpDelete)
	return &JobEvalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobEvalClient) DeleteOne(je *JobEval) *JobEvalDeleteOne {
	return c.DeleteOneID(je.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobEvalClient) DeleteOneID(id string) *JobEvalDeleteOne {
	builder := c.Delete().Where(jobeval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobEvalDeleteOne{builder}
}

// Query returns a query builder for JobEval.
func (c *JobEvalClient) Query() *JobEvalQuery {
	return &JobEvalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobEval},
		inters: c.Interceptors(),
	}
}

// Get returns a JobEval entity by its id.
func (c *JobEvalClient) Get(ctx context.Context, id string) (*JobEval, error) {
	return c.Query().Where(jobeval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobEvalClient) GetX(ctx context.Context, id string) *JobEval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobEval.
func (c *JobEvalClient) QueryJob(je *JobEval) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := je.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobeval.Table, jobeval.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobeval.JobTable, jobeval.JobColumn),
		)
		fromV = sqlgraph.Neighbors(je.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a JobEval.
func (c *JobEvalClient) QueryStep(je *JobEval) *JobStepQuery {
	query := (&JobStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := je.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobeval.Table, jobeval.FieldID, id),
			sqlgraph.To(jobstep.Table, jobstep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobeval.StepTable, jobeval.StepColumn),
		)
		fromV = sqlgraph.Neighbors(je.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobEvalClient) Hooks() []Hook {
	return c.hooks.JobEval
}

// Interceptors returns the client interceptors.
func (c *JobEvalClient) Interceptors() []Interceptor {
	return c.inters.JobEval
}

func (c *JobEvalClient) mutate(ctx context.Context, m *JobEvalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobEvalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobEvalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobEvalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobEvalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobEval mutation op: %q", m.Op())
	}
}

// JobStepClient is a client for the JobStep schema.
type JobStepClient struct {
	config
}

// NewJobStepClient returns a client for the JobStep from the given config.
func NewJobStepClient(c config) *JobStepClient {
	return &JobStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobstep.Hooks(f(g(h())))`.
func (c *JobStepClient) Use(hooks ...Hook) {
	c.hooks.JobStep = append(c.hooks.JobStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobstep.Intercept(f(g(h())))`.
func (c *JobStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobStep = append(c.inters.JobStep, interceptors...)
}

// Create returns a builder for creating a JobStep entity.
func (c *JobStepClient) Create() *JobStepCreate {
	mutation := newJobStepMutation(c.config, OpCreate)
	return &JobStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobStep entities.
func (c *JobStepClient) CreateBulk(builders ...*JobStepCreate) *JobStepCreateBulk {
	return &JobStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobStepClient) MapCreateBulk(slice any, setFunc func(*JobStepCreate, int)) *JobStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobStepCreateBulk{err: fmt.Errorf("calling to JobStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobStep.
func (c *JobStepClient) Update() *JobStepUpdate {
	mutation := newJobStepMutation(c.config, OpUpdate)
	return &JobStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobStepClient) UpdateOne(js *JobStep) *JobStepUpdateOne {
	mutation := newJobStepMutation(c.config, OpUpdateOne, withJobStep(js))
	return &JobStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobStepClient) UpdateOneID(id string) *JobStepUpdateOne {
	mutation := newJobStepMutation(c.config, OpUpdateOne, withJobStepID(id))
	return &JobStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobStep.
func (c *JobStepClient) Delete() *JobStepDelete {
	mutation := newJobStepMutation(c.config, OpDelete)
	return &JobStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobStepClient) DeleteOne(js *JobStep) *JobStepDeleteOne {
	return c.DeleteOneID(js.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobStepClient) DeleteOneID(id string) *JobStepDeleteOne {
	builder := c.Delete().Where(jobstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobStepDeleteOne{builder}
}

// Query returns a query builder for JobStep.
func (c *JobStepClient) Query() *JobStepQuery {
	return &JobStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobStep},
		inters: c.Interceptors(),
	}
}

// Get returns a JobStep entity by its id.
func (c *JobStepClient) Get(ctx context.Context, id string) (*JobStep, error) {
	return c.Query().Where(jobstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobStepClient) GetX(ctx context.Context, id string) *JobStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobStep.
func (c *JobStepClient) QueryJob(js *JobStep) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := js.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstep.Table, jobstep.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobstep.JobTable, jobstep.JobColumn),
		)
		fromV = sqlgraph.Neighbors(js.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvals queries the evals edge of a JobStep.
func (c *JobStepClient) QueryEvals(js *JobStep) *JobEvalQuery {
	query := (&JobEvalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := js.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobstep.Table, jobstep.FieldID, id),
			sqlgraph.To(jobeval.Table, jobeval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobstep.EvalsTable, jobstep.EvalsColumn),
		)
		fromV = sqlgraph.Neighbors(js.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobStepClient) Hooks() []Hook {
	return c.hooks.JobStep
}

// Interceptors returns the client interceptors.
func (c *JobStepClient) Interceptors() []Interceptor {
	return c.inters.JobStep
}

func (c *JobStepClient) mutate(ctx context.Context, m *JobStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobStep mutation op: %q", m.Op())
	}
}

// PersonaClient is a client for the Persona schema.
type PersonaClient struct {
	config
}

// NewPersonaClient returns a client for the Persona from the given config.
func NewPersonaClient(c config) *PersonaClient {
	return &PersonaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `persona.Hooks(f(g(h())))`.
func (c *PersonaClient) Use(hooks ...Hook) {
	c.hooks.Persona = append(c.hooks.Persona, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `persona.Intercept(f(g(h())))`.
func (c *PersonaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Persona = append(c.inters.Persona, interceptors...)
}

// Create returns a builder for creating a Persona entity.
func (c *PersonaClient) Create() *PersonaCreate {
	mutation := newPersonaMutation(c.config, OpCreate)
	return &PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Persona entities.
func (c *PersonaClient) CreateBulk(builders ...*PersonaCreate) *PersonaCreateBulk {
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonaClient) MapCreateBulk(slice any, setFunc func(*PersonaCreate, int)) *PersonaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonaCreateBulk{err: fmt.Errorf("calling to PersonaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Persona.
func (c *PersonaClient) Update() *PersonaUpdate {
	mutation := newPersonaMutation(c.config, OpUpdate)
	return &PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonaClient) UpdateOne(pe *Persona) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersona(pe))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonaClient) UpdateOneID(id string) *PersonaUpdateOne {
	mutation := newPersonaMutation(c.config, OpUpdateOne, withPersonaID(id))
	return &PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Persona.
func (c *PersonaClient) Delete() *PersonaDelete {
	mutation := newPersonaMutation(c.config, OpDelete)
	return &PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonaClient) DeleteOne(pe *Persona) *PersonaDeleteOne {
	return c.DeleteOneID(pe.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonaClient) DeleteOneID(id string) *PersonaDeleteOne {
	builder := c.Delete().Where(persona.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonaDeleteOne{builder}
}

// Query returns a query builder for Persona.
func (c *PersonaClient) Query() *PersonaQuery {
	return &PersonaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersona},
		inters: c.Interceptors(),
	}
}

// Get returns a Persona entity by its id.
func (c *PersonaClient) Get(ctx context.Context, id string) (*Persona, error) {
	return c.Query().Where(persona.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonaClient) GetX(ctx context.Context, id string) *Persona {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonaClient) Hooks() []Hook {
	return c.hooks.Persona
}

// Interceptors returns the client interceptors.
func (c *PersonaClient) Interceptors() []Interceptor {
	return c.inters.Persona
}

func (c *PersonaClient) mutate(ctx context.Context, m *PersonaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Persona mutation op: %q", m.Op())
	}
}

// SystemLogClient is a client for the SystemLog schema.
type SystemLogClient struct {
	config
}

// NewSystemLogClient returns a client for the SystemLog from the given config.
func NewSystemLogClient(c config) *SystemLogClient {
	return &SystemLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemlog.Hooks(f(g(h())))`.
func (c *SystemLogClient) Use(hooks ...Hook) {
	c.hooks.SystemLog = append(c.hooks.SystemLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemlog.Intercept(f(g(h())))`.
func (c *SystemLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemLog = append(c.inters.SystemLog, interceptors...)
}

// Create returns a builder for creating a SystemLog entity.
func (c *SystemLogClient) Create() *SystemLogCreate {
	mutation := newSystemLogMutation(c.config, OpCreate)
	return &SystemLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemLog entities.
func (c *SystemLogClient) CreateBulk(builders ...*SystemLogCreate) *SystemLogCreateBulk {
	return &SystemLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemLogClient) MapCreateBulk(slice any, setFunc func(*SystemLogCreate, int)) *SystemLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemLogCreateBulk{err: fmt.Errorf("calling to SystemLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemLog.
func (c *SystemLogClient) Update() *SystemLogUpdate {
	mutation := newSystemLogMutation(c.config, OpUpdate)
	return &SystemLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemLogClient) UpdateOne(sl *SystemLog) *SystemLogUpdateOne {
	mutation := newSystemLogMutation(c.config, OpUpdateOne, withSystemLog(sl))
	return &SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemLogClient) UpdateOneID(id string) *SystemLogUpdateOne {
	mutation := newSystemLogMutation(c.config, OpUpdateOne, withSystemLogID(id))
	return &SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemLog.
func (c *SystemLogClient) Delete() *SystemLogDelete {
	mutation := newSystemLogMutation(c.config, OpDelete)
	return &SystemLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemLogClient) DeleteOne(sl *SystemLog) *SystemLogDeleteOne {
	return c.DeleteOneID(sl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemLogClient) DeleteOneID(id string) *SystemLogDeleteOne {
	builder := c.Delete().Where(systemlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemLogDeleteOne{builder}
}

// Query returns a query builder for SystemLog.
func (c *SystemLogClient) Query() *SystemLogQuery {
	return &SystemLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemLog entity by its id.
func (c *SystemLogClient) Get(ctx context.Context, id string) (*SystemLog, error) {
	return c.Query().Where(systemlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemLogClient) GetX(ctx context.Context, id string) *SystemLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemLogClient) Hooks() []Hook {
	return c.hooks.SystemLog
}

// Interceptors returns the client interceptors.
func (c *SystemLogClient) Interceptors() []Interceptor {
	return c.inters.SystemLog
}

func (c *SystemLogClient) mutate(ctx context.Context, m *SystemLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Job, JobEval, JobStep, Persona, SystemLog []ent.Hook
	}
	inters struct {
		Job, JobEval, JobStep, Persona, SystemLog []ent.Interceptor
	}
)
