// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Kirizan/kitt-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Campaign is the client for interacting with the Campaign builders.
	Campaign *CampaignClient
	// PlannedRun is the client for interacting with the PlannedRun builders.
	PlannedRun *PlannedRunClient
	// RunResult is the client for interacting with the RunResult builders.
	RunResult *RunResultClient
	// StreamEvent is the client for interacting with the StreamEvent builders.
	StreamEvent *StreamEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Campaign = NewCampaignClient(c.config)
	c.PlannedRun = NewPlannedRunClient(c.config)
	c.RunResult = NewRunResultClient(c.config)
	c.StreamEvent = NewStreamEventClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		Agent:       NewAgentClient(cfg),
		Campaign:    NewCampaignClient(cfg),
		PlannedRun:  NewPlannedRunClient(cfg),
		RunResult:   NewRunResultClient(cfg),
		StreamEvent: NewStreamEventClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		Agent:       NewAgentClient(cfg),
		Campaign:    NewCampaignClient(cfg),
		PlannedRun:  NewPlannedRunClient(cfg),
		RunResult:   NewRunResultClient(cfg),
		StreamEvent: NewStreamEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
	c.Agent.Use(hooks...)
	c.Campaign.Use(hooks...)
	c.PlannedRun.Use(hooks...)
	c.RunResult.Use(hooks...)
	c.StreamEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Agent.Intercept(interceptors...)
	c.Campaign.Intercept(interceptors...)
	c.PlannedRun.Intercept(interceptors...)
	c.RunResult.Intercept(interceptors...)
	c.StreamEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *CampaignMutation:
		return c.Campaign.mutate(ctx, m)
	case *PlannedRunMutation:
		return c.PlannedRun.mutate(ctx, m)
	case *RunResultMutation:
		return c.RunResult.mutate(ctx, m)
	case *StreamEventMutation:
		return c.StreamEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// CampaignClient is a client for the Campaign schema.
type CampaignClient struct {
	config
}

// NewCampaignClient returns a client for the Campaign from the given config.
func NewCampaignClient(c config) *CampaignClient {
	return &CampaignClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campaign.Hooks(f(g(h())))`.
func (c *CampaignClient) Use(hooks ...Hook) {
	c.hooks.Campaign = append(c.hooks.Campaign, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campaign.Intercept(f(g(h())))`.
func (c *CampaignClient) Intercept(interceptors ...Interceptor) {
	c.inters.Campaign = append(c.inters.Campaign, interceptors...)
}

// Create returns a builder for creating a Campaign entity.
func (c *CampaignClient) Create() *CampaignCreate {
	mutation := newCampaignMutation(c.config, OpCreate)
	return &CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Campaign entities.
func (c *CampaignClient) CreateBulk(builders ...*CampaignCreate) *CampaignCreateBulk {
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampaignClient) MapCreateBulk(slice any, setFunc func(*CampaignCreate, int)) *CampaignCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampaignCreateBulk{err: fmt.Errorf("calling to CampaignClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampaignCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Campaign.
func (c *CampaignClient) Update() *CampaignUpdate {
	mutation := newCampaignMutation(c.config, OpUpdate)
	return &CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampaignClient) UpdateOne(_m *Campaign) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaign(_m))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampaignClient) UpdateOneID(id string) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaignID(id))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Campaign.
func (c *CampaignClient) Delete() *CampaignDelete {
	mutation := newCampaignMutation(c.config, OpDelete)
	return &CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampaignClient) DeleteOne(_m *Campaign) *CampaignDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampaignClient) DeleteOneID(id string) *CampaignDeleteOne {
	builder := c.Delete().Where(campaign.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampaignDeleteOne{builder}
}

// Query returns a query builder for Campaign.
func (c *CampaignClient) Query() *CampaignQuery {
	return &CampaignQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampaign},
		inters: c.Interceptors(),
	}
}

// Get returns a Campaign entity by its id.
func (c *CampaignClient) Get(ctx context.Context, id string) (*Campaign, error) {
	return c.Query().Where(campaign.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampaignClient) GetX(ctx context.Context, id string) *Campaign {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlannedRuns queries the planned_runs edge of a Campaign.
func (c *CampaignClient) QueryPlannedRuns(_m *Campaign) *PlannedRunQuery {
	query := (&PlannedRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(plannedrun.Table, plannedrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.PlannedRunsTable, campaign.PlannedRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampaignClient) Hooks() []Hook {
	return c.hooks.Campaign
}

// Interceptors returns the client interceptors.
func (c *CampaignClient) Interceptors() []Interceptor {
	return c.inters.Campaign
}

func (c *CampaignClient) mutate(ctx context.Context, m *CampaignMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Campaign mutation op: %q", m.Op())
	}
}

// PlannedRunClient is a client for the PlannedRun schema.
type PlannedRunClient struct {
	config
}

// NewPlannedRunClient returns a client for the PlannedRun from the given config.
func NewPlannedRunClient(c config) *PlannedRunClient {
	return &PlannedRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plannedrun.Hooks(f(g(h())))`.
func (c *PlannedRunClient) Use(hooks ...Hook) {
	c.hooks.PlannedRun = append(c.hooks.PlannedRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plannedrun.Intercept(f(g(h())))`.
func (c *PlannedRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlannedRun = append(c.inters.PlannedRun, interceptors...)
}

// Create returns a builder for creating a PlannedRun entity.
func (c *PlannedRunClient) Create() *PlannedRunCreate {
	mutation := newPlannedRunMutation(c.config, OpCreate)
	return &PlannedRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlannedRun entities.
func (c *PlannedRunClient) CreateBulk(builders ...*PlannedRunCreate) *PlannedRunCreateBulk {
	return &PlannedRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlannedRunClient) MapCreateBulk(slice any, setFunc func(*PlannedRunCreate, int)) *PlannedRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlannedRunCreateBulk{err: fmt.Errorf("calling to PlannedRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlannedRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlannedRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlannedRun.
func (c *PlannedRunClient) Update() *PlannedRunUpdate {
	mutation := newPlannedRunMutation(c.config, OpUpdate)
	return &PlannedRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlannedRunClient) UpdateOne(_m *PlannedRun) *PlannedRunUpdateOne {
	mutation := newPlannedRunMutation(c.config, OpUpdateOne, withPlannedRun(_m))
	return &PlannedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlannedRunClient) UpdateOneID(id string) *PlannedRunUpdateOne {
	mutation := newPlannedRunMutation(c.config, OpUpdateOne, withPlannedRunID(id))
	return &PlannedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlannedRun.
func (c *PlannedRunClient) Delete() *PlannedRunDelete {
	mutation := newPlannedRunMutation(c.config, OpDelete)
	return &PlannedRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlannedRunClient) DeleteOne(_m *PlannedRun) *PlannedRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlannedRunClient) DeleteOneID(id string) *PlannedRunDeleteOne {
	builder := c.Delete().Where(plannedrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlannedRunDeleteOne{builder}
}

// Query returns a query builder for PlannedRun.
func (c *PlannedRunClient) Query() *PlannedRunQuery {
	return &PlannedRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlannedRun},
		inters: c.Interceptors(),
	}
}

// Get returns a PlannedRun entity by its id.
func (c *PlannedRunClient) Get(ctx context.Context, id string) (*PlannedRun, error) {
	return c.Query().Where(plannedrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlannedRunClient) GetX(ctx context.Context, id string) *PlannedRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a PlannedRun.
func (c *PlannedRunClient) QueryCampaign(_m *PlannedRun) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plannedrun.Table, plannedrun.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plannedrun.CampaignTable, plannedrun.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResult queries the result edge of a PlannedRun.
func (c *PlannedRunClient) QueryResult(_m *PlannedRun) *RunResultQuery {
	query := (&RunResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plannedrun.Table, plannedrun.FieldID, id),
			sqlgraph.To(runresult.Table, runresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, plannedrun.ResultTable, plannedrun.ResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlannedRunClient) Hooks() []Hook {
	return c.hooks.PlannedRun
}

// Interceptors returns the client interceptors.
func (c *PlannedRunClient) Interceptors() []Interceptor {
	return c.inters.PlannedRun
}

func (c *PlannedRunClient) mutate(ctx context.Context, m *PlannedRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlannedRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlannedRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlannedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlannedRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlannedRun mutation op: %q", m.Op())
	}
}

// RunResultClient is a client for the RunResult schema.
type RunResultClient struct {
	config
}

// NewRunResultClient returns a client for the RunResult from the given config.
func NewRunResultClient(c config) *RunResultClient {
	return &RunResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runresult.Hooks(f(g(h())))`.
func (c *RunResultClient) Use(hooks ...Hook) {
	c.hooks.RunResult = append(c.hooks.RunResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runresult.Intercept(f(g(h())))`.
func (c *RunResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunResult = append(c.inters.RunResult, interceptors...)
}

// Create returns a builder for creating a RunResult entity.
func (c *RunResultClient) Create() *RunResultCreate {
	mutation := newRunResultMutation(c.config, OpCreate)
	return &RunResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunResult entities.
func (c *RunResultClient) CreateBulk(builders ...*RunResultCreate) *RunResultCreateBulk {
	return &RunResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunResultClient) MapCreateBulk(slice any, setFunc func(*RunResultCreate, int)) *RunResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunResultCreateBulk{err: fmt.Errorf("calling to RunResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunResult.
func (c *RunResultClient) Update() *RunResultUpdate {
	mutation := newRunResultMutation(c.config, OpUpdate)
	return &RunResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunResultClient) UpdateOne(_m *RunResult) *RunResultUpdateOne {
	mutation := newRunResultMutation(c.config, OpUpdateOne, withRunResult(_m))
	return &RunResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunResultClient) UpdateOneID(id string) *RunResultUpdateOne {
	mutation := newRunResultMutation(c.config, OpUpdateOne, withRunResultID(id))
	return &RunResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunResult.
func (c *RunResultClient) Delete() *RunResultDelete {
	mutation := newRunResultMutation(c.config, OpDelete)
	return &RunResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunResultClient) DeleteOne(_m *RunResult) *RunResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunResultClient) DeleteOneID(id string) *RunResultDeleteOne {
	builder := c.Delete().Where(runresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunResultDeleteOne{builder}
}

// Query returns a query builder for RunResult.
func (c *RunResultClient) Query() *RunResultQuery {
	return &RunResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunResult},
		inters: c.Interceptors(),
	}
}

// Get returns a RunResult entity by its id.
func (c *RunResultClient) Get(ctx context.Context, id string) (*RunResult, error) {
	return c.Query().Where(runresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunResultClient) GetX(ctx context.Context, id string) *RunResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunResult.
func (c *RunResultClient) QueryRun(_m *RunResult) *PlannedRunQuery {
	query := (&PlannedRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runresult.Table, runresult.FieldID, id),
			sqlgraph.To(plannedrun.Table, plannedrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, runresult.RunTable, runresult.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunResultClient) Hooks() []Hook {
	return c.hooks.RunResult
}

// Interceptors returns the client interceptors.
func (c *RunResultClient) Interceptors() []Interceptor {
	return c.inters.RunResult
}

func (c *RunResultClient) mutate(ctx context.Context, m *RunResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunResult mutation op: %q", m.Op())
	}
}

// StreamEventClient is a client for the StreamEvent schema.
type StreamEventClient struct {
	config
}

// NewStreamEventClient returns a client for the StreamEvent from the given config.
func NewStreamEventClient(c config) *StreamEventClient {
	return &StreamEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streamevent.Hooks(f(g(h())))`.
func (c *StreamEventClient) Use(hooks ...Hook) {
	c.hooks.StreamEvent = append(c.hooks.StreamEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streamevent.Intercept(f(g(h())))`.
func (c *StreamEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreamEvent = append(c.inters.StreamEvent, interceptors...)
}

// Create returns a builder for creating a StreamEvent entity.
func (c *StreamEventClient) Create() *StreamEventCreate {
	mutation := newStreamEventMutation(c.config, OpCreate)
	return &StreamEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreamEvent entities.
func (c *StreamEventClient) CreateBulk(builders ...*StreamEventCreate) *StreamEventCreateBulk {
	return &StreamEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreamEventClient) MapCreateBulk(slice any, setFunc func(*StreamEventCreate, int)) *StreamEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreamEventCreateBulk{err: fmt.Errorf("calling to StreamEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreamEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreamEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreamEvent.
func (c *StreamEventClient) Update() *StreamEventUpdate {
	mutation := newStreamEventMutation(c.config, OpUpdate)
	return &StreamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreamEventClient) UpdateOne(_m *StreamEvent) *StreamEventUpdateOne {
	mutation := newStreamEventMutation(c.config, OpUpdateOne, withStreamEvent(_m))
	return &StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreamEventClient) UpdateOneID(id int) *StreamEventUpdateOne {
	mutation := newStreamEventMutation(c.config, OpUpdateOne, withStreamEventID(id))
	return &StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreamEvent.
func (c *StreamEventClient) Delete() *StreamEventDelete {
	mutation := newStreamEventMutation(c.config, OpDelete)
	return &StreamEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreamEventClient) DeleteOne(_m *StreamEvent) *StreamEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreamEventClient) DeleteOneID(id int) *StreamEventDeleteOne {
	builder := c.Delete().Where(streamevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreamEventDeleteOne{builder}
}

// Query returns a query builder for StreamEvent.
func (c *StreamEventClient) Query() *StreamEventQuery {
	return &StreamEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreamEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StreamEvent entity by its id.
func (c *StreamEventClient) Get(ctx context.Context, id int) (*StreamEvent, error) {
	return c.Query().Where(streamevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreamEventClient) GetX(ctx context.Context, id int) *StreamEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreamEventClient) Hooks() []Hook {
	return c.hooks.StreamEvent
}

// Interceptors returns the client interceptors.
func (c *StreamEventClient) Interceptors() []Interceptor {
	return c.inters.StreamEvent
}

func (c *StreamEventClient) mutate(ctx context.Context, m *StreamEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreamEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreamEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreamEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Campaign, PlannedRun, RunResult, StreamEvent []ent.Hook
	}
	inters struct {
		Agent, Campaign, PlannedRun, RunResult, StreamEvent []ent.Interceptor
	}
)
