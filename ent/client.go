// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/debatelab/agora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/intervention"
	"github.com/debatelab/agora/ent/systemevent"
	"github.com/debatelab/agora/ent/utterance"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Debate is the client for interacting with the Debate builders.
	Debate *DebateClient
	// Intervention is the client for interacting with the Intervention builders.
	Intervention *InterventionClient
	// SystemEvent is the client for interacting with the SystemEvent builders.
	SystemEvent *SystemEventClient
	// Utterance is the client for interacting with the Utterance builders.
	Utterance *UtteranceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Debate = NewDebateClient(c.config)
	c.Intervention = NewInterventionClient(c.config)
	c.SystemEvent = NewSystemEventClient(c.config)
	c.Utterance = NewUtteranceClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		Debate:       NewDebateClient(cfg),
		Intervention: NewInterventionClient(cfg),
		SystemEvent:  NewSystemEventClient(cfg),
		Utterance:    NewUtteranceClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Debate:       NewDebateClient(cfg),
		Intervention: NewInterventionClient(cfg),
		SystemEvent:  NewSystemEventClient(cfg),
		Utterance:    NewUtteranceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Debate.
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
	c.Debate.Use(hooks...)
	c.Intervention.Use(hooks...)
	c.SystemEvent.Use(hooks...)
	c.Utterance.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Debate.Intercept(interceptors...)
	c.Intervention.Intercept(interceptors...)
	c.SystemEvent.Intercept(interceptors...)
	c.Utterance.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DebateMutation:
		return c.Debate.mutate(ctx, m)
	case *InterventionMutation:
		return c.Intervention.mutate(ctx, m)
	case *SystemEventMutation:
		return c.SystemEvent.mutate(ctx, m)
	case *UtteranceMutation:
		return c.Utterance.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DebateClient is a client for the Debate schema.
type DebateClient struct {
	config
}

// NewDebateClient returns a client for the Debate from the given config.
func NewDebateClient(c config) *DebateClient {
	return &DebateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debate.Hooks(f(g(h())))`.
func (c *DebateClient) Use(hooks ...Hook) {
	c.hooks.Debate = append(c.hooks.Debate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debate.Intercept(f(g(h())))`.
func (c *DebateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Debate = append(c.inters.Debate, interceptors...)
}

// Create returns a builder for creating a Debate entity.
func (c *DebateClient) Create() *DebateCreate {
	mutation := newDebateMutation(c.config, OpCreate)
	return &DebateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Debate entities.
func (c *DebateClient) CreateBulk(builders ...*DebateCreate) *DebateCreateBulk {
	return &DebateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateClient) MapCreateBulk(slice any, setFunc func(*DebateCreate, int)) *DebateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateCreateBulk{err: fmt.Errorf("calling to DebateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Debate.
func (c *DebateClient) Update() *DebateUpdate {
	mutation := newDebateMutation(c.config, OpUpdate)
	return &DebateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateClient) UpdateOne(_m *Debate) *DebateUpdateOne {
	mutation := newDebateMutation(c.config, OpUpdateOne, withDebate(_m))
	return &DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateClient) UpdateOneID(id string) *DebateUpdateOne {
	mutation := newDebateMutation(c.config, OpUpdateOne, withDebateID(id))
	return &DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Debate.
func (c *DebateClient) Delete() *DebateDelete {
	mutation := newDebateMutation(c.config, OpDelete)
	return &DebateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateClient) DeleteOne(_m *Debate) *DebateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateClient) DeleteOneID(id string) *DebateDeleteOne {
	builder := c.Delete().Where(debate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateDeleteOne{builder}
}

// Query returns a query builder for Debate.
func (c *DebateClient) Query() *DebateQuery {
	return &DebateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebate},
		inters: c.Interceptors(),
	}
}

// Get returns a Debate entity by its id.
func (c *DebateClient) Get(ctx context.Context, id string) (*Debate, error) {
	return c.Query().Where(debate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateClient) GetX(ctx context.Context, id string) *Debate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUtterances queries the utterances edge of a Debate.
func (c *DebateClient) QueryUtterances(_m *Debate) *UtteranceQuery {
	query := (&UtteranceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, id),
			sqlgraph.To(utterance.Table, utterance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debate.UtterancesTable, debate.UtterancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInterventions queries the interventions edge of a Debate.
func (c *DebateClient) QueryInterventions(_m *Debate) *InterventionQuery {
	query := (&InterventionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, id),
			sqlgraph.To(intervention.Table, intervention.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debate.InterventionsTable, debate.InterventionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySystemEvents queries the system_events edge of a Debate.
func (c *DebateClient) QuerySystemEvents(_m *Debate) *SystemEventQuery {
	query := (&SystemEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, id),
			sqlgraph.To(systemevent.Table, systemevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debate.SystemEventsTable, debate.SystemEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateClient) Hooks() []Hook {
	return c.hooks.Debate
}

// Interceptors returns the client interceptors.
func (c *DebateClient) Interceptors() []Interceptor {
	return c.inters.Debate
}

func (c *DebateClient) mutate(ctx context.Context, m *DebateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Debate mutation op: %q", m.Op())
	}
}

// InterventionClient is a client for the Intervention schema.
type InterventionClient struct {
	config
}

// NewInterventionClient returns a client for the Intervention from the given config.
func NewInterventionClient(c config) *InterventionClient {
	return &InterventionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intervention.Hooks(f(g(h())))`.
func (c *InterventionClient) Use(hooks ...Hook) {
	c.hooks.Intervention = append(c.hooks.Intervention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intervention.Intercept(f(g(h())))`.
func (c *InterventionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Intervention = append(c.inters.Intervention, interceptors...)
}

// Create returns a builder for creating a Intervention entity.
func (c *InterventionClient) Create() *InterventionCreate {
	mutation := newInterventionMutation(c.config, OpCreate)
	return &InterventionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Intervention entities.
func (c *InterventionClient) CreateBulk(builders ...*InterventionCreate) *InterventionCreateBulk {
	return &InterventionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterventionClient) MapCreateBulk(slice any, setFunc func(*InterventionCreate, int)) *InterventionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterventionCreateBulk{err: fmt.Errorf("calling to InterventionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterventionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterventionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Intervention.
func (c *InterventionClient) Update() *InterventionUpdate {
	mutation := newInterventionMutation(c.config, OpUpdate)
	return &InterventionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterventionClient) UpdateOne(_m *Intervention) *InterventionUpdateOne {
	mutation := newInterventionMutation(c.config, OpUpdateOne, withIntervention(_m))
	return &InterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterventionClient) UpdateOneID(id string) *InterventionUpdateOne {
	mutation := newInterventionMutation(c.config, OpUpdateOne, withInterventionID(id))
	return &InterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Intervention.
func (c *InterventionClient) Delete() *InterventionDelete {
	mutation := newInterventionMutation(c.config, OpDelete)
	return &InterventionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterventionClient) DeleteOne(_m *Intervention) *InterventionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterventionClient) DeleteOneID(id string) *InterventionDeleteOne {
	builder := c.Delete().Where(intervention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterventionDeleteOne{builder}
}

// Query returns a query builder for Intervention.
func (c *InterventionClient) Query() *InterventionQuery {
	return &InterventionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntervention},
		inters: c.Interceptors(),
	}
}

// Get returns a Intervention entity by its id.
func (c *InterventionClient) Get(ctx context.Context, id string) (*Intervention, error) {
	return c.Query().Where(intervention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterventionClient) GetX(ctx context.Context, id string) *Intervention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDebate queries the debate edge of a Intervention.
func (c *InterventionClient) QueryDebate(_m *Intervention) *DebateQuery {
	query := (&DebateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intervention.Table, intervention.FieldID, id),
			sqlgraph.To(debate.Table, debate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, intervention.DebateTable, intervention.DebateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InterventionClient) Hooks() []Hook {
	return c.hooks.Intervention
}

// Interceptors returns the client interceptors.
func (c *InterventionClient) Interceptors() []Interceptor {
	return c.inters.Intervention
}

func (c *InterventionClient) mutate(ctx context.Context, m *InterventionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterventionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterventionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterventionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Intervention mutation op: %q", m.Op())
	}
}

// SystemEventClient is a client for the SystemEvent schema.
type SystemEventClient struct {
	config
}

// NewSystemEventClient returns a client for the SystemEvent from the given config.
func NewSystemEventClient(c config) *SystemEventClient {
	return &SystemEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemevent.Hooks(f(g(h())))`.
func (c *SystemEventClient) Use(hooks ...Hook) {
	c.hooks.SystemEvent = append(c.hooks.SystemEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemevent.Intercept(f(g(h())))`.
func (c *SystemEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemEvent = append(c.inters.SystemEvent, interceptors...)
}

// Create returns a builder for creating a SystemEvent entity.
func (c *SystemEventClient) Create() *SystemEventCreate {
	mutation := newSystemEventMutation(c.config, OpCreate)
	return &SystemEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemEvent entities.
func (c *SystemEventClient) CreateBulk(builders ...*SystemEventCreate) *SystemEventCreateBulk {
	return &SystemEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemEventClient) MapCreateBulk(slice any, setFunc func(*SystemEventCreate, int)) *SystemEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemEventCreateBulk{err: fmt.Errorf("calling to SystemEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemEvent.
func (c *SystemEventClient) Update() *SystemEventUpdate {
	mutation := newSystemEventMutation(c.config, OpUpdate)
	return &SystemEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemEventClient) UpdateOne(_m *SystemEvent) *SystemEventUpdateOne {
	mutation := newSystemEventMutation(c.config, OpUpdateOne, withSystemEvent(_m))
	return &SystemEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemEventClient) UpdateOneID(id string) *SystemEventUpdateOne {
	mutation := newSystemEventMutation(c.config, OpUpdateOne, withSystemEventID(id))
	return &SystemEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemEvent.
func (c *SystemEventClient) Delete() *SystemEventDelete {
	mutation := newSystemEventMutation(c.config, OpDelete)
	return &SystemEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemEventClient) DeleteOne(_m *SystemEvent) *SystemEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemEventClient) DeleteOneID(id string) *SystemEventDeleteOne {
	builder := c.Delete().Where(systemevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemEventDeleteOne{builder}
}

// Query returns a query builder for SystemEvent.
func (c *SystemEventClient) Query() *SystemEventQuery {
	return &SystemEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemEvent entity by its id.
func (c *SystemEventClient) Get(ctx context.Context, id string) (*SystemEvent, error) {
	return c.Query().Where(systemevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemEventClient) GetX(ctx context.Context, id string) *SystemEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDebate queries the debate edge of a SystemEvent.
func (c *SystemEventClient) QueryDebate(_m *SystemEvent) *DebateQuery {
	query := (&DebateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(systemevent.Table, systemevent.FieldID, id),
			sqlgraph.To(debate.Table, debate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, systemevent.DebateTable, systemevent.DebateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SystemEventClient) Hooks() []Hook {
	return c.hooks.SystemEvent
}

// Interceptors returns the client interceptors.
func (c *SystemEventClient) Interceptors() []Interceptor {
	return c.inters.SystemEvent
}

func (c *SystemEventClient) mutate(ctx context.Context, m *SystemEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemEvent mutation op: %q", m.Op())
	}
}

// UtteranceClient is a client for the Utterance schema.
type UtteranceClient struct {
	config
}

// NewUtteranceClient returns a client for the Utterance from the given config.
func NewUtteranceClient(c config) *UtteranceClient {
	return &UtteranceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `utterance.Hooks(f(g(h())))`.
func (c *UtteranceClient) Use(hooks ...Hook) {
	c.hooks.Utterance = append(c.hooks.Utterance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `utterance.Intercept(f(g(h())))`.
func (c *UtteranceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Utterance = append(c.inters.Utterance, interceptors...)
}

// Create returns a builder for creating a Utterance entity.
func (c *UtteranceClient) Create() *UtteranceCreate {
	mutation := newUtteranceMutation(c.config, OpCreate)
	return &UtteranceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Utterance entities.
func (c *UtteranceClient) CreateBulk(builders ...*UtteranceCreate) *UtteranceCreateBulk {
	return &UtteranceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UtteranceClient) MapCreateBulk(slice any, setFunc func(*UtteranceCreate, int)) *UtteranceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UtteranceCreateBulk{err: fmt.Errorf("calling to UtteranceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UtteranceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UtteranceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Utterance.
func (c *UtteranceClient) Update() *UtteranceUpdate {
	mutation := newUtteranceMutation(c.config, OpUpdate)
	return &UtteranceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UtteranceClient) UpdateOne(_m *Utterance) *UtteranceUpdateOne {
	mutation := newUtteranceMutation(c.config, OpUpdateOne, withUtterance(_m))
	return &UtteranceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UtteranceClient) UpdateOneID(id string) *UtteranceUpdateOne {
	mutation := newUtteranceMutation(c.config, OpUpdateOne, withUtteranceID(id))
	return &UtteranceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Utterance.
func (c *UtteranceClient) Delete() *UtteranceDelete {
	mutation := newUtteranceMutation(c.config, OpDelete)
	return &UtteranceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UtteranceClient) DeleteOne(_m *Utterance) *UtteranceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UtteranceClient) DeleteOneID(id string) *UtteranceDeleteOne {
	builder := c.Delete().Where(utterance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UtteranceDeleteOne{builder}
}

// Query returns a query builder for Utterance.
func (c *UtteranceClient) Query() *UtteranceQuery {
	return &UtteranceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUtterance},
		inters: c.Interceptors(),
	}
}

// Get returns a Utterance entity by its id.
func (c *UtteranceClient) Get(ctx context.Context, id string) (*Utterance, error) {
	return c.Query().Where(utterance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UtteranceClient) GetX(ctx context.Context, id string) *Utterance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDebate queries the debate edge of a Utterance.
func (c *UtteranceClient) QueryDebate(_m *Utterance) *DebateQuery {
	query := (&DebateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(utterance.Table, utterance.FieldID, id),
			sqlgraph.To(debate.Table, debate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, utterance.DebateTable, utterance.DebateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UtteranceClient) Hooks() []Hook {
	return c.hooks.Utterance
}

// Interceptors returns the client interceptors.
func (c *UtteranceClient) Interceptors() []Interceptor {
	return c.inters.Utterance
}

func (c *UtteranceClient) mutate(ctx context.Context, m *UtteranceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UtteranceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UtteranceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UtteranceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UtteranceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Utterance mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Debate, Intervention, SystemEvent, Utterance []ent.Hook
	}
	inters struct {
		Debate, Intervention, SystemEvent, Utterance []ent.Interceptor
	}
)
