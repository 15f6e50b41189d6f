// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/rainzero1960/paperscout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CustomSummary is the client for interacting with the CustomSummary builders.
	CustomSummary *CustomSummaryClient
	// DefaultSummary is the client for interacting with the DefaultSummary builders.
	DefaultSummary *DefaultSummaryClient
	// EditedSummary is the client for interacting with the EditedSummary builders.
	EditedSummary *EditedSummaryClient
	// PaperChatMessage is the client for interacting with the PaperChatMessage builders.
	PaperChatMessage *PaperChatMessageClient
	// PaperChatSession is the client for interacting with the PaperChatSession builders.
	PaperChatSession *PaperChatSessionClient
	// PaperMetadata is the client for interacting with the PaperMetadata builders.
	PaperMetadata *PaperMetadataClient
	// Prompt is the client for interacting with the Prompt builders.
	Prompt *PromptClient
	// PromptGroup is the client for interacting with the PromptGroup builders.
	PromptGroup *PromptGroupClient
	// ResearchMessage is the client for interacting with the ResearchMessage builders.
	ResearchMessage *ResearchMessageClient
	// ResearchSession is the client for interacting with the ResearchSession builders.
	ResearchSession *ResearchSessionClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserPaperLink is the client for interacting with the UserPaperLink builders.
	UserPaperLink *UserPaperLinkClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CustomSummary = NewCustomSummaryClient(c.config)
	c.DefaultSummary = NewDefaultSummaryClient(c.config)
	c.EditedSummary = NewEditedSummaryClient(c.config)
	c.PaperChatMessage = NewPaperChatMessageClient(c.config)
	c.PaperChatSession = NewPaperChatSessionClient(c.config)
	c.PaperMetadata = NewPaperMetadataClient(c.config)
	c.Prompt = NewPromptClient(c.config)
	c.PromptGroup = NewPromptGroupClient(c.config)
	c.ResearchMessage = NewResearchMessageClient(c.config)
	c.ResearchSession = NewResearchSessionClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserPaperLink = NewUserPaperLinkClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		CustomSummary:    NewCustomSummaryClient(cfg),
		DefaultSummary:   NewDefaultSummaryClient(cfg),
		EditedSummary:    NewEditedSummaryClient(cfg),
		PaperChatMessage: NewPaperChatMessageClient(cfg),
		PaperChatSession: NewPaperChatSessionClient(cfg),
		PaperMetadata:    NewPaperMetadataClient(cfg),
		Prompt:           NewPromptClient(cfg),
		PromptGroup:      NewPromptGroupClient(cfg),
		ResearchMessage:  NewResearchMessageClient(cfg),
		ResearchSession:  NewResearchSessionClient(cfg),
		User:             NewUserClient(cfg),
		UserPaperLink:    NewUserPaperLinkClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		CustomSummary:    NewCustomSummaryClient(cfg),
		DefaultSummary:   NewDefaultSummaryClient(cfg),
		EditedSummary:    NewEditedSummaryClient(cfg),
		PaperChatMessage: NewPaperChatMessageClient(cfg),
		PaperChatSession: NewPaperChatSessionClient(cfg),
		PaperMetadata:    NewPaperMetadataClient(cfg),
		Prompt:           NewPromptClient(cfg),
		PromptGroup:      NewPromptGroupClient(cfg),
		ResearchMessage:  NewResearchMessageClient(cfg),
		ResearchSession:  NewResearchSessionClient(cfg),
		User:             NewUserClient(cfg),
		UserPaperLink:    NewUserPaperLinkClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CustomSummary.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.CustomSummary, c.DefaultSummary, c.EditedSummary, c.PaperChatMessage,
		c.PaperChatSession, c.PaperMetadata, c.Prompt, c.PromptGroup,
		c.ResearchMessage, c.ResearchSession, c.User, c.UserPaperLink,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CustomSummary, c.DefaultSummary, c.EditedSummary, c.PaperChatMessage,
		c.PaperChatSession, c.PaperMetadata, c.Prompt, c.PromptGroup,
		c.ResearchMessage, c.ResearchSession, c.User, c.UserPaperLink,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CustomSummaryMutation:
		return c.CustomSummary.mutate(ctx, m)
	case *DefaultSummaryMutation:
		return c.DefaultSummary.mutate(ctx, m)
	case *EditedSummaryMutation:
		return c.EditedSummary.mutate(ctx, m)
	case *PaperChatMessageMutation:
		return c.PaperChatMessage.mutate(ctx, m)
	case *PaperChatSessionMutation:
		return c.PaperChatSession.mutate(ctx, m)
	case *PaperMetadataMutation:
		return c.PaperMetadata.mutate(ctx, m)
	case *PromptMutation:
		return c.Prompt.mutate(ctx, m)
	case *PromptGroupMutation:
		return c.PromptGroup.mutate(ctx, m)
	case *ResearchMessageMutation:
		return c.ResearchMessage.mutate(ctx, m)
	case *ResearchSessionMutation:
		return c.ResearchSession.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserPaperLinkMutation:
		return c.UserPaperLink.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CustomSummaryClient is a client for the CustomSummary schema.
type CustomSummaryClient struct {
	config
}

// NewCustomSummaryClient returns a client for the CustomSummary from the given config.
func NewCustomSummaryClient(c config) *CustomSummaryClient {
	return &CustomSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customsummary.Hooks(f(g(h())))`.
func (c *CustomSummaryClient) Use(hooks ...Hook) {
	c.hooks.CustomSummary = append(c.hooks.CustomSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customsummary.Intercept(f(g(h())))`.
func (c *CustomSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomSummary = append(c.inters.CustomSummary, interceptors...)
}

// Create returns a builder for creating a CustomSummary entity.
func (c *CustomSummaryClient) Create() *CustomSummaryCreate {
	mutation := newCustomSummaryMutation(c.config, OpCreate)
	return &CustomSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomSummary entities.
func (c *CustomSummaryClient) CreateBulk(builders ...*CustomSummaryCreate) *CustomSummaryCreateBulk {
	return &CustomSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomSummaryClient) MapCreateBulk(slice any, setFunc func(*CustomSummaryCreate, int)) *CustomSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomSummaryCreateBulk{err: fmt.Errorf("calling to CustomSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomSummary.
func (c *CustomSummaryClient) Update() *CustomSummaryUpdate {
	mutation := newCustomSummaryMutation(c.config, OpUpdate)
	return &CustomSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomSummaryClient) UpdateOne(_m *CustomSummary) *CustomSummaryUpdateOne {
	mutation := newCustomSummaryMutation(c.config, OpUpdateOne, withCustomSummary(_m))
	return &CustomSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomSummaryClient) UpdateOneID(id string) *CustomSummaryUpdateOne {
	mutation := newCustomSummaryMutation(c.config, OpUpdateOne, withCustomSummaryID(id))
	return &CustomSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomSummary.
func (c *CustomSummaryClient) Delete() *CustomSummaryDelete {
	mutation := newCustomSummaryMutation(c.config, OpDelete)
	return &CustomSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomSummaryClient) DeleteOne(_m *CustomSummary) *CustomSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomSummaryClient) DeleteOneID(id string) *CustomSummaryDeleteOne {
	builder := c.Delete().Where(customsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomSummaryDeleteOne{builder}
}

// Query returns a query builder for CustomSummary.
func (c *CustomSummaryClient) Query() *CustomSummaryQuery {
	return &CustomSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomSummary entity by its id.
func (c *CustomSummaryClient) Get(ctx context.Context, id string) (*CustomSummary, error) {
	return c.Query().Where(customsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomSummaryClient) GetX(ctx context.Context, id string) *CustomSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a CustomSummary.
func (c *CustomSummaryClient) QueryUser(_m *CustomSummary) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.UserTable, customsummary.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaper queries the paper edge of a CustomSummary.
func (c *CustomSummaryClient) QueryPaper(_m *CustomSummary) *PaperMetadataQuery {
	query := (&PaperMetadataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, id),
			sqlgraph.To(papermetadata.Table, papermetadata.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.PaperTable, customsummary.PaperColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPrompt queries the prompt edge of a CustomSummary.
func (c *CustomSummaryClient) QueryPrompt(_m *CustomSummary) *PromptQuery {
	query := (&PromptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customsummary.Table, customsummary.FieldID, id),
			sqlgraph.To(prompt.Table, prompt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, customsummary.PromptTable, customsummary.PromptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CustomSummaryClient) Hooks() []Hook {
	return c.hooks.CustomSummary
}

// Interceptors returns the client interceptors.
func (c *CustomSummaryClient) Interceptors() []Interceptor {
	return c.inters.CustomSummary
}

func (c *CustomSummaryClient) mutate(ctx context.Context, m *CustomSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomSummary mutation op: %q", m.Op())
	}
}

// DefaultSummaryClient is a client for the DefaultSummary schema.
type DefaultSummaryClient struct {
	config
}

// NewDefaultSummaryClient returns a client for the DefaultSummary from the given config.
func NewDefaultSummaryClient(c config) *DefaultSummaryClient {
	return &DefaultSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `defaultsummary.Hooks(f(g(h())))`.
func (c *DefaultSummaryClient) Use(hooks ...Hook) {
	c.hooks.DefaultSummary = append(c.hooks.DefaultSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `defaultsummary.Intercept(f(g(h())))`.
func (c *DefaultSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DefaultSummary = append(c.inters.DefaultSummary, interceptors...)
}

// Create returns a builder for creating a DefaultSummary entity.
func (c *DefaultSummaryClient) Create() *DefaultSummaryCreate {
	mutation := newDefaultSummaryMutation(c.config, OpCreate)
	return &DefaultSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DefaultSummary entities.
func (c *DefaultSummaryClient) CreateBulk(builders ...*DefaultSummaryCreate) *DefaultSummaryCreateBulk {
	return &DefaultSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DefaultSummaryClient) MapCreateBulk(slice any, setFunc func(*DefaultSummaryCreate, int)) *DefaultSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DefaultSummaryCreateBulk{err: fmt.Errorf("calling to DefaultSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DefaultSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DefaultSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DefaultSummary.
func (c *DefaultSummaryClient) Update() *DefaultSummaryUpdate {
	mutation := newDefaultSummaryMutation(c.config, OpUpdate)
	return &DefaultSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DefaultSummaryClient) UpdateOne(_m *DefaultSummary) *DefaultSummaryUpdateOne {
	mutation := newDefaultSummaryMutation(c.config, OpUpdateOne, withDefaultSummary(_m))
	return &DefaultSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DefaultSummaryClient) UpdateOneID(id string) *DefaultSummaryUpdateOne {
	mutation := newDefaultSummaryMutation(c.config, OpUpdateOne, withDefaultSummaryID(id))
	return &DefaultSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DefaultSummary.
func (c *DefaultSummaryClient) Delete() *DefaultSummaryDelete {
	mutation := newDefaultSummaryMutation(c.config, OpDelete)
	return &DefaultSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DefaultSummaryClient) DeleteOne(_m *DefaultSummary) *DefaultSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DefaultSummaryClient) DeleteOneID(id string) *DefaultSummaryDeleteOne {
	builder := c.Delete().Where(defaultsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DefaultSummaryDeleteOne{builder}
}

// Query returns a query builder for DefaultSummary.
func (c *DefaultSummaryClient) Query() *DefaultSummaryQuery {
	return &DefaultSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDefaultSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a DefaultSummary entity by its id.
func (c *DefaultSummaryClient) Get(ctx context.Context, id string) (*DefaultSummary, error) {
	return c.Query().Where(defaultsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DefaultSummaryClient) GetX(ctx context.Context, id string) *DefaultSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPaper queries the paper edge of a DefaultSummary.
func (c *DefaultSummaryClient) QueryPaper(_m *DefaultSummary) *PaperMetadataQuery {
	query := (&PaperMetadataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(defaultsummary.Table, defaultsummary.FieldID, id),
			sqlgraph.To(papermetadata.Table, papermetadata.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, defaultsummary.PaperTable, defaultsummary.PaperColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DefaultSummaryClient) Hooks() []Hook {
	return c.hooks.DefaultSummary
}

// Interceptors returns the client interceptors.
func (c *DefaultSummaryClient) Interceptors() []Interceptor {
	return c.inters.DefaultSummary
}

func (c *DefaultSummaryClient) mutate(ctx context.Context, m *DefaultSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DefaultSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DefaultSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DefaultSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DefaultSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DefaultSummary mutation op: %q", m.Op())
	}
}

// EditedSummaryClient is a client for the EditedSummary schema.
type EditedSummaryClient struct {
	config
}

// NewEditedSummaryClient returns a client for the EditedSummary from the given config.
func NewEditedSummaryClient(c config) *EditedSummaryClient {
	return &EditedSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `editedsummary.Hooks(f(g(h())))`.
func (c *EditedSummaryClient) Use(hooks ...Hook) {
	c.hooks.EditedSummary = append(c.hooks.EditedSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `editedsummary.Intercept(f(g(h())))`.
func (c *EditedSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.EditedSummary = append(c.inters.EditedSummary, interceptors...)
}

// Create returns a builder for creating a EditedSummary entity.
func (c *EditedSummaryClient) Create() *EditedSummaryCreate {
	mutation := newEditedSummaryMutation(c.config, OpCreate)
	return &EditedSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EditedSummary entities.
func (c *EditedSummaryClient) CreateBulk(builders ...*EditedSummaryCreate) *EditedSummaryCreateBulk {
	return &EditedSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EditedSummaryClient) MapCreateBulk(slice any, setFunc func(*EditedSummaryCreate, int)) *EditedSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EditedSummaryCreateBulk{err: fmt.Errorf("calling to EditedSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EditedSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EditedSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EditedSummary.
func (c *EditedSummaryClient) Update() *EditedSummaryUpdate {
	mutation := newEditedSummaryMutation(c.config, OpUpdate)
	return &EditedSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EditedSummaryClient) UpdateOne(_m *EditedSummary) *EditedSummaryUpdateOne {
	mutation := newEditedSummaryMutation(c.config, OpUpdateOne, withEditedSummary(_m))
	return &EditedSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EditedSummaryClient) UpdateOneID(id string) *EditedSummaryUpdateOne {
	mutation := newEditedSummaryMutation(c.config, OpUpdateOne, withEditedSummaryID(id))
	return &EditedSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EditedSummary.
func (c *EditedSummaryClient) Delete() *EditedSummaryDelete {
	mutation := newEditedSummaryMutation(c.config, OpDelete)
	return &EditedSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EditedSummaryClient) DeleteOne(_m *EditedSummary) *EditedSummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EditedSummaryClient) DeleteOneID(id string) *EditedSummaryDeleteOne {
	builder := c.Delete().Where(editedsummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EditedSummaryDeleteOne{builder}
}

// Query returns a query builder for EditedSummary.
func (c *EditedSummaryClient) Query() *EditedSummaryQuery {
	return &EditedSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEditedSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a EditedSummary entity by its id.
func (c *EditedSummaryClient) Get(ctx context.Context, id string) (*EditedSummary, error) {
	return c.Query().Where(editedsummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EditedSummaryClient) GetX(ctx context.Context, id string) *EditedSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a EditedSummary.
func (c *EditedSummaryClient) QueryUser(_m *EditedSummary) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(editedsummary.Table, editedsummary.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, editedsummary.UserTable, editedsummary.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EditedSummaryClient) Hooks() []Hook {
	return c.hooks.EditedSummary
}

// Interceptors returns the client interceptors.
func (c *EditedSummaryClient) Interceptors() []Interceptor {
	return c.inters.EditedSummary
}

func (c *EditedSummaryClient) mutate(ctx context.Context, m *EditedSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EditedSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EditedSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EditedSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EditedSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EditedSummary mutation op: %q", m.Op())
	}
}

// PaperChatMessageClient is a client for the PaperChatMessage schema.
type PaperChatMessageClient struct {
	config
}

// NewPaperChatMessageClient returns a client for the PaperChatMessage from the given config.
func NewPaperChatMessageClient(c config) *PaperChatMessageClient {
	return &PaperChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paperchatmessage.Hooks(f(g(h())))`.
func (c *PaperChatMessageClient) Use(hooks ...Hook) {
	c.hooks.PaperChatMessage = append(c.hooks.PaperChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paperchatmessage.Intercept(f(g(h())))`.
func (c *PaperChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaperChatMessage = append(c.inters.PaperChatMessage, interceptors...)
}

// Create returns a builder for creating a PaperChatMessage entity.
func (c *PaperChatMessageClient) Create() *PaperChatMessageCreate {
	mutation := newPaperChatMessageMutation(c.config, OpCreate)
	return &PaperChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaperChatMessage entities.
func (c *PaperChatMessageClient) CreateBulk(builders ...*PaperChatMessageCreate) *PaperChatMessageCreateBulk {
	return &PaperChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperChatMessageClient) MapCreateBulk(slice any, setFunc func(*PaperChatMessageCreate, int)) *PaperChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperChatMessageCreateBulk{err: fmt.Errorf("calling to PaperChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaperChatMessage.
func (c *PaperChatMessageClient) Update() *PaperChatMessageUpdate {
	mutation := newPaperChatMessageMutation(c.config, OpUpdate)
	return &PaperChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperChatMessageClient) UpdateOne(_m *PaperChatMessage) *PaperChatMessageUpdateOne {
	mutation := newPaperChatMessageMutation(c.config, OpUpdateOne, withPaperChatMessage(_m))
	return &PaperChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperChatMessageClient) UpdateOneID(id string) *PaperChatMessageUpdateOne {
	mutation := newPaperChatMessageMutation(c.config, OpUpdateOne, withPaperChatMessageID(id))
	return &PaperChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaperChatMessage.
func (c *PaperChatMessageClient) Delete() *PaperChatMessageDelete {
	mutation := newPaperChatMessageMutation(c.config, OpDelete)
	return &PaperChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperChatMessageClient) DeleteOne(_m *PaperChatMessage) *PaperChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperChatMessageClient) DeleteOneID(id string) *PaperChatMessageDeleteOne {
	builder := c.Delete().Where(paperchatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperChatMessageDeleteOne{builder}
}

// Query returns a query builder for PaperChatMessage.
func (c *PaperChatMessageClient) Query() *PaperChatMessageQuery {
	return &PaperChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaperChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a PaperChatMessage entity by its id.
func (c *PaperChatMessageClient) Get(ctx context.Context, id string) (*PaperChatMessage, error) {
	return c.Query().Where(paperchatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperChatMessageClient) GetX(ctx context.Context, id string) *PaperChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a PaperChatMessage.
func (c *PaperChatMessageClient) QuerySession(_m *PaperChatMessage) *PaperChatSessionQuery {
	query := (&PaperChatSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperchatmessage.Table, paperchatmessage.FieldID, id),
			sqlgraph.To(paperchatsession.Table, paperchatsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paperchatmessage.SessionTable, paperchatmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaperChatMessageClient) Hooks() []Hook {
	return c.hooks.PaperChatMessage
}

// Interceptors returns the client interceptors.
func (c *PaperChatMessageClient) Interceptors() []Interceptor {
	return c.inters.PaperChatMessage
}

func (c *PaperChatMessageClient) mutate(ctx context.Context, m *PaperChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaperChatMessage mutation op: %q", m.Op())
	}
}

// PaperChatSessionClient is a client for the PaperChatSession schema.
type PaperChatSessionClient struct {
	config
}

// NewPaperChatSessionClient returns a client for the PaperChatSession from the given config.
func NewPaperChatSessionClient(c config) *PaperChatSessionClient {
	return &PaperChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paperchatsession.Hooks(f(g(h())))`.
func (c *PaperChatSessionClient) Use(hooks ...Hook) {
	c.hooks.PaperChatSession = append(c.hooks.PaperChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paperchatsession.Intercept(f(g(h())))`.
func (c *PaperChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaperChatSession = append(c.inters.PaperChatSession, interceptors...)
}

// Create returns a builder for creating a PaperChatSession entity.
func (c *PaperChatSessionClient) Create() *PaperChatSessionCreate {
	mutation := newPaperChatSessionMutation(c.config, OpCreate)
	return &PaperChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaperChatSession entities.
func (c *PaperChatSessionClient) CreateBulk(builders ...*PaperChatSessionCreate) *PaperChatSessionCreateBulk {
	return &PaperChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperChatSessionClient) MapCreateBulk(slice any, setFunc func(*PaperChatSessionCreate, int)) *PaperChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperChatSessionCreateBulk{err: fmt.Errorf("calling to PaperChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaperChatSession.
func (c *PaperChatSessionClient) Update() *PaperChatSessionUpdate {
	mutation := newPaperChatSessionMutation(c.config, OpUpdate)
	return &PaperChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperChatSessionClient) UpdateOne(_m *PaperChatSession) *PaperChatSessionUpdateOne {
	mutation := newPaperChatSessionMutation(c.config, OpUpdateOne, withPaperChatSession(_m))
	return &PaperChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperChatSessionClient) UpdateOneID(id string) *PaperChatSessionUpdateOne {
	mutation := newPaperChatSessionMutation(c.config, OpUpdateOne, withPaperChatSessionID(id))
	return &PaperChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaperChatSession.
func (c *PaperChatSessionClient) Delete() *PaperChatSessionDelete {
	mutation := newPaperChatSessionMutation(c.config, OpDelete)
	return &PaperChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperChatSessionClient) DeleteOne(_m *PaperChatSession) *PaperChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperChatSessionClient) DeleteOneID(id string) *PaperChatSessionDeleteOne {
	builder := c.Delete().Where(paperchatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperChatSessionDeleteOne{builder}
}

// Query returns a query builder for PaperChatSession.
func (c *PaperChatSessionClient) Query() *PaperChatSessionQuery {
	return &PaperChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaperChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PaperChatSession entity by its id.
func (c *PaperChatSessionClient) Get(ctx context.Context, id string) (*PaperChatSession, error) {
	return c.Query().Where(paperchatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperChatSessionClient) GetX(ctx context.Context, id string) *PaperChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PaperChatSession.
func (c *PaperChatSessionClient) QueryUser(_m *PaperChatSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperchatsession.Table, paperchatsession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paperchatsession.UserTable, paperchatsession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a PaperChatSession.
func (c *PaperChatSessionClient) QueryMessages(_m *PaperChatSession) *PaperChatMessageQuery {
	query := (&PaperChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperchatsession.Table, paperchatsession.FieldID, id),
			sqlgraph.To(paperchatmessage.Table, paperchatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperchatsession.MessagesTable, paperchatsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaperChatSessionClient) Hooks() []Hook {
	return c.hooks.PaperChatSession
}

// Interceptors returns the client interceptors.
func (c *PaperChatSessionClient) Interceptors() []Interceptor {
	return c.inters.PaperChatSession
}

func (c *PaperChatSessionClient) mutate(ctx context.Context, m *PaperChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaperChatSession mutation op: %q", m.Op())
	}
}

// PaperMetadataClient is a client for the PaperMetadata schema.
type PaperMetadataClient struct {
	config
}

// NewPaperMetadataClient returns a client for the PaperMetadata from the given config.
func NewPaperMetadataClient(c config) *PaperMetadataClient {
	return &PaperMetadataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `papermetadata.Hooks(f(g(h())))`.
func (c *PaperMetadataClient) Use(hooks ...Hook) {
	c.hooks.PaperMetadata = append(c.hooks.PaperMetadata, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `papermetadata.Intercept(f(g(h())))`.
func (c *PaperMetadataClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaperMetadata = append(c.inters.PaperMetadata, interceptors...)
}

// Create returns a builder for creating a PaperMetadata entity.
func (c *PaperMetadataClient) Create() *PaperMetadataCreate {
	mutation := newPaperMetadataMutation(c.config, OpCreate)
	return &PaperMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaperMetadata entities.
func (c *PaperMetadataClient) CreateBulk(builders ...*PaperMetadataCreate) *PaperMetadataCreateBulk {
	return &PaperMetadataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperMetadataClient) MapCreateBulk(slice any, setFunc func(*PaperMetadataCreate, int)) *PaperMetadataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperMetadataCreateBulk{err: fmt.Errorf("calling to PaperMetadataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperMetadataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperMetadataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaperMetadata.
func (c *PaperMetadataClient) Update() *PaperMetadataUpdate {
	mutation := newPaperMetadataMutation(c.config, OpUpdate)
	return &PaperMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperMetadataClient) UpdateOne(_m *PaperMetadata) *PaperMetadataUpdateOne {
	mutation := newPaperMetadataMutation(c.config, OpUpdateOne, withPaperMetadata(_m))
	return &PaperMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperMetadataClient) UpdateOneID(id string) *PaperMetadataUpdateOne {
	mutation := newPaperMetadataMutation(c.config, OpUpdateOne, withPaperMetadataID(id))
	return &PaperMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaperMetadata.
func (c *PaperMetadataClient) Delete() *PaperMetadataDelete {
	mutation := newPaperMetadataMutation(c.config, OpDelete)
	return &PaperMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperMetadataClient) DeleteOne(_m *PaperMetadata) *PaperMetadataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperMetadataClient) DeleteOneID(id string) *PaperMetadataDeleteOne {
	builder := c.Delete().Where(papermetadata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperMetadataDeleteOne{builder}
}

// Query returns a query builder for PaperMetadata.
func (c *PaperMetadataClient) Query() *PaperMetadataQuery {
	return &PaperMetadataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaperMetadata},
		inters: c.Interceptors(),
	}
}

// Get returns a PaperMetadata entity by its id.
func (c *PaperMetadataClient) Get(ctx context.Context, id string) (*PaperMetadata, error) {
	return c.Query().Where(papermetadata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperMetadataClient) GetX(ctx context.Context, id string) *PaperMetadata {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDefaultSummaries queries the default_summaries edge of a PaperMetadata.
func (c *PaperMetadataClient) QueryDefaultSummaries(_m *PaperMetadata) *DefaultSummaryQuery {
	query := (&DefaultSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, id),
			sqlgraph.To(defaultsummary.Table, defaultsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.DefaultSummariesTable, papermetadata.DefaultSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCustomSummaries queries the custom_summaries edge of a PaperMetadata.
func (c *PaperMetadataClient) QueryCustomSummaries(_m *PaperMetadata) *CustomSummaryQuery {
	query := (&CustomSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, id),
			sqlgraph.To(customsummary.Table, customsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.CustomSummariesTable, papermetadata.CustomSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUserLinks queries the user_links edge of a PaperMetadata.
func (c *PaperMetadataClient) QueryUserLinks(_m *PaperMetadata) *UserPaperLinkQuery {
	query := (&UserPaperLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(papermetadata.Table, papermetadata.FieldID, id),
			sqlgraph.To(userpaperlink.Table, userpaperlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, papermetadata.UserLinksTable, papermetadata.UserLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaperMetadataClient) Hooks() []Hook {
	return c.hooks.PaperMetadata
}

// Interceptors returns the client interceptors.
func (c *PaperMetadataClient) Interceptors() []Interceptor {
	return c.inters.PaperMetadata
}

func (c *PaperMetadataClient) mutate(ctx context.Context, m *PaperMetadataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaperMetadata mutation op: %q", m.Op())
	}
}

// PromptClient is a client for the Prompt schema.
type PromptClient struct {
	config
}

// NewPromptClient returns a client for the Prompt from the given config.
func NewPromptClient(c config) *PromptClient {
	return &PromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompt.Hooks(f(g(h())))`.
func (c *PromptClient) Use(hooks ...Hook) {
	c.hooks.Prompt = append(c.hooks.Prompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompt.Intercept(f(g(h())))`.
func (c *PromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prompt = append(c.inters.Prompt, interceptors...)
}

// Create returns a builder for creating a Prompt entity.
func (c *PromptClient) Create() *PromptCreate {
	mutation := newPromptMutation(c.config, OpCreate)
	return &PromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prompt entities.
func (c *PromptClient) CreateBulk(builders ...*PromptCreate) *PromptCreateBulk {
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptClient) MapCreateBulk(slice any, setFunc func(*PromptCreate, int)) *PromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptCreateBulk{err: fmt.Errorf("calling to PromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prompt.
func (c *PromptClient) Update() *PromptUpdate {
	mutation := newPromptMutation(c.config, OpUpdate)
	return &PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptClient) UpdateOne(_m *Prompt) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPrompt(_m))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptClient) UpdateOneID(id string) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPromptID(id))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prompt.
func (c *PromptClient) Delete() *PromptDelete {
	mutation := newPromptMutation(c.config, OpDelete)
	return &PromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptClient) DeleteOne(_m *Prompt) *PromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptClient) DeleteOneID(id string) *PromptDeleteOne {
	builder := c.Delete().Where(prompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptDeleteOne{builder}
}

// Query returns a query builder for Prompt.
func (c *PromptClient) Query() *PromptQuery {
	return &PromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a Prompt entity by its id.
func (c *PromptClient) Get(ctx context.Context, id string) (*Prompt, error) {
	return c.Query().Where(prompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptClient) GetX(ctx context.Context, id string) *Prompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Prompt.
func (c *PromptClient) QueryOwner(_m *Prompt) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompt.Table, prompt.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, prompt.OwnerTable, prompt.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCustomSummaries queries the custom_summaries edge of a Prompt.
func (c *PromptClient) QueryCustomSummaries(_m *Prompt) *CustomSummaryQuery {
	query := (&CustomSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompt.Table, prompt.FieldID, id),
			sqlgraph.To(customsummary.Table, customsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prompt.CustomSummariesTable, prompt.CustomSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptClient) Hooks() []Hook {
	return c.hooks.Prompt
}

// Interceptors returns the client interceptors.
func (c *PromptClient) Interceptors() []Interceptor {
	return c.inters.Prompt
}

func (c *PromptClient) mutate(ctx context.Context, m *PromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prompt mutation op: %q", m.Op())
	}
}

// PromptGroupClient is a client for the PromptGroup schema.
type PromptGroupClient struct {
	config
}

// NewPromptGroupClient returns a client for the PromptGroup from the given config.
func NewPromptGroupClient(c config) *PromptGroupClient {
	return &PromptGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptgroup.Hooks(f(g(h())))`.
func (c *PromptGroupClient) Use(hooks ...Hook) {
	c.hooks.PromptGroup = append(c.hooks.PromptGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptgroup.Intercept(f(g(h())))`.
func (c *PromptGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptGroup = append(c.inters.PromptGroup, interceptors...)
}

// Create returns a builder for creating a PromptGroup entity.
func (c *PromptGroupClient) Create() *PromptGroupCreate {
	mutation := newPromptGroupMutation(c.config, OpCreate)
	return &PromptGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptGroup entities.
func (c *PromptGroupClient) CreateBulk(builders ...*PromptGroupCreate) *PromptGroupCreateBulk {
	return &PromptGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptGroupClient) MapCreateBulk(slice any, setFunc func(*PromptGroupCreate, int)) *PromptGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptGroupCreateBulk{err: fmt.Errorf("calling to PromptGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptGroup.
func (c *PromptGroupClient) Update() *PromptGroupUpdate {
	mutation := newPromptGroupMutation(c.config, OpUpdate)
	return &PromptGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptGroupClient) UpdateOne(_m *PromptGroup) *PromptGroupUpdateOne {
	mutation := newPromptGroupMutation(c.config, OpUpdateOne, withPromptGroup(_m))
	return &PromptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptGroupClient) UpdateOneID(id string) *PromptGroupUpdateOne {
	mutation := newPromptGroupMutation(c.config, OpUpdateOne, withPromptGroupID(id))
	return &PromptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptGroup.
func (c *PromptGroupClient) Delete() *PromptGroupDelete {
	mutation := newPromptGroupMutation(c.config, OpDelete)
	return &PromptGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptGroupClient) DeleteOne(_m *PromptGroup) *PromptGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptGroupClient) DeleteOneID(id string) *PromptGroupDeleteOne {
	builder := c.Delete().Where(promptgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptGroupDeleteOne{builder}
}

// Query returns a query builder for PromptGroup.
func (c *PromptGroupClient) Query() *PromptGroupQuery {
	return &PromptGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptGroup entity by its id.
func (c *PromptGroupClient) Get(ctx context.Context, id string) (*PromptGroup, error) {
	return c.Query().Where(promptgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptGroupClient) GetX(ctx context.Context, id string) *PromptGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PromptGroup.
func (c *PromptGroupClient) QueryUser(_m *PromptGroup) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptgroup.Table, promptgroup.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptgroup.UserTable, promptgroup.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptGroupClient) Hooks() []Hook {
	return c.hooks.PromptGroup
}

// Interceptors returns the client interceptors.
func (c *PromptGroupClient) Interceptors() []Interceptor {
	return c.inters.PromptGroup
}

func (c *PromptGroupClient) mutate(ctx context.Context, m *PromptGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptGroup mutation op: %q", m.Op())
	}
}

// ResearchMessageClient is a client for the ResearchMessage schema.
type ResearchMessageClient struct {
	config
}

// NewResearchMessageClient returns a client for the ResearchMessage from the given config.
func NewResearchMessageClient(c config) *ResearchMessageClient {
	return &ResearchMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchmessage.Hooks(f(g(h())))`.
func (c *ResearchMessageClient) Use(hooks ...Hook) {
	c.hooks.ResearchMessage = append(c.hooks.ResearchMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchmessage.Intercept(f(g(h())))`.
func (c *ResearchMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchMessage = append(c.inters.ResearchMessage, interceptors...)
}

// Create returns a builder for creating a ResearchMessage entity.
func (c *ResearchMessageClient) Create() *ResearchMessageCreate {
	mutation := newResearchMessageMutation(c.config, OpCreate)
	return &ResearchMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchMessage entities.
func (c *ResearchMessageClient) CreateBulk(builders ...*ResearchMessageCreate) *ResearchMessageCreateBulk {
	return &ResearchMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchMessageClient) MapCreateBulk(slice any, setFunc func(*ResearchMessageCreate, int)) *ResearchMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchMessageCreateBulk{err: fmt.Errorf("calling to ResearchMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchMessage.
func (c *ResearchMessageClient) Update() *ResearchMessageUpdate {
	mutation := newResearchMessageMutation(c.config, OpUpdate)
	return &ResearchMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchMessageClient) UpdateOne(_m *ResearchMessage) *ResearchMessageUpdateOne {
	mutation := newResearchMessageMutation(c.config, OpUpdateOne, withResearchMessage(_m))
	return &ResearchMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchMessageClient) UpdateOneID(id string) *ResearchMessageUpdateOne {
	mutation := newResearchMessageMutation(c.config, OpUpdateOne, withResearchMessageID(id))
	return &ResearchMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchMessage.
func (c *ResearchMessageClient) Delete() *ResearchMessageDelete {
	mutation := newResearchMessageMutation(c.config, OpDelete)
	return &ResearchMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchMessageClient) DeleteOne(_m *ResearchMessage) *ResearchMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchMessageClient) DeleteOneID(id string) *ResearchMessageDeleteOne {
	builder := c.Delete().Where(researchmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchMessageDeleteOne{builder}
}

// Query returns a query builder for ResearchMessage.
func (c *ResearchMessageClient) Query() *ResearchMessageQuery {
	return &ResearchMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchMessage entity by its id.
func (c *ResearchMessageClient) Get(ctx context.Context, id string) (*ResearchMessage, error) {
	return c.Query().Where(researchmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchMessageClient) GetX(ctx context.Context, id string) *ResearchMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ResearchMessage.
func (c *ResearchMessageClient) QuerySession(_m *ResearchMessage) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchmessage.Table, researchmessage.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchmessage.SessionTable, researchmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchMessageClient) Hooks() []Hook {
	return c.hooks.ResearchMessage
}

// Interceptors returns the client interceptors.
func (c *ResearchMessageClient) Interceptors() []Interceptor {
	return c.inters.ResearchMessage
}

func (c *ResearchMessageClient) mutate(ctx context.Context, m *ResearchMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchMessage mutation op: %q", m.Op())
	}
}

// ResearchSessionClient is a client for the ResearchSession schema.
type ResearchSessionClient struct {
	config
}

// NewResearchSessionClient returns a client for the ResearchSession from the given config.
func NewResearchSessionClient(c config) *ResearchSessionClient {
	return &ResearchSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchsession.Hooks(f(g(h())))`.
func (c *ResearchSessionClient) Use(hooks ...Hook) {
	c.hooks.ResearchSession = append(c.hooks.ResearchSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchsession.Intercept(f(g(h())))`.
func (c *ResearchSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchSession = append(c.inters.ResearchSession, interceptors...)
}

// Create returns a builder for creating a ResearchSession entity.
func (c *ResearchSessionClient) Create() *ResearchSessionCreate {
	mutation := newResearchSessionMutation(c.config, OpCreate)
	return &ResearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchSession entities.
func (c *ResearchSessionClient) CreateBulk(builders ...*ResearchSessionCreate) *ResearchSessionCreateBulk {
	return &ResearchSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchSessionClient) MapCreateBulk(slice any, setFunc func(*ResearchSessionCreate, int)) *ResearchSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchSessionCreateBulk{err: fmt.Errorf("calling to ResearchSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchSession.
func (c *ResearchSessionClient) Update() *ResearchSessionUpdate {
	mutation := newResearchSessionMutation(c.config, OpUpdate)
	return &ResearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchSessionClient) UpdateOne(_m *ResearchSession) *ResearchSessionUpdateOne {
	mutation := newResearchSessionMutation(c.config, OpUpdateOne, withResearchSession(_m))
	return &ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchSessionClient) UpdateOneID(id string) *ResearchSessionUpdateOne {
	mutation := newResearchSessionMutation(c.config, OpUpdateOne, withResearchSessionID(id))
	return &ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchSession.
func (c *ResearchSessionClient) Delete() *ResearchSessionDelete {
	mutation := newResearchSessionMutation(c.config, OpDelete)
	return &ResearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchSessionClient) DeleteOne(_m *ResearchSession) *ResearchSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchSessionClient) DeleteOneID(id string) *ResearchSessionDeleteOne {
	builder := c.Delete().Where(researchsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchSessionDeleteOne{builder}
}

// Query returns a query builder for ResearchSession.
func (c *ResearchSessionClient) Query() *ResearchSessionQuery {
	return &ResearchSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchSession entity by its id.
func (c *ResearchSessionClient) Get(ctx context.Context, id string) (*ResearchSession, error) {
	return c.Query().Where(researchsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchSessionClient) GetX(ctx context.Context, id string) *ResearchSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ResearchSession.
func (c *ResearchSessionClient) QueryUser(_m *ResearchSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchsession.UserTable, researchsession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a ResearchSession.
func (c *ResearchSessionClient) QueryMessages(_m *ResearchSession) *ResearchMessageQuery {
	query := (&ResearchMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchsession.Table, researchsession.FieldID, id),
			sqlgraph.To(researchmessage.Table, researchmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchsession.MessagesTable, researchsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchSessionClient) Hooks() []Hook {
	return c.hooks.ResearchSession
}

// Interceptors returns the client interceptors.
func (c *ResearchSessionClient) Interceptors() []Interceptor {
	return c.inters.ResearchSession
}

func (c *ResearchSessionClient) mutate(ctx context.Context, m *ResearchSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchSession mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPaperLinks queries the paper_links edge of a User.
func (c *UserClient) QueryPaperLinks(_m *User) *UserPaperLinkQuery {
	query := (&UserPaperLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(userpaperlink.Table, userpaperlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PaperLinksTable, user.PaperLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCustomSummaries queries the custom_summaries edge of a User.
func (c *UserClient) QueryCustomSummaries(_m *User) *CustomSummaryQuery {
	query := (&CustomSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(customsummary.Table, customsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CustomSummariesTable, user.CustomSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEditedSummaries queries the edited_summaries edge of a User.
func (c *UserClient) QueryEditedSummaries(_m *User) *EditedSummaryQuery {
	query := (&EditedSummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(editedsummary.Table, editedsummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.EditedSummariesTable, user.EditedSummariesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPrompts queries the prompts edge of a User.
func (c *UserClient) QueryPrompts(_m *User) *PromptQuery {
	query := (&PromptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(prompt.Table, prompt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PromptsTable, user.PromptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptGroups queries the prompt_groups edge of a User.
func (c *UserClient) QueryPromptGroups(_m *User) *PromptGroupQuery {
	query := (&PromptGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(promptgroup.Table, promptgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PromptGroupsTable, user.PromptGroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResearchSessions queries the research_sessions edge of a User.
func (c *UserClient) QueryResearchSessions(_m *User) *ResearchSessionQuery {
	query := (&ResearchSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(researchsession.Table, researchsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ResearchSessionsTable, user.ResearchSessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatSessions queries the chat_sessions edge of a User.
func (c *UserClient) QueryChatSessions(_m *User) *PaperChatSessionQuery {
	query := (&PaperChatSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(paperchatsession.Table, paperchatsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ChatSessionsTable, user.ChatSessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserPaperLinkClient is a client for the UserPaperLink schema.
type UserPaperLinkClient struct {
	config
}

// NewUserPaperLinkClient returns a client for the UserPaperLink from the given config.
func NewUserPaperLinkClient(c config) *UserPaperLinkClient {
	return &UserPaperLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userpaperlink.Hooks(f(g(h())))`.
func (c *UserPaperLinkClient) Use(hooks ...Hook) {
	c.hooks.UserPaperLink = append(c.hooks.UserPaperLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userpaperlink.Intercept(f(g(h())))`.
func (c *UserPaperLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserPaperLink = append(c.inters.UserPaperLink, interceptors...)
}

// Create returns a builder for creating a UserPaperLink entity.
func (c *UserPaperLinkClient) Create() *UserPaperLinkCreate {
	mutation := newUserPaperLinkMutation(c.config, OpCreate)
	return &UserPaperLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserPaperLink entities.
func (c *UserPaperLinkClient) CreateBulk(builders ...*UserPaperLinkCreate) *UserPaperLinkCreateBulk {
	return &UserPaperLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserPaperLinkClient) MapCreateBulk(slice any, setFunc func(*UserPaperLinkCreate, int)) *UserPaperLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserPaperLinkCreateBulk{err: fmt.Errorf("calling to UserPaperLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserPaperLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserPaperLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserPaperLink.
func (c *UserPaperLinkClient) Update() *UserPaperLinkUpdate {
	mutation := newUserPaperLinkMutation(c.config, OpUpdate)
	return &UserPaperLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserPaperLinkClient) UpdateOne(_m *UserPaperLink) *UserPaperLinkUpdateOne {
	mutation := newUserPaperLinkMutation(c.config, OpUpdateOne, withUserPaperLink(_m))
	return &UserPaperLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserPaperLinkClient) UpdateOneID(id string) *UserPaperLinkUpdateOne {
	mutation := newUserPaperLinkMutation(c.config, OpUpdateOne, withUserPaperLinkID(id))
	return &UserPaperLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserPaperLink.
func (c *UserPaperLinkClient) Delete() *UserPaperLinkDelete {
	mutation := newUserPaperLinkMutation(c.config, OpDelete)
	return &UserPaperLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserPaperLinkClient) DeleteOne(_m *UserPaperLink) *UserPaperLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserPaperLinkClient) DeleteOneID(id string) *UserPaperLinkDeleteOne {
	builder := c.Delete().Where(userpaperlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserPaperLinkDeleteOne{builder}
}

// Query returns a query builder for UserPaperLink.
func (c *UserPaperLinkClient) Query() *UserPaperLinkQuery {
	return &UserPaperLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserPaperLink},
		inters: c.Interceptors(),
	}
}

// Get returns a UserPaperLink entity by its id.
func (c *UserPaperLinkClient) Get(ctx context.Context, id string) (*UserPaperLink, error) {
	return c.Query().Where(userpaperlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserPaperLinkClient) GetX(ctx context.Context, id string) *UserPaperLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserPaperLink.
func (c *UserPaperLinkClient) QueryUser(_m *UserPaperLink) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userpaperlink.Table, userpaperlink.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userpaperlink.UserTable, userpaperlink.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaper queries the paper edge of a UserPaperLink.
func (c *UserPaperLinkClient) QueryPaper(_m *UserPaperLink) *PaperMetadataQuery {
	query := (&PaperMetadataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userpaperlink.Table, userpaperlink.FieldID, id),
			sqlgraph.To(papermetadata.Table, papermetadata.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userpaperlink.PaperTable, userpaperlink.PaperColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserPaperLinkClient) Hooks() []Hook {
	return c.hooks.UserPaperLink
}

// Interceptors returns the client interceptors.
func (c *UserPaperLinkClient) Interceptors() []Interceptor {
	return c.inters.UserPaperLink
}

func (c *UserPaperLinkClient) mutate(ctx context.Context, m *UserPaperLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserPaperLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserPaperLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserPaperLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserPaperLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserPaperLink mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CustomSummary, DefaultSummary, EditedSummary, PaperChatMessage,
		PaperChatSession, PaperMetadata, Prompt, PromptGroup, ResearchMessage,
		ResearchSession, User, UserPaperLink []ent.Hook
	}
	inters struct {
		CustomSummary, DefaultSummary, EditedSummary, PaperChatMessage,
		PaperChatSession, PaperMetadata, Prompt, PromptGroup, ResearchMessage,
		ResearchSession, User, UserPaperLink []ent.Interceptor
	}
)
