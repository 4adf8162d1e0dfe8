// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Archive is the client for interacting with the Archive builders.
	Archive *ArchiveClient
	// Encounter is the client for interacting with the Encounter builders.
	Encounter *EncounterClient
	// EncounterFile is the client for interacting with the EncounterFile builders.
	EncounterFile *EncounterFileClient
	// GlaucomaFinding is the client for interacting with the GlaucomaFinding builders.
	GlaucomaFinding *GlaucomaFindingClient
	// RetinopathyFinding is the client for interacting with the RetinopathyFinding builders.
	RetinopathyFinding *RetinopathyFindingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Archive = NewArchiveClient(c.config)
	c.Encounter = NewEncounterClient(c.config)
	c.EncounterFile = NewEncounterFileClient(c.config)
	c.GlaucomaFinding = NewGlaucomaFindingClient(c.config)
	c.RetinopathyFinding = NewRetinopathyFindingClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Archive:            NewArchiveClient(cfg),
		Encounter:          NewEncounterClient(cfg),
		EncounterFile:      NewEncounterFileClient(cfg),
		GlaucomaFinding:    NewGlaucomaFindingClient(cfg),
		RetinopathyFinding: NewRetinopathyFindingClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Archive:            NewArchiveClient(cfg),
		Encounter:          NewEncounterClient(cfg),
		EncounterFile:      NewEncounterFileClient(cfg),
		GlaucomaFinding:    NewGlaucomaFindingClient(cfg),
		RetinopathyFinding: NewRetinopathyFindingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Archive.
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
	c.Archive.Use(hooks...)
	c.Encounter.Use(hooks...)
	c.EncounterFile.Use(hooks...)
	c.GlaucomaFinding.Use(hooks...)
	c.RetinopathyFinding.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Archive.Intercept(interceptors...)
	c.Encounter.Intercept(interceptors...)
	c.EncounterFile.Intercept(interceptors...)
	c.GlaucomaFinding.Intercept(interceptors...)
	c.RetinopathyFinding.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArchiveMutation:
		return c.Archive.mutate(ctx, m)
	case *EncounterMutation:
		return c.Encounter.mutate(ctx, m)
	case *EncounterFileMutation:
		return c.EncounterFile.mutate(ctx, m)
	case *GlaucomaFindingMutation:
		return c.GlaucomaFinding.mutate(ctx, m)
	case *RetinopathyFindingMutation:
		return c.RetinopathyFinding.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArchiveClient is a client for the Archive schema.
type ArchiveClient struct {
	config
}

// NewArchiveClient returns a client for the Archive from the given config.
func NewArchiveClient(c config) *ArchiveClient {
	return &ArchiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `archive.Hooks(f(g(h())))`.
func (c *ArchiveClient) Use(hooks ...Hook) {
	c.hooks.Archive = append(c.hooks.Archive, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `archive.Intercept(f(g(h())))`.
func (c *ArchiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.Archive = append(c.inters.Archive, interceptors...)
}

// Create returns a builder for creating a Archive entity.
func (c *ArchiveClient) Create() *ArchiveCreate {
	mutation := newArchiveMutation(c.config, OpCreate)
	return &ArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Archive entities.
func (c *ArchiveClient) CreateBulk(builders ...*ArchiveCreate) *ArchiveCreateBulk {
	return &ArchiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArchiveClient) MapCreateBulk(slice any, setFunc func(*ArchiveCreate, int)) *ArchiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArchiveCreateBulk{err: fmt.Errorf("calling to ArchiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArchiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArchiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Archive.
func (c *ArchiveClient) Update() *ArchiveUpdate {
	mutation := newArchiveMutation(c.config, OpUpdate)
	return &ArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArchiveClient) UpdateOne(_m *Archive) *ArchiveUpdateOne {
	mutation := newArchiveMutation(c.config, OpUpdateOne, withArchive(_m))
	return &ArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArchiveClient) UpdateOneID(id uuid.UUID) *ArchiveUpdateOne {
	mutation := newArchiveMutation(c.config, OpUpdateOne, withArchiveID(id))
	return &ArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Archive.
func (c *ArchiveClient) Delete() *ArchiveDelete {
	mutation := newArchiveMutation(c.config, OpDelete)
	return &ArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArchiveClient) DeleteOne(_m *Archive) *ArchiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArchiveClient) DeleteOneID(id uuid.UUID) *ArchiveDeleteOne {
	builder := c.Delete().Where(archive.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArchiveDeleteOne{builder}
}

// Query returns a query builder for Archive.
func (c *ArchiveClient) Query() *ArchiveQuery {
	return &ArchiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArchive},
		inters: c.Interceptors(),
	}
}

// Get returns a Archive entity by its id.
func (c *ArchiveClient) Get(ctx context.Context, id uuid.UUID) (*Archive, error) {
	return c.Query().Where(archive.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArchiveClient) GetX(ctx context.Context, id uuid.UUID) *Archive {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEncounter queries the encounter edge of a Archive.
func (c *ArchiveClient) QueryEncounter(_m *Archive) *EncounterQuery {
	query := (&EncounterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(archive.Table, archive.FieldID, id),
			sqlgraph.To(encounter.Table, encounter.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, archive.EncounterTable, archive.EncounterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArchiveClient) Hooks() []Hook {
	return c.hooks.Archive
}

// Interceptors returns the client interceptors.
func (c *ArchiveClient) Interceptors() []Interceptor {
	return c.inters.Archive
}

func (c *ArchiveClient) mutate(ctx context.Context, m *ArchiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Archive mutation op: %q", m.Op())
	}
}

// EncounterClient is a client for the Encounter schema.
type EncounterClient struct {
	config
}

// NewEncounterClient returns a client for the Encounter from the given config.
func NewEncounterClient(c config) *EncounterClient {
	return &EncounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `encounter.Hooks(f(g(h())))`.
func (c *EncounterClient) Use(hooks ...Hook) {
	c.hooks.Encounter = append(c.hooks.Encounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `encounter.Intercept(f(g(h())))`.
func (c *EncounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Encounter = append(c.inters.Encounter, interceptors...)
}

// Create returns a builder for creating a Encounter entity.
func (c *EncounterClient) Create() *EncounterCreate {
	mutation := newEncounterMutation(c.config, OpCreate)
	return &EncounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Encounter entities.
func (c *EncounterClient) CreateBulk(builders ...*EncounterCreate) *EncounterCreateBulk {
	return &EncounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EncounterClient) MapCreateBulk(slice any, setFunc func(*EncounterCreate, int)) *EncounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EncounterCreateBulk{err: fmt.Errorf("calling to EncounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EncounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EncounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Encounter.
func (c *EncounterClient) Update() *EncounterUpdate {
	mutation := newEncounterMutation(c.config, OpUpdate)
	return &EncounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EncounterClient) UpdateOne(_m *Encounter) *EncounterUpdateOne {
	mutation := newEncounterMutation(c.config, OpUpdateOne, withEncounter(_m))
	return &EncounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EncounterClient) UpdateOneID(id uuid.UUID) *EncounterUpdateOne {
	mutation := newEncounterMutation(c.config, OpUpdateOne, withEncounterID(id))
	return &EncounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Encounter.
func (c *EncounterClient) Delete() *EncounterDelete {
	mutation := newEncounterMutation(c.config, OpDelete)
	return &EncounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EncounterClient) DeleteOne(_m *Encounter) *EncounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EncounterClient) DeleteOneID(id uuid.UUID) *EncounterDeleteOne {
	builder := c.Delete().Where(encounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EncounterDeleteOne{builder}
}

// Query returns a query builder for Encounter.
func (c *EncounterClient) Query() *EncounterQuery {
	return &EncounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEncounter},
		inters: c.Interceptors(),
	}
}

// Get returns a Encounter entity by its id.
func (c *EncounterClient) Get(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	return c.Query().Where(encounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EncounterClient) GetX(ctx context.Context, id uuid.UUID) *Encounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArchive queries the archive edge of a Encounter.
func (c *EncounterClient) QueryArchive(_m *Encounter) *ArchiveQuery {
	query := (&ArchiveClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, id),
			sqlgraph.To(archive.Table, archive.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, encounter.ArchiveTable, encounter.ArchiveColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Encounter.
func (c *EncounterClient) QueryFiles(_m *Encounter) *EncounterFileQuery {
	query := (&EncounterFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, id),
			sqlgraph.To(encounterfile.Table, encounterfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.FilesTable, encounter.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRetinopathyFindings queries the retinopathy_findings edge of a Encounter.
func (c *EncounterClient) QueryRetinopathyFindings(_m *Encounter) *RetinopathyFindingQuery {
	query := (&RetinopathyFindingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, id),
			sqlgraph.To(retinopathyfinding.Table, retinopathyfinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.RetinopathyFindingsTable, encounter.RetinopathyFindingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGlaucomaFindings queries the glaucoma_findings edge of a Encounter.
func (c *EncounterClient) QueryGlaucomaFindings(_m *Encounter) *GlaucomaFindingQuery {
	query := (&GlaucomaFindingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(encounter.Table, encounter.FieldID, id),
			sqlgraph.To(glaucomafinding.Table, glaucomafinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, encounter.GlaucomaFindingsTable, encounter.GlaucomaFindingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EncounterClient) Hooks() []Hook {
	return c.hooks.Encounter
}

// Interceptors returns the client interceptors.
func (c *EncounterClient) Interceptors() []Interceptor {
	return c.inters.Encounter
}

func (c *EncounterClient) mutate(ctx context.Context, m *EncounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EncounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EncounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EncounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EncounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Encounter mutation op: %q", m.Op())
	}
}

// EncounterFileClient is a client for the EncounterFile schema.
type EncounterFileClient struct {
	config
}

// NewEncounterFileClient returns a client for the EncounterFile from the given config.
func NewEncounterFileClient(c config) *EncounterFileClient {
	return &EncounterFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `encounterfile.Hooks(f(g(h())))`.
func (c *EncounterFileClient) Use(hooks ...Hook) {
	c.hooks.EncounterFile = append(c.hooks.EncounterFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `encounterfile.Intercept(f(g(h())))`.
func (c *EncounterFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.EncounterFile = append(c.inters.EncounterFile, interceptors...)
}

// Create returns a builder for creating a EncounterFile entity.
func (c *EncounterFileClient) Create() *EncounterFileCreate {
	mutation := newEncounterFileMutation(c.config, OpCreate)
	return &EncounterFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EncounterFile entities.
func (c *EncounterFileClient) CreateBulk(builders ...*EncounterFileCreate) *EncounterFileCreateBulk {
	return &EncounterFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EncounterFileClient) MapCreateBulk(slice any, setFunc func(*EncounterFileCreate, int)) *EncounterFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EncounterFileCreateBulk{err: fmt.Errorf("calling to EncounterFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EncounterFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EncounterFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EncounterFile.
func (c *EncounterFileClient) Update() *EncounterFileUpdate {
	mutation := newEncounterFileMutation(c.config, OpUpdate)
	return &EncounterFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EncounterFileClient) UpdateOne(_m *EncounterFile) *EncounterFileUpdateOne {
	mutation := newEncounterFileMutation(c.config, OpUpdateOne, withEncounterFile(_m))
	return &EncounterFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EncounterFileClient) UpdateOneID(id uuid.UUID) *EncounterFileUpdateOne {
	mutation := newEncounterFileMutation(c.config, OpUpdateOne, withEncounterFileID(id))
	return &EncounterFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EncounterFile.
func (c *EncounterFileClient) Delete() *EncounterFileDelete {
	mutation := newEncounterFileMutation(c.config, OpDelete)
	return &EncounterFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EncounterFileClient) DeleteOne(_m *EncounterFile) *EncounterFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EncounterFileClient) DeleteOneID(id uuid.UUID) *EncounterFileDeleteOne {
	builder := c.Delete().Where(encounterfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EncounterFileDeleteOne{builder}
}

// Query returns a query builder for EncounterFile.
func (c *EncounterFileClient) Query() *EncounterFileQuery {
	return &EncounterFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEncounterFile},
		inters: c.Interceptors(),
	}
}

// Get returns a EncounterFile entity by its id.
func (c *EncounterFileClient) Get(ctx context.Context, id uuid.UUID) (*EncounterFile, error) {
	return c.Query().Where(encounterfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EncounterFileClient) GetX(ctx context.Context, id uuid.UUID) *EncounterFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEncounter queries the encounter edge of a EncounterFile.
func (c *EncounterFileClient) QueryEncounter(_m *EncounterFile) *EncounterQuery {
	query := (&EncounterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(encounterfile.Table, encounterfile.FieldID, id),
			sqlgraph.To(encounter.Table, encounter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, encounterfile.EncounterTable, encounterfile.EncounterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EncounterFileClient) Hooks() []Hook {
	return c.hooks.EncounterFile
}

// Interceptors returns the client interceptors.
func (c *EncounterFileClient) Interceptors() []Interceptor {
	return c.inters.EncounterFile
}

func (c *EncounterFileClient) mutate(ctx context.Context, m *EncounterFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EncounterFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EncounterFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EncounterFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EncounterFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EncounterFile mutation op: %q", m.Op())
	}
}

// GlaucomaFindingClient is a client for the GlaucomaFinding schema.
type GlaucomaFindingClient struct {
	config
}

// NewGlaucomaFindingClient returns a client for the GlaucomaFinding from the given config.
func NewGlaucomaFindingClient(c config) *GlaucomaFindingClient {
	return &GlaucomaFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `glaucomafinding.Hooks(f(g(h())))`.
func (c *GlaucomaFindingClient) Use(hooks ...Hook) {
	c.hooks.GlaucomaFinding = append(c.hooks.GlaucomaFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `glaucomafinding.Intercept(f(g(h())))`.
func (c *GlaucomaFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.GlaucomaFinding = append(c.inters.GlaucomaFinding, interceptors...)
}

// Create returns a builder for creating a GlaucomaFinding entity.
func (c *GlaucomaFindingClient) Create() *GlaucomaFindingCreate {
	mutation := newGlaucomaFindingMutation(c.config, OpCreate)
	return &GlaucomaFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GlaucomaFinding entities.
func (c *GlaucomaFindingClient) CreateBulk(builders ...*GlaucomaFindingCreate) *GlaucomaFindingCreateBulk {
	return &GlaucomaFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GlaucomaFindingClient) MapCreateBulk(slice any, setFunc func(*GlaucomaFindingCreate, int)) *GlaucomaFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GlaucomaFindingCreateBulk{err: fmt.Errorf("calling to GlaucomaFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GlaucomaFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GlaucomaFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GlaucomaFinding.
func (c *GlaucomaFindingClient) Update() *GlaucomaFindingUpdate {
	mutation := newGlaucomaFindingMutation(c.config, OpUpdate)
	return &GlaucomaFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GlaucomaFindingClient) UpdateOne(_m *GlaucomaFinding) *GlaucomaFindingUpdateOne {
	mutation := newGlaucomaFindingMutation(c.config, OpUpdateOne, withGlaucomaFinding(_m))
	return &GlaucomaFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GlaucomaFindingClient) UpdateOneID(id uuid.UUID) *GlaucomaFindingUpdateOne {
	mutation := newGlaucomaFindingMutation(c.config, OpUpdateOne, withGlaucomaFindingID(id))
	return &GlaucomaFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GlaucomaFinding.
func (c *GlaucomaFindingClient) Delete() *GlaucomaFindingDelete {
	mutation := newGlaucomaFindingMutation(c.config, OpDelete)
	return &GlaucomaFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GlaucomaFindingClient) DeleteOne(_m *GlaucomaFinding) *GlaucomaFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GlaucomaFindingClient) DeleteOneID(id uuid.UUID) *GlaucomaFindingDeleteOne {
	builder := c.Delete().Where(glaucomafinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GlaucomaFindingDeleteOne{builder}
}

// Query returns a query builder for GlaucomaFinding.
func (c *GlaucomaFindingClient) Query() *GlaucomaFindingQuery {
	return &GlaucomaFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGlaucomaFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a GlaucomaFinding entity by its id.
func (c *GlaucomaFindingClient) Get(ctx context.Context, id uuid.UUID) (*GlaucomaFinding, error) {
	return c.Query().Where(glaucomafinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GlaucomaFindingClient) GetX(ctx context.Context, id uuid.UUID) *GlaucomaFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEncounter queries the encounter edge of a GlaucomaFinding.
func (c *GlaucomaFindingClient) QueryEncounter(_m *GlaucomaFinding) *EncounterQuery {
	query := (&EncounterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(glaucomafinding.Table, glaucomafinding.FieldID, id),
			sqlgraph.To(encounter.Table, encounter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, glaucomafinding.EncounterTable, glaucomafinding.EncounterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GlaucomaFindingClient) Hooks() []Hook {
	return c.hooks.GlaucomaFinding
}

// Interceptors returns the client interceptors.
func (c *GlaucomaFindingClient) Interceptors() []Interceptor {
	return c.inters.GlaucomaFinding
}

func (c *GlaucomaFindingClient) mutate(ctx context.Context, m *GlaucomaFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GlaucomaFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GlaucomaFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GlaucomaFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GlaucomaFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GlaucomaFinding mutation op: %q", m.Op())
	}
}

// RetinopathyFindingClient is a client for the RetinopathyFinding schema.
type RetinopathyFindingClient struct {
	config
}

// NewRetinopathyFindingClient returns a client for the RetinopathyFinding from the given config.
func NewRetinopathyFindingClient(c config) *RetinopathyFindingClient {
	return &RetinopathyFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `retinopathyfinding.Hooks(f(g(h())))`.
func (c *RetinopathyFindingClient) Use(hooks ...Hook) {
	c.hooks.RetinopathyFinding = append(c.hooks.RetinopathyFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `retinopathyfinding.Intercept(f(g(h())))`.
func (c *RetinopathyFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.RetinopathyFinding = append(c.inters.RetinopathyFinding, interceptors...)
}

// Create returns a builder for creating a RetinopathyFinding entity.
func (c *RetinopathyFindingClient) Create() *RetinopathyFindingCreate {
	mutation := newRetinopathyFindingMutation(c.config, OpCreate)
	return &RetinopathyFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RetinopathyFinding entities.
func (c *RetinopathyFindingClient) CreateBulk(builders ...*RetinopathyFindingCreate) *RetinopathyFindingCreateBulk {
	return &RetinopathyFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RetinopathyFindingClient) MapCreateBulk(slice any, setFunc func(*RetinopathyFindingCreate, int)) *RetinopathyFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RetinopathyFindingCreateBulk{err: fmt.Errorf("calling to RetinopathyFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RetinopathyFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RetinopathyFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RetinopathyFinding.
func (c *RetinopathyFindingClient) Update() *RetinopathyFindingUpdate {
	mutation := newRetinopathyFindingMutation(c.config, OpUpdate)
	return &RetinopathyFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RetinopathyFindingClient) UpdateOne(_m *RetinopathyFinding) *RetinopathyFindingUpdateOne {
	mutation := newRetinopathyFindingMutation(c.config, OpUpdateOne, withRetinopathyFinding(_m))
	return &RetinopathyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RetinopathyFindingClient) UpdateOneID(id uuid.UUID) *RetinopathyFindingUpdateOne {
	mutation := newRetinopathyFindingMutation(c.config, OpUpdateOne, withRetinopathyFindingID(id))
	return &RetinopathyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RetinopathyFinding.
func (c *RetinopathyFindingClient) Delete() *RetinopathyFindingDelete {
	mutation := newRetinopathyFindingMutation(c.config, OpDelete)
	return &RetinopathyFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RetinopathyFindingClient) DeleteOne(_m *RetinopathyFinding) *RetinopathyFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RetinopathyFindingClient) DeleteOneID(id uuid.UUID) *RetinopathyFindingDeleteOne {
	builder := c.Delete().Where(retinopathyfinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RetinopathyFindingDeleteOne{builder}
}

// Query returns a query builder for RetinopathyFinding.
func (c *RetinopathyFindingClient) Query() *RetinopathyFindingQuery {
	return &RetinopathyFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRetinopathyFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a RetinopathyFinding entity by its id.
func (c *RetinopathyFindingClient) Get(ctx context.Context, id uuid.UUID) (*RetinopathyFinding, error) {
	return c.Query().Where(retinopathyfinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RetinopathyFindingClient) GetX(ctx context.Context, id uuid.UUID) *RetinopathyFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEncounter queries the encounter edge of a RetinopathyFinding.
func (c *RetinopathyFindingClient) QueryEncounter(_m *RetinopathyFinding) *EncounterQuery {
	query := (&EncounterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(retinopathyfinding.Table, retinopathyfinding.FieldID, id),
			sqlgraph.To(encounter.Table, encounter.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, retinopathyfinding.EncounterTable, retinopathyfinding.EncounterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RetinopathyFindingClient) Hooks() []Hook {
	return c.hooks.RetinopathyFinding
}

// Interceptors returns the client interceptors.
func (c *RetinopathyFindingClient) Interceptors() []Interceptor {
	return c.inters.RetinopathyFinding
}

func (c *RetinopathyFindingClient) mutate(ctx context.Context, m *RetinopathyFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RetinopathyFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RetinopathyFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RetinopathyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RetinopathyFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RetinopathyFinding mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Archive, Encounter, EncounterFile, GlaucomaFinding,
		RetinopathyFinding []ent.Hook
	}
	inters struct {
		Archive, Encounter, EncounterFile, GlaucomaFinding,
		RetinopathyFinding []ent.Interceptor
	}
)
