// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// QRCode is the client for interacting with the QRCode builders.
	QRCode *QRCodeClient
	// Review is the client for interacting with the Review builders.
	Review *ReviewClient
	// ScanLog is the client for interacting with the ScanLog builders.
	ScanLog *ScanLogClient
	// TempReview is the client for interacting with the TempReview builders.
	TempReview *TempReviewClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.QRCode = NewQRCodeClient(c.config)
	c.Review = NewReviewClient(c.config)
	c.ScanLog = NewScanLogClient(c.config)
	c.TempReview = NewTempReviewClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		QRCode:     NewQRCodeClient(cfg),
		Review:     NewReviewClient(cfg),
		ScanLog:    NewScanLogClient(cfg),
		TempReview: NewTempReviewClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		QRCode:     NewQRCodeClient(cfg),
		Review:     NewReviewClient(cfg),
		ScanLog:    NewScanLogClient(cfg),
		TempReview: NewTempReviewClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		QRCode.
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
	c.QRCode.Use(hooks...)
	c.Review.Use(hooks...)
	c.ScanLog.Use(hooks...)
	c.TempReview.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.QRCode.Intercept(interceptors...)
	c.Review.Intercept(interceptors...)
	c.ScanLog.Intercept(interceptors...)
	c.TempReview.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QRCodeMutation:
		return c.QRCode.mutate(ctx, m)
	case *ReviewMutation:
		return c.Review.mutate(ctx, m)
	case *ScanLogMutation:
		return c.ScanLog.mutate(ctx, m)
	case *TempReviewMutation:
		return c.TempReview.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QRCodeClient is a client for the QRCode schema.
type QRCodeClient struct {
	config
}

// NewQRCodeClient returns a client for the QRCode from the given config.
func NewQRCodeClient(c config) *QRCodeClient {
	return &QRCodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `qrcode.Hooks(f(g(h())))`.
func (c *QRCodeClient) Use(hooks ...Hook) {
	c.hooks.QRCode = append(c.hooks.QRCode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `qrcode.Intercept(f(g(h())))`.
func (c *QRCodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.QRCode = append(c.inters.QRCode, interceptors...)
}

// Create returns a builder for creating a QRCode entity.
func (c *QRCodeClient) Create() *QRCodeCreate {
	mutation := newQRCodeMutation(c.config, OpCreate)
	return &QRCodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QRCode entities.
func (c *QRCodeClient) CreateBulk(builders ...*QRCodeCreate) *QRCodeCreateBulk {
	return &QRCodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QRCodeClient) MapCreateBulk(slice any, setFunc func(*QRCodeCreate, int)) *QRCodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QRCodeCreateBulk{err: fmt.Errorf("calling to QRCodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QRCodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QRCodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QRCode.
func (c *QRCodeClient) Update() *QRCodeUpdate {
	mutation := newQRCodeMutation(c.config, OpUpdate)
	return &QRCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QRCodeClient) UpdateOne(qc *QRCode) *QRCodeUpdateOne {
	mutation := newQRCodeMutation(c.config, OpUpdateOne, withQRCode(qc))
	return &QRCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QRCodeClient) UpdateOneID(id uuid.UUID) *QRCodeUpdateOne {
	mutation := newQRCodeMutation(c.config, OpUpdateOne, withQRCodeID(id))
	return &QRCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QRCode.
func (c *QRCodeClient) Delete() *QRCodeDelete {
	mutation := newQRCodeMutation(c.config, OpDelete)
	return &QRCodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QRCodeClient) DeleteOne(qc *QRCode) *QRCodeDeleteOne {
	return c.DeleteOneID(qc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QRCodeClient) DeleteOneID(id uuid.UUID) *QRCodeDeleteOne {
	builder := c.Delete().Where(qrcode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QRCodeDeleteOne{builder}
}

// Query returns a query builder for QRCode.
func (c *QRCodeClient) Query() *QRCodeQuery {
	return &QRCodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQRCode},
		inters: c.Interceptors(),
	}
}

// Get returns a QRCode entity by its id.
func (c *QRCodeClient) Get(ctx context.Context, id uuid.UUID) (*QRCode, error) {
	return c.Query().Where(qrcode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QRCodeClient) GetX(ctx context.Context, id uuid.UUID) *QRCode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTempReviews queries the temp_reviews edge of a QRCode.
func (c *QRCodeClient) QueryTempReviews(qc *QRCode) *TempReviewQuery {
	query := (&TempReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := qc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qrcode.Table, qrcode.FieldID, id),
			sqlgraph.To(tempreview.Table, tempreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qrcode.TempReviewsTable, qrcode.TempReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(qc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReviews queries the reviews edge of a QRCode.
func (c *QRCodeClient) QueryReviews(qc *QRCode) *ReviewQuery {
	query := (&ReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := qc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qrcode.Table, qrcode.FieldID, id),
			sqlgraph.To(review.Table, review.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qrcode.ReviewsTable, qrcode.ReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(qc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScanLogs queries the scan_logs edge of a QRCode.
func (c *QRCodeClient) QueryScanLogs(qc *QRCode) *ScanLogQuery {
	query := (&ScanLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := qc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qrcode.Table, qrcode.FieldID, id),
			sqlgraph.To(scanlog.Table, scanlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, qrcode.ScanLogsTable, qrcode.ScanLogsColumn),
		)
		fromV = sqlgraph.Neighbors(qc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QRCodeClient) Hooks() []Hook {
	return c.hooks.QRCode
}

// Interceptors returns the client interceptors.
func (c *QRCodeClient) Interceptors() []Interceptor {
	return c.inters.QRCode
}

func (c *QRCodeClient) mutate(ctx context.Context, m *QRCodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QRCodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QRCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QRCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QRCodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QRCode mutation op: %q", m.Op())
	}
}

// ReviewClient is a client for the Review schema.
type ReviewClient struct {
	config
}

// NewReviewClient returns a client for the Review from the given config.
func NewReviewClient(c config) *ReviewClient {
	return &ReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `review.Hooks(f(g(h())))`.
func (c *ReviewClient) Use(hooks ...Hook) {
	c.hooks.Review = append(c.hooks.Review, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `review.Intercept(f(g(h())))`.
func (c *ReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.Review = append(c.inters.Review, interceptors...)
}

// Create returns a builder for creating a Review entity.
func (c *ReviewClient) Create() *ReviewCreate {
	mutation := newReviewMutation(c.config, OpCreate)
	return &ReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Review entities.
func (c *ReviewClient) CreateBulk(builders ...*ReviewCreate) *ReviewCreateBulk {
	return &ReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewClient) MapCreateBulk(slice any, setFunc func(*ReviewCreate, int)) *ReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCreateBulk{err: fmt.Errorf("calling to ReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Review.
func (c *ReviewClient) Update() *ReviewUpdate {
	mutation := newReviewMutation(c.config, OpUpdate)
	return &ReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewClient) UpdateOne(r *Review) *ReviewUpdateOne {
	mutation := newReviewMutation(c.config, OpUpdateOne, withReview(r))
	return &ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewClient) UpdateOneID(id uuid.UUID) *ReviewUpdateOne {
	mutation := newReviewMutation(c.config, OpUpdateOne, withReviewID(id))
	return &ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Review.
func (c *ReviewClient) Delete() *ReviewDelete {
	mutation := newReviewMutation(c.config, OpDelete)
	return &ReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewClient) DeleteOne(r *Review) *ReviewDeleteOne {
	return c.DeleteOneID(r.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewClient) DeleteOneID(id uuid.UUID) *ReviewDeleteOne {
	builder := c.Delete().Where(review.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewDeleteOne{builder}
}

// Query returns a query builder for Review.
func (c *ReviewClient) Query() *ReviewQuery {
	return &ReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReview},
		inters: c.Interceptors(),
	}
}

// Get returns a Review entity by its id.
func (c *ReviewClient) Get(ctx context.Context, id uuid.UUID) (*Review, error) {
	return c.Query().Where(review.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewClient) GetX(ctx context.Context, id uuid.UUID) *Review {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQrCode queries the qr_code edge of a Review.
func (c *ReviewClient) QueryQrCode(r *Review) *QRCodeQuery {
	query := (&QRCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := r.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(review.Table, review.FieldID, id),
			sqlgraph.To(qrcode.Table, qrcode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, review.QrCodeTable, review.QrCodeColumn),
		)
		fromV = sqlgraph.Neighbors(r.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReviewClient) Hooks() []Hook {
	return c.hooks.Review
}

// Interceptors returns the client interceptors.
func (c *ReviewClient) Interceptors() []Interceptor {
	return c.inters.Review
}

func (c *ReviewClient) mutate(ctx context.Context, m *ReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Review mutation op: %q", m.Op())
	}
}

// ScanLogClient is a client for the ScanLog schema.
type ScanLogClient struct {
	config
}

// NewScanLogClient returns a client for the ScanLog from the given config.
func NewScanLogClient(c config) *ScanLogClient {
	return &ScanLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanlog.Hooks(f(g(h())))`.
func (c *ScanLogClient) Use(hooks ...Hook) {
	c.hooks.ScanLog = append(c.hooks.ScanLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanlog.Intercept(f(g(h())))`.
func (c *ScanLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanLog = append(c.inters.ScanLog, interceptors...)
}

// Create returns a builder for creating a ScanLog entity.
func (c *ScanLogClient) Create() *ScanLogCreate {
	mutation := newScanLogMutation(c.config, OpCreate)
	return &ScanLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanLog entities.
func (c *ScanLogClient) CreateBulk(builders ...*ScanLogCreate) *ScanLogCreateBulk {
	return &ScanLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanLogClient) MapCreateBulk(slice any, setFunc func(*ScanLogCreate, int)) *ScanLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanLogCreateBulk{err: fmt.Errorf("calling to ScanLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanLog.
func (c *ScanLogClient) Update() *ScanLogUpdate {
	mutation := newScanLogMutation(c.config, OpUpdate)
	return &ScanLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanLogClient) UpdateOne(sl *ScanLog) *ScanLogUpdateOne {
	mutation := newScanLogMutation(c.config, OpUpdateOne, withScanLog(sl))
	return &ScanLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanLogClient) UpdateOneID(id uuid.UUID) *ScanLogUpdateOne {
	mutation := newScanLogMutation(c.config, OpUpdateOne, withScanLogID(id))
	return &ScanLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanLog.
func (c *ScanLogClient) Delete() *ScanLogDelete {
	mutation := newScanLogMutation(c.config, OpDelete)
	return &ScanLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanLogClient) DeleteOne(sl *ScanLog) *ScanLogDeleteOne {
	return c.DeleteOneID(sl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanLogClient) DeleteOneID(id uuid.UUID) *ScanLogDeleteOne {
	builder := c.Delete().Where(scanlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanLogDeleteOne{builder}
}

// Query returns a query builder for ScanLog.
func (c *ScanLogClient) Query() *ScanLogQuery {
	return &ScanLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanLog entity by its id.
func (c *ScanLogClient) Get(ctx context.Context, id uuid.UUID) (*ScanLog, error) {
	return c.Query().Where(scanlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanLogClient) GetX(ctx context.Context, id uuid.UUID) *ScanLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQrCode queries the qr_code edge of a ScanLog.
func (c *ScanLogClient) QueryQrCode(sl *ScanLog) *QRCodeQuery {
	query := (&QRCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sl.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanlog.Table, scanlog.FieldID, id),
			sqlgraph.To(qrcode.Table, qrcode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanlog.QrCodeTable, scanlog.QrCodeColumn),
		)
		fromV = sqlgraph.Neighbors(sl.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanLogClient) Hooks() []Hook {
	return c.hooks.ScanLog
}

// Interceptors returns the client interceptors.
func (c *ScanLogClient) Interceptors() []Interceptor {
	return c.inters.ScanLog
}

func (c *ScanLogClient) mutate(ctx context.Context, m *ScanLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanLog mutation op: %q", m.Op())
	}
}

// TempReviewClient is a client for the TempReview schema.
type TempReviewClient struct {
	config
}

// NewTempReviewClient returns a client for the TempReview from the given config.
func NewTempReviewClient(c config) *TempReviewClient {
	return &TempReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tempreview.Hooks(f(g(h())))`.
func (c *TempReviewClient) Use(hooks ...Hook) {
	c.hooks.TempReview = append(c.hooks.TempReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tempreview.Intercept(f(g(h())))`.
func (c *TempReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.TempReview = append(c.inters.TempReview, interceptors...)
}

// Create returns a builder for creating a TempReview entity.
func (c *TempReviewClient) Create() *TempReviewCreate {
	mutation := newTempReviewMutation(c.config, OpCreate)
	return &TempReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TempReview entities.
func (c *TempReviewClient) CreateBulk(builders ...*TempReviewCreate) *TempReviewCreateBulk {
	return &TempReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TempReviewClient) MapCreateBulk(slice any, setFunc func(*TempReviewCreate, int)) *TempReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TempReviewCreateBulk{err: fmt.Errorf("calling to TempReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TempReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TempReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TempReview.
func (c *TempReviewClient) Update() *TempReviewUpdate {
	mutation := newTempReviewMutation(c.config, OpUpdate)
	return &TempReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TempReviewClient) UpdateOne(tr *TempReview) *TempReviewUpdateOne {
	mutation := newTempReviewMutation(c.config, OpUpdateOne, withTempReview(tr))
	return &TempReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TempReviewClient) UpdateOneID(id uuid.UUID) *TempReviewUpdateOne {
	mutation := newTempReviewMutation(c.config, OpUpdateOne, withTempReviewID(id))
	return &TempReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TempReview.
func (c *TempReviewClient) Delete() *TempReviewDelete {
	mutation := newTempReviewMutation(c.config, OpDelete)
	return &TempReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TempReviewClient) DeleteOne(tr *TempReview) *TempReviewDeleteOne {
	return c.DeleteOneID(tr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TempReviewClient) DeleteOneID(id uuid.UUID) *TempReviewDeleteOne {
	builder := c.Delete().Where(tempreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TempReviewDeleteOne{builder}
}

// Query returns a query builder for TempReview.
func (c *TempReviewClient) Query() *TempReviewQuery {
	return &TempReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTempReview},
		inters: c.Interceptors(),
	}
}

// Get returns a TempReview entity by its id.
func (c *TempReviewClient) Get(ctx context.Context, id uuid.UUID) (*TempReview, error) {
	return c.Query().Where(tempreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TempReviewClient) GetX(ctx context.Context, id uuid.UUID) *TempReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQrCode queries the qr_code edge of a TempReview.
func (c *TempReviewClient) QueryQrCode(tr *TempReview) *QRCodeQuery {
	query := (&QRCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := tr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tempreview.Table, tempreview.FieldID, id),
			sqlgraph.To(qrcode.Table, qrcode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tempreview.QrCodeTable, tempreview.QrCodeColumn),
		)
		fromV = sqlgraph.Neighbors(tr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TempReviewClient) Hooks() []Hook {
	return c.hooks.TempReview
}

// Interceptors returns the client interceptors.
func (c *TempReviewClient) Interceptors() []Interceptor {
	return c.inters.TempReview
}

func (c *TempReviewClient) mutate(ctx context.Context, m *TempReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TempReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TempReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TempReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TempReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TempReview mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		QRCode, Review, ScanLog, TempReview []ent.Hook
	}
	inters struct {
		QRCode, Review, ScanLog, TempReview []ent.Interceptor
	}
)
