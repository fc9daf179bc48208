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
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
)

// ScanLogQuery is the builder for querying ScanLog entities.
type ScanLogQuery struct {
	config
	ctx        *QueryContext
	order      []scanlog.OrderOption
	inters     []Interceptor
	predicates []predicate.ScanLog
	withQrCode *QRCodeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScanLogQuery builder.
func (slq *ScanLogQuery) Where(ps ...predicate.ScanLog) *ScanLogQuery {
	slq.predicates = append(slq.predicates, ps...)
	return slq
}

// Limit the number of records to be returned by this query.
func (slq *ScanLogQuery) Limit(limit int) *ScanLogQuery {
	slq.ctx.Limit = &limit
	return slq
}

// Offset to start from.
func (slq *ScanLogQuery) Offset(offset int) *ScanLogQuery {
	slq.ctx.Offset = &offset
	return slq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (slq *ScanLogQuery) Unique(unique bool) *ScanLogQuery {
	slq.ctx.Unique = &unique
	return slq
}

// Order specifies how the records should be ordered.
func (slq *ScanLogQuery) Order(o ...scanlog.OrderOption) *ScanLogQuery {
	slq.order = append(slq.order, o...)
	return slq
}

// QueryQrCode chains the current query on the "qr_code" edge.
func (slq *ScanLogQuery) QueryQrCode() *QRCodeQuery {
	query := (&QRCodeClient{config: slq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := slq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := slq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scanlog.Table, scanlog.FieldID, selector),
			sqlgraph.To(qrcode.Table, qrcode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, scanlog.QrCodeTable, scanlog.QrCodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(slq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScanLog entity from the query.
// Returns a *NotFoundError when no ScanLog was found.
func (slq *ScanLogQuery) First(ctx context.Context) (*ScanLog, error) {
	nodes, err := slq.Limit(1).All(setContextOp(ctx, slq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scanlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (slq *ScanLogQuery) FirstX(ctx context.Context) *ScanLog {
	node, err := slq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScanLog ID from the query.
// Returns a *NotFoundError when no ScanLog ID was found.
func (slq *ScanLogQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = slq.Limit(1).IDs(setContextOp(ctx, slq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scanlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (slq *ScanLogQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := slq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScanLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScanLog entity is found.
// Returns a *NotFoundError when no ScanLog entities are found.
func (slq *ScanLogQuery) Only(ctx context.Context) (*ScanLog, error) {
	nodes, err := slq.Limit(2).All(setContextOp(ctx, slq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scanlog.Label}
	default:
		return nil, &NotSingularError{scanlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (slq *ScanLogQuery) OnlyX(ctx context.Context) *ScanLog {
	node, err := slq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScanLog ID in the query.
// Returns a *NotSingularError when more than one ScanLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (slq *ScanLogQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = slq.Limit(2).IDs(setContextOp(ctx, slq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scanlog.Label}
	default:
		err = &NotSingularError{scanlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (slq *ScanLogQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := slq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScanLogs.
func (slq *ScanLogQuery) All(ctx context.Context) ([]*ScanLog, error) {
	ctx = setContextOp(ctx, slq.ctx, ent.OpQueryAll)
	if err := slq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScanLog, *ScanLogQuery]()
	return withInterceptors[[]*ScanLog](ctx, slq, qr, slq.inters)
}

// AllX is like All, but panics if an error occurs.
func (slq *ScanLogQuery) AllX(ctx context.Context) []*ScanLog {
	nodes, err := slq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScanLog IDs.
func (slq *ScanLogQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if slq.ctx.Unique == nil && slq.path != nil {
		slq.Unique(true)
	}
	ctx = setContextOp(ctx, slq.ctx, ent.OpQueryIDs)
	if err = slq.Select(scanlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (slq *ScanLogQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := slq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (slq *ScanLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, slq.ctx, ent.OpQueryCount)
	if err := slq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, slq, querierCount[*ScanLogQuery](), slq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (slq *ScanLogQuery) CountX(ctx context.Context) int {
	count, err := slq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (slq *ScanLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, slq.ctx, ent.OpQueryExist)
	switch _, err := slq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (slq *ScanLogQuery) ExistX(ctx context.Context) bool {
	exist, err := slq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScanLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (slq *ScanLogQuery) Clone() *ScanLogQuery {
	if slq == nil {
		return nil
	}
	return &ScanLogQuery{
		config:     slq.config,
		ctx:        slq.ctx.Clone(),
		order:      append([]scanlog.OrderOption{}, slq.order...),
		inters:     append([]Interceptor{}, slq.inters...),
		predicates: append([]predicate.ScanLog{}, slq.predicates...),
		withQrCode: slq.withQrCode.Clone(),
		// clone intermediate query.
		sql:  slq.sql.Clone(),
		path: slq.path,
	}
}

// WithQrCode tells the query-builder to eager-load the nodes that are connected to
// the "qr_code" edge. The optional arguments are used to configure the query builder of the edge.
func (slq *ScanLogQuery) WithQrCode(opts ...func(*QRCodeQuery)) *ScanLogQuery {
	query := (&QRCodeClient{config: slq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	slq.withQrCode = query
	return slq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		QrCodeID uuid.UUID `json:"qr_code_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScanLog.Query().
//		GroupBy(scanlog.FieldQrCodeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (slq *ScanLogQuery) GroupBy(field string, fields ...string) *ScanLogGroupBy {
	slq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScanLogGroupBy{build: slq}
	grbuild.flds = &slq.ctx.Fields
	grbuild.label = scanlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		QrCodeID uuid.UUID `json:"qr_code_id,omitempty"`
//	}
//
//	client.ScanLog.Query().
//		Select(scanlog.FieldQrCodeID).
//		Scan(ctx, &v)
func (slq *ScanLogQuery) Select(fields ...string) *ScanLogSelect {
	slq.ctx.Fields = append(slq.ctx.Fields, fields...)
	sbuild := &ScanLogSelect{ScanLogQuery: slq}
	sbuild.label = scanlog.Label
	sbuild.flds, sbuild.scan = &slq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScanLogSelect configured with the given aggregations.
func (slq *ScanLogQuery) Aggregate(fns ...AggregateFunc) *ScanLogSelect {
	return slq.Select().Aggregate(fns...)
}

func (slq *ScanLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range slq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, slq); err != nil {
				return err
			}
		}
	}
	for _, f := range slq.ctx.Fields {
		if !scanlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if slq.path != nil {
		prev, err := slq.path(ctx)
		if err != nil {
			return err
		}
		slq.sql = prev
	}
	return nil
}

func (slq *ScanLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScanLog, error) {
	var (
		nodes       = []*ScanLog{}
		_spec       = slq.querySpec()
		loadedTypes = [1]bool{
			slq.withQrCode != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScanLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScanLog{config: slq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, slq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := slq.withQrCode; query != nil {
		if err := slq.loadQrCode(ctx, query, nodes, nil,
			func(n *ScanLog, e *QRCode) { n.Edges.QrCode = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (slq *ScanLogQuery) loadQrCode(ctx context.Context, query *QRCodeQuery, nodes []*ScanLog, init func(*ScanLog), assign func(*ScanLog, *QRCode)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ScanLog)
	for i := range nodes {
		fk := nodes[i].QrCodeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(qrcode.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "qr_code_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (slq *ScanLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := slq.querySpec()
	_spec.Node.Columns = slq.ctx.Fields
	if len(slq.ctx.Fields) > 0 {
		_spec.Unique = slq.ctx.Unique != nil && *slq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, slq.driver, _spec)
}

func (slq *ScanLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scanlog.Table, scanlog.Columns, sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID))
	_spec.From = slq.sql
	if unique := slq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if slq.path != nil {
		_spec.Unique = true
	}
	if fields := slq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanlog.FieldID)
		for i := range fields {
			if fields[i] != scanlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if slq.withQrCode != nil {
			_spec.Node.AddColumnOnce(scanlog.FieldQrCodeID)
		}
	}
	if ps := slq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := slq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := slq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := slq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (slq *ScanLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(slq.driver.Dialect())
	t1 := builder.Table(scanlog.Table)
	columns := slq.ctx.Fields
	if len(columns) == 0 {
		columns = scanlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if slq.sql != nil {
		selector = slq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if slq.ctx.Unique != nil && *slq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range slq.predicates {
		p(selector)
	}
	for _, p := range slq.order {
		p(selector)
	}
	if offset := slq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := slq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ScanLogGroupBy is the group-by builder for ScanLog entities.
type ScanLogGroupBy struct {
	selector
	build *ScanLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (slgb *ScanLogGroupBy) Aggregate(fns ...AggregateFunc) *ScanLogGroupBy {
	slgb.fns = append(slgb.fns, fns...)
	return slgb
}

// Scan applies the selector query and scans the result into the given value.
func (slgb *ScanLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, slgb.build.ctx, ent.OpQueryGroupBy)
	if err := slgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScanLogQuery, *ScanLogGroupBy](ctx, slgb.build, slgb, slgb.build.inters, v)
}

func (slgb *ScanLogGroupBy) sqlScan(ctx context.Context, root *ScanLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(slgb.fns))
	for _, fn := range slgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*slgb.flds)+len(slgb.fns))
		for _, f := range *slgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*slgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := slgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ScanLogSelect is the builder for selecting fields of ScanLog entities.
type ScanLogSelect struct {
	*ScanLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sls *ScanLogSelect) Aggregate(fns ...AggregateFunc) *ScanLogSelect {
	sls.fns = append(sls.fns, fns...)
	return sls
}

// Scan applies the selector query and scans the result into the given value.
func (sls *ScanLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sls.ctx, ent.OpQuerySelect)
	if err := sls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScanLogQuery, *ScanLogSelect](ctx, sls.ScanLogQuery, sls, sls.inters, v)
}

func (sls *ScanLogSelect) sqlScan(ctx context.Context, root *ScanLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sls.fns))
	for _, fn := range sls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
