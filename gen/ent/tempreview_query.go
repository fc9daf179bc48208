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
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// TempReviewQuery is the builder for querying TempReview entities.
type TempReviewQuery struct {
	config
	ctx        *QueryContext
	order      []tempreview.OrderOption
	inters     []Interceptor
	predicates []predicate.TempReview
	withQrCode *QRCodeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TempReviewQuery builder.
func (trq *TempReviewQuery) Where(ps ...predicate.TempReview) *TempReviewQuery {
	trq.predicates = append(trq.predicates, ps...)
	return trq
}

// Limit the number of records to be returned by this query.
func (trq *TempReviewQuery) Limit(limit int) *TempReviewQuery {
	trq.ctx.Limit = &limit
	return trq
}

// Offset to start from.
func (trq *TempReviewQuery) Offset(offset int) *TempReviewQuery {
	trq.ctx.Offset = &offset
	return trq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (trq *TempReviewQuery) Unique(unique bool) *TempReviewQuery {
	trq.ctx.Unique = &unique
	return trq
}

// Order specifies how the records should be ordered.
func (trq *TempReviewQuery) Order(o ...tempreview.OrderOption) *TempReviewQuery {
	trq.order = append(trq.order, o...)
	return trq
}

// QueryQrCode chains the current query on the "qr_code" edge.
func (trq *TempReviewQuery) QueryQrCode() *QRCodeQuery {
	query := (&QRCodeClient{config: trq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := trq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := trq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(tempreview.Table, tempreview.FieldID, selector),
			sqlgraph.To(qrcode.Table, qrcode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tempreview.QrCodeTable, tempreview.QrCodeColumn),
		)
		fromU = sqlgraph.SetNeighbors(trq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TempReview entity from the query.
// Returns a *NotFoundError when no TempReview was found.
func (trq *TempReviewQuery) First(ctx context.Context) (*TempReview, error) {
	nodes, err := trq.Limit(1).All(setContextOp(ctx, trq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tempreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (trq *TempReviewQuery) FirstX(ctx context.Context) *TempReview {
	node, err := trq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TempReview ID from the query.
// Returns a *NotFoundError when no TempReview ID was found.
func (trq *TempReviewQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = trq.Limit(1).IDs(setContextOp(ctx, trq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tempreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (trq *TempReviewQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := trq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TempReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TempReview entity is found.
// Returns a *NotFoundError when no TempReview entities are found.
func (trq *TempReviewQuery) Only(ctx context.Context) (*TempReview, error) {
	nodes, err := trq.Limit(2).All(setContextOp(ctx, trq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tempreview.Label}
	default:
		return nil, &NotSingularError{tempreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (trq *TempReviewQuery) OnlyX(ctx context.Context) *TempReview {
	node, err := trq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TempReview ID in the query.
// Returns a *NotSingularError when more than one TempReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (trq *TempReviewQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = trq.Limit(2).IDs(setContextOp(ctx, trq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tempreview.Label}
	default:
		err = &NotSingularError{tempreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (trq *TempReviewQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := trq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TempReviews.
func (trq *TempReviewQuery) All(ctx context.Context) ([]*TempReview, error) {
	ctx = setContextOp(ctx, trq.ctx, ent.OpQueryAll)
	if err := trq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TempReview, *TempReviewQuery]()
	return withInterceptors[[]*TempReview](ctx, trq, qr, trq.inters)
}

// AllX is like All, but panics if an error occurs.
func (trq *TempReviewQuery) AllX(ctx context.Context) []*TempReview {
	nodes, err := trq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TempReview IDs.
func (trq *TempReviewQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if trq.ctx.Unique == nil && trq.path != nil {
		trq.Unique(true)
	}
	ctx = setContextOp(ctx, trq.ctx, ent.OpQueryIDs)
	if err = trq.Select(tempreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (trq *TempReviewQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := trq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (trq *TempReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, trq.ctx, ent.OpQueryCount)
	if err := trq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, trq, querierCount[*TempReviewQuery](), trq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (trq *TempReviewQuery) CountX(ctx context.Context) int {
	count, err := trq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (trq *TempReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, trq.ctx, ent.OpQueryExist)
	switch _, err := trq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (trq *TempReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := trq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TempReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (trq *TempReviewQuery) Clone() *TempReviewQuery {
	if trq == nil {
		return nil
	}
	return &TempReviewQuery{
		config:     trq.config,
		ctx:        trq.ctx.Clone(),
		order:      append([]tempreview.OrderOption{}, trq.order...),
		inters:     append([]Interceptor{}, trq.inters...),
		predicates: append([]predicate.TempReview{}, trq.predicates...),
		withQrCode: trq.withQrCode.Clone(),
		// clone intermediate query.
		sql:  trq.sql.Clone(),
		path: trq.path,
	}
}

// WithQrCode tells the query-builder to eager-load the nodes that are connected to
// the "qr_code" edge. The optional arguments are used to configure the query builder of the edge.
func (trq *TempReviewQuery) WithQrCode(opts ...func(*QRCodeQuery)) *TempReviewQuery {
	query := (&QRCodeClient{config: trq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	trq.withQrCode = query
	return trq
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
//	client.TempReview.Query().
//		GroupBy(tempreview.FieldJobID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (trq *TempReviewQuery) GroupBy(field string, fields ...string) *TempReviewGroupBy {
	trq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TempReviewGroupBy{build: trq}
	grbuild.flds = &trq.ctx.Fields
	grbuild.label = tempreview.Label
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
//	client.TempReview.Query().
//		Select(tempreview.FieldJobID).
//		Scan(ctx, &v)
func (trq *TempReviewQuery) Select(fields ...string) *TempReviewSelect {
	trq.ctx.Fields = append(trq.ctx.Fields, fields...)
	sbuild := &TempReviewSelect{TempReviewQuery: trq}
	sbuild.label = tempreview.Label
	sbuild.flds, sbuild.scan = &trq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TempReviewSelect configured with the given aggregations.
func (trq *TempReviewQuery) Aggregate(fns ...AggregateFunc) *TempReviewSelect {
	return trq.Select().Aggregate(fns...)
}

func (trq *TempReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range trq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, trq); err != nil {
				return err
			}
		}
	}
	for _, f := range trq.ctx.Fields {
		if !tempreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if trq.path != nil {
		prev, err := trq.path(ctx)
		if err != nil {
			return err
		}
		trq.sql = prev
	}
	return nil
}

func (trq *TempReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TempReview, error) {
	var (
		nodes       = []*TempReview{}
		_spec       = trq.querySpec()
		loadedTypes = [1]bool{
			trq.withQrCode != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TempReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TempReview{config: trq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, trq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := trq.withQrCode; query != nil {
		if err := trq.loadQrCode(ctx, query, nodes, nil,
			func(n *TempReview, e *QRCode) { n.Edges.QrCode = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (trq *TempReviewQuery) loadQrCode(ctx context.Context, query *QRCodeQuery, nodes []*TempReview, init func(*TempReview), assign func(*TempReview, *QRCode)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TempReview)
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

func (trq *TempReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := trq.querySpec()
	_spec.Node.Columns = trq.ctx.Fields
	if len(trq.ctx.Fields) > 0 {
		_spec.Unique = trq.ctx.Unique != nil && *trq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, trq.driver, _spec)
}

func (trq *TempReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tempreview.Table, tempreview.Columns, sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID))
	_spec.From = trq.sql
	if unique := trq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if trq.path != nil {
		_spec.Unique = true
	}
	if fields := trq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tempreview.FieldID)
		for i := range fields {
			if fields[i] != tempreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if trq.withQrCode != nil {
			_spec.Node.AddColumnOnce(tempreview.FieldQrCodeID)
		}
	}
	if ps := trq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := trq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := trq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := trq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (trq *TempReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(trq.driver.Dialect())
	t1 := builder.Table(tempreview.Table)
	columns := trq.ctx.Fields
	if len(columns) == 0 {
		columns = tempreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if trq.sql != nil {
		selector = trq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if trq.ctx.Unique != nil && *trq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range trq.predicates {
		p(selector)
	}
	for _, p := range trq.order {
		p(selector)
	}
	if offset := trq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := trq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TempReviewGroupBy is the group-by builder for TempReview entities.
type TempReviewGroupBy struct {
	selector
	build *TempReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (trgb *TempReviewGroupBy) Aggregate(fns ...AggregateFunc) *TempReviewGroupBy {
	trgb.fns = append(trgb.fns, fns...)
	return trgb
}

// Scan applies the selector query and scans the result into the given value.
func (trgb *TempReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, trgb.build.ctx, ent.OpQueryGroupBy)
	if err := trgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TempReviewQuery, *TempReviewGroupBy](ctx, trgb.build, trgb, trgb.build.inters, v)
}

func (trgb *TempReviewGroupBy) sqlScan(ctx context.Context, root *TempReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(trgb.fns))
	for _, fn := range trgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*trgb.flds)+len(trgb.fns))
		for _, f := range *trgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*trgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := trgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TempReviewSelect is the builder for selecting fields of TempReview entities.
type TempReviewSelect struct {
	*TempReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (trs *TempReviewSelect) Aggregate(fns ...AggregateFunc) *TempReviewSelect {
	trs.fns = append(trs.fns, fns...)
	return trs
}

// Scan applies the selector query and scans the result into the given value.
func (trs *TempReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, trs.ctx, ent.OpQuerySelect)
	if err := trs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TempReviewQuery, *TempReviewSelect](ctx, trs.TempReviewQuery, trs, trs.inters, v)
}

func (trs *TempReviewSelect) sqlScan(ctx context.Context, root *TempReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(trs.fns))
	for _, fn := range trs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*trs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := trs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
