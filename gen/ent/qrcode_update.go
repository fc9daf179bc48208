// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// QRCodeUpdate is the builder for updating QRCode entities.
type QRCodeUpdate struct {
	config
	hooks    []Hook
	mutation *QRCodeMutation
}

// Where appends a list predicates to the QRCodeUpdate builder.
func (qcu *QRCodeUpdate) Where(ps ...predicate.QRCode) *QRCodeUpdate {
	qcu.mutation.Where(ps...)
	return qcu
}

// SetBusinessName sets the "business_name" field.
func (qcu *QRCodeUpdate) SetBusinessName(s string) *QRCodeUpdate {
	qcu.mutation.SetBusinessName(s)
	return qcu
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (qcu *QRCodeUpdate) SetNillableBusinessName(s *string) *QRCodeUpdate {
	if s != nil {
		qcu.SetBusinessName(*s)
	}
	return qcu
}

// SetProductSummary sets the "product_summary" field.
func (qcu *QRCodeUpdate) SetProductSummary(s string) *QRCodeUpdate {
	qcu.mutation.SetProductSummary(s)
	return qcu
}

// SetNillableProductSummary sets the "product_summary" field if the given value is not nil.
func (qcu *QRCodeUpdate) SetNillableProductSummary(s *string) *QRCodeUpdate {
	if s != nil {
		qcu.SetProductSummary(*s)
	}
	return qcu
}

// ClearProductSummary clears the value of the "product_summary" field.
func (qcu *QRCodeUpdate) ClearProductSummary() *QRCodeUpdate {
	qcu.mutation.ClearProductSummary()
	return qcu
}

// SetMapsLink sets the "maps_link" field.
func (qcu *QRCodeUpdate) SetMapsLink(s string) *QRCodeUpdate {
	qcu.mutation.SetMapsLink(s)
	return qcu
}

// SetNillableMapsLink sets the "maps_link" field if the given value is not nil.
func (qcu *QRCodeUpdate) SetNillableMapsLink(s *string) *QRCodeUpdate {
	if s != nil {
		qcu.SetMapsLink(*s)
	}
	return qcu
}

// ClearMapsLink clears the value of the "maps_link" field.
func (qcu *QRCodeUpdate) ClearMapsLink() *QRCodeUpdate {
	qcu.mutation.ClearMapsLink()
	return qcu
}

// SetCreatedAt sets the "created_at" field.
func (qcu *QRCodeUpdate) SetCreatedAt(t time.Time) *QRCodeUpdate {
	qcu.mutation.SetCreatedAt(t)
	return qcu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qcu *QRCodeUpdate) SetNillableCreatedAt(t *time.Time) *QRCodeUpdate {
	if t != nil {
		qcu.SetCreatedAt(*t)
	}
	return qcu
}

// AddTempReviewIDs adds the "temp_reviews" edge to the TempReview entity by IDs.
func (qcu *QRCodeUpdate) AddTempReviewIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.AddTempReviewIDs(ids...)
	return qcu
}

// AddTempReviews adds the "temp_reviews" edges to the TempReview entity.
func (qcu *QRCodeUpdate) AddTempReviews(t ...*TempReview) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qcu.AddTempReviewIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (qcu *QRCodeUpdate) AddReviewIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.AddReviewIDs(ids...)
	return qcu
}

// AddReviews adds the "reviews" edges to the Review entity.
func (qcu *QRCodeUpdate) AddReviews(r ...*Review) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return qcu.AddReviewIDs(ids...)
}

// AddScanLogIDs adds the "scan_logs" edge to the ScanLog entity by IDs.
func (qcu *QRCodeUpdate) AddScanLogIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.AddScanLogIDs(ids...)
	return qcu
}

// AddScanLogs adds the "scan_logs" edges to the ScanLog entity.
func (qcu *QRCodeUpdate) AddScanLogs(s ...*ScanLog) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return qcu.AddScanLogIDs(ids...)
}

// Mutation returns the QRCodeMutation object of the builder.
func (qcu *QRCodeUpdate) Mutation() *QRCodeMutation {
	return qcu.mutation
}

// ClearTempReviews clears all "temp_reviews" edges to the TempReview entity.
func (qcu *QRCodeUpdate) ClearTempReviews() *QRCodeUpdate {
	qcu.mutation.ClearTempReviews()
	return qcu
}

// RemoveTempReviewIDs removes the "temp_reviews" edge to TempReview entities by IDs.
func (qcu *QRCodeUpdate) RemoveTempReviewIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.RemoveTempReviewIDs(ids...)
	return qcu
}

// RemoveTempReviews removes "temp_reviews" edges to TempReview entities.
func (qcu *QRCodeUpdate) RemoveTempReviews(t ...*TempReview) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qcu.RemoveTempReviewIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (qcu *QRCodeUpdate) ClearReviews() *QRCodeUpdate {
	qcu.mutation.ClearReviews()
	return qcu
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (qcu *QRCodeUpdate) RemoveReviewIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.RemoveReviewIDs(ids...)
	return qcu
}

// RemoveReviews removes "reviews" edges to Review entities.
func (qcu *QRCodeUpdate) RemoveReviews(r ...*Review) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return qcu.RemoveReviewIDs(ids...)
}

// ClearScanLogs clears all "scan_logs" edges to the ScanLog entity.
func (qcu *QRCodeUpdate) ClearScanLogs() *QRCodeUpdate {
	qcu.mutation.ClearScanLogs()
	return qcu
}

// RemoveScanLogIDs removes the "scan_logs" edge to ScanLog entities by IDs.
func (qcu *QRCodeUpdate) RemoveScanLogIDs(ids ...uuid.UUID) *QRCodeUpdate {
	qcu.mutation.RemoveScanLogIDs(ids...)
	return qcu
}

// RemoveScanLogs removes "scan_logs" edges to ScanLog entities.
func (qcu *QRCodeUpdate) RemoveScanLogs(s ...*ScanLog) *QRCodeUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return qcu.RemoveScanLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qcu *QRCodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qcu.sqlSave, qcu.mutation, qcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qcu *QRCodeUpdate) SaveX(ctx context.Context) int {
	affected, err := qcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qcu *QRCodeUpdate) Exec(ctx context.Context) error {
	_, err := qcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcu *QRCodeUpdate) ExecX(ctx context.Context) {
	if err := qcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qcu *QRCodeUpdate) check() error {
	if v, ok := qcu.mutation.BusinessName(); ok {
		if err := qrcode.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "QRCode.business_name": %w`, err)}
		}
	}
	return nil
}

func (qcu *QRCodeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(qrcode.Table, qrcode.Columns, sqlgraph.NewFieldSpec(qrcode.FieldID, field.TypeUUID))
	if ps := qcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qcu.mutation.BusinessName(); ok {
		_spec.SetField(qrcode.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := qcu.mutation.ProductSummary(); ok {
		_spec.SetField(qrcode.FieldProductSummary, field.TypeString, value)
	}
	if qcu.mutation.ProductSummaryCleared() {
		_spec.ClearField(qrcode.FieldProductSummary, field.TypeString)
	}
	if value, ok := qcu.mutation.MapsLink(); ok {
		_spec.SetField(qrcode.FieldMapsLink, field.TypeString, value)
	}
	if qcu.mutation.MapsLinkCleared() {
		_spec.ClearField(qrcode.FieldMapsLink, field.TypeString)
	}
	if value, ok := qcu.mutation.CreatedAt(); ok {
		_spec.SetField(qrcode.FieldCreatedAt, field.TypeTime, value)
	}
	if qcu.mutation.TempReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.RemovedTempReviewsIDs(); len(nodes) > 0 && !qcu.mutation.TempReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.TempReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if qcu.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !qcu.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if qcu.mutation.ScanLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.RemovedScanLogsIDs(); len(nodes) > 0 && !qcu.mutation.ScanLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcu.mutation.ScanLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, qcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qrcode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qcu.mutation.done = true
	return n, nil
}

// QRCodeUpdateOne is the builder for updating a single QRCode entity.
type QRCodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QRCodeMutation
}

// SetBusinessName sets the "business_name" field.
func (qcuo *QRCodeUpdateOne) SetBusinessName(s string) *QRCodeUpdateOne {
	qcuo.mutation.SetBusinessName(s)
	return qcuo
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (qcuo *QRCodeUpdateOne) SetNillableBusinessName(s *string) *QRCodeUpdateOne {
	if s != nil {
		qcuo.SetBusinessName(*s)
	}
	return qcuo
}

// SetProductSummary sets the "product_summary" field.
func (qcuo *QRCodeUpdateOne) SetProductSummary(s string) *QRCodeUpdateOne {
	qcuo.mutation.SetProductSummary(s)
	return qcuo
}

// SetNillableProductSummary sets the "product_summary" field if the given value is not nil.
func (qcuo *QRCodeUpdateOne) SetNillableProductSummary(s *string) *QRCodeUpdateOne {
	if s != nil {
		qcuo.SetProductSummary(*s)
	}
	return qcuo
}

// ClearProductSummary clears the value of the "product_summary" field.
func (qcuo *QRCodeUpdateOne) ClearProductSummary() *QRCodeUpdateOne {
	qcuo.mutation.ClearProductSummary()
	return qcuo
}

// SetMapsLink sets the "maps_link" field.
func (qcuo *QRCodeUpdateOne) SetMapsLink(s string) *QRCodeUpdateOne {
	qcuo.mutation.SetMapsLink(s)
	return qcuo
}

// SetNillableMapsLink sets the "maps_link" field if the given value is not nil.
func (qcuo *QRCodeUpdateOne) SetNillableMapsLink(s *string) *QRCodeUpdateOne {
	if s != nil {
		qcuo.SetMapsLink(*s)
	}
	return qcuo
}

// ClearMapsLink clears the value of the "maps_link" field.
func (qcuo *QRCodeUpdateOne) ClearMapsLink() *QRCodeUpdateOne {
	qcuo.mutation.ClearMapsLink()
	return qcuo
}

// SetCreatedAt sets the "created_at" field.
func (qcuo *QRCodeUpdateOne) SetCreatedAt(t time.Time) *QRCodeUpdateOne {
	qcuo.mutation.SetCreatedAt(t)
	return qcuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qcuo *QRCodeUpdateOne) SetNillableCreatedAt(t *time.Time) *QRCodeUpdateOne {
	if t != nil {
		qcuo.SetCreatedAt(*t)
	}
	return qcuo
}

// AddTempReviewIDs adds the "temp_reviews" edge to the TempReview entity by IDs.
func (qcuo *QRCodeUpdateOne) AddTempReviewIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.AddTempReviewIDs(ids...)
	return qcuo
}

// AddTempReviews adds the "temp_reviews" edges to the TempReview entity.
func (qcuo *QRCodeUpdateOne) AddTempReviews(t ...*TempReview) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qcuo.AddTempReviewIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (qcuo *QRCodeUpdateOne) AddReviewIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.AddReviewIDs(ids...)
	return qcuo
}

// AddReviews adds the "reviews" edges to the Review entity.
func (qcuo *QRCodeUpdateOne) AddReviews(r ...*Review) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return qcuo.AddReviewIDs(ids...)
}

// AddScanLogIDs adds the "scan_logs" edge to the ScanLog entity by IDs.
func (qcuo *QRCodeUpdateOne) AddScanLogIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.AddScanLogIDs(ids...)
	return qcuo
}

// AddScanLogs adds the "scan_logs" edges to the ScanLog entity.
func (qcuo *QRCodeUpdateOne) AddScanLogs(s ...*ScanLog) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return qcuo.AddScanLogIDs(ids...)
}

// Mutation returns the QRCodeMutation object of the builder.
func (qcuo *QRCodeUpdateOne) Mutation() *QRCodeMutation {
	return qcuo.mutation
}

// ClearTempReviews clears all "temp_reviews" edges to the TempReview entity.
func (qcuo *QRCodeUpdateOne) ClearTempReviews() *QRCodeUpdateOne {
	qcuo.mutation.ClearTempReviews()
	return qcuo
}

// RemoveTempReviewIDs removes the "temp_reviews" edge to TempReview entities by IDs.
func (qcuo *QRCodeUpdateOne) RemoveTempReviewIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.RemoveTempReviewIDs(ids...)
	return qcuo
}

// RemoveTempReviews removes "temp_reviews" edges to TempReview entities.
func (qcuo *QRCodeUpdateOne) RemoveTempReviews(t ...*TempReview) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qcuo.RemoveTempReviewIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (qcuo *QRCodeUpdateOne) ClearReviews() *QRCodeUpdateOne {
	qcuo.mutation.ClearReviews()
	return qcuo
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (qcuo *QRCodeUpdateOne) RemoveReviewIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.RemoveReviewIDs(ids...)
	return qcuo
}

// RemoveReviews removes "reviews" edges to Review entities.
func (qcuo *QRCodeUpdateOne) RemoveReviews(r ...*Review) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return qcuo.RemoveReviewIDs(ids...)
}

// ClearScanLogs clears all "scan_logs" edges to the ScanLog entity.
func (qcuo *QRCodeUpdateOne) ClearScanLogs() *QRCodeUpdateOne {
	qcuo.mutation.ClearScanLogs()
	return qcuo
}

// RemoveScanLogIDs removes the "scan_logs" edge to ScanLog entities by IDs.
func (qcuo *QRCodeUpdateOne) RemoveScanLogIDs(ids ...uuid.UUID) *QRCodeUpdateOne {
	qcuo.mutation.RemoveScanLogIDs(ids...)
	return qcuo
}

// RemoveScanLogs removes "scan_logs" edges to ScanLog entities.
func (qcuo *QRCodeUpdateOne) RemoveScanLogs(s ...*ScanLog) *QRCodeUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return qcuo.RemoveScanLogIDs(ids...)
}

// Where appends a list predicates to the QRCodeUpdate builder.
func (qcuo *QRCodeUpdateOne) Where(ps ...predicate.QRCode) *QRCodeUpdateOne {
	qcuo.mutation.Where(ps...)
	return qcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (qcuo *QRCodeUpdateOne) Select(field string, fields ...string) *QRCodeUpdateOne {
	qcuo.fields = append([]string{field}, fields...)
	return qcuo
}

// Save executes the query and returns the updated QRCode entity.
func (qcuo *QRCodeUpdateOne) Save(ctx context.Context) (*QRCode, error) {
	return withHooks(ctx, qcuo.sqlSave, qcuo.mutation, qcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qcuo *QRCodeUpdateOne) SaveX(ctx context.Context) *QRCode {
	node, err := qcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (qcuo *QRCodeUpdateOne) Exec(ctx context.Context) error {
	_, err := qcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcuo *QRCodeUpdateOne) ExecX(ctx context.Context) {
	if err := qcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qcuo *QRCodeUpdateOne) check() error {
	if v, ok := qcuo.mutation.BusinessName(); ok {
		if err := qrcode.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "QRCode.business_name": %w`, err)}
		}
	}
	return nil
}

func (qcuo *QRCodeUpdateOne) sqlSave(ctx context.Context) (_node *QRCode, err error) {
	if err := qcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qrcode.Table, qrcode.Columns, sqlgraph.NewFieldSpec(qrcode.FieldID, field.TypeUUID))
	id, ok := qcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QRCode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := qcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qrcode.FieldID)
		for _, f := range fields {
			if !qrcode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qrcode.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := qcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qcuo.mutation.BusinessName(); ok {
		_spec.SetField(qrcode.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := qcuo.mutation.ProductSummary(); ok {
		_spec.SetField(qrcode.FieldProductSummary, field.TypeString, value)
	}
	if qcuo.mutation.ProductSummaryCleared() {
		_spec.ClearField(qrcode.FieldProductSummary, field.TypeString)
	}
	if value, ok := qcuo.mutation.MapsLink(); ok {
		_spec.SetField(qrcode.FieldMapsLink, field.TypeString, value)
	}
	if qcuo.mutation.MapsLinkCleared() {
		_spec.ClearField(qrcode.FieldMapsLink, field.TypeString)
	}
	if value, ok := qcuo.mutation.CreatedAt(); ok {
		_spec.SetField(qrcode.FieldCreatedAt, field.TypeTime, value)
	}
	if qcuo.mutation.TempReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.RemovedTempReviewsIDs(); len(nodes) > 0 && !qcuo.mutation.TempReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.TempReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.TempReviewsTable,
			Columns: []string{qrcode.TempReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if qcuo.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !qcuo.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ReviewsTable,
			Columns: []string{qrcode.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if qcuo.mutation.ScanLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.RemovedScanLogsIDs(); len(nodes) > 0 && !qcuo.mutation.ScanLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qcuo.mutation.ScanLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   qrcode.ScanLogsTable,
			Columns: []string{qrcode.ScanLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QRCode{config: qcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, qcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qrcode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	qcuo.mutation.done = true
	return _node, nil
}
