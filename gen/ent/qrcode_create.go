// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// QRCodeCreate is the builder for creating a QRCode entity.
type QRCodeCreate struct {
	config
	mutation *QRCodeMutation
	hooks    []Hook
}

// SetBusinessName sets the "business_name" field.
func (qcc *QRCodeCreate) SetBusinessName(s string) *QRCodeCreate {
	qcc.mutation.SetBusinessName(s)
	return qcc
}

// SetProductSummary sets the "product_summary" field.
func (qcc *QRCodeCreate) SetProductSummary(s string) *QRCodeCreate {
	qcc.mutation.SetProductSummary(s)
	return qcc
}

// SetNillableProductSummary sets the "product_summary" field if the given value is not nil.
func (qcc *QRCodeCreate) SetNillableProductSummary(s *string) *QRCodeCreate {
	if s != nil {
		qcc.SetProductSummary(*s)
	}
	return qcc
}

// SetMapsLink sets the "maps_link" field.
func (qcc *QRCodeCreate) SetMapsLink(s string) *QRCodeCreate {
	qcc.mutation.SetMapsLink(s)
	return qcc
}

// SetNillableMapsLink sets the "maps_link" field if the given value is not nil.
func (qcc *QRCodeCreate) SetNillableMapsLink(s *string) *QRCodeCreate {
	if s != nil {
		qcc.SetMapsLink(*s)
	}
	return qcc
}

// SetCreatedAt sets the "created_at" field.
func (qcc *QRCodeCreate) SetCreatedAt(t time.Time) *QRCodeCreate {
	qcc.mutation.SetCreatedAt(t)
	return qcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (qcc *QRCodeCreate) SetNillableCreatedAt(t *time.Time) *QRCodeCreate {
	if t != nil {
		qcc.SetCreatedAt(*t)
	}
	return qcc
}

// SetID sets the "id" field.
func (qcc *QRCodeCreate) SetID(u uuid.UUID) *QRCodeCreate {
	qcc.mutation.SetID(u)
	return qcc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (qcc *QRCodeCreate) SetNillableID(u *uuid.UUID) *QRCodeCreate {
	if u != nil {
		qcc.SetID(*u)
	}
	return qcc
}

// AddTempReviewIDs adds the "temp_reviews" edge to the TempReview entity by IDs.
func (qcc *QRCodeCreate) AddTempReviewIDs(ids ...uuid.UUID) *QRCodeCreate {
	qcc.mutation.AddTempReviewIDs(ids...)
	return qcc
}

// AddTempReviews adds the "temp_reviews" edges to the TempReview entity.
func (qcc *QRCodeCreate) AddTempReviews(t ...*TempReview) *QRCodeCreate {
	ids := make([]uuid.UUID, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return qcc.AddTempReviewIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (qcc *QRCodeCreate) AddReviewIDs(ids ...uuid.UUID) *QRCodeCreate {
	qcc.mutation.AddReviewIDs(ids...)
	return qcc
}

// AddReviews adds the "reviews" edges to the Review entity.
func (qcc *QRCodeCreate) AddReviews(r ...*Review) *QRCodeCreate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return qcc.AddReviewIDs(ids...)
}

// AddScanLogIDs adds the "scan_logs" edge to the ScanLog entity by IDs.
func (qcc *QRCodeCreate) AddScanLogIDs(ids ...uuid.UUID) *QRCodeCreate {
	qcc.mutation.AddScanLogIDs(ids...)
	return qcc
}

// AddScanLogs adds the "scan_logs" edges to the ScanLog entity.
func (qcc *QRCodeCreate) AddScanLogs(s ...*ScanLog) *QRCodeCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return qcc.AddScanLogIDs(ids...)
}

// Mutation returns the QRCodeMutation object of the builder.
func (qcc *QRCodeCreate) Mutation() *QRCodeMutation {
	return qcc.mutation
}

// Save creates the QRCode in the database.
func (qcc *QRCodeCreate) Save(ctx context.Context) (*QRCode, error) {
	qcc.defaults()
	return withHooks(ctx, qcc.sqlSave, qcc.mutation, qcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (qcc *QRCodeCreate) SaveX(ctx context.Context) *QRCode {
	v, err := qcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qcc *QRCodeCreate) Exec(ctx context.Context) error {
	_, err := qcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qcc *QRCodeCreate) ExecX(ctx context.Context) {
	if err := qcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (qcc *QRCodeCreate) defaults() {
	if _, ok := qcc.mutation.CreatedAt(); !ok {
		v := qrcode.DefaultCreatedAt()
		qcc.mutation.SetCreatedAt(v)
	}
	if _, ok := qcc.mutation.ID(); !ok {
		v := qrcode.DefaultID()
		qcc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qcc *QRCodeCreate) check() error {
	if _, ok := qcc.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "QRCode.business_name"`)}
	}
	if v, ok := qcc.mutation.BusinessName(); ok {
		if err := qrcode.BusinessNameValidator(v); err != nil {
			return &ValidationError{Name: "business_name", err: fmt.Errorf(`ent: validator failed for field "QRCode.business_name": %w`, err)}
		}
	}
	if _, ok := qcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QRCode.created_at"`)}
	}
	return nil
}

func (qcc *QRCodeCreate) sqlSave(ctx context.Context) (*QRCode, error) {
	if err := qcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := qcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, qcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	qcc.mutation.id = &_node.ID
	qcc.mutation.done = true
	return _node, nil
}

func (qcc *QRCodeCreate) createSpec() (*QRCode, *sqlgraph.CreateSpec) {
	var (
		_node = &QRCode{config: qcc.config}
		_spec = sqlgraph.NewCreateSpec(qrcode.Table, sqlgraph.NewFieldSpec(qrcode.FieldID, field.TypeUUID))
	)
	if id, ok := qcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := qcc.mutation.BusinessName(); ok {
		_spec.SetField(qrcode.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := qcc.mutation.ProductSummary(); ok {
		_spec.SetField(qrcode.FieldProductSummary, field.TypeString, value)
		_node.ProductSummary = value
	}
	if value, ok := qcc.mutation.MapsLink(); ok {
		_spec.SetField(qrcode.FieldMapsLink, field.TypeString, value)
		_node.MapsLink = value
	}
	if value, ok := qcc.mutation.CreatedAt(); ok {
		_spec.SetField(qrcode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := qcc.mutation.TempReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := qcc.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := qcc.mutation.ScanLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QRCodeCreateBulk is the builder for creating many QRCode entities in bulk.
type QRCodeCreateBulk struct {
	config
	err      error
	builders []*QRCodeCreate
}

// Save creates the QRCode entities in the database.
func (qccb *QRCodeCreateBulk) Save(ctx context.Context) ([]*QRCode, error) {
	if qccb.err != nil {
		return nil, qccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(qccb.builders))
	nodes := make([]*QRCode, len(qccb.builders))
	mutators := make([]Mutator, len(qccb.builders))
	for i := range qccb.builders {
		func(i int, root context.Context) {
			builder := qccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QRCodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, qccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, qccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, qccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (qccb *QRCodeCreateBulk) SaveX(ctx context.Context) []*QRCode {
	v, err := qccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (qccb *QRCodeCreateBulk) Exec(ctx context.Context) error {
	_, err := qccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qccb *QRCodeCreateBulk) ExecX(ctx context.Context) {
	if err := qccb.Exec(ctx); err != nil {
		panic(err)
	}
}
