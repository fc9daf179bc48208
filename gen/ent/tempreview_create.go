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
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// TempReviewCreate is the builder for creating a TempReview entity.
type TempReviewCreate struct {
	config
	mutation *TempReviewMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (trc *TempReviewCreate) SetJobID(s string) *TempReviewCreate {
	trc.mutation.SetJobID(s)
	return trc
}

// SetQrCodeID sets the "qr_code_id" field.
func (trc *TempReviewCreate) SetQrCodeID(u uuid.UUID) *TempReviewCreate {
	trc.mutation.SetQrCodeID(u)
	return trc
}

// SetReviewText sets the "review_text" field.
func (trc *TempReviewCreate) SetReviewText(s string) *TempReviewCreate {
	trc.mutation.SetReviewText(s)
	return trc
}

// SetLanguage sets the "language" field.
func (trc *TempReviewCreate) SetLanguage(s string) *TempReviewCreate {
	trc.mutation.SetLanguage(s)
	return trc
}

// SetRating sets the "rating" field.
func (trc *TempReviewCreate) SetRating(i int) *TempReviewCreate {
	trc.mutation.SetRating(i)
	return trc
}

// SetHash sets the "hash" field.
func (trc *TempReviewCreate) SetHash(s string) *TempReviewCreate {
	trc.mutation.SetHash(s)
	return trc
}

// SetSessionID sets the "session_id" field.
func (trc *TempReviewCreate) SetSessionID(s string) *TempReviewCreate {
	trc.mutation.SetSessionID(s)
	return trc
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (trc *TempReviewCreate) SetNillableSessionID(s *string) *TempReviewCreate {
	if s != nil {
		trc.SetSessionID(*s)
	}
	return trc
}

// SetCreatedAt sets the "created_at" field.
func (trc *TempReviewCreate) SetCreatedAt(t time.Time) *TempReviewCreate {
	trc.mutation.SetCreatedAt(t)
	return trc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (trc *TempReviewCreate) SetNillableCreatedAt(t *time.Time) *TempReviewCreate {
	if t != nil {
		trc.SetCreatedAt(*t)
	}
	return trc
}

// SetExpiresAt sets the "expires_at" field.
func (trc *TempReviewCreate) SetExpiresAt(t time.Time) *TempReviewCreate {
	trc.mutation.SetExpiresAt(t)
	return trc
}

// SetID sets the "id" field.
func (trc *TempReviewCreate) SetID(u uuid.UUID) *TempReviewCreate {
	trc.mutation.SetID(u)
	return trc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (trc *TempReviewCreate) SetNillableID(u *uuid.UUID) *TempReviewCreate {
	if u != nil {
		trc.SetID(*u)
	}
	return trc
}

// SetQrCode sets the "qr_code" edge to the QRCode entity.
func (trc *TempReviewCreate) SetQrCode(q *QRCode) *TempReviewCreate {
	return trc.SetQrCodeID(q.ID)
}

// Mutation returns the TempReviewMutation object of the builder.
func (trc *TempReviewCreate) Mutation() *TempReviewMutation {
	return trc.mutation
}

// Save creates the TempReview in the database.
func (trc *TempReviewCreate) Save(ctx context.Context) (*TempReview, error) {
	trc.defaults()
	return withHooks(ctx, trc.sqlSave, trc.mutation, trc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (trc *TempReviewCreate) SaveX(ctx context.Context) *TempReview {
	v, err := trc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (trc *TempReviewCreate) Exec(ctx context.Context) error {
	_, err := trc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (trc *TempReviewCreate) ExecX(ctx context.Context) {
	if err := trc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (trc *TempReviewCreate) defaults() {
	if _, ok := trc.mutation.CreatedAt(); !ok {
		v := tempreview.DefaultCreatedAt()
		trc.mutation.SetCreatedAt(v)
	}
	if _, ok := trc.mutation.ID(); !ok {
		v := tempreview.DefaultID()
		trc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (trc *TempReviewCreate) check() error {
	if _, ok := trc.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "TempReview.job_id"`)}
	}
	if v, ok := trc.mutation.JobID(); ok {
		if err := tempreview.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "TempReview.job_id": %w`, err)}
		}
	}
	if _, ok := trc.mutation.QrCodeID(); !ok {
		return &ValidationError{Name: "qr_code_id", err: errors.New(`ent: missing required field "TempReview.qr_code_id"`)}
	}
	if _, ok := trc.mutation.ReviewText(); !ok {
		return &ValidationError{Name: "review_text", err: errors.New(`ent: missing required field "TempReview.review_text"`)}
	}
	if v, ok := trc.mutation.ReviewText(); ok {
		if err := tempreview.ReviewTextValidator(v); err != nil {
			return &ValidationError{Name: "review_text", err: fmt.Errorf(`ent: validator failed for field "TempReview.review_text": %w`, err)}
		}
	}
	if _, ok := trc.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "TempReview.language"`)}
	}
	if v, ok := trc.mutation.Language(); ok {
		if err := tempreview.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "TempReview.language": %w`, err)}
		}
	}
	if _, ok := trc.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "TempReview.rating"`)}
	}
	if v, ok := trc.mutation.Rating(); ok {
		if err := tempreview.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TempReview.rating": %w`, err)}
		}
	}
	if _, ok := trc.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "TempReview.hash"`)}
	}
	if v, ok := trc.mutation.Hash(); ok {
		if err := tempreview.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "TempReview.hash": %w`, err)}
		}
	}
	if _, ok := trc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TempReview.created_at"`)}
	}
	if _, ok := trc.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "TempReview.expires_at"`)}
	}
	if len(trc.mutation.QrCodeIDs()) == 0 {
		return &ValidationError{Name: "qr_code", err: errors.New(`ent: missing required edge "TempReview.qr_code"`)}
	}
	return nil
}

func (trc *TempReviewCreate) sqlSave(ctx context.Context) (*TempReview, error) {
	if err := trc.check(); err != nil {
		return nil, err
	}
	_node, _spec := trc.createSpec()
	if err := sqlgraph.CreateNode(ctx, trc.driver, _spec); err != nil {
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
	trc.mutation.id = &_node.ID
	trc.mutation.done = true
	return _node, nil
}

func (trc *TempReviewCreate) createSpec() (*TempReview, *sqlgraph.CreateSpec) {
	var (
		_node = &TempReview{config: trc.config}
		_spec = sqlgraph.NewCreateSpec(tempreview.Table, sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID))
	)
	if id, ok := trc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := trc.mutation.JobID(); ok {
		_spec.SetField(tempreview.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := trc.mutation.ReviewText(); ok {
		_spec.SetField(tempreview.FieldReviewText, field.TypeString, value)
		_node.ReviewText = value
	}
	if value, ok := trc.mutation.Language(); ok {
		_spec.SetField(tempreview.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := trc.mutation.Rating(); ok {
		_spec.SetField(tempreview.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := trc.mutation.Hash(); ok {
		_spec.SetField(tempreview.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := trc.mutation.SessionID(); ok {
		_spec.SetField(tempreview.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := trc.mutation.CreatedAt(); ok {
		_spec.SetField(tempreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := trc.mutation.ExpiresAt(); ok {
		_spec.SetField(tempreview.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if nodes := trc.mutation.QrCodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tempreview.QrCodeTable,
			Columns: []string{tempreview.QrCodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qrcode.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QrCodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TempReviewCreateBulk is the builder for creating many TempReview entities in bulk.
type TempReviewCreateBulk struct {
	config
	err      error
	builders []*TempReviewCreate
}

// Save creates the TempReview entities in the database.
func (trcb *TempReviewCreateBulk) Save(ctx context.Context) ([]*TempReview, error) {
	if trcb.err != nil {
		return nil, trcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(trcb.builders))
	nodes := make([]*TempReview, len(trcb.builders))
	mutators := make([]Mutator, len(trcb.builders))
	for i := range trcb.builders {
		func(i int, root context.Context) {
			builder := trcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TempReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, trcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, trcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, trcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (trcb *TempReviewCreateBulk) SaveX(ctx context.Context) []*TempReview {
	v, err := trcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (trcb *TempReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := trcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (trcb *TempReviewCreateBulk) ExecX(ctx context.Context) {
	if err := trcb.Exec(ctx); err != nil {
		panic(err)
	}
}
