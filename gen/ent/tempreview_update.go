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
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// TempReviewUpdate is the builder for updating TempReview entities.
type TempReviewUpdate struct {
	config
	hooks    []Hook
	mutation *TempReviewMutation
}

// Where appends a list predicates to the TempReviewUpdate builder.
func (tru *TempReviewUpdate) Where(ps ...predicate.TempReview) *TempReviewUpdate {
	tru.mutation.Where(ps...)
	return tru
}

// SetJobID sets the "job_id" field.
func (tru *TempReviewUpdate) SetJobID(s string) *TempReviewUpdate {
	tru.mutation.SetJobID(s)
	return tru
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableJobID(s *string) *TempReviewUpdate {
	if s != nil {
		tru.SetJobID(*s)
	}
	return tru
}

// SetQrCodeID sets the "qr_code_id" field.
func (tru *TempReviewUpdate) SetQrCodeID(u uuid.UUID) *TempReviewUpdate {
	tru.mutation.SetQrCodeID(u)
	return tru
}

// SetNillableQrCodeID sets the "qr_code_id" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableQrCodeID(u *uuid.UUID) *TempReviewUpdate {
	if u != nil {
		tru.SetQrCodeID(*u)
	}
	return tru
}

// SetReviewText sets the "review_text" field.
func (tru *TempReviewUpdate) SetReviewText(s string) *TempReviewUpdate {
	tru.mutation.SetReviewText(s)
	return tru
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableReviewText(s *string) *TempReviewUpdate {
	if s != nil {
		tru.SetReviewText(*s)
	}
	return tru
}

// SetLanguage sets the "language" field.
func (tru *TempReviewUpdate) SetLanguage(s string) *TempReviewUpdate {
	tru.mutation.SetLanguage(s)
	return tru
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableLanguage(s *string) *TempReviewUpdate {
	if s != nil {
		tru.SetLanguage(*s)
	}
	return tru
}

// SetRating sets the "rating" field.
func (tru *TempReviewUpdate) SetRating(i int) *TempReviewUpdate {
	tru.mutation.ResetRating()
	tru.mutation.SetRating(i)
	return tru
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableRating(i *int) *TempReviewUpdate {
	if i != nil {
		tru.SetRating(*i)
	}
	return tru
}

// AddRating adds i to the "rating" field.
func (tru *TempReviewUpdate) AddRating(i int) *TempReviewUpdate {
	tru.mutation.AddRating(i)
	return tru
}

// SetHash sets the "hash" field.
func (tru *TempReviewUpdate) SetHash(s string) *TempReviewUpdate {
	tru.mutation.SetHash(s)
	return tru
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableHash(s *string) *TempReviewUpdate {
	if s != nil {
		tru.SetHash(*s)
	}
	return tru
}

// SetSessionID sets the "session_id" field.
func (tru *TempReviewUpdate) SetSessionID(s string) *TempReviewUpdate {
	tru.mutation.SetSessionID(s)
	return tru
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableSessionID(s *string) *TempReviewUpdate {
	if s != nil {
		tru.SetSessionID(*s)
	}
	return tru
}

// ClearSessionID clears the value of the "session_id" field.
func (tru *TempReviewUpdate) ClearSessionID() *TempReviewUpdate {
	tru.mutation.ClearSessionID()
	return tru
}

// SetCreatedAt sets the "created_at" field.
func (tru *TempReviewUpdate) SetCreatedAt(t time.Time) *TempReviewUpdate {
	tru.mutation.SetCreatedAt(t)
	return tru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableCreatedAt(t *time.Time) *TempReviewUpdate {
	if t != nil {
		tru.SetCreatedAt(*t)
	}
	return tru
}

// SetExpiresAt sets the "expires_at" field.
func (tru *TempReviewUpdate) SetExpiresAt(t time.Time) *TempReviewUpdate {
	tru.mutation.SetExpiresAt(t)
	return tru
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (tru *TempReviewUpdate) SetNillableExpiresAt(t *time.Time) *TempReviewUpdate {
	if t != nil {
		tru.SetExpiresAt(*t)
	}
	return tru
}

// SetQrCode sets the "qr_code" edge to the QRCode entity.
func (tru *TempReviewUpdate) SetQrCode(q *QRCode) *TempReviewUpdate {
	return tru.SetQrCodeID(q.ID)
}

// Mutation returns the TempReviewMutation object of the builder.
func (tru *TempReviewUpdate) Mutation() *TempReviewMutation {
	return tru.mutation
}

// ClearQrCode clears the "qr_code" edge to the QRCode entity.
func (tru *TempReviewUpdate) ClearQrCode() *TempReviewUpdate {
	tru.mutation.ClearQrCode()
	return tru
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tru *TempReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tru.sqlSave, tru.mutation, tru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tru *TempReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := tru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tru *TempReviewUpdate) Exec(ctx context.Context) error {
	_, err := tru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tru *TempReviewUpdate) ExecX(ctx context.Context) {
	if err := tru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tru *TempReviewUpdate) check() error {
	if v, ok := tru.mutation.JobID(); ok {
		if err := tempreview.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "TempReview.job_id": %w`, err)}
		}
	}
	if v, ok := tru.mutation.ReviewText(); ok {
		if err := tempreview.ReviewTextValidator(v); err != nil {
			return &ValidationError{Name: "review_text", err: fmt.Errorf(`ent: validator failed for field "TempReview.review_text": %w`, err)}
		}
	}
	if v, ok := tru.mutation.Language(); ok {
		if err := tempreview.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "TempReview.language": %w`, err)}
		}
	}
	if v, ok := tru.mutation.Rating(); ok {
		if err := tempreview.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TempReview.rating": %w`, err)}
		}
	}
	if v, ok := tru.mutation.Hash(); ok {
		if err := tempreview.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "TempReview.hash": %w`, err)}
		}
	}
	if tru.mutation.QrCodeCleared() && len(tru.mutation.QrCodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TempReview.qr_code"`)
	}
	return nil
}

func (tru *TempReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tempreview.Table, tempreview.Columns, sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID))
	if ps := tru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tru.mutation.JobID(); ok {
		_spec.SetField(tempreview.FieldJobID, field.TypeString, value)
	}
	if value, ok := tru.mutation.ReviewText(); ok {
		_spec.SetField(tempreview.FieldReviewText, field.TypeString, value)
	}
	if value, ok := tru.mutation.Language(); ok {
		_spec.SetField(tempreview.FieldLanguage, field.TypeString, value)
	}
	if value, ok := tru.mutation.Rating(); ok {
		_spec.SetField(tempreview.FieldRating, field.TypeInt, value)
	}
	if value, ok := tru.mutation.AddedRating(); ok {
		_spec.AddField(tempreview.FieldRating, field.TypeInt, value)
	}
	if value, ok := tru.mutation.Hash(); ok {
		_spec.SetField(tempreview.FieldHash, field.TypeString, value)
	}
	if value, ok := tru.mutation.SessionID(); ok {
		_spec.SetField(tempreview.FieldSessionID, field.TypeString, value)
	}
	if tru.mutation.SessionIDCleared() {
		_spec.ClearField(tempreview.FieldSessionID, field.TypeString)
	}
	if value, ok := tru.mutation.CreatedAt(); ok {
		_spec.SetField(tempreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := tru.mutation.ExpiresAt(); ok {
		_spec.SetField(tempreview.FieldExpiresAt, field.TypeTime, value)
	}
	if tru.mutation.QrCodeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tru.mutation.QrCodeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tempreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tru.mutation.done = true
	return n, nil
}

// TempReviewUpdateOne is the builder for updating a single TempReview entity.
type TempReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TempReviewMutation
}

// SetJobID sets the "job_id" field.
func (truo *TempReviewUpdateOne) SetJobID(s string) *TempReviewUpdateOne {
	truo.mutation.SetJobID(s)
	return truo
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableJobID(s *string) *TempReviewUpdateOne {
	if s != nil {
		truo.SetJobID(*s)
	}
	return truo
}

// SetQrCodeID sets the "qr_code_id" field.
func (truo *TempReviewUpdateOne) SetQrCodeID(u uuid.UUID) *TempReviewUpdateOne {
	truo.mutation.SetQrCodeID(u)
	return truo
}

// SetNillableQrCodeID sets the "qr_code_id" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableQrCodeID(u *uuid.UUID) *TempReviewUpdateOne {
	if u != nil {
		truo.SetQrCodeID(*u)
	}
	return truo
}

// SetReviewText sets the "review_text" field.
func (truo *TempReviewUpdateOne) SetReviewText(s string) *TempReviewUpdateOne {
	truo.mutation.SetReviewText(s)
	return truo
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableReviewText(s *string) *TempReviewUpdateOne {
	if s != nil {
		truo.SetReviewText(*s)
	}
	return truo
}

// SetLanguage sets the "language" field.
func (truo *TempReviewUpdateOne) SetLanguage(s string) *TempReviewUpdateOne {
	truo.mutation.SetLanguage(s)
	return truo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableLanguage(s *string) *TempReviewUpdateOne {
	if s != nil {
		truo.SetLanguage(*s)
	}
	return truo
}

// SetRating sets the "rating" field.
func (truo *TempReviewUpdateOne) SetRating(i int) *TempReviewUpdateOne {
	truo.mutation.ResetRating()
	truo.mutation.SetRating(i)
	return truo
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableRating(i *int) *TempReviewUpdateOne {
	if i != nil {
		truo.SetRating(*i)
	}
	return truo
}

// AddRating adds i to the "rating" field.
func (truo *TempReviewUpdateOne) AddRating(i int) *TempReviewUpdateOne {
	truo.mutation.AddRating(i)
	return truo
}

// SetHash sets the "hash" field.
func (truo *TempReviewUpdateOne) SetHash(s string) *TempReviewUpdateOne {
	truo.mutation.SetHash(s)
	return truo
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableHash(s *string) *TempReviewUpdateOne {
	if s != nil {
		truo.SetHash(*s)
	}
	return truo
}

// SetSessionID sets the "session_id" field.
func (truo *TempReviewUpdateOne) SetSessionID(s string) *TempReviewUpdateOne {
	truo.mutation.SetSessionID(s)
	return truo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableSessionID(s *string) *TempReviewUpdateOne {
	if s != nil {
		truo.SetSessionID(*s)
	}
	return truo
}

// ClearSessionID clears the value of the "session_id" field.
func (truo *TempReviewUpdateOne) ClearSessionID() *TempReviewUpdateOne {
	truo.mutation.ClearSessionID()
	return truo
}

// SetCreatedAt sets the "created_at" field.
func (truo *TempReviewUpdateOne) SetCreatedAt(t time.Time) *TempReviewUpdateOne {
	truo.mutation.SetCreatedAt(t)
	return truo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableCreatedAt(t *time.Time) *TempReviewUpdateOne {
	if t != nil {
		truo.SetCreatedAt(*t)
	}
	return truo
}

// SetExpiresAt sets the "expires_at" field.
func (truo *TempReviewUpdateOne) SetExpiresAt(t time.Time) *TempReviewUpdateOne {
	truo.mutation.SetExpiresAt(t)
	return truo
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (truo *TempReviewUpdateOne) SetNillableExpiresAt(t *time.Time) *TempReviewUpdateOne {
	if t != nil {
		truo.SetExpiresAt(*t)
	}
	return truo
}

// SetQrCode sets the "qr_code" edge to the QRCode entity.
func (truo *TempReviewUpdateOne) SetQrCode(q *QRCode) *TempReviewUpdateOne {
	return truo.SetQrCodeID(q.ID)
}

// Mutation returns the TempReviewMutation object of the builder.
func (truo *TempReviewUpdateOne) Mutation() *TempReviewMutation {
	return truo.mutation
}

// ClearQrCode clears the "qr_code" edge to the QRCode entity.
func (truo *TempReviewUpdateOne) ClearQrCode() *TempReviewUpdateOne {
	truo.mutation.ClearQrCode()
	return truo
}

// Where appends a list predicates to the TempReviewUpdate builder.
func (truo *TempReviewUpdateOne) Where(ps ...predicate.TempReview) *TempReviewUpdateOne {
	truo.mutation.Where(ps...)
	return truo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (truo *TempReviewUpdateOne) Select(field string, fields ...string) *TempReviewUpdateOne {
	truo.fields = append([]string{field}, fields...)
	return truo
}

// Save executes the query and returns the updated TempReview entity.
func (truo *TempReviewUpdateOne) Save(ctx context.Context) (*TempReview, error) {
	return withHooks(ctx, truo.sqlSave, truo.mutation, truo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (truo *TempReviewUpdateOne) SaveX(ctx context.Context) *TempReview {
	node, err := truo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (truo *TempReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := truo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (truo *TempReviewUpdateOne) ExecX(ctx context.Context) {
	if err := truo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (truo *TempReviewUpdateOne) check() error {
	if v, ok := truo.mutation.JobID(); ok {
		if err := tempreview.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "TempReview.job_id": %w`, err)}
		}
	}
	if v, ok := truo.mutation.ReviewText(); ok {
		if err := tempreview.ReviewTextValidator(v); err != nil {
			return &ValidationError{Name: "review_text", err: fmt.Errorf(`ent: validator failed for field "TempReview.review_text": %w`, err)}
		}
	}
	if v, ok := truo.mutation.Language(); ok {
		if err := tempreview.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "TempReview.language": %w`, err)}
		}
	}
	if v, ok := truo.mutation.Rating(); ok {
		if err := tempreview.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "TempReview.rating": %w`, err)}
		}
	}
	if v, ok := truo.mutation.Hash(); ok {
		if err := tempreview.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "TempReview.hash": %w`, err)}
		}
	}
	if truo.mutation.QrCodeCleared() && len(truo.mutation.QrCodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TempReview.qr_code"`)
	}
	return nil
}

func (truo *TempReviewUpdateOne) sqlSave(ctx context.Context) (_node *TempReview, err error) {
	if err := truo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tempreview.Table, tempreview.Columns, sqlgraph.NewFieldSpec(tempreview.FieldID, field.TypeUUID))
	id, ok := truo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TempReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := truo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tempreview.FieldID)
		for _, f := range fields {
			if !tempreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tempreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := truo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := truo.mutation.JobID(); ok {
		_spec.SetField(tempreview.FieldJobID, field.TypeString, value)
	}
	if value, ok := truo.mutation.ReviewText(); ok {
		_spec.SetField(tempreview.FieldReviewText, field.TypeString, value)
	}
	if value, ok := truo.mutation.Language(); ok {
		_spec.SetField(tempreview.FieldLanguage, field.TypeString, value)
	}
	if value, ok := truo.mutation.Rating(); ok {
		_spec.SetField(tempreview.FieldRating, field.TypeInt, value)
	}
	if value, ok := truo.mutation.AddedRating(); ok {
		_spec.AddField(tempreview.FieldRating, field.TypeInt, value)
	}
	if value, ok := truo.mutation.Hash(); ok {
		_spec.SetField(tempreview.FieldHash, field.TypeString, value)
	}
	if value, ok := truo.mutation.SessionID(); ok {
		_spec.SetField(tempreview.FieldSessionID, field.TypeString, value)
	}
	if truo.mutation.SessionIDCleared() {
		_spec.ClearField(tempreview.FieldSessionID, field.TypeString)
	}
	if value, ok := truo.mutation.CreatedAt(); ok {
		_spec.SetField(tempreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := truo.mutation.ExpiresAt(); ok {
		_spec.SetField(tempreview.FieldExpiresAt, field.TypeTime, value)
	}
	if truo.mutation.QrCodeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := truo.mutation.QrCodeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TempReview{config: truo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, truo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tempreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	truo.mutation.done = true
	return _node, nil
}
