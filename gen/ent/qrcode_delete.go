// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartqr/reviewd/gen/ent/predicate"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
)

// QRCodeDelete is the builder for deleting a QRCode entity.
type QRCodeDelete struct {
	config
	hooks    []Hook
	mutation *QRCodeMutation
}

// Where appends a list predicates to the QRCodeDelete builder.
func (qcd *QRCodeDelete) Where(ps ...predicate.QRCode) *QRCodeDelete {
	qcd.mutation.Where(ps...)
	return qcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (qcd *QRCodeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, qcd.sqlExec, qcd.mutation, qcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (qcd *QRCodeDelete) ExecX(ctx context.Context) int {
	n, err := qcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (qcd *QRCodeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(qrcode.Table, sqlgraph.NewFieldSpec(qrcode.FieldID, field.TypeUUID))
	if ps := qcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, qcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	qcd.mutation.done = true
	return affected, err
}

// QRCodeDeleteOne is the builder for deleting a single QRCode entity.
type QRCodeDeleteOne struct {
	qcd *QRCodeDelete
}

// Where appends a list predicates to the QRCodeDelete builder.
func (qcdo *QRCodeDeleteOne) Where(ps ...predicate.QRCode) *QRCodeDeleteOne {
	qcdo.qcd.mutation.Where(ps...)
	return qcdo
}

// Exec executes the deletion query.
func (qcdo *QRCodeDeleteOne) Exec(ctx context.Context) error {
	n, err := qcdo.qcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{qrcode.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (qcdo *QRCodeDeleteOne) ExecX(ctx context.Context) {
	if err := qcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
