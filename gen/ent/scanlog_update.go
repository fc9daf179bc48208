// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartqr/reviewd/gen/ent/predicate"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
)

// ScanLogUpdate is the builder for updating ScanLog entities.
type ScanLogUpdate struct {
	config
	hooks    []Hook
	mutation *ScanLogMutation
}

// Where appends a list predicates to the ScanLogUpdate builder.
func (slu *ScanLogUpdate) Where(ps ...predicate.ScanLog) *ScanLogUpdate {
	slu.mutation.Where(ps...)
	return slu
}

// Mutation returns the ScanLogMutation object of the builder.
func (slu *ScanLogUpdate) Mutation() *ScanLogMutation {
	return slu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (slu *ScanLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, slu.sqlSave, slu.mutation, slu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (slu *ScanLogUpdate) SaveX(ctx context.Context) int {
	affected, err := slu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (slu *ScanLogUpdate) Exec(ctx context.Context) error {
	_, err := slu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slu *ScanLogUpdate) ExecX(ctx context.Context) {
	if err := slu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slu *ScanLogUpdate) check() error {
	if slu.mutation.QrCodeCleared() && len(slu.mutation.QrCodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanLog.qr_code"`)
	}
	return nil
}

func (slu *ScanLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := slu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanlog.Table, scanlog.Columns, sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID))
	if ps := slu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if slu.mutation.JobIDCleared() {
		_spec.ClearField(scanlog.FieldJobID, field.TypeString)
	}
	if slu.mutation.DeviceIDCleared() {
		_spec.ClearField(scanlog.FieldDeviceID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, slu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	slu.mutation.done = true
	return n, nil
}

// ScanLogUpdateOne is the builder for updating a single ScanLog entity.
type ScanLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanLogMutation
}

// Mutation returns the ScanLogMutation object of the builder.
func (sluo *ScanLogUpdateOne) Mutation() *ScanLogMutation {
	return sluo.mutation
}

// Where appends a list predicates to the ScanLogUpdate builder.
func (sluo *ScanLogUpdateOne) Where(ps ...predicate.ScanLog) *ScanLogUpdateOne {
	sluo.mutation.Where(ps...)
	return sluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sluo *ScanLogUpdateOne) Select(field string, fields ...string) *ScanLogUpdateOne {
	sluo.fields = append([]string{field}, fields...)
	return sluo
}

// Save executes the query and returns the updated ScanLog entity.
func (sluo *ScanLogUpdateOne) Save(ctx context.Context) (*ScanLog, error) {
	return withHooks(ctx, sluo.sqlSave, sluo.mutation, sluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sluo *ScanLogUpdateOne) SaveX(ctx context.Context) *ScanLog {
	node, err := sluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sluo *ScanLogUpdateOne) Exec(ctx context.Context) error {
	_, err := sluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sluo *ScanLogUpdateOne) ExecX(ctx context.Context) {
	if err := sluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sluo *ScanLogUpdateOne) check() error {
	if sluo.mutation.QrCodeCleared() && len(sluo.mutation.QrCodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanLog.qr_code"`)
	}
	return nil
}

func (sluo *ScanLogUpdateOne) sqlSave(ctx context.Context) (_node *ScanLog, err error) {
	if err := sluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanlog.Table, scanlog.Columns, sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID))
	id, ok := sluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanlog.FieldID)
		for _, f := range fields {
			if !scanlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if sluo.mutation.JobIDCleared() {
		_spec.ClearField(scanlog.FieldJobID, field.TypeString)
	}
	if sluo.mutation.DeviceIDCleared() {
		_spec.ClearField(scanlog.FieldDeviceID, field.TypeString)
	}
	_node = &ScanLog{config: sluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sluo.mutation.done = true
	return _node, nil
}
