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
	"github.com/smartqr/reviewd/gen/ent/scanlog"
)

// ScanLogCreate is the builder for creating a ScanLog entity.
type ScanLogCreate struct {
	config
	mutation *ScanLogMutation
	hooks    []Hook
}

// SetQrCodeID sets the "qr_code_id" field.
func (slc *ScanLogCreate) SetQrCodeID(u uuid.UUID) *ScanLogCreate {
	slc.mutation.SetQrCodeID(u)
	return slc
}

// SetJobID sets the "job_id" field.
func (slc *ScanLogCreate) SetJobID(s string) *ScanLogCreate {
	slc.mutation.SetJobID(s)
	return slc
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (slc *ScanLogCreate) SetNillableJobID(s *string) *ScanLogCreate {
	if s != nil {
		slc.SetJobID(*s)
	}
	return slc
}

// SetDeviceID sets the "device_id" field.
func (slc *ScanLogCreate) SetDeviceID(s string) *ScanLogCreate {
	slc.mutation.SetDeviceID(s)
	return slc
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (slc *ScanLogCreate) SetNillableDeviceID(s *string) *ScanLogCreate {
	if s != nil {
		slc.SetDeviceID(*s)
	}
	return slc
}

// SetAction sets the "action" field.
func (slc *ScanLogCreate) SetAction(s string) *ScanLogCreate {
	slc.mutation.SetAction(s)
	return slc
}

// SetTimestamp sets the "timestamp" field.
func (slc *ScanLogCreate) SetTimestamp(t time.Time) *ScanLogCreate {
	slc.mutation.SetTimestamp(t)
	return slc
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (slc *ScanLogCreate) SetNillableTimestamp(t *time.Time) *ScanLogCreate {
	if t != nil {
		slc.SetTimestamp(*t)
	}
	return slc
}

// SetID sets the "id" field.
func (slc *ScanLogCreate) SetID(u uuid.UUID) *ScanLogCreate {
	slc.mutation.SetID(u)
	return slc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (slc *ScanLogCreate) SetNillableID(u *uuid.UUID) *ScanLogCreate {
	if u != nil {
		slc.SetID(*u)
	}
	return slc
}

// SetQrCode sets the "qr_code" edge to the QRCode entity.
func (slc *ScanLogCreate) SetQrCode(q *QRCode) *ScanLogCreate {
	return slc.SetQrCodeID(q.ID)
}

// Mutation returns the ScanLogMutation object of the builder.
func (slc *ScanLogCreate) Mutation() *ScanLogMutation {
	return slc.mutation
}

// Save creates the ScanLog in the database.
func (slc *ScanLogCreate) Save(ctx context.Context) (*ScanLog, error) {
	slc.defaults()
	return withHooks(ctx, slc.sqlSave, slc.mutation, slc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (slc *ScanLogCreate) SaveX(ctx context.Context) *ScanLog {
	v, err := slc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slc *ScanLogCreate) Exec(ctx context.Context) error {
	_, err := slc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slc *ScanLogCreate) ExecX(ctx context.Context) {
	if err := slc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (slc *ScanLogCreate) defaults() {
	if _, ok := slc.mutation.Timestamp(); !ok {
		v := scanlog.DefaultTimestamp()
		slc.mutation.SetTimestamp(v)
	}
	if _, ok := slc.mutation.ID(); !ok {
		v := scanlog.DefaultID()
		slc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slc *ScanLogCreate) check() error {
	if _, ok := slc.mutation.QrCodeID(); !ok {
		return &ValidationError{Name: "qr_code_id", err: errors.New(`ent: missing required field "ScanLog.qr_code_id"`)}
	}
	if _, ok := slc.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ScanLog.action"`)}
	}
	if v, ok := slc.mutation.Action(); ok {
		if err := scanlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ScanLog.action": %w`, err)}
		}
	}
	if _, ok := slc.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScanLog.timestamp"`)}
	}
	if len(slc.mutation.QrCodeIDs()) == 0 {
		return &ValidationError{Name: "qr_code", err: errors.New(`ent: missing required edge "ScanLog.qr_code"`)}
	}
	return nil
}

func (slc *ScanLogCreate) sqlSave(ctx context.Context) (*ScanLog, error) {
	if err := slc.check(); err != nil {
		return nil, err
	}
	_node, _spec := slc.createSpec()
	if err := sqlgraph.CreateNode(ctx, slc.driver, _spec); err != nil {
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
	slc.mutation.id = &_node.ID
	slc.mutation.done = true
	return _node, nil
}

func (slc *ScanLogCreate) createSpec() (*ScanLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanLog{config: slc.config}
		_spec = sqlgraph.NewCreateSpec(scanlog.Table, sqlgraph.NewFieldSpec(scanlog.FieldID, field.TypeUUID))
	)
	if id, ok := slc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := slc.mutation.JobID(); ok {
		_spec.SetField(scanlog.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := slc.mutation.DeviceID(); ok {
		_spec.SetField(scanlog.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := slc.mutation.Action(); ok {
		_spec.SetField(scanlog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := slc.mutation.Timestamp(); ok {
		_spec.SetField(scanlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := slc.mutation.QrCodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanlog.QrCodeTable,
			Columns: []string{scanlog.QrCodeColumn},
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

// ScanLogCreateBulk is the builder for creating many ScanLog entities in bulk.
type ScanLogCreateBulk struct {
	config
	err      error
	builders []*ScanLogCreate
}

// Save creates the ScanLog entities in the database.
func (slcb *ScanLogCreateBulk) Save(ctx context.Context) ([]*ScanLog, error) {
	if slcb.err != nil {
		return nil, slcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(slcb.builders))
	nodes := make([]*ScanLog, len(slcb.builders))
	mutators := make([]Mutator, len(slcb.builders))
	for i := range slcb.builders {
		func(i int, root context.Context) {
			builder := slcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanLogMutation)
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
					_, err = mutators[i+1].Mutate(root, slcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, slcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, slcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (slcb *ScanLogCreateBulk) SaveX(ctx context.Context) []*ScanLog {
	v, err := slcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slcb *ScanLogCreateBulk) Exec(ctx context.Context) error {
	_, err := slcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slcb *ScanLogCreateBulk) ExecX(ctx context.Context) {
	if err := slcb.Exec(ctx); err != nil {
		panic(err)
	}
}
