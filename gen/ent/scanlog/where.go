// Code generated by ent, DO NOT EDIT.

package scanlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLTE(FieldID, id))
}

// QrCodeID applies equality check predicate on the "qr_code_id" field. It's identical to QrCodeIDEQ.
func QrCodeID(v uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldQrCodeID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldJobID, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldDeviceID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldAction, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldTimestamp, v))
}

// QrCodeIDEQ applies the EQ predicate on the "qr_code_id" field.
func QrCodeIDEQ(v uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldQrCodeID, v))
}

// QrCodeIDNEQ applies the NEQ predicate on the "qr_code_id" field.
func QrCodeIDNEQ(v uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldQrCodeID, v))
}

// QrCodeIDIn applies the In predicate on the "qr_code_id" field.
func QrCodeIDIn(vs ...uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldQrCodeID, vs...))
}

// QrCodeIDNotIn applies the NotIn predicate on the "qr_code_id" field.
func QrCodeIDNotIn(vs ...uuid.UUID) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldQrCodeID, vs...))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContainsFold(FieldJobID, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDIsNil applies the IsNil predicate on the "device_id" field.
func DeviceIDIsNil() predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIsNull(FieldDeviceID))
}

// DeviceIDNotNil applies the NotNil predicate on the "device_id" field.
func DeviceIDNotNil() predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotNull(FieldDeviceID))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContainsFold(FieldDeviceID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldContainsFold(FieldAction, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScanLog {
	return predicate.ScanLog(sql.FieldLTE(FieldTimestamp, v))
}

// HasQrCode applies the HasEdge predicate on the "qr_code" edge.
func HasQrCode() predicate.ScanLog {
	return predicate.ScanLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QrCodeTable, QrCodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQrCodeWith applies the HasEdge predicate on the "qr_code" edge with a given conditions (other predicates).
func HasQrCodeWith(preds ...predicate.QRCode) predicate.ScanLog {
	return predicate.ScanLog(func(s *sql.Selector) {
		step := newQrCodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanLog) predicate.ScanLog {
	return predicate.ScanLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanLog) predicate.ScanLog {
	return predicate.ScanLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanLog) predicate.ScanLog {
	return predicate.ScanLog(sql.NotPredicates(p))
}
