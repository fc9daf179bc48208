// Code generated by ent, DO NOT EDIT.

package scanlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scanlog type in the database.
	Label = "scan_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQrCodeID holds the string denoting the qr_code_id field in the database.
	FieldQrCodeID = "qr_code_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// EdgeQrCode holds the string denoting the qr_code edge name in mutations.
	EdgeQrCode = "qr_code"
	// Table holds the table name of the scanlog in the database.
	Table = "scan_log"
	// QrCodeTable is the table that holds the qr_code relation/edge.
	QrCodeTable = "scan_log"
	// QrCodeInverseTable is the table name for the QRCode entity.
	// It exists in this package in order to avoid circular dependency with the "qrcode" package.
	QrCodeInverseTable = "qr_codes"
	// QrCodeColumn is the table column denoting the qr_code relation/edge.
	QrCodeColumn = "qr_code_id"
)

// Columns holds all SQL columns for scanlog fields.
var Columns = []string{
	FieldID,
	FieldQrCodeID,
	FieldJobID,
	FieldDeviceID,
	FieldAction,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ScanLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQrCodeID orders the results by the qr_code_id field.
func ByQrCodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQrCodeID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQrCodeField orders the results by qr_code field.
func ByQrCodeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQrCodeStep(), sql.OrderByField(field, opts...))
	}
}
func newQrCodeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QrCodeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QrCodeTable, QrCodeColumn),
	)
}
