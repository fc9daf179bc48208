// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartqr/reviewd/gen/ent/qrcode"
	"github.com/smartqr/reviewd/gen/ent/scanlog"
)

// ScanLog is the model entity for the ScanLog schema.
type ScanLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// QrCodeID holds the value of the "qr_code_id" field.
	QrCodeID uuid.UUID `json:"qr_code_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScanLogQuery when eager-loading is set.
	Edges        ScanLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScanLogEdges holds the relations/edges for other nodes in the graph.
type ScanLogEdges struct {
	// QrCode holds the value of the qr_code edge.
	QrCode *QRCode `json:"qr_code,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QrCodeOrErr returns the QrCode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanLogEdges) QrCodeOrErr() (*QRCode, error) {
	if e.QrCode != nil {
		return e.QrCode, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qrcode.Label}
	}
	return nil, &NotLoadedError{edge: "qr_code"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanlog.FieldJobID, scanlog.FieldDeviceID, scanlog.FieldAction:
			values[i] = new(sql.NullString)
		case scanlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case scanlog.FieldID, scanlog.FieldQrCodeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanLog fields.
func (sl *ScanLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sl.ID = *value
			}
		case scanlog.FieldQrCodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field qr_code_id", values[i])
			} else if value != nil {
				sl.QrCodeID = *value
			}
		case scanlog.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				sl.JobID = value.String
			}
		case scanlog.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				sl.DeviceID = value.String
			}
		case scanlog.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				sl.Action = value.String
			}
		case scanlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				sl.Timestamp = value.Time
			}
		default:
			sl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanLog.
// This includes values selected through modifiers, order, etc.
func (sl *ScanLog) Value(name string) (ent.Value, error) {
	return sl.selectValues.Get(name)
}

// QueryQrCode queries the "qr_code" edge of the ScanLog entity.
func (sl *ScanLog) QueryQrCode() *QRCodeQuery {
	return NewScanLogClient(sl.config).QueryQrCode(sl)
}

// Update returns a builder for updating this ScanLog.
// Note that you need to call ScanLog.Unwrap() before calling this method if this ScanLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (sl *ScanLog) Update() *ScanLogUpdateOne {
	return NewScanLogClient(sl.config).UpdateOne(sl)
}

// Unwrap unwraps the ScanLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sl *ScanLog) Unwrap() *ScanLog {
	_tx, ok := sl.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanLog is not a transactional entity")
	}
	sl.config.driver = _tx.drv
	return sl
}

// String implements the fmt.Stringer.
func (sl *ScanLog) String() string {
	var builder strings.Builder
	builder.WriteString("ScanLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sl.ID))
	builder.WriteString("qr_code_id=")
	builder.WriteString(fmt.Sprintf("%v", sl.QrCodeID))
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(sl.JobID)
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(sl.DeviceID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(sl.Action)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(sl.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScanLogs is a parsable slice of ScanLog.
type ScanLogs []*ScanLog
