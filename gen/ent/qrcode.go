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
)

// QRCode is the model entity for the QRCode schema.
type QRCode struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BusinessName holds the value of the "business_name" field.
	BusinessName string `json:"business_name,omitempty"`
	// ProductSummary holds the value of the "product_summary" field.
	ProductSummary string `json:"product_summary,omitempty"`
	// MapsLink holds the value of the "maps_link" field.
	MapsLink string `json:"maps_link,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QRCodeQuery when eager-loading is set.
	Edges        QRCodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QRCodeEdges holds the relations/edges for other nodes in the graph.
type QRCodeEdges struct {
	// TempReviews holds the value of the temp_reviews edge.
	TempReviews []*TempReview `json:"temp_reviews,omitempty"`
	// Reviews holds the value of the reviews edge.
	Reviews []*Review `json:"reviews,omitempty"`
	// ScanLogs holds the value of the scan_logs edge.
	ScanLogs []*ScanLog `json:"scan_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TempReviewsOrErr returns the TempReviews value or an error if the edge
// was not loaded in eager-loading.
func (e QRCodeEdges) TempReviewsOrErr() ([]*TempReview, error) {
	if e.loadedTypes[0] {
		return e.TempReviews, nil
	}
	return nil, &NotLoadedError{edge: "temp_reviews"}
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e QRCodeEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[1] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// ScanLogsOrErr returns the ScanLogs value or an error if the edge
// was not loaded in eager-loading.
func (e QRCodeEdges) ScanLogsOrErr() ([]*ScanLog, error) {
	if e.loadedTypes[2] {
		return e.ScanLogs, nil
	}
	return nil, &NotLoadedError{edge: "scan_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QRCode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qrcode.FieldBusinessName, qrcode.FieldProductSummary, qrcode.FieldMapsLink:
			values[i] = new(sql.NullString)
		case qrcode.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case qrcode.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QRCode fields.
func (qc *QRCode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qrcode.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				qc.ID = *value
			}
		case qrcode.FieldBusinessName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_name", values[i])
			} else if value.Valid {
				qc.BusinessName = value.String
			}
		case qrcode.FieldProductSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_summary", values[i])
			} else if value.Valid {
				qc.ProductSummary = value.String
			}
		case qrcode.FieldMapsLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maps_link", values[i])
			} else if value.Valid {
				qc.MapsLink = value.String
			}
		case qrcode.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				qc.CreatedAt = value.Time
			}
		default:
			qc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QRCode.
// This includes values selected through modifiers, order, etc.
func (qc *QRCode) Value(name string) (ent.Value, error) {
	return qc.selectValues.Get(name)
}

// QueryTempReviews queries the "temp_reviews" edge of the QRCode entity.
func (qc *QRCode) QueryTempReviews() *TempReviewQuery {
	return NewQRCodeClient(qc.config).QueryTempReviews(qc)
}

// QueryReviews queries the "reviews" edge of the QRCode entity.
func (qc *QRCode) QueryReviews() *ReviewQuery {
	return NewQRCodeClient(qc.config).QueryReviews(qc)
}

// QueryScanLogs queries the "scan_logs" edge of the QRCode entity.
func (qc *QRCode) QueryScanLogs() *ScanLogQuery {
	return NewQRCodeClient(qc.config).QueryScanLogs(qc)
}

// Update returns a builder for updating this QRCode.
// Note that you need to call QRCode.Unwrap() before calling this method if this QRCode
// was returned from a transaction, and the transaction was committed or rolled back.
func (qc *QRCode) Update() *QRCodeUpdateOne {
	return NewQRCodeClient(qc.config).UpdateOne(qc)
}

// Unwrap unwraps the QRCode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (qc *QRCode) Unwrap() *QRCode {
	_tx, ok := qc.config.driver.(*txDriver)
	if !ok {
		panic("ent: QRCode is not a transactional entity")
	}
	qc.config.driver = _tx.drv
	return qc
}

// String implements the fmt.Stringer.
func (qc *QRCode) String() string {
	var builder strings.Builder
	builder.WriteString("QRCode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", qc.ID))
	builder.WriteString("business_name=")
	builder.WriteString(qc.BusinessName)
	builder.WriteString(", ")
	builder.WriteString("product_summary=")
	builder.WriteString(qc.ProductSummary)
	builder.WriteString(", ")
	builder.WriteString("maps_link=")
	builder.WriteString(qc.MapsLink)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(qc.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QRCodes is a parsable slice of QRCode.
type QRCodes []*QRCode
