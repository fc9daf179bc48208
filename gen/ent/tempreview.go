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
	"github.com/smartqr/reviewd/gen/ent/tempreview"
)

// TempReview is the model entity for the TempReview schema.
type TempReview struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// QrCodeID holds the value of the "qr_code_id" field.
	QrCodeID uuid.UUID `json:"qr_code_id,omitempty"`
	// ReviewText holds the value of the "review_text" field.
	ReviewText string `json:"review_text,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating int `json:"rating,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TempReviewQuery when eager-loading is set.
	Edges        TempReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TempReviewEdges holds the relations/edges for other nodes in the graph.
type TempReviewEdges struct {
	// QrCode holds the value of the qr_code edge.
	QrCode *QRCode `json:"qr_code,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QrCodeOrErr returns the QrCode value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TempReviewEdges) QrCodeOrErr() (*QRCode, error) {
	if e.QrCode != nil {
		return e.QrCode, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: qrcode.Label}
	}
	return nil, &NotLoadedError{edge: "qr_code"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TempReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tempreview.FieldRating:
			values[i] = new(sql.NullInt64)
		case tempreview.FieldJobID, tempreview.FieldReviewText, tempreview.FieldLanguage, tempreview.FieldHash, tempreview.FieldSessionID:
			values[i] = new(sql.NullString)
		case tempreview.FieldCreatedAt, tempreview.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		case tempreview.FieldID, tempreview.FieldQrCodeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TempReview fields.
func (tr *TempReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tempreview.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				tr.ID = *value
			}
		case tempreview.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				tr.JobID = value.String
			}
		case tempreview.FieldQrCodeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field qr_code_id", values[i])
			} else if value != nil {
				tr.QrCodeID = *value
			}
		case tempreview.FieldReviewText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_text", values[i])
			} else if value.Valid {
				tr.ReviewText = value.String
			}
		case tempreview.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				tr.Language = value.String
			}
		case tempreview.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				tr.Rating = int(value.Int64)
			}
		case tempreview.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				tr.Hash = value.String
			}
		case tempreview.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				tr.SessionID = value.String
			}
		case tempreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				tr.CreatedAt = value.Time
			}
		case tempreview.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				tr.ExpiresAt = value.Time
			}
		default:
			tr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TempReview.
// This includes values selected through modifiers, order, etc.
func (tr *TempReview) Value(name string) (ent.Value, error) {
	return tr.selectValues.Get(name)
}

// QueryQrCode queries the "qr_code" edge of the TempReview entity.
func (tr *TempReview) QueryQrCode() *QRCodeQuery {
	return NewTempReviewClient(tr.config).QueryQrCode(tr)
}

// Update returns a builder for updating this TempReview.
// Note that you need to call TempReview.Unwrap() before calling this method if this TempReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (tr *TempReview) Update() *TempReviewUpdateOne {
	return NewTempReviewClient(tr.config).UpdateOne(tr)
}

// Unwrap unwraps the TempReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tr *TempReview) Unwrap() *TempReview {
	_tx, ok := tr.config.driver.(*txDriver)
	if !ok {
		panic("ent: TempReview is not a transactional entity")
	}
	tr.config.driver = _tx.drv
	return tr
}

// String implements the fmt.Stringer.
func (tr *TempReview) String() string {
	var builder strings.Builder
	builder.WriteString("TempReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tr.ID))
	builder.WriteString("job_id=")
	builder.WriteString(tr.JobID)
	builder.WriteString(", ")
	builder.WriteString("qr_code_id=")
	builder.WriteString(fmt.Sprintf("%v", tr.QrCodeID))
	builder.WriteString(", ")
	builder.WriteString("review_text=")
	builder.WriteString(tr.ReviewText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(tr.Language)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", tr.Rating))
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(tr.Hash)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(tr.SessionID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(tr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(tr.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TempReviews is a parsable slice of TempReview.
type TempReviews []*TempReview
