// Code generated by ent, DO NOT EDIT.

package tempreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tempreview type in the database.
	Label = "temp_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldQrCodeID holds the string denoting the qr_code_id field in the database.
	FieldQrCodeID = "qr_code_id"
	// FieldReviewText holds the string denoting the review_text field in the database.
	FieldReviewText = "review_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// EdgeQrCode holds the string denoting the qr_code edge name in mutations.
	EdgeQrCode = "qr_code"
	// Table holds the table name of the tempreview in the database.
	Table = "temp_reviews"
	// QrCodeTable is the table that holds the qr_code relation/edge.
	QrCodeTable = "temp_reviews"
	// QrCodeInverseTable is the table name for the QRCode entity.
	// It exists in this package in order to avoid circular dependency with the "qrcode" package.
	QrCodeInverseTable = "qr_codes"
	// QrCodeColumn is the table column denoting the qr_code relation/edge.
	QrCodeColumn = "qr_code_id"
)

// Columns holds all SQL columns for tempreview fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldQrCodeID,
	FieldReviewText,
	FieldLanguage,
	FieldRating,
	FieldHash,
	FieldSessionID,
	FieldCreatedAt,
	FieldExpiresAt,
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
	// JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	JobIDValidator func(string) error
	// ReviewTextValidator is a validator for the "review_text" field. It is called by the builders before save.
	ReviewTextValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TempReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByQrCodeID orders the results by the qr_code_id field.
func ByQrCodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQrCodeID, opts...).ToFunc()
}

// ByReviewText orders the results by the review_text field.
func ByReviewText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
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
