// Code generated by ent, DO NOT EDIT.

package qrcode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the qrcode type in the database.
	Label = "qr_code"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldProductSummary holds the string denoting the product_summary field in the database.
	FieldProductSummary = "product_summary"
	// FieldMapsLink holds the string denoting the maps_link field in the database.
	FieldMapsLink = "maps_link"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTempReviews holds the string denoting the temp_reviews edge name in mutations.
	EdgeTempReviews = "temp_reviews"
	// EdgeReviews holds the string denoting the reviews edge name in mutations.
	EdgeReviews = "reviews"
	// EdgeScanLogs holds the string denoting the scan_logs edge name in mutations.
	EdgeScanLogs = "scan_logs"
	// Table holds the table name of the qrcode in the database.
	Table = "qr_codes"
	// TempReviewsTable is the table that holds the temp_reviews relation/edge.
	TempReviewsTable = "temp_reviews"
	// TempReviewsInverseTable is the table name for the TempReview entity.
	// It exists in this package in order to avoid circular dependency with the "tempreview" package.
	TempReviewsInverseTable = "temp_reviews"
	// TempReviewsColumn is the table column denoting the temp_reviews relation/edge.
	TempReviewsColumn = "qr_code_id"
	// ReviewsTable is the table that holds the reviews relation/edge.
	ReviewsTable = "reviews"
	// ReviewsInverseTable is the table name for the Review entity.
	// It exists in this package in order to avoid circular dependency with the "review" package.
	ReviewsInverseTable = "reviews"
	// ReviewsColumn is the table column denoting the reviews relation/edge.
	ReviewsColumn = "qr_code_id"
	// ScanLogsTable is the table that holds the scan_logs relation/edge.
	ScanLogsTable = "scan_log"
	// ScanLogsInverseTable is the table name for the ScanLog entity.
	// It exists in this package in order to avoid circular dependency with the "scanlog" package.
	ScanLogsInverseTable = "scan_log"
	// ScanLogsColumn is the table column denoting the scan_logs relation/edge.
	ScanLogsColumn = "qr_code_id"
)

// Columns holds all SQL columns for qrcode fields.
var Columns = []string{
	FieldID,
	FieldBusinessName,
	FieldProductSummary,
	FieldMapsLink,
	FieldCreatedAt,
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
	// BusinessNameValidator is a validator for the "business_name" field. It is called by the builders before save.
	BusinessNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QRCode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByProductSummary orders the results by the product_summary field.
func ByProductSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductSummary, opts...).ToFunc()
}

// ByMapsLink orders the results by the maps_link field.
func ByMapsLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMapsLink, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTempReviewsCount orders the results by temp_reviews count.
func ByTempReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTempReviewsStep(), opts...)
	}
}

// ByTempReviews orders the results by temp_reviews terms.
func ByTempReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTempReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReviewsCount orders the results by reviews count.
func ByReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReviewsStep(), opts...)
	}
}

// ByReviews orders the results by reviews terms.
func ByReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScanLogsCount orders the results by scan_logs count.
func ByScanLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScanLogsStep(), opts...)
	}
}

// ByScanLogs orders the results by scan_logs terms.
func ByScanLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScanLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTempReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TempReviewsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TempReviewsTable, TempReviewsColumn),
	)
}
func newReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
	)
}
func newScanLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScanLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScanLogsTable, ScanLogsColumn),
	)
}
