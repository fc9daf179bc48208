// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QrCodesColumns holds the columns for the "qr_codes" table.
	QrCodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "business_name", Type: field.TypeString},
		{Name: "product_summary", Type: field.TypeString, Nullable: true},
		{Name: "maps_link", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QrCodesTable holds the schema information for the "qr_codes" table.
	QrCodesTable = &schema.Table{
		Name:       "qr_codes",
		Columns:    QrCodesColumns,
		PrimaryKey: []*schema.Column{QrCodesColumns[0]},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "review_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "language", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "qr_code_id", Type: field.TypeUUID},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_qr_codes_reviews",
				Columns:    []*schema.Column{ReviewsColumns[6]},
				RefColumns: []*schema.Column{QrCodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_qr_code_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[6], ReviewsColumns[5]},
			},
		},
	}
	// ScanLogColumns holds the columns for the "scan_log" table.
	ScanLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "device_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "qr_code_id", Type: field.TypeUUID},
	}
	// ScanLogTable holds the schema information for the "scan_log" table.
	ScanLogTable = &schema.Table{
		Name:       "scan_log",
		Columns:    ScanLogColumns,
		PrimaryKey: []*schema.Column{ScanLogColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_log_qr_codes_scan_logs",
				Columns:    []*schema.Column{ScanLogColumns[5]},
				RefColumns: []*schema.Column{QrCodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanlog_qr_code_id_action_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScanLogColumns[5], ScanLogColumns[3], ScanLogColumns[4]},
			},
			{
				Name:    "scanlog_job_id",
				Unique:  false,
				Columns: []*schema.Column{ScanLogColumns[1]},
			},
		},
	}
	// TempReviewsColumns holds the columns for the "temp_reviews" table.
	TempReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "review_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "language", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "hash", Type: field.TypeString, Size: 64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "qr_code_id", Type: field.TypeUUID},
	}
	// TempReviewsTable holds the schema information for the "temp_reviews" table.
	TempReviewsTable = &schema.Table{
		Name:       "temp_reviews",
		Columns:    TempReviewsColumns,
		PrimaryKey: []*schema.Column{TempReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "temp_reviews_qr_codes_temp_reviews",
				Columns:    []*schema.Column{TempReviewsColumns[9]},
				RefColumns: []*schema.Column{QrCodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tempreview_hash",
				Unique:  false,
				Columns: []*schema.Column{TempReviewsColumns[5]},
			},
			{
				Name:    "tempreview_qr_code_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TempReviewsColumns[9], TempReviewsColumns[7]},
			},
			{
				Name:    "tempreview_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TempReviewsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QrCodesTable,
		ReviewsTable,
		ScanLogTable,
		TempReviewsTable,
	}
)

func init() {
	QrCodesTable.Annotation = &entsql.Annotation{
		Table: "qr_codes",
	}
	ReviewsTable.ForeignKeys[0].RefTable = QrCodesTable
	ReviewsTable.Annotation = &entsql.Annotation{
		Table: "reviews",
	}
	ScanLogTable.ForeignKeys[0].RefTable = QrCodesTable
	ScanLogTable.Annotation = &entsql.Annotation{
		Table: "scan_log",
	}
	TempReviewsTable.ForeignKeys[0].RefTable = QrCodesTable
	TempReviewsTable.Annotation = &entsql.Annotation{
		Table: "temp_reviews",
	}
}
