package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type QRCode struct{ ent.Schema }

func (QRCode) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "qr_codes"},
	}
}

func (QRCode) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("business_name").NotEmpty(),
		// Defaults to business_name at prompt-build time when empty.
		field.String("product_summary").Optional(),
		field.String("maps_link").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (QRCode) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE qr code -> MANY temp reviews
		edge.To("temp_reviews", TempReview.Type),
		// ONE qr code -> MANY permanent reviews
		edge.To("reviews", Review.Type),
		// ONE qr code -> MANY scan log rows
		edge.To("scan_logs", ScanLog.Type),
	}
}
