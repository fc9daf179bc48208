package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TempReview is a generated candidate awaiting user confirmation.
// At most one live row per job_id; rows past expires_at are logically absent
// but kept for the dedup history until the sweeper retires them.
type TempReview struct{ ent.Schema }

func (TempReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "temp_reviews"},
	}
}

func (TempReview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_id").NotEmpty().Unique(),
		field.UUID("qr_code_id", uuid.UUID{}),
		field.String("review_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("language").NotEmpty(),
		field.Int("rating").Min(1).Max(5),
		// sha256 hex over the lowercased, trimmed review text.
		field.String("hash").NotEmpty().MaxLen(64),
		field.String("session_id").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("expires_at"),
	}
}

func (TempReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("qr_code", QRCode.Type).
			Ref("temp_reviews").
			Field("qr_code_id").
			Required().
			Unique(),
	}
}

func (TempReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash"),
		index.Fields("qr_code_id", "created_at"),
		index.Fields("expires_at"),
	}
}
