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

// Review is the durable artifact. Created only on finalize; never updated.
type Review struct{ ent.Schema }

func (Review) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reviews"},
	}
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("qr_code_id", uuid.UUID{}).Immutable(),
		field.String("review_text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("language").NotEmpty().Immutable(),
		field.Int("rating").Min(1).Max(5).Immutable(),
		// Provenance tag, e.g. "auto-generated".
		field.String("source").NotEmpty().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("qr_code", QRCode.Type).
			Ref("reviews").
			Field("qr_code_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("qr_code_id", "created_at"),
	}
}
