package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/db/ent/schema/utils"
)

// ScanLog is the append-only audit trail. Rows are never mutated or deleted.
type ScanLog struct{ ent.Schema }

func (ScanLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_log"},
	}
}

func (ScanLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("qr_code_id", uuid.UUID{}).Immutable(),
		field.String("job_id").Optional().Immutable(),
		field.String("device_id").Optional().Immutable(),
		field.String("action").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.ScanActions...)),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (ScanLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("qr_code", QRCode.Type).
			Ref("scan_logs").
			Field("qr_code_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (ScanLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("qr_code_id", "action", "timestamp"),
		index.Fields("job_id"),
	}
}
