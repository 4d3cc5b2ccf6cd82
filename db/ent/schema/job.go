package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/db/ent/schema/utils"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("client_name").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("status").
			Default("ACTIVE").
			Validate(utils.EnumValidator("ACTIVE", "COMPLETED", "ARCHIVED")),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE user (FK: jobs.user_id)
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Required().
			Unique(),
		// ONE job -> MANY receipts
		edge.To("receipts", Receipt.Type),
	}
}
