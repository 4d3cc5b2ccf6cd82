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

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("default_category").Optional().Nillable(),
		field.UUID("default_card_id", uuid.UUID{}).Optional().Nillable(),
		// naive keyword list for fuzzy matching; seeded with the upper-cased name
		field.Strings("match_keywords").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY vendors -> ONE user (FK: vendors.user_id)
		edge.From("user", User.Type).
			Ref("vendors").
			Field("user_id").
			Required().
			Unique(),
		// ONE vendor -> MANY receipts
		edge.To("receipts", Receipt.Type),
	}
}
