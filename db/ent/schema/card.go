package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

var reLast4 = regexp.MustCompile(`^[0-9]{4}$`)

var errLast4 = errors.New("invalid last 4 digits")

type Card struct{ ent.Schema }

func (Card) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cards"},
	}
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("nickname").NotEmpty(),
		field.String("last4").
			Validate(func(s string) error {
				if reLast4.MatchString(s) {
					return nil
				}
				return errLast4
			}),
		field.String("brand").NotEmpty(),
		field.String("default_category").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY cards -> ONE user (FK: cards.user_id)
		edge.From("user", User.Type).
			Ref("cards").
			Field("user_id").
			Required().
			Unique(),
		// ONE card -> MANY receipts
		edge.To("receipts", Receipt.Type),
	}
}
