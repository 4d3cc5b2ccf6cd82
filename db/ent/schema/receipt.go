package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/db/ent/schema/utils"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("card_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		// sha256 of the source bytes, used to skip duplicate drop-folder files
		field.String("content_hash").Optional(),
		// object key in the receipts bucket, set once the upload lands
		field.String("image_key").Optional().Nillable(),
		field.String("vendor_text").Optional().Nillable(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("tx_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("card_last4").Optional().Nillable(),
		field.String("category").Optional().Nillable(),
		field.Text("raw_text").Optional(),
		field.String("status").
			Default("UPLOADED").
			Validate(utils.EnumValidator("UPLOADED", "PARSED", "REVIEW", "FAILED")),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY receipts -> ONE user (FK: receipts.user_id)
		edge.From("user", User.Type).
			Ref("receipts").
			Field("user_id").
			Required().
			Unique(),
		// OPTIONAL: MANY receipts -> ONE vendor (FK: receipts.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("receipts").
			Field("vendor_id").
			Unique(),
		// OPTIONAL: MANY receipts -> ONE card (FK: receipts.card_id)
		edge.From("card", Card.Type).
			Ref("receipts").
			Field("card_id").
			Unique(),
		// OPTIONAL: MANY receipts -> ONE job (FK: receipts.job_id)
		edge.From("job", Job.Type).
			Ref("receipts").
			Field("job_id").
			Unique(),
	}
}
