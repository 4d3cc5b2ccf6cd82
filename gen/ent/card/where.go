// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ezbooks/ezbooks/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUserID, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNickname, v))
}

// Last4 applies equality check predicate on the "last4" field. It's identical to Last4EQ.
func Last4(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLast4, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBrand, v))
}

// DefaultCategory applies equality check predicate on the "default_category" field. It's identical to DefaultCategoryEQ.
func DefaultCategory(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDefaultCategory, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldUserID, vs...))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldNickname, v))
}

// Last4EQ applies the EQ predicate on the "last4" field.
func Last4EQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLast4, v))
}

// Last4NEQ applies the NEQ predicate on the "last4" field.
func Last4NEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldLast4, v))
}

// Last4In applies the In predicate on the "last4" field.
func Last4In(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldLast4, vs...))
}

// Last4NotIn applies the NotIn predicate on the "last4" field.
func Last4NotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldLast4, vs...))
}

// Last4GT applies the GT predicate on the "last4" field.
func Last4GT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldLast4, v))
}

// Last4GTE applies the GTE predicate on the "last4" field.
func Last4GTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldLast4, v))
}

// Last4LT applies the LT predicate on the "last4" field.
func Last4LT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldLast4, v))
}

// Last4LTE applies the LTE predicate on the "last4" field.
func Last4LTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldLast4, v))
}

// Last4Contains applies the Contains predicate on the "last4" field.
func Last4Contains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldLast4, v))
}

// Last4HasPrefix applies the HasPrefix predicate on the "last4" field.
func Last4HasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldLast4, v))
}

// Last4HasSuffix applies the HasSuffix predicate on the "last4" field.
func Last4HasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldLast4, v))
}

// Last4EqualFold applies the EqualFold predicate on the "last4" field.
func Last4EqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldLast4, v))
}

// Last4ContainsFold applies the ContainsFold predicate on the "last4" field.
func Last4ContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldLast4, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBrand, v))
}

// DefaultCategoryEQ applies the EQ predicate on the "default_category" field.
func DefaultCategoryEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldDefaultCategory, v))
}

// DefaultCategoryNEQ applies the NEQ predicate on the "default_category" field.
func DefaultCategoryNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldDefaultCategory, v))
}

// DefaultCategoryIn applies the In predicate on the "default_category" field.
func DefaultCategoryIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldDefaultCategory, vs...))
}

// DefaultCategoryNotIn applies the NotIn predicate on the "default_category" field.
func DefaultCategoryNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldDefaultCategory, vs...))
}

// DefaultCategoryGT applies the GT predicate on the "default_category" field.
func DefaultCategoryGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldDefaultCategory, v))
}

// DefaultCategoryGTE applies the GTE predicate on the "default_category" field.
func DefaultCategoryGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldDefaultCategory, v))
}

// DefaultCategoryLT applies the LT predicate on the "default_category" field.
func DefaultCategoryLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldDefaultCategory, v))
}

// DefaultCategoryLTE applies the LTE predicate on the "default_category" field.
func DefaultCategoryLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldDefaultCategory, v))
}

// DefaultCategoryContains applies the Contains predicate on the "default_category" field.
func DefaultCategoryContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldDefaultCategory, v))
}

// DefaultCategoryHasPrefix applies the HasPrefix predicate on the "default_category" field.
func DefaultCategoryHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldDefaultCategory, v))
}

// DefaultCategoryHasSuffix applies the HasSuffix predicate on the "default_category" field.
func DefaultCategoryHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldDefaultCategory, v))
}

// DefaultCategoryIsNil applies the IsNil predicate on the "default_category" field.
func DefaultCategoryIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldDefaultCategory))
}

// DefaultCategoryNotNil applies the NotNil predicate on the "default_category" field.
func DefaultCategoryNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldDefaultCategory))
}

// DefaultCategoryEqualFold applies the EqualFold predicate on the "default_category" field.
func DefaultCategoryEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldDefaultCategory, v))
}

// DefaultCategoryContainsFold applies the ContainsFold predicate on the "default_category" field.
func DefaultCategoryContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldDefaultCategory, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReceipts applies the HasEdge predicate on the "receipts" edge.
func HasReceipts() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReceiptsTable, ReceiptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptsWith applies the HasEdge predicate on the "receipts" edge with a given conditions (other predicates).
func HasReceiptsWith(preds ...predicate.Receipt) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newReceiptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
