// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ezbooks/ezbooks/gen/ent/card"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/google/uuid"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CardCreate) SetUserID(v uuid.UUID) *CardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *CardCreate) SetNickname(v string) *CardCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetLast4 sets the "last4" field.
func (_c *CardCreate) SetLast4(v string) *CardCreate {
	_c.mutation.SetLast4(v)
	return _c
}

// SetBrand sets the "brand" field.
func (_c *CardCreate) SetBrand(v string) *CardCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetDefaultCategory sets the "default_category" field.
func (_c *CardCreate) SetDefaultCategory(v string) *CardCreate {
	_c.mutation.SetDefaultCategory(v)
	return _c
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_c *CardCreate) SetNillableDefaultCategory(v *string) *CardCreate {
	if v != nil {
		_c.SetDefaultCategory(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *CardCreate) SetIsActive(v bool) *CardCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *CardCreate) SetNillableIsActive(v *bool) *CardCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardCreate) SetUpdatedAt(v time.Time) *CardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableUpdatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardCreate) SetID(v uuid.UUID) *CardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardCreate) SetNillableID(v *uuid.UUID) *CardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CardCreate) SetUser(v *User) *CardCreate {
	return _c.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_c *CardCreate) AddReceiptIDs(ids ...uuid.UUID) *CardCreate {
	_c.mutation.AddReceiptIDs(ids...)
	return _c
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_c *CardCreate) AddReceipts(v ...*Receipt) *CardCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiptIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := card.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := card.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := card.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Card.user_id"`)}
	}
	if _, ok := _c.mutation.Nickname(); !ok {
		return &ValidationError{Name: "nickname", err: errors.New(`ent: missing required field "Card.nickname"`)}
	}
	if v, ok := _c.mutation.Nickname(); ok {
		if err := card.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Card.nickname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Last4(); !ok {
		return &ValidationError{Name: "last4", err: errors.New(`ent: missing required field "Card.last4"`)}
	}
	if v, ok := _c.mutation.Last4(); ok {
		if err := card.Last4Validator(v); err != nil {
			return &ValidationError{Name: "last4", err: fmt.Errorf(`ent: validator failed for field "Card.last4": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Brand(); !ok {
		return &ValidationError{Name: "brand", err: errors.New(`ent: missing required field "Card.brand"`)}
	}
	if v, ok := _c.mutation.Brand(); ok {
		if err := card.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Card.brand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Card.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Card.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Card.user"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(card.FieldNickname, field.TypeString, value)
		_node.Nickname = value
	}
	if value, ok := _c.mutation.Last4(); ok {
		_spec.SetField(card.FieldLast4, field.TypeString, value)
		_node.Last4 = value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(card.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.DefaultCategory(); ok {
		_spec.SetField(card.FieldDefaultCategory, field.TypeString, value)
		_node.DefaultCategory = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(card.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   card.UserTable,
			Columns: []string{card.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   card.ReceiptsTable,
			Columns: []string{card.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Card.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CardCreate) OnConflict(opts ...sql.ConflictOption) *CardUpsertOne {
	_c.conflict = opts
	return &CardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Card.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CardCreate) OnConflictColumns(columns ...string) *CardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CardUpsertOne{
		create: _c,
	}
}

type (
	// CardUpsertOne is the builder for "upsert"-ing
	//  one Card node.
	CardUpsertOne struct {
		create *CardCreate
	}

	// CardUpsert is the "OnConflict" setter.
	CardUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CardUpsert) SetUserID(v uuid.UUID) *CardUpsert {
	u.Set(card.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CardUpsert) UpdateUserID() *CardUpsert {
	u.SetExcluded(card.FieldUserID)
	return u
}

// SetNickname sets the "nickname" field.
func (u *CardUpsert) SetNickname(v string) *CardUpsert {
	u.Set(card.FieldNickname, v)
	return u
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *CardUpsert) UpdateNickname() *CardUpsert {
	u.SetExcluded(card.FieldNickname)
	return u
}

// SetLast4 sets the "last4" field.
func (u *CardUpsert) SetLast4(v string) *CardUpsert {
	u.Set(card.FieldLast4, v)
	return u
}

// UpdateLast4 sets the "last4" field to the value that was provided on create.
func (u *CardUpsert) UpdateLast4() *CardUpsert {
	u.SetExcluded(card.FieldLast4)
	return u
}

// SetBrand sets the "brand" field.
func (u *CardUpsert) SetBrand(v string) *CardUpsert {
	u.Set(card.FieldBrand, v)
	return u
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CardUpsert) UpdateBrand() *CardUpsert {
	u.SetExcluded(card.FieldBrand)
	return u
}

// SetDefaultCategory sets the "default_category" field.
func (u *CardUpsert) SetDefaultCategory(v string) *CardUpsert {
	u.Set(card.FieldDefaultCategory, v)
	return u
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *CardUpsert) UpdateDefaultCategory() *CardUpsert {
	u.SetExcluded(card.FieldDefaultCategory)
	return u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *CardUpsert) ClearDefaultCategory() *CardUpsert {
	u.SetNull(card.FieldDefaultCategory)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *CardUpsert) SetIsActive(v bool) *CardUpsert {
	u.Set(card.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CardUpsert) UpdateIsActive() *CardUpsert {
	u.SetExcluded(card.FieldIsActive)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CardUpsert) SetCreatedAt(v time.Time) *CardUpsert {
	u.Set(card.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CardUpsert) UpdateCreatedAt() *CardUpsert {
	u.SetExcluded(card.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CardUpsert) SetUpdatedAt(v time.Time) *CardUpsert {
	u.Set(card.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CardUpsert) UpdateUpdatedAt() *CardUpsert {
	u.SetExcluded(card.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Card.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(card.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CardUpsertOne) UpdateNewValues() *CardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(card.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Card.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CardUpsertOne) Ignore() *CardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CardUpsertOne) DoNothing() *CardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CardCreate.OnConflict
// documentation for more info.
func (u *CardUpsertOne) Update(set func(*CardUpsert)) *CardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CardUpsertOne) SetUserID(v uuid.UUID) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateUserID() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateUserID()
	})
}

// SetNickname sets the "nickname" field.
func (u *CardUpsertOne) SetNickname(v string) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateNickname() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateNickname()
	})
}

// SetLast4 sets the "last4" field.
func (u *CardUpsertOne) SetLast4(v string) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetLast4(v)
	})
}

// UpdateLast4 sets the "last4" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateLast4() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateLast4()
	})
}

// SetBrand sets the "brand" field.
func (u *CardUpsertOne) SetBrand(v string) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateBrand() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateBrand()
	})
}

// SetDefaultCategory sets the "default_category" field.
func (u *CardUpsertOne) SetDefaultCategory(v string) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetDefaultCategory(v)
	})
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateDefaultCategory() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateDefaultCategory()
	})
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *CardUpsertOne) ClearDefaultCategory() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.ClearDefaultCategory()
	})
}

// SetIsActive sets the "is_active" field.
func (u *CardUpsertOne) SetIsActive(v bool) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateIsActive() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateIsActive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CardUpsertOne) SetCreatedAt(v time.Time) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateCreatedAt() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CardUpsertOne) SetUpdatedAt(v time.Time) *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CardUpsertOne) UpdateUpdatedAt() *CardUpsertOne {
	return u.Update(func(s *CardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CardUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CardUpsertOne.ID is not supported by MySQL driver. Use CardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CardUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
	conflict []sql.ConflictOption
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Card.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CardCreateBulk) OnConflict(opts ...sql.ConflictOption) *CardUpsertBulk {
	_c.conflict = opts
	return &CardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Card.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CardCreateBulk) OnConflictColumns(columns ...string) *CardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CardUpsertBulk{
		create: _c,
	}
}

// CardUpsertBulk is the builder for "upsert"-ing
// a bulk of Card nodes.
type CardUpsertBulk struct {
	create *CardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Card.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(card.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CardUpsertBulk) UpdateNewValues() *CardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(card.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Card.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CardUpsertBulk) Ignore() *CardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CardUpsertBulk) DoNothing() *CardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CardCreateBulk.OnConflict
// documentation for more info.
func (u *CardUpsertBulk) Update(set func(*CardUpsert)) *CardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CardUpsertBulk) SetUserID(v uuid.UUID) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateUserID() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateUserID()
	})
}

// SetNickname sets the "nickname" field.
func (u *CardUpsertBulk) SetNickname(v string) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateNickname() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateNickname()
	})
}

// SetLast4 sets the "last4" field.
func (u *CardUpsertBulk) SetLast4(v string) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetLast4(v)
	})
}

// UpdateLast4 sets the "last4" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateLast4() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateLast4()
	})
}

// SetBrand sets the "brand" field.
func (u *CardUpsertBulk) SetBrand(v string) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateBrand() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateBrand()
	})
}

// SetDefaultCategory sets the "default_category" field.
func (u *CardUpsertBulk) SetDefaultCategory(v string) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetDefaultCategory(v)
	})
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateDefaultCategory() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateDefaultCategory()
	})
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *CardUpsertBulk) ClearDefaultCategory() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.ClearDefaultCategory()
	})
}

// SetIsActive sets the "is_active" field.
func (u *CardUpsertBulk) SetIsActive(v bool) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateIsActive() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateIsActive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CardUpsertBulk) SetCreatedAt(v time.Time) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateCreatedAt() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CardUpsertBulk) SetUpdatedAt(v time.Time) *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CardUpsertBulk) UpdateUpdatedAt() *CardUpsertBulk {
	return u.Update(func(s *CardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
