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
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/ezbooks/ezbooks/gen/ent/vendor"
	"github.com/google/uuid"
)

// VendorCreate is the builder for creating a Vendor entity.
type VendorCreate struct {
	config
	mutation *VendorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *VendorCreate) SetUserID(v uuid.UUID) *VendorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *VendorCreate) SetName(v string) *VendorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDefaultCategory sets the "default_category" field.
func (_c *VendorCreate) SetDefaultCategory(v string) *VendorCreate {
	_c.mutation.SetDefaultCategory(v)
	return _c
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_c *VendorCreate) SetNillableDefaultCategory(v *string) *VendorCreate {
	if v != nil {
		_c.SetDefaultCategory(*v)
	}
	return _c
}

// SetDefaultCardID sets the "default_card_id" field.
func (_c *VendorCreate) SetDefaultCardID(v uuid.UUID) *VendorCreate {
	_c.mutation.SetDefaultCardID(v)
	return _c
}

// SetNillableDefaultCardID sets the "default_card_id" field if the given value is not nil.
func (_c *VendorCreate) SetNillableDefaultCardID(v *uuid.UUID) *VendorCreate {
	if v != nil {
		_c.SetDefaultCardID(*v)
	}
	return _c
}

// SetMatchKeywords sets the "match_keywords" field.
func (_c *VendorCreate) SetMatchKeywords(v []string) *VendorCreate {
	_c.mutation.SetMatchKeywords(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VendorCreate) SetCreatedAt(v time.Time) *VendorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VendorCreate) SetNillableCreatedAt(v *time.Time) *VendorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VendorCreate) SetUpdatedAt(v time.Time) *VendorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VendorCreate) SetNillableUpdatedAt(v *time.Time) *VendorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VendorCreate) SetID(v uuid.UUID) *VendorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VendorCreate) SetNillableID(v *uuid.UUID) *VendorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *VendorCreate) SetUser(v *User) *VendorCreate {
	return _c.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_c *VendorCreate) AddReceiptIDs(ids ...uuid.UUID) *VendorCreate {
	_c.mutation.AddReceiptIDs(ids...)
	return _c
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_c *VendorCreate) AddReceipts(v ...*Receipt) *VendorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiptIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_c *VendorCreate) Mutation() *VendorMutation {
	return _c.mutation
}

// Save creates the Vendor in the database.
func (_c *VendorCreate) Save(ctx context.Context) (*Vendor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VendorCreate) SaveX(ctx context.Context) *Vendor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VendorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vendor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vendor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vendor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VendorCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Vendor.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Vendor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vendor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vendor.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Vendor.user"`)}
	}
	return nil
}

func (_c *VendorCreate) sqlSave(ctx context.Context) (*Vendor, error) {
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

func (_c *VendorCreate) createSpec() (*Vendor, *sqlgraph.CreateSpec) {
	var (
		_node = &Vendor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vendor.Table, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DefaultCategory(); ok {
		_spec.SetField(vendor.FieldDefaultCategory, field.TypeString, value)
		_node.DefaultCategory = &value
	}
	if value, ok := _c.mutation.DefaultCardID(); ok {
		_spec.SetField(vendor.FieldDefaultCardID, field.TypeUUID, value)
		_node.DefaultCardID = &value
	}
	if value, ok := _c.mutation.MatchKeywords(); ok {
		_spec.SetField(vendor.FieldMatchKeywords, field.TypeJSON, value)
		_node.MatchKeywords = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendor.UserTable,
			Columns: []string{vendor.UserColumn},
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
			Table:   vendor.ReceiptsTable,
			Columns: []string{vendor.ReceiptsColumn},
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
//	client.Vendor.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *VendorCreate) OnConflict(opts ...sql.ConflictOption) *VendorUpsertOne {
	_c.conflict = opts
	return &VendorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vendor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VendorCreate) OnConflictColumns(columns ...string) *VendorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VendorUpsertOne{
		create: _c,
	}
}

type (
	// VendorUpsertOne is the builder for "upsert"-ing
	//  one Vendor node.
	VendorUpsertOne struct {
		create *VendorCreate
	}

	// VendorUpsert is the "OnConflict" setter.
	VendorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *VendorUpsert) SetUserID(v uuid.UUID) *VendorUpsert {
	u.Set(vendor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VendorUpsert) UpdateUserID() *VendorUpsert {
	u.SetExcluded(vendor.FieldUserID)
	return u
}

// SetName sets the "name" field.
func (u *VendorUpsert) SetName(v string) *VendorUpsert {
	u.Set(vendor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VendorUpsert) UpdateName() *VendorUpsert {
	u.SetExcluded(vendor.FieldName)
	return u
}

// SetDefaultCategory sets the "default_category" field.
func (u *VendorUpsert) SetDefaultCategory(v string) *VendorUpsert {
	u.Set(vendor.FieldDefaultCategory, v)
	return u
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *VendorUpsert) UpdateDefaultCategory() *VendorUpsert {
	u.SetExcluded(vendor.FieldDefaultCategory)
	return u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *VendorUpsert) ClearDefaultCategory() *VendorUpsert {
	u.SetNull(vendor.FieldDefaultCategory)
	return u
}

// SetDefaultCardID sets the "default_card_id" field.
func (u *VendorUpsert) SetDefaultCardID(v uuid.UUID) *VendorUpsert {
	u.Set(vendor.FieldDefaultCardID, v)
	return u
}

// UpdateDefaultCardID sets the "default_card_id" field to the value that was provided on create.
func (u *VendorUpsert) UpdateDefaultCardID() *VendorUpsert {
	u.SetExcluded(vendor.FieldDefaultCardID)
	return u
}

// ClearDefaultCardID clears the value of the "default_card_id" field.
func (u *VendorUpsert) ClearDefaultCardID() *VendorUpsert {
	u.SetNull(vendor.FieldDefaultCardID)
	return u
}

// SetMatchKeywords sets the "match_keywords" field.
func (u *VendorUpsert) SetMatchKeywords(v []string) *VendorUpsert {
	u.Set(vendor.FieldMatchKeywords, v)
	return u
}

// UpdateMatchKeywords sets the "match_keywords" field to the value that was provided on create.
func (u *VendorUpsert) UpdateMatchKeywords() *VendorUpsert {
	u.SetExcluded(vendor.FieldMatchKeywords)
	return u
}

// ClearMatchKeywords clears the value of the "match_keywords" field.
func (u *VendorUpsert) ClearMatchKeywords() *VendorUpsert {
	u.SetNull(vendor.FieldMatchKeywords)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *VendorUpsert) SetCreatedAt(v time.Time) *VendorUpsert {
	u.Set(vendor.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VendorUpsert) UpdateCreatedAt() *VendorUpsert {
	u.SetExcluded(vendor.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorUpsert) SetUpdatedAt(v time.Time) *VendorUpsert {
	u.Set(vendor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorUpsert) UpdateUpdatedAt() *VendorUpsert {
	u.SetExcluded(vendor.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Vendor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorUpsertOne) UpdateNewValues() *VendorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vendor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vendor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VendorUpsertOne) Ignore() *VendorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorUpsertOne) DoNothing() *VendorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorCreate.OnConflict
// documentation for more info.
func (u *VendorUpsertOne) Update(set func(*VendorUpsert)) *VendorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *VendorUpsertOne) SetUserID(v uuid.UUID) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateUserID() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *VendorUpsertOne) SetName(v string) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateName() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateName()
	})
}

// SetDefaultCategory sets the "default_category" field.
func (u *VendorUpsertOne) SetDefaultCategory(v string) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetDefaultCategory(v)
	})
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateDefaultCategory() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateDefaultCategory()
	})
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *VendorUpsertOne) ClearDefaultCategory() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.ClearDefaultCategory()
	})
}

// SetDefaultCardID sets the "default_card_id" field.
func (u *VendorUpsertOne) SetDefaultCardID(v uuid.UUID) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetDefaultCardID(v)
	})
}

// UpdateDefaultCardID sets the "default_card_id" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateDefaultCardID() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateDefaultCardID()
	})
}

// ClearDefaultCardID clears the value of the "default_card_id" field.
func (u *VendorUpsertOne) ClearDefaultCardID() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.ClearDefaultCardID()
	})
}

// SetMatchKeywords sets the "match_keywords" field.
func (u *VendorUpsertOne) SetMatchKeywords(v []string) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetMatchKeywords(v)
	})
}

// UpdateMatchKeywords sets the "match_keywords" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateMatchKeywords() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateMatchKeywords()
	})
}

// ClearMatchKeywords clears the value of the "match_keywords" field.
func (u *VendorUpsertOne) ClearMatchKeywords() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.ClearMatchKeywords()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *VendorUpsertOne) SetCreatedAt(v time.Time) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateCreatedAt() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorUpsertOne) SetUpdatedAt(v time.Time) *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorUpsertOne) UpdateUpdatedAt() *VendorUpsertOne {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VendorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VendorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VendorUpsertOne.ID is not supported by MySQL driver. Use VendorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VendorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VendorCreateBulk is the builder for creating many Vendor entities in bulk.
type VendorCreateBulk struct {
	config
	err      error
	builders []*VendorCreate
	conflict []sql.ConflictOption
}

// Save creates the Vendor entities in the database.
func (_c *VendorCreateBulk) Save(ctx context.Context) ([]*Vendor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vendor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorMutation)
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
func (_c *VendorCreateBulk) SaveX(ctx context.Context) []*Vendor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vendor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VendorUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *VendorCreateBulk) OnConflict(opts ...sql.ConflictOption) *VendorUpsertBulk {
	_c.conflict = opts
	return &VendorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vendor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VendorCreateBulk) OnConflictColumns(columns ...string) *VendorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VendorUpsertBulk{
		create: _c,
	}
}

// VendorUpsertBulk is the builder for "upsert"-ing
// a bulk of Vendor nodes.
type VendorUpsertBulk struct {
	create *VendorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vendor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vendor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VendorUpsertBulk) UpdateNewValues() *VendorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vendor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vendor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VendorUpsertBulk) Ignore() *VendorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VendorUpsertBulk) DoNothing() *VendorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VendorCreateBulk.OnConflict
// documentation for more info.
func (u *VendorUpsertBulk) Update(set func(*VendorUpsert)) *VendorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VendorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *VendorUpsertBulk) SetUserID(v uuid.UUID) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateUserID() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *VendorUpsertBulk) SetName(v string) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateName() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateName()
	})
}

// SetDefaultCategory sets the "default_category" field.
func (u *VendorUpsertBulk) SetDefaultCategory(v string) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetDefaultCategory(v)
	})
}

// UpdateDefaultCategory sets the "default_category" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateDefaultCategory() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateDefaultCategory()
	})
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (u *VendorUpsertBulk) ClearDefaultCategory() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.ClearDefaultCategory()
	})
}

// SetDefaultCardID sets the "default_card_id" field.
func (u *VendorUpsertBulk) SetDefaultCardID(v uuid.UUID) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetDefaultCardID(v)
	})
}

// UpdateDefaultCardID sets the "default_card_id" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateDefaultCardID() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateDefaultCardID()
	})
}

// ClearDefaultCardID clears the value of the "default_card_id" field.
func (u *VendorUpsertBulk) ClearDefaultCardID() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.ClearDefaultCardID()
	})
}

// SetMatchKeywords sets the "match_keywords" field.
func (u *VendorUpsertBulk) SetMatchKeywords(v []string) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetMatchKeywords(v)
	})
}

// UpdateMatchKeywords sets the "match_keywords" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateMatchKeywords() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateMatchKeywords()
	})
}

// ClearMatchKeywords clears the value of the "match_keywords" field.
func (u *VendorUpsertBulk) ClearMatchKeywords() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.ClearMatchKeywords()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *VendorUpsertBulk) SetCreatedAt(v time.Time) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateCreatedAt() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VendorUpsertBulk) SetUpdatedAt(v time.Time) *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VendorUpsertBulk) UpdateUpdatedAt() *VendorUpsertBulk {
	return u.Update(func(s *VendorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VendorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VendorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VendorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VendorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
