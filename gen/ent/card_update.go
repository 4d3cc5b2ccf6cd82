// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ezbooks/ezbooks/gen/ent/card"
	"github.com/ezbooks/ezbooks/gen/ent/predicate"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/google/uuid"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CardUpdate) SetUserID(v uuid.UUID) *CardUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableUserID(v *uuid.UUID) *CardUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *CardUpdate) SetNickname(v string) *CardUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *CardUpdate) SetNillableNickname(v *string) *CardUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetLast4 sets the "last4" field.
func (_u *CardUpdate) SetLast4(v string) *CardUpdate {
	_u.mutation.SetLast4(v)
	return _u
}

// SetNillableLast4 sets the "last4" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLast4(v *string) *CardUpdate {
	if v != nil {
		_u.SetLast4(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *CardUpdate) SetBrand(v string) *CardUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBrand(v *string) *CardUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetDefaultCategory sets the "default_category" field.
func (_u *CardUpdate) SetDefaultCategory(v string) *CardUpdate {
	_u.mutation.SetDefaultCategory(v)
	return _u
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDefaultCategory(v *string) *CardUpdate {
	if v != nil {
		_u.SetDefaultCategory(*v)
	}
	return _u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (_u *CardUpdate) ClearDefaultCategory() *CardUpdate {
	_u.mutation.ClearDefaultCategory()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CardUpdate) SetIsActive(v bool) *CardUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CardUpdate) SetNillableIsActive(v *bool) *CardUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardUpdate) SetCreatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCreatedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CardUpdate) SetUser(v *User) *CardUpdate {
	return _u.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *CardUpdate) AddReceiptIDs(ids ...uuid.UUID) *CardUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *CardUpdate) AddReceipts(v ...*Receipt) *CardUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CardUpdate) ClearUser() *CardUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *CardUpdate) ClearReceipts() *CardUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *CardUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *CardUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *CardUpdate) RemoveReceipts(v ...*Receipt) *CardUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Nickname(); ok {
		if err := card.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Card.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Last4(); ok {
		if err := card.Last4Validator(v); err != nil {
			return &ValidationError{Name: "last4", err: fmt.Errorf(`ent: validator failed for field "Card.last4": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := card.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Card.brand": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.user"`)
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(card.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Last4(); ok {
		_spec.SetField(card.FieldLast4, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(card.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCategory(); ok {
		_spec.SetField(card.FieldDefaultCategory, field.TypeString, value)
	}
	if _u.mutation.DefaultCategoryCleared() {
		_spec.ClearField(card.FieldDefaultCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(card.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetUserID sets the "user_id" field.
func (_u *CardUpdateOne) SetUserID(v uuid.UUID) *CardUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableUserID(v *uuid.UUID) *CardUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *CardUpdateOne) SetNickname(v string) *CardUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableNickname(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetLast4 sets the "last4" field.
func (_u *CardUpdateOne) SetLast4(v string) *CardUpdateOne {
	_u.mutation.SetLast4(v)
	return _u
}

// SetNillableLast4 sets the "last4" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLast4(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetLast4(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *CardUpdateOne) SetBrand(v string) *CardUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBrand(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetDefaultCategory sets the "default_category" field.
func (_u *CardUpdateOne) SetDefaultCategory(v string) *CardUpdateOne {
	_u.mutation.SetDefaultCategory(v)
	return _u
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDefaultCategory(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetDefaultCategory(*v)
	}
	return _u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (_u *CardUpdateOne) ClearDefaultCategory() *CardUpdateOne {
	_u.mutation.ClearDefaultCategory()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *CardUpdateOne) SetIsActive(v bool) *CardUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableIsActive(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CardUpdateOne) SetCreatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCreatedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CardUpdateOne) SetUser(v *User) *CardUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *CardUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *CardUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *CardUpdateOne) AddReceipts(v ...*Receipt) *CardUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CardUpdateOne) ClearUser() *CardUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *CardUpdateOne) ClearReceipts() *CardUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *CardUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *CardUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *CardUpdateOne) RemoveReceipts(v ...*Receipt) *CardUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Nickname(); ok {
		if err := card.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Card.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Last4(); ok {
		if err := card.Last4Validator(v); err != nil {
			return &ValidationError{Name: "last4", err: fmt.Errorf(`ent: validator failed for field "Card.last4": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := card.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Card.brand": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.user"`)
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(card.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Last4(); ok {
		_spec.SetField(card.FieldLast4, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(card.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCategory(); ok {
		_spec.SetField(card.FieldDefaultCategory, field.TypeString, value)
	}
	if _u.mutation.DefaultCategoryCleared() {
		_spec.ClearField(card.FieldDefaultCategory, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(card.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
