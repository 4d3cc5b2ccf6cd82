// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ezbooks/ezbooks/gen/ent/predicate"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/ezbooks/ezbooks/gen/ent/vendor"
	"github.com/google/uuid"
)

// VendorUpdate is the builder for updating Vendor entities.
type VendorUpdate struct {
	config
	hooks    []Hook
	mutation *VendorMutation
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdate) Where(ps ...predicate.Vendor) *VendorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VendorUpdate) SetUserID(v uuid.UUID) *VendorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableUserID(v *uuid.UUID) *VendorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *VendorUpdate) SetName(v string) *VendorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableName(v *string) *VendorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultCategory sets the "default_category" field.
func (_u *VendorUpdate) SetDefaultCategory(v string) *VendorUpdate {
	_u.mutation.SetDefaultCategory(v)
	return _u
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableDefaultCategory(v *string) *VendorUpdate {
	if v != nil {
		_u.SetDefaultCategory(*v)
	}
	return _u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (_u *VendorUpdate) ClearDefaultCategory() *VendorUpdate {
	_u.mutation.ClearDefaultCategory()
	return _u
}

// SetDefaultCardID sets the "default_card_id" field.
func (_u *VendorUpdate) SetDefaultCardID(v uuid.UUID) *VendorUpdate {
	_u.mutation.SetDefaultCardID(v)
	return _u
}

// SetNillableDefaultCardID sets the "default_card_id" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableDefaultCardID(v *uuid.UUID) *VendorUpdate {
	if v != nil {
		_u.SetDefaultCardID(*v)
	}
	return _u
}

// ClearDefaultCardID clears the value of the "default_card_id" field.
func (_u *VendorUpdate) ClearDefaultCardID() *VendorUpdate {
	_u.mutation.ClearDefaultCardID()
	return _u
}

// SetMatchKeywords sets the "match_keywords" field.
func (_u *VendorUpdate) SetMatchKeywords(v []string) *VendorUpdate {
	_u.mutation.SetMatchKeywords(v)
	return _u
}

// AppendMatchKeywords appends value to the "match_keywords" field.
func (_u *VendorUpdate) AppendMatchKeywords(v []string) *VendorUpdate {
	_u.mutation.AppendMatchKeywords(v)
	return _u
}

// ClearMatchKeywords clears the value of the "match_keywords" field.
func (_u *VendorUpdate) ClearMatchKeywords() *VendorUpdate {
	_u.mutation.ClearMatchKeywords()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdate) SetCreatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdate) SetNillableCreatedAt(v *time.Time) *VendorUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdate) SetUpdatedAt(v time.Time) *VendorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VendorUpdate) SetUser(v *User) *VendorUpdate {
	return _u.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *VendorUpdate) AddReceiptIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *VendorUpdate) AddReceipts(v ...*Receipt) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdate) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VendorUpdate) ClearUser() *VendorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *VendorUpdate) ClearReceipts() *VendorUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *VendorUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *VendorUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *VendorUpdate) RemoveReceipts(v ...*Receipt) *VendorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vendor.user"`)
	}
	return nil
}

func (_u *VendorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCategory(); ok {
		_spec.SetField(vendor.FieldDefaultCategory, field.TypeString, value)
	}
	if _u.mutation.DefaultCategoryCleared() {
		_spec.ClearField(vendor.FieldDefaultCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCardID(); ok {
		_spec.SetField(vendor.FieldDefaultCardID, field.TypeUUID, value)
	}
	if _u.mutation.DefaultCardIDCleared() {
		_spec.ClearField(vendor.FieldDefaultCardID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MatchKeywords(); ok {
		_spec.SetField(vendor.FieldMatchKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldMatchKeywords, value)
		})
	}
	if _u.mutation.MatchKeywordsCleared() {
		_spec.ClearField(vendor.FieldMatchKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorUpdateOne is the builder for updating a single Vendor entity.
type VendorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorMutation
}

// SetUserID sets the "user_id" field.
func (_u *VendorUpdateOne) SetUserID(v uuid.UUID) *VendorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableUserID(v *uuid.UUID) *VendorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *VendorUpdateOne) SetName(v string) *VendorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableName(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultCategory sets the "default_category" field.
func (_u *VendorUpdateOne) SetDefaultCategory(v string) *VendorUpdateOne {
	_u.mutation.SetDefaultCategory(v)
	return _u
}

// SetNillableDefaultCategory sets the "default_category" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableDefaultCategory(v *string) *VendorUpdateOne {
	if v != nil {
		_u.SetDefaultCategory(*v)
	}
	return _u
}

// ClearDefaultCategory clears the value of the "default_category" field.
func (_u *VendorUpdateOne) ClearDefaultCategory() *VendorUpdateOne {
	_u.mutation.ClearDefaultCategory()
	return _u
}

// SetDefaultCardID sets the "default_card_id" field.
func (_u *VendorUpdateOne) SetDefaultCardID(v uuid.UUID) *VendorUpdateOne {
	_u.mutation.SetDefaultCardID(v)
	return _u
}

// SetNillableDefaultCardID sets the "default_card_id" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableDefaultCardID(v *uuid.UUID) *VendorUpdateOne {
	if v != nil {
		_u.SetDefaultCardID(*v)
	}
	return _u
}

// ClearDefaultCardID clears the value of the "default_card_id" field.
func (_u *VendorUpdateOne) ClearDefaultCardID() *VendorUpdateOne {
	_u.mutation.ClearDefaultCardID()
	return _u
}

// SetMatchKeywords sets the "match_keywords" field.
func (_u *VendorUpdateOne) SetMatchKeywords(v []string) *VendorUpdateOne {
	_u.mutation.SetMatchKeywords(v)
	return _u
}

// AppendMatchKeywords appends value to the "match_keywords" field.
func (_u *VendorUpdateOne) AppendMatchKeywords(v []string) *VendorUpdateOne {
	_u.mutation.AppendMatchKeywords(v)
	return _u
}

// ClearMatchKeywords clears the value of the "match_keywords" field.
func (_u *VendorUpdateOne) ClearMatchKeywords() *VendorUpdateOne {
	_u.mutation.ClearMatchKeywords()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorUpdateOne) SetCreatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorUpdateOne) SetNillableCreatedAt(v *time.Time) *VendorUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VendorUpdateOne) SetUpdatedAt(v time.Time) *VendorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VendorUpdateOne) SetUser(v *User) *VendorUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *VendorUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *VendorUpdateOne) AddReceipts(v ...*Receipt) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the VendorMutation object of the builder.
func (_u *VendorUpdateOne) Mutation() *VendorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VendorUpdateOne) ClearUser() *VendorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *VendorUpdateOne) ClearReceipts() *VendorUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *VendorUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *VendorUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *VendorUpdateOne) RemoveReceipts(v ...*Receipt) *VendorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Where appends a list predicates to the VendorUpdate builder.
func (_u *VendorUpdateOne) Where(ps ...predicate.Vendor) *VendorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorUpdateOne) Select(field string, fields ...string) *VendorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vendor entity.
func (_u *VendorUpdateOne) Save(ctx context.Context) (*Vendor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorUpdateOne) SaveX(ctx context.Context) *Vendor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VendorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vendor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vendor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vendor.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Vendor.user"`)
	}
	return nil
}

func (_u *VendorUpdateOne) sqlSave(ctx context.Context) (_node *Vendor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendor.Table, vendor.Columns, sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vendor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendor.FieldID)
		for _, f := range fields {
			if !vendor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vendor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCategory(); ok {
		_spec.SetField(vendor.FieldDefaultCategory, field.TypeString, value)
	}
	if _u.mutation.DefaultCategoryCleared() {
		_spec.ClearField(vendor.FieldDefaultCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCardID(); ok {
		_spec.SetField(vendor.FieldDefaultCardID, field.TypeUUID, value)
	}
	if _u.mutation.DefaultCardIDCleared() {
		_spec.ClearField(vendor.FieldDefaultCardID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MatchKeywords(); ok {
		_spec.SetField(vendor.FieldMatchKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendor.FieldMatchKeywords, value)
		})
	}
	if _u.mutation.MatchKeywordsCleared() {
		_spec.ClearField(vendor.FieldMatchKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendor.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vendor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vendor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
