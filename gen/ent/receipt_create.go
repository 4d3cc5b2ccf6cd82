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
	"github.com/ezbooks/ezbooks/gen/ent/job"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/ezbooks/ezbooks/gen/ent/vendor"
	"github.com/google/uuid"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ReceiptCreate) SetUserID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *ReceiptCreate) SetVendorID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableVendorID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetVendorID(*v)
	}
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *ReceiptCreate) SetCardID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCardID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetCardID(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ReceiptCreate) SetJobID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableJobID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ReceiptCreate) SetFilename(v string) *ReceiptCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ReceiptCreate) SetContentHash(v string) *ReceiptCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableContentHash(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *ReceiptCreate) SetImageKey(v string) *ReceiptCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableImageKey(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetVendorText sets the "vendor_text" field.
func (_c *ReceiptCreate) SetVendorText(v string) *ReceiptCreate {
	_c.mutation.SetVendorText(v)
	return _c
}

// SetNillableVendorText sets the "vendor_text" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableVendorText(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetVendorText(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ReceiptCreate) SetAmount(v float64) *ReceiptCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *ReceiptCreate) SetTaxAmount(v float64) *ReceiptCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTaxAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *ReceiptCreate) SetTxDate(v time.Time) *ReceiptCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTxDate(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetTxDate(*v)
	}
	return _c
}

// SetCardLast4 sets the "card_last4" field.
func (_c *ReceiptCreate) SetCardLast4(v string) *ReceiptCreate {
	_c.mutation.SetCardLast4(v)
	return _c
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCardLast4(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCardLast4(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ReceiptCreate) SetCategory(v string) *ReceiptCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCategory(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ReceiptCreate) SetRawText(v string) *ReceiptCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableRawText(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReceiptCreate) SetStatus(v string) *ReceiptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableStatus(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReceiptCreate) SetUpdatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableUpdatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ReceiptCreate) SetUser(v *User) *ReceiptCreate {
	return _c.SetUserID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *ReceiptCreate) SetVendor(v *Vendor) *ReceiptCreate {
	return _c.SetVendorID(v.ID)
}

// SetCard sets the "card" edge to the Card entity.
func (_c *ReceiptCreate) SetCard(v *Card) *ReceiptCreate {
	return _c.SetCardID(v.ID)
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ReceiptCreate) SetJob(v *Job) *ReceiptCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := receipt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := receipt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Receipt.user_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Receipt.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := receipt.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Receipt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Receipt.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Receipt.user"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
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

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(receipt.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(receipt.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if value, ok := _c.mutation.VendorText(); ok {
		_spec.SetField(receipt.FieldVendorText, field.TypeString, value)
		_node.VendorText = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
		_node.TxDate = &value
	}
	if value, ok := _c.mutation.CardLast4(); ok {
		_spec.SetField(receipt.FieldCardLast4, field.TypeString, value)
		_node.CardLast4 = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(receipt.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.UserTable,
			Columns: []string{receipt.UserColumn},
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
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.VendorTable,
			Columns: []string{receipt.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VendorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.CardTable,
			Columns: []string{receipt.CardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CardID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.JobTable,
			Columns: []string{receipt.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Receipt.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptCreate) OnConflict(opts ...sql.ConflictOption) *ReceiptUpsertOne {
	_c.conflict = opts
	return &ReceiptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptCreate) OnConflictColumns(columns ...string) *ReceiptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptUpsertOne{
		create: _c,
	}
}

type (
	// ReceiptUpsertOne is the builder for "upsert"-ing
	//  one Receipt node.
	ReceiptUpsertOne struct {
		create *ReceiptCreate
	}

	// ReceiptUpsert is the "OnConflict" setter.
	ReceiptUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ReceiptUpsert) SetUserID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateUserID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldUserID)
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *ReceiptUpsert) SetVendorID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldVendorID, v)
	return u
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateVendorID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldVendorID)
	return u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (u *ReceiptUpsert) ClearVendorID() *ReceiptUpsert {
	u.SetNull(receipt.FieldVendorID)
	return u
}

// SetCardID sets the "card_id" field.
func (u *ReceiptUpsert) SetCardID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldCardID, v)
	return u
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateCardID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldCardID)
	return u
}

// ClearCardID clears the value of the "card_id" field.
func (u *ReceiptUpsert) ClearCardID() *ReceiptUpsert {
	u.SetNull(receipt.FieldCardID)
	return u
}

// SetJobID sets the "job_id" field.
func (u *ReceiptUpsert) SetJobID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateJobID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *ReceiptUpsert) ClearJobID() *ReceiptUpsert {
	u.SetNull(receipt.FieldJobID)
	return u
}

// SetFilename sets the "filename" field.
func (u *ReceiptUpsert) SetFilename(v string) *ReceiptUpsert {
	u.Set(receipt.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateFilename() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldFilename)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *ReceiptUpsert) SetContentHash(v string) *ReceiptUpsert {
	u.Set(receipt.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateContentHash() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *ReceiptUpsert) ClearContentHash() *ReceiptUpsert {
	u.SetNull(receipt.FieldContentHash)
	return u
}

// SetImageKey sets the "image_key" field.
func (u *ReceiptUpsert) SetImageKey(v string) *ReceiptUpsert {
	u.Set(receipt.FieldImageKey, v)
	return u
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateImageKey() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldImageKey)
	return u
}

// ClearImageKey clears the value of the "image_key" field.
func (u *ReceiptUpsert) ClearImageKey() *ReceiptUpsert {
	u.SetNull(receipt.FieldImageKey)
	return u
}

// SetVendorText sets the "vendor_text" field.
func (u *ReceiptUpsert) SetVendorText(v string) *ReceiptUpsert {
	u.Set(receipt.FieldVendorText, v)
	return u
}

// UpdateVendorText sets the "vendor_text" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateVendorText() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldVendorText)
	return u
}

// ClearVendorText clears the value of the "vendor_text" field.
func (u *ReceiptUpsert) ClearVendorText() *ReceiptUpsert {
	u.SetNull(receipt.FieldVendorText)
	return u
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsert) SetAmount(v float64) *ReceiptUpsert {
	u.Set(receipt.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateAmount() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *ReceiptUpsert) AddAmount(v float64) *ReceiptUpsert {
	u.Add(receipt.FieldAmount, v)
	return u
}

// ClearAmount clears the value of the "amount" field.
func (u *ReceiptUpsert) ClearAmount() *ReceiptUpsert {
	u.SetNull(receipt.FieldAmount)
	return u
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ReceiptUpsert) SetTaxAmount(v float64) *ReceiptUpsert {
	u.Set(receipt.FieldTaxAmount, v)
	return u
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateTaxAmount() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldTaxAmount)
	return u
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ReceiptUpsert) AddTaxAmount(v float64) *ReceiptUpsert {
	u.Add(receipt.FieldTaxAmount, v)
	return u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ReceiptUpsert) ClearTaxAmount() *ReceiptUpsert {
	u.SetNull(receipt.FieldTaxAmount)
	return u
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsert) SetTxDate(v time.Time) *ReceiptUpsert {
	u.Set(receipt.FieldTxDate, v)
	return u
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateTxDate() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldTxDate)
	return u
}

// ClearTxDate clears the value of the "tx_date" field.
func (u *ReceiptUpsert) ClearTxDate() *ReceiptUpsert {
	u.SetNull(receipt.FieldTxDate)
	return u
}

// SetCardLast4 sets the "card_last4" field.
func (u *ReceiptUpsert) SetCardLast4(v string) *ReceiptUpsert {
	u.Set(receipt.FieldCardLast4, v)
	return u
}

// UpdateCardLast4 sets the "card_last4" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateCardLast4() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldCardLast4)
	return u
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (u *ReceiptUpsert) ClearCardLast4() *ReceiptUpsert {
	u.SetNull(receipt.FieldCardLast4)
	return u
}

// SetCategory sets the "category" field.
func (u *ReceiptUpsert) SetCategory(v string) *ReceiptUpsert {
	u.Set(receipt.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateCategory() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *ReceiptUpsert) ClearCategory() *ReceiptUpsert {
	u.SetNull(receipt.FieldCategory)
	return u
}

// SetRawText sets the "raw_text" field.
func (u *ReceiptUpsert) SetRawText(v string) *ReceiptUpsert {
	u.Set(receipt.FieldRawText, v)
	return u
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateRawText() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldRawText)
	return u
}

// ClearRawText clears the value of the "raw_text" field.
func (u *ReceiptUpsert) ClearRawText() *ReceiptUpsert {
	u.SetNull(receipt.FieldRawText)
	return u
}

// SetStatus sets the "status" field.
func (u *ReceiptUpsert) SetStatus(v string) *ReceiptUpsert {
	u.Set(receipt.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateStatus() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsert) SetCreatedAt(v time.Time) *ReceiptUpsert {
	u.Set(receipt.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateCreatedAt() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReceiptUpsert) SetUpdatedAt(v time.Time) *ReceiptUpsert {
	u.Set(receipt.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateUpdatedAt() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receipt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptUpsertOne) UpdateNewValues() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(receipt.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReceiptUpsertOne) Ignore() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptUpsertOne) DoNothing() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptCreate.OnConflict
// documentation for more info.
func (u *ReceiptUpsertOne) Update(set func(*ReceiptUpsert)) *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReceiptUpsertOne) SetUserID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateUserID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateUserID()
	})
}

// SetVendorID sets the "vendor_id" field.
func (u *ReceiptUpsertOne) SetVendorID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateVendorID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateVendorID()
	})
}

// ClearVendorID clears the value of the "vendor_id" field.
func (u *ReceiptUpsertOne) ClearVendorID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearVendorID()
	})
}

// SetCardID sets the "card_id" field.
func (u *ReceiptUpsertOne) SetCardID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCardID(v)
	})
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateCardID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCardID()
	})
}

// ClearCardID clears the value of the "card_id" field.
func (u *ReceiptUpsertOne) ClearCardID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCardID()
	})
}

// SetJobID sets the "job_id" field.
func (u *ReceiptUpsertOne) SetJobID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateJobID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *ReceiptUpsertOne) ClearJobID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearJobID()
	})
}

// SetFilename sets the "filename" field.
func (u *ReceiptUpsertOne) SetFilename(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateFilename() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateFilename()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *ReceiptUpsertOne) SetContentHash(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateContentHash() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *ReceiptUpsertOne) ClearContentHash() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearContentHash()
	})
}

// SetImageKey sets the "image_key" field.
func (u *ReceiptUpsertOne) SetImageKey(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateImageKey() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *ReceiptUpsertOne) ClearImageKey() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearImageKey()
	})
}

// SetVendorText sets the "vendor_text" field.
func (u *ReceiptUpsertOne) SetVendorText(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetVendorText(v)
	})
}

// UpdateVendorText sets the "vendor_text" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateVendorText() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateVendorText()
	})
}

// ClearVendorText clears the value of the "vendor_text" field.
func (u *ReceiptUpsertOne) ClearVendorText() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearVendorText()
	})
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsertOne) SetAmount(v float64) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ReceiptUpsertOne) AddAmount(v float64) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateAmount() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateAmount()
	})
}

// ClearAmount clears the value of the "amount" field.
func (u *ReceiptUpsertOne) ClearAmount() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearAmount()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ReceiptUpsertOne) SetTaxAmount(v float64) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ReceiptUpsertOne) AddTaxAmount(v float64) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateTaxAmount() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTaxAmount()
	})
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ReceiptUpsertOne) ClearTaxAmount() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearTaxAmount()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsertOne) SetTxDate(v time.Time) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateTxDate() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTxDate()
	})
}

// ClearTxDate clears the value of the "tx_date" field.
func (u *ReceiptUpsertOne) ClearTxDate() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearTxDate()
	})
}

// SetCardLast4 sets the "card_last4" field.
func (u *ReceiptUpsertOne) SetCardLast4(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCardLast4(v)
	})
}

// UpdateCardLast4 sets the "card_last4" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateCardLast4() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCardLast4()
	})
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (u *ReceiptUpsertOne) ClearCardLast4() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCardLast4()
	})
}

// SetCategory sets the "category" field.
func (u *ReceiptUpsertOne) SetCategory(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateCategory() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ReceiptUpsertOne) ClearCategory() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCategory()
	})
}

// SetRawText sets the "raw_text" field.
func (u *ReceiptUpsertOne) SetRawText(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateRawText() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateRawText()
	})
}

// ClearRawText clears the value of the "raw_text" field.
func (u *ReceiptUpsertOne) ClearRawText() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearRawText()
	})
}

// SetStatus sets the "status" field.
func (u *ReceiptUpsertOne) SetStatus(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateStatus() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsertOne) SetCreatedAt(v time.Time) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateCreatedAt() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReceiptUpsertOne) SetUpdatedAt(v time.Time) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateUpdatedAt() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReceiptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReceiptUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReceiptUpsertOne.ID is not supported by MySQL driver. Use ReceiptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReceiptUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
	conflict []sql.ConflictOption
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
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
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Receipt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReceiptUpsertBulk {
	_c.conflict = opts
	return &ReceiptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptCreateBulk) OnConflictColumns(columns ...string) *ReceiptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptUpsertBulk{
		create: _c,
	}
}

// ReceiptUpsertBulk is the builder for "upsert"-ing
// a bulk of Receipt nodes.
type ReceiptUpsertBulk struct {
	create *ReceiptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receipt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptUpsertBulk) UpdateNewValues() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(receipt.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReceiptUpsertBulk) Ignore() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptUpsertBulk) DoNothing() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptCreateBulk.OnConflict
// documentation for more info.
func (u *ReceiptUpsertBulk) Update(set func(*ReceiptUpsert)) *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReceiptUpsertBulk) SetUserID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateUserID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateUserID()
	})
}

// SetVendorID sets the "vendor_id" field.
func (u *ReceiptUpsertBulk) SetVendorID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateVendorID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateVendorID()
	})
}

// ClearVendorID clears the value of the "vendor_id" field.
func (u *ReceiptUpsertBulk) ClearVendorID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearVendorID()
	})
}

// SetCardID sets the "card_id" field.
func (u *ReceiptUpsertBulk) SetCardID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCardID(v)
	})
}

// UpdateCardID sets the "card_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateCardID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCardID()
	})
}

// ClearCardID clears the value of the "card_id" field.
func (u *ReceiptUpsertBulk) ClearCardID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCardID()
	})
}

// SetJobID sets the "job_id" field.
func (u *ReceiptUpsertBulk) SetJobID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateJobID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *ReceiptUpsertBulk) ClearJobID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearJobID()
	})
}

// SetFilename sets the "filename" field.
func (u *ReceiptUpsertBulk) SetFilename(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateFilename() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateFilename()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *ReceiptUpsertBulk) SetContentHash(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateContentHash() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *ReceiptUpsertBulk) ClearContentHash() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearContentHash()
	})
}

// SetImageKey sets the "image_key" field.
func (u *ReceiptUpsertBulk) SetImageKey(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateImageKey() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *ReceiptUpsertBulk) ClearImageKey() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearImageKey()
	})
}

// SetVendorText sets the "vendor_text" field.
func (u *ReceiptUpsertBulk) SetVendorText(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetVendorText(v)
	})
}

// UpdateVendorText sets the "vendor_text" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateVendorText() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateVendorText()
	})
}

// ClearVendorText clears the value of the "vendor_text" field.
func (u *ReceiptUpsertBulk) ClearVendorText() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearVendorText()
	})
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsertBulk) SetAmount(v float64) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *ReceiptUpsertBulk) AddAmount(v float64) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateAmount() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateAmount()
	})
}

// ClearAmount clears the value of the "amount" field.
func (u *ReceiptUpsertBulk) ClearAmount() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearAmount()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *ReceiptUpsertBulk) SetTaxAmount(v float64) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *ReceiptUpsertBulk) AddTaxAmount(v float64) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateTaxAmount() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTaxAmount()
	})
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (u *ReceiptUpsertBulk) ClearTaxAmount() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearTaxAmount()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsertBulk) SetTxDate(v time.Time) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateTxDate() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTxDate()
	})
}

// ClearTxDate clears the value of the "tx_date" field.
func (u *ReceiptUpsertBulk) ClearTxDate() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearTxDate()
	})
}

// SetCardLast4 sets the "card_last4" field.
func (u *ReceiptUpsertBulk) SetCardLast4(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCardLast4(v)
	})
}

// UpdateCardLast4 sets the "card_last4" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateCardLast4() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCardLast4()
	})
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (u *ReceiptUpsertBulk) ClearCardLast4() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCardLast4()
	})
}

// SetCategory sets the "category" field.
func (u *ReceiptUpsertBulk) SetCategory(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateCategory() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ReceiptUpsertBulk) ClearCategory() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearCategory()
	})
}

// SetRawText sets the "raw_text" field.
func (u *ReceiptUpsertBulk) SetRawText(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetRawText(v)
	})
}

// UpdateRawText sets the "raw_text" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateRawText() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateRawText()
	})
}

// ClearRawText clears the value of the "raw_text" field.
func (u *ReceiptUpsertBulk) ClearRawText() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearRawText()
	})
}

// SetStatus sets the "status" field.
func (u *ReceiptUpsertBulk) SetStatus(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateStatus() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsertBulk) SetCreatedAt(v time.Time) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateCreatedAt() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReceiptUpsertBulk) SetUpdatedAt(v time.Time) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateUpdatedAt() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReceiptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReceiptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
