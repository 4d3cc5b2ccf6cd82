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
	"github.com/ezbooks/ezbooks/gen/ent/job"
	"github.com/ezbooks/ezbooks/gen/ent/predicate"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/ezbooks/ezbooks/gen/ent/vendor"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdate) SetUserID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableUserID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *ReceiptUpdate) SetVendorID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVendorID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *ReceiptUpdate) ClearVendorID() *ReceiptUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReceiptUpdate) SetCardID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCardID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// ClearCardID clears the value of the "card_id" field.
func (_u *ReceiptUpdate) ClearCardID() *ReceiptUpdate {
	_u.mutation.ClearCardID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ReceiptUpdate) SetJobID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableJobID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ReceiptUpdate) ClearJobID() *ReceiptUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReceiptUpdate) SetFilename(v string) *ReceiptUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableFilename(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReceiptUpdate) SetContentHash(v string) *ReceiptUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableContentHash(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ReceiptUpdate) ClearContentHash() *ReceiptUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ReceiptUpdate) SetImageKey(v string) *ReceiptUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableImageKey(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ReceiptUpdate) ClearImageKey() *ReceiptUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetVendorText sets the "vendor_text" field.
func (_u *ReceiptUpdate) SetVendorText(v string) *ReceiptUpdate {
	_u.mutation.SetVendorText(v)
	return _u
}

// SetNillableVendorText sets the "vendor_text" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVendorText(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetVendorText(*v)
	}
	return _u
}

// ClearVendorText clears the value of the "vendor_text" field.
func (_u *ReceiptUpdate) ClearVendorText() *ReceiptUpdate {
	_u.mutation.ClearVendorText()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdate) SetAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdate) AddAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ReceiptUpdate) ClearAmount() *ReceiptUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdate) SetTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTaxAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdate) AddTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdate) ClearTaxAmount() *ReceiptUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdate) SetTxDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTxDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// ClearTxDate clears the value of the "tx_date" field.
func (_u *ReceiptUpdate) ClearTxDate() *ReceiptUpdate {
	_u.mutation.ClearTxDate()
	return _u
}

// SetCardLast4 sets the "card_last4" field.
func (_u *ReceiptUpdate) SetCardLast4(v string) *ReceiptUpdate {
	_u.mutation.SetCardLast4(v)
	return _u
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCardLast4(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCardLast4(*v)
	}
	return _u
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (_u *ReceiptUpdate) ClearCardLast4() *ReceiptUpdate {
	_u.mutation.ClearCardLast4()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdate) SetCategory(v string) *ReceiptUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCategory(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptUpdate) ClearCategory() *ReceiptUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptUpdate) SetRawText(v string) *ReceiptUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableRawText(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReceiptUpdate) ClearRawText() *ReceiptUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdate) SetStatus(v string) *ReceiptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStatus(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReceiptUpdate) SetUser(v *User) *ReceiptUpdate {
	return _u.SetUserID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *ReceiptUpdate) SetVendor(v *Vendor) *ReceiptUpdate {
	return _u.SetVendorID(v.ID)
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ReceiptUpdate) SetCard(v *Card) *ReceiptUpdate {
	return _u.SetCardID(v.ID)
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ReceiptUpdate) SetJob(v *Job) *ReceiptUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReceiptUpdate) ClearUser() *ReceiptUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *ReceiptUpdate) ClearVendor() *ReceiptUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ReceiptUpdate) ClearCard() *ReceiptUpdate {
	_u.mutation.ClearCard()
	return _u
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ReceiptUpdate) ClearJob() *ReceiptUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := receipt.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.user"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(receipt.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(receipt.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(receipt.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(receipt.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.VendorText(); ok {
		_spec.SetField(receipt.FieldVendorText, field.TypeString, value)
	}
	if _u.mutation.VendorTextCleared() {
		_spec.ClearField(receipt.FieldVendorText, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(receipt.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if _u.mutation.TxDateCleared() {
		_spec.ClearField(receipt.FieldTxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CardLast4(); ok {
		_spec.SetField(receipt.FieldCardLast4, field.TypeString, value)
	}
	if _u.mutation.CardLast4Cleared() {
		_spec.ClearField(receipt.FieldCardLast4, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receipt.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receipt.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(receipt.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdateOne) SetUserID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableUserID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *ReceiptUpdateOne) SetVendorID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVendorID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *ReceiptUpdateOne) ClearVendorID() *ReceiptUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReceiptUpdateOne) SetCardID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCardID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// ClearCardID clears the value of the "card_id" field.
func (_u *ReceiptUpdateOne) ClearCardID() *ReceiptUpdateOne {
	_u.mutation.ClearCardID()
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ReceiptUpdateOne) SetJobID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableJobID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *ReceiptUpdateOne) ClearJobID() *ReceiptUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReceiptUpdateOne) SetFilename(v string) *ReceiptUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableFilename(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ReceiptUpdateOne) SetContentHash(v string) *ReceiptUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableContentHash(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ReceiptUpdateOne) ClearContentHash() *ReceiptUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *ReceiptUpdateOne) SetImageKey(v string) *ReceiptUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableImageKey(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *ReceiptUpdateOne) ClearImageKey() *ReceiptUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetVendorText sets the "vendor_text" field.
func (_u *ReceiptUpdateOne) SetVendorText(v string) *ReceiptUpdateOne {
	_u.mutation.SetVendorText(v)
	return _u
}

// SetNillableVendorText sets the "vendor_text" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVendorText(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVendorText(*v)
	}
	return _u
}

// ClearVendorText clears the value of the "vendor_text" field.
func (_u *ReceiptUpdateOne) ClearVendorText() *ReceiptUpdateOne {
	_u.mutation.ClearVendorText()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdateOne) SetAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdateOne) AddAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *ReceiptUpdateOne) ClearAmount() *ReceiptUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdateOne) SetTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTaxAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdateOne) AddTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdateOne) ClearTaxAmount() *ReceiptUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdateOne) SetTxDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTxDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// ClearTxDate clears the value of the "tx_date" field.
func (_u *ReceiptUpdateOne) ClearTxDate() *ReceiptUpdateOne {
	_u.mutation.ClearTxDate()
	return _u
}

// SetCardLast4 sets the "card_last4" field.
func (_u *ReceiptUpdateOne) SetCardLast4(v string) *ReceiptUpdateOne {
	_u.mutation.SetCardLast4(v)
	return _u
}

// SetNillableCardLast4 sets the "card_last4" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCardLast4(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCardLast4(*v)
	}
	return _u
}

// ClearCardLast4 clears the value of the "card_last4" field.
func (_u *ReceiptUpdateOne) ClearCardLast4() *ReceiptUpdateOne {
	_u.mutation.ClearCardLast4()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdateOne) SetCategory(v string) *ReceiptUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCategory(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptUpdateOne) ClearCategory() *ReceiptUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptUpdateOne) SetRawText(v string) *ReceiptUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableRawText(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReceiptUpdateOne) ClearRawText() *ReceiptUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdateOne) SetStatus(v string) *ReceiptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStatus(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReceiptUpdateOne) SetUser(v *User) *ReceiptUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *ReceiptUpdateOne) SetVendor(v *Vendor) *ReceiptUpdateOne {
	return _u.SetVendorID(v.ID)
}

// SetCard sets the "card" edge to the Card entity.
func (_u *ReceiptUpdateOne) SetCard(v *Card) *ReceiptUpdateOne {
	return _u.SetCardID(v.ID)
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ReceiptUpdateOne) SetJob(v *Job) *ReceiptUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReceiptUpdateOne) ClearUser() *ReceiptUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *ReceiptUpdateOne) ClearVendor() *ReceiptUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearCard clears the "card" edge to the Card entity.
func (_u *ReceiptUpdateOne) ClearCard() *ReceiptUpdateOne {
	_u.mutation.ClearCard()
	return _u
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ReceiptUpdateOne) ClearJob() *ReceiptUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := receipt.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.user"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(receipt.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(receipt.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(receipt.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(receipt.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(receipt.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.VendorText(); ok {
		_spec.SetField(receipt.FieldVendorText, field.TypeString, value)
	}
	if _u.mutation.VendorTextCleared() {
		_spec.ClearField(receipt.FieldVendorText, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(receipt.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if _u.mutation.TxDateCleared() {
		_spec.ClearField(receipt.FieldTxDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CardLast4(); ok {
		_spec.SetField(receipt.FieldCardLast4, field.TypeString, value)
	}
	if _u.mutation.CardLast4Cleared() {
		_spec.ClearField(receipt.FieldCardLast4, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receipt.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receipt.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(receipt.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
