package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/vendor"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

// CreateVendorRequest wraps parameters for creating a vendor.
type CreateVendorRequest struct {
	UserID          uuid.UUID
	Name            string
	DefaultCategory *string
	DefaultCardID   *uuid.UUID
}

type VendorRepository interface {
	ListVendors(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Vendor, error)
	CreateVendor(ctx context.Context, req *CreateVendorRequest) (*entity.Vendor, error)
	UpdateVendor(ctx context.Context, id uuid.UUID, req *CreateVendorRequest) (*entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{
		client: client,
		logger: logger,
	}
}

func (r *vendorRepository) ListVendors(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	vendors, err := r.client.Vendor.Query().
		Where(vendor.UserID(userID)).
		Order(vendor.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Vendor, len(vendors))
	for i, v := range vendors {
		result[i] = utils.ToVendor(v)
	}
	return result, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().Where(vendor.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().
		Where(vendor.UserID(userID), vendor.NameEqualFold(name)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) CreateVendor(ctx context.Context, req *CreateVendorRequest) (*entity.Vendor, error) {
	builder := r.client.Vendor.Create().
		SetUserID(req.UserID).
		SetName(req.Name).
		// seed the keyword list so fuzzy matching works before any edits
		SetMatchKeywords([]string{strings.ToUpper(req.Name)}).
		SetNillableDefaultCategory(req.DefaultCategory).
		SetNillableDefaultCardID(req.DefaultCardID)

	v, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create vendor", "user_id", req.UserID, "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) UpdateVendor(ctx context.Context, id uuid.UUID, req *CreateVendorRequest) (*entity.Vendor, error) {
	builder := r.client.Vendor.UpdateOneID(id)
	if req.Name != "" {
		builder = builder.SetName(req.Name)
	}
	if req.DefaultCategory != nil {
		builder = builder.SetDefaultCategory(*req.DefaultCategory)
	}
	if req.DefaultCardID != nil {
		builder = builder.SetDefaultCardID(*req.DefaultCardID)
	}
	v, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update vendor", "vendor_id", id, "error", err)
		return nil, err
	}
	return utils.ToVendor(v), nil
}
