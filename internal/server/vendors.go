package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type VendorsService struct {
	ezbookspb.UnimplementedVendorsServiceServer
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

func NewVendorsService(vendorRepo repository.VendorRepository, logger *slog.Logger) *VendorsService {
	return &VendorsService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (s *VendorsService) ListVendors(ctx context.Context, _ *ezbookspb.ListVendorsRequest) (*ezbookspb.ListVendorsResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.ListVendors(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list vendors: %v", err)
	}

	out := make([]*ezbookspb.Vendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, utils.ToPBVendor(v))
	}
	return &ezbookspb.ListVendorsResponse{Vendors: out}, nil
}

func (s *VendorsService) CreateVendor(ctx context.Context, req *ezbookspb.CreateVendorRequest) (*ezbookspb.CreateVendorResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	cardID, err := optionalUUID(req.GetDefaultCardId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "default_card_id must be a UUID")
	}

	v, err := s.vendorRepo.CreateVendor(ctx, &repository.CreateVendorRequest{
		UserID:          userID,
		Name:            name,
		DefaultCategory: optionalString(req.GetDefaultCategory()),
		DefaultCardID:   cardID,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create vendor: %v", err)
	}
	s.logger.Info("vendor created", "user_id", userID, "vendor_id", v.ID, "name", name)
	return &ezbookspb.CreateVendorResponse{Vendor: utils.ToPBVendor(v)}, nil
}

func (s *VendorsService) UpdateVendor(ctx context.Context, req *ezbookspb.UpdateVendorRequest) (*ezbookspb.UpdateVendorResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	existing, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil || existing.UserID != userID {
		return nil, status.Error(codes.NotFound, "vendor not found")
	}
	cardID, err := optionalUUID(req.GetDefaultCardId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "default_card_id must be a UUID")
	}

	v, err := s.vendorRepo.UpdateVendor(ctx, id, &repository.CreateVendorRequest{
		Name:            strings.TrimSpace(req.GetName()),
		DefaultCategory: optionalString(req.GetDefaultCategory()),
		DefaultCardID:   cardID,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "update vendor: %v", err)
	}
	return &ezbookspb.UpdateVendorResponse{Vendor: utils.ToPBVendor(v)}, nil
}
