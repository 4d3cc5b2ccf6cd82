package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type CategoriesService struct {
	ezbookspb.UnimplementedCategoriesServiceServer
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

func NewCategoriesService(categoryRepo repository.CategoryRepository, logger *slog.Logger) *CategoriesService {
	return &CategoriesService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoriesService) ListCategories(ctx context.Context, _ *ezbookspb.ListCategoriesRequest) (*ezbookspb.ListCategoriesResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list categories: %v", err)
	}

	out := make([]*ezbookspb.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, utils.ToPBCategory(c))
	}
	return &ezbookspb.ListCategoriesResponse{Categories: out}, nil
}
