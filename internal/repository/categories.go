package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ezbooks/ezbooks/constants"
	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/category"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	Seed(ctx context.Context) error
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.client.Category.
		Query().
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Category, len(categories))
	for i, cat := range categories {
		result[i] = utils.ToCategory(cat)
	}
	return result, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCategory(cat), nil
}

// Seed inserts the built-in contractor categories, skipping ones that exist.
func (r *categoryRepository) Seed(ctx context.Context) error {
	for _, name := range constants.AsStringSlice() {
		err := r.client.Category.Create().
			SetName(name).
			OnConflictColumns(category.FieldName).
			DoNothing().
			Exec(ctx)
		// a do-nothing conflict surfaces as ErrNoRows from the id scan
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			r.logger.Error("failed to seed category", "name", name, "error", err)
			return err
		}
	}
	return nil
}
