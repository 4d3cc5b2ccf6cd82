package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/card"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

// CreateCardRequest wraps parameters for creating a card.
type CreateCardRequest struct {
	UserID          uuid.UUID
	Nickname        string
	Last4           string
	Brand           string
	DefaultCategory *string
}

type CardRepository interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)
	CreateCard(ctx context.Context, req *CreateCardRequest) (*entity.Card, error)
	DeactivateCard(ctx context.Context, id uuid.UUID) (*entity.Card, error)
}

type cardRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCardRepository(client *ent.Client, logger *slog.Logger) CardRepository {
	return &cardRepository{
		client: client,
		logger: logger,
	}
}

func (r *cardRepository) ListCards(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	cards, err := r.client.Card.Query().
		Where(card.UserID(userID), card.IsActive(true)).
		Order(card.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list cards", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Card, len(cards))
	for i, c := range cards {
		result[i] = utils.ToCard(c)
	}
	return result, nil
}

func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	c, err := r.client.Card.Query().Where(card.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCard(c), nil
}

func (r *cardRepository) CreateCard(ctx context.Context, req *CreateCardRequest) (*entity.Card, error) {
	c, err := r.client.Card.Create().
		SetUserID(req.UserID).
		SetNickname(req.Nickname).
		SetLast4(req.Last4).
		SetBrand(req.Brand).
		SetNillableDefaultCategory(req.DefaultCategory).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create card", "user_id", req.UserID, "nickname", req.Nickname, "error", err)
		return nil, err
	}
	return utils.ToCard(c), nil
}

func (r *cardRepository) DeactivateCard(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	c, err := r.client.Card.UpdateOneID(id).SetIsActive(false).Save(ctx)
	if err != nil {
		r.logger.Error("failed to deactivate card", "card_id", id, "error", err)
		return nil, err
	}
	return utils.ToCard(c), nil
}
