package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/user"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

// CreateUserRequest wraps parameters for creating a user.
type CreateUserRequest struct {
	Email string
	Name  string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.Email(email)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	u, err := r.client.User.Create().
		SetEmail(req.Email).
		SetName(req.Name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "email", req.Email, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(user.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
