package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/auth"
	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type AuthService struct {
	ezbookspb.UnimplementedAuthServiceServer
	users  repository.UserRepository
	cfg    common.AuthConfig
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, cfg common.AuthConfig, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *ezbookspb.SignupRequest) (*ezbookspb.SignupResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	name := strings.TrimSpace(req.GetName())
	if email == "" || name == "" {
		return nil, status.Error(codes.InvalidArgument, "email and name are required")
	}

	u, err := s.users.CreateUser(ctx, &repository.CreateUserRequest{Email: email, Name: name})
	if err != nil {
		s.logger.Error("signup failed", "email", email, "error", err)
		return nil, status.Errorf(codes.Internal, "create user: %v", err)
	}

	token, expiresAt, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("auth.signup.ok", "user_id", u.ID, "email", email)
	return &ezbookspb.SignupResponse{
		User:      utils.ToPBUser(u),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *ezbookspb.LoginRequest) (*ezbookspb.LoginResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, status.Error(codes.NotFound, "no account for that email")
	}

	token, expiresAt, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("auth.login.ok", "user_id", u.ID, "email", email)
	return &ezbookspb.LoginResponse{
		User:      utils.ToPBUser(u),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *AuthService) issue(u *entity.User) (string, time.Time, error) {
	token, expiresAt, err := auth.GenerateToken(u.ID, u.Email, s.cfg)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", u.ID, "error", err)
		return "", time.Time{}, status.Errorf(codes.Internal, "issue token: %v", err)
	}
	return token, expiresAt, nil
}
