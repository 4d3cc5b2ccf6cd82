package server

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

var reLast4 = regexp.MustCompile(`^[0-9]{4}$`)

type CardsService struct {
	ezbookspb.UnimplementedCardsServiceServer
	cardRepo repository.CardRepository
	logger   *slog.Logger
}

func NewCardsService(cardRepo repository.CardRepository, logger *slog.Logger) *CardsService {
	return &CardsService{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

func (s *CardsService) ListCards(ctx context.Context, _ *ezbookspb.ListCardsRequest) (*ezbookspb.ListCardsResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.ListCards(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list cards: %v", err)
	}

	out := make([]*ezbookspb.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, utils.ToPBCard(c))
	}
	return &ezbookspb.ListCardsResponse{Cards: out}, nil
}

func (s *CardsService) CreateCard(ctx context.Context, req *ezbookspb.CreateCardRequest) (*ezbookspb.CreateCardResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	nickname := strings.TrimSpace(req.GetNickname())
	if nickname == "" {
		return nil, status.Error(codes.InvalidArgument, "nickname is required")
	}
	if !reLast4.MatchString(req.GetLast4()) {
		return nil, status.Error(codes.InvalidArgument, "last4 must be exactly 4 digits")
	}

	c, err := s.cardRepo.CreateCard(ctx, &repository.CreateCardRequest{
		UserID:          userID,
		Nickname:        nickname,
		Last4:           req.GetLast4(),
		Brand:           strings.TrimSpace(req.GetBrand()),
		DefaultCategory: optionalString(req.GetDefaultCategory()),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create card: %v", err)
	}
	s.logger.Info("card created", "user_id", userID, "card_id", c.ID, "nickname", nickname)
	return &ezbookspb.CreateCardResponse{Card: utils.ToPBCard(c)}, nil
}

func (s *CardsService) DeactivateCard(ctx context.Context, req *ezbookspb.DeactivateCardRequest) (*ezbookspb.DeactivateCardResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	existing, err := s.cardRepo.GetByID(ctx, id)
	if err != nil || existing.UserID != userID {
		return nil, status.Error(codes.NotFound, "card not found")
	}

	c, err := s.cardRepo.DeactivateCard(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "deactivate card: %v", err)
	}
	return &ezbookspb.DeactivateCardResponse{Card: utils.ToPBCard(c)}, nil
}
