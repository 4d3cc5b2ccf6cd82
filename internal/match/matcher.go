package match

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/extract"
)

// VendorLister and CardLister are the read-only slices of the record store
// the matcher needs. Both are satisfied by the repository package.
type VendorLister interface {
	ListVendors(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error)
}

type CardLister interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)
}

// Matcher resolves extracted text against a user's stored vendor and card
// records. A store failure is never fatal: the match degrades to absent and
// vendor/card assignment is left for a manual edit.
type Matcher struct {
	vendors VendorLister
	cards   CardLister
	logger  *slog.Logger
}

func NewMatcher(vendors VendorLister, cards CardLister, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{vendors: vendors, cards: cards, logger: logger}
}

// MatchVendor returns a suggestion for the best-scoring stored vendor, or nil.
func (m *Matcher) MatchVendor(ctx context.Context, userID uuid.UUID, vendorText string) *extract.VendorSuggestion {
	if vendorText == "" || m.vendors == nil {
		return nil
	}
	records, err := m.vendors.ListVendors(ctx, userID)
	if err != nil {
		m.logger.Warn("match.vendor.list_failed", "user_id", userID, "error", err)
		return nil
	}
	best := BestVendor(vendorText, records)
	if best == nil {
		return nil
	}
	suggestion := &extract.VendorSuggestion{
		VendorID: best.ID,
		Name:     best.Name,
	}
	if best.DefaultCategory != nil {
		suggestion.Category = *best.DefaultCategory
	}
	return suggestion
}

// MatchCard returns the stored card with the exact last-4 digits, or nil.
func (m *Matcher) MatchCard(ctx context.Context, userID uuid.UUID, last4 string) *extract.CardMatch {
	if last4 == "" || m.cards == nil {
		return nil
	}
	records, err := m.cards.ListCards(ctx, userID)
	if err != nil {
		m.logger.Warn("match.card.list_failed", "user_id", userID, "error", err)
		return nil
	}
	best := BestCard(last4, records)
	if best == nil {
		return nil
	}
	return &extract.CardMatch{
		CardID:   best.ID,
		Last4:    best.Last4,
		Nickname: best.Nickname,
	}
}
