package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/entity"
)

type fakeVendorLister struct {
	vendors []*entity.Vendor
	err     error
}

func (f *fakeVendorLister) ListVendors(context.Context, uuid.UUID) ([]*entity.Vendor, error) {
	return f.vendors, f.err
}

type fakeCardLister struct {
	cards []*entity.Card
	err   error
}

func (f *fakeCardLister) ListCards(context.Context, uuid.UUID) ([]*entity.Card, error) {
	return f.cards, f.err
}

func TestMatchVendor(t *testing.T) {
	category := "Materials"
	stored := &entity.Vendor{ID: uuid.New(), Name: "Shop Mart Inc", DefaultCategory: &category}
	m := NewMatcher(&fakeVendorLister{vendors: []*entity.Vendor{stored}}, &fakeCardLister{}, nil)

	got := m.MatchVendor(context.Background(), uuid.New(), "Shop Mart")
	require.NotNil(t, got)
	assert.Equal(t, stored.ID, got.VendorID)
	assert.Equal(t, "Shop Mart Inc", got.Name)
	assert.Equal(t, "Materials", got.Category)
}

func TestMatchVendorDegradesOnStoreError(t *testing.T) {
	m := NewMatcher(&fakeVendorLister{err: errors.New("db down")}, &fakeCardLister{}, nil)
	assert.Nil(t, m.MatchVendor(context.Background(), uuid.New(), "Shop Mart"))
}

func TestMatchVendorEmptyText(t *testing.T) {
	m := NewMatcher(&fakeVendorLister{}, &fakeCardLister{}, nil)
	assert.Nil(t, m.MatchVendor(context.Background(), uuid.New(), ""))
}

func TestMatchCard(t *testing.T) {
	stored := &entity.Card{ID: uuid.New(), Nickname: "Business Visa", Last4: "1234"}
	m := NewMatcher(&fakeVendorLister{}, &fakeCardLister{cards: []*entity.Card{stored}}, nil)

	got := m.MatchCard(context.Background(), uuid.New(), "1234")
	require.NotNil(t, got)
	assert.Equal(t, stored.ID, got.CardID)
	assert.Equal(t, "Business Visa", got.Nickname)

	assert.Nil(t, m.MatchCard(context.Background(), uuid.New(), "9999"))
}

func TestMatchCardDegradesOnStoreError(t *testing.T) {
	m := NewMatcher(&fakeVendorLister{}, &fakeCardLister{err: errors.New("db down")}, nil)
	assert.Nil(t, m.MatchCard(context.Background(), uuid.New(), "1234"))
}
