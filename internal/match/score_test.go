package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/entity"
)

func vendorRecord(name string) *entity.Vendor {
	return &entity.Vendor{ID: uuid.New(), Name: name}
}

func TestScoreVendor(t *testing.T) {
	tests := []struct {
		name       string
		vendorText string
		recordName string
		want       int
	}{
		{"exact", "Shop Mart", "Shop Mart", ScoreExact},
		{"exact ignores case", "SHOP MART", "shop mart", ScoreExact},
		{"exact ignores surrounding space", "  Shop Mart ", "Shop Mart", ScoreExact},
		{"record extends text", "Shop Mart", "Shop Mart Inc", ScorePrefix},
		{"text extends record", "Home Depot #1532", "Home Depot", ScorePrefix},
		{"substring either direction", "Mart", "Shop Mart Inc", ScoreContains},
		{"substring other direction", "THE SHOP MART STORE", "Shop Mart", ScoreContains},
		{"no overlap", "Shop Mart", "Lowe's", ScoreNone},
		{"empty text", "", "Shop Mart", ScoreNone},
		{"empty record", "Shop Mart", "", ScoreNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreVendor(tt.vendorText, tt.recordName))
		})
	}
}

func TestBestVendorPrefixBeatsSubstring(t *testing.T) {
	records := []*entity.Vendor{
		vendorRecord("Shop Mart Inc"),
		vendorRecord("Mart"),
	}

	best := BestVendor("Shop Mart", records)
	require.NotNil(t, best)
	assert.Equal(t, "Shop Mart Inc", best.Name)
}

func TestBestVendorExactBeatsPrefix(t *testing.T) {
	records := []*entity.Vendor{
		vendorRecord("Home Depot #1532"),
		vendorRecord("Home Depot"),
	}

	best := BestVendor("home depot", records)
	require.NotNil(t, best)
	assert.Equal(t, "Home Depot", best.Name)
}

func TestBestVendorTieBreakFirstEncountered(t *testing.T) {
	first := vendorRecord("Shop Mart East")
	second := vendorRecord("Shop Mart West")

	best := BestVendor("Shop Mart", []*entity.Vendor{first, second})
	require.NotNil(t, best)
	assert.Equal(t, first.ID, best.ID)
}

func TestBestVendorScoresMatchKeywords(t *testing.T) {
	keyed := vendorRecord("McDonald's")
	keyed.MatchKeywords = []string{"MCD", "GOLDEN ARCHES"}
	records := []*entity.Vendor{
		vendorRecord("MCD Logistics Ltd"),
		keyed,
	}

	// An exact keyword hit outranks a competitor whose name only prefixes
	// the extracted text.
	best := BestVendor("MCD", records)
	require.NotNil(t, best)
	assert.Equal(t, keyed.ID, best.ID)
}

func TestBestVendorKeywordDoesNotDowngradeName(t *testing.T) {
	rec := vendorRecord("Shop Mart")
	rec.MatchKeywords = []string{"UNRELATED"}

	best := BestVendor("Shop Mart", []*entity.Vendor{rec})
	require.NotNil(t, best)
	assert.Equal(t, rec.ID, best.ID)
}

func TestBestVendorNoMatch(t *testing.T) {
	assert.Nil(t, BestVendor("Shop Mart", nil))
	assert.Nil(t, BestVendor("Shop Mart", []*entity.Vendor{vendorRecord("Lowe's")}))
	assert.Nil(t, BestVendor("", []*entity.Vendor{vendorRecord("Shop Mart")}))
}

func TestBestCard(t *testing.T) {
	cards := []*entity.Card{
		{ID: uuid.New(), Nickname: "Business Visa", Last4: "1234"},
		{ID: uuid.New(), Nickname: "Fuel Card", Last4: "5678"},
	}

	best := BestCard("5678", cards)
	require.NotNil(t, best)
	assert.Equal(t, "Fuel Card", best.Nickname)

	assert.Nil(t, BestCard("0000", cards), "no fuzzy tier for card digits")
	assert.Nil(t, BestCard("", cards))
}
