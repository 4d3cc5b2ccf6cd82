package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/match"
)

type fakeAnalyzer struct {
	lines     []string
	linesErr  error
	fields    []docai.TypedField
	fieldsErr error
}

func (f *fakeAnalyzer) DetectText(context.Context, docai.Document) ([]string, error) {
	return f.lines, f.linesErr
}

func (f *fakeAnalyzer) AnalyzeExpense(context.Context, docai.Document) ([]docai.TypedField, error) {
	return f.fields, f.fieldsErr
}

type fakeResolver struct {
	name  string
	calls int
}

func (f *fakeResolver) ResolveVendor(_ context.Context, _, fallback string) string {
	f.calls++
	if f.name == "" {
		return fallback
	}
	return f.name
}

type staticVendors struct{ vendors []*entity.Vendor }

func (s *staticVendors) ListVendors(context.Context, uuid.UUID) ([]*entity.Vendor, error) {
	return s.vendors, nil
}

type staticCards struct{ cards []*entity.Card }

func (s *staticCards) ListCards(context.Context, uuid.UUID) ([]*entity.Card, error) {
	return s.cards, nil
}

var someDoc = docai.Document{Bytes: []byte("%PDF-1.4 stub"), Filename: "receipt.pdf"}

func TestParseEmptyInputIsTheOnlyFatalError(t *testing.T) {
	p := New(&fakeAnalyzer{}, nil, nil, nil)

	_, err := p.Parse(context.Background(), uuid.New(), docai.Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnreadableInput)
}

func TestParseHeuristicPath(t *testing.T) {
	analyzer := &fakeAnalyzer{
		lines:     []string{"SHOP MART", "TOTAL: $43.22", "04/12/2024", "**** 1234"},
		fieldsErr: docai.ErrExpenseUnsupported,
	}
	p := New(analyzer, nil, nil, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)

	require.NotNil(t, result.VendorText)
	assert.Equal(t, "SHOP MART", *result.VendorText)
	require.NotNil(t, result.Amount)
	assert.InDelta(t, 43.22, *result.Amount, 0.001)
	require.NotNil(t, result.Date)
	assert.Equal(t, "04/12/2024", *result.Date)
	require.NotNil(t, result.CardLast4)
	assert.Equal(t, "1234", *result.CardLast4)
	assert.Nil(t, result.TaxAmount)
}

func TestParseTaxBlocks(t *testing.T) {
	analyzer := &fakeAnalyzer{
		lines:     []string{"ACME SUPPLY", "GST (5%)", "14.35", "PST (7%)", "20.09", "TOTAL 277.44"},
		fieldsErr: docai.ErrExpenseUnsupported,
	}
	p := New(analyzer, nil, nil, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)
	require.NotNil(t, result.TaxAmount)
	assert.InDelta(t, 34.44, *result.TaxAmount, 0.001)
}

func TestParseStructuredFieldsWinOverHeuristics(t *testing.T) {
	analyzer := &fakeAnalyzer{
		lines: []string{"SOME SLOGAN LINE", "TOTAL: $99.99"},
		fields: []docai.TypedField{
			{Type: docai.FieldVendorName, Value: "Shop Mart"},
			{Type: docai.FieldTotal, Value: "43.22"},
			{Type: docai.FieldDate, Value: "04/12/2024"},
		},
	}
	p := New(analyzer, nil, nil, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)
	assert.Equal(t, "Shop Mart", *result.VendorText)
	assert.InDelta(t, 43.22, *result.Amount, 0.001)
	assert.Equal(t, "04/12/2024", *result.Date)
}

func TestParseSloganCandidateIsNormalized(t *testing.T) {
	analyzer := &fakeAnalyzer{
		fields: []docai.TypedField{
			{Type: docai.FieldVendorName, Value: "HOW DOERS GET MORE DONE"},
		},
	}
	p := New(analyzer, nil, nil, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)
	require.NotNil(t, result.VendorText)
	assert.Equal(t, "Home Depot", *result.VendorText)
}

func TestParseResolverOnlyConsultedWithoutVendor(t *testing.T) {
	res := &fakeResolver{name: "Shop Mart"}

	// vendor present: resolver not called
	p := New(&fakeAnalyzer{lines: []string{"ACME SUPPLY"}, fieldsErr: docai.ErrExpenseUnsupported}, res, nil, nil)
	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)
	assert.Equal(t, "ACME SUPPLY", *result.VendorText)
	assert.Zero(t, res.calls)

	// no vendor anywhere: resolver fills it
	p = New(&fakeAnalyzer{lines: []string{"TOTAL 5.00"}, fieldsErr: docai.ErrExpenseUnsupported}, res, nil, nil)
	result, err = p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)
	require.NotNil(t, result.VendorText)
	assert.Equal(t, "Shop Mart", *result.VendorText)
	assert.Equal(t, 1, res.calls)
}

func TestParseDegradesWhenAnalyzerFails(t *testing.T) {
	analyzer := &fakeAnalyzer{
		linesErr:  errors.New("service unavailable"),
		fieldsErr: errors.New("service unavailable"),
	}
	p := New(analyzer, nil, nil, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err, "service failure degrades, never fails the parse")
	assert.Empty(t, result.RawText)
	assert.Nil(t, result.VendorText)
	assert.Nil(t, result.Amount)
	assert.Nil(t, result.TaxAmount)
	assert.Nil(t, result.Date)
	assert.Nil(t, result.CardLast4)
}

func TestParseMatchesStoredEntities(t *testing.T) {
	vendorID := uuid.New()
	cardID := uuid.New()
	category := "Materials"
	matcher := match.NewMatcher(
		&staticVendors{vendors: []*entity.Vendor{{ID: vendorID, Name: "Shop Mart Inc", DefaultCategory: &category}}},
		&staticCards{cards: []*entity.Card{{ID: cardID, Nickname: "Business Visa", Last4: "1234"}}},
		nil,
	)
	analyzer := &fakeAnalyzer{
		lines:     []string{"SHOP MART", "TOTAL: $43.22", "**** 1234"},
		fieldsErr: docai.ErrExpenseUnsupported,
	}
	p := New(analyzer, nil, matcher, nil)

	result, err := p.Parse(context.Background(), uuid.New(), someDoc)
	require.NoError(t, err)

	require.NotNil(t, result.VendorSuggestion)
	assert.Equal(t, vendorID, result.VendorSuggestion.VendorID)
	assert.Equal(t, "Shop Mart Inc", result.VendorSuggestion.Name)
	assert.Equal(t, "Materials", result.VendorSuggestion.Category)

	require.NotNil(t, result.CardMatch)
	assert.Equal(t, cardID, result.CardMatch.CardID)
	assert.Equal(t, "Business Visa", result.CardMatch.Nickname)
}
