package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/docai"
)

func TestFromTypedFieldsFirstNonEmptyWins(t *testing.T) {
	fields := []docai.TypedField{
		{Type: docai.FieldVendorName, Value: "  "},
		{Type: docai.FieldVendorName, Value: "SHOP MART"},
		{Type: docai.FieldVendorName, Value: "SHOP MART #2"},
		{Type: docai.FieldTotal, Value: "43.22"},
		{Type: docai.FieldTotal, Value: "99.99"},
		{Type: docai.FieldDateAlt, Value: "04/12/2024"},
		{Type: docai.FieldDate, Value: "05/01/2024"},
	}

	out := FromTypedFields(fields)
	assert.Equal(t, "SHOP MART", out.Vendor)
	assert.Equal(t, "43.22", out.Amount)
	assert.Equal(t, "04/12/2024", out.Date)
	assert.Empty(t, out.Tax)
}

func TestApplyUnparseableMoneyIsAbsent(t *testing.T) {
	var r Result
	StructuredFields{
		Vendor: "SHOP MART",
		Amount: "N/A",
		Tax:    "3.23",
		Date:   "04/12/2024",
	}.Apply(&r)

	require.NotNil(t, r.VendorText)
	assert.Equal(t, "SHOP MART", *r.VendorText)
	assert.Nil(t, r.Amount, "unparseable money must stay absent, never zero")
	require.NotNil(t, r.TaxAmount)
	assert.InDelta(t, 3.23, *r.TaxAmount, 0.001)
	require.NotNil(t, r.Date)
	assert.Equal(t, "04/12/2024", *r.Date)
}

func TestApplyLeavesHeuristicRoomForAbsentFields(t *testing.T) {
	var r Result
	StructuredFields{Amount: "bad value"}.Apply(&r)
	require.Nil(t, r.Amount)

	Fill(&r, "TOTAL: $43.22")
	require.NotNil(t, r.Amount)
	assert.InDelta(t, 43.22, *r.Amount, 0.001)
}
