package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopMartReceipt = "SHOP MART\nTOTAL: $43.22\n04/12/2024\n**** 1234"

func TestVendor(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    string
		found   bool
	}{
		{
			name:    "first line wins",
			rawText: shopMartReceipt,
			want:    "SHOP MART",
			found:   true,
		},
		{
			name:    "skips blank and summary lines",
			rawText: "\n  \nSUBTOTAL 39.99\nTOTAL 43.22\nACME SUPPLY\n",
			want:    "ACME SUPPLY",
			found:   true,
		},
		{
			name:    "skips known slogans",
			rawText: "HOW DOERS GET MORE DONE\nHOME DEPOT #1532\nTOTAL 12.50",
			want:    "HOME DEPOT #1532",
			found:   true,
		},
		{
			name:    "verbatim, not re-cased",
			rawText: "Joe's Gas Bar\n04/01/2024",
			want:    "Joe's Gas Bar",
			found:   true,
		},
		{
			name:    "empty input",
			rawText: "",
			found:   false,
		},
		{
			name:    "only summary lines",
			rawText: "SUBTOTAL 10.00\nTAX 0.50\nAMOUNT DUE 10.50",
			found:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Vendor(tt.rawText)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    float64
		found   bool
	}{
		{
			name:    "labeled total preferred",
			rawText: shopMartReceipt,
			want:    43.22,
			found:   true,
		},
		{
			name:    "labeled total beats larger figure",
			rawText: "ITEM 99.99\nTOTAL: $43.22",
			want:    43.22,
			found:   true,
		},
		{
			name:    "case-insensitive label",
			rawText: "amount 17.80",
			want:    17.80,
			found:   true,
		},
		{
			name:    "falls back to maximum money value",
			rawText: "ITEM A 5.25\nITEM B 12.75\nITEM C 3.10",
			want:    12.75,
			found:   true,
		},
		{
			name:    "no money-shaped value",
			rawText: "THANKS FOR SHOPPING\nSEE YOU SOON",
			found:   false,
		},
		{
			name:    "integer prices do not count",
			rawText: "TOTAL 43",
			found:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Amount(tt.rawText)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestTax(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    float64
		found   bool
	}{
		{
			name:    "value on the labeled line",
			rawText: "SUBTOTAL 39.99\nTAX 3.23\nITEMS 2",
			want:    3.23,
			found:   true,
		},
		{
			name:    "value on the following line",
			rawText: "GST (5%)\n14.35",
			want:    14.35,
			found:   true,
		},
		{
			name:    "sums multiple tax blocks",
			rawText: "GST (5%)\n14.35\nPST (7%)\n20.09",
			want:    34.44,
			found:   true,
		},
		{
			name:    "adjacent tax lines are not double-counted",
			rawText: "GST 14.35\nPST 20.09",
			want:    34.44,
			found:   true,
		},
		{
			name:    "no tax line",
			rawText: "SUBTOTAL 39.99\nTOTAL 43.22",
			found:   false,
		},
		{
			name:    "tax label without a number",
			rawText: "ALL TAXES INCLUDED",
			found:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Tax(tt.rawText)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestTaxIgnoresTrailingWhitespace(t *testing.T) {
	clean := "SUBTOTAL 39.99\nGST (5%)\n14.35\nPST 20.09"
	padded := "SUBTOTAL 39.99  \nGST (5%)   \n14.35  \nPST 20.09\t"

	gotClean, okClean := Tax(clean)
	gotPadded, okPadded := Tax(padded)
	require.True(t, okClean)
	require.True(t, okPadded)
	assert.Equal(t, gotClean, gotPadded)
	assert.InDelta(t, 34.44, gotPadded, 0.001)
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    string
		found   bool
	}{
		{name: "slash format", rawText: "DATE 04/12/2024 10:33", want: "04/12/2024", found: true},
		{name: "two-digit year", rawText: "4/9/24", want: "4/9/24", found: true},
		{name: "dash format", rawText: "04-12-2024", want: "04-12-2024", found: true},
		{name: "iso format", rawText: "printed 2024-04-12", want: "2024-04-12", found: true},
		{
			name:    "slash beats dash regardless of position",
			rawText: "2024-04-12\n04/12/2024",
			want:    "04/12/2024",
			found:   true,
		},
		{name: "no date", rawText: "TOTAL 43.22", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.rawText)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardLast4(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    string
		found   bool
	}{
		{name: "star mask with space", rawText: shopMartReceipt, want: "1234", found: true},
		{name: "x mask no space", rawText: "VISA XXXX5678", want: "5678", found: true},
		{name: "long mask", rawText: "************9012", want: "9012", found: true},
		{name: "short mask ignored", rawText: "*** 1234", found: false},
		{name: "bare digits ignored", rawText: "1234", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CardLast4(tt.rawText)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillOnlyTouchesAbsentFields(t *testing.T) {
	vendor := "STRUCTURED VENDOR"
	amount := 99.99
	r := Result{VendorText: &vendor, Amount: &amount}

	Fill(&r, shopMartReceipt)

	// present fields untouched
	assert.Equal(t, "STRUCTURED VENDOR", *r.VendorText)
	assert.InDelta(t, 99.99, *r.Amount, 0.001)

	// absent fields filled from raw text
	require.NotNil(t, r.Date)
	assert.Equal(t, "04/12/2024", *r.Date)
	require.NotNil(t, r.CardLast4)
	assert.Equal(t, "1234", *r.CardLast4)
	assert.Nil(t, r.TaxAmount)
}
