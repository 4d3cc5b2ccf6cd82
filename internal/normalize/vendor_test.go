package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlogan(t *testing.T) {
	assert.True(t, IsSlogan("HOW DOERS GET MORE DONE"))
	assert.True(t, IsSlogan("how doers get more done"))
	assert.True(t, IsSlogan("  Save Money. Live Better.  "))
	assert.False(t, IsSlogan("SHOP MART"))
	assert.False(t, IsSlogan(""))
}

func TestVendor(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		rawText   string
		want      string
	}{
		{
			name:      "slogan candidate maps regardless of raw text",
			candidate: "HOW DOERS GET MORE DONE",
			rawText:   "totally unrelated content",
			want:      "Home Depot",
		},
		{
			name:      "slogan candidate case-insensitive",
			candidate: "save money. live better.",
			rawText:   "",
			want:      "Walmart",
		},
		{
			name:      "ordinary candidate unchanged",
			candidate: "SHOP MART",
			rawText:   "HOW DOERS GET MORE DONE\nSHOP MART",
			want:      "SHOP MART",
		},
		{
			name:      "empty candidate rescues from raw text",
			candidate: "",
			rawText:   "123 MAIN ST\nMORE SAVING. MORE DOING.\nTOTAL 12.00",
			want:      "Home Depot",
		},
		{
			name:      "raw text scan tolerates dropped punctuation",
			candidate: "",
			rawText:   "EXPECT MORE PAY LESS\n04/12/2024",
			want:      "Target",
		},
		{
			name:      "nothing to rescue",
			candidate: "",
			rawText:   "ACME SUPPLY\nTOTAL 5.00",
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vendor(tt.candidate, tt.rawText)
			assert.Equal(t, tt.want, got)

			// idempotence: normalizing the output again changes nothing
			assert.Equal(t, got, Vendor(got, tt.rawText))
		})
	}
}
