package extract

import "github.com/google/uuid"

// VendorSuggestion references a stored vendor record matched against the
// resolved vendor text.
type VendorSuggestion struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}

// CardMatch references a stored card record matched by last-4 digits.
type CardMatch struct {
	CardID   uuid.UUID `json:"card_id"`
	Last4    string    `json:"last4"`
	Nickname string    `json:"nickname,omitempty"`
}

// Result is the extraction pipeline's sole output. RawText is always present
// (possibly empty); every other field is either present with a validated shape
// or nil, never a malformed placeholder.
type Result struct {
	RawText          string            `json:"raw_text"`
	VendorText       *string           `json:"vendor_text,omitempty"`
	Amount           *float64          `json:"amount,omitempty"`
	TaxAmount        *float64          `json:"tax_amount,omitempty"`
	Date             *string           `json:"date,omitempty"`
	CardLast4        *string           `json:"card_last4,omitempty"`
	VendorSuggestion *VendorSuggestion `json:"vendor_suggestion,omitempty"`
	CardMatch        *CardMatch        `json:"card_match,omitempty"`
}
