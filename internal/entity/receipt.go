package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a receipt for data transfer between layers.
type Receipt struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Filename    string     `json:"filename"`
	ContentHash string     `json:"content_hash,omitempty"`
	ImageKey    *string    `json:"image_key,omitempty"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	VendorText  *string    `json:"vendor_text,omitempty"`
	CardID      *uuid.UUID `json:"card_id,omitempty"`
	CardLast4   *string    `json:"card_last4,omitempty"`
	JobID       *uuid.UUID `json:"job_id,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	TaxAmount   *float64   `json:"tax_amount,omitempty"`
	TxDate      *string    `json:"tx_date,omitempty"`
	RawText     string     `json:"raw_text,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
