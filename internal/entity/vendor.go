package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a vendor record for data transfer between layers.
type Vendor struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	DefaultCategory *string    `json:"default_category,omitempty"`
	DefaultCardID   *uuid.UUID `json:"default_card_id,omitempty"`
	MatchKeywords   []string   `json:"match_keywords,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
