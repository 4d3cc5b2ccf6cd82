package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a payment card record for data transfer between layers.
type Card struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Nickname        string    `json:"nickname"`
	Last4           string    `json:"last4"`
	Brand           string    `json:"brand"`
	DefaultCategory *string   `json:"default_category,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
