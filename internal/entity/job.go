package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a client job (work site) receipts can be billed against.
type Job struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	ClientName *string   `json:"client_name,omitempty"`
	Address    *string   `json:"address,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
