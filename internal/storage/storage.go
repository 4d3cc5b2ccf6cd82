// Package storage persists receipt images, keyed per user so exports and
// reprocessing can find the original bytes.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ObjectStore stores and retrieves receipt image bytes by key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ReceiptKey builds the canonical object key for a stored receipt image.
func ReceiptKey(userID, receiptID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/receipts/%s-%s", userID, receiptID, filename)
}
