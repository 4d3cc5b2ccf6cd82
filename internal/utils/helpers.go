package utils

import (
	"time"

	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/internal/entity"
)

// receiptDateFormats are the layouts extracted dates show up in, most
// common first. US order for the slash and dash forms.
var receiptDateFormats = []string{
	"01/02/2006",
	"01/02/06",
	"01-02-2006",
	"01-02-06",
	"2006-01-02",
}

// ParseReceiptDate parses an extracted date string against the known
// receipt layouts and returns midnight UTC.
func ParseReceiptDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range receiptDateFormats {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseYMD parses a YYYY-MM-DD string to midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVendor(e *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:              e.ID,
		UserID:          e.UserID,
		Name:            e.Name,
		DefaultCategory: e.DefaultCategory,
		DefaultCardID:   e.DefaultCardID,
		MatchKeywords:   e.MatchKeywords,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCard(e *ent.Card) *entity.Card {
	return &entity.Card{
		ID:              e.ID,
		UserID:          e.UserID,
		Nickname:        e.Nickname,
		Last4:           e.Last4,
		Brand:           e.Brand,
		DefaultCategory: e.DefaultCategory,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToJob(e *ent.Job) *entity.Job {
	return &entity.Job{
		ID:         e.ID,
		UserID:     e.UserID,
		Name:       e.Name,
		ClientName: e.ClientName,
		Address:    e.Address,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToCategory(e *ent.Category) *entity.Category {
	return &entity.Category{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToReceipt(e *ent.Receipt) *entity.Receipt {
	r := &entity.Receipt{
		ID:          e.ID,
		UserID:      e.UserID,
		Filename:    e.Filename,
		ContentHash: e.ContentHash,
		ImageKey:    e.ImageKey,
		VendorID:    e.VendorID,
		VendorText:  e.VendorText,
		CardID:      e.CardID,
		CardLast4:   e.CardLast4,
		JobID:       e.JobID,
		Category:    e.Category,
		Amount:      e.Amount,
		TaxAmount:   e.TaxAmount,
		RawText:     e.RawText,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.TxDate != nil {
		d := e.TxDate.Format("2006-01-02")
		r.TxDate = &d
	}
	return r
}
