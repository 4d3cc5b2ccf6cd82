package utils

import (
	"time"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/extract"
)

func ToPBUser(u *entity.User) *ezbookspb.User {
	return &ezbookspb.User{
		Id:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVendor(v *entity.Vendor) *ezbookspb.Vendor {
	out := &ezbookspb.Vendor{
		Id:              v.ID.String(),
		Name:            v.Name,
		DefaultCategory: strOrEmpty(v.DefaultCategory),
		MatchKeywords:   v.MatchKeywords,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if v.DefaultCardID != nil {
		out.DefaultCardId = v.DefaultCardID.String()
	}
	return out
}

func ToPBCard(c *entity.Card) *ezbookspb.Card {
	return &ezbookspb.Card{
		Id:              c.ID.String(),
		Nickname:        c.Nickname,
		Last4:           c.Last4,
		Brand:           c.Brand,
		DefaultCategory: strOrEmpty(c.DefaultCategory),
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBJob(j *entity.Job) *ezbookspb.Job {
	return &ezbookspb.Job{
		Id:         j.ID.String(),
		Name:       j.Name,
		ClientName: strOrEmpty(j.ClientName),
		Address:    strOrEmpty(j.Address),
		Status:     j.Status,
		CreatedAt:  j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCategory(c *entity.Category) *ezbookspb.Category {
	return &ezbookspb.Category{
		Id:          int32(c.ID),
		Name:        c.Name,
		Description: strOrEmpty(c.Description),
	}
}

func ToPBReceipt(r *entity.Receipt) *ezbookspb.Receipt {
	out := &ezbookspb.Receipt{
		Id:         r.ID.String(),
		Filename:   r.Filename,
		ImageKey:   strOrEmpty(r.ImageKey),
		VendorText: strOrEmpty(r.VendorText),
		CardLast4:  strOrEmpty(r.CardLast4),
		Category:   strOrEmpty(r.Category),
		Amount:     r.Amount,
		TaxAmount:  r.TaxAmount,
		TxDate:     strOrEmpty(r.TxDate),
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.VendorID != nil {
		out.VendorId = r.VendorID.String()
	}
	if r.CardID != nil {
		out.CardId = r.CardID.String()
	}
	if r.JobID != nil {
		out.JobId = r.JobID.String()
	}
	return out
}

func ToPBParseResult(r *extract.Result) *ezbookspb.ParseResult {
	out := &ezbookspb.ParseResult{
		RawText:    r.RawText,
		VendorText: r.VendorText,
		Amount:     r.Amount,
		TaxAmount:  r.TaxAmount,
		Date:       r.Date,
		CardLast4:  r.CardLast4,
	}
	if r.VendorSuggestion != nil {
		out.VendorSuggestion = &ezbookspb.VendorSuggestion{
			VendorId: r.VendorSuggestion.VendorID.String(),
			Name:     r.VendorSuggestion.Name,
			Category: r.VendorSuggestion.Category,
		}
	}
	if r.CardMatch != nil {
		out.CardMatch = &ezbookspb.CardMatch{
			CardId:   r.CardMatch.CardID.String(),
			Last4:    r.CardMatch.Last4,
			Nickname: r.CardMatch.Nickname,
		}
	}
	return out
}
