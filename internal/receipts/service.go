// Package receipts implements the upload workflow: store the image, run the
// extraction pipeline, reconcile with what the user typed, and persist.
package receipts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/constants"
	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/extract"
	"github.com/ezbooks/ezbooks/internal/pipeline"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/storage"
)

// Overrides carries fields the user typed alongside the upload. A non-nil
// override always wins over the extracted value for that field.
type Overrides struct {
	Vendor    *string
	Amount    *float64
	TaxAmount *float64
	Date      *string
	CardLast4 *string
	Category  *string
	JobID     *uuid.UUID
}

// UploadRequest is one receipt image plus whatever the user filled in.
type UploadRequest struct {
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Bytes       []byte
	Overrides   Overrides
}

type Service struct {
	receipts repository.ReceiptRepository
	vendors  repository.VendorRepository
	store    storage.ObjectStore
	pipe     *pipeline.Pipeline
	logger   *slog.Logger
}

func NewService(receipts repository.ReceiptRepository, vendors repository.VendorRepository, store storage.ObjectStore, pipe *pipeline.Pipeline, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		receipts: receipts,
		vendors:  vendors,
		store:    store,
		pipe:     pipe,
		logger:   logger,
	}
}

// Upload records, stores, and parses one receipt. Extraction failures leave
// fields absent and route the receipt to review rather than failing the
// upload; only unreadable input bytes mark the receipt FAILED.
func (s *Service) Upload(ctx context.Context, req *UploadRequest) (*entity.Receipt, error) {
	if len(req.Bytes) == 0 {
		return nil, common.NewAppError("EMPTY_INPUT", "document has no content", common.ErrUnreadableInput)
	}

	start := time.Now()
	sum := sha256.Sum256(req.Bytes)
	rec, err := s.receipts.CreateUpload(ctx, &repository.CreateUploadRequest{
		UserID:      req.UserID,
		Filename:    req.Filename,
		ContentHash: hex.EncodeToString(sum[:]),
	})
	if err != nil {
		return nil, err
	}

	key := storage.ReceiptKey(req.UserID, rec.ID, req.Filename)
	if err := s.store.Put(ctx, key, req.ContentType, req.Bytes); err != nil {
		// the image still lives in this request; parse anyway and leave
		// image_key unset so a retry can re-store it
		s.logger.Warn("receipts.upload.store_failed", "receipt_id", rec.ID, "error", err)
		key = ""
	}

	result, err := s.pipe.Parse(ctx, req.UserID, docai.Document{
		Bytes:       req.Bytes,
		ContentType: req.ContentType,
		Filename:    req.Filename,
	})
	if err != nil {
		if markErr := s.receipts.MarkFailed(ctx, rec.ID); markErr != nil {
			err = errors.Join(err, markErr)
		}
		return nil, err
	}

	update := s.reconcile(ctx, req, &result)
	if key != "" {
		update.ImageKey = &key
	}
	if rec, err = s.receipts.UpdateParsed(ctx, rec.ID, update); err != nil {
		return nil, err
	}

	s.logger.Info("receipts.upload.ok",
		"receipt_id", rec.ID,
		"user_id", req.UserID,
		"status", rec.Status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// reconcile merges extraction output with user overrides, field by field,
// and decides the final status. User input wins wherever both exist.
func (s *Service) reconcile(ctx context.Context, req *UploadRequest, result *extract.Result) *repository.UpdateParsedRequest {
	update := &repository.UpdateParsedRequest{
		VendorText: result.VendorText,
		CardLast4:  result.CardLast4,
		Amount:     result.Amount,
		TaxAmount:  result.TaxAmount,
		TxDate:     result.Date,
		RawText:    result.RawText,
		JobID:      req.Overrides.JobID,
	}

	ov := req.Overrides
	if ov.Vendor != nil {
		update.VendorText = ov.Vendor
	}
	if ov.Amount != nil {
		update.Amount = ov.Amount
	}
	if ov.TaxAmount != nil {
		update.TaxAmount = ov.TaxAmount
	}
	if ov.Date != nil {
		update.TxDate = ov.Date
	}
	if ov.CardLast4 != nil {
		update.CardLast4 = ov.CardLast4
	}

	// vendor record: a user-typed name bypasses the suggestion
	vendorResolved := false
	switch {
	case ov.Vendor != nil:
		if v := s.ensureVendor(ctx, req.UserID, *ov.Vendor); v != nil {
			update.VendorID = &v.ID
			update.Category = v.DefaultCategory
			vendorResolved = true
		}
	case result.VendorSuggestion != nil:
		update.VendorID = &result.VendorSuggestion.VendorID
		if result.VendorSuggestion.Category != "" {
			cat := result.VendorSuggestion.Category
			update.Category = &cat
		}
		vendorResolved = true
	case result.VendorText != nil:
		// extracted but unmatched: create the record so next time matches
		if v := s.ensureVendor(ctx, req.UserID, *result.VendorText); v != nil {
			update.VendorID = &v.ID
			vendorResolved = true
		}
	}

	cardResolved := update.CardLast4 == nil
	if result.CardMatch != nil && ov.CardLast4 == nil {
		update.CardID = &result.CardMatch.CardID
		cardResolved = true
	}

	if ov.Category != nil {
		// unrecognized names canonicalize to Other
		cat, _ := constants.Canonicalize(*ov.Category)
		c := string(cat)
		update.Category = &c
	}

	update.Status = constants.ReceiptStatusParsed
	if !vendorResolved || !cardResolved {
		update.Status = constants.ReceiptStatusReview
	}
	return update
}

// ensureVendor finds the user's vendor by name or creates it. Returns nil
// when storage fails; the receipt then goes to review instead.
func (s *Service) ensureVendor(ctx context.Context, userID uuid.UUID, name string) *entity.Vendor {
	if v, err := s.vendors.FindByName(ctx, userID, name); err == nil {
		return v
	}
	v, err := s.vendors.CreateVendor(ctx, &repository.CreateVendorRequest{
		UserID: userID,
		Name:   name,
	})
	if err != nil {
		s.logger.Warn("receipts.vendor.create_failed", "user_id", userID, "name", name, "error", err)
		return nil
	}
	s.logger.Info("receipts.vendor.created", "user_id", userID, "name", name, "vendor_id", v.ID)
	return v
}

// Reparse re-runs extraction for a stored receipt using the saved image.
func (s *Service) Reparse(ctx context.Context, userID, receiptID uuid.UUID) (*entity.Receipt, error) {
	rec, err := s.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, common.ErrNotFound
	}
	if rec.ImageKey == nil {
		return nil, common.NewAppError("NO_IMAGE", "receipt has no stored image", common.ErrInvalidInput)
	}
	body, err := s.store.Get(ctx, *rec.ImageKey)
	if err != nil {
		return nil, err
	}

	req := &UploadRequest{UserID: userID, Filename: rec.Filename, Bytes: body}
	result, err := s.pipe.Parse(ctx, userID, docai.Document{Bytes: body, Filename: rec.Filename})
	if err != nil {
		if markErr := s.receipts.MarkFailed(ctx, receiptID); markErr != nil {
			err = errors.Join(err, markErr)
		}
		return nil, err
	}
	return s.receipts.UpdateParsed(ctx, receiptID, s.reconcile(ctx, req, &result))
}
