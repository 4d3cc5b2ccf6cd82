package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/constants"
	"github.com/ezbooks/ezbooks/gen/ent"
	"github.com/ezbooks/ezbooks/gen/ent/receipt"
	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/utils"
)

// CreateUploadRequest wraps parameters for recording a fresh upload.
type CreateUploadRequest struct {
	UserID      uuid.UUID
	Filename    string
	ContentHash string
	ImageKey    *string
}

// UpdateParsedRequest carries the reconciled extraction output for a receipt.
// Nil pointers leave the stored field untouched.
type UpdateParsedRequest struct {
	ImageKey   *string
	VendorID   *uuid.UUID
	VendorText *string
	CardID     *uuid.UUID
	CardLast4  *string
	JobID      *uuid.UUID
	Category   *string
	Amount     *float64
	TaxAmount  *float64
	TxDate     *string
	RawText    string
	Status     constants.ReceiptStatus
}

// ListReceiptsFilter narrows a receipt listing. Date bounds apply to the
// parsed transaction date, so receipts without one are excluded whenever a
// bound is set.
type ListReceiptsFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	JobID    *uuid.UUID
	Status   string
}

type ReceiptRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, userID uuid.UUID, filter ListReceiptsFilter) ([]*entity.Receipt, error)
	ExistsByHash(ctx context.Context, userID uuid.UUID, contentHash string) (bool, error)
	CreateUpload(ctx context.Context, req *CreateUploadRequest) (*entity.Receipt, error)
	UpdateParsed(ctx context.Context, id uuid.UUID, req *UpdateParsedRequest) (*entity.Receipt, error)
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().Where(receipt.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, userID uuid.UUID, filter ListReceiptsFilter) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().Where(receipt.UserID(userID))
	if filter.FromDate != nil {
		q = q.Where(receipt.TxDateNotNil(), receipt.TxDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(receipt.TxDateNotNil(), receipt.TxDateLTE(*filter.ToDate))
	}
	if filter.JobID != nil {
		q = q.Where(receipt.JobID(*filter.JobID))
	}
	if filter.Status != "" {
		q = q.Where(receipt.Status(filter.Status))
	}
	recs, err := q.Order(receipt.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

func (r *receiptRepository) ExistsByHash(ctx context.Context, userID uuid.UUID, contentHash string) (bool, error) {
	exists, err := r.client.Receipt.Query().
		Where(receipt.UserID(userID), receipt.ContentHash(contentHash)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check receipt hash", "user_id", userID, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *receiptRepository) CreateUpload(ctx context.Context, req *CreateUploadRequest) (*entity.Receipt, error) {
	builder := r.client.Receipt.Create().
		SetUserID(req.UserID).
		SetFilename(req.Filename).
		SetNillableImageKey(req.ImageKey).
		SetStatus(string(constants.ReceiptStatusUploaded))
	if req.ContentHash != "" {
		builder = builder.SetContentHash(req.ContentHash)
	}
	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "user_id", req.UserID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) UpdateParsed(ctx context.Context, id uuid.UUID, req *UpdateParsedRequest) (*entity.Receipt, error) {
	builder := r.client.Receipt.UpdateOneID(id).
		SetNillableImageKey(req.ImageKey).
		SetNillableVendorText(req.VendorText).
		SetNillableCardLast4(req.CardLast4).
		SetNillableCategory(req.Category).
		SetNillableAmount(req.Amount).
		SetNillableTaxAmount(req.TaxAmount).
		SetRawText(req.RawText).
		SetStatus(string(req.Status))

	if req.VendorID != nil {
		builder = builder.SetVendorID(*req.VendorID)
	}
	if req.CardID != nil {
		builder = builder.SetCardID(*req.CardID)
	}
	if req.JobID != nil {
		builder = builder.SetJobID(*req.JobID)
	}
	if req.TxDate != nil {
		// stored only when the extracted date parses as a calendar date
		if t, err := utils.ParseReceiptDate(*req.TxDate); err == nil {
			builder = builder.SetTxDate(t)
		}
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update receipt", "receipt_id", id, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	err := r.client.Receipt.UpdateOneID(id).
		SetStatus(string(constants.ReceiptStatusFailed)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark receipt failed", "receipt_id", id, "error", err)
	}
	return err
}
