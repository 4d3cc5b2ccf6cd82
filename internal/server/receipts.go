package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/pipeline"
	"github.com/ezbooks/ezbooks/internal/receipts"
	"github.com/ezbooks/ezbooks/internal/repository"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type ReceiptsService struct {
	ezbookspb.UnimplementedReceiptsServiceServer
	uploads     *receipts.Service
	receiptRepo repository.ReceiptRepository
	pipe        *pipeline.Pipeline
	logger      *slog.Logger
}

func NewReceiptsService(uploads *receipts.Service, receiptRepo repository.ReceiptRepository, pipe *pipeline.Pipeline, logger *slog.Logger) *ReceiptsService {
	return &ReceiptsService{
		uploads:     uploads,
		receiptRepo: receiptRepo,
		pipe:        pipe,
		logger:      logger,
	}
}

func (s *ReceiptsService) UploadReceipt(ctx context.Context, req *ezbookspb.UploadReceiptRequest) (*ezbookspb.UploadReceiptResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	overrides, err := toOverrides(req.GetOverrides())
	if err != nil {
		return nil, err
	}

	rec, err := s.uploads.Upload(ctx, &receipts.UploadRequest{
		UserID:      userID,
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		Bytes:       req.GetContent(),
		Overrides:   overrides,
	})
	if err != nil {
		if errorIsUnreadable(err) {
			return nil, status.Error(codes.InvalidArgument, "document has no content")
		}
		return nil, status.Errorf(codes.Internal, "upload: %v", err)
	}
	return &ezbookspb.UploadReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

// ParseReceipt runs extraction without persisting anything. Useful for
// previewing what an upload would record.
func (s *ReceiptsService) ParseReceipt(ctx context.Context, req *ezbookspb.ParseReceiptRequest) (*ezbookspb.ParseReceiptResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	result, err := s.pipe.Parse(ctx, userID, docai.Document{
		Bytes:       req.GetContent(),
		ContentType: req.GetContentType(),
		Filename:    req.GetFilename(),
	})
	if err != nil {
		if errorIsUnreadable(err) {
			return nil, status.Error(codes.InvalidArgument, "document has no content")
		}
		return nil, status.Errorf(codes.Internal, "parse: %v", err)
	}
	return &ezbookspb.ParseReceiptResponse{Result: utils.ToPBParseResult(&result)}, nil
}

func (s *ReceiptsService) GetReceipt(ctx context.Context, req *ezbookspb.GetReceiptRequest) (*ezbookspb.GetReceiptResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil || rec.UserID != userID {
		return nil, status.Error(codes.NotFound, "receipt not found")
	}
	return &ezbookspb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptsService) ListReceipts(ctx context.Context, req *ezbookspb.ListReceiptsRequest) (*ezbookspb.ListReceiptsResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}
	jobID, err := optionalUUID(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	recs, err := s.receiptRepo.ListReceipts(ctx, userID, repository.ListReceiptsFilter{
		FromDate: fromDate,
		ToDate:   toDate,
		JobID:    jobID,
		Status:   req.GetStatus(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}

	out := make([]*ezbookspb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &ezbookspb.ListReceiptsResponse{Receipts: out}, nil
}

func (s *ReceiptsService) ReparseReceipt(ctx context.Context, req *ezbookspb.ReparseReceiptRequest) (*ezbookspb.ReparseReceiptResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	rec, err := s.uploads.Reparse(ctx, userID, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reparse: %v", err)
	}
	return &ezbookspb.ReparseReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func toOverrides(pb *ezbookspb.ReceiptOverrides) (receipts.Overrides, error) {
	var ov receipts.Overrides
	if pb == nil {
		return ov, nil
	}
	ov.Vendor = pb.Vendor
	ov.Amount = pb.Amount
	ov.TaxAmount = pb.TaxAmount
	ov.Date = pb.Date
	ov.CardLast4 = pb.CardLast4
	ov.Category = pb.Category
	if pb.JobId != nil {
		id, err := uuid.Parse(*pb.JobId)
		if err != nil {
			return ov, status.Error(codes.InvalidArgument, "job_id must be a UUID")
		}
		ov.JobID = &id
	}
	return ov, nil
}

func errorIsUnreadable(err error) bool {
	return errors.Is(err, common.ErrUnreadableInput)
}
