package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/export"
	"github.com/ezbooks/ezbooks/internal/utils"
)

type ExportServer struct {
	ezbookspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	return &ExportServer{
		svc:    svc,
		logger: logger,
	}
}

func (s *ExportServer) ExportReceipts(ctx context.Context, req *ezbookspb.ExportReceiptsRequest) (*ezbookspb.ExportReceiptsResponse, error) {
	userID, err := authUserID(ctx)
	if err != nil {
		return nil, err
	}

	format := strings.ToUpper(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = "CSV"
	}

	exportReq := export.Request{UserID: userID}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		exportReq.From = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		exportReq.To = &to
	}
	jobID, err := optionalUUID(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	exportReq.JobID = jobID

	stamp := time.Now().UTC().Format("2006-01-02")
	switch format {
	case "CSV":
		content, err := s.svc.ExportCSV(ctx, exportReq)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "export csv: %v", err)
		}
		return &ezbookspb.ExportReceiptsResponse{
			Content:     content,
			Filename:    fmt.Sprintf("receipts-%s.csv", stamp),
			ContentType: "text/csv",
		}, nil
	case "XLSX":
		content, err := s.svc.ExportXLSX(ctx, exportReq)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "export xlsx: %v", err)
		}
		return &ezbookspb.ExportReceiptsResponse{
			Content:     content,
			Filename:    fmt.Sprintf("receipts-%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown format %q", req.GetFormat())
	}
}
