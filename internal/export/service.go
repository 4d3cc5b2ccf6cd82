// Package export produces CSV and XLSX expense reports from stored receipts.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ezbooks/ezbooks/internal/entity"
	"github.com/ezbooks/ezbooks/internal/repository"
)

// Service is a tiny façade over repositories that produces report bytes.
type Service struct {
	receiptsRepo repository.ReceiptRepository
	vendorsRepo  repository.VendorRepository
	jobsRepo     repository.JobRepository
	logger       *slog.Logger
}

func NewService(receipts repository.ReceiptRepository, vendors repository.VendorRepository, jobs repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receiptsRepo: receipts, vendorsRepo: vendors, jobsRepo: jobs, logger: logger}
}

// Request narrows an export. Date bounds are inclusive; if only from is set
// the window runs from..today, if only to is set it runs beginning..to.
type Request struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
	JobID  *uuid.UUID
}

var headers = []string{
	"Date",
	"Vendor",
	"Category",
	"Job",
	"Amount",
	"Tax",
	"Card",
	"Status",
	"File",
}

func (s *Service) list(ctx context.Context, req Request) ([]*entity.Receipt, error) {
	from, to := req.From, req.To
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		from = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		to = &t
	}
	if from != nil && to == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		to = &t
	}
	return s.receiptsRepo.ListReceipts(ctx, req.UserID, repository.ListReceiptsFilter{
		FromDate: from,
		ToDate:   to,
		JobID:    req.JobID,
	})
}

func (s *Service) row(ctx context.Context, r *entity.Receipt) []string {
	vendorName := ""
	if r.VendorID != nil {
		if v, err := s.vendorsRepo.GetByID(ctx, *r.VendorID); err == nil {
			vendorName = v.Name
		}
	}
	if vendorName == "" && r.VendorText != nil {
		vendorName = *r.VendorText
	}

	jobName := ""
	if r.JobID != nil {
		if j, err := s.jobsRepo.GetByID(ctx, *r.JobID); err == nil {
			jobName = j.Name
		}
	}

	money := func(p *float64) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *p)
	}
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	return []string{
		str(r.TxDate),
		vendorName,
		str(r.Category),
		jobName,
		money(r.Amount),
		money(r.TaxAmount),
		str(r.CardLast4),
		r.Status,
		r.Filename,
	}
}

// ExportCSV returns a CSV report for the given user and window.
func (s *Service) ExportCSV(ctx context.Context, req Request) ([]byte, error) {
	start := time.Now()
	recs, err := s.list(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if err := w.Write(s.row(ctx, r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"user_id", req.UserID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportXLSX returns an XLSX workbook for the given user and window.
func (s *Service) ExportXLSX(ctx context.Context, req Request) ([]byte, error) {
	start := time.Now()
	recs, err := s.list(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range recs {
		for col, v := range s.row(ctx, r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 22) // category, job
	_ = f.SetColWidth(sheet, "E", "F", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 48) // filename

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", req.UserID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
