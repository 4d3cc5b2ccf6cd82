package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/constants"
	"github.com/ezbooks/ezbooks/internal/async"
	"github.com/ezbooks/ezbooks/internal/notify"
	"github.com/ezbooks/ezbooks/internal/receipts"
	"github.com/ezbooks/ezbooks/internal/repository"
)

// Service wires watcher events into the upload queue, hashing each file so a
// document dropped twice is only processed once.
type Service struct {
	uploads      *receipts.Service
	receiptsRepo repository.ReceiptRepository
	mailer       *notify.Mailer
	notifyTo     string
	logger       *slog.Logger
}

func NewService(uploads *receipts.Service, receiptsRepo repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uploads:      uploads,
		receiptsRepo: receiptsRepo,
		logger:       logger,
	}
}

// WithNotifications makes the service email the given address whenever an
// ingested receipt needs a manual review.
func (s *Service) WithNotifications(mailer *notify.Mailer, to string) *Service {
	s.mailer = mailer
	s.notifyTo = to
	return s
}

// Run consumes watcher events until ctx is done, enqueueing each candidate
// file on the upload queue.
func (s *Service) Run(ctx context.Context, userID uuid.UUID, cfg WatchConfig, queue async.Queue) error {
	events, errs, err := StartWatcher(ctx, cfg, s.logger)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			_ = queue.Enqueue(ctx, async.Job{
				UserID:      userID,
				Path:        path,
				SubmittedAt: time.Now().UTC(),
			})
		case <-errs:
			// already logged by the watcher; keep consuming
		}
	}
}

// HandleJob reads, dedups, and uploads one dropped file. It is the handler
// the upload queue runs on its workers.
func (s *Service) HandleJob(ctx context.Context, job async.Job) error {
	body, err := os.ReadFile(job.Path)
	if err != nil {
		s.logger.Error("ingest.read_failed", "path", job.Path, "error", err)
		return err
	}

	sum := sha256.Sum256(body)
	hexHash := hex.EncodeToString(sum[:])
	if dup, err := s.receiptsRepo.ExistsByHash(ctx, job.UserID, hexHash); err == nil && dup {
		s.logger.Info("ingest.deduplicated", "path", job.Path, "hash", hexHash)
		return nil
	}

	rec, err := s.uploads.Upload(ctx, &receipts.UploadRequest{
		UserID:      job.UserID,
		Filename:    filepath.Base(job.Path),
		ContentType: mime.TypeByExtension(filepath.Ext(job.Path)),
		Bytes:       body,
	})
	if err != nil {
		return err
	}
	s.logger.Info("ingest.uploaded", "path", job.Path, "receipt_id", rec.ID, "status", rec.Status)

	if rec.Status == string(constants.ReceiptStatusReview) && s.mailer != nil && s.notifyTo != "" {
		body := fmt.Sprintf("Receipt %s (%s) could not be fully matched and needs a review.", rec.ID, rec.Filename)
		if err := s.mailer.Send(s.notifyTo, "Receipt needs review", body); err != nil {
			s.logger.Warn("ingest.notify_failed", "receipt_id", rec.ID, "error", err)
		}
	}
	return nil
}
