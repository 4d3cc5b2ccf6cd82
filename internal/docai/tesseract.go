package docai

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/otiai10/gosseract/v2"
)

// TesseractAnalyzer is the local OCR fallback for deployments without a
// document-understanding service. Plain text only: AnalyzeExpense always
// returns ErrExpenseUnsupported so structured extraction degrades and the
// heuristic layer carries the whole load.
type TesseractAnalyzer struct {
	tessdataDir string
	workDir     string
	logger      *slog.Logger
}

func NewTesseractAnalyzer(tessdataDir, workDir string, logger *slog.Logger) *TesseractAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &TesseractAnalyzer{tessdataDir: tessdataDir, workDir: workDir, logger: logger}
}

func (a *TesseractAnalyzer) DetectText(ctx context.Context, doc Document) ([]string, error) {
	start := time.Now()

	img, err := imaging.Decode(bytes.NewReader(doc.Bytes))
	if err != nil {
		a.logger.Error("docai.local_ocr.decode_failed", "filename", doc.Filename, "error", err)
		return nil, fmt.Errorf("decode image: %w", err)
	}

	// Grayscale + upscale small captures before handing off to tesseract.
	processed := imaging.Grayscale(img)
	if b := processed.Bounds(); b.Dx() < 1000 {
		processed = imaging.Resize(processed, b.Dx()*2, 0, imaging.Lanczos)
	}

	tmp := filepath.Join(a.workDir, "ezbooks-ocr-"+uuid.NewString()+".png")
	if err := imaging.Save(processed, tmp); err != nil {
		return nil, fmt.Errorf("save preprocessed image: %w", err)
	}
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	if a.tessdataDir != "" {
		_ = client.SetTessdataPrefix(a.tessdataDir)
	}
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	if err := client.SetImage(tmp); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		a.logger.Error("docai.local_ocr.failed", "filename", doc.Filename, "error", err)
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimRight(line, " \t"); s != "" {
			lines = append(lines, s)
		}
	}
	a.logger.Debug("docai.local_ocr.ok",
		"filename", doc.Filename, "lines", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return lines, nil
}

func (a *TesseractAnalyzer) AnalyzeExpense(ctx context.Context, doc Document) ([]TypedField, error) {
	return nil, ErrExpenseUnsupported
}
