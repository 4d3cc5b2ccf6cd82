package docai

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// textractAPI is the subset of the Textract client we call; lets tests stub the service.
type textractAPI interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
	AnalyzeExpense(ctx context.Context, params *textract.AnalyzeExpenseInput, optFns ...func(*textract.Options)) (*textract.AnalyzeExpenseOutput, error)
}

// TextractAnalyzer implements DocumentAnalyzer on AWS Textract.
type TextractAnalyzer struct {
	client  textractAPI
	timeout time.Duration
	logger  *slog.Logger
}

func NewTextractAnalyzer(client *textract.Client, timeout time.Duration, logger *slog.Logger) *TextractAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TextractAnalyzer{client: client, timeout: timeout, logger: logger}
}

// DetectText runs the plain OCR pass and returns LINE blocks in reading order.
func (a *TextractAnalyzer) DetectText(ctx context.Context, doc Document) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	out, err := a.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: doc.Bytes},
	})
	if err != nil {
		a.logger.Error("docai.detect_text.failed",
			"filename", doc.Filename, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var lines []string
	for _, block := range out.Blocks {
		if block.BlockType == types.BlockTypeLine {
			lines = append(lines, aws.ToString(block.Text))
		}
	}
	a.logger.Debug("docai.detect_text.ok",
		"filename", doc.Filename, "lines", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return lines, nil
}

// AnalyzeExpense runs the expense-understanding pass and flattens summary fields
// across sub-documents, preserving document order.
func (a *TextractAnalyzer) AnalyzeExpense(ctx context.Context, doc Document) ([]TypedField, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	out, err := a.client.AnalyzeExpense(ctx, &textract.AnalyzeExpenseInput{
		Document: &types.Document{Bytes: doc.Bytes},
	})
	if err != nil {
		a.logger.Error("docai.analyze_expense.failed",
			"filename", doc.Filename, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var fields []TypedField
	for _, expenseDoc := range out.ExpenseDocuments {
		for _, f := range expenseDoc.SummaryFields {
			if f.Type == nil || f.ValueDetection == nil {
				continue
			}
			fields = append(fields, TypedField{
				Type:  aws.ToString(f.Type.Text),
				Value: aws.ToString(f.ValueDetection.Text),
			})
		}
	}
	a.logger.Debug("docai.analyze_expense.ok",
		"filename", doc.Filename, "fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, nil
}
