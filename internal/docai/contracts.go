package docai

import (
	"context"
	"errors"
)

// Document is an uploaded receipt: opaque bytes plus optional hints.
type Document struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// Canonical semantic field types emitted by AnalyzeExpense implementations.
const (
	FieldVendorName = "VENDOR_NAME"
	FieldTotal      = "TOTAL"
	FieldTax        = "TAX"
	FieldDate       = "INVOICE_RECEIPT_DATE"
	FieldDateAlt    = "INVOICE_DATE"
)

// TypedField is a semantically-typed value detected by a document-understanding
// service, in document order.
type TypedField struct {
	Type  string
	Value string
}

// ErrExpenseUnsupported is returned by analyzers that only do plain text detection.
var ErrExpenseUnsupported = errors.New("expense analysis not supported")

// DocumentAnalyzer is the boundary to the document-text / expense-understanding
// service. DetectText returns OCR lines in reading order. AnalyzeExpense returns
// typed summary fields across all logical sub-documents, in document order.
type DocumentAnalyzer interface {
	DetectText(ctx context.Context, doc Document) ([]string, error)
	AnalyzeExpense(ctx context.Context, doc Document) ([]TypedField, error)
}
