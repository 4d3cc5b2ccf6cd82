// Package pipeline sequences the receipt extraction stages: raw text,
// structured fields, heuristic fill-ins, vendor normalization, optional AI
// resolution, and entity matching.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/extract"
	"github.com/ezbooks/ezbooks/internal/match"
	"github.com/ezbooks/ezbooks/internal/normalize"
	"github.com/ezbooks/ezbooks/internal/resolver"
)

// Pipeline is a single synchronous, blocking call per document. It holds no
// mutable state across invocations except the resolver's one-way circuit
// breaker, so independent invocations may run concurrently.
type Pipeline struct {
	Analyzer docai.DocumentAnalyzer
	Resolver resolver.VendorResolver
	Matcher  *match.Matcher
	Logger   *slog.Logger
}

func New(analyzer docai.DocumentAnalyzer, res resolver.VendorResolver, matcher *match.Matcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Analyzer: analyzer, Resolver: res, Matcher: matcher, Logger: logger}
}

// Parse runs the full extraction for one document. Every stage failure is
// recovered locally and surfaces as absent fields; the only fatal error is
// input bytes that cannot be read at all.
func (p *Pipeline) Parse(ctx context.Context, userID uuid.UUID, doc docai.Document) (extract.Result, error) {
	start := time.Now()

	if len(doc.Bytes) == 0 {
		return extract.Result{}, common.NewAppError("EMPTY_INPUT", "document has no content", common.ErrUnreadableInput)
	}

	var result extract.Result

	// 1) Raw text. A service error degrades to empty text; every later
	// stage handles empty input by leaving its fields absent.
	lines, err := p.Analyzer.DetectText(ctx, doc)
	if err != nil {
		p.Logger.Warn("pipeline.rawtext.degraded", "filename", doc.Filename, "error", err)
	}
	result.RawText = strings.Join(lines, "\n")

	// 2) Structured fields.
	fields, err := p.Analyzer.AnalyzeExpense(ctx, doc)
	if err != nil {
		p.Logger.Warn("pipeline.structured.degraded", "filename", doc.Filename, "error", err)
	} else {
		extract.FromTypedFields(fields).Apply(&result)
	}

	// 3) Heuristic fill-ins for whatever is still absent.
	extract.Fill(&result, result.RawText)

	// 4) Slogan correction.
	candidate := ""
	if result.VendorText != nil {
		candidate = *result.VendorText
	}
	if normalized := normalize.Vendor(candidate, result.RawText); normalized != "" {
		result.VendorText = &normalized
	} else {
		result.VendorText = nil
	}

	// 5) AI fallback, only when no vendor survived.
	if result.VendorText == nil && p.Resolver != nil {
		if name := p.Resolver.ResolveVendor(ctx, result.RawText, ""); name != "" {
			result.VendorText = &name
		}
	}

	// 6) Entity matching.
	if p.Matcher != nil {
		if result.VendorText != nil {
			result.VendorSuggestion = p.Matcher.MatchVendor(ctx, userID, *result.VendorText)
		}
		if result.CardLast4 != nil {
			result.CardMatch = p.Matcher.MatchCard(ctx, userID, *result.CardLast4)
		}
	}

	p.Logger.Info("pipeline.parse.ok",
		"filename", doc.Filename,
		"raw_lines", len(lines),
		"has_vendor", result.VendorText != nil,
		"has_amount", result.Amount != nil,
		"has_tax", result.TaxAmount != nil,
		"has_date", result.Date != nil,
		"has_card", result.CardLast4 != nil,
		"matched_vendor", result.VendorSuggestion != nil,
		"matched_card", result.CardMatch != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
