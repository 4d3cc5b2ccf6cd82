// Package match reconciles extracted vendor text and card digits against a
// user's stored records using tiered fuzzy string matching.
package match

import (
	"strings"

	"github.com/ezbooks/ezbooks/internal/entity"
)

// Score tiers. Fixed precedence, highest wins; ties broken by the
// first-encountered record in storage iteration order.
const (
	ScoreNone     = 0 // excluded from consideration
	ScoreContains = 1 // case-insensitive substring in either direction
	ScorePrefix   = 2 // one string is a case-insensitive prefix of the other
	ScoreExact    = 3 // case-insensitive equality
)

// ScoreVendor computes the match tier between extracted vendor text and a
// stored record name. The prefix tier covers store-numbered names like
// "Home Depot" vs "Home Depot #1532".
func ScoreVendor(vendorText, recordName string) int {
	a := strings.ToLower(strings.TrimSpace(vendorText))
	b := strings.ToLower(strings.TrimSpace(recordName))
	if a == "" || b == "" {
		return ScoreNone
	}
	switch {
	case a == b:
		return ScoreExact
	case strings.HasPrefix(a, b) || strings.HasPrefix(b, a):
		return ScorePrefix
	case strings.Contains(a, b) || strings.Contains(b, a):
		return ScoreContains
	default:
		return ScoreNone
	}
}

// BestVendor returns the highest-scoring record, or nil when no record
// scores above zero. A record is scored by its name and by each of its
// match keywords, taking the best tier. Stateless; storage access belongs
// to the caller.
func BestVendor(vendorText string, records []*entity.Vendor) *entity.Vendor {
	var best *entity.Vendor
	bestScore := ScoreNone
	for _, rec := range records {
		score := ScoreVendor(vendorText, rec.Name)
		for _, kw := range rec.MatchKeywords {
			if s := ScoreVendor(vendorText, kw); s > score {
				score = s
			}
		}
		if score > bestScore {
			bestScore = score
			best = rec
		}
	}
	return best
}

// BestCard matches by stored last-4 digits. No fuzzy tier: four digits
// either match exactly or they don't.
func BestCard(last4 string, records []*entity.Card) *entity.Card {
	last4 = strings.TrimSpace(last4)
	if last4 == "" {
		return nil
	}
	for _, rec := range records {
		if rec.Last4 == last4 {
			return rec
		}
	}
	return nil
}
