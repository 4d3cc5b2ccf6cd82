package extract

import (
	"regexp"
	"strings"

	"github.com/ezbooks/ezbooks/internal/normalize"
)

// Regex/heuristic fallbacks, used only for fields the structured pass left
// absent. All of them degrade to absent on empty input.
var (
	reLabeledAmount = regexp.MustCompile(`(?i)(TOTAL|AMOUNT)[:\s]*\$?(\d+\.\d{2})`)
	reCardLast4     = regexp.MustCompile(`(\*{4,}|X{4,})\s*(\d{4})`)

	// Date patterns tried in priority order; first match in document order wins.
	// Syntactic matches only: semantic validation belongs to the caller's
	// date-normalization step.
	reDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
		regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2,4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
	}

	taxTokens  = []string{"TAX", "GST", "HST", "PST"}
	skipTokens = []string{"TOTAL", "SUBTOTAL", "TAX", "AMOUNT DUE"}
)

// Vendor returns the first line that survives the denylist: blank lines,
// known marketing slogans, and total/tax summary lines are skipped. The
// surviving line is returned verbatim, not re-cased.
func Vendor(rawText string) (string, bool) {
	for _, line := range strings.Split(rawText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if normalize.IsSlogan(trimmed) {
			continue
		}
		if containsAnyFold(trimmed, skipTokens) {
			continue
		}
		return trimmed, true
	}
	return "", false
}

// Amount prefers a labeled total ("TOTAL: $43.22"); failing that it takes the
// maximum money-shaped value in the document. The grand total is typically
// the largest dollar figure on a receipt; that can misfire on pre-discount
// subtotals, which is accepted.
func Amount(rawText string) (float64, bool) {
	if m := reLabeledAmount.FindStringSubmatch(rawText); m != nil {
		if v, ok := ParseMoney(m[2]); ok {
			return v, true
		}
	}
	var best float64
	found := false
	for _, m := range reMoney.FindAllString(rawText, -1) {
		if v, ok := ParseMoney(m); ok {
			if !found || v > best {
				best = v
				found = true
			}
		}
	}
	return best, found
}

// Tax sums money-shaped values from every tax-labeled line and the line
// immediately following it ("GST (5%)" on one line, "14.35" on the next).
// A line that is itself tax-labeled is never counted as a follower, so
// adjacent GST/PST lines are not double-counted.
func Tax(rawText string) (float64, bool) {
	lines := strings.Split(rawText, "\n")
	var sum float64
	found := false
	for i, line := range lines {
		if !containsAnyFold(line, taxTokens) {
			continue
		}
		for _, m := range reMoney.FindAllString(line, -1) {
			if v, ok := ParseMoney(m); ok {
				sum += v
				found = true
			}
		}
		if i+1 < len(lines) && !containsAnyFold(lines[i+1], taxTokens) {
			for _, m := range reMoney.FindAllString(lines[i+1], -1) {
				if v, ok := ParseMoney(m); ok {
					sum += v
					found = true
				}
			}
		}
	}
	if !found {
		return 0, false
	}
	return Round2(sum), true
}

// Date returns the first syntactically date-shaped substring.
func Date(rawText string) (string, bool) {
	for _, re := range reDatePatterns {
		if m := re.FindString(rawText); m != "" {
			return m, true
		}
	}
	return "", false
}

// CardLast4 recognizes masked PAN tails like "**** 1234" or "XXXX1234".
func CardLast4(rawText string) (string, bool) {
	if m := reCardLast4.FindStringSubmatch(rawText); m != nil {
		return m[2], true
	}
	return "", false
}

// Fill completes r from rawText, touching only fields still absent.
func Fill(r *Result, rawText string) {
	if r.VendorText == nil {
		if v, ok := Vendor(rawText); ok {
			r.VendorText = &v
		}
	}
	if r.Amount == nil {
		if v, ok := Amount(rawText); ok {
			r.Amount = &v
		}
	}
	if r.TaxAmount == nil {
		if v, ok := Tax(rawText); ok {
			r.TaxAmount = &v
		}
	}
	if r.Date == nil {
		if v, ok := Date(rawText); ok {
			r.Date = &v
		}
	}
	if r.CardLast4 == nil {
		if v, ok := CardLast4(rawText); ok {
			r.CardLast4 = &v
		}
	}
}

func containsAnyFold(s string, tokens []string) bool {
	upper := strings.ToUpper(s)
	for _, tok := range tokens {
		if strings.Contains(upper, tok) {
			return true
		}
	}
	return false
}
