// Package normalize corrects known OCR mis-reads of vendor names.
//
// Structured extraction and line heuristics are both vulnerable to locale
// boilerplate being picked up as the store name: a marketing slogan printed
// above the logo OCRs cleanly and looks exactly like a vendor line. The fix
// is a fixed table of recurring slogan phrases mapped to the vendor that
// actually prints them.
package normalize

import (
	"regexp"
	"strings"
)

// sloganVendors maps known mis-read phrases (upper-cased) to the canonical
// vendor name. The table is a constant of the build; extending it per
// deployment is deliberately not supported.
var sloganVendors = map[string]string{
	"HOW DOERS GET MORE DONE":  "Home Depot",
	"MORE SAVING. MORE DOING.": "Home Depot",
	"BUILD SOMETHING GREAT":    "Lowe's",
	"DO IT RIGHT FOR LESS":     "Menards",
	"SAVE MONEY. LIVE BETTER.": "Walmart",
	"EXPECT MORE. PAY LESS.":   "Target",
	"ALWAYS LOW PRICES":        "Walmart",
	"THAT WAS EASY":            "Staples",
	"WHAT THE PROS KNOW":       "Ferguson",
	"QUALITY TOOLS AT RIDICULOUSLY LOW PRICES": "Harbor Freight",
}

var rePunct = regexp.MustCompile(`[^\pL\pN\s]+`)

// IsSlogan reports whether a line is a known non-vendor marketing phrase
// (case-insensitive exact match).
func IsSlogan(line string) bool {
	_, ok := sloganVendors[strings.ToUpper(strings.TrimSpace(line))]
	return ok
}

// Vendor returns the normalized vendor name for a candidate extracted from
// rawText. If the candidate is itself a denylisted phrase, or absent, the
// whitespace-normalized punctuation-stripped raw text is re-scanned for any
// denylisted phrase and the mapped name substituted. Otherwise the candidate
// comes back unchanged. Pure and idempotent.
func Vendor(candidate, rawText string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed != "" {
		if name, ok := sloganVendors[strings.ToUpper(trimmed)]; ok {
			return name
		}
		return candidate
	}
	if name, ok := scan(rawText); ok {
		return name
	}
	return candidate
}

// scan looks for any denylisted phrase inside the flattened raw text.
func scan(rawText string) (string, bool) {
	flat := rePunct.ReplaceAllString(rawText, "")
	flat = strings.ToUpper(strings.Join(strings.Fields(flat), " "))
	for phrase, name := range sloganVendors {
		stripped := rePunct.ReplaceAllString(phrase, "")
		stripped = strings.Join(strings.Fields(stripped), " ")
		if strings.Contains(flat, stripped) {
			return name, true
		}
	}
	return "", false
}
