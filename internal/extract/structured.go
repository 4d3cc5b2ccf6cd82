package extract

import (
	"strings"

	"github.com/ezbooks/ezbooks/internal/docai"
)

// StructuredFields holds the raw values claimed per canonical field by the
// document-understanding service, before shape validation.
type StructuredFields struct {
	Vendor string
	Amount string
	Tax    string
	Date   string
}

// FromTypedFields maps service field labels onto the canonical field set.
// The service may emit several candidates of the same semantic type across
// sub-documents; the first non-empty value in document order is authoritative.
func FromTypedFields(fields []docai.TypedField) StructuredFields {
	var out StructuredFields
	for _, f := range fields {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}
		switch f.Type {
		case docai.FieldVendorName:
			if out.Vendor == "" {
				out.Vendor = value
			}
		case docai.FieldTotal:
			if out.Amount == "" {
				out.Amount = value
			}
		case docai.FieldTax:
			if out.Tax == "" {
				out.Tax = value
			}
		case docai.FieldDate, docai.FieldDateAlt:
			if out.Date == "" {
				out.Date = value
			}
		}
	}
	return out
}

// Apply writes the structured values into a Result. Monetary values that do
// not parse as money are treated as absent so the heuristic layer can fill
// them from raw text instead.
func (s StructuredFields) Apply(r *Result) {
	if s.Vendor != "" {
		r.VendorText = ptr(s.Vendor)
	}
	if v, ok := ParseMoney(s.Amount); ok {
		r.Amount = &v
	}
	if v, ok := ParseMoney(s.Tax); ok {
		r.TaxAmount = &v
	}
	if s.Date != "" {
		r.Date = ptr(s.Date)
	}
}

func ptr(s string) *string { return &s }
