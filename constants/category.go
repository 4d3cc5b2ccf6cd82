package constants

import (
	"strings"
)

// Category is a default expense category for contractor bookkeeping.
type Category string

const (
	Materials     Category = "Materials"
	Tools         Category = "Tools"
	Fuel          Category = "Fuel"
	Equipment     Category = "Equipment"
	Meals         Category = "Meals"
	OfficeExpense Category = "OfficeExpense"
	Subcontractor Category = "Subcontractor"
	Permits       Category = "Permits"
	Insurance     Category = "Insurance"
	Other         Category = "Other"
)

var allCategories = []Category{
	Materials,
	Tools,
	Fuel,
	Equipment,
	Meals,
	OfficeExpense,
	Subcontractor,
	Permits,
	Insurance,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"lumber":    Materials,
		"hardware":  Materials,
		"supplies":  Materials,
		"gas":       Fuel,
		"diesel":    Fuel,
		"rental":    Equipment,
		"food":      Meals,
		"office":    OfficeExpense,
		"sub":       Subcontractor,
		"permit":    Permits,
		"license":   Permits,
		"liability": Insurance,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
