package model

import (
	"strings"
	"time"
)

// Filter carries the user-selected transaction query: an inclusive date
// range, an optional account, and optional category/subcategory exclusion
// sets. A Filter is built fresh per request and never mutated afterwards.
//
// A reversed or empty range is not an error; it simply matches nothing.
type Filter struct {
	StartDate             time.Time
	EndDate               time.Time
	Account               string
	ExcludedCategories    []string
	ExcludedSubcategories []string
}

// ExcludesCategory reports whether category is in the exclusion set.
func (f Filter) ExcludesCategory(category string) bool {
	for _, excluded := range f.ExcludedCategories {
		if excluded == category {
			return true
		}
	}
	return false
}

// ExcludesSubcategory reports whether subcategory is in the exclusion set.
// Exclusion labels may arrive in the composite "Category: Subcategory"
// display form; matching happens on the subcategory part only.
func (f Filter) ExcludesSubcategory(subcategory string) bool {
	for _, excluded := range f.ExcludedSubcategories {
		if SubcategoryPart(excluded) == subcategory {
			return true
		}
	}
	return false
}

// SubcategoryPart strips the "Category: " prefix from a composite breakdown
// label. Plain subcategory labels pass through unchanged.
func SubcategoryPart(label string) string {
	if _, sub, found := strings.Cut(label, ":"); found {
		return strings.TrimSpace(sub)
	}
	return strings.TrimSpace(label)
}
