// Package validation implements the canonical-schema gate every data source
// runs before transaction records leave the source boundary. It guarantees
// the aggregation core never observes malformed rows.
package validation

import (
	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// Mode selects what happens when a record violates the canonical schema.
type Mode string

const (
	// Strict fails the entire batch on the first offending record.
	Strict Mode = "strict"
	// Filter silently drops offending records and returns the remainder.
	Filter Mode = "filter"
)

// ValidModes supports membership checks during request parsing.
var ValidModes = map[Mode]bool{
	Strict: true,
	Filter: true,
}

// Transactions checks a batch of records against the canonical transaction
// schema. In Strict mode the first violation aborts the call with a
// *apperrors.SchemaError; in Filter mode offending records are dropped.
// The returned slice is freshly allocated and never nil.
func Transactions(records []model.Transaction, mode Mode) ([]model.Transaction, error) {
	valid := make([]model.Transaction, 0, len(records))
	for i, record := range records {
		if schemaErr := check(i, record); schemaErr != nil {
			if mode == Strict {
				return nil, schemaErr
			}
			continue
		}
		valid = append(valid, record)
	}
	return valid, nil
}

// check returns the first canonical-schema violation in a record, or nil.
func check(index int, t model.Transaction) *apperrors.SchemaError {
	fail := func(field, reason string) *apperrors.SchemaError {
		return &apperrors.SchemaError{Index: index, ID: t.ID, Field: field, Reason: reason}
	}

	if t.ID == "" {
		return fail("id", "is empty")
	}
	if _, err := t.Day(); err != nil {
		return fail("created_date", "is not a parseable date")
	}
	if !model.ValidTransactionTypes[t.Type] {
		return fail("type", "is not a known transaction type")
	}
	if t.Category == "" {
		return fail("category", "is empty")
	}
	if t.Subcategory == "" {
		return fail("subcategory", "is empty")
	}
	if t.Amount < 0 {
		return fail("amount", "is negative")
	}
	if t.Account == "" {
		return fail("account", "is empty")
	}
	return nil
}
