// Package budget is the pure aggregation core of the planner: filtering,
// income/expense rollups, and rolling trend series over canonical
// transactions. Functions here own no state and are re-run in full on every
// filter change.
package budget

import (
	"fmt"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// FilterTransactions applies a Filter to an in-memory transaction collection.
// The date range is inclusive on both ends; a reversed range matches nothing.
// Account, category-exclusion, and subcategory-exclusion filters compose
// conjunctively with it. The input slice is not modified.
//
// An unparseable created date is a contract violation (validation runs before
// filtering) and fails the call.
func FilterTransactions(transactions []model.Transaction, f model.Filter) ([]model.Transaction, error) {
	kept := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		day, err := t.Day()
		if err != nil {
			return nil, fmt.Errorf("filter transactions: %w", err)
		}
		if day.Before(f.StartDate) || day.After(f.EndDate) {
			continue
		}
		if f.Account != "" && t.Account != f.Account {
			continue
		}
		if f.ExcludesCategory(t.Category) {
			continue
		}
		if f.ExcludesSubcategory(t.Subcategory) {
			continue
		}
		kept = append(kept, t)
	}
	return kept, nil
}
