package budget

import (
	"fmt"
	"sort"
	"time"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// Aggregate computes the Metrics bundle over a canonical transaction set:
// income and spending totals plus category and subcategory breakdowns per
// type, each sorted descending by summed amount. Purchase subcategory rows
// are labelled "Category: Subcategory"; income groups by subcategory alone
// since its category is always "Income".
//
// An empty input yields zero totals and empty breakdowns, never an error.
func Aggregate(transactions []model.Transaction) model.Metrics {
	var income, spending []model.Transaction
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			income = append(income, t)
		case model.TypePurchase:
			spending = append(spending, t)
		}
	}

	totalIncome := sumAmounts(income)
	totalSpending := sumAmounts(spending)

	return model.Metrics{
		TotalIncome:   totalIncome,
		TotalSpending: totalSpending,
		SpendingByCategory: breakdown(spending, totalSpending, func(t model.Transaction) string {
			return t.Category
		}),
		SpendingBySubcategory: breakdown(spending, totalSpending, func(t model.Transaction) string {
			return fmt.Sprintf("%s: %s", t.Category, t.Subcategory)
		}),
		IncomeByCategory: breakdown(income, totalIncome, func(t model.Transaction) string {
			return t.Category
		}),
		IncomeBySubcategory: breakdown(income, totalIncome, func(t model.Transaction) string {
			return t.Subcategory
		}),
	}
}

func sumAmounts(transactions []model.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

// breakdown groups transactions by label, sums amounts, and sorts descending.
// Ties keep first-encountered label order. Percent-of-total is 0 when the
// type total is zero, so an all-zero partition renders as 0% rather than
// dividing by zero.
func breakdown(transactions []model.Transaction, total float64, label func(model.Transaction) string) []model.BreakdownEntry {
	sums := make(map[string]float64)
	var order []string
	for _, t := range transactions {
		key := label(t)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += t.Amount
	}

	entries := make([]model.BreakdownEntry, 0, len(order))
	for _, key := range order {
		entry := model.BreakdownEntry{Label: key, Amount: sums[key]}
		if total != 0 {
			entry.Percent = sums[key] / total * 100
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})
	return entries
}

// MeanSpendingByCategory buckets transactions into calendar periods, sums
// amounts per (bucket, label), then averages those per-bucket sums across
// the buckets each label appears in. A label present in a single bucket
// still yields a defined mean. The result is the "suggested budget"
// baseline; SuggestedBudget adds a 10% buffer on top of the mean.
//
// Results are sorted descending by mean amount, ties keeping
// first-encountered order.
func MeanSpendingByCategory(transactions []model.Transaction, period model.Period, group model.Grouping) ([]model.CategoryMean, error) {
	type bucketKey struct {
		bucket string
		label  string
	}

	sums := make(map[bucketKey]float64)
	var order []string
	seen := make(map[string]bool)

	for _, t := range transactions {
		day, err := t.Day()
		if err != nil {
			return nil, fmt.Errorf("mean spending: %w", err)
		}

		label := t.Category
		if group == model.GroupSubcategory {
			label = t.Subcategory
		}
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
		sums[bucketKey{bucket: periodBucket(day, period), label: label}] += t.Amount
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for key, sum := range sums {
		totals[key.label] += sum
		counts[key.label]++
	}

	means := make([]model.CategoryMean, 0, len(order))
	for _, label := range order {
		mean := totals[label] / float64(counts[label])
		means = append(means, model.CategoryMean{
			Label:           label,
			MeanAmount:      mean,
			SuggestedBudget: mean * 1.1,
		})
	}
	sort.SliceStable(means, func(i, j int) bool {
		return means[i].MeanAmount > means[j].MeanAmount
	})
	return means, nil
}

// periodBucket renders the calendar bucket a day falls in: ISO year-week for
// weekly periods, year-month for monthly ones.
func periodBucket(day time.Time, period model.Period) string {
	if period == model.PeriodWeek {
		year, week := day.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	}
	return day.Format("2006-01")
}
