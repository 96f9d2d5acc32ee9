package model

import "time"

// BreakdownEntry is one row of a category or subcategory breakdown: a label,
// the summed amount, and the share of that type's total. Percent is 0 when
// the type total is zero rather than undefined.
type BreakdownEntry struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// Metrics bundles the income/expense aggregates computed over a filtered
// transaction set. Breakdowns are ordered descending by amount; ties keep
// first-encountered order, which is implementation-defined and not part of
// the contract. Metrics are recomputed on every filter change, never cached.
type Metrics struct {
	TotalIncome           float64          `json:"totalIncome"`
	TotalSpending         float64          `json:"totalSpending"`
	SpendingByCategory    []BreakdownEntry `json:"spendingByCategory"`
	SpendingBySubcategory []BreakdownEntry `json:"spendingBySubcategory"`
	IncomeByCategory      []BreakdownEntry `json:"incomeByCategory"`
	IncomeBySubcategory   []BreakdownEntry `json:"incomeBySubcategory"`
}

// TrendPoint is one row of the rolling trend series: the rolling sum for one
// transaction type as of one calendar day. WarmUp marks the first
// windowDays-1 rows of each type's series, where the trailing window is not
// yet fully populated; callers may choose to hide those rows.
type TrendPoint struct {
	Day    time.Time       `json:"day"`
	Type   TransactionType `json:"type"`
	Amount float64         `json:"amount"`
	WarmUp bool            `json:"warmUp"`
}

// Period selects the bucketing granularity for mean spending calculations.
type Period string

const (
	// PeriodWeek buckets transactions into ISO calendar weeks.
	PeriodWeek Period = "week"
	// PeriodMonth buckets transactions into calendar months.
	PeriodMonth Period = "month"
)

// ValidPeriods supports membership checks during request parsing.
var ValidPeriods = map[Period]bool{
	PeriodWeek:  true,
	PeriodMonth: true,
}

// Grouping selects the label transactions are grouped by in mean spending
// calculations.
type Grouping string

const (
	// GroupCategory groups by the transaction category.
	GroupCategory Grouping = "category"
	// GroupSubcategory groups by the transaction subcategory.
	GroupSubcategory Grouping = "subcategory"
)

// ValidGroupings supports membership checks during request parsing.
var ValidGroupings = map[Grouping]bool{
	GroupCategory:    true,
	GroupSubcategory: true,
}

// CategoryMean is the average per-period spend for one category or
// subcategory, with the suggested budget derived from it (mean plus a 10%
// buffer). Used as the baseline when setting budget limits.
type CategoryMean struct {
	Label           string  `json:"label"`
	MeanAmount      float64 `json:"meanAmount"`
	SuggestedBudget float64 `json:"suggestedBudget"`
}
