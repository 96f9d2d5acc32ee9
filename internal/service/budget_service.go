package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/avdberg/Budget-Planner-Backend/internal/budget"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/source"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// BudgetService orchestrates one dashboard interaction: fetch canonical
// transactions from the data source, then run the pure aggregation core
// over them. It holds no state between calls; every filter change triggers
// a full recomputation pass.
type BudgetService struct {
	source source.BudgetSource
}

// NewBudgetService creates a new BudgetService over the given data source.
func NewBudgetService(src source.BudgetSource) *BudgetService {
	return &BudgetService{source: src}
}

// Source exposes the underlying data source for status reporting.
func (s *BudgetService) Source() source.BudgetSource {
	return s.source
}

// GetTransactions returns the canonical transactions matching the filter,
// gated by the schema validator in the given mode.
func (s *BudgetService) GetTransactions(f model.Filter, mode validation.Mode) ([]model.Transaction, error) {
	return s.source.GetTransactions(f, mode)
}

// GetLargestPurchases returns the top purchases under the filter, sorted by
// amount descending and truncated to limit. Income rows are excluded.
func (s *BudgetService) GetLargestPurchases(f model.Filter, mode validation.Mode, limit int) ([]model.Transaction, error) {
	transactions, err := s.source.GetTransactions(f, mode)
	if err != nil {
		return nil, err
	}

	purchases := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == model.TypePurchase {
			purchases = append(purchases, t)
		}
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Amount > purchases[j].Amount
	})
	if limit > 0 && len(purchases) > limit {
		purchases = purchases[:limit]
	}
	return purchases, nil
}

// GetMetrics computes the full Metrics bundle for the filtered transaction
// set. An empty result set yields zero totals and empty breakdowns.
func (s *BudgetService) GetMetrics(f model.Filter, mode validation.Mode) (model.Metrics, error) {
	transactions, err := s.source.GetTransactions(f, mode)
	if err != nil {
		return model.Metrics{}, err
	}
	return budget.Aggregate(transactions), nil
}

// GetTrend computes the rolling daily trend series for the filtered
// transaction set with the given trailing window.
func (s *BudgetService) GetTrend(f model.Filter, mode validation.Mode, windowDays int) ([]model.TrendPoint, error) {
	transactions, err := s.source.GetTransactions(f, mode)
	if err != nil {
		return nil, err
	}
	points, err := budget.BuildTrend(transactions, windowDays)
	if err != nil {
		return nil, fmt.Errorf("trend for %d transactions: %w", len(transactions), err)
	}
	return points, nil
}

// GetMeanSpending computes the average per-period spend per category or
// subcategory, the baseline for suggested budget limits.
func (s *BudgetService) GetMeanSpending(f model.Filter, mode validation.Mode, period model.Period, group model.Grouping) ([]model.CategoryMean, error) {
	transactions, err := s.source.GetTransactions(f, mode)
	if err != nil {
		return nil, err
	}
	return budget.MeanSpendingByCategory(transactions, period, group)
}

// GetBalanceSheet returns the account balances with their total.
func (s *BudgetService) GetBalanceSheet() (model.BalanceSheet, error) {
	balances, err := s.source.GetAccountBalances()
	if err != nil {
		return model.BalanceSheet{}, err
	}

	sheet := model.BalanceSheet{Accounts: balances}
	for _, balance := range balances {
		sheet.TotalSavings += balance.Balance
	}
	return sheet, nil
}

// GetCategories returns the source's category list.
func (s *BudgetService) GetCategories() ([]string, error) {
	return s.source.GetCategories()
}

// GetSubcategories returns the source's subcategory list.
func (s *BudgetService) GetSubcategories() ([]string, error) {
	return s.source.GetSubcategories()
}

// GetAccounts returns the source's account names.
func (s *BudgetService) GetAccounts() ([]string, error) {
	return s.source.GetAccounts()
}

// RefreshTransactions performs a one-shot overwrite of the source's
// transaction cache.
func (s *BudgetService) RefreshTransactions(ctx context.Context) error {
	return s.source.RefreshTransactions(ctx)
}

// RefreshAccounts performs a one-shot overwrite of the source's account
// cache.
func (s *BudgetService) RefreshAccounts(ctx context.Context) error {
	return s.source.RefreshAccounts(ctx)
}

// RefreshAll refreshes the transaction and account caches concurrently and
// returns the first failure.
func (s *BudgetService) RefreshAll(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.source.RefreshTransactions(ctx) })
	group.Go(func() error { return s.source.RefreshAccounts(ctx) })
	return group.Wait()
}
