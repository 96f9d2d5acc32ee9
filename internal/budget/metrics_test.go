package budget

import (
	"math"
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

func purchase(date, category, subcategory string, amount float64) model.Transaction {
	return model.Transaction{
		ID:          "tx-" + date + "-" + subcategory,
		CreatedDate: date,
		Type:        model.TypePurchase,
		Description: subcategory,
		Category:    category,
		Subcategory: subcategory,
		Amount:      amount,
		Account:     "Checking",
		Status:      "cleared",
	}
}

func income(date, subcategory string, amount float64) model.Transaction {
	return model.Transaction{
		ID:          "tx-" + date + "-" + subcategory,
		CreatedDate: date,
		Type:        model.TypeIncome,
		Description: subcategory,
		Category:    "Income",
		Subcategory: subcategory,
		Amount:      amount,
		Account:     "Checking",
		Status:      "cleared",
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate(t *testing.T) {
	t.Run("Computes totals and breakdowns", func(t *testing.T) {
		transactions := []model.Transaction{
			income("2024-03-01", "Acme Pty Ltd", 1000),
			purchase("2024-03-02", "Food", "Groceries", 60),
			purchase("2024-03-03", "Transportation", "Fuel", 40),
		}

		metrics := Aggregate(transactions)

		if !almostEqual(metrics.TotalIncome, 1000) {
			t.Errorf("Expected total income 1000, got %v", metrics.TotalIncome)
		}
		if !almostEqual(metrics.TotalSpending, 100) {
			t.Errorf("Expected total spending 100, got %v", metrics.TotalSpending)
		}

		if len(metrics.SpendingByCategory) != 2 {
			t.Fatalf("Expected 2 spending categories, got %d", len(metrics.SpendingByCategory))
		}
		if metrics.SpendingByCategory[0].Label != "Food" {
			t.Errorf("Expected largest category first, got %q", metrics.SpendingByCategory[0].Label)
		}
		if !almostEqual(metrics.SpendingByCategory[0].Percent, 60) {
			t.Errorf("Expected Food at 60%%, got %v", metrics.SpendingByCategory[0].Percent)
		}
		if !almostEqual(metrics.SpendingByCategory[1].Percent, 40) {
			t.Errorf("Expected Transportation at 40%%, got %v", metrics.SpendingByCategory[1].Percent)
		}
	})

	t.Run("Labels spending subcategories with their category", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-02", "Food", "Coffee Shops", 12),
		}

		metrics := Aggregate(transactions)

		if len(metrics.SpendingBySubcategory) != 1 {
			t.Fatalf("Expected 1 spending subcategory, got %d", len(metrics.SpendingBySubcategory))
		}
		if got := metrics.SpendingBySubcategory[0].Label; got != "Food: Coffee Shops" {
			t.Errorf("Expected composite label, got %q", got)
		}
	})

	t.Run("Groups income by subcategory alone", func(t *testing.T) {
		transactions := []model.Transaction{
			income("2024-03-01", "Acme Pty Ltd", 800),
			income("2024-03-15", "Acme Pty Ltd", 800),
			income("2024-03-20", "Interest", 5),
		}

		metrics := Aggregate(transactions)

		if len(metrics.IncomeBySubcategory) != 2 {
			t.Fatalf("Expected 2 income subcategories, got %d", len(metrics.IncomeBySubcategory))
		}
		if got := metrics.IncomeBySubcategory[0].Label; got != "Acme Pty Ltd" {
			t.Errorf("Expected payer label, got %q", got)
		}
		if !almostEqual(metrics.IncomeBySubcategory[0].Amount, 1600) {
			t.Errorf("Expected summed payer amount 1600, got %v", metrics.IncomeBySubcategory[0].Amount)
		}
	})

	t.Run("Empty input yields zero totals and empty breakdowns", func(t *testing.T) {
		metrics := Aggregate(nil)

		if metrics.TotalIncome != 0 || metrics.TotalSpending != 0 {
			t.Errorf("Expected zero totals, got income %v spending %v",
				metrics.TotalIncome, metrics.TotalSpending)
		}
		if len(metrics.SpendingByCategory) != 0 {
			t.Errorf("Expected empty breakdown, got %d entries", len(metrics.SpendingByCategory))
		}
	})

	t.Run("Breakdown amounts sum to the type total", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-02", "Food", "Groceries", 33.33),
			purchase("2024-03-03", "Food", "Restaurants", 21.50),
			purchase("2024-03-04", "Utilities", "Electricity", 110.25),
			income("2024-03-01", "Acme Pty Ltd", 1234.56),
		}

		metrics := Aggregate(transactions)

		var categorySum, subcategorySum float64
		for _, entry := range metrics.SpendingByCategory {
			categorySum += entry.Amount
		}
		for _, entry := range metrics.SpendingBySubcategory {
			subcategorySum += entry.Amount
		}

		if !almostEqual(categorySum, metrics.TotalSpending) {
			t.Errorf("Category breakdown sums to %v, total is %v", categorySum, metrics.TotalSpending)
		}
		if !almostEqual(subcategorySum, metrics.TotalSpending) {
			t.Errorf("Subcategory breakdown sums to %v, total is %v", subcategorySum, metrics.TotalSpending)
		}
	})

	t.Run("Zero type total yields zero percentages", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-02", "Food", "Groceries", 0),
		}

		metrics := Aggregate(transactions)

		if len(metrics.SpendingByCategory) != 1 {
			t.Fatalf("Expected 1 spending category, got %d", len(metrics.SpendingByCategory))
		}
		if got := metrics.SpendingByCategory[0].Percent; got != 0 {
			t.Errorf("Expected 0 percent on zero total, got %v", got)
		}
	})
}

func TestMeanSpendingByCategory(t *testing.T) {
	t.Run("Averages per-month sums across months", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-01-05", "Food", "Groceries", 40),
			purchase("2024-01-20", "Food", "Restaurants", 60),
			purchase("2024-02-10", "Food", "Groceries", 50),
			purchase("2024-01-15", "Housing", "Rent", 200),
		}

		means, err := MeanSpendingByCategory(transactions, model.PeriodMonth, model.GroupCategory)
		if err != nil {
			t.Fatalf("Failed to compute means: %v", err)
		}

		if len(means) != 2 {
			t.Fatalf("Expected 2 categories, got %d", len(means))
		}
		// Housing appears in one month only; its mean is that month's sum.
		if means[0].Label != "Housing" || !almostEqual(means[0].MeanAmount, 200) {
			t.Errorf("Expected Housing mean 200 first, got %q %v", means[0].Label, means[0].MeanAmount)
		}
		// Food: (100 + 50) / 2 months.
		if means[1].Label != "Food" || !almostEqual(means[1].MeanAmount, 75) {
			t.Errorf("Expected Food mean 75, got %q %v", means[1].Label, means[1].MeanAmount)
		}
	})

	t.Run("Adds a ten percent buffer to the suggested budget", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-01-05", "Food", "Groceries", 100),
		}

		means, err := MeanSpendingByCategory(transactions, model.PeriodMonth, model.GroupCategory)
		if err != nil {
			t.Fatalf("Failed to compute means: %v", err)
		}

		if len(means) != 1 {
			t.Fatalf("Expected 1 category, got %d", len(means))
		}
		if !almostEqual(means[0].SuggestedBudget, 110) {
			t.Errorf("Expected suggested budget 110, got %v", means[0].SuggestedBudget)
		}
	})

	t.Run("Buckets by ISO week for weekly periods", func(t *testing.T) {
		// 2024-03-04 and 2024-03-06 share an ISO week; 2024-03-11 starts the next.
		transactions := []model.Transaction{
			purchase("2024-03-04", "Food", "Groceries", 30),
			purchase("2024-03-06", "Food", "Restaurants", 20),
			purchase("2024-03-11", "Food", "Groceries", 70),
		}

		means, err := MeanSpendingByCategory(transactions, model.PeriodWeek, model.GroupCategory)
		if err != nil {
			t.Fatalf("Failed to compute means: %v", err)
		}

		if len(means) != 1 {
			t.Fatalf("Expected 1 category, got %d", len(means))
		}
		if !almostEqual(means[0].MeanAmount, 60) {
			t.Errorf("Expected weekly mean 60, got %v", means[0].MeanAmount)
		}
	})

	t.Run("Groups by subcategory when requested", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-01-05", "Food", "Groceries", 40),
			purchase("2024-01-20", "Food", "Restaurants", 60),
		}

		means, err := MeanSpendingByCategory(transactions, model.PeriodMonth, model.GroupSubcategory)
		if err != nil {
			t.Fatalf("Failed to compute means: %v", err)
		}

		if len(means) != 2 {
			t.Fatalf("Expected 2 subcategories, got %d", len(means))
		}
		if means[0].Label != "Restaurants" {
			t.Errorf("Expected Restaurants first, got %q", means[0].Label)
		}
	})

	t.Run("Fails on an unparseable created date", func(t *testing.T) {
		bad := purchase("2024-01-05", "Food", "Groceries", 40)
		bad.CreatedDate = "not-a-date"

		_, err := MeanSpendingByCategory([]model.Transaction{bad}, model.PeriodMonth, model.GroupCategory)
		if err == nil {
			t.Error("Expected error for unparseable date, got nil")
		}
	})
}
