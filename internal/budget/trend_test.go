package budget

import (
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

func TestBuildTrend(t *testing.T) {
	t.Run("Fills calendar gaps with zero-amount days", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-01", "Food", "Groceries", 10),
			purchase("2024-03-05", "Food", "Groceries", 20),
		}

		points, err := BuildTrend(transactions, 1)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}

		if len(points) != 5 {
			t.Fatalf("Expected 5 daily points over the span, got %d", len(points))
		}
		for i, point := range points {
			expected := day("2024-03-01").AddDate(0, 0, i)
			if !point.Day.Equal(expected) {
				t.Errorf("Point %d: expected day %v, got %v", i, expected, point.Day)
			}
		}
		// Window of 1 makes the rolling sum the daily sum itself.
		if points[2].Amount != 0 {
			t.Errorf("Expected zero amount on gap day, got %v", points[2].Amount)
		}
	})

	t.Run("Applies a trailing rolling sum", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-01", "Food", "Groceries", 10),
			purchase("2024-03-03", "Food", "Groceries", 5),
		}

		points, err := BuildTrend(transactions, 2)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}

		if len(points) != 3 {
			t.Fatalf("Expected 3 daily points, got %d", len(points))
		}

		// Day 1: 10 (partial window). Day 2: 10 + 0. Day 3: 0 + 5.
		expected := []float64{10, 10, 5}
		for i, want := range expected {
			if points[i].Amount != want {
				t.Errorf("Point %d: expected rolling sum %v, got %v", i, want, points[i].Amount)
			}
		}
	})

	t.Run("Marks warm-up rows where the window is partial", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-01", "Food", "Groceries", 10),
			purchase("2024-03-05", "Food", "Groceries", 20),
		}

		points, err := BuildTrend(transactions, 3)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}

		for i, point := range points {
			wantWarmUp := i < 2
			if point.WarmUp != wantWarmUp {
				t.Errorf("Point %d: expected WarmUp=%v, got %v", i, wantWarmUp, point.WarmUp)
			}
		}
	})

	t.Run("Rolling sum matches a naive window over a long series", func(t *testing.T) {
		start := day("2024-01-01")
		var transactions []model.Transaction
		daily := make([]float64, 35)
		for i := range daily {
			daily[i] = float64(i + 1)
			tx := purchase(start.AddDate(0, 0, i).Format("2006-01-02"), "Food", "Groceries", daily[i])
			transactions = append(transactions, tx)
		}

		points, err := BuildTrend(transactions, DefaultRollingWindowDays)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}
		if len(points) != 35 {
			t.Fatalf("Expected 35 points, got %d", len(points))
		}

		for i, point := range points {
			var want float64
			for j := i; j >= 0 && j > i-DefaultRollingWindowDays; j-- {
				want += daily[j]
			}
			if point.Amount != want {
				t.Errorf("Point %d: expected rolling sum %v, got %v", i, want, point.Amount)
			}
			if wantWarmUp := i < DefaultRollingWindowDays-1; point.WarmUp != wantWarmUp {
				t.Errorf("Point %d: expected WarmUp=%v, got %v", i, wantWarmUp, point.WarmUp)
			}
		}
	})

	t.Run("Orders income series before spending", func(t *testing.T) {
		transactions := []model.Transaction{
			purchase("2024-03-01", "Food", "Groceries", 10),
			income("2024-03-02", "Acme Pty Ltd", 1000),
		}

		points, err := BuildTrend(transactions, 1)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}

		if len(points) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(points))
		}
		if points[0].Type != model.TypeIncome {
			t.Errorf("Expected income series first, got %s", points[0].Type)
		}
		if points[1].Type != model.TypePurchase {
			t.Errorf("Expected spending series second, got %s", points[1].Type)
		}
	})

	t.Run("Keeps type series spans independent", func(t *testing.T) {
		transactions := []model.Transaction{
			income("2024-03-01", "Acme Pty Ltd", 1000),
			purchase("2024-03-10", "Food", "Groceries", 10),
			purchase("2024-03-12", "Food", "Groceries", 10),
		}

		points, err := BuildTrend(transactions, 1)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}

		// One income day plus three spending days (10th through 12th).
		if len(points) != 4 {
			t.Fatalf("Expected 4 points, got %d", len(points))
		}
		if !points[1].Day.Equal(day("2024-03-10")) {
			t.Errorf("Spending series should start at its own first day, got %v", points[1].Day)
		}
	})

	t.Run("Empty input yields an empty series", func(t *testing.T) {
		points, err := BuildTrend(nil, DefaultRollingWindowDays)
		if err != nil {
			t.Fatalf("Failed to build trend: %v", err)
		}
		if len(points) != 0 {
			t.Errorf("Expected empty series, got %d points", len(points))
		}
	})

	t.Run("Rejects a window below one day", func(t *testing.T) {
		_, err := BuildTrend(nil, 0)
		if err == nil {
			t.Error("Expected error for zero window, got nil")
		}
	})
}
