package repository_test

import (
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/testutil"
)

func TestAccountRepository(t *testing.T) {
	t.Run("ReplaceAll swaps the cache wholesale", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAccountRepository(db)
		testutil.NewAccount().WithDisplayName("Stale").Build(t, db)

		err := repo.ReplaceAll([]repository.CachedAccount{{
			ID:               "acc-1",
			DisplayName:      "Spending",
			AccountType:      "TRANSACTIONAL",
			OwnershipType:    "INDIVIDUAL",
			CurrencyCode:     "AUD",
			BalanceBaseUnits: 123456,
		}})
		if err != nil {
			t.Fatalf("Failed to replace cache: %v", err)
		}

		names, err := repo.GetNames()
		if err != nil {
			t.Fatalf("Failed to query names: %v", err)
		}
		if len(names) != 1 || names[0] != "Spending" {
			t.Errorf("Expected only the fresh account, got %v", names)
		}
	})

	t.Run("GetBalances skips non-positive balances", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAccountRepository(db)
		testutil.NewAccount().WithDisplayName("Spending").WithBalanceBaseUnits(123456).Build(t, db)
		testutil.NewAccount().WithDisplayName("Closed").WithBalanceBaseUnits(0).Build(t, db)

		balances, err := repo.GetBalances()
		if err != nil {
			t.Fatalf("Failed to query balances: %v", err)
		}

		if len(balances) != 1 {
			t.Fatalf("Expected 1 balance, got %d", len(balances))
		}
		if balances[0].AccountName != "Spending" {
			t.Errorf("Expected Spending, got %q", balances[0].AccountName)
		}
		if balances[0].Balance != 1234.56 {
			t.Errorf("Expected balance in whole units 1234.56, got %v", balances[0].Balance)
		}
	})

	t.Run("GetBalances orders by type then balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAccountRepository(db)
		testutil.NewAccount().WithDisplayName("Spending").WithAccountType("TRANSACTIONAL").WithBalanceBaseUnits(50000).Build(t, db)
		testutil.NewAccount().WithDisplayName("Rainy Day").WithAccountType("SAVER").WithBalanceBaseUnits(200000).Build(t, db)
		testutil.NewAccount().WithDisplayName("Holiday").WithAccountType("SAVER").WithBalanceBaseUnits(800000).Build(t, db)

		balances, err := repo.GetBalances()
		if err != nil {
			t.Fatalf("Failed to query balances: %v", err)
		}

		expected := []string{"Spending", "Holiday", "Rainy Day"}
		if len(balances) != len(expected) {
			t.Fatalf("Expected %d balances, got %d", len(expected), len(balances))
		}
		for i, want := range expected {
			if balances[i].AccountName != want {
				t.Errorf("Expected %q at %d, got %q", want, i, balances[i].AccountName)
			}
		}
	})

	t.Run("GetNames returns distinct sorted display names", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAccountRepository(db)
		testutil.NewAccount().WithDisplayName("Spending").Build(t, db)
		testutil.NewAccount().WithDisplayName("Holiday").Build(t, db)

		names, err := repo.GetNames()
		if err != nil {
			t.Fatalf("Failed to query names: %v", err)
		}

		expected := []string{"Holiday", "Spending"}
		if len(names) != len(expected) {
			t.Fatalf("Expected %d names, got %d", len(expected), len(names))
		}
		for i, want := range expected {
			if names[i] != want {
				t.Errorf("Expected %q at %d, got %q", want, i, names[i])
			}
		}
	})
}
