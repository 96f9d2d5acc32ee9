package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/testutil"
)

func TestAccountHandler_Balances(t *testing.T) {
	t.Run("returns the balance sheet with its total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewAccountHandler(testutil.NewTestBudgetService(t, db))
		testutil.NewAccount().WithDisplayName("Spending").WithAccountType("TRANSACTIONAL").WithBalanceBaseUnits(10050).Build(t, db)
		testutil.NewAccount().WithDisplayName("Saver").WithAccountType("SAVER").WithBalanceBaseUnits(89950).Build(t, db)
		testutil.NewAccount().WithDisplayName("Closed").WithBalanceBaseUnits(0).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/account/balances", nil)
		w := httptest.NewRecorder()

		handler.Balances(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var sheet model.BalanceSheet
		if err := json.NewDecoder(w.Body).Decode(&sheet); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(sheet.Accounts) != 2 {
			t.Errorf("Expected 2 positive balances, got %d", len(sheet.Accounts))
		}
		if sheet.TotalSavings != 1000 {
			t.Errorf("Expected total savings 1000, got %v", sheet.TotalSavings)
		}
	})

	t.Run("empty cache yields an empty sheet", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewAccountHandler(testutil.NewTestBudgetService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/account/balances", nil)
		w := httptest.NewRecorder()

		handler.Balances(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var sheet model.BalanceSheet
		if err := json.NewDecoder(w.Body).Decode(&sheet); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(sheet.Accounts) != 0 || sheet.TotalSavings != 0 {
			t.Errorf("Expected empty sheet, got %+v", sheet)
		}
	})
}
