package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/testutil"
)

func TestMetaHandler(t *testing.T) {
	setupHandler := func(t *testing.T) (*MetaHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		return NewMetaHandler(testutil.NewTestBudgetService(t, db)), db
	}

	decodeStrings := func(t *testing.T, w *httptest.ResponseRecorder) []string {
		t.Helper()
		var values []string
		if err := json.NewDecoder(w.Body).Decode(&values); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return values
	}

	t.Run("lists distinct categories", func(t *testing.T) {
		handler, db := setupHandler(t)
		testutil.NewTransaction().WithCategory("Utilities").WithSubcategory("Electricity").Build(t, db)
		testutil.NewTransaction().WithCategory("Food").WithSubcategory("Groceries").Build(t, db)
		testutil.NewTransaction().WithCategory("Food").WithSubcategory("Restaurants").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/meta/categories", nil)
		w := httptest.NewRecorder()

		handler.Categories(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		categories := decodeStrings(t, w)
		if len(categories) != 2 || categories[0] != "Food" {
			t.Errorf("Unexpected categories: %v", categories)
		}
	})

	t.Run("lists subcategories grouped by category", func(t *testing.T) {
		handler, db := setupHandler(t)
		testutil.NewTransaction().WithCategory("Utilities").WithSubcategory("Electricity").Build(t, db)
		testutil.NewTransaction().WithCategory("Food").WithSubcategory("Groceries").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/meta/subcategories", nil)
		w := httptest.NewRecorder()

		handler.Subcategories(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		subcategories := decodeStrings(t, w)
		if len(subcategories) != 2 || subcategories[0] != "Groceries" {
			t.Errorf("Unexpected subcategories: %v", subcategories)
		}
	})

	t.Run("lists account names", func(t *testing.T) {
		handler, db := setupHandler(t)
		testutil.NewAccount().WithDisplayName("Spending").Build(t, db)
		testutil.NewAccount().WithDisplayName("Holiday").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/meta/accounts", nil)
		w := httptest.NewRecorder()

		handler.Accounts(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		accounts := decodeStrings(t, w)
		if len(accounts) != 2 || accounts[0] != "Holiday" {
			t.Errorf("Unexpected accounts: %v", accounts)
		}
	})

	t.Run("empty cache yields empty arrays", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/meta/categories", nil)
		w := httptest.NewRecorder()

		handler.Categories(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if categories := decodeStrings(t, w); categories == nil || len(categories) != 0 {
			t.Errorf("Expected an empty array, got %v", categories)
		}
	})
}
