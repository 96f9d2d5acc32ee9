package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// AccountHandler handles HTTP requests for account balances.
type AccountHandler struct {
	budgetService *service.BudgetService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(budgetService *service.BudgetService) *AccountHandler {
	return &AccountHandler{
		budgetService: budgetService,
	}
}

// Balances handles GET requests for the balance sheet: positive account
// balances ordered by type then balance, plus the total across them.
//
// Endpoint: GET /api/account/balances
// Response: 200 OK with BalanceSheet
// Error: 502 Bad Gateway if the data source is unavailable
func (h *AccountHandler) Balances(w http.ResponseWriter, _ *http.Request) {
	sheet, err := h.budgetService.GetBalanceSheet()
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveBalances, err)
		return
	}

	respondJSON(w, http.StatusOK, sheet)
}
