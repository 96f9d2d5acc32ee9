package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/api/request"
	"github.com/avdberg/Budget-Planner-Backend/internal/api/response"
	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// defaultLargestLimit is how many purchases the largest-transactions listing
// shows unless the caller asks otherwise.
const defaultLargestLimit = 10

// TransactionHandler handles HTTP requests for canonical transaction
// listings.
type TransactionHandler struct {
	budgetService *service.BudgetService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(budgetService *service.BudgetService) *TransactionHandler {
	return &TransactionHandler{
		budgetService: budgetService,
	}
}

// List handles GET requests for canonical transactions under a filter,
// newest first.
//
// Endpoint: GET /api/transaction
// Query: start_date, end_date (required), account, excluded_categories,
// excluded_subcategories, validate
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request on invalid filter parameters
// Error: 422 Unprocessable Entity on a schema violation in strict mode
// Error: 502 Bad Gateway if the data source is unavailable
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, mode, ok := parseFilterAndMode(w, r)
	if !ok {
		return
	}

	transactions, err := h.budgetService.GetTransactions(filter, mode)
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveTransactions, err)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// Largest handles GET requests for the top purchases by amount.
//
// Endpoint: GET /api/transaction/largest
// Query: filter parameters plus limit (default 10)
// Response: 200 OK with array of Transaction, amount descending
func (h *TransactionHandler) Largest(w http.ResponseWriter, r *http.Request) {
	filter, mode, ok := parseFilterAndMode(w, r)
	if !ok {
		return
	}
	limit, err := request.ParseLimit(r, defaultLargestLimit)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid limit", err.Error())
		return
	}

	transactions, err := h.budgetService.GetLargestPurchases(filter, mode, limit)
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveTransactions, err)
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}
