package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// MetaHandler handles HTTP requests for the filter picker lists: categories,
// subcategories, and account names.
type MetaHandler struct {
	budgetService *service.BudgetService
}

// NewMetaHandler creates a new MetaHandler with the provided service dependency.
func NewMetaHandler(budgetService *service.BudgetService) *MetaHandler {
	return &MetaHandler{
		budgetService: budgetService,
	}
}

// Categories handles GET requests for the distinct category list.
//
// Endpoint: GET /api/meta/categories
// Response: 200 OK with array of strings
func (h *MetaHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.budgetService.GetCategories()
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveCategories, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// Subcategories handles GET requests for the distinct subcategory list.
//
// Endpoint: GET /api/meta/subcategories
// Response: 200 OK with array of strings
func (h *MetaHandler) Subcategories(w http.ResponseWriter, _ *http.Request) {
	subcategories, err := h.budgetService.GetSubcategories()
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveCategories, err)
		return
	}
	respondJSON(w, http.StatusOK, subcategories)
}

// Accounts handles GET requests for the account name list.
//
// Endpoint: GET /api/meta/accounts
// Response: 200 OK with array of strings
func (h *MetaHandler) Accounts(w http.ResponseWriter, _ *http.Request) {
	accounts, err := h.budgetService.GetAccounts()
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToRetrieveCategories, err)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}
