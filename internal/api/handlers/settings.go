package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/api/response"
	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// SettingsHandler handles HTTP requests for cache refresh operations and
// access token management.
type SettingsHandler struct {
	budgetService   *service.BudgetService
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependencies.
func NewSettingsHandler(budgetService *service.BudgetService, settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		budgetService:   budgetService,
		settingsService: settingsService,
	}
}

// RefreshResponse reports the outcome of a refresh operation.
type RefreshResponse struct {
	Refreshed string `json:"refreshed"`
}

// RefreshTransactions handles POST requests to overwrite the transaction
// cache from the bank API in one shot.
//
// Endpoint: POST /api/settings/refresh/transactions
// Response: 200 OK with RefreshResponse
// Error: 502 Bad Gateway if the bank API is unreachable
// Error: 503 Service Unavailable if no access token is configured
func (h *SettingsHandler) RefreshTransactions(w http.ResponseWriter, r *http.Request) {
	if err := h.budgetService.RefreshTransactions(r.Context()); err != nil {
		respondFetchError(w, apperrors.ErrFailedToRefresh, err)
		return
	}
	respondJSON(w, http.StatusOK, RefreshResponse{Refreshed: "transactions"})
}

// RefreshAccounts handles POST requests to overwrite the account cache from
// the bank API in one shot.
//
// Endpoint: POST /api/settings/refresh/accounts
// Response: 200 OK with RefreshResponse
func (h *SettingsHandler) RefreshAccounts(w http.ResponseWriter, r *http.Request) {
	if err := h.budgetService.RefreshAccounts(r.Context()); err != nil {
		respondFetchError(w, apperrors.ErrFailedToRefresh, err)
		return
	}
	respondJSON(w, http.StatusOK, RefreshResponse{Refreshed: "accounts"})
}

// RefreshAll handles POST requests to overwrite both caches concurrently.
//
// Endpoint: POST /api/settings/refresh
// Response: 200 OK with RefreshResponse
func (h *SettingsHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	if err := h.budgetService.RefreshAll(r.Context()); err != nil {
		respondFetchError(w, apperrors.ErrFailedToRefresh, err)
		return
	}
	respondJSON(w, http.StatusOK, RefreshResponse{Refreshed: "transactions,accounts"})
}

// UpdateTokenRequest carries a new personal access token.
type UpdateTokenRequest struct {
	Token string `json:"token"`
}

// UpdateToken handles PUT requests to store a new personal access token.
// The token is encrypted at rest and used for all subsequent refreshes.
//
// Endpoint: PUT /api/settings/token
// Request Body: UpdateTokenRequest
// Response: 204 No Content
// Error: 400 Bad Request on an empty or malformed body
// Error: 500 Internal Server Error if the token cannot be stored
func (h *SettingsHandler) UpdateToken(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[UpdateTokenRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Token == "" {
		response.RespondError(w, http.StatusBadRequest, "token is required", "")
		return
	}

	if err := h.settingsService.SetToken(req.Token); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStoreToken.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
