package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/api/request"
	"github.com/avdberg/Budget-Planner-Backend/internal/api/response"
	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
)

// BudgetHandler handles HTTP requests for the aggregated budget views:
// metrics, trend series, and per-period mean spending.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Metrics handles GET requests for the Metrics bundle under a filter.
//
// Endpoint: GET /api/budget/metrics
// Query: start_date, end_date (required), account, excluded_categories,
// excluded_subcategories, validate
// Response: 200 OK with Metrics
// Error: 400 Bad Request on invalid filter parameters
// Error: 422 Unprocessable Entity on a schema violation in strict mode
// Error: 502 Bad Gateway if the data source is unavailable
func (h *BudgetHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	filter, mode, ok := parseFilterAndMode(w, r)
	if !ok {
		return
	}

	metrics, err := h.budgetService.GetMetrics(filter, mode)
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToComputeMetrics, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

// Trend handles GET requests for the rolling daily trend series.
//
// Endpoint: GET /api/budget/trend
// Query: filter parameters plus window (rolling days, default 30)
// Response: 200 OK with array of TrendPoint
func (h *BudgetHandler) Trend(w http.ResponseWriter, r *http.Request) {
	filter, mode, ok := parseFilterAndMode(w, r)
	if !ok {
		return
	}
	window, err := request.ParseRollingWindow(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid rolling window", err.Error())
		return
	}

	points, err := h.budgetService.GetTrend(filter, mode, window)
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToComputeTrend, err)
		return
	}

	respondJSON(w, http.StatusOK, trendResponse(points))
}

// MeanSpendingResponse is one row of the mean-spending endpoint: the
// per-period average for a label plus the derived suggested budget.
type MeanSpendingResponse struct {
	Period model.Period         `json:"period"`
	Group  model.Grouping       `json:"group"`
	Means  []model.CategoryMean `json:"means"`
}

// MeanSpending handles GET requests for average per-period spend per
// category or subcategory, the suggested-budget baseline.
//
// Endpoint: GET /api/budget/mean-spending
// Query: filter parameters plus period (week|month, default month) and
// group (category|subcategory, default category)
// Response: 200 OK with MeanSpendingResponse
func (h *BudgetHandler) MeanSpending(w http.ResponseWriter, r *http.Request) {
	filter, mode, ok := parseFilterAndMode(w, r)
	if !ok {
		return
	}
	period, err := request.ParsePeriod(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}
	group, err := request.ParseGrouping(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid grouping", err.Error())
		return
	}

	means, err := h.budgetService.GetMeanSpending(filter, mode, period, group)
	if err != nil {
		respondFetchError(w, apperrors.ErrFailedToComputeMetrics, err)
		return
	}

	respondJSON(w, http.StatusOK, MeanSpendingResponse{
		Period: period,
		Group:  group,
		Means:  means,
	})
}

// TrendPointResponse renders a trend point with the day as a plain date.
type TrendPointResponse struct {
	Day    string                `json:"day"`
	Type   model.TransactionType `json:"type"`
	Amount float64               `json:"amount"`
	WarmUp bool                  `json:"warmUp"`
}

func trendResponse(points []model.TrendPoint) []TrendPointResponse {
	rendered := make([]TrendPointResponse, 0, len(points))
	for _, point := range points {
		rendered = append(rendered, TrendPointResponse{
			Day:    point.Day.Format("2006-01-02"),
			Type:   point.Type,
			Amount: point.Amount,
			WarmUp: point.WarmUp,
		})
	}
	return rendered
}
