package handlers

import (
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/service"
	"github.com/avdberg/Budget-Planner-Backend/internal/source"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	budgetSource  source.BudgetSource
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, budgetSource source.BudgetSource) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		budgetSource:  budgetSource,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionResponse represents the version check response.
type VersionResponse struct {
	AppVersion string `json:"appVersion"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	})
}

// SourceResponse reports which data source implementation is active and,
// for the live source, whether the access token verifies against the API.
type SourceResponse struct {
	Kind  string `json:"kind"`
	Ping  string `json:"ping,omitempty"`
	Error string `json:"error,omitempty"`
}

// Source handles GET requests for the active data source status.
//
// Endpoint: GET /api/system/source
// Response: 200 OK with SourceResponse
func (h *SystemHandler) Source(w http.ResponseWriter, r *http.Request) {
	result := SourceResponse{Kind: h.budgetSource.Kind()}

	if bank, ok := h.budgetSource.(*source.Bank); ok {
		if err := bank.Ping(r.Context()); err != nil {
			result.Ping = "failed"
			result.Error = err.Error()
		} else {
			result.Ping = "ok"
		}
	}

	respondJSON(w, http.StatusOK, result)
}
