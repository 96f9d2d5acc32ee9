package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/avdberg/Budget-Planner-Backend/internal/api/request"
	"github.com/avdberg/Budget-Planner-Backend/internal/api/response"
	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// parseJSON decodes a request body into the given type, rejecting unknown
// fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var value T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&value); err != nil {
		return value, fmt.Errorf("invalid JSON body: %w", err)
	}
	return value, nil
}

// parseFilterAndMode extracts the transaction filter and validation mode
// from the request, writing a 400 response and returning ok=false when
// either is malformed.
func parseFilterAndMode(w http.ResponseWriter, r *http.Request) (model.Filter, validation.Mode, bool) {
	filter, err := request.ParseFilter(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return model.Filter{}, "", false
	}
	mode, err := request.ParseValidationMode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid validation mode", err.Error())
		return model.Filter{}, "", false
	}
	return filter, mode, true
}

// respondFetchError maps data-fetch failures onto HTTP statuses:
// schema violations in strict mode become 422, an unreachable source or
// missing cache becomes 502, a missing token 503, and anything else falls
// back to 500 with the given operation error as the message.
func respondFetchError(w http.ResponseWriter, operation error, err error) {
	var schemaErr *apperrors.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		response.RespondError(w, http.StatusUnprocessableEntity, "transaction failed schema validation", schemaErr.Error())
	case errors.Is(err, apperrors.ErrTokenNotConfigured):
		response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrTokenNotConfigured.Error(), err.Error())
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrSourceUnavailable.Error(), err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, operation.Error(), err.Error())
	}
}
