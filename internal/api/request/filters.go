// Package request parses and validates raw query parameters into domain
// types before they reach the service layer.
package request

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/budget"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// ParseFilter extracts the transaction filter from query parameters.
//
// Parameters:
//   - start_date, end_date: required, YYYY-MM-DD, inclusive
//   - account: optional account name
//   - excluded_categories: optional comma-separated category labels
//   - excluded_subcategories: optional comma-separated subcategory labels,
//     plain or in the composite "Category: Subcategory" display form
//
// A reversed range passes validation; it simply yields an empty result
// downstream.
func ParseFilter(r *http.Request) (model.Filter, error) {
	query := r.URL.Query()

	startDate, err := parseDateParam(query.Get("start_date"), "start_date")
	if err != nil {
		return model.Filter{}, err
	}
	endDate, err := parseDateParam(query.Get("end_date"), "end_date")
	if err != nil {
		return model.Filter{}, err
	}

	return model.Filter{
		StartDate:             startDate,
		EndDate:               endDate,
		Account:               query.Get("account"),
		ExcludedCategories:    splitList(query.Get("excluded_categories")),
		ExcludedSubcategories: splitList(query.Get("excluded_subcategories")),
	}, nil
}

// ParseValidationMode extracts the schema validation mode, defaulting to
// filter mode (drop malformed rows) like the live dashboard.
func ParseValidationMode(r *http.Request) (validation.Mode, error) {
	raw := r.URL.Query().Get("validate")
	if raw == "" {
		return validation.Filter, nil
	}
	mode := validation.Mode(strings.ToLower(raw))
	if !validation.ValidModes[mode] {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidValidationMode, raw)
	}
	return mode, nil
}

// ParseRollingWindow extracts the trend rolling window in days, defaulting
// to budget.DefaultRollingWindowDays.
func ParseRollingWindow(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("window")
	if raw == "" {
		return budget.DefaultRollingWindowDays, nil
	}
	window, err := strconv.Atoi(raw)
	if err != nil || window < 1 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidRollingWindow, raw)
	}
	return window, nil
}

// ParsePeriod extracts the budget period, defaulting to monthly.
func ParsePeriod(r *http.Request) (model.Period, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return model.PeriodMonth, nil
	}
	period := model.Period(strings.ToLower(raw))
	if !model.ValidPeriods[period] {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidPeriod, raw)
	}
	return period, nil
}

// ParseGrouping extracts the transaction grouping, defaulting to category.
func ParseGrouping(r *http.Request) (model.Grouping, error) {
	raw := r.URL.Query().Get("group")
	if raw == "" {
		return model.GroupCategory, nil
	}
	group := model.Grouping(strings.ToLower(raw))
	if !model.ValidGroupings[group] {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidGrouping, raw)
	}
	return group, nil
}

// ParseLimit extracts a positive result limit, with the given default.
func ParseLimit(r *http.Request, defaultLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid limit: %q", raw)
	}
	return limit, nil
}

func parseDateParam(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidDateRange, name)
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrInvalidDateRange, name)
	}
	return parsed.UTC(), nil
}

// splitList splits a comma-separated parameter into trimmed, non-empty
// values.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}
