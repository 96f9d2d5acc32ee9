package apperrors

import (
	"errors"
	"fmt"
)

// Data source errors represent failures reaching or reading a data source.
var (
	// ErrSourceUnavailable indicates the bank API could not be reached or the
	// local cache is missing or unreadable. Surfaced as a hard fetch failure;
	// no automatic retry.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrTokenNotConfigured indicates no personal access token is available
	// for the live bank source.
	ErrTokenNotConfigured = errors.New("access token not configured")
)

// Request validation errors represent malformed caller input.
var (
	// ErrInvalidDateRange indicates a missing or unparseable start/end date.
	// Note a reversed range is not an error; it yields an empty result.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidPeriod indicates an unknown budget period value.
	ErrInvalidPeriod = errors.New("invalid period, expected week or month")

	// ErrInvalidGrouping indicates an unknown transaction grouping value.
	ErrInvalidGrouping = errors.New("invalid grouping, expected category or subcategory")

	// ErrInvalidValidationMode indicates an unknown validation mode value.
	ErrInvalidValidationMode = errors.New("invalid validation mode, expected strict or filter")

	// ErrInvalidRollingWindow indicates a non-positive rolling window.
	ErrInvalidRollingWindow = errors.New("rolling window must be at least one day")
)

// Operation failure errors represent system-level failures while serving
// dashboard data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveBalances     = errors.New("failed to retrieve account balances")
	ErrFailedToRetrieveCategories   = errors.New("failed to retrieve categories")
	ErrFailedToComputeMetrics       = errors.New("failed to compute budget metrics")
	ErrFailedToComputeTrend         = errors.New("failed to compute trend series")
	ErrFailedToRefresh              = errors.New("failed to refresh cached data")
	ErrFailedToStoreToken           = errors.New("failed to store access token")
)

// SchemaError reports a transaction record that fails canonical-schema
// validation. In strict mode it aborts the whole fetch; in filter mode
// offending records are silently dropped and it is never surfaced.
type SchemaError struct {
	Index  int    // position of the offending record in the batch
	ID     string // transaction id if present
	Field  string // first field that failed
	Reason string
}

func (e *SchemaError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("transaction %s: field %s %s", e.ID, e.Field, e.Reason)
	}
	return fmt.Sprintf("transaction at index %d: field %s %s", e.Index, e.Field, e.Reason)
}
