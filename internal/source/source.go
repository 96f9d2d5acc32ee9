// Package source defines the data source capability feeding the aggregation
// core, with two interchangeable implementations: a synthetic generator and
// an Up-Bank-backed local cache.
package source

import (
	"context"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// BudgetSource is the contract every data source implements. Transactions
// leave the source boundary in canonical form, already gated by the schema
// validator in the caller-selected mode.
//
// Refresh operations perform a one-shot overwrite of the source's cached
// snapshot (fetch-all, replace-all); they are serialized against concurrent
// reads by the implementation.
type BudgetSource interface {
	GetTransactions(f model.Filter, mode validation.Mode) ([]model.Transaction, error)
	GetCategories() ([]string, error)
	GetSubcategories() ([]string, error)
	GetAccounts() ([]string, error)
	GetAccountBalances() ([]model.AccountBalance, error)
	RefreshTransactions(ctx context.Context) error
	RefreshAccounts(ctx context.Context) error

	// Kind identifies the implementation ("mock" or "upbank") for the
	// system status endpoint.
	Kind() string
}
