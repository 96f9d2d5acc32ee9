package testutil

import (
	"database/sql"
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
	"github.com/avdberg/Budget-Planner-Backend/internal/source"
	"github.com/avdberg/Budget-Planner-Backend/internal/upbank"
)

// NewTestBankSource creates a bank-backed data source over the test database.
// The API client carries no token; reads only touch the cache tables, so
// tests seed those directly with the factories.
func NewTestBankSource(t *testing.T, db *sql.DB) *source.Bank {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	return source.NewBank(upbank.NewClient(""), transactionRepo, accountRepo, "")
}

// NewTestBankSourceWithClient creates a bank-backed data source over the
// test database using the given API client, typically pointed at a fake
// Up Bank server.
func NewTestBankSourceWithClient(t *testing.T, db *sql.DB, client *upbank.Client) *source.Bank {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	return source.NewBank(client, transactionRepo, accountRepo, "")
}

// NewTestBudgetService creates a BudgetService over a bank source reading
// the test database.
func NewTestBudgetService(t *testing.T, db *sql.DB) *service.BudgetService {
	t.Helper()

	return service.NewBudgetService(NewTestBankSource(t, db))
}
