package repository

import (
	"database/sql"
	"fmt"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// AccountRepository provides data access methods for the cached accounts
// table.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CachedAccount is one account row as persisted in the cache. Balance is
// stored in base units (cents) to keep the column integral.
type CachedAccount struct {
	ID               string
	DisplayName      string
	AccountType      string
	OwnershipType    string
	CurrencyCode     string
	BalanceBaseUnits int64
}

// ReplaceAll overwrites the cached accounts wholesale using the same
// stage-and-swap approach as the transaction cache.
func (r *AccountRepository) ReplaceAll(rows []CachedAccount) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	statements := []string{
		`DROP TABLE IF EXISTS accounts_new`,
		`CREATE TABLE accounts_new (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			display_name VARCHAR(100) NOT NULL,
			account_type VARCHAR(20) NOT NULL,
			ownership_type VARCHAR(20) NOT NULL,
			currency_code VARCHAR(3) NOT NULL,
			balance_base_units INTEGER NOT NULL
		)`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(statement); err != nil {
			return fmt.Errorf("failed to stage account cache: %w", err)
		}
	}

	for _, row := range rows {
		_, err := tx.Exec(`
			INSERT INTO accounts_new
				(id, display_name, account_type, ownership_type, currency_code, balance_base_units)
			VALUES (?, ?, ?, ?, ?, ?)`,
			row.ID,
			row.DisplayName,
			row.AccountType,
			row.OwnershipType,
			row.CurrencyCode,
			row.BalanceBaseUnits,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", row.ID, err)
		}
	}

	swap := []string{
		`DROP TABLE accounts`,
		`ALTER TABLE accounts_new RENAME TO accounts`,
	}
	for _, statement := range swap {
		if _, err := tx.Exec(statement); err != nil {
			return fmt.Errorf("failed to swap account cache: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache replace: %w", err)
	}
	return nil
}

// GetBalances returns the balances of accounts holding a positive balance,
// ordered by account type descending then balance descending, matching the
// dashboard's balance sheet ordering.
func (r *AccountRepository) GetBalances() ([]model.AccountBalance, error) {
	rows, err := r.db.Query(`
		SELECT display_name, account_type, ownership_type, currency_code,
		       balance_base_units
		FROM accounts
		WHERE balance_base_units > 0
		ORDER BY account_type DESC, balance_base_units DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts table: %w", err)
	}
	defer rows.Close()

	balances := []model.AccountBalance{}
	for rows.Next() {
		var balance model.AccountBalance
		var baseUnits int64
		err := rows.Scan(
			&balance.AccountName,
			&balance.AccountType,
			&balance.OwnershipType,
			&balance.CurrencyCode,
			&baseUnits,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accounts table results: %w", err)
		}
		balance.Balance = float64(baseUnits) / 100
		balances = append(balances, balance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts table: %w", err)
	}

	return balances, nil
}

// GetNames returns the distinct account display names in the cache, sorted
// alphabetically. These populate the account filter picker.
func (r *AccountRepository) GetNames() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT display_name FROM accounts ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts table: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan accounts table results: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts table: %w", err)
	}
	return names, nil
}
