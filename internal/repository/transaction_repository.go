package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// TransactionRepository provides data access methods for the cached
// transactions table. Rows are stored in canonical form with the raw account
// id; account names are resolved against the accounts table at query time.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CachedTransaction is one canonical row as persisted in the cache,
// referencing the account by raw id.
type CachedTransaction struct {
	ID          string
	CreatedDate string
	Type        model.TransactionType
	Description string
	Category    string
	Subcategory string
	Amount      float64
	AccountID   string
	Status      string
}

// ReplaceAll overwrites the cached transactions wholesale: rows are written
// to a fresh table which is then swapped in under the live name, so a reader
// can never observe a partially rebuilt cache.
func (r *TransactionRepository) ReplaceAll(rows []CachedTransaction) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	statements := []string{
		`DROP TABLE IF EXISTS transactions_new`,
		`CREATE TABLE transactions_new (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			created_date TEXT NOT NULL,
			type VARCHAR(10) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			amount REAL NOT NULL,
			account_id VARCHAR(64) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT ''
		)`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(statement); err != nil {
			return fmt.Errorf("failed to stage transaction cache: %w", err)
		}
	}

	insert, err := tx.Prepare(`
		INSERT INTO transactions_new
			(id, created_date, type, description, category, subcategory, amount, account_id, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare cache insert: %w", err)
	}
	defer insert.Close()

	for _, row := range rows {
		_, err := insert.Exec(
			row.ID,
			row.CreatedDate,
			string(row.Type),
			row.Description,
			row.Category,
			row.Subcategory,
			row.Amount,
			row.AccountID,
			row.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", row.ID, err)
		}
	}

	swap := []string{
		`DROP INDEX IF EXISTS idx_transactions_created_date`,
		`DROP TABLE transactions`,
		`ALTER TABLE transactions_new RENAME TO transactions`,
		`CREATE INDEX idx_transactions_created_date ON transactions (created_date)`,
	}
	for _, statement := range swap {
		if _, err := tx.Exec(statement); err != nil {
			return fmt.Errorf("failed to swap transaction cache: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache replace: %w", err)
	}
	return nil
}

// GetTransactions retrieves canonical transactions matching the filter,
// newest first. The date range is inclusive on both ends; account,
// category-exclusion, and subcategory-exclusion filters compose with it.
// Composite "Category: Subcategory" exclusion labels must be reduced to
// their subcategory part by the caller before reaching this method.
//
// Account ids are resolved to display names via the accounts cache; rows
// whose account is unknown come back with an empty account and are left for
// the validation gate to judge.
func (r *TransactionRepository) GetTransactions(f model.Filter) ([]model.Transaction, error) {
	query := `
		SELECT t.id, t.created_date, t.type, t.description, t.category, t.subcategory,
		       t.amount, COALESCE(a.display_name, '') AS account, t.status
		FROM transactions t
		LEFT JOIN accounts a ON t.account_id = a.id
		WHERE date(t.created_date) >= ?
		AND date(t.created_date) <= ?
	`
	args := []any{
		f.StartDate.Format("2006-01-02"),
		f.EndDate.Format("2006-01-02"),
	}

	if f.Account != "" {
		query += ` AND a.display_name = ?`
		args = append(args, f.Account)
	}
	if len(f.ExcludedCategories) > 0 {
		query += ` AND t.category NOT IN (` + placeholders(len(f.ExcludedCategories)) + `)`
		for _, category := range f.ExcludedCategories {
			args = append(args, category)
		}
	}
	if len(f.ExcludedSubcategories) > 0 {
		query += ` AND t.subcategory NOT IN (` + placeholders(len(f.ExcludedSubcategories)) + `)`
		for _, subcategory := range f.ExcludedSubcategories {
			args = append(args, model.SubcategoryPart(subcategory))
		}
	}
	query += ` ORDER BY t.created_date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		var transactionType string
		err := rows.Scan(
			&t.ID,
			&t.CreatedDate,
			&transactionType,
			&t.Description,
			&t.Category,
			&t.Subcategory,
			&t.Amount,
			&t.Account,
			&t.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}
		t.Type = model.TransactionType(transactionType)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}

// GetCategories returns the distinct categories present in the cache,
// sorted alphabetically.
func (r *TransactionRepository) GetCategories() ([]string, error) {
	return r.distinct(`SELECT DISTINCT category FROM transactions ORDER BY category`)
}

// GetSubcategories returns the distinct subcategories present in the cache,
// sorted by category then subcategory to match the dashboard's exclusion
// picker ordering.
func (r *TransactionRepository) GetSubcategories() ([]string, error) {
	return r.distinct(`SELECT subcategory FROM transactions GROUP BY subcategory ORDER BY MIN(category), subcategory`)
}

func (r *TransactionRepository) distinct(query string) ([]string, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}
	return values, nil
}

// placeholders renders n comma-separated SQL parameter markers.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ",")
}
