package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating canonical test
// transactions, either as in-memory models for the pure aggregation core or
// inserted into the cache tables for repository and handler tests.
//
// Example usage:
//
//	// In-memory canonical transaction
//	tx := testutil.NewTransaction().WithCategory("Food").Model()
//
//	// Inserted into the transaction cache
//	tx := testutil.NewTransaction().WithAccountID(account.ID).Build(t, db)
type TransactionBuilder struct {
	ID          string
	CreatedDate string
	Type        model.TransactionType
	Description string
	Category    string
	Subcategory string
	Amount      float64
	Account     string
	AccountID   string
	Status      string
}

// NewTransaction creates a TransactionBuilder with sensible defaults:
// a $50 purchase of groceries on 2024-03-05 from the Checking account.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:          MakeID(),
		CreatedDate: "2024-03-05",
		Type:        model.TypePurchase,
		Description: "Test purchase",
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      50,
		Account:     "Checking",
		AccountID:   "acc-checking",
		Status:      "cleared",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the created date (YYYY-MM-DD or RFC3339).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.CreatedDate = date
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(transactionType model.TransactionType) *TransactionBuilder {
	b.Type = transactionType
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithSubcategory sets the subcategory.
func (b *TransactionBuilder) WithSubcategory(subcategory string) *TransactionBuilder {
	b.Subcategory = subcategory
	return b
}

// WithAmount sets the amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithAccount sets the canonical account name.
func (b *TransactionBuilder) WithAccount(account string) *TransactionBuilder {
	b.Account = account
	return b
}

// WithAccountID sets the raw account id used by the cache tables.
func (b *TransactionBuilder) WithAccountID(accountID string) *TransactionBuilder {
	b.AccountID = accountID
	return b
}

// WithStatus sets the status.
func (b *TransactionBuilder) WithStatus(status string) *TransactionBuilder {
	b.Status = status
	return b
}

// Income switches the builder to an income transaction with the
// conventional "Income" category and a wages subcategory.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.Type = model.TypeIncome
	b.Category = "Income"
	b.Subcategory = "Wages"
	b.Description = "Test salary"
	return b
}

// Model returns the canonical in-memory transaction.
func (b *TransactionBuilder) Model() model.Transaction {
	return model.Transaction{
		ID:          b.ID,
		CreatedDate: b.CreatedDate,
		Type:        b.Type,
		Description: b.Description,
		Category:    b.Category,
		Subcategory: b.Subcategory,
		Amount:      b.Amount,
		Account:     b.Account,
		Status:      b.Status,
	}
}

// Build inserts the transaction into the cache tables and returns the
// canonical model.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO transactions
			(id, created_date, type, description, category, subcategory, amount, account_id, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.CreatedDate, string(b.Type), b.Description, b.Category,
		b.Subcategory, b.Amount, b.AccountID, b.Status,
	)
	if err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}
	return b.Model()
}

// AccountBuilder provides a fluent interface for creating cached test
// accounts.
type AccountBuilder struct {
	ID               string
	DisplayName      string
	AccountType      string
	OwnershipType    string
	CurrencyCode     string
	BalanceBaseUnits int64
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:               MakeID(),
		DisplayName:      "Checking",
		AccountType:      "Transactional",
		OwnershipType:    "Individual",
		CurrencyCode:     "AUD",
		BalanceBaseUnits: 15400,
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithDisplayName sets the display name.
func (b *AccountBuilder) WithDisplayName(name string) *AccountBuilder {
	b.DisplayName = name
	return b
}

// WithAccountType sets the account type.
func (b *AccountBuilder) WithAccountType(accountType string) *AccountBuilder {
	b.AccountType = accountType
	return b
}

// WithOwnershipType sets the ownership type.
func (b *AccountBuilder) WithOwnershipType(ownershipType string) *AccountBuilder {
	b.OwnershipType = ownershipType
	return b
}

// WithBalanceBaseUnits sets the balance in cents.
func (b *AccountBuilder) WithBalanceBaseUnits(baseUnits int64) *AccountBuilder {
	b.BalanceBaseUnits = baseUnits
	return b
}

// Build inserts the account into the cache tables and returns the builder.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) *AccountBuilder {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO accounts
			(id, display_name, account_type, ownership_type, currency_code, balance_base_units)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.DisplayName, b.AccountType, b.OwnershipType, b.CurrencyCode, b.BalanceBaseUnits,
	)
	if err != nil {
		t.Fatalf("Failed to insert test account: %v", err)
	}
	return b
}

// MakeID generates a unique identifier for test entities.
func MakeID() string {
	return uuid.New().String()
}
