package source

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avdberg/Budget-Planner-Backend/internal/budget"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// mockCategory pairs a category with its subcategories and the amount range
// synthetic transactions draw from.
type mockCategory struct {
	name          string
	subcategories []string
	minAmount     float64
	maxAmount     float64
}

// mockCategories is the fixed category catalogue of the synthetic source.
// The first entry is the income category; everything else is spending.
var mockCategories = []mockCategory{
	{"Income", []string{"Wages", "Dividends", "Rent"}, 500, 4000},
	{"Housing", []string{"Rent", "Mortgage", "Insurance", "Maintenance"}, 800, 2000},
	{"Transportation", []string{"Gas", "Car Payment", "Public Transit", "Repairs"}, 50, 500},
	{"Food", []string{"Groceries", "Restaurants", "Coffee Shops"}, 30, 200},
	{"Utilities", []string{"Electricity", "Water", "Internet", "Phone"}, 50, 300},
	{"Healthcare", []string{"Insurance", "Medications", "Doctor Visits"}, 20, 400},
	{"Entertainment", []string{"Movies", "Streaming Services", "Hobbies"}, 10, 100},
	{"Shopping", []string{"Clothing", "Electronics", "Home Goods"}, 20, 300},
	{"Other", []string{"Gifts", "Miscellaneous"}, 10, 200},
}

var mockAccounts = []string{"Checking", "Credit Card"}

var mockStatuses = []string{"cleared", "pending"}

var mockCompanies = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella Holdings", "Stark Industries",
	"Wayne Enterprises", "Wonka Industries", "Tyrell Corp", "Cyberdyne Systems",
	"Pied Piper",
}

// Mock is the synthetic data source: it fabricates two to five plausible
// transactions per calendar day in the requested range, deterministic for a
// given seed. Refresh operations are no-ops since nothing is cached.
type Mock struct {
	rng *rand.Rand
}

// NewMock creates a synthetic source seeded from the given value. Equal
// seeds produce equal data, which keeps tests reproducible.
func NewMock(seed int64) *Mock {
	return &Mock{rng: rand.New(rand.NewSource(seed))}
}

// Kind identifies the implementation.
func (m *Mock) Kind() string {
	return "mock"
}

// GetTransactions fabricates daily transactions across the filter's date
// range, then applies the account and exclusion filters and the schema gate
// in the caller-selected mode.
func (m *Mock) GetTransactions(f model.Filter, mode validation.Mode) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for day := f.StartDate; !day.After(f.EndDate); day = day.AddDate(0, 0, 1) {
		perDay := 2 + m.rng.Intn(4)
		for i := 0; i < perDay; i++ {
			transactions = append(transactions, m.generate(day))
		}
	}

	filtered, err := budget.FilterTransactions(transactions, f)
	if err != nil {
		return nil, fmt.Errorf("mock source: %w", err)
	}
	return validation.Transactions(filtered, mode)
}

// generate fabricates one canonical transaction on the given day.
func (m *Mock) generate(day time.Time) model.Transaction {
	category := mockCategories[m.rng.Intn(len(mockCategories))]
	subcategory := category.subcategories[m.rng.Intn(len(category.subcategories))]

	transactionType := model.TypePurchase
	if category.name == "Income" {
		transactionType = model.TypeIncome
	}

	amount := category.minAmount + m.rng.Float64()*(category.maxAmount-category.minAmount)
	return model.Transaction{
		ID:          uuid.New().String(),
		CreatedDate: day.Format("2006-01-02"),
		Type:        transactionType,
		Description: fmt.Sprintf("%s - %s", mockCompanies[m.rng.Intn(len(mockCompanies))], subcategory),
		Category:    category.name,
		Subcategory: subcategory,
		Amount:      math.Round(amount*100) / 100,
		Account:     mockAccounts[m.rng.Intn(len(mockAccounts))],
		Status:      mockStatuses[m.rng.Intn(len(mockStatuses))],
	}
}

// GetCategories returns the catalogue's category names in catalogue order.
func (m *Mock) GetCategories() ([]string, error) {
	categories := make([]string, 0, len(mockCategories))
	for _, category := range mockCategories {
		categories = append(categories, category.name)
	}
	return categories, nil
}

// GetSubcategories returns every subcategory in the catalogue, sorted.
func (m *Mock) GetSubcategories() ([]string, error) {
	seen := make(map[string]bool)
	subcategories := []string{}
	for _, category := range mockCategories {
		for _, subcategory := range category.subcategories {
			if !seen[subcategory] {
				seen[subcategory] = true
				subcategories = append(subcategories, subcategory)
			}
		}
	}
	sort.Strings(subcategories)
	return subcategories, nil
}

// GetAccounts returns the fixed synthetic account names.
func (m *Mock) GetAccounts() ([]string, error) {
	return append([]string{}, mockAccounts...), nil
}

// GetAccountBalances returns a fixed synthetic balance sheet.
func (m *Mock) GetAccountBalances() ([]model.AccountBalance, error) {
	return []model.AccountBalance{
		{AccountName: "Transaction", AccountType: "Transactional", OwnershipType: "Individual", CurrencyCode: "AUD", Balance: 154},
		{AccountName: "Transaction", AccountType: "Transactional", OwnershipType: "Joint", CurrencyCode: "AUD", Balance: 300},
		{AccountName: "Saver", AccountType: "Saver", OwnershipType: "Individual", CurrencyCode: "AUD", Balance: 4500},
		{AccountName: "Saver", AccountType: "Saver", OwnershipType: "Joint", CurrencyCode: "AUD", Balance: 200},
	}, nil
}

// RefreshTransactions is a no-op; the synthetic source has no cache.
func (m *Mock) RefreshTransactions(_ context.Context) error {
	return nil
}

// RefreshAccounts is a no-op; the synthetic source has no cache.
func (m *Mock) RefreshAccounts(_ context.Context) error {
	return nil
}
