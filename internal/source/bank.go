package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/model"
	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/upbank"
	"github.com/avdberg/Budget-Planner-Backend/internal/validation"
)

// Bank is the live data source: an Up Bank API client in front of a local
// SQLite cache. Reads never touch the network; a refresh performs a one-shot
// fetch-all/replace-all of the cached snapshot.
//
// Refreshes take the write lock so a concurrent read can never observe a
// half-written replace; the cache swap itself is additionally atomic at the
// SQL level.
type Bank struct {
	client       *upbank.Client
	transactions *repository.TransactionRepository
	accounts     *repository.AccountRepository
	dataDir      string

	mu sync.RWMutex
}

// NewBank creates a live source over the given API client and cache
// repositories. When dataDir is non-empty, raw API page dumps are written
// there on refresh before the cache tables are rebuilt.
func NewBank(client *upbank.Client, transactions *repository.TransactionRepository, accounts *repository.AccountRepository, dataDir string) *Bank {
	return &Bank{
		client:       client,
		transactions: transactions,
		accounts:     accounts,
		dataDir:      dataDir,
	}
}

// Kind identifies the implementation.
func (b *Bank) Kind() string {
	return "upbank"
}

// Ping verifies the configured access token against the API.
func (b *Bank) Ping(ctx context.Context) error {
	if !b.client.HasToken() {
		return apperrors.ErrTokenNotConfigured
	}
	if err := b.client.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return nil
}

// GetTransactions reads canonical transactions from the cache under the
// given filter and runs the schema gate in the caller-selected mode.
func (b *Bank) GetTransactions(f model.Filter, mode validation.Mode) ([]model.Transaction, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	transactions, err := b.transactions.GetTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return validation.Transactions(transactions, mode)
}

// GetCategories returns the distinct categories in the cache.
func (b *Bank) GetCategories() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	categories, err := b.transactions.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return categories, nil
}

// GetSubcategories returns the distinct subcategories in the cache.
func (b *Bank) GetSubcategories() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subcategories, err := b.transactions.GetSubcategories()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return subcategories, nil
}

// GetAccounts returns the cached account display names.
func (b *Bank) GetAccounts() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names, err := b.accounts.GetNames()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return names, nil
}

// GetAccountBalances returns the cached positive account balances.
func (b *Bank) GetAccountBalances() ([]model.AccountBalance, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	balances, err := b.accounts.GetBalances()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	return balances, nil
}

// RefreshTransactions downloads the last year of settled transactions and
// rebuilds the transaction cache wholesale. Transaction types outside the
// income/purchase classification table (internal transfers) are skipped.
func (b *Bank) RefreshTransactions(ctx context.Context) error {
	if !b.client.HasToken() {
		return apperrors.ErrTokenNotConfigured
	}

	since := time.Now().UTC().AddDate(0, 0, -upbank.HistoryDays)
	resources, err := b.client.Transactions(ctx, since, nil, upbank.StatusSettled)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}

	b.dumpRaw("transactions.json", resources)

	rows := make([]repository.CachedTransaction, 0, len(resources))
	skipped := 0
	for _, resource := range resources {
		canonical, ok := resource.Canonical()
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, repository.CachedTransaction{
			ID:          canonical.ID,
			CreatedDate: canonical.CreatedDate,
			Type:        canonical.Type,
			Description: canonical.Description,
			Category:    canonical.Category,
			Subcategory: canonical.Subcategory,
			Amount:      canonical.Amount,
			AccountID:   canonical.Account,
			Status:      canonical.Status,
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.transactions.ReplaceAll(rows); err != nil {
		return fmt.Errorf("refresh transactions: %w", err)
	}
	log.Printf("Refreshed transaction cache: %d cached, %d unclassified skipped", len(rows), skipped)
	return nil
}

// RefreshAccounts downloads all accounts and rebuilds the account cache
// wholesale.
func (b *Bank) RefreshAccounts(ctx context.Context) error {
	if !b.client.HasToken() {
		return apperrors.ErrTokenNotConfigured
	}

	resources, err := b.client.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}

	b.dumpRaw("accounts.json", resources)

	rows := make([]repository.CachedAccount, 0, len(resources))
	for _, resource := range resources {
		rows = append(rows, repository.CachedAccount{
			ID:               resource.ID,
			DisplayName:      resource.Attributes.DisplayName,
			AccountType:      resource.Attributes.AccountType,
			OwnershipType:    resource.Attributes.OwnershipType,
			CurrencyCode:     resource.Attributes.Balance.CurrencyCode,
			BalanceBaseUnits: resource.Attributes.Balance.ValueInBaseUnits,
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.accounts.ReplaceAll(rows); err != nil {
		return fmt.Errorf("refresh accounts: %w", err)
	}
	log.Printf("Refreshed account cache: %d accounts", len(rows))
	return nil
}

// dumpRaw persists a raw API response dump beside the database. Dump
// failures are logged and otherwise ignored; the dumps are diagnostic only.
func (b *Bank) dumpRaw(name string, payload any) {
	if b.dataDir == "" {
		return
	}
	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		log.Printf("failed to encode raw dump %s: %v", name, err)
		return
	}
	if err := os.WriteFile(filepath.Join(b.dataDir, name), data, 0o644); err != nil {
		log.Printf("failed to write raw dump %s: %v", name, err)
	}
}
