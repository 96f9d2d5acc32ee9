package model

// AccountBalance represents the current balance of a single account held at
// the bank. Account names share a namespace with Transaction.Account only
// loosely; no referential link is guaranteed.
type AccountBalance struct {
	AccountName   string  `json:"accountName"`
	AccountType   string  `json:"accountType"`
	OwnershipType string  `json:"ownershipType"`
	CurrencyCode  string  `json:"currencyCode"`
	Balance       float64 `json:"balance"`
}

// BalanceSheet bundles the per-account balances with the total across all of
// them, matching the dashboard's "total savings" card.
type BalanceSheet struct {
	Accounts     []AccountBalance `json:"accounts"`
	TotalSavings float64          `json:"totalSavings"`
}
