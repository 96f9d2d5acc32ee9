package model

import (
	"fmt"
	"time"
)

// TransactionType classifies a canonical transaction as money in or money out.
// The amount field always carries a non-negative magnitude; the sign of the
// movement is expressed by the type alone.
type TransactionType string

const (
	// TypeIncome marks money received (salary, interest, transfers in).
	TypeIncome TransactionType = "Income"
	// TypePurchase marks money spent.
	TypePurchase TransactionType = "Purchase"
)

// TransactionTypes lists every valid transaction type in display order.
// Trend output iterates types in this order so series ordering is stable.
var TransactionTypes = []TransactionType{TypeIncome, TypePurchase}

// ValidTransactionTypes supports membership checks during validation.
var ValidTransactionTypes = map[TransactionType]bool{
	TypeIncome:   true,
	TypePurchase: true,
}

// Transaction is the canonical transaction record every data source must
// produce. Both the synthetic generator and the bank-API-backed cache reduce
// their raw shapes to this schema before records leave the source boundary.
type Transaction struct {
	ID          string          `json:"id"`
	CreatedDate string          `json:"createdDate"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Amount      float64         `json:"amount"`
	Account     string          `json:"account"`
	Status      string          `json:"status"`
}

// createdDateLayouts are the accepted CreatedDate formats: a plain date
// (synthetic source) or an RFC3339 timestamp (bank API).
var createdDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Day parses CreatedDate and truncates it to a calendar day in UTC.
func (t Transaction) Day() (time.Time, error) {
	return ParseDay(t.CreatedDate)
}

// ParseDay parses an ISO-8601 date or timestamp string down to a UTC
// calendar day.
func ParseDay(value string) (time.Time, error) {
	for _, layout := range createdDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			y, m, d := parsed.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
