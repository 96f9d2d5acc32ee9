package upbank

import (
	"math"
	"strconv"

	"github.com/avdberg/Budget-Planner-Backend/internal/model"
)

// incomeTypes are the raw transactionType values classified as income.
var incomeTypes = map[string]bool{
	"Direct Credit":         true,
	"Osko Payment Received": true,
	"Interest":              true,
}

// expenseTypes are the raw transactionType values classified as purchases.
var expenseTypes = map[string]bool{
	"Purchase":               true,
	"Direct Debit":           true,
	"International Purchase": true,
	"BPAY Payment":           true,
	"EFTPOS Withdrawal":      true,
	"ATM Cash Out":           true,
	"Refund":                 true,
	"Payment":                true,
	"ATM Operator Fee":       true,
}

// Classify maps a raw transactionType onto the canonical income/purchase
// enum. The second return value is false for types outside the
// classification table (internal transfers and the like), which are not
// budget-relevant and are skipped during refresh.
func Classify(transactionType string) (model.TransactionType, bool) {
	switch {
	case incomeTypes[transactionType]:
		return model.TypeIncome, true
	case expenseTypes[transactionType]:
		return model.TypePurchase, true
	default:
		return "", false
	}
}

// Canonical reduces a raw transaction resource to the canonical schema.
// Income rows take the literal "Income" category with the description as
// subcategory; purchases take parent category and category ids. The amount
// becomes an absolute magnitude, sign being carried by the type. The second
// return value is false for unclassifiable transaction types.
//
// The account field holds the raw account id; resolution to a display name
// happens against the cached accounts table at query time.
func (r TransactionResource) Canonical() (model.Transaction, bool) {
	transactionType, ok := Classify(r.Attributes.TransactionType)
	if !ok {
		return model.Transaction{}, false
	}

	t := model.Transaction{
		ID:          r.ID,
		CreatedDate: r.Attributes.CreatedAt,
		Type:        transactionType,
		Description: r.Attributes.Description,
		Amount:      math.Abs(amountValue(r.Attributes.Amount.Value, r.Attributes.Amount.ValueInBaseUnits)),
		Account:     r.Relationships.Account.RelatedID(),
		Status:      r.Attributes.Status,
	}
	if transactionType == model.TypeIncome {
		t.Category = string(model.TypeIncome)
		t.Subcategory = r.Attributes.Description
	} else {
		t.Category = r.Relationships.ParentCategory.RelatedID()
		t.Subcategory = r.Relationships.Category.RelatedID()
	}
	return t, true
}

// Balance converts a raw account resource to a canonical AccountBalance,
// with the balance in whole currency units.
func (r AccountResource) Balance() model.AccountBalance {
	return model.AccountBalance{
		AccountName:   r.Attributes.DisplayName,
		AccountType:   r.Attributes.AccountType,
		OwnershipType: r.Attributes.OwnershipType,
		CurrencyCode:  r.Attributes.Balance.CurrencyCode,
		Balance:       float64(r.Attributes.Balance.ValueInBaseUnits) / 100,
	}
}

// amountValue prefers the decimal string representation and falls back to
// base units when it does not parse.
func amountValue(value string, baseUnits int64) float64 {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return parsed
	}
	return float64(baseUnits) / 100
}
