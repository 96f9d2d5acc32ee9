package upbank

// Envelope represents the paginated response wrapper returned by every Up
// Bank collection endpoint. Data holds one page of resources; Links.Next
// holds the absolute URL of the following page, or null on the last page.
type Envelope[T any] struct {
	Data  []T `json:"data"`
	Links struct {
		Next *string `json:"next"`
	} `json:"links"`
}

// TransactionResource is one raw transaction record as returned by the API.
// Only the fields the planner consumes are mapped.
type TransactionResource struct {
	ID         string `json:"id"`
	Attributes struct {
		Status          string `json:"status"`
		Description     string `json:"description"`
		TransactionType string `json:"transactionType"`
		Amount          struct {
			CurrencyCode     string `json:"currencyCode"`
			Value            string `json:"value"`
			ValueInBaseUnits int64  `json:"valueInBaseUnits"`
		} `json:"amount"`
		CreatedAt string `json:"createdAt"`
	} `json:"attributes"`
	Relationships struct {
		Account        RelatedResource `json:"account"`
		Category       RelatedResource `json:"category"`
		ParentCategory RelatedResource `json:"parentCategory"`
	} `json:"relationships"`
}

// AccountResource is one raw account record as returned by the API.
type AccountResource struct {
	ID         string `json:"id"`
	Attributes struct {
		DisplayName   string `json:"displayName"`
		AccountType   string `json:"accountType"`
		OwnershipType string `json:"ownershipType"`
		Balance       struct {
			CurrencyCode     string `json:"currencyCode"`
			Value            string `json:"value"`
			ValueInBaseUnits int64  `json:"valueInBaseUnits"`
		} `json:"balance"`
		CreatedAt string `json:"createdAt"`
	} `json:"attributes"`
}

// CategoryResource is one raw category record as returned by the API.
type CategoryResource struct {
	ID         string `json:"id"`
	Attributes struct {
		Name string `json:"name"`
	} `json:"attributes"`
}

// RelatedResource is a to-one relationship reference; Data is null when the
// relationship is unset (for example the category of an income transaction).
type RelatedResource struct {
	Data *struct {
		ID string `json:"id"`
	} `json:"data"`
}

// RelatedID returns the related resource id, or "" when the relationship is unset.
func (r RelatedResource) RelatedID() string {
	if r.Data == nil {
		return ""
	}
	return r.Data.ID
}

// TransactionStatus filters the transactions endpoint by settlement status.
type TransactionStatus string

const (
	// StatusHeld selects transactions still pending settlement.
	StatusHeld TransactionStatus = "HELD"
	// StatusSettled selects settled transactions.
	StatusSettled TransactionStatus = "SETTLED"
)
