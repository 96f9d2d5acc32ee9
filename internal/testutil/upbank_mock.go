package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/avdberg/Budget-Planner-Backend/internal/upbank"
)

// UpbankServer is a fake Up Bank API for testing the client and the live
// source without network access. It serves the configured transactions and
// accounts in pages of PageSize, wiring links.next exactly like the real
// API, and rejects requests without the expected bearer token.
type UpbankServer struct {
	*httptest.Server
	Token        string
	PageSize     int
	Transactions []upbank.TransactionResource
	Accounts     []upbank.AccountResource
}

// NewUpbankServer starts a fake Up Bank API. The server is automatically
// closed when the test completes.
func NewUpbankServer(t *testing.T, token string) *UpbankServer {
	t.Helper()

	s := &UpbankServer{
		Token:    token,
		PageSize: upbank.PageSize,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/util/ping", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		servePage(t, w, r, s.URL+"/transactions", s.Transactions, s.PageSize)
	})
	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		servePage(t, w, r, s.URL+"/accounts", s.Accounts, s.PageSize)
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Server.Close)
	return s
}

// Client returns an API client pointed at the fake server.
func (s *UpbankServer) Client() *upbank.Client {
	return upbank.NewClientWithBaseURL(s.Token, s.URL)
}

func (s *UpbankServer) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+s.Token
}

// servePage writes one page of resources with a links.next URL when more
// pages remain. The page index travels in a "page" query parameter; the
// real API uses an opaque cursor, which the client treats the same way.
func servePage[T any](t *testing.T, w http.ResponseWriter, r *http.Request, baseURL string, resources []T, pageSize int) {
	t.Helper()

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("Fake server got invalid page parameter: %v", err)
		}
		page = parsed
	}

	start := page * pageSize
	if start > len(resources) {
		start = len(resources)
	}
	end := start + pageSize
	if end > len(resources) {
		end = len(resources)
	}

	envelope := upbank.Envelope[T]{Data: resources[start:end]}
	if end < len(resources) {
		next := fmt.Sprintf("%s?page=%d", baseURL, page+1)
		envelope.Links.Next = &next
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		t.Fatalf("Fake server failed to encode page: %v", err)
	}
}

// NewTransactionResource builds a raw API transaction resource for tests.
func NewTransactionResource(id, createdAt, transactionType, description, accountID, parentCategory, category, amount string) upbank.TransactionResource {
	var resource upbank.TransactionResource
	resource.ID = id
	resource.Attributes.CreatedAt = createdAt
	resource.Attributes.TransactionType = transactionType
	resource.Attributes.Description = description
	resource.Attributes.Status = "SETTLED"
	resource.Attributes.Amount.CurrencyCode = "AUD"
	resource.Attributes.Amount.Value = amount
	resource.Relationships.Account = relation(accountID)
	resource.Relationships.ParentCategory = relation(parentCategory)
	resource.Relationships.Category = relation(category)
	return resource
}

// NewAccountResource builds a raw API account resource for tests.
func NewAccountResource(id, displayName, accountType, ownershipType string, balanceBaseUnits int64) upbank.AccountResource {
	var resource upbank.AccountResource
	resource.ID = id
	resource.Attributes.DisplayName = displayName
	resource.Attributes.AccountType = accountType
	resource.Attributes.OwnershipType = ownershipType
	resource.Attributes.Balance.CurrencyCode = "AUD"
	resource.Attributes.Balance.ValueInBaseUnits = balanceBaseUnits
	return resource
}

func relation(id string) upbank.RelatedResource {
	var related upbank.RelatedResource
	if id != "" {
		related.Data = &struct {
			ID string `json:"id"`
		}{ID: id}
	}
	return related
}
