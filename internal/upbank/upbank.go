// Package upbank implements a client for the Up Bank REST API: bearer-token
// auth, page[size]/filter[...] query parameters, and next-link pagination.
package upbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production Up Bank API endpoint.
const DefaultBaseURL = "https://api.up.com.au/api/v1"

// PageSize is the maximum number of resources the API returns per page.
const PageSize = 100

// HistoryDays is how far back a full transaction refresh reaches.
const HistoryDays = 366

// Client provides methods for fetching transactions, accounts, and
// categories from the Up Bank API. It wraps an HTTP client and follows
// next links until a collection is fully drained.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates an Up Bank client authenticating with the given personal
// access token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests to point the client at a local fake server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// SetToken replaces the personal access token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// HasToken reports whether a personal access token is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// Transactions fetches all transactions created since the given time,
// optionally bounded by until and filtered by settlement status. Pages are
// followed transparently; the full list is returned.
func (c *Client) Transactions(ctx context.Context, since time.Time, until *time.Time, status TransactionStatus) ([]TransactionResource, error) {
	params := url.Values{}
	params.Set("page[size]", fmt.Sprintf("%d", PageSize))
	params.Set("filter[since]", since.Format(time.RFC3339))
	if until != nil {
		params.Set("filter[until]", until.Format(time.RFC3339))
	}
	if status != "" {
		params.Set("filter[status]", string(status))
	}
	return getAll[TransactionResource](ctx, c, "/transactions", params)
}

// Accounts fetches all accounts.
func (c *Client) Accounts(ctx context.Context) ([]AccountResource, error) {
	return getAll[AccountResource](ctx, c, "/accounts", nil)
}

// Categories fetches all transaction categories.
func (c *Client) Categories(ctx context.Context) ([]CategoryResource, error) {
	return getAll[CategoryResource](ctx, c, "/categories", nil)
}

// Ping verifies the access token against the util/ping endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/util/ping", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping returned status %d", resp.StatusCode)
	}
	return nil
}

// getAll drains a paginated collection endpoint, following links.next until
// it is null. The first request carries params; follow-up requests use the
// absolute next URL as returned by the API.
func getAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var result []T
	for requestURL != "" {
		page, err := getPage[T](ctx, c, requestURL)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Data...)

		requestURL = ""
		if page.Links.Next != nil {
			requestURL = *page.Links.Next
		}
	}
	return result, nil
}

func getPage[T any](ctx context.Context, c *Client, requestURL string) (Envelope[T], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Envelope[T]{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("request to %s failed: %w", requestURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Envelope[T]{}, fmt.Errorf("api returned status %d: %s", resp.StatusCode, body)
	}

	var page Envelope[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return Envelope[T]{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return page, nil
}
