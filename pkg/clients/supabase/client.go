package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured is returned by every call when the store URL or key is missing
var ErrNotConfigured = errors.New("supabase client is not configured: set SUPABASE_URL and SUPABASE_KEY")

// Filter is an equality condition on a column (column=eq.value)
type Filter struct {
	Column string
	Value  string
}

// Eq builds an equality filter
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Value: fmt.Sprint(value)}
}

// Query describes a select against a single table
type Query struct {
	Columns string // defaults to "*"
	Filters []Filter
	OrderBy string
	Desc    bool
}

// Client defines the table operations used against the Supabase REST API
type Client interface {
	Select(ctx context.Context, table string, query Query, out interface{}) error
	Insert(ctx context.Context, table string, row interface{}) error
	Update(ctx context.Context, table string, filters []Filter, values interface{}) (int, error)
	Upsert(ctx context.Context, table string, row interface{}) error
}

// APIError is a non-2xx answer from the REST API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("error from Supabase API (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("error from Supabase API (%d): %s", e.StatusCode, e.Message)
}

type clientImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Supabase client. A zero timeout means none.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) Select(ctx context.Context, table string, query Query, out interface{}) error {
	params := url.Values{}
	columns := query.Columns
	if columns == "" {
		columns = "*"
	}
	params.Set("select", columns)
	addFilters(params, query.Filters)
	if query.OrderBy != "" {
		dir := "asc"
		if query.Desc {
			dir = "desc"
		}
		params.Set("order", query.OrderBy+"."+dir)
	}

	body, err := c.do(ctx, http.MethodGet, table, params, nil, "")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}

func (c *clientImpl) Insert(ctx context.Context, table string, row interface{}) error {
	if _, err := c.do(ctx, http.MethodPost, table, nil, row, "return=minimal"); err != nil {
		return err
	}

	log.Printf("Successfully inserted row into Supabase table: %s", table)
	return nil
}

func (c *clientImpl) Update(ctx context.Context, table string, filters []Filter, values interface{}) (int, error) {
	params := url.Values{}
	addFilters(params, filters)

	body, err := c.do(ctx, http.MethodPatch, table, params, values, "return=representation")
	if err != nil {
		return 0, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("error parsing response: %w", err)
	}

	log.Printf("Updated %d row(s) in Supabase table: %s", len(rows), table)
	return len(rows), nil
}

func (c *clientImpl) Upsert(ctx context.Context, table string, row interface{}) error {
	if _, err := c.do(ctx, http.MethodPost, table, nil, row, "resolution=merge-duplicates,return=minimal"); err != nil {
		return err
	}

	log.Printf("Successfully upserted row into Supabase table: %s", table)
	return nil
}

func addFilters(params url.Values, filters []Filter) {
	for _, f := range filters {
		params.Add(f.Column, "eq."+f.Value)
	}
}

// do sends one request and returns the body of a 2xx response
func (c *clientImpl) do(ctx context.Context, method, table string, params url.Values, payload interface{}, prefer string) ([]byte, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, url.PathEscape(table))
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error creating payload: %w", err)
		}
		reqBody = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication headers
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Supabase %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func parseAPIError(status int, body []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: status, Code: payload.Code, Message: payload.Message}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
