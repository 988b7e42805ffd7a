package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	ProductsTable = "insurance_products"
	LeadsTable    = "safety_call_requests"
)

// APIError is a PostgREST error response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: status %d", e.Status)
}

// Client talks to the PostgREST endpoint of a Supabase project with the anon key.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, anonKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetTimeout(timeout).
		SetHeader("apikey", anonKey).
		SetAuthToken(anonKey).
		SetHeader("Accept", "application/json").
		SetError(&APIError{})
	return &Client{http: rc}
}

// Query is the subset of PostgREST query syntax the repositories use.
type Query struct {
	Select string
	Eq     [][2]string
	Order  string
	Limit  int
}

func (q Query) params() url.Values {
	v := url.Values{}
	sel := q.Select
	if sel == "" {
		sel = "*"
	}
	v.Set("select", sel)
	for _, f := range q.Eq {
		v.Add(f[0], "eq."+f[1])
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("supabase: request failed: %w", err)
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{}
		}
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}

// Select runs a GET against table and decodes the row array into out.
func (c *Client) Select(ctx context.Context, table string, q Query, out any) error {
	resp, err := c.request(ctx).
		SetQueryParamsFromValues(q.params()).
		SetResult(out).
		Get("/" + table)
	return check(resp, err)
}

// Insert posts one row and decodes the stored representation into out.
func (c *Client) Insert(ctx context.Context, table string, row any, out any) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		SetResult(out).
		Post("/" + table)
	return check(resp, err)
}

// Update patches the rows matching the equality filters and decodes the updated rows into out.
func (c *Client) Update(ctx context.Context, table string, eq [][2]string, patch any, out any) error {
	params := url.Values{}
	for _, f := range eq {
		params.Add(f[0], "eq."+f[1])
	}
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParamsFromValues(params).
		SetBody(patch).
		SetResult(out).
		Patch("/" + table)
	return check(resp, err)
}

// Ping reads a single product id to prove the endpoint and key work.
func (c *Client) Ping(ctx context.Context) error {
	var rows []map[string]any
	return c.Select(ctx, ProductsTable, Query{Select: "id", Limit: 1}, &rows)
}
