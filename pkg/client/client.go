package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a thin HTTP client for the orderboard API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the standard envelope.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// envelope is the wire shape every endpoint responds with.
type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Errors     map[string]string `json:"errors"`
	Data       json.RawMessage   `json:"data"`
	Pagination *Pagination       `json:"pagination"`
}

// Pagination mirrors the list endpoint's page descriptor.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}

// Order is the client-side view of an order record.
type Order struct {
	OrderID       string    `json:"orderId"`
	CustomerID    string    `json:"customerId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postalCode"`
	Country       string    `json:"country"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unitPrice"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateOrderInput carries the writable order fields.
type CreateOrderInput struct {
	CustomerID    string  `json:"customerId,omitempty"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber,omitempty"`
	StreetAddress string  `json:"streetAddress,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	PostalCode    string  `json:"postalCode,omitempty"`
	Country       string  `json:"country,omitempty"`
	Product       string  `json:"product"`
	Quantity      int     `json:"quantity,omitempty"`
	UnitPrice     float64 `json:"unitPrice,omitempty"`
	TotalAmount   float64 `json:"totalAmount,omitempty"`
	Status        string  `json:"status,omitempty"`
	CreatedBy     string  `json:"createdBy,omitempty"`
}

// ListOrdersOptions narrows and pages the order list.
type ListOrdersOptions struct {
	Status string
	Page   int64
	Limit  int64
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("api: decoding response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg, Fields: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("api: decoding data: %w", err)
		}
	}
	return &env, nil
}

func (c *Client) CreateOrder(ctx context.Context, in *CreateOrderInput) (*Order, error) {
	var o Order
	if _, err := c.do(ctx, http.MethodPost, "/api/orders", in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) ListOrders(ctx context.Context, opts ListOrdersOptions) ([]Order, *Pagination, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.FormatInt(opts.Page, 10))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.FormatInt(opts.Limit, 10))
	}

	path := "/api/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var orders []Order
	env, err := c.do(ctx, http.MethodGet, path, nil, &orders)
	if err != nil {
		return nil, nil, err
	}
	return orders, env.Pagination, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var o Order
	if _, err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, fields map[string]interface{}) (*Order, error) {
	var o Order
	if _, err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), fields, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil)
	return err
}
