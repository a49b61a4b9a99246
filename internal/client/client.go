// Package client talks to the requisition gateway: one endpoint, the
// operation chosen by the action query parameter, JSON both ways.
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
	"sync"
	"time"

	"supplydesk/internal/contract"
	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

type Client struct {
	endpoint   *url.URL
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request on top of the caller's context. The
// timeout is set on a copy, so a shared http.Client is never mutated.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func New(gatewayURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(gatewayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway url %q: scheme and host required", gatewayURL)
	}

	c := &Client{
		endpoint:   u,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken sets the bearer token sent with every request. Empty clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) actionURL(action contract.Action, query url.Values) string {
	u := *c.endpoint
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set(contract.ActionParam, string(action))
	u.RawQuery = q.Encode()
	return u.String()
}

// do performs one exchange. out may be nil when the body is not needed.
func (c *Client) do(ctx context.Context, method string, action contract.Action, query url.Values, body, out any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "client"),
		zap.String("action", string(action)),
	)

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Action: action, Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.actionURL(action, query), reqBody)
	if err != nil {
		return &RequestError{Action: action, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if reqID := logger.RequestIDFrom(ctx); reqID != "" {
		req.Header.Set(logger.RequestIDHeader, reqID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("gateway unreachable", zap.Error(err))
		return &RequestError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	log.Debug("gateway responded",
		zap.Int("status", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr contract.ErrorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&apiErr)
		log.Info("gateway rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("error", apiErr.Error),
		)
		return &RequestError{Action: action, Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Action: action, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// Login authenticates and, on success, keeps the returned token for later
// calls.
func (c *Client) Login(ctx context.Context, username, password string) (contract.LoginResponse, error) {
	var resp contract.LoginResponse
	err := c.do(ctx, http.MethodPost, contract.ActionLogin, nil,
		contract.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return contract.LoginResponse{}, err
	}
	if resp.User.ID == 0 {
		return contract.LoginResponse{}, &RequestError{Action: contract.ActionLogin, Message: "response carried no user"}
	}

	c.SetToken(resp.Token)
	return resp, nil
}

func (c *Client) Products(ctx context.Context) ([]contract.Product, error) {
	var resp contract.ProductsResponse
	if err := c.do(ctx, http.MethodGet, contract.ActionProducts, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Products == nil {
		return []contract.Product{}, nil
	}
	return resp.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req contract.CreateProductRequest) (contract.Product, error) {
	var resp contract.ProductResponse
	if err := c.do(ctx, http.MethodPost, contract.ActionCreateProduct, nil, req, &resp); err != nil {
		return contract.Product{}, err
	}
	return resp.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, req contract.UpdateProductRequest) (contract.Product, error) {
	var resp contract.ProductResponse
	if err := c.do(ctx, http.MethodPut, contract.ActionUpdateProduct, nil, req, &resp); err != nil {
		return contract.Product{}, err
	}
	return resp.Product, nil
}

// Orders lists orders; userID nil asks for every order.
func (c *Client) Orders(ctx context.Context, userID *int64) ([]contract.Order, error) {
	var query url.Values
	if userID != nil {
		query = url.Values{contract.UserIDParam: {strconv.FormatInt(*userID, 10)}}
	}

	var resp contract.OrdersResponse
	if err := c.do(ctx, http.MethodGet, contract.ActionOrders, query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Orders == nil {
		return []contract.Order{}, nil
	}
	return resp.Orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, req contract.CreateOrderRequest) (int64, error) {
	var resp contract.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, contract.ActionCreateOrder, nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.OrderID, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID int64, status string) error {
	var resp contract.UpdateOrderResponse
	err := c.do(ctx, http.MethodPut, contract.ActionUpdateOrder, nil,
		contract.UpdateOrderRequest{OrderID: orderID, Status: status}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &RequestError{Action: contract.ActionUpdateOrder, Message: "gateway did not confirm update"}
	}
	return nil
}
