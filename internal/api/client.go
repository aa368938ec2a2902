package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HeaderSource supplies the auth headers merged into every request. An empty
// map means the request goes out headerless; the backend either tolerates it
// or rejects with an auth error that surfaces like any other rejection.
type HeaderSource interface {
	AuthHeaders() map[string]string
}

// Client is the HTTP client for the WorkerGuard backend. All engine
// components reach the backend exclusively through it.
type Client struct {
	http    *resty.Client
	headers HeaderSource
	logger  *zap.Logger
}

// NewClient creates a backend client. headers may be nil for unauthenticated
// use (the login call itself, health probes).
func NewClient(baseURL string, timeout time.Duration, retries int, headers HeaderSource, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		headers: headers,
		logger:  logger,
	}
}

// BaseURL returns the configured backend base address.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.headers != nil {
		for k, v := range c.headers.AuthHeaders() {
			req.SetHeader(k, v)
		}
	}
	return req
}

// getJSON issues a GET and decodes the 2xx body into out. Non-2xx responses
// come back as *BackendError carrying the backend's detail message.
func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	var reject rejection
	resp, err := c.newRequest(ctx).
		SetQueryParams(query).
		SetResult(out).
		SetError(&reject).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return &BackendError{StatusCode: resp.StatusCode(), Detail: reject.Detail}
	}
	return nil
}

// postJSON issues a POST with a JSON body. out may be nil when the response
// body is irrelevant.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	var reject rejection
	req := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetError(&reject)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return &BackendError{StatusCode: resp.StatusCode(), Detail: reject.Detail}
	}
	return nil
}

// Health probes GET /health. Used by the console smoke command.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("backend unhealthy: status=%q", out.Status)
	}
	return nil
}
