package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseUrl = "http://localhost:8000/api"
	DefaultTimeout = 10 * time.Second
)

// Doer performs one HTTP round trip.
type Doer func(req *http.Request) (*http.Response, error)

// Middleware wraps a Doer. The first middleware given to NewClient is the outermost.
type Middleware func(next Doer) Doer

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMiddleware(mw ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

// Client talks to the tarefas REST API. Every call goes through the
// middleware chain, so token injection and error handling are uniform.
type Client struct {
	baseUrl    string
	httpClient *http.Client
	middleware []Middleware
	do         Doer
	logger     *slog.Logger
}

func NewClient(baseUrl string, opts ...Option) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	c := &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	do := checkStatus(c.httpClient.Do)
	for i := len(c.middleware) - 1; i >= 0; i-- {
		do = c.middleware[i](do)
	}
	c.do = do

	return c
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body (taskapi): %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request (taskapi): %w", err)
	}
	return req, nil
}

// send performs the call and decodes a JSON body into out when out is not nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (taskapi): %w", err)
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("parse %s %s (taskapi): %w", method, path, err)
	}
	return nil
}

// fetchRaw returns the undecoded body of a GET.
func (c *Client) fetchRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (taskapi): %w", err)
	}
	return body, nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	raw, err := c.fetchRaw(ctx, path)
	if err != nil {
		return nil, err
	}
	items, ok := ExtractResults[T](raw)
	if !ok {
		c.logger.Warn("unexpected list response shape", "path", path)
	}
	return items, nil
}

func resourcePath(resource string, id int64, action ...string) string {
	path := fmt.Sprintf("/%s/%d/", resource, id)
	for _, a := range action {
		path += a + "/"
	}
	return path
}
