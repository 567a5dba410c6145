package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

var ErrTimeout = errors.New("http request timed out")

type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error)
	PostJSON(ctx context.Context, url string, payload any, headers map[string]string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*httpClient)

// WithHeader sets a header on every request unless the call overrides it.
func WithHeader(key, value string) Option {
	return func(c *httpClient) {
		if value != "" {
			c.defaults[key] = value
		}
	}
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *httpClient) { c.client.Transport = rt }
}

type httpClient struct {
	client   *http.Client
	defaults map[string]string
}

func NewHTTPClient(timeout time.Duration, opts ...Option) HTTPClient {
	c := &httpClient{
		client:   &http.Client{Timeout: timeout},
		defaults: map[string]string{"Accept": "application/json"},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, url, nil, headers)
}

func (c *httpClient) PostJSON(ctx context.Context, url string, payload any, headers map[string]string) (*http.Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	merged := map[string]string{"Content-Type": "application/json"}
	for key, value := range headers {
		merged[key] = value
	}

	return c.send(ctx, http.MethodPost, url, &buf, merged)
}

func (c *httpClient) Do(req *http.Request) (*http.Response, error) {
	for key, value := range c.defaults {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil && isTimeout(err) {
		return nil, fmt.Errorf("%w: %s %s", ErrTimeout, req.Method, req.URL.Path)
	}

	return resp, err
}

func (c *httpClient) send(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return c.Do(req)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
