package fetch

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// Result is the outcome of a successful round trip. A non-2xx status is a
// normal Result, not an error; callers interpret the status themselves.
type Result struct {
	StatusCode  int
	ContentType string
	Body        string
}

// OK reports whether the response status was 200.
func (r *Result) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Client wraps one shared http.Client used by every probe and page fetch in
// a batch. Certificate verification is disabled: target sites are arbitrary
// and frequently misconfigured. Safe for concurrent use.
type Client struct {
	client    *http.Client
	userAgent string
}

func NewClient(userAgent string) *Client {
	transport := &http.Transport{
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}

	return &Client{
		client:    &http.Client{Transport: transport},
		userAgent: userAgent,
	}
}

// Get fetches a URL with the given timeout, following redirects. The body is
// capped at maxBody to bound per-probe cost.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration) (*Result, error) {
	return c.get(ctx, url, timeout, 1024*1024)
}

// GetPrefix fetches at most n bytes of the body, for classification checks
// that only inspect a body prefix.
func (c *Client) GetPrefix(ctx context.Context, url string, timeout time.Duration, n int64) (*Result, error) {
	return c.get(ctx, url, timeout, n)
}

func (c *Client) get(ctx context.Context, url string, timeout time.Duration, maxBody int64) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}

// Close releases idle connections held by the shared transport.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}
