package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"golang.org/x/time/rate"
)

// Browser-like headers; several of the retailers block requests that look
// like bots.
var defaultHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Cache-Control":   "no-cache",
	"Pragma":          "no-cache",
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/122.0 Safari/537.36",
}

// ClientOptions tunes the shared fetch client. Zero values fall back to
// the defaults used by every retailer crawler.
type ClientOptions struct {
	Timeout           time.Duration
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestsPerSecond float64
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = 500 * time.Millisecond
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = 5 * time.Second
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = 1
	}
	return o
}

// Client fetches retailer search pages. It rate-limits outbound calls and
// retries transient failures with exponential backoff; both stay below the
// adapter contract, invisible to the orchestrator.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	executor failsafe.Executor[*http.Response]
}

func NewClient(opts ClientOptions) *Client {
	opts = opts.withDefaults()

	retry := retrypolicy.NewBuilder[*http.Response]().
		WithBackoff(opts.BaseDelay, opts.MaxDelay).
		WithMaxRetries(opts.MaxRetries).
		ReturnLastFailure().
		HandleIf(func(resp *http.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		}).
		Build()

	return &Client{
		http:     &http.Client{Timeout: opts.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		executor: failsafe.With(retry),
	}
}

// FetchPage GETs a retailer search page and returns its body. A 404 is
// treated as an empty result page, not an error: some retailers answer 404
// when a query has no matches. Any other non-2xx status is reported as
// "HTTP <code>" so the cause surfaces verbatim in the response error list.
func (c *Client) FetchPage(ctx context.Context, rawURL string, params url.Values, headers map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if params != nil {
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	resp, err := c.executor.WithContext(ctx).Get(func() (*http.Response, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		for k, v := range defaultHeaders {
			req.Header.Set(k, v)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			// Drain so the retried connection can be reused.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return "", nil
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
