package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Default client behavior. The interval and retry count match the values the
// GigaDB mirror tolerates well in practice; both can be overridden via options.
const (
	// DefaultInterval is the minimum time between two requests.
	DefaultInterval = 3 * time.Second

	// DefaultMaxRetry is the number of attempts before giving up on a URL.
	DefaultMaxRetry = 5

	// DefaultTimeout is the per-request HTTP timeout. Sequence archives are
	// tens of megabytes and the mirror can be slow, so this is generous.
	DefaultTimeout = 10 * time.Minute
)

// Client issues HTTP GET requests with a fixed minimum inter-request interval
// and a bounded retry count.
//
// Rate limiting: before each request the client compares the elapsed time
// since the last successful fetch against the configured interval, and when
// under the threshold it sleeps for the full interval. This is a deliberately
// simple fixed wait, not "interval minus elapsed" and not adaptive backoff:
// the one global limit already serializes everything, and a constant pause is
// predictable for the operator and for the mirror.
//
// Client is not safe for concurrent use. The pipeline drives it from a single
// goroutine so that the rate limit holds globally.
type Client struct {
	// httpClient performs the actual requests.
	httpClient *http.Client

	// interval is the minimum time between requests.
	interval time.Duration

	// maxRetry is the maximum number of attempts per URL.
	maxRetry int

	// userAgent is sent with every request.
	userAgent string

	// logger receives one warning per failed attempt.
	logger *slog.Logger

	// now and sleep abstract the clock so tests don't touch real time.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	// lastFetch is the time of the last successful fetch.
	// The zero value means no fetch has happened yet, so the first request
	// never waits.
	lastFetch time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithInterval sets the minimum inter-request interval.
func WithInterval(d time.Duration) Option {
	return func(c *Client) {
		c.interval = d
	}
}

// WithMaxRetry sets the maximum number of attempts per URL.
func WithMaxRetry(n int) Option {
	return func(c *Client) {
		c.maxRetry = n
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Useful for tests and for callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for per-attempt failure warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock replaces the wall clock and the sleep function.
//
// Design decision: Tests must observe the rate-limit discipline without real
// sleeping, so both the clock read and the wait are injectable. The sleep
// function receives the context and must return early when it is cancelled.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
	}
}

// New creates a Client with the given options applied over the defaults.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		interval:   DefaultInterval,
		maxRetry:   DefaultMaxRetry,
		now:        time.Now,
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Get fetches url and returns the response body.
//
// Each attempt honors the rate limit, performs one GET, and treats any
// non-2xx status as a failure. Failed attempts are logged and retried with
// the same fixed wait; after maxRetry attempts Get returns *ExhaustedError
// carrying the URL and the attempt count. Context cancellation is not
// retried.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	for attempt := 1; attempt <= c.maxRetry; attempt++ {
		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempt,
			"maxRetry", c.maxRetry,
			"error", err,
		)
	}

	return nil, &ExhaustedError{URL: url, Attempts: c.maxRetry}
}

// get performs a single rate-limited attempt.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if !c.lastFetch.IsZero() && c.now().Sub(c.lastFetch) < c.interval {
		if err := c.sleep(ctx, c.interval); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	// Only successful fetches advance the rate-limit clock, so a failing
	// mirror is retried at full interval pacing from the attempt loop above.
	c.lastFetch = c.now()

	return body, nil
}
