package legacyhtml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
	defaultBaseDelay   = 2 * time.Second
)

// ErrNotFound marks an HTTP 404 for the requested page. It is never
// retried; callers should treat it as bad input (usually a year with no
// published results).
var ErrNotFound = errors.New("legacy page not found")

// Page is one fetched legacy result page.
type Page struct {
	// HTML is the raw page body.
	HTML string

	// FromCache indicates the page was served from the disk cache.
	FromCache bool
}

// Client fetches legacy result pages with disk caching and retry.
type Client struct {
	httpClient  *http.Client
	cacheDir    string
	logger      *zap.Logger
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(time.Duration)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRetry overrides the retry attempt count and the base backoff delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		c.baseDelay = baseDelay
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// NewClient creates a fetcher using the supplied configuration.
func NewClient(cfg Config, logger *zap.Logger, opts ...Option) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		cacheDir:    cfg.CacheDir,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the page at url, preferring the disk cache when useCache
// is set. Transient failures are retried up to the attempt limit with
// linearly increasing delay; a 404 fails immediately with ErrNotFound.
func (c *Client) Fetch(ctx context.Context, url string, useCache bool) (Page, error) {
	cachePath := c.cachePath(url)

	if useCache {
		if html, ok := c.readCache(cachePath); ok {
			return Page{HTML: html, FromCache: true}, nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			c.sleep(c.baseDelay * time.Duration(attempt-1))
		}

		html, err := c.fetchOnce(ctx, url)
		if err == nil {
			c.writeCache(cachePath, html)
			return Page{HTML: html}, nil
		}
		if errors.Is(err, ErrNotFound) || ctx.Err() != nil {
			return Page{}, err
		}

		lastErr = err
		if c.logger != nil {
			c.logger.Warn("Legacy page fetch failed",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	return Page{}, fmt.Errorf("fetch %s after %d attempts: %w", url, c.maxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: http %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) cachePath(url string) string {
	return filepath.Join(c.cacheDir, sanitizeURL(url)+".html")
}

func (c *Client) readCache(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// writeCache is fire-and-forget: a failed write must never fail the fetch.
func (c *Client) writeCache(path, html string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		if c.logger != nil {
			c.logger.Warn("Failed to create page cache directory", zap.Error(err))
		}
		return
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil && c.logger != nil {
		c.logger.Warn("Failed to write page cache", zap.String("path", path), zap.Error(err))
	}
}

// sanitizeURL turns a URL into a safe flat filename.
func sanitizeURL(url string) string {
	var b strings.Builder
	for _, r := range url {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
