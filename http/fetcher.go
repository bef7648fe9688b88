// Package http provides HTTP-based implementations of the skillpack
// transport interfaces for static documentation sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/skillpack/skillpack"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "skillpack/1.0 (+https://github.com/skillpack/skillpack)"

// Ensure Fetcher implements skillpack.Fetcher at compile time.
var _ skillpack.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests. It
// does not execute JavaScript and is suitable for static sites only.
// Transport failures are returned as ETRANSPORT errors, which the pipeline
// records as per-page soft failures.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests. Defaults to
// DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient supplies a pre-configured HTTP client, overriding the timeout
// option. Mainly for tests using httptest servers.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", skillpack.Errorf(skillpack.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", skillpack.Errorf(skillpack.ETRANSPORT, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", skillpack.Errorf(skillpack.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", skillpack.Errorf(skillpack.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", skillpack.Errorf(skillpack.ETRANSPORT, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher; the interface slot
// exists for transports that hold browser processes or connection pools.
func (f *Fetcher) Close() error {
	return nil
}
