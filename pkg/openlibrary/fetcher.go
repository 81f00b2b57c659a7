// Package openlibrary talks to the Open Library web API. Every outbound call
// goes through a single Fetcher, which paces dispatches process-wide.
package openlibrary

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the Open Library API.
	DefaultBaseURL = "https://openlibrary.org"

	// DefaultUserAgent identifies this server to Open Library.
	DefaultUserAgent = "mcp-open-library/1.0.0"

	// DefaultMinInterval is the minimum spacing between two dispatches.
	DefaultMinInterval = 200 * time.Millisecond
)

// Getter fetches a URL and returns the decoded JSON document.
type Getter interface {
	Fetch(ctx context.Context, url string) (gjson.Result, error)
}

// Fetcher is the throttled HTTP GET used for every Open Library call.
// It is safe for concurrent use; concurrent callers queue on the gate so
// that call initiations are at least MinInterval apart.
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	minInterval time.Duration
	limiter     *rate.Limiter

	mu           sync.Mutex
	lastDispatch time.Time
	dispatched   func(time.Time)
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) FetcherOption {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithMinInterval sets the start-to-start spacing between dispatches.
// Zero disables pacing.
func WithMinInterval(interval time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if interval >= 0 {
			f.minInterval = interval
		}
	}
}

// NewFetcher creates a Fetcher with the given options applied over the
// defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient:  http.DefaultClient,
		userAgent:   DefaultUserAgent,
		minInterval: DefaultMinInterval,
	}

	for _, opt := range opts {
		opt(f)
	}

	limit := rate.Inf
	if f.minInterval > 0 {
		limit = rate.Every(f.minInterval)
	}

	// Burst 1: the first call goes out immediately. The limiter only does the
	// bulk of the waiting; gate() re-checks against the real last dispatch.
	f.limiter = rate.NewLimiter(limit, 1)

	return f
}

// MinInterval returns the configured dispatch spacing.
func (f *Fetcher) MinInterval() time.Duration {
	return f.minInterval
}

// gate blocks until minInterval has passed since the previous dispatch
// started, then stamps the new dispatch. Waiting and stamping happen under
// one lock. A limiter slot is computed when it is reserved, so a caller that
// wakes late would otherwise leave the next caller less than minInterval
// behind it.
//
// The wait is bounded and not cancellable; once a call enters the gate it is
// dispatched.
func (f *Fetcher) gate(ctx context.Context) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.limiter.Wait(context.WithoutCancel(ctx)); err != nil {
		return time.Time{}, errors.Wrap(err, "wait for dispatch slot")
	}

	if !f.lastDispatch.IsZero() {
		for {
			remaining := f.minInterval - time.Since(f.lastDispatch)
			if remaining <= 0 {
				break
			}
			time.Sleep(remaining)
		}
	}

	f.lastDispatch = time.Now()
	if f.dispatched != nil {
		f.dispatched(f.lastDispatch)
	}

	return f.lastDispatch, nil
}

// Fetch waits for its dispatch slot, performs a GET on url and decodes the
// body as JSON.
func (f *Fetcher) Fetch(ctx context.Context, url string) (gjson.Result, error) {
	logger := log.FromContext(ctx)

	start := time.Now()
	dispatchedAt, err := f.gate(ctx)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "dispatch %s", url)
	}
	logger.Debug("Dispatching request", "url", url, "waited", dispatchedAt.Sub(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "build request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Warn("Request failed", "url", url, "error", err)
		return gjson.Result{}, errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Unexpected status", "url", url, "status", resp.StatusCode)
		return gjson.Result{}, &RemoteError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "read body of %s", url)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &DecodeError{URL: url}
	}

	return gjson.ParseBytes(body), nil
}
