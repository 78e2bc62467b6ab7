// Package github provides a resilient GitHub REST v3 client with a
// rotating token pool and a best-effort quota guard
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	perr "octoview/internal/platform/errors"
	"octoview/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "octoview-api"
	defaultMaxRetry  = 4
	defaultRetryBase = 500 * time.Millisecond
	defaultRPS       = 8
	defaultBurst     = 16

	// guardFloorPerToken is the per-token remaining-quota floor below
	// which the guard rotates to the next token. The effective threshold
	// scales with pool size so larger pools rotate earlier.
	guardFloorPerToken = 50
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens passed in from config.
	// Empty means tokenless which is very low quota so not recommended.
	TokensCSV string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration

	// Client-side throttle applied before every request
	RPS   float64
	Burst int
}

// Client is a minimal GitHub REST client with token rotation,
// client-side throttling, and retry on transient failures
type Client struct {
	http    *http.Client
	opts    Options
	ring    *Ring
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.RPS <= 0 {
		o.RPS = defaultRPS
	}
	if o.Burst <= 0 {
		o.Burst = defaultBurst
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		ring:    NewRing(o.TokensCSV),
		limiter: rate.NewLimiter(rate.Limit(o.RPS), o.Burst),
		log:     *logger.Named("github"),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Ring exposes the token pool cursor for the quota guard and tests
func (c *Client) Ring() *Ring { return c.ring }

// Do issues a request with auth headers, throttling, retries, and
// rate limit handling. 404 comes back as a GHStatusError so callers
// can distinguish missing resources from harder failures.
func (c *Client) Do(ctx context.Context, method, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/vnd.github+json")
		if tok := c.ring.Current(); tok != "" {
			req.Header.Set("Authorization", "token "+tok)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		// Always log lightweight response metadata
		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			return resp, nil
		case http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, &GHStatusError{
				Status: http.StatusNotFound,
				Err:    fmt.Errorf("github %s not found", path),
			}
		case http.StatusTooManyRequests, http.StatusForbidden:
			// Respect Retry-After and X-RateLimit-Reset when present,
			// and move off the exhausted token before retrying
			c.ring.Advance()
			wait := computeWait(rem, reset, retryAfter, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, &GHStatusError{
					Status: resp.StatusCode,
					Err:    perr.RateLimitedf("github rate limited"),
				}
			}
			c.log.Warn().Dur("sleep", wait).Msg("github rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(wait)
			attempts++
			continue
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// transient server side
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, &GHStatusError{
					Status: resp.StatusCode,
					Err:    perr.Upstreamf("github transient server error"),
				}
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, &GHStatusError{
				Status: resp.StatusCode,
				Body:   string(body),
				Err:    fmt.Errorf("github unexpected status %d", resp.StatusCode),
			}
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
